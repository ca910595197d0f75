package utils

import (
	"math"
	"sync"
)

// A fresh insight is only worth an inference call once today's calorie
// total has moved by more than this many kcal since the last one.
const insightDeltaThreshold = 50.0

// Sentinel for "no insight generated yet".
const gateSentinel = -1

type GateSignal int

const (
	GateHold    GateSignal = iota // change too small, keep the current insight
	GateRefresh                   // request fresh advisory content
	GateReset                     // day rolled over or log emptied; clear the cached insight
)

// InsightGate rate-limits advisory generation for one user session.
// Safe for concurrent use; the last trigger value is only mutated under
// the lock.
type InsightGate struct {
	mu   sync.Mutex
	last float64
}

func NewInsightGate() *InsightGate {
	return &InsightGate{last: gateSentinel}
}

// Observe feeds a recomputed daily calorie total through the gate and
// returns what the caller should do about the cached insight.
func (g *InsightGate) Observe(totalCalories float64) GateSignal {
	g.mu.Lock()
	defer g.mu.Unlock()

	if totalCalories == 0 {
		g.last = gateSentinel
		return GateReset
	}
	if totalCalories > 0 && math.Abs(totalCalories-g.last) > insightDeltaThreshold {
		g.last = totalCalories
		return GateRefresh
	}
	return GateHold
}
