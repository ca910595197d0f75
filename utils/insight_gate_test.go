package utils

import (
	"sync"
	"testing"
)

func TestInsightGateFirstObservation(t *testing.T) {
	g := NewInsightGate()
	// sentinel is -1, so any positive total is beyond the band
	if got := g.Observe(60); got != GateRefresh {
		t.Errorf("Observe(60) = %v, want GateRefresh", got)
	}
}

func TestInsightGateHysteresis(t *testing.T) {
	g := NewInsightGate()
	if got := g.Observe(500); got != GateRefresh {
		t.Fatalf("Observe(500) = %v, want GateRefresh", got)
	}

	// delta 20 <= 50: suppressed
	if got := g.Observe(520); got != GateHold {
		t.Errorf("Observe(520) = %v, want GateHold", got)
	}
	// exactly on the band edge: still suppressed
	if got := g.Observe(550); got != GateHold {
		t.Errorf("Observe(550) = %v, want GateHold", got)
	}
	// delta 60 > 50: refresh, and state advances to 560
	if got := g.Observe(560); got != GateRefresh {
		t.Errorf("Observe(560) = %v, want GateRefresh", got)
	}
	if got := g.Observe(580); got != GateHold {
		t.Errorf("Observe(580) after refresh at 560 = %v, want GateHold", got)
	}
}

func TestInsightGateZeroReset(t *testing.T) {
	g := NewInsightGate()
	g.Observe(800)

	if got := g.Observe(0); got != GateReset {
		t.Fatalf("Observe(0) = %v, want GateReset", got)
	}
	// sentinel restored to -1: a small total sits within the band of it
	if got := g.Observe(30); got != GateHold {
		t.Errorf("Observe(30) after reset = %v, want GateHold", got)
	}
	// beyond the band of the sentinel: refreshes again
	if got := g.Observe(60); got != GateRefresh {
		t.Errorf("Observe(60) after reset = %v, want GateRefresh", got)
	}
}

func TestInsightGateRepeatedZero(t *testing.T) {
	g := NewInsightGate()
	if got := g.Observe(0); got != GateReset {
		t.Errorf("Observe(0) on a fresh gate = %v, want GateReset", got)
	}
	if got := g.Observe(0); got != GateReset {
		t.Errorf("repeated Observe(0) = %v, want GateReset", got)
	}
}

func TestInsightGateConcurrentObserve(t *testing.T) {
	g := NewInsightGate()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			g.Observe(float64(100 + n*100))
		}(i)
	}
	wg.Wait()

	// state must be one of the observed totals, not a torn value
	sig := g.Observe(0)
	if sig != GateReset {
		t.Errorf("final Observe(0) = %v, want GateReset", sig)
	}
}
