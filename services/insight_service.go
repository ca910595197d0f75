package services

import (
	"bytes"
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/SBP359/MyNutriMate/config"
	"github.com/SBP359/MyNutriMate/models"
	"github.com/SBP359/MyNutriMate/utils"

	"gorm.io/gorm"
)

// InsightService keeps one hysteresis gate per user and regenerates the
// dashboard advisory only when the gate fires. The gate is the sole
// throttle between intake changes and the (expensive) inference call.
type InsightService struct {
	vision *VisionService
	hub    *RealtimeHub

	mu    sync.Mutex
	gates map[uint]*utils.InsightGate
}

func NewInsightService(vision *VisionService, hub *RealtimeHub) *InsightService {
	return &InsightService{
		vision: vision,
		hub:    hub,
		gates:  make(map[uint]*utils.InsightGate),
	}
}

func (s *InsightService) gateFor(userID uint) *utils.InsightGate {
	s.mu.Lock()
	defer s.mu.Unlock()
	g, ok := s.gates[userID]
	if !ok {
		g = utils.NewInsightGate()
		s.gates[userID] = g
	}
	return g
}

// ObserveTotal feeds a recomputed daily calorie total through the
// user's gate and acts on the outcome.
func (s *InsightService) ObserveTotal(user *models.User, total models.Nutrition) {
	switch s.gateFor(user.ID).Observe(total.Calories) {
	case utils.GateRefresh:
		if err := s.regenerate(user, total); err != nil {
			log.Printf("insight refresh for user %d: %v", user.ID, err)
		}
	case utils.GateReset:
		s.clear(user.ID)
	case utils.GateHold:
		// change too small to justify another inference call
	}
}

func (s *InsightService) regenerate(user *models.User, total models.Nutrition) error {
	text, err := s.generateText(user, total)
	if err != nil {
		return err
	}

	insight := models.Insight{UserID: user.ID}
	if err := config.DB.Where("user_id = ?", user.ID).
		Assign(models.Insight{Text: text, TriggerCalories: total.Calories}).
		FirstOrCreate(&insight).Error; err != nil {
		return err
	}

	if s.hub != nil {
		s.hub.Broadcast(user.ID, map[string]any{
			"kind": "insight.updated",
			"text": text,
		})
	}
	return nil
}

func (s *InsightService) clear(userID uint) {
	_ = config.DB.Where("user_id = ?", userID).Delete(&models.Insight{}).Error
	if s.hub != nil {
		s.hub.Broadcast(userID, map[string]any{"kind": "insight.cleared"})
	}
}

// GetInsight returns the cached advisory, or nil when none is current.
func (s *InsightService) GetInsight(userID uint) (*models.Insight, error) {
	var insight models.Insight
	err := config.DB.Where("user_id = ?", userID).First(&insight).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &insight, nil
}

func (s *InsightService) generateText(user *models.User, total models.Nutrition) (string, error) {
	goal, err := RefreshDailyGoal(user)
	goalLine := "No daily targets are set yet."
	if err == nil && goal != nil {
		goalLine = fmt.Sprintf("Daily targets: %.0f kcal, %.0fg protein, %.0fg carbs, %.0fg fat, %.0fg sugar, %.0fmg sodium.",
			goal.Calories, goal.ProteinG, goal.CarbsG, goal.FatG, goal.SugarG, goal.SodiumMg)
	}

	var sb bytes.Buffer
	sb.WriteString("Today's intake so far: ")
	fmt.Fprintf(&sb, "%.0f kcal, %.1fg protein, %.1fg carbs, %.1fg fat, %.1fg sugar, %.0fmg sodium.\n", total.Calories, total.ProteinG, total.CarbsG, total.FatG, total.SugarG, total.SodiumMg)
	sb.WriteString(goalLine)
	sb.WriteString("\nWrite one short, encouraging health insight (2-3 sentences) about how the day is going and what to eat next.")

	return s.vision.callInferenceAPI(sb.String())
}
