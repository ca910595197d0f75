package services

import (
	"errors"
	"time"

	"github.com/SBP359/MyNutriMate/config"
	"github.com/SBP359/MyNutriMate/models"
	"github.com/SBP359/MyNutriMate/utils"

	"gorm.io/gorm"
)

// GetDailyGoal returns the user's targets, recomputing them whenever
// the stored profile fingerprint no longer matches the profile. The
// cache is keyed by the input tuple, not by "already computed once".
//
// Returns utils.ErrInsufficientProfile when the profile cannot support
// a computation; callers show "not yet available", never zeros.
func GetDailyGoal(userID uint) (*models.DailyGoal, error) {
	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		return nil, err
	}
	return RefreshDailyGoal(&user)
}

// RefreshDailyGoal reconciles the stored goal row with the profile.
func RefreshDailyGoal(user *models.User) (*models.DailyGoal, error) {
	fresh, cerr := utils.ComputeDailyGoals(user, time.Now())

	var stored models.DailyGoal
	err := config.DB.Where("user_id = ?", user.ID).First(&stored).Error
	notFound := errors.Is(err, gorm.ErrRecordNotFound)
	if err != nil && !notFound {
		return nil, err
	}

	if cerr != nil {
		// Profile no longer complete: any stored goal is stale by
		// definition, drop it rather than serve it.
		if !notFound {
			_ = config.DB.Delete(&stored).Error
		}
		return nil, cerr
	}

	if notFound {
		if err := config.DB.Create(&fresh).Error; err != nil {
			return nil, err
		}
		return &fresh, nil
	}

	if stored.ProfileFingerprint != fresh.ProfileFingerprint {
		stored.Calories = fresh.Calories
		stored.ProteinG = fresh.ProteinG
		stored.CarbsG = fresh.CarbsG
		stored.FatG = fresh.FatG
		stored.SugarG = fresh.SugarG
		stored.SodiumMg = fresh.SodiumMg
		stored.ProfileFingerprint = fresh.ProfileFingerprint
		if err := config.DB.Save(&stored).Error; err != nil {
			return nil, err
		}
	}
	return &stored, nil
}

// GetGoalsAndProgress pairs the targets with today's running totals.
// Progress percentages are capped at 100%.
func GetGoalsAndProgress(userID uint) (*models.DailyGoal, map[string]interface{}, error) {
	records, err := ListRecordsForDay(userID, time.Now())
	if err != nil {
		return nil, nil, err
	}
	total := utils.SumIntakeForDay(records, time.Now())

	goal, gerr := GetDailyGoal(userID)
	if gerr != nil && !errors.Is(gerr, utils.ErrInsufficientProfile) {
		return nil, nil, gerr
	}

	pct := func(consumed, target float64) float64 {
		if target <= 0 {
			return 0
		}
		p := consumed / target
		if p > 1 {
			return 1
		}
		return p
	}

	g := models.DailyGoal{}
	if goal != nil {
		g = *goal
	}
	progress := map[string]interface{}{
		"calories": map[string]float64{"consumed": total.Calories, "goal": g.Calories, "percent": pct(total.Calories, g.Calories)},
		"protein":  map[string]float64{"consumed": total.ProteinG, "goal": g.ProteinG, "percent": pct(total.ProteinG, g.ProteinG)},
		"carbs":    map[string]float64{"consumed": total.CarbsG, "goal": g.CarbsG, "percent": pct(total.CarbsG, g.CarbsG)},
		"fat":      map[string]float64{"consumed": total.FatG, "goal": g.FatG, "percent": pct(total.FatG, g.FatG)},
		"sugar":    map[string]float64{"consumed": total.SugarG, "goal": g.SugarG, "percent": pct(total.SugarG, g.SugarG)},
		"sodium":   map[string]float64{"consumed": total.SodiumMg, "goal": g.SodiumMg, "percent": pct(total.SodiumMg, g.SodiumMg)},
	}

	// goal may be nil here: profile incomplete, targets "not yet available"
	return goal, progress, nil
}
