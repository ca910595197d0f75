package utils

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/SBP359/MyNutriMate/models"
)

// ErrInsufficientProfile means the profile is missing a field the goal
// calculator needs. Callers must show targets as "not yet available",
// never as a zero-calorie goal.
var ErrInsufficientProfile = errors.New("profile incomplete: sex, date of birth, height, weight and activity level are required")

// Population guideline constants (American Heart Association), not
// personalized per profile.
const (
	DailySugarGramsTarget       = 25.0
	DailySodiumMilligramsTarget = 1500.0
)

var activityMultipliers = map[string]float64{
	models.ActivitySedentary:     1.2,
	models.ActivityLightlyActive: 1.375,
	models.ActivityActive:        1.55,
	models.ActivityVeryActive:    1.725,
}

// CalculateAge returns completed years between dob and now: if the
// birthday has not yet occurred this year, the naive year difference is
// reduced by one.
func CalculateAge(dob, now time.Time) int {
	age := now.Year() - dob.Year()
	if now.Month() < dob.Month() || (now.Month() == dob.Month() && now.Day() < dob.Day()) {
		age--
	}
	return age
}

// ComputeDailyGoals derives daily nutrient targets from the biometric
// profile.
//
// BMR uses the Mifflin-St Jeor equation; sex "other" takes the same
// offset as "female". The calorie target is TDEE rounded to the nearest
// multiple of 10, and the macro split (20% protein, 50% carbohydrate,
// 30% fat) is derived from that rounded figure, not the raw TDEE.
// Rounding is math.Round (half away from zero) throughout.
//
// Deterministic: identical inputs always yield identical targets.
func ComputeDailyGoals(user *models.User, now time.Time) (models.DailyGoal, error) {
	if user == nil || user.Sex == nil || user.DateOfBirth == nil ||
		user.HeightCm == nil || user.WeightKg == nil || user.ActivityLevel == nil {
		return models.DailyGoal{}, ErrInsufficientProfile
	}
	mult, ok := activityMultipliers[*user.ActivityLevel]
	if !ok {
		return models.DailyGoal{}, ErrInsufficientProfile
	}
	age := CalculateAge(*user.DateOfBirth, now)
	if age < 0 {
		return models.DailyGoal{}, ErrInsufficientProfile
	}

	weight := *user.WeightKg
	height := *user.HeightCm

	bmr := 10*weight + 6.25*height - 5*float64(age)
	if *user.Sex == models.SexMale {
		bmr += 5
	} else {
		bmr -= 161
	}

	tdee := bmr * mult
	calories := math.Round(tdee/10) * 10

	return models.DailyGoal{
		UserID:             user.ID,
		Calories:           calories,
		ProteinG:           math.Round(calories * 0.20 / 4),
		CarbsG:             math.Round(calories * 0.50 / 4),
		FatG:               math.Round(calories * 0.30 / 9),
		SugarG:             DailySugarGramsTarget,
		SodiumMg:           DailySodiumMilligramsTarget,
		ProfileFingerprint: GoalFingerprint(user),
	}, nil
}

// GoalFingerprint encodes the profile fields ComputeDailyGoals consumes.
// Stored goals are valid only while the fingerprint matches, which turns
// goal caching into an explicit invalidation rule instead of a
// compute-once branch.
func GoalFingerprint(user *models.User) string {
	str := func(p *string) string {
		if p == nil {
			return "-"
		}
		return *p
	}
	f := func(p *float64) string {
		if p == nil {
			return "-"
		}
		return fmt.Sprintf("%g", *p)
	}
	dob := "-"
	if user.DateOfBirth != nil {
		dob = user.DateOfBirth.Format("2006-01-02")
	}
	return fmt.Sprintf("%s|%s|%s|%s|%s",
		str(user.Sex), dob, f(user.HeightCm), f(user.WeightKg), str(user.ActivityLevel))
}
