package utils

import (
	"time"

	"github.com/SBP359/MyNutriMate/models"
)

func fptr(v float64) *float64 { return &v }
func sptr(v string) *string   { return &v }
func tptr(v time.Time) *time.Time {
	return &v
}

// completeProfile returns a profile with every goal input present:
// female, 45 years old at ref date, 160 cm, 70 kg, active.
func completeProfile() *models.User {
	return &models.User{
		Sex:           sptr(models.SexFemale),
		DateOfBirth:   tptr(time.Date(1980, 3, 10, 0, 0, 0, 0, time.UTC)),
		HeightCm:      fptr(160),
		WeightKg:      fptr(70),
		ActivityLevel: sptr(models.ActivityActive),
	}
}

// refNow is a fixed "today" making the completeProfile 45 years old.
var refNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
