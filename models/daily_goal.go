package models

import "gorm.io/gorm"

// DailyGoal holds a user's computed daily nutrient targets.
//
// ProfileFingerprint is the cache key: the encoded tuple of profile
// fields the calculator consumed. Goals are recomputed whenever the
// stored fingerprint no longer matches the current profile, so a
// profile edit can never leave stale targets behind.
type DailyGoal struct {
	gorm.Model
	UserID   uint    `gorm:"index;not null" json:"user_id"`
	Calories float64 `json:"calories"`  // kcal
	ProteinG float64 `json:"protein_g"` // g
	CarbsG   float64 `json:"carbs_g"`   // g
	FatG     float64 `json:"fat_g"`     // g
	SugarG   float64 `json:"sugar_g"`   // g
	SodiumMg float64 `json:"sodium_mg"` // mg

	ProfileFingerprint string `gorm:"size:128" json:"-"`
}
