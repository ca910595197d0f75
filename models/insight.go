package models

import "gorm.io/gorm"

// Insight is the cached advisory text for a user's dashboard, plus the
// calorie total that triggered its generation.
type Insight struct {
	gorm.Model
	UserID          uint    `gorm:"uniqueIndex;not null" json:"user_id"`
	Text            string  `gorm:"type:text" json:"text"`
	TriggerCalories float64 `json:"trigger_calories"`
}
