package models

import (
	"time"

	"gorm.io/gorm"
)

// Record kinds: a recognized meal photo or a scanned product label.
const (
	IntakeFood  = "food"
	IntakeLabel = "label"
)

// Nutrition is the six-field vector used both as a single measurement
// and as a running-total accumulator.
type Nutrition struct {
	Calories float64 `json:"calories"`
	ProteinG float64 `json:"protein_g"`
	FatG     float64 `json:"fat_g"`
	CarbsG   float64 `json:"carbs_g"`
	SugarG   float64 `json:"sugar_g"`
	SodiumMg float64 `json:"sodium_mg"`
}

// Micronutrients are optional per entry. A nil field means "not
// measured", which reporting keeps distinct from a measured zero.
type Micronutrients struct {
	IronMg      *float64 `json:"iron_mg"`
	CalciumMg   *float64 `json:"calcium_mg"`
	PotassiumMg *float64 `json:"potassium_mg"`
	VitaminAIU  *float64 `json:"vitamin_a_iu"`
	VitaminCMg  *float64 `json:"vitamin_c_mg"`
	VitaminDIU  *float64 `json:"vitamin_d_iu"`
}

// IntakeRecord is one committed analysis result. Never mutated after
// creation; deleted only by explicit user action.
type IntakeRecord struct {
	gorm.Model
	UserID           uint      `gorm:"index;not null" json:"user_id"`
	Kind             string    `gorm:"size:8;not null" json:"kind"` // "food" | "label"
	ItemName         string    `gorm:"not null" json:"item_name"`
	BrandName        string    `json:"brand_name"`
	ConsumedAt       time.Time `gorm:"index;not null" json:"consumed_at"`
	EstimatedWeightG float64   `json:"estimated_weight_g"`

	Nutrition Nutrition      `gorm:"embedded" json:"nutrition"`
	Micros    Micronutrients `gorm:"embedded;embeddedPrefix:micro_" json:"micronutrients"`

	Safe         bool   `json:"safe"`
	SafetyReason string `gorm:"type:text" json:"safety_reason"`
	Warnings     string `gorm:"type:text" json:"warnings"` // semicolon-separated analyzer warnings
	ExpiryDate   string `gorm:"size:32" json:"expiry_date,omitempty"`
	PhotoURL     string `json:"photo_url,omitempty"`
}
