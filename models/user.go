package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	RolePatient = "patient"
	RoleDoctor  = "doctor"
)

// Accepted activity_level values.
const (
	ActivitySedentary     = "sedentary"
	ActivityLightlyActive = "lightly_active"
	ActivityActive        = "active"
	ActivityVeryActive    = "very_active"
)

// Accepted sex values.
const (
	SexFemale = "female"
	SexMale   = "male"
	SexOther  = "other"
)

type User struct {
	gorm.Model
	Email       string `gorm:"uniqueIndex;not null" json:"email"`
	Password    string `gorm:"not null" json:"-"`
	FullName    string `json:"full_name"`
	PhoneNumber string `json:"phone_number"`
	Role        string `gorm:"size:16;default:patient" json:"role"` // "patient" | "doctor"

	// Biometric profile. Every field is nullable; daily goals can only
	// be computed once all of them are present.
	Sex            *string    `gorm:"size:8" json:"sex"` // "female" | "male" | "other"
	DateOfBirth    *time.Time `json:"date_of_birth"`
	HeightCm       *float64   `json:"height_cm"`
	WeightKg       *float64   `json:"weight_kg"`
	ActivityLevel  *string    `gorm:"size:16" json:"activity_level"`
	MedicalHistory *string    `gorm:"type:text" json:"medical_history"`

	ResetCode string `gorm:"size:16" json:"-"`
}
