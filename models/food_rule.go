package models

import "gorm.io/gorm"

// SafeFood is a doctor's allow rule for one patient. It carries no
// safety-overriding power over a restriction for the same food.
type SafeFood struct {
	gorm.Model
	DoctorID  uint   `gorm:"index;not null" json:"doctor_id"`
	PatientID uint   `gorm:"index;not null" json:"patient_id"`
	FoodName  string `gorm:"not null" json:"food_name"`
	BrandName string `json:"brand_name"`
	Notes     string `gorm:"type:text" json:"notes"`
}

// RestrictedFood is a doctor's deny rule. The reason is mandatory and
// is surfaced verbatim in unsafe verdicts.
type RestrictedFood struct {
	gorm.Model
	DoctorID  uint   `gorm:"index;not null" json:"doctor_id"`
	PatientID uint   `gorm:"index;not null" json:"patient_id"`
	FoodName  string `gorm:"not null" json:"food_name"`
	BrandName string `json:"brand_name"`
	Reason    string `gorm:"type:text;not null" json:"reason"`
}
