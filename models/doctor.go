package models

import "gorm.io/gorm"

// DoctorProfile stores a doctor's professional details. DoctorCode is
// the shareable code patients use to connect.
type DoctorProfile struct {
	gorm.Model
	UserID                uint   `gorm:"uniqueIndex;not null" json:"user_id"`
	MedicalRegistrationID string `gorm:"not null" json:"medical_registration_id"`
	Specialization        string `json:"specialization"`
	DoctorCode            string `gorm:"size:16;uniqueIndex;not null" json:"doctor_code"`
}

// DoctorConnection links a doctor to one patient. Food rules are
// scoped to this relationship.
type DoctorConnection struct {
	gorm.Model
	DoctorID  uint   `gorm:"index;not null" json:"doctor_id"`
	PatientID uint   `gorm:"index;not null" json:"patient_id"`
	Note      string `gorm:"type:text" json:"note"`
}
