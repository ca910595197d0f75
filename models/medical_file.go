package models

import "gorm.io/gorm"

// MedicalFile is an uploaded document (prescription scan, lab report).
// The bytes live in S3; only metadata is kept here.
type MedicalFile struct {
	gorm.Model
	UserID   uint   `gorm:"index;not null" json:"user_id"`
	FileName string `gorm:"not null" json:"file_name"`
	FileURL  string `gorm:"not null" json:"file_url"`
	Note     string `gorm:"type:text" json:"note"`
}
