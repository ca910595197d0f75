package services

import (
	"time"

	"github.com/SBP359/MyNutriMate/config"
	"github.com/SBP359/MyNutriMate/models"
	"github.com/SBP359/MyNutriMate/utils"
)

func GetUser(userID uint) (*models.User, error) {
	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// ProfileUpdate carries the editable biometric fields. Pointers stay
// nil when the client omits a field.
type ProfileUpdate struct {
	FullName       *string    `json:"full_name"`
	PhoneNumber    *string    `json:"phone_number"`
	Sex            *string    `json:"sex"`
	DateOfBirth    *time.Time `json:"date_of_birth"`
	HeightCm       *float64   `json:"height_cm"`
	WeightKg       *float64   `json:"weight_kg"`
	ActivityLevel  *string    `json:"activity_level"`
	MedicalHistory *string    `json:"medical_history"`
}

// UpdateProfile applies the edit and eagerly refreshes the daily goals,
// so a stored goal can never silently outlive a profile change.
func UpdateProfile(userID uint, in ProfileUpdate) (*models.User, error) {
	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		return nil, err
	}

	if in.FullName != nil {
		user.FullName = *in.FullName
	}
	if in.PhoneNumber != nil {
		user.PhoneNumber = *in.PhoneNumber
	}
	if in.Sex != nil {
		user.Sex = in.Sex
	}
	if in.DateOfBirth != nil {
		user.DateOfBirth = in.DateOfBirth
	}
	if in.HeightCm != nil {
		user.HeightCm = in.HeightCm
	}
	if in.WeightKg != nil {
		user.WeightKg = in.WeightKg
	}
	if in.ActivityLevel != nil {
		user.ActivityLevel = in.ActivityLevel
	}
	if in.MedicalHistory != nil {
		user.MedicalHistory = in.MedicalHistory
	}

	if err := config.DB.Save(&user).Error; err != nil {
		return nil, err
	}

	// Best effort: an incomplete profile just leaves goals unavailable.
	_, _ = RefreshDailyGoal(&user)

	return &user, nil
}

// BodyMass computes the BMI reading for the stored profile.
func BodyMass(userID uint) (utils.BodyMass, error) {
	user, err := GetUser(userID)
	if err != nil {
		return utils.BodyMass{}, err
	}
	return utils.ClassifyBodyMass(user.WeightKg, user.HeightCm)
}
