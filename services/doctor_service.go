package services

import (
	"errors"
	"strings"

	"github.com/SBP359/MyNutriMate/config"
	"github.com/SBP359/MyNutriMate/models"

	"gorm.io/gorm"
)

var ErrNotConnected = errors.New("doctor is not connected to this patient")

// GetDoctorProfile returns the professional profile for a doctor user.
func GetDoctorProfile(userID uint) (*models.DoctorProfile, error) {
	var profile models.DoctorProfile
	if err := config.DB.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

// ConnectByCode links a patient to the doctor owning the code.
func ConnectByCode(patientID uint, doctorCode, note string) (*models.DoctorConnection, error) {
	var profile models.DoctorProfile
	err := config.DB.Where("doctor_code = ?", strings.ToUpper(strings.TrimSpace(doctorCode))).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errors.New("unknown doctor code")
	}
	if err != nil {
		return nil, err
	}

	var existing models.DoctorConnection
	err = config.DB.Where("doctor_id = ? AND patient_id = ?", profile.UserID, patientID).First(&existing).Error
	if err == nil {
		return &existing, nil // already connected
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	conn := models.DoctorConnection{DoctorID: profile.UserID, PatientID: patientID, Note: note}
	if err := config.DB.Create(&conn).Error; err != nil {
		return nil, err
	}
	return &conn, nil
}

// ListConnectionsForPatient lists this patient's care team.
func ListConnectionsForPatient(patientID uint) ([]models.DoctorConnection, error) {
	var conns []models.DoctorConnection
	err := config.DB.Where("patient_id = ?", patientID).Find(&conns).Error
	return conns, err
}

func requireConnection(doctorID, patientID uint) error {
	var conn models.DoctorConnection
	err := config.DB.Where("doctor_id = ? AND patient_id = ?", doctorID, patientID).First(&conn).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotConnected
	}
	return err
}

// PatientBundle is everything a doctor sees for one connected patient.
type PatientBundle struct {
	Profile         models.User             `json:"profile"`
	Connection      models.DoctorConnection `json:"connection"`
	History         []models.IntakeRecord   `json:"history"`
	SafeFoods       []models.SafeFood       `json:"safe_foods"`
	RestrictedFoods []models.RestrictedFood `json:"restricted_foods"`
}

// ListPatients loads the full bundle for every connected patient.
func ListPatients(doctorID uint) ([]PatientBundle, error) {
	var conns []models.DoctorConnection
	if err := config.DB.Where("doctor_id = ?", doctorID).Find(&conns).Error; err != nil {
		return nil, err
	}

	bundles := make([]PatientBundle, 0, len(conns))
	for _, conn := range conns {
		var patient models.User
		if err := config.DB.First(&patient, conn.PatientID).Error; err != nil {
			continue // connection to a deleted account
		}

		var history []models.IntakeRecord
		if err := config.DB.
			Where("user_id = ?", conn.PatientID).
			Order("consumed_at DESC").
			Find(&history).Error; err != nil {
			return nil, err
		}

		var safe []models.SafeFood
		if err := config.DB.Where("doctor_id = ? AND patient_id = ?", doctorID, conn.PatientID).Find(&safe).Error; err != nil {
			return nil, err
		}
		var restricted []models.RestrictedFood
		if err := config.DB.Where("doctor_id = ? AND patient_id = ?", doctorID, conn.PatientID).Find(&restricted).Error; err != nil {
			return nil, err
		}

		bundles = append(bundles, PatientBundle{
			Profile:         patient,
			Connection:      conn,
			History:         history,
			SafeFoods:       safe,
			RestrictedFoods: restricted,
		})
	}
	return bundles, nil
}

// AddSafeFood records an allow rule. It never overrides a restriction
// for the same food; precedence lives in the resolver.
func AddSafeFood(doctorID, patientID uint, foodName, brandName, notes string) (*models.SafeFood, error) {
	if err := requireConnection(doctorID, patientID); err != nil {
		return nil, err
	}
	if strings.TrimSpace(foodName) == "" {
		return nil, errors.New("food name is required")
	}
	rule := models.SafeFood{
		DoctorID:  doctorID,
		PatientID: patientID,
		FoodName:  foodName,
		BrandName: brandName,
		Notes:     notes,
	}
	if err := config.DB.Create(&rule).Error; err != nil {
		return nil, err
	}
	return &rule, nil
}

// AddRestrictedFood records a deny rule. The reason is mandatory: it is
// surfaced verbatim in every unsafe verdict this rule produces.
func AddRestrictedFood(doctorID, patientID uint, foodName, brandName, reason string) (*models.RestrictedFood, error) {
	if err := requireConnection(doctorID, patientID); err != nil {
		return nil, err
	}
	if strings.TrimSpace(foodName) == "" {
		return nil, errors.New("food name is required")
	}
	if strings.TrimSpace(reason) == "" {
		return nil, errors.New("a reason is required for a restriction")
	}
	rule := models.RestrictedFood{
		DoctorID:  doctorID,
		PatientID: patientID,
		FoodName:  foodName,
		BrandName: brandName,
		Reason:    reason,
	}
	if err := config.DB.Create(&rule).Error; err != nil {
		return nil, err
	}
	return &rule, nil
}

func DeleteSafeFood(doctorID, ruleID uint) error {
	res := config.DB.Where("id = ? AND doctor_id = ?", ruleID, doctorID).Delete(&models.SafeFood{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return errors.New("rule not found")
	}
	return nil
}

func DeleteRestrictedFood(doctorID, ruleID uint) error {
	res := config.DB.Where("id = ? AND doctor_id = ?", ruleID, doctorID).Delete(&models.RestrictedFood{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return errors.New("rule not found")
	}
	return nil
}
