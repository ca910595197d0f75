package services

import (
	"fmt"
	"log"

	"github.com/SBP359/MyNutriMate/config"
	"github.com/SBP359/MyNutriMate/models"
	"github.com/SBP359/MyNutriMate/utils"
)

// historyChecker is the resolver's medical-history extension point.
// Wired at startup to the inference-backed checker; nil means history
// screening is skipped and unlisted items default to safe.
var historyChecker utils.HistoryChecker

func SetHistoryChecker(c utils.HistoryChecker) {
	historyChecker = c
}

// LoadRulesForPatient gathers the safe and restricted lists from every
// doctor connected to this patient.
func LoadRulesForPatient(patientID uint) ([]models.SafeFood, []models.RestrictedFood, error) {
	var safe []models.SafeFood
	if err := config.DB.Where("patient_id = ?", patientID).Find(&safe).Error; err != nil {
		return nil, nil, err
	}
	var restricted []models.RestrictedFood
	if err := config.DB.Where("patient_id = ?", patientID).Find(&restricted).Error; err != nil {
		return nil, nil, err
	}
	return safe, restricted, nil
}

// CheckFoodForPatient runs the authoritative resolver against the
// patient's current rule lists. Always a fresh load: doctors edit their
// lists at any time and the verdict is safety-relevant.
func CheckFoodForPatient(user *models.User, candidate utils.FoodIdentity, nutrition models.Nutrition) (utils.SafetyVerdict, error) {
	safe, restricted, err := LoadRulesForPatient(user.ID)
	if err != nil {
		return utils.SafetyVerdict{}, err
	}
	return utils.ResolveFoodSafety(candidate, nutrition, user, safe, restricted, historyChecker), nil
}

// NotifyUnsafeIntake fans an unsafe commit out to the alert feed and to
// every connected doctor whose restriction it may concern.
func NotifyUnsafeIntake(user *models.User, rec *models.IntakeRecord) {
	EmitAlert(user.ID, "safety", fmt.Sprintf("Logged %s: %s", rec.ItemName, rec.SafetyReason))

	var connections []models.DoctorConnection
	if err := config.DB.Where("patient_id = ?", user.ID).Find(&connections).Error; err != nil {
		log.Printf("load connections for user %d: %v", user.ID, err)
		return
	}
	for _, conn := range connections {
		var doctor models.User
		if err := config.DB.First(&doctor, conn.DoctorID).Error; err != nil {
			continue
		}
		if err := utils.SendRestrictedFoodAlert(doctor.Email, user.FullName, rec.ItemName, rec.SafetyReason); err != nil {
			log.Printf("doctor alert email to %s: %v", doctor.Email, err)
		}
	}
}
