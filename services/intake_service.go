package services

import (
	"fmt"
	"log"
	"time"

	"github.com/SBP359/MyNutriMate/config"
	"github.com/SBP359/MyNutriMate/models"
	"github.com/SBP359/MyNutriMate/utils"
)

// CommitRequest is an analysis result the user accepted into their log.
type CommitRequest struct {
	Kind             string                `json:"kind" binding:"required"` // "food" | "label"
	ItemName         string                `json:"item_name" binding:"required"`
	BrandName        string                `json:"brand_name"`
	ConsumedAt       time.Time             `json:"consumed_at"`
	EstimatedWeightG float64               `json:"estimated_weight_g"`
	Nutrition        models.Nutrition      `json:"nutrition"`
	Micros           models.Micronutrients `json:"micronutrients"`
	Warnings         string                `json:"warnings"`
	ExpiryDate       string                `json:"expiry_date"`
	ImageBase64      string                `json:"image_base64"`
}

type IntakeService struct {
	insight *InsightService
}

func NewIntakeService(insight *InsightService) *IntakeService {
	return &IntakeService{insight: insight}
}

// Commit re-runs the authoritative safety check against the current
// rule lists, persists the record, raises alerts for unsafe items and
// pushes the new daily total through the insight gate.
func (s *IntakeService) Commit(userID uint, req CommitRequest) (*models.IntakeRecord, error) {
	user, err := GetUser(userID)
	if err != nil {
		return nil, err
	}

	if req.ConsumedAt.IsZero() {
		req.ConsumedAt = time.Now()
	}
	if req.Kind != models.IntakeFood && req.Kind != models.IntakeLabel {
		return nil, fmt.Errorf("unknown record kind %q", req.Kind)
	}

	verdict, err := CheckFoodForPatient(user, utils.NewFoodIdentity(req.ItemName, req.BrandName), req.Nutrition)
	if err != nil {
		return nil, err
	}

	rec := &models.IntakeRecord{
		UserID:           userID,
		Kind:             req.Kind,
		ItemName:         req.ItemName,
		BrandName:        req.BrandName,
		ConsumedAt:       req.ConsumedAt,
		EstimatedWeightG: req.EstimatedWeightG,
		Nutrition:        utils.SanitizeNutrition(req.Nutrition),
		Micros:           req.Micros,
		Safe:             verdict.IsSafe,
		SafetyReason:     verdict.Reason,
		Warnings:         req.Warnings,
		ExpiryDate:       req.ExpiryDate,
	}

	if req.ImageBase64 != "" {
		url, err := utils.UploadBase64FileToS3(req.ImageBase64, "meal-photos", fmt.Sprintf("u%d", userID))
		if err != nil {
			log.Printf("photo upload failed for user %d: %v", userID, err)
		} else {
			rec.PhotoURL = url
		}
	}

	if err := config.DB.Create(rec).Error; err != nil {
		return nil, err
	}

	if !verdict.IsSafe {
		NotifyUnsafeIntake(user, rec)
	}

	s.observeToday(user)
	return rec, nil
}

func (s *IntakeService) ListRecords(userID uint) ([]models.IntakeRecord, error) {
	var records []models.IntakeRecord
	err := config.DB.
		Where("user_id = ?", userID).
		Order("consumed_at DESC").
		Find(&records).Error
	return records, err
}

func ListRecordsForDay(userID uint, day time.Time) ([]models.IntakeRecord, error) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	end := start.Add(24 * time.Hour)

	var records []models.IntakeRecord
	err := config.DB.
		Where("user_id = ? AND consumed_at >= ? AND consumed_at < ?", userID, start, end).
		Order("consumed_at ASC").
		Find(&records).Error
	return records, err
}

// DeleteRecord removes one entry (the only mutation records allow) and
// re-evaluates the gate, since the total may have dropped to zero.
func (s *IntakeService) DeleteRecord(userID, recordID uint) error {
	res := config.DB.
		Where("id = ? AND user_id = ?", recordID, userID).
		Delete(&models.IntakeRecord{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("record not found")
	}

	user, err := GetUser(userID)
	if err == nil {
		s.observeToday(user)
	}
	return nil
}

// TodayTotal recomputes the running total for the current day.
func TodayTotal(userID uint) (models.Nutrition, error) {
	now := time.Now()
	records, err := ListRecordsForDay(userID, now)
	if err != nil {
		return models.Nutrition{}, err
	}
	return utils.SumIntakeForDay(records, now), nil
}

func (s *IntakeService) observeToday(user *models.User) {
	if s.insight == nil {
		return
	}
	total, err := TodayTotal(user.ID)
	if err != nil {
		log.Printf("today total for user %d: %v", user.ID, err)
		return
	}
	s.insight.ObserveTotal(user, total)
}
