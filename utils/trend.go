package utils

import (
	"fmt"
	"time"

	"github.com/SBP359/MyNutriMate/models"
)

// NotMeasured marks a micronutrient the analyzer did not report,
// distinct from a measured zero.
const NotMeasured = "N/A"

// TrendRow is one pre-formatted export line. Macro and micronutrient
// figures carry one decimal place.
type TrendRow struct {
	Date        string `json:"date"`
	Item        string `json:"item"`
	WeightG     string `json:"weight_g"`
	Calories    string `json:"calories"`
	ProteinG    string `json:"protein_g"`
	CarbsG      string `json:"carbs_g"`
	FatG        string `json:"fat_g"`
	SugarG      string `json:"sugar_g"`
	SodiumMg    string `json:"sodium_mg"`
	IronMg      string `json:"iron_mg"`
	CalciumMg   string `json:"calcium_mg"`
	PotassiumMg string `json:"potassium_mg"`
	VitaminAIU  string `json:"vitamin_a_iu"`
	VitaminCMg  string `json:"vitamin_c_mg"`
	VitaminDIU  string `json:"vitamin_d_iu"`
}

// TrendRollup is the per-patient summary line for report consumers.
type TrendRollup struct {
	EntryCount        int    `json:"entry_count"`
	LastLoggedDate    string `json:"last_logged_date"`    // "N/A" when there are no entries
	TodayCalorieTotal string `json:"today_calorie_total"` // whole kcal, "N/A" when zero
}

func fixed1(v float64) string {
	return fmt.Sprintf("%.1f", v)
}

func optFixed1(v *float64) string {
	if v == nil {
		return NotMeasured
	}
	return fmt.Sprintf("%.1f", *v)
}

// SummarizeIntake renders one row per record, preserving input order.
func SummarizeIntake(records []models.IntakeRecord) []TrendRow {
	rows := make([]TrendRow, 0, len(records))
	for _, r := range records {
		rows = append(rows, TrendRow{
			Date:        r.ConsumedAt.Format("2006-01-02 15:04"),
			Item:        r.ItemName,
			WeightG:     fixed1(r.EstimatedWeightG),
			Calories:    fixed1(r.Nutrition.Calories),
			ProteinG:    fixed1(r.Nutrition.ProteinG),
			CarbsG:      fixed1(r.Nutrition.CarbsG),
			FatG:        fixed1(r.Nutrition.FatG),
			SugarG:      fixed1(r.Nutrition.SugarG),
			SodiumMg:    fixed1(r.Nutrition.SodiumMg),
			IronMg:      optFixed1(r.Micros.IronMg),
			CalciumMg:   optFixed1(r.Micros.CalciumMg),
			PotassiumMg: optFixed1(r.Micros.PotassiumMg),
			VitaminAIU:  optFixed1(r.Micros.VitaminAIU),
			VitaminCMg:  optFixed1(r.Micros.VitaminCMg),
			VitaminDIU:  optFixed1(r.Micros.VitaminDIU),
		})
	}
	return rows
}

// RollupIntake summarizes a patient's whole history for the report
// surface: how much they log, when they last logged, and today's
// calorie total.
func RollupIntake(records []models.IntakeRecord, now time.Time) TrendRollup {
	roll := TrendRollup{
		EntryCount:        len(records),
		LastLoggedDate:    NotMeasured,
		TodayCalorieTotal: NotMeasured,
	}

	var last time.Time
	for _, r := range records {
		if r.ConsumedAt.After(last) {
			last = r.ConsumedAt
		}
	}
	if !last.IsZero() {
		roll.LastLoggedDate = last.Format("2006-01-02")
	}

	if today := SumIntakeForDay(records, now); today.Calories > 0 {
		roll.TodayCalorieTotal = fmt.Sprintf("%.0f", today.Calories)
	}
	return roll
}
