package utils

import (
	"testing"
	"time"

	"github.com/SBP359/MyNutriMate/models"
)

func TestSummarizeIntake(t *testing.T) {
	at := time.Date(2025, 6, 15, 8, 30, 0, 0, time.UTC)
	records := []models.IntakeRecord{
		{
			ItemName:         "Grilled Salmon",
			ConsumedAt:       at,
			EstimatedWeightG: 150,
			Nutrition: models.Nutrition{
				Calories: 280.26, ProteinG: 39.4, FatG: 12.56,
				CarbsG: 0, SugarG: 0, SodiumMg: 86,
			},
			Micros: models.Micronutrients{
				IronMg:     fptr(0.56),
				CalciumMg:  fptr(15),
				VitaminDIU: fptr(570),
			},
		},
	}

	rows := SummarizeIntake(records)
	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(rows))
	}
	row := rows[0]

	if row.Date != "2025-06-15 08:30" {
		t.Errorf("Date = %q", row.Date)
	}
	if row.Calories != "280.3" {
		t.Errorf("Calories = %q, want %q", row.Calories, "280.3")
	}
	if row.ProteinG != "39.4" {
		t.Errorf("ProteinG = %q, want %q", row.ProteinG, "39.4")
	}
	if row.FatG != "12.6" {
		t.Errorf("FatG = %q, want %q", row.FatG, "12.6")
	}
	if row.CarbsG != "0.0" {
		t.Errorf("measured zero must render as 0.0, got %q", row.CarbsG)
	}
	if row.IronMg != "0.6" {
		t.Errorf("IronMg = %q, want %q", row.IronMg, "0.6")
	}
	// absent micronutrients are "not measured", never zero
	if row.PotassiumMg != NotMeasured {
		t.Errorf("PotassiumMg = %q, want %q", row.PotassiumMg, NotMeasured)
	}
	if row.VitaminAIU != NotMeasured || row.VitaminCMg != NotMeasured {
		t.Errorf("absent vitamins should be %q: %+v", NotMeasured, row)
	}
}

func TestSummarizeIntakePreservesOrder(t *testing.T) {
	base := time.Date(2025, 6, 15, 8, 0, 0, 0, time.UTC)
	records := []models.IntakeRecord{
		{ItemName: "first", ConsumedAt: base.Add(2 * time.Hour)},
		{ItemName: "second", ConsumedAt: base},
	}
	rows := SummarizeIntake(records)
	if rows[0].Item != "first" || rows[1].Item != "second" {
		t.Errorf("rows reordered: %q, %q", rows[0].Item, rows[1].Item)
	}
}

func TestRollupIntake(t *testing.T) {
	now := time.Date(2025, 6, 15, 18, 0, 0, 0, time.UTC)
	records := []models.IntakeRecord{
		{ItemName: "a", ConsumedAt: now.Add(-2 * time.Hour), Nutrition: models.Nutrition{Calories: 300}},
		{ItemName: "b", ConsumedAt: now.Add(-1 * time.Hour), Nutrition: models.Nutrition{Calories: 450.4}},
		{ItemName: "c", ConsumedAt: now.AddDate(0, 0, -3), Nutrition: models.Nutrition{Calories: 900}},
	}

	roll := RollupIntake(records, now)
	if roll.EntryCount != 3 {
		t.Errorf("EntryCount = %d, want 3", roll.EntryCount)
	}
	if roll.LastLoggedDate != "2025-06-15" {
		t.Errorf("LastLoggedDate = %q", roll.LastLoggedDate)
	}
	if roll.TodayCalorieTotal != "750" {
		t.Errorf("TodayCalorieTotal = %q, want %q", roll.TodayCalorieTotal, "750")
	}
}

func TestRollupIntakeEmpty(t *testing.T) {
	roll := RollupIntake(nil, time.Now())
	if roll.EntryCount != 0 {
		t.Errorf("EntryCount = %d, want 0", roll.EntryCount)
	}
	if roll.LastLoggedDate != NotMeasured {
		t.Errorf("LastLoggedDate = %q, want %q", roll.LastLoggedDate, NotMeasured)
	}
	if roll.TodayCalorieTotal != NotMeasured {
		t.Errorf("TodayCalorieTotal = %q, want %q", roll.TodayCalorieTotal, NotMeasured)
	}
}
