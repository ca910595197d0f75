package services

import (
	"testing"
	"time"

	"github.com/SBP359/MyNutriMate/models"

	"github.com/xuri/excelize/v2"
)

func bundleNamed(id uint, fullName, item string) PatientBundle {
	u := models.User{FullName: fullName}
	u.ID = id
	return PatientBundle{
		Profile: u,
		History: []models.IntakeRecord{{
			UserID:     id,
			Kind:       models.IntakeFood,
			ItemName:   item,
			ConsumedAt: time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC),
			Nutrition:  models.Nutrition{Calories: 250},
		}},
	}
}

func TestAddPatientSheetDistinctSheetsForSameName(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	if err := addPatientSheet(f, bundleNamed(1, "John Smith", "Oatmeal")); err != nil {
		t.Fatalf("first sheet: %v", err)
	}
	if err := addPatientSheet(f, bundleNamed(2, "John Smith", "Granola")); err != nil {
		t.Fatalf("second sheet: %v", err)
	}

	for _, want := range []string{"John Smith_1", "John Smith_2"} {
		if idx, _ := f.GetSheetIndex(want); idx < 0 {
			t.Fatalf("sheet %q missing; have %v", want, f.GetSheetList())
		}
	}

	first, _ := f.GetCellValue("John Smith_1", "B2")
	second, _ := f.GetCellValue("John Smith_2", "B2")
	if first != "Oatmeal" || second != "Granola" {
		t.Errorf("sheet rows = %q, %q; want Oatmeal, Granola", first, second)
	}
}

func TestAddPatientSheetNameLimits(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	long := bundleNamed(7, "Bartholomew Archibald Montgomery Fitzgerald III", "Soup")
	if err := addPatientSheet(f, long); err != nil {
		t.Fatalf("long name: %v", err)
	}
	empty := bundleNamed(8, "***", "Toast") // sanitizes to nothing
	if err := addPatientSheet(f, empty); err != nil {
		t.Fatalf("sanitized-empty name: %v", err)
	}

	list := f.GetSheetList()
	for _, name := range list {
		if len(name) > 31 {
			t.Errorf("sheet name %q exceeds 31 chars", name)
		}
	}
	if idx, _ := f.GetSheetIndex("Patient_8"); idx < 0 {
		t.Errorf("fallback sheet Patient_8 missing; have %v", list)
	}
}
