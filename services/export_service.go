package services

import (
	"fmt"
	"regexp"
	"time"

	"github.com/SBP359/MyNutriMate/utils"

	"github.com/xuri/excelize/v2"
)

var sheetNameSanitizer = regexp.MustCompile(`[\\/?*:\[\]]`)

// BuildPatientWorkbook renders one summary sheet plus a detail sheet
// per connected patient. Column order and the one-decimal formatting of
// the detail rows are the export contract; everything else is layout.
func BuildPatientWorkbook(doctorID uint) (*excelize.File, error) {
	bundles, err := ListPatients(doctorID)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	now := time.Now()

	const summary = "My Patients"
	f.SetSheetName("Sheet1", summary)
	summaryHeader := []string{
		"Full Name", "Phone Number", "Age", "Sex", "Height (cm)", "Weight (kg)",
		"Medical History", "Total Entries", "Last Logged Date", "Calories Today",
	}
	if err := f.SetSheetRow(summary, "A1", &summaryHeader); err != nil {
		return nil, err
	}

	for i, b := range bundles {
		roll := utils.RollupIntake(b.History, now)

		age := utils.NotMeasured
		if b.Profile.DateOfBirth != nil {
			age = fmt.Sprintf("%d", utils.CalculateAge(*b.Profile.DateOfBirth, now))
		}
		height, weight, history := utils.NotMeasured, utils.NotMeasured, ""
		if b.Profile.HeightCm != nil {
			height = fmt.Sprintf("%.0f", *b.Profile.HeightCm)
		}
		if b.Profile.WeightKg != nil {
			weight = fmt.Sprintf("%.0f", *b.Profile.WeightKg)
		}
		if b.Profile.MedicalHistory != nil {
			history = *b.Profile.MedicalHistory
		}
		sex := utils.NotMeasured
		if b.Profile.Sex != nil {
			sex = *b.Profile.Sex
		}

		row := []interface{}{
			b.Profile.FullName, b.Profile.PhoneNumber, age, sex, height, weight,
			history, roll.EntryCount, roll.LastLoggedDate, roll.TodayCalorieTotal,
		}
		if err := f.SetSheetRow(summary, fmt.Sprintf("A%d", i+2), &row); err != nil {
			return nil, err
		}

		if err := addPatientSheet(f, b); err != nil {
			return nil, err
		}
	}

	return f, nil
}

func addPatientSheet(f *excelize.File, b PatientBundle) error {
	name := sheetNameSanitizer.ReplaceAllString(b.Profile.FullName, "")
	if name == "" {
		name = "Patient"
	}
	// ID suffix keeps same-named patients on separate sheets; %.24s
	// leaves room for it under the 31-char xlsx sheet name limit.
	name = fmt.Sprintf("%.24s_%d", name, b.Profile.ID)
	if _, err := f.NewSheet(name); err != nil {
		return err
	}

	header := []string{
		"Date", "Food Item", "Est. Weight (g)", "Calories (kcal)", "Protein (g)",
		"Carbs (g)", "Fat (g)", "Sugar (g)", "Sodium (mg)", "Iron (mg)",
		"Calcium (mg)", "Potassium (mg)", "Vitamin A (IU)", "Vitamin C (mg)", "Vitamin D (IU)",
	}
	if err := f.SetSheetRow(name, "A1", &header); err != nil {
		return err
	}

	for i, row := range utils.SummarizeIntake(b.History) {
		cells := []interface{}{
			row.Date, row.Item, row.WeightG, row.Calories, row.ProteinG,
			row.CarbsG, row.FatG, row.SugarG, row.SodiumMg, row.IronMg,
			row.CalciumMg, row.PotassiumMg, row.VitaminAIU, row.VitaminCMg, row.VitaminDIU,
		}
		if err := f.SetSheetRow(name, fmt.Sprintf("A%d", i+2), &cells); err != nil {
			return err
		}
	}
	return nil
}
