package utils

import (
	"time"

	"github.com/SBP359/MyNutriMate/models"
)

func clampNonNegative(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}

// SanitizeNutrition clamps negative fields to zero so one malformed
// record can never drag a running total below zero. A missing field is
// already zero under Go's zero value, which is exactly the "absent
// means zero" accumulation rule.
func SanitizeNutrition(n models.Nutrition) models.Nutrition {
	return models.Nutrition{
		Calories: clampNonNegative(n.Calories),
		ProteinG: clampNonNegative(n.ProteinG),
		FatG:     clampNonNegative(n.FatG),
		CarbsG:   clampNonNegative(n.CarbsG),
		SugarG:   clampNonNegative(n.SugarG),
		SodiumMg: clampNonNegative(n.SodiumMg),
	}
}

// AddNutrition returns the field-wise sum of a and b.
func AddNutrition(a, b models.Nutrition) models.Nutrition {
	return models.Nutrition{
		Calories: a.Calories + b.Calories,
		ProteinG: a.ProteinG + b.ProteinG,
		FatG:     a.FatG + b.FatG,
		CarbsG:   a.CarbsG + b.CarbsG,
		SugarG:   a.SugarG + b.SugarG,
		SodiumMg: a.SodiumMg + b.SodiumMg,
	}
}

// SameCalendarDay reports whether two instants fall on the same date.
func SameCalendarDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// SumIntakeForDay folds every record that falls on the same calendar
// day as day (local date in day's zone, not a rolling 24h window) into
// one total. Returns the zero vector when nothing matches.
//
// Order-independent: the sum is the same for any permutation of records.
func SumIntakeForDay(records []models.IntakeRecord, day time.Time) models.Nutrition {
	var total models.Nutrition
	for _, r := range records {
		if !SameCalendarDay(r.ConsumedAt.In(day.Location()), day) {
			continue
		}
		total = AddNutrition(total, SanitizeNutrition(r.Nutrition))
	}
	return total
}
