package utils

import (
	"math/rand"
	"testing"
	"time"

	"github.com/SBP359/MyNutriMate/models"
)

func rec(at time.Time, n models.Nutrition) models.IntakeRecord {
	return models.IntakeRecord{Kind: models.IntakeFood, ItemName: "test item", ConsumedAt: at, Nutrition: n}
}

func TestSumIntakeForDay(t *testing.T) {
	day := time.Date(2025, 6, 15, 9, 0, 0, 0, time.UTC)
	records := []models.IntakeRecord{
		rec(day.Add(1*time.Hour), models.Nutrition{Calories: 300, ProteinG: 10, SodiumMg: 200}),
		rec(day.Add(8*time.Hour), models.Nutrition{Calories: 450, FatG: 12, SugarG: 9}),
		rec(day.AddDate(0, 0, -1), models.Nutrition{Calories: 1000}), // yesterday, must not count
	}

	got := SumIntakeForDay(records, day)
	if got.Calories != 750 {
		t.Errorf("Calories = %v, want 750", got.Calories)
	}
	if got.ProteinG != 10 || got.FatG != 12 || got.SugarG != 9 || got.SodiumMg != 200 {
		t.Errorf("unexpected totals: %+v", got)
	}
}

func TestSumIntakeForDayEmpty(t *testing.T) {
	day := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	got := SumIntakeForDay(nil, day)
	if got != (models.Nutrition{}) {
		t.Errorf("empty record set should yield the zero vector, got %+v", got)
	}
}

// Calendar-day scoping, not a rolling 24h window: 23:59 yesterday is
// out even though it is within 24 hours of the reference instant.
func TestSumIntakeForDayCalendarScoped(t *testing.T) {
	day := time.Date(2025, 6, 15, 0, 30, 0, 0, time.UTC)
	records := []models.IntakeRecord{
		rec(time.Date(2025, 6, 14, 23, 59, 0, 0, time.UTC), models.Nutrition{Calories: 500}),
		rec(time.Date(2025, 6, 15, 23, 59, 0, 0, time.UTC), models.Nutrition{Calories: 200}),
	}
	got := SumIntakeForDay(records, day)
	if got.Calories != 200 {
		t.Errorf("Calories = %v, want 200", got.Calories)
	}
}

func TestSumIntakeForDayOrderIndependent(t *testing.T) {
	day := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	records := []models.IntakeRecord{
		rec(day.Add(-3*time.Hour), models.Nutrition{Calories: 120, ProteinG: 3}),
		rec(day.Add(-1*time.Hour), models.Nutrition{Calories: 330, CarbsG: 40}),
		rec(day.Add(2*time.Hour), models.Nutrition{Calories: 90, SugarG: 15}),
		rec(day.AddDate(0, 0, 1), models.Nutrition{Calories: 600}),
	}
	want := SumIntakeForDay(records, day)

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 20; i++ {
		shuffled := make([]models.IntakeRecord, len(records))
		copy(shuffled, records)
		rng.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})
		if got := SumIntakeForDay(shuffled, day); got != want {
			t.Fatalf("permutation %d changed the sum: %+v vs %+v", i, got, want)
		}
	}
}

// Malformed negative fields clamp to zero; the total never goes negative.
func TestSumIntakeForDayClampsNegatives(t *testing.T) {
	day := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	records := []models.IntakeRecord{
		rec(day, models.Nutrition{Calories: -300, ProteinG: -5}),
		rec(day, models.Nutrition{Calories: 100}),
	}
	got := SumIntakeForDay(records, day)
	if got.Calories != 100 {
		t.Errorf("Calories = %v, want 100", got.Calories)
	}
	if got.ProteinG != 0 {
		t.Errorf("ProteinG = %v, want 0", got.ProteinG)
	}
}

func TestAddNutrition(t *testing.T) {
	a := models.Nutrition{Calories: 100, ProteinG: 5, FatG: 2, CarbsG: 10, SugarG: 3, SodiumMg: 80}
	b := models.Nutrition{Calories: 50, ProteinG: 1, FatG: 4, CarbsG: 6, SugarG: 2, SodiumMg: 20}
	got := AddNutrition(a, b)
	want := models.Nutrition{Calories: 150, ProteinG: 6, FatG: 6, CarbsG: 16, SugarG: 5, SodiumMg: 100}
	if got != want {
		t.Errorf("AddNutrition() = %+v, want %+v", got, want)
	}
}
