package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/SBP359/MyNutriMate/models"
)

func TestCalculateAge(t *testing.T) {
	now := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	tests := []struct {
		name string
		dob  time.Time
		want int
	}{
		{"birthday already passed", time.Date(1980, 3, 10, 0, 0, 0, 0, time.UTC), 45},
		{"birthday not yet reached", time.Date(1980, 9, 10, 0, 0, 0, 0, time.UTC), 44},
		{"birthday today", time.Date(1980, 6, 15, 0, 0, 0, 0, time.UTC), 45},
		{"birthday tomorrow", time.Date(1980, 6, 16, 0, 0, 0, 0, time.UTC), 44},
		{"same month earlier day", time.Date(1980, 6, 1, 0, 0, 0, 0, time.UTC), 45},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CalculateAge(tt.dob, now); got != tt.want {
				t.Errorf("CalculateAge() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestComputeDailyGoalsKnownScenario(t *testing.T) {
	// female, 45y, 160cm, 70kg, active:
	// BMR = 700 + 1000 - 225 - 161 = 1314; TDEE = 1314*1.55 = 2036.7
	goal, err := ComputeDailyGoals(completeProfile(), refNow)
	if err != nil {
		t.Fatalf("ComputeDailyGoals() error = %v", err)
	}

	if goal.Calories != 2040 {
		t.Errorf("Calories = %v, want 2040", goal.Calories)
	}
	if goal.ProteinG != 102 {
		t.Errorf("ProteinG = %v, want 102", goal.ProteinG)
	}
	if goal.CarbsG != 255 {
		t.Errorf("CarbsG = %v, want 255", goal.CarbsG)
	}
	if goal.FatG != 68 {
		t.Errorf("FatG = %v, want 68", goal.FatG)
	}
	if goal.SugarG != 25 {
		t.Errorf("SugarG = %v, want 25", goal.SugarG)
	}
	if goal.SodiumMg != 1500 {
		t.Errorf("SodiumMg = %v, want 1500", goal.SodiumMg)
	}
}

func TestComputeDailyGoalsDeterministic(t *testing.T) {
	a, err := ComputeDailyGoals(completeProfile(), refNow)
	if err != nil {
		t.Fatalf("first call error = %v", err)
	}
	b, err := ComputeDailyGoals(completeProfile(), refNow)
	if err != nil {
		t.Fatalf("second call error = %v", err)
	}
	if a != b {
		t.Errorf("identical input produced different goals: %+v vs %+v", a, b)
	}
}

func TestComputeDailyGoalsMaleOffset(t *testing.T) {
	female := completeProfile()
	male := completeProfile()
	male.Sex = sptr(models.SexMale)
	other := completeProfile()
	other.Sex = sptr(models.SexOther)

	gf, _ := ComputeDailyGoals(female, refNow)
	gm, _ := ComputeDailyGoals(male, refNow)
	gx, _ := ComputeDailyGoals(other, refNow)

	if gm.Calories <= gf.Calories {
		t.Errorf("male calories %v should exceed female %v", gm.Calories, gf.Calories)
	}
	if gx.Calories != gf.Calories || gx.ProteinG != gf.ProteinG || gx.CarbsG != gf.CarbsG || gx.FatG != gf.FatG {
		t.Errorf("sex=other must use the same offset as female: %+v vs %+v", gx, gf)
	}
}

func TestComputeDailyGoalsMissingFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.User)
	}{
		{"missing sex", func(u *models.User) { u.Sex = nil }},
		{"missing dob", func(u *models.User) { u.DateOfBirth = nil }},
		{"missing height", func(u *models.User) { u.HeightCm = nil }},
		{"missing weight", func(u *models.User) { u.WeightKg = nil }},
		{"missing activity", func(u *models.User) { u.ActivityLevel = nil }},
		{"unknown activity", func(u *models.User) { u.ActivityLevel = sptr("couch") }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := completeProfile()
			tt.mutate(u)
			_, err := ComputeDailyGoals(u, refNow)
			if !errors.Is(err, ErrInsufficientProfile) {
				t.Errorf("error = %v, want ErrInsufficientProfile", err)
			}
		})
	}

	if _, err := ComputeDailyGoals(nil, refNow); !errors.Is(err, ErrInsufficientProfile) {
		t.Errorf("nil profile: error = %v, want ErrInsufficientProfile", err)
	}
}

func TestGoalFingerprintChangesWithInputs(t *testing.T) {
	base := GoalFingerprint(completeProfile())

	edited := completeProfile()
	edited.WeightKg = fptr(71)
	if GoalFingerprint(edited) == base {
		t.Error("fingerprint did not change after weight edit")
	}

	same := completeProfile()
	if GoalFingerprint(same) != base {
		t.Error("fingerprint changed without a profile edit")
	}
}
