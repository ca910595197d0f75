package utils

import (
	"strings"
	"testing"

	"github.com/SBP359/MyNutriMate/models"
)

func patientWithHistory(history string) *models.User {
	u := completeProfile()
	u.MedicalHistory = sptr(history)
	return u
}

func TestNormalizeFoodName(t *testing.T) {
	tests := []struct{ in, want string }{
		{"Peanut  Butter ", "peanut butter"},
		{"  RAMEN", "ramen"},
		{"White\tBread", "white bread"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := NormalizeFoodName(tt.in); got != tt.want {
			t.Errorf("NormalizeFoodName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestResolveFoodSafetyDenyMatch(t *testing.T) {
	deny := []models.RestrictedFood{
		{FoodName: "Instant Ramen", Reason: "Too much sodium for your blood pressure."},
	}

	v := ResolveFoodSafety(NewFoodIdentity("instant  ramen", "NissoBrand"), models.Nutrition{}, completeProfile(), nil, deny, nil)
	if v.IsSafe {
		t.Fatal("restricted item resolved as safe")
	}
	if !strings.Contains(v.Reason, "restricted list") {
		t.Errorf("reason %q should state the item is doctor-restricted", v.Reason)
	}
	if !strings.Contains(v.Reason, "Too much sodium") {
		t.Errorf("reason %q should carry the rule's stated reason", v.Reason)
	}
}

// Deny wins even when the same identity is also on the safe list.
func TestResolveFoodSafetyDenyPrecedence(t *testing.T) {
	allow := []models.SafeFood{{FoodName: "cheddar cheese", Notes: "fine in moderation"}}
	deny := []models.RestrictedFood{{FoodName: "Cheddar Cheese", Reason: "High saturated fat."}}

	v := ResolveFoodSafety(NewFoodIdentity("Cheddar Cheese", ""), models.Nutrition{}, completeProfile(), allow, deny, nil)
	if v.IsSafe {
		t.Error("deny rule must win over an allow rule for the same identity")
	}
}

func TestResolveFoodSafetyBrandMatching(t *testing.T) {
	deny := []models.RestrictedFood{
		{FoodName: "potato chips", BrandName: "SaltyCo", Reason: "Sodium."},
		{FoodName: "soda", Reason: "Sugar."}, // brandless: any brand
	}

	tests := []struct {
		name     string
		cand     FoodIdentity
		wantSafe bool
	}{
		{"branded deny, same brand", NewFoodIdentity("Potato Chips", "saltyco"), false},
		{"branded deny, different brand", NewFoodIdentity("Potato Chips", "OtherCo"), true},
		{"branded deny, brandless candidate", NewFoodIdentity("Potato Chips", ""), true},
		{"brandless deny, any brand", NewFoodIdentity("Soda", "FizzCo"), false},
		{"brandless deny, brandless candidate", NewFoodIdentity("soda", ""), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := ResolveFoodSafety(tt.cand, models.Nutrition{}, completeProfile(), nil, deny, nil)
			if v.IsSafe != tt.wantSafe {
				t.Errorf("IsSafe = %v, want %v (reason %q)", v.IsSafe, tt.wantSafe, v.Reason)
			}
		})
	}
}

func TestResolveFoodSafetyHistoryChecker(t *testing.T) {
	checker := func(n models.Nutrition, history string) (bool, string) {
		if strings.Contains(strings.ToLower(history), "hypertension") && n.SodiumMg > 600 {
			return true, "Risky: high sodium conflicts with your hypertension."
		}
		return false, ""
	}
	user := patientWithHistory("Hypertension, mild arthritis")

	v := ResolveFoodSafety(NewFoodIdentity("salted nuts", ""), models.Nutrition{SodiumMg: 900}, user, nil, nil, checker)
	if v.IsSafe {
		t.Error("history conflict should produce an unsafe verdict")
	}

	v = ResolveFoodSafety(NewFoodIdentity("apple", ""), models.Nutrition{SodiumMg: 2}, user, nil, nil, checker)
	if !v.IsSafe {
		t.Errorf("no conflict expected, got unsafe: %q", v.Reason)
	}
}

// A deny match is returned before the history checker runs at all.
func TestResolveFoodSafetyDenyBeforeChecker(t *testing.T) {
	called := false
	checker := func(models.Nutrition, string) (bool, string) {
		called = true
		return false, ""
	}
	deny := []models.RestrictedFood{{FoodName: "bacon", Reason: "Sodium and saturated fat."}}

	v := ResolveFoodSafety(NewFoodIdentity("Bacon", ""), models.Nutrition{}, patientWithHistory("hypertension"), nil, deny, checker)
	if v.IsSafe {
		t.Error("deny match must be unsafe")
	}
	if called {
		t.Error("history checker must not run once a deny rule matched")
	}
}

func TestResolveFoodSafetyAllowAndDefaultReasons(t *testing.T) {
	allow := []models.SafeFood{{FoodName: "oatmeal"}}

	v := ResolveFoodSafety(NewFoodIdentity("Oatmeal", ""), models.Nutrition{}, completeProfile(), allow, nil, nil)
	if !v.IsSafe || !strings.Contains(v.Reason, "approved list") {
		t.Errorf("allow match should mention the doctor's approval, got %+v", v)
	}

	v = ResolveFoodSafety(NewFoodIdentity("banana", ""), models.Nutrition{}, completeProfile(), allow, nil, nil)
	if !v.IsSafe || !strings.Contains(v.Reason, "No conflicts") {
		t.Errorf("unlisted safe item should get the generic reason, got %+v", v)
	}

	// Verdicts are always complete.
	if v.Reason == "" {
		t.Error("reason must never be empty")
	}
}
