package utils

import (
	"fmt"
	"strings"

	"github.com/SBP359/MyNutriMate/models"
)

// SafetyVerdict is the authoritative answer for one (food, patient)
// pair. Always complete: both fields are set on every path.
type SafetyVerdict struct {
	IsSafe bool   `json:"is_safe"`
	Reason string `json:"reason"`
}

// FoodIdentity is the normalized join key between a candidate item and
// the doctor's rule lists.
type FoodIdentity struct {
	Name  string `json:"name"`
	Brand string `json:"brand"`
}

// HistoryChecker is the extension point for conflicts between an item
// and the patient's free-text medical history (e.g. a sodium-heavy
// snack against a hypertension note). Implementations are heuristic or
// model-backed; a nil checker means no history screening.
type HistoryChecker func(nutrition models.Nutrition, medicalHistory string) (conflict bool, reason string)

// NormalizeFoodName lowercases and collapses whitespace so that
// "Peanut  Butter " and "peanut butter" share one identity.
func NormalizeFoodName(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

func NewFoodIdentity(name, brand string) FoodIdentity {
	return FoodIdentity{Name: NormalizeFoodName(name), Brand: NormalizeFoodName(brand)}
}

// ruleMatches reports whether a rule's (name, brand) matches the
// candidate. A brandless rule matches any brand of that food name. A
// branded rule matches only that exact brand; in particular it does not
// match a brandless candidate, so an ambiguous identity never fires a
// rule.
func ruleMatches(candidate FoodIdentity, ruleName, ruleBrand string) bool {
	if NormalizeFoodName(ruleName) != candidate.Name {
		return false
	}
	rb := NormalizeFoodName(ruleBrand)
	if rb == "" {
		return true
	}
	return rb == candidate.Brand
}

// ResolveFoodSafety cross-references a candidate item against the
// doctor's restricted and safe lists, then the patient's medical
// history.
//
// Restrictions win over everything else: a restricted match returns
// unsafe regardless of safe-list membership or how healthy the item
// looks, and the rule's stated reason is carried into the verdict.
//
// The verdict must be recomputed on every call. Doctors can edit their
// lists at any time and a cached verdict is unacceptable for a
// safety-relevant answer.
func ResolveFoodSafety(
	candidate FoodIdentity,
	nutrition models.Nutrition,
	user *models.User,
	safeFoods []models.SafeFood,
	restrictedFoods []models.RestrictedFood,
	checker HistoryChecker,
) SafetyVerdict {
	for _, r := range restrictedFoods {
		if ruleMatches(candidate, r.FoodName, r.BrandName) {
			return SafetyVerdict{
				IsSafe: false,
				Reason: fmt.Sprintf("Risky: %s is on your doctor's restricted list. %s", r.FoodName, r.Reason),
			}
		}
	}

	if checker != nil && user != nil && user.MedicalHistory != nil {
		if history := strings.TrimSpace(*user.MedicalHistory); history != "" {
			if conflict, reason := checker(nutrition, history); conflict {
				return SafetyVerdict{IsSafe: false, Reason: reason}
			}
		}
	}

	for _, s := range safeFoods {
		if ruleMatches(candidate, s.FoodName, s.BrandName) {
			return SafetyVerdict{
				IsSafe: true,
				Reason: fmt.Sprintf("Safe: %s is on your doctor's approved list.", s.FoodName),
			}
		}
	}

	return SafetyVerdict{
		IsSafe: true,
		Reason: "No conflicts found with your doctor's lists or your medical history.",
	}
}
