package utils

import "errors"

// ErrBodyMassUnavailable means height or weight is missing. Callers
// should prompt for measurements rather than show a value.
var ErrBodyMassUnavailable = errors.New("height and weight are required for BMI")

// BMI categories. Each band is inclusive on its lower edge: exactly
// 18.5 is normal, exactly 25 is overweight, exactly 30 is obesity.
const (
	BMIUnderweight = "underweight"
	BMINormal      = "normal"
	BMIOverweight  = "overweight"
	BMIObesity     = "obesity"
)

type BodyMass struct {
	BMI      float64 `json:"bmi"`
	Category string  `json:"category"`
	AtRisk   bool    `json:"at_risk"`
}

// ClassifyBodyMass expects weight in kilograms and height in
// centimeters, either of which may be absent.
func ClassifyBodyMass(weightKg, heightCm *float64) (BodyMass, error) {
	if weightKg == nil || heightCm == nil || *heightCm == 0 {
		return BodyMass{}, ErrBodyMassUnavailable
	}

	h := *heightCm / 100.0 // to meters
	bmi := *weightKg / (h * h)

	switch {
	case bmi < 18.5:
		return BodyMass{BMI: bmi, Category: BMIUnderweight, AtRisk: true}, nil
	case bmi < 25.0:
		return BodyMass{BMI: bmi, Category: BMINormal, AtRisk: false}, nil
	case bmi < 30.0:
		return BodyMass{BMI: bmi, Category: BMIOverweight, AtRisk: true}, nil
	default:
		return BodyMass{BMI: bmi, Category: BMIObesity, AtRisk: true}, nil
	}
}
