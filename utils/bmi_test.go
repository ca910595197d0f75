package utils

import (
	"errors"
	"math"
	"testing"
)

func TestClassifyBodyMass(t *testing.T) {
	tests := []struct {
		name     string
		weightKg float64
		heightCm float64
		wantBMI  float64
		wantCat  string
		wantRisk bool
	}{
		{"overweight scenario", 70, 160, 27.34, BMIOverweight, true},
		{"underweight", 45, 170, 15.57, BMIUnderweight, true},
		{"normal", 60, 170, 20.76, BMINormal, false},
		{"obesity", 100, 170, 34.60, BMIObesity, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ClassifyBodyMass(fptr(tt.weightKg), fptr(tt.heightCm))
			if err != nil {
				t.Fatalf("ClassifyBodyMass() error = %v", err)
			}
			if math.Abs(got.BMI-tt.wantBMI) > 0.01 {
				t.Errorf("BMI = %.2f, want %.2f", got.BMI, tt.wantBMI)
			}
			if got.Category != tt.wantCat {
				t.Errorf("Category = %q, want %q", got.Category, tt.wantCat)
			}
			if got.AtRisk != tt.wantRisk {
				t.Errorf("AtRisk = %v, want %v", got.AtRisk, tt.wantRisk)
			}
		})
	}
}

// Band boundaries are inclusive on the lower edge.
func TestClassifyBodyMassBoundaries(t *testing.T) {
	tests := []struct {
		bmi  float64
		want string
	}{
		{18.5, BMINormal},
		{25.0, BMIOverweight},
		{30.0, BMIObesity},
	}
	for _, tt := range tests {
		// height 100cm makes BMI == weight
		got, err := ClassifyBodyMass(fptr(tt.bmi), fptr(100))
		if err != nil {
			t.Fatalf("ClassifyBodyMass() error = %v", err)
		}
		if got.Category != tt.want {
			t.Errorf("bmi %.1f: Category = %q, want %q", tt.bmi, got.Category, tt.want)
		}
	}
}

func TestClassifyBodyMassUnavailable(t *testing.T) {
	cases := []struct {
		name     string
		weightKg *float64
		heightCm *float64
	}{
		{"missing weight", nil, fptr(170)},
		{"missing height", fptr(70), nil},
		{"zero height", fptr(70), fptr(0)},
	}
	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ClassifyBodyMass(tt.weightKg, tt.heightCm)
			if !errors.Is(err, ErrBodyMassUnavailable) {
				t.Errorf("error = %v, want ErrBodyMassUnavailable", err)
			}
		})
	}
}
