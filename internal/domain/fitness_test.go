package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBMI(t *testing.T) {
	assert.InDelta(t, 18.51, BMI(175, 56.7), 0.001)
	assert.InDelta(t, 25.0, BMI(200, 100), 0.001)
	assert.Equal(t, 0.0, BMI(0, 80))
	assert.Equal(t, 0.0, BMI(-170, 80))
}

func TestBMICategory(t *testing.T) {
	assert.Equal(t, "Underweight", BMICategory(18.49))
	assert.Equal(t, "Normal weight", BMICategory(18.5))
	assert.Equal(t, "Normal weight", BMICategory(24.99))
	assert.Equal(t, "Overweight", BMICategory(25))
	assert.Equal(t, "Overweight", BMICategory(29.99))
	assert.Equal(t, "Obese", BMICategory(30))
}

func TestBSA(t *testing.T) {
	// sqrt(180*81/3600) = sqrt(4.05)
	assert.InDelta(t, 2.01, BSA(180, 81), 0.001)
	assert.Equal(t, 0.0, BSA(0, 81))
	assert.Equal(t, 0.0, BSA(180, 0))
}

func TestFitnessMeasurementDerived(t *testing.T) {
	m := FitnessMeasurement{HeightCM: 175, WeightKG: 56.7}
	assert.InDelta(t, 18.51, m.BMI(), 0.001)
	assert.Equal(t, "Normal weight", m.BMICategory())
}

func TestFitnessMeasurementValidate(t *testing.T) {
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)

	m := FitnessMeasurement{HeightCM: 175, WeightKG: 70}
	assert.NoError(t, m.Validate(now))

	bad := FitnessMeasurement{HeightCM: 175, WeightKG: -3}
	err := bad.Validate(now)
	fe, ok := AsFieldErrors(err)
	assert.True(t, ok)
	assert.Contains(t, fe, "weight_kg")

	future := now.AddDate(1, 0, 0)
	bad = FitnessMeasurement{HeightCM: 175, WeightKG: 70, DateOfBirth: &future}
	fe, ok = AsFieldErrors(bad.Validate(now))
	assert.True(t, ok)
	assert.Contains(t, fe, "date_of_birth")
}
