package domain

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// FitnessMeasurement records a user's height and weight at a point in time.
// BMI, BMI category, and BSA are derived on read, never stored.
type FitnessMeasurement struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID `gorm:"type:uuid;index"`
	HeightCM    float64   `gorm:"not null"`
	WeightKG    float64   `gorm:"not null"`
	Gender      string    `gorm:"size:1"`
	DateOfBirth *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (m *FitnessMeasurement) Validate(now time.Time) error {
	errs := FieldErrors{}
	if m.HeightCM <= 0 {
		errs.Add("height_cm", "height must be a positive number")
	}
	if m.WeightKG <= 0 {
		errs.Add("weight_kg", "weight must be a positive number")
	}
	if m.DateOfBirth != nil && !m.DateOfBirth.Before(now.Truncate(24*time.Hour)) {
		errs.Add("date_of_birth", "date of birth must be in the past")
	}
	return errs.OrNil()
}

func (m *FitnessMeasurement) HeightM() float64 { return m.HeightCM / 100.0 }

func (m *FitnessMeasurement) BMI() float64 { return BMI(m.HeightCM, m.WeightKG) }

func (m *FitnessMeasurement) BMICategory() string { return BMICategory(m.BMI()) }

func (m *FitnessMeasurement) BSA() float64 { return BSA(m.HeightCM, m.WeightKG) }

// BMI is weight(kg) / height(m)^2 rounded to two decimals, 0 for a
// non-positive height.
func BMI(heightCM, weightKG float64) float64 {
	h := heightCM / 100.0
	if h <= 0 {
		return 0.0
	}
	return round2(weightKG / (h * h))
}

// BMICategory maps a BMI value onto the four WHO bands. Each band is
// inclusive at the lower bound: exactly 18.5 is "Normal weight".
func BMICategory(bmi float64) string {
	switch {
	case bmi < 18.5:
		return "Underweight"
	case bmi < 25:
		return "Normal weight"
	case bmi < 30:
		return "Overweight"
	default:
		return "Obese"
	}
}

// BSA is the Mosteller body surface area, sqrt(height_cm * weight_kg / 3600)
// rounded to two decimals, 0 when either input is non-positive.
func BSA(heightCM, weightKG float64) float64 {
	if heightCM <= 0 || weightKG <= 0 {
		return 0.0
	}
	return round2(math.Sqrt(heightCM * weightKG / 3600.0))
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }
