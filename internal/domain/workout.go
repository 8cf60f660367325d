package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type ExerciseCategory string

const (
	ExerciseStrength ExerciseCategory = "Strength"
	ExerciseCardio   ExerciseCategory = "Cardio"
)

func (c ExerciseCategory) Valid() bool {
	return c == ExerciseStrength || c == ExerciseCardio
}

type Exercise struct {
	ID          uuid.UUID        `gorm:"type:uuid;primaryKey"`
	Name        string           `gorm:"size:255"`
	Description string           `gorm:"type:text"`
	Category    ExerciseCategory `gorm:"type:varchar(20)"`
	VideoURL    string           `gorm:"size:500"`
}

func (e *Exercise) Validate() error {
	errs := FieldErrors{}
	if strings.TrimSpace(e.Name) == "" {
		errs.Add("name", "name cannot be blank")
	}
	if !e.Category.Valid() {
		errs.Add("category", "category must be Strength or Cardio")
	}
	return errs.OrNil()
}

type WorkoutPlan struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Name        string     `gorm:"size:255"`
	Description string     `gorm:"type:text"`
	Exercises   []Exercise `gorm:"many2many:workout_plan_exercises"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (p *WorkoutPlan) Validate() error {
	errs := FieldErrors{}
	if strings.TrimSpace(p.Name) == "" {
		errs.Add("name", "name cannot be blank")
	}
	return errs.OrNil()
}

// WorkoutLog is one completed session against a plan.
type WorkoutLog struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID        uuid.UUID `gorm:"type:uuid;index"`
	WorkoutPlanID uuid.UUID `gorm:"type:uuid;index"`
	Date          time.Time `gorm:"type:date"`
	DurationMin   int       `gorm:"not null"`
	Notes         string    `gorm:"type:text"`
}

func (l *WorkoutLog) Validate() error {
	errs := FieldErrors{}
	if l.DurationMin <= 0 {
		errs.Add("duration_min", "duration must be a positive number of minutes")
	}
	if l.Date.IsZero() {
		errs.Add("date", "date is required")
	}
	return errs.OrNil()
}
