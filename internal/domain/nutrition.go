package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Meal struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name        string          `gorm:"size:255"`
	Calories    int             `gorm:"not null"`
	Protein     decimal.Decimal `gorm:"type:decimal(5,2)"`
	Carbs       decimal.Decimal `gorm:"type:decimal(5,2)"`
	Fats        decimal.Decimal `gorm:"type:decimal(5,2)"`
	Description string          `gorm:"type:text"`
}

func (m *Meal) Validate() error {
	errs := FieldErrors{}
	if strings.TrimSpace(m.Name) == "" {
		errs.Add("name", "name cannot be blank")
	}
	if m.Calories < 0 {
		errs.Add("calories", "calories must be zero or positive")
	}
	if m.Protein.IsNegative() {
		errs.Add("protein", "protein must be zero or positive")
	}
	if m.Carbs.IsNegative() {
		errs.Add("carbs", "carbs must be zero or positive")
	}
	if m.Fats.IsNegative() {
		errs.Add("fats", "fats must be zero or positive")
	}
	return errs.OrNil()
}

type MealPlanGoal string

const (
	GoalBulking     MealPlanGoal = "bulking"
	GoalCutting     MealPlanGoal = "cutting"
	GoalMaintenance MealPlanGoal = "maintenance"
)

func (g MealPlanGoal) Valid() bool {
	switch g {
	case GoalBulking, GoalCutting, GoalMaintenance:
		return true
	}
	return false
}

// MealPlan groups meals toward a goal. Entries keep their own ordering and
// a meal appears at most once per plan.
type MealPlan struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name      string          `gorm:"size:255"`
	Goal      MealPlanGoal    `gorm:"type:varchar(20)"`
	Entries   []MealPlanEntry `gorm:"constraint:OnDelete:CASCADE"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (p *MealPlan) Validate() error {
	errs := FieldErrors{}
	if strings.TrimSpace(p.Name) == "" {
		errs.Add("name", "name cannot be blank")
	}
	if !p.Goal.Valid() {
		errs.Add("goal", "goal must be bulking, cutting, or maintenance")
	}
	return errs.OrNil()
}

func (p *MealPlan) TotalCalories() int {
	total := 0
	for i := range p.Entries {
		total += p.Entries[i].Meal.Calories
	}
	return total
}

func (p *MealPlan) TotalProtein() decimal.Decimal { return p.sumMacro(func(m *Meal) decimal.Decimal { return m.Protein }) }
func (p *MealPlan) TotalCarbs() decimal.Decimal   { return p.sumMacro(func(m *Meal) decimal.Decimal { return m.Carbs }) }
func (p *MealPlan) TotalFats() decimal.Decimal    { return p.sumMacro(func(m *Meal) decimal.Decimal { return m.Fats }) }

func (p *MealPlan) sumMacro(pick func(*Meal) decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for i := range p.Entries {
		total = total.Add(pick(&p.Entries[i].Meal))
	}
	return total
}

type MealPlanEntry struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	MealPlanID uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_meal_plan_entries_plan_meal"`
	MealID     uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_meal_plan_entries_plan_meal"`
	Meal       Meal
	Position   int `gorm:"not null;default:1"`
}

type Recipe struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name         string          `gorm:"size:255"`
	Ingredients  string          `gorm:"type:text"`
	Instructions string          `gorm:"type:text"`
	Calories     int             `gorm:"not null"`
	Protein      decimal.Decimal `gorm:"type:decimal(5,2)"`
	Carbs        decimal.Decimal `gorm:"type:decimal(5,2)"`
	Fats         decimal.Decimal `gorm:"type:decimal(5,2)"`
}

func (r *Recipe) Validate() error {
	errs := FieldErrors{}
	if strings.TrimSpace(r.Name) == "" {
		errs.Add("name", "name cannot be blank")
	}
	if strings.TrimSpace(r.Ingredients) == "" {
		errs.Add("ingredients", "ingredients cannot be blank")
	}
	if strings.TrimSpace(r.Instructions) == "" {
		errs.Add("instructions", "instructions cannot be blank")
	}
	if r.Calories < 0 {
		errs.Add("calories", "calories must be zero or positive")
	}
	if r.Protein.IsNegative() {
		errs.Add("protein", "protein must be zero or positive")
	}
	if r.Carbs.IsNegative() {
		errs.Add("carbs", "carbs must be zero or positive")
	}
	if r.Fats.IsNegative() {
		errs.Add("fats", "fats must be zero or positive")
	}
	return errs.OrNil()
}

type ActivityLevel string

const (
	ActivitySedentary ActivityLevel = "sedentary"
	ActivityLight     ActivityLevel = "light_activity"
	ActivityModerate  ActivityLevel = "moderate_activity"
	ActivityHeavy     ActivityLevel = "heavy_activity"
)

// CalorieProfile is the input to the daily calorie calculator.
type CalorieProfile struct {
	Gender        string
	Age           int
	WeightKG      float64
	HeightCM      float64
	ActivityLevel ActivityLevel
}

func (p *CalorieProfile) Validate() error {
	errs := FieldErrors{}
	if p.Gender != "male" && p.Gender != "female" {
		errs.Add("gender", "gender must be male or female")
	}
	if p.Age <= 0 {
		errs.Add("age", "age must be a positive number")
	}
	if p.WeightKG <= 0 {
		errs.Add("weight_kg", "weight must be a positive number")
	}
	if p.HeightCM <= 0 {
		errs.Add("height_cm", "height must be a positive number")
	}
	return errs.OrNil()
}

// DailyCalories applies the Harris-Benedict BMR formula scaled by the
// activity factor.
func (p *CalorieProfile) DailyCalories() float64 {
	bmr := 10*p.WeightKG + 6.25*p.HeightCM - 5*float64(p.Age)
	if p.Gender == "male" {
		bmr += 5
	} else {
		bmr -= 161
	}
	switch p.ActivityLevel {
	case ActivitySedentary:
		return bmr * 1.2
	case ActivityLight:
		return bmr * 1.375
	case ActivityModerate:
		return bmr * 1.55
	default:
		return bmr * 1.725
	}
}
