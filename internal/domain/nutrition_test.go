package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestDailyCalories(t *testing.T) {
	p := CalorieProfile{Gender: "male", Age: 30, WeightKG: 80, HeightCM: 180, ActivityLevel: ActivitySedentary}
	// bmr = 10*80 + 6.25*180 - 5*30 + 5 = 1780
	assert.InDelta(t, 2136.0, p.DailyCalories(), 0.001)

	p.Gender = "female"
	// bmr = 1775 - 161 = 1614
	assert.InDelta(t, 1936.8, p.DailyCalories(), 0.001)

	p.ActivityLevel = ActivityModerate
	assert.InDelta(t, 1614*1.55, p.DailyCalories(), 0.001)

	p.ActivityLevel = ActivityHeavy
	assert.InDelta(t, 1614*1.725, p.DailyCalories(), 0.001)
}

func TestCalorieProfileValidate(t *testing.T) {
	p := CalorieProfile{Gender: "other", Age: 0, WeightKG: -1, HeightCM: 0}
	fe, ok := AsFieldErrors(p.Validate())
	assert.True(t, ok)
	assert.Contains(t, fe, "gender")
	assert.Contains(t, fe, "age")
	assert.Contains(t, fe, "weight_kg")
	assert.Contains(t, fe, "height_cm")
}

func TestMealPlanTotals(t *testing.T) {
	plan := MealPlan{Entries: []MealPlanEntry{
		{Meal: Meal{Calories: 500, Protein: decimal.RequireFromString("30.5"), Carbs: decimal.NewFromInt(60), Fats: decimal.NewFromInt(10)}},
		{Meal: Meal{Calories: 350, Protein: decimal.RequireFromString("24.5"), Carbs: decimal.NewFromInt(40), Fats: decimal.NewFromInt(8)}},
	}}
	assert.Equal(t, 850, plan.TotalCalories())
	assert.True(t, plan.TotalProtein().Equal(decimal.NewFromInt(55)))
	assert.True(t, plan.TotalCarbs().Equal(decimal.NewFromInt(100)))
	assert.True(t, plan.TotalFats().Equal(decimal.NewFromInt(18)))
}

func TestMealValidate(t *testing.T) {
	m := Meal{Name: "", Calories: -10, Protein: decimal.NewFromInt(-1)}
	fe, ok := AsFieldErrors(m.Validate())
	assert.True(t, ok)
	assert.Contains(t, fe, "name")
	assert.Contains(t, fe, "calories")
	assert.Contains(t, fe, "protein")
}

func TestMealPlanValidateGoal(t *testing.T) {
	p := MealPlan{Name: "Summer cut", Goal: MealPlanGoal("shredding")}
	fe, ok := AsFieldErrors(p.Validate())
	assert.True(t, ok)
	assert.Contains(t, fe, "goal")

	p.Goal = GoalCutting
	assert.NoError(t, p.Validate())
}
