package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/mvaldez/fitpulse/internal/domain"
)

type NutritionUC struct {
	Nutrition domain.NutritionRepo
}

func (uc *NutritionUC) CreateMeal(ctx context.Context, m *domain.Meal) error {
	if err := m.Validate(); err != nil {
		return err
	}
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return uc.Nutrition.SaveMeal(ctx, m)
}

func (uc *NutritionUC) ListMeals(ctx context.Context) ([]domain.Meal, error) {
	return uc.Nutrition.ListMeals(ctx)
}

func (uc *NutritionUC) CreatePlan(ctx context.Context, p *domain.MealPlan) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return uc.Nutrition.SavePlan(ctx, p)
}

func (uc *NutritionUC) GetPlan(ctx context.Context, id uuid.UUID) (*domain.MealPlan, error) {
	return uc.Nutrition.FindPlan(ctx, id)
}

func (uc *NutritionUC) ListPlans(ctx context.Context) ([]domain.MealPlan, error) {
	return uc.Nutrition.ListPlans(ctx)
}

func (uc *NutritionUC) AddMealToPlan(ctx context.Context, planID, mealID uuid.UUID, position int) error {
	if position <= 0 {
		position = 1
	}
	return uc.Nutrition.AddMealToPlan(ctx, planID, mealID, position)
}

func (uc *NutritionUC) CreateRecipe(ctx context.Context, r *domain.Recipe) error {
	if err := r.Validate(); err != nil {
		return err
	}
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return uc.Nutrition.SaveRecipe(ctx, r)
}

func (uc *NutritionUC) ListRecipes(ctx context.Context) ([]domain.Recipe, error) {
	return uc.Nutrition.ListRecipes(ctx)
}

// DailyCalories validates the profile and runs the Harris-Benedict
// calculator; nothing is persisted.
func (uc *NutritionUC) DailyCalories(p *domain.CalorieProfile) (float64, error) {
	if err := p.Validate(); err != nil {
		return 0, err
	}
	return p.DailyCalories(), nil
}
