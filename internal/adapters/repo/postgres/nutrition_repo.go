package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mvaldez/fitpulse/internal/domain"
)

type NutritionRepo struct{ db *gorm.DB }

func NewNutritionRepo(db *gorm.DB) *NutritionRepo { return &NutritionRepo{db: db} }

func (r *NutritionRepo) SaveMeal(ctx context.Context, m *domain.Meal) error {
	return r.db.WithContext(ctx).Save(m).Error
}

func (r *NutritionRepo) ListMeals(ctx context.Context) ([]domain.Meal, error) {
	var list []domain.Meal
	if err := r.db.WithContext(ctx).Order("name asc").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *NutritionRepo) SavePlan(ctx context.Context, p *domain.MealPlan) error {
	return r.db.WithContext(ctx).Omit("Entries").Save(p).Error
}

func (r *NutritionRepo) FindPlan(ctx context.Context, id uuid.UUID) (*domain.MealPlan, error) {
	var p domain.MealPlan
	if err := r.db.WithContext(ctx).
		Preload("Entries", func(db *gorm.DB) *gorm.DB { return db.Order("position asc") }).
		Preload("Entries.Meal").
		First(&p, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *NutritionRepo) ListPlans(ctx context.Context) ([]domain.MealPlan, error) {
	var list []domain.MealPlan
	if err := r.db.WithContext(ctx).
		Preload("Entries", func(db *gorm.DB) *gorm.DB { return db.Order("position asc") }).
		Preload("Entries.Meal").
		Order("created_at desc").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *NutritionRepo) AddMealToPlan(ctx context.Context, planID, mealID uuid.UUID, position int) error {
	entry := domain.MealPlanEntry{
		ID:         uuid.New(),
		MealPlanID: planID,
		MealID:     mealID,
		Position:   position,
	}
	if err := r.db.WithContext(ctx).Create(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrConflict
		}
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return domain.ErrNotFound
		}
		return err
	}
	return nil
}

func (r *NutritionRepo) SaveRecipe(ctx context.Context, rec *domain.Recipe) error {
	return r.db.WithContext(ctx).Save(rec).Error
}

func (r *NutritionRepo) ListRecipes(ctx context.Context) ([]domain.Recipe, error) {
	var list []domain.Recipe
	if err := r.db.WithContext(ctx).Order("name asc").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}
