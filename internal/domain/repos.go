package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type UserRepo interface {
	Save(ctx context.Context, u *User) error
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
}

type ProductRepo interface {
	Save(ctx context.Context, p *Product) error
	FindByID(ctx context.Context, id uuid.UUID) (*Product, error)
	FindBySlug(ctx context.Context, slug string) (*Product, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
	List(ctx context.Context, f ProductFilter) ([]Product, int64, error)
	// AdjustStock applies delta atomically; a negative delta that would
	// drive stock below zero fails with ErrInsufficientStock.
	AdjustStock(ctx context.Context, id uuid.UUID, delta int) error
	Delete(ctx context.Context, id uuid.UUID) error
	SaveCategory(ctx context.Context, c *Category) error
	ListCategories(ctx context.Context) ([]Category, error)
}

type CartRepo interface {
	FindOrCreateByUser(ctx context.Context, userID uuid.UUID) (*Cart, error)
	FindByID(ctx context.Context, id uuid.UUID) (*Cart, error)
	// AddItem increments the (cart, product) line atomically, creating it
	// when absent.
	AddItem(ctx context.Context, cartID, productID uuid.UUID, quantity int) (*CartItem, error)
	SetQuantity(ctx context.Context, cartID, productID uuid.UUID, quantity int) (*CartItem, error)
	RemoveItem(ctx context.Context, cartID, productID uuid.UUID) error
	ClearItems(ctx context.Context, cartID uuid.UUID) error
}

type OrderRepo interface {
	// Create persists the order with its items, decrements product stock,
	// and empties the source cart (o.CartID) in one transaction.
	Create(ctx context.Context, o *Order) error
	Save(ctx context.Context, o *Order) error
	FindByID(ctx context.Context, id uuid.UUID) (*Order, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]Order, error)
}

type PaymentRepo interface {
	// Create fails with ErrConflict when the order already has a payment.
	Create(ctx context.Context, p *Payment) error
	Save(ctx context.Context, p *Payment) error
	FindByID(ctx context.Context, id uuid.UUID) (*Payment, error)
	FindByOrder(ctx context.Context, orderID uuid.UUID) (*Payment, error)
}

type ArticleRepo interface {
	Save(ctx context.Context, a *Article) error
	FindBySlug(ctx context.Context, slug string) (*Article, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
	List(ctx context.Context) ([]Article, error)
	ListPublished(ctx context.Context) ([]Article, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type VideoRepo interface {
	Save(ctx context.Context, v *Video) error
	FindBySlug(ctx context.Context, slug string) (*Video, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
	List(ctx context.Context) ([]Video, error)
	ListPublished(ctx context.Context) ([]Video, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type ExerciseGuideRepo interface {
	Save(ctx context.Context, g *ExerciseGuide) error
	FindBySlug(ctx context.Context, slug string) (*ExerciseGuide, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
	List(ctx context.Context) ([]ExerciseGuide, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type FitnessRepo interface {
	Save(ctx context.Context, m *FitnessMeasurement) error
	FindByID(ctx context.Context, id uuid.UUID) (*FitnessMeasurement, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]FitnessMeasurement, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type ForumRepo interface {
	SavePost(ctx context.Context, p *ForumPost) error
	FindPost(ctx context.Context, id uuid.UUID) (*ForumPost, error)
	ListActivePosts(ctx context.Context) ([]ForumPost, error)
	DeactivatePost(ctx context.Context, id uuid.UUID) error
	SaveComment(ctx context.Context, c *Comment) error
	ListComments(ctx context.Context, postID uuid.UUID) ([]Comment, error)
	DeactivateComment(ctx context.Context, id uuid.UUID) error
}

type WorkoutRepo interface {
	SaveExercise(ctx context.Context, e *Exercise) error
	ListExercises(ctx context.Context) ([]Exercise, error)
	SavePlan(ctx context.Context, p *WorkoutPlan) error
	FindPlan(ctx context.Context, id uuid.UUID) (*WorkoutPlan, error)
	ListPlans(ctx context.Context) ([]WorkoutPlan, error)
	SaveLog(ctx context.Context, l *WorkoutLog) error
	ListLogsByUser(ctx context.Context, userID uuid.UUID) ([]WorkoutLog, error)
}

type NutritionRepo interface {
	SaveMeal(ctx context.Context, m *Meal) error
	ListMeals(ctx context.Context) ([]Meal, error)
	SavePlan(ctx context.Context, p *MealPlan) error
	FindPlan(ctx context.Context, id uuid.UUID) (*MealPlan, error)
	ListPlans(ctx context.Context) ([]MealPlan, error)
	// AddMealToPlan fails with ErrConflict when the meal is already in the
	// plan.
	AddMealToPlan(ctx context.Context, planID, mealID uuid.UUID, position int) error
	SaveRecipe(ctx context.Context, r *Recipe) error
	ListRecipes(ctx context.Context) ([]Recipe, error)
}

type ProgressRepo interface {
	// SaveLog fails with ErrConflict on a second entry for the same user
	// and day.
	SaveLog(ctx context.Context, l *WeightLog) error
	ListByUser(ctx context.Context, userID uuid.UUID, from, to *time.Time) ([]WeightLog, error)
}
