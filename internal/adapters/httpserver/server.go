package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"golang.org/x/oauth2"

	"github.com/mvaldez/fitpulse/internal/domain"
	"github.com/mvaldez/fitpulse/internal/usecase"
)

type Server struct {
	mux *http.ServeMux

	catalog   *usecase.CatalogUC
	carts     *usecase.CartUC
	orders    *usecase.OrderUC
	payments  *usecase.PaymentUC
	content   *usecase.ContentUC
	fitness   *usecase.FitnessUC
	community *usecase.CommunityUC
	workouts  *usecase.WorkoutUC
	nutrition *usecase.NutritionUC
	progress  *usecase.ProgressUC
	users     domain.UserRepo

	videoMeta VideoMetaFetcher
	enricher  DescriptionEnricher

	oauthCfg     *oauth2.Config
	adminAllowed map[string]struct{}
	adminSecret  []byte
}

// VideoMetaFetcher prefills video title/thumbnail from the target page.
type VideoMetaFetcher interface {
	Fetch(url string) (title, thumbnail string, err error)
}

// DescriptionEnricher drafts a description for an entity name.
type DescriptionEnricher interface {
	Describe(name, hint string) (string, error)
}

type Config struct {
	Catalog   *usecase.CatalogUC
	Carts     *usecase.CartUC
	Orders    *usecase.OrderUC
	Payments  *usecase.PaymentUC
	Content   *usecase.ContentUC
	Fitness   *usecase.FitnessUC
	Community *usecase.CommunityUC
	Workouts  *usecase.WorkoutUC
	Nutrition *usecase.NutritionUC
	Progress  *usecase.ProgressUC
	Users     domain.UserRepo

	VideoMeta VideoMetaFetcher
	Enricher  DescriptionEnricher

	OAuth         *oauth2.Config
	AdminEmails   map[string]struct{}
	AdminSecret   []byte
	RatePerMinute int
}

func New(cfg Config) http.Handler {
	s := &Server{
		mux:          http.NewServeMux(),
		catalog:      cfg.Catalog,
		carts:        cfg.Carts,
		orders:       cfg.Orders,
		payments:     cfg.Payments,
		content:      cfg.Content,
		fitness:      cfg.Fitness,
		community:    cfg.Community,
		workouts:     cfg.Workouts,
		nutrition:    cfg.Nutrition,
		progress:     cfg.Progress,
		users:        cfg.Users,
		videoMeta:    cfg.VideoMeta,
		enricher:     cfg.Enricher,
		oauthCfg:     cfg.OAuth,
		adminAllowed: cfg.AdminEmails,
		adminSecret:  cfg.AdminSecret,
	}
	s.routes()
	perMinute := cfg.RatePerMinute
	if perMinute <= 0 {
		perMinute = 120
	}
	return Chain(s.mux,
		RequestID,
		Recovery,
		Logging,
		RateLimit(perMinute),
	)
}

func (s *Server) routes() {
	// store
	s.mux.HandleFunc("GET /api/products", s.handleListProducts)
	s.mux.HandleFunc("GET /api/products/{slug}", s.handleGetProduct)
	s.mux.HandleFunc("GET /api/categories", s.handleListCategories)
	s.mux.HandleFunc("GET /api/cart", s.handleGetCart)
	s.mux.HandleFunc("POST /api/cart/items", s.handleAddCartItem)
	s.mux.HandleFunc("PUT /api/cart/items/{productID}", s.handleSetCartItem)
	s.mux.HandleFunc("DELETE /api/cart/items/{productID}", s.handleRemoveCartItem)
	s.mux.HandleFunc("POST /api/orders", s.handleCreateOrder)
	s.mux.HandleFunc("GET /api/orders", s.handleListOrders)
	s.mux.HandleFunc("GET /api/orders/{id}", s.handleGetOrder)
	s.mux.HandleFunc("PATCH /api/orders/{id}", s.handleUpdateOrder)
	s.mux.HandleFunc("POST /api/orders/{id}/payment", s.handleCreatePayment)
	s.mux.HandleFunc("GET /api/orders/{id}/payment", s.handleGetPayment)
	s.mux.HandleFunc("POST /api/payments/{id}/complete", s.handleCompletePayment)
	s.mux.HandleFunc("POST /api/payments/{id}/fail", s.handleFailPayment)

	// content
	s.mux.HandleFunc("GET /api/articles", s.handleListArticles)
	s.mux.HandleFunc("GET /api/articles/{slug}", s.handleGetArticle)
	s.mux.HandleFunc("GET /api/videos", s.handleListVideos)
	s.mux.HandleFunc("GET /api/videos/{slug}", s.handleGetVideo)
	s.mux.HandleFunc("GET /api/guides", s.handleListGuides)
	s.mux.HandleFunc("GET /api/guides/{slug}", s.handleGetGuide)

	// fitness & tools
	s.mux.HandleFunc("GET /api/measurements", s.handleListMeasurements)
	s.mux.HandleFunc("POST /api/measurements", s.handleCreateMeasurement)
	s.mux.HandleFunc("GET /api/tools/bmi", s.handleBMITool)
	s.mux.HandleFunc("GET /api/tools/calories", s.handleCaloriesTool)

	// community
	s.mux.HandleFunc("GET /api/posts", s.handleListPosts)
	s.mux.HandleFunc("POST /api/posts", s.handleCreatePost)
	s.mux.HandleFunc("GET /api/posts/{id}", s.handleGetPost)
	s.mux.HandleFunc("DELETE /api/posts/{id}", s.handleDeletePost)
	s.mux.HandleFunc("GET /api/posts/{id}/comments", s.handleListComments)
	s.mux.HandleFunc("POST /api/posts/{id}/comments", s.handleAddComment)

	// workouts
	s.mux.HandleFunc("GET /api/exercises", s.handleListExercises)
	s.mux.HandleFunc("POST /api/exercises", s.handleCreateExercise)
	s.mux.HandleFunc("GET /api/workout-plans", s.handleListWorkoutPlans)
	s.mux.HandleFunc("POST /api/workout-plans", s.handleCreateWorkoutPlan)
	s.mux.HandleFunc("GET /api/workout-plans/{id}", s.handleGetWorkoutPlan)
	s.mux.HandleFunc("POST /api/workout-logs", s.handleCreateWorkoutLog)
	s.mux.HandleFunc("GET /api/workout-logs", s.handleListWorkoutLogs)

	// nutrition
	s.mux.HandleFunc("GET /api/meals", s.handleListMeals)
	s.mux.HandleFunc("POST /api/meals", s.handleCreateMeal)
	s.mux.HandleFunc("GET /api/meal-plans", s.handleListMealPlans)
	s.mux.HandleFunc("POST /api/meal-plans", s.handleCreateMealPlan)
	s.mux.HandleFunc("GET /api/meal-plans/{id}", s.handleGetMealPlan)
	s.mux.HandleFunc("POST /api/meal-plans/{id}/meals", s.handleAddMealToPlan)
	s.mux.HandleFunc("GET /api/recipes", s.handleListRecipes)
	s.mux.HandleFunc("POST /api/recipes", s.handleCreateRecipe)

	// progress
	s.mux.HandleFunc("GET /api/weight-logs", s.handleListWeightLogs)
	s.mux.HandleFunc("POST /api/weight-logs", s.handleCreateWeightLog)

	// admin
	s.mux.HandleFunc("GET /auth/google/login", s.handleGoogleLogin)
	s.mux.HandleFunc("GET /auth/google/callback", s.handleGoogleCallback)
	s.mux.Handle("POST /api/admin/products", s.requireAdmin(s.handleAdminCreateProduct))
	s.mux.Handle("PUT /api/admin/products/{slug}", s.requireAdmin(s.handleAdminUpdateProduct))
	s.mux.Handle("DELETE /api/admin/products/{slug}", s.requireAdmin(s.handleAdminDeleteProduct))
	s.mux.Handle("POST /api/admin/products/{slug}/restock", s.requireAdmin(s.handleAdminRestock))
	s.mux.Handle("POST /api/admin/categories", s.requireAdmin(s.handleAdminCreateCategory))
	s.mux.Handle("GET /api/admin/products/export", s.requireAdmin(s.handleAdminExportProducts))
	s.mux.Handle("POST /api/admin/articles", s.requireAdmin(s.handleAdminCreateArticle))
	s.mux.Handle("POST /api/admin/articles/{slug}/publish", s.requireAdmin(s.handleAdminPublishArticle))
	s.mux.Handle("POST /api/admin/videos", s.requireAdmin(s.handleAdminCreateVideo))
	s.mux.Handle("POST /api/admin/videos/{slug}/publish", s.requireAdmin(s.handleAdminPublishVideo))
	s.mux.Handle("POST /api/admin/guides", s.requireAdmin(s.handleAdminCreateGuide))
	s.mux.Handle("POST /api/admin/describe", s.requireAdmin(s.handleAdminDescribe))

	s.mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
}

// currentUserID reads the caller identity injected by the upstream auth
// gateway. The core trusts it; authorization happened before us.
func currentUserID(r *http.Request) (uuid.UUID, error) {
	raw := r.Header.Get("X-User-ID")
	if raw == "" {
		return uuid.Nil, errors.New("missing X-User-ID header")
	}
	return uuid.Parse(raw)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func decodeJSON(r *http.Request, v interface{}) error {
	defer r.Body.Close()
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

func writeErr(w http.ResponseWriter, err error) {
	if fe, ok := domain.AsFieldErrors(err); ok {
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{"errors": fe})
		return
	}
	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not found"})
	case errors.Is(err, domain.ErrConflict):
		writeJSON(w, http.StatusConflict, map[string]string{"error": "already exists"})
	case errors.Is(err, domain.ErrInvalidTransition):
		writeJSON(w, http.StatusConflict, map[string]string{"error": "invalid status transition"})
	case errors.Is(err, domain.ErrInsufficientStock):
		writeJSON(w, http.StatusConflict, map[string]string{"error": "insufficient stock"})
	default:
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
	}
}

func badRequest(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusBadRequest, map[string]string{"error": msg})
}
