package app

import (
	"net/http"
	"os"
	"strconv"
	"strings"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"gorm.io/gorm"

	"github.com/rs/zerolog/log"

	"github.com/mvaldez/fitpulse/internal/adapters/enrich"
	"github.com/mvaldez/fitpulse/internal/adapters/httpserver"
	"github.com/mvaldez/fitpulse/internal/adapters/repo/postgres"
	"github.com/mvaldez/fitpulse/internal/adapters/scraper"
	"github.com/mvaldez/fitpulse/internal/domain"
	"github.com/mvaldez/fitpulse/internal/usecase"
)

type App struct {
	DB      *gorm.DB
	handler http.Handler
}

func NewApp(db *gorm.DB) (*App, error) {
	productRepo := postgres.NewProductRepo(db)
	cartRepo := postgres.NewCartRepo(db)
	orderRepo := postgres.NewOrderRepo(db)
	paymentRepo := postgres.NewPaymentRepo(db)
	articleRepo := postgres.NewArticleRepo(db)
	videoRepo := postgres.NewVideoRepo(db)
	guideRepo := postgres.NewExerciseGuideRepo(db)
	fitnessRepo := postgres.NewFitnessRepo(db)
	forumRepo := postgres.NewForumRepo(db)
	workoutRepo := postgres.NewWorkoutRepo(db)
	nutritionRepo := postgres.NewNutritionRepo(db)
	progressRepo := postgres.NewProgressRepo(db)
	userRepo := postgres.NewUserRepo(db)

	var videoMeta httpserver.VideoMetaFetcher = scraper.NewVideoMetaScraper()

	var enricher httpserver.DescriptionEnricher
	if describer, err := enrich.NewOpenAIDescriber(os.Getenv("OPENAI_API_KEY")); err != nil {
		log.Warn().Err(err).Msg("description enrichment disabled")
	} else {
		enricher = describer
	}

	var oauthCfg *oauth2.Config
	googleID := os.Getenv("GOOGLE_CLIENT_ID")
	googleSecret := os.Getenv("GOOGLE_CLIENT_SECRET")
	baseURL := os.Getenv("BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}
	if googleID != "" && googleSecret != "" {
		oauthCfg = &oauth2.Config{
			ClientID:     googleID,
			ClientSecret: googleSecret,
			RedirectURL:  baseURL + "/auth/google/callback",
			Scopes:       []string{"openid", "email", "profile"},
			Endpoint:     google.Endpoint,
		}
	}

	allowed := map[string]struct{}{}
	if raw := os.Getenv("ADMIN_ALLOWED_EMAILS"); raw != "" {
		for _, e := range strings.Split(raw, ",") {
			e = strings.ToLower(strings.TrimSpace(e))
			if e != "" {
				allowed[e] = struct{}{}
			}
		}
	}

	adminSecret := os.Getenv("ADMIN_COOKIE_SECRET")
	if adminSecret == "" {
		adminSecret = os.Getenv("SECRET_KEY")
	}
	if adminSecret == "" {
		log.Warn().Msg("ADMIN_COOKIE_SECRET not set, admin sessions will not survive restarts")
		adminSecret = "dev-only-secret"
	}

	ratePerMinute := 0
	if raw := os.Getenv("RATE_LIMIT_PER_MINUTE"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			ratePerMinute = n
		}
	}

	handler := httpserver.New(httpserver.Config{
		Catalog:   &usecase.CatalogUC{Products: productRepo},
		Carts:     &usecase.CartUC{Carts: cartRepo, Products: productRepo},
		Orders:    &usecase.OrderUC{Orders: orderRepo, Carts: cartRepo, Products: productRepo},
		Payments:  &usecase.PaymentUC{Payments: paymentRepo, Orders: orderRepo},
		Content:   &usecase.ContentUC{Articles: articleRepo, Videos: videoRepo, Guides: guideRepo},
		Fitness:   &usecase.FitnessUC{Measurements: fitnessRepo},
		Community: &usecase.CommunityUC{Forum: forumRepo},
		Workouts:  &usecase.WorkoutUC{Workouts: workoutRepo},
		Nutrition: &usecase.NutritionUC{Nutrition: nutritionRepo},
		Progress:  &usecase.ProgressUC{Progress: progressRepo},
		Users:     userRepo,

		VideoMeta: videoMeta,
		Enricher:  enricher,

		OAuth:         oauthCfg,
		AdminEmails:   allowed,
		AdminSecret:   []byte(adminSecret),
		RatePerMinute: ratePerMinute,
	})

	return &App{DB: db, handler: handler}, nil
}

func (a *App) HTTPHandler() http.Handler { return a.handler }

// Migrate applies the schema. AutoMigrate covers the entities; the raw
// statements patch what gorm cannot express or older deployments miss.
func (a *App) Migrate() error {
	if err := a.DB.AutoMigrate(
		&domain.User{},
		&domain.Category{}, &domain.Product{},
		&domain.Cart{}, &domain.CartItem{},
		&domain.Order{}, &domain.OrderItem{}, &domain.Payment{},
		&domain.Article{}, &domain.Video{}, &domain.ExerciseGuide{},
		&domain.FitnessMeasurement{},
		&domain.ForumPost{}, &domain.Comment{},
		&domain.Exercise{}, &domain.WorkoutPlan{}, &domain.WorkoutLog{},
		&domain.Meal{}, &domain.MealPlan{}, &domain.MealPlanEntry{}, &domain.Recipe{},
		&domain.WeightLog{},
	); err != nil {
		return err
	}

	_ = a.DB.Exec("CREATE INDEX IF NOT EXISTS idx_orders_user_status ON orders(user_id, status)").Error
	_ = a.DB.Exec("CREATE INDEX IF NOT EXISTS idx_forum_posts_active_created ON forum_posts(is_active, created_at)").Error
	_ = a.DB.Exec("CREATE INDEX IF NOT EXISTS idx_weight_logs_user_date ON weight_logs(user_id, date_logged)").Error
	_ = a.DB.Exec("ALTER TABLE products ADD COLUMN IF NOT EXISTS image_url VARCHAR(500)").Error

	return nil
}
