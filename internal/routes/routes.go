package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/marcela981/Somos-Server/internal/config"
	"github.com/marcela981/Somos-Server/internal/handlers"
	"github.com/marcela981/Somos-Server/internal/middleware"
	"github.com/marcela981/Somos-Server/internal/repository"
	"github.com/marcela981/Somos-Server/internal/services"
	"github.com/rs/zerolog"
)

func RegisterRoutes(app *fiber.App, cfg *config.Config, db *pgxpool.Pool, log zerolog.Logger) error {
	userRepo := repository.NewUserRepository(db)
	userProfileRepo := repository.NewUserProfileRepository(db)
	weightLogRepo := repository.NewWeightLogRepository(db)
	workoutLogRepo := repository.NewWorkoutLogRepository(db)
	nutritionLogRepo := repository.NewNutritionLogRepository(db)
	suggestionRepo := repository.NewSuggestionRepository(db)

	var storageService services.StorageService
	if cfg.SupabaseURL != "" && cfg.SupabaseBucket != "" && cfg.SupabaseServiceKey != "" {
		storageService = services.NewSupabaseStorageService(cfg.SupabaseURL, cfg.SupabaseBucket, cfg.SupabaseServiceKey)
	}

	gateway := services.NewGeminiGateway(
		cfg.GeminiBaseURL,
		cfg.GeminiAPIKey,
		cfg.GeminiModel,
		time.Duration(cfg.GeminiTimeoutSeconds)*time.Second,
		log,
	)

	authHandler := handlers.NewAuthHandler(db, userRepo, userProfileRepo, cfg.JWTSecret)
	onboardingHandler := handlers.NewOnboardingHandler(userProfileRepo)
	profileService := services.NewProfileService(userProfileRepo)
	profileHandler := handlers.NewProfileHandler(profileService, userProfileRepo, storageService)
	logsHandler := handlers.NewLogsHandler(weightLogRepo, workoutLogRepo, nutritionLogRepo)
	analyticsService := services.NewAnalyticsService(userProfileRepo, weightLogRepo, workoutLogRepo, nutritionLogRepo, log)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsService)
	adviceService := services.NewAdviceService(
		userProfileRepo,
		weightLogRepo,
		workoutLogRepo,
		nutritionLogRepo,
		suggestionRepo,
		gateway,
		log,
	)
	adviceHandler := handlers.NewAdviceHandler(adviceService)

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Get("/me", middleware.AuthRequired(cfg.JWTSecret), authHandler.Me)

	authProtected := api.Group("/v1", middleware.AuthRequired(cfg.JWTSecret))

	users := authProtected.Group("/users")
	users.Get("/me", authHandler.Me)
	users.Post("/onboarding", onboardingHandler.UserOnboarding)
	users.Get("/profile", profileHandler.GetUserProfile)
	users.Put("/profile", profileHandler.UpdateUserProfile)
	users.Post("/profile/avatar", profileHandler.UploadAvatar)

	logs := authProtected.Group("/logs")
	logs.Post("/weight", logsHandler.CreateWeightLog)
	logs.Get("/weight", logsHandler.ListWeightLogs)
	logs.Post("/workouts", logsHandler.CreateWorkoutLog)
	logs.Get("/workouts", logsHandler.ListWorkoutLogs)
	logs.Post("/nutrition", logsHandler.CreateNutritionLog)
	logs.Get("/nutrition", logsHandler.ListNutritionLogs)

	analytics := authProtected.Group("/analytics")
	analytics.Get("/progress", analyticsHandler.GetProgressSummary)
	analytics.Get("/calorie-goal", analyticsHandler.GetCalorieGoal)

	ai := authProtected.Group("/ai")
	ai.Post("/recommendations", adviceHandler.GetRecommendation)
	ai.Post("/workout-plan", adviceHandler.GetWorkoutPlan)
	ai.Post("/nutrition-advice", adviceHandler.GetNutritionAdvice)
	ai.Post("/analyze-progress", adviceHandler.AnalyzeProgress)
	ai.Get("/history", adviceHandler.GetHistory)

	return registerDocsRoutes(app, cfg)
}
