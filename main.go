package main

import (
	"log"

	api "github.com/DanielValenz21/LifeStyleIABACK/cmd/api"
	authdomain "github.com/DanielValenz21/LifeStyleIABACK/internal/auth/domain"
	authRepo "github.com/DanielValenz21/LifeStyleIABACK/internal/auth/repository"
	authUsecase "github.com/DanielValenz21/LifeStyleIABACK/internal/auth/usecase"
	plandomain "github.com/DanielValenz21/LifeStyleIABACK/internal/plan/domain"
	planRepo "github.com/DanielValenz21/LifeStyleIABACK/internal/plan/repository"
	planUsecase "github.com/DanielValenz21/LifeStyleIABACK/internal/plan/usecase"
	"github.com/DanielValenz21/LifeStyleIABACK/pkg/ai"
	"github.com/DanielValenz21/LifeStyleIABACK/pkg/config"
	"github.com/DanielValenz21/LifeStyleIABACK/pkg/database"
	"github.com/DanielValenz21/LifeStyleIABACK/pkg/logger"

	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg := config.Load()

	zapLogger, err := logger.New(false)
	if err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}
	defer zapLogger.Sync()

	// Initialize database
	db, err := database.NewPostgresConnection(cfg.DatabaseURL)
	if err != nil {
		zapLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer database.Close(db)

	// Auto-migrate database schemas
	if err := db.AutoMigrate(
		&authdomain.User{},
		&plandomain.Plan{},
		&plandomain.PlanSection{},
		&plandomain.PlanReminder{},
		&plandomain.PlanSummary{},
	); err != nil {
		zapLogger.Fatal("Failed to migrate database", zap.Error(err))
	}

	// Initialize repositories (dependency injection)
	userRepository := authRepo.NewUserRepository(db)
	planRepository := planRepo.NewPlanRepository(db)
	sectionRepository := planRepo.NewSectionRepository(db)
	reminderRepository := planRepo.NewReminderRepository(db)
	summaryRepository := planRepo.NewSummaryRepository(db)

	// Initialize AI client
	aiClient := ai.NewClient(cfg.AIBaseURL, cfg.AIAPIKey, cfg.AIModel)

	// Initialize use cases (dependency injection)
	authUc := authUsecase.NewAuthUsecase(userRepository, cfg)
	planUc := planUsecase.NewPlanUsecase(planRepository, sectionRepository, reminderRepository, summaryRepository, aiClient)

	// Initialize HTTP handler
	handler := api.NewHandler(authUc, planUc, aiClient, cfg, zapLogger, db)

	// Start server
	zapLogger.Info("Server starting", zap.String("port", cfg.Port))
	if err := handler.Start(":" + cfg.Port); err != nil {
		zapLogger.Fatal("Failed to start server", zap.Error(err))
	}
}
