package api

import (
	"strings"

	authDelivery "github.com/DanielValenz21/LifeStyleIABACK/internal/auth/delivery"
	authUsecase "github.com/DanielValenz21/LifeStyleIABACK/internal/auth/usecase"
	"github.com/DanielValenz21/LifeStyleIABACK/internal/middleware"
	planDelivery "github.com/DanielValenz21/LifeStyleIABACK/internal/plan/delivery"
	planUsecase "github.com/DanielValenz21/LifeStyleIABACK/internal/plan/usecase"
	"github.com/DanielValenz21/LifeStyleIABACK/pkg/ai"
	"github.com/DanielValenz21/LifeStyleIABACK/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Handler struct {
	authUsecase authUsecase.AuthUsecase
	authHandler *authDelivery.AuthHandler
	planHandler *planDelivery.PlanHandler
	aiProxy     *AIProxyHandler
	config      *config.Config
	logger      *zap.Logger
	db          *gorm.DB
}

func NewHandler(authUc authUsecase.AuthUsecase, planUc planUsecase.PlanUsecase, aiClient *ai.Client, cfg *config.Config, logger *zap.Logger, db *gorm.DB) *Handler {
	return &Handler{
		authUsecase: authUc,
		authHandler: authDelivery.NewAuthHandler(authUc, logger),
		planHandler: planDelivery.NewPlanHandler(planUc, logger),
		aiProxy:     NewAIProxyHandler(aiClient, logger),
		config:      cfg,
		logger:      logger,
		db:          db,
	}
}

func (h *Handler) Start(addr string) error {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(h.logger))
	r.Use(corsMiddleware(h.config.CORSOrigins))

	SetupRoutes(r, h.authUsecase, h.authHandler, h.planHandler, h.aiProxy, h.db)

	return r.Run(addr)
}

func corsMiddleware(origins string) gin.HandlerFunc {
	corsConfig := cors.DefaultConfig()
	if origins == "" || origins == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = strings.Split(origins, ",")
		corsConfig.AllowCredentials = true
	}
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	corsConfig.AddAllowMethods("PATCH")
	return cors.New(corsConfig)
}
