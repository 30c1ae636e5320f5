package api

import (
	"net/http"

	"github.com/DanielValenz21/LifeStyleIABACK/internal/auth/delivery"
	authUsecase "github.com/DanielValenz21/LifeStyleIABACK/internal/auth/usecase"
	planDelivery "github.com/DanielValenz21/LifeStyleIABACK/internal/plan/delivery"
	"github.com/DanielValenz21/LifeStyleIABACK/pkg/database"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupRoutes(r *gin.Engine, authUc authUsecase.AuthUsecase, authHandler *delivery.AuthHandler, planHandler *planDelivery.PlanHandler, aiProxy *AIProxyHandler, db *gorm.DB) {
	// Health check (no auth required)
	r.GET("/api/health", func(c *gin.Context) {
		if err := database.Ping(db); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "db": "down"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "db": "up"})
	})

	// Auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
	}

	// Plan routes (protected)
	plans := r.Group("/plans")
	plans.Use(delivery.AuthMiddleware(authUc))
	{
		plans.GET("", planHandler.ListPlans)
		plans.POST("", planHandler.CreatePlan)
		plans.GET("/:id", planHandler.GetPlanDetail)
		plans.PATCH("/:id", planHandler.UpdatePlan)
		plans.DELETE("/:id", planHandler.DeletePlan)
		plans.POST("/:id/sections", planHandler.GenerateSections)
		plans.PATCH("/:id/sections/:sectionId", planHandler.AdjustSection)
		plans.POST("/:id/summary", planHandler.GenerateSummary)
		plans.GET("/:id/export", planHandler.ExportPlan)
		plans.POST("/:id/reminders", planHandler.CreateReminder)
		plans.GET("/:id/reminders", planHandler.ListReminders)
	}

	// Reminder routes (protected) - addressed by reminder id, ownership
	// resolved through the owning plan
	reminders := r.Group("/reminders")
	reminders.Use(delivery.AuthMiddleware(authUc))
	{
		reminders.PATCH("/:id", planHandler.UpdateReminder)
		reminders.DELETE("/:id", planHandler.DeleteReminder)
	}

	// AI proxy routes (protected)
	aiGroup := r.Group("/ai")
	aiGroup.Use(delivery.AuthMiddleware(authUc))
	{
		aiGroup.POST("/generate", aiProxy.Forward)
		aiGroup.POST("/adjust", aiProxy.Forward)
	}
}
