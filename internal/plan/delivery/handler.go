package delivery

import (
	"errors"
	"fmt"
	"net/http"

	plandto "github.com/DanielValenz21/LifeStyleIABACK/internal/plan/dto"
	"github.com/DanielValenz21/LifeStyleIABACK/internal/plan/usecase"
	"github.com/DanielValenz21/LifeStyleIABACK/pkg/ai"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PlanHandler handles plan, section, summary and export HTTP requests
type PlanHandler struct {
	planUsecase usecase.PlanUsecase
	logger      *zap.Logger
}

// NewPlanHandler creates a new PlanHandler
func NewPlanHandler(planUsecase usecase.PlanUsecase, logger *zap.Logger) *PlanHandler {
	return &PlanHandler{
		planUsecase: planUsecase,
		logger:      logger,
	}
}

// ListPlans returns every plan owned by the caller
// GET /plans
func (h *PlanHandler) ListPlans(c *gin.Context) {
	userID := c.GetString("userID")

	plans, err := h.planUsecase.ListPlans(userID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, plans)
}

// CreatePlan creates a new draft plan
// POST /plans
func (h *PlanHandler) CreatePlan(c *gin.Context) {
	userID := c.GetString("userID")

	var req plandto.CreatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cuerpo de solicitud inválido"})
		return
	}

	plan, err := h.planUsecase.CreatePlan(userID, &req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, plan)
}

// GetPlanDetail returns a plan together with its sections
// GET /plans/:id
func (h *PlanHandler) GetPlanDetail(c *gin.Context) {
	userID := c.GetString("userID")
	planID := c.Param("id")

	plan, err := h.planUsecase.GetPlanDetail(userID, planID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, plan)
}

// UpdatePlan applies a partial update to title and/or parameters
// PATCH /plans/:id
func (h *PlanHandler) UpdatePlan(c *gin.Context) {
	userID := c.GetString("userID")
	planID := c.Param("id")

	var patch plandto.PlanPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cuerpo de solicitud inválido"})
		return
	}

	plan, err := h.planUsecase.UpdatePlan(userID, planID, patch)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, plan)
}

// DeletePlan deletes a plan; sections, reminders and summaries cascade
// DELETE /plans/:id
func (h *PlanHandler) DeletePlan(c *gin.Context) {
	userID := c.GetString("userID")
	planID := c.Param("id")

	if err := h.planUsecase.DeletePlan(userID, planID); err != nil {
		h.respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// GenerateSections asks the model for section content and stores the result
// POST /plans/:id/sections
func (h *PlanHandler) GenerateSections(c *gin.Context) {
	userID := c.GetString("userID")
	planID := c.Param("id")

	sections, err := h.planUsecase.GenerateSections(c.Request.Context(), userID, planID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, sections)
}

// AdjustSection revises one section from a user comment
// PATCH /plans/:id/sections/:sectionId
func (h *PlanHandler) AdjustSection(c *gin.Context) {
	userID := c.GetString("userID")
	planID := c.Param("id")
	sectionID := c.Param("sectionId")

	var req plandto.AdjustSectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Comentario requerido"})
		return
	}

	section, err := h.planUsecase.AdjustSection(c.Request.Context(), userID, planID, sectionID, req.Comment)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, section)
}

// GenerateSummary appends a new executive summary for the plan
// POST /plans/:id/summary
func (h *PlanHandler) GenerateSummary(c *gin.Context) {
	userID := c.GetString("userID")
	planID := c.Param("id")

	summary, err := h.planUsecase.GenerateSummary(c.Request.Context(), userID, planID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

// ExportPlan streams the plan as a PDF attachment
// GET /plans/:id/export
func (h *PlanHandler) ExportPlan(c *gin.Context) {
	userID := c.GetString("userID")
	planID := c.Param("id")

	document, err := h.planUsecase.ExportPlan(userID, planID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=plan-%s.pdf", planID))
	c.Data(http.StatusOK, "application/pdf", document)
}

// respondError maps usecase failures onto the fixed JSON error shape.
func (h *PlanHandler) respondError(c *gin.Context, err error) {
	var extractErr *ai.ExtractionError

	switch {
	case errors.Is(err, usecase.ErrPlanNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Plan no encontrado"})
	case errors.Is(err, usecase.ErrSectionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Sección no encontrada"})
	case errors.Is(err, usecase.ErrReminderNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Recordatorio no encontrado"})
	case errors.Is(err, usecase.ErrNothingToUpdate):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Nada para actualizar"})
	case errors.Is(err, usecase.ErrCommentRequired):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Comentario requerido"})
	case errors.As(err, &extractErr):
		h.logger.Warn("AI reply without JSON", zap.String("excerpt", extractErr.Excerpt))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Respuesta IA no contiene JSON",
			"details": extractErr.Excerpt,
		})
	case errors.Is(err, usecase.ErrInvalidAIReply):
		h.logger.Warn("AI reply with invalid JSON", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Respuesta IA con JSON inválido"})
	default:
		h.logger.Error("plan request failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error interno"})
	}
}
