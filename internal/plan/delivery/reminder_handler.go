package delivery

import (
	"net/http"

	plandto "github.com/DanielValenz21/LifeStyleIABACK/internal/plan/dto"

	"github.com/gin-gonic/gin"
)

// CreateReminder attaches a recurrence rule to a plan
// POST /plans/:id/reminders
func (h *PlanHandler) CreateReminder(c *gin.Context) {
	userID := c.GetString("userID")
	planID := c.Param("id")

	var req plandto.CreateReminderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Regla requerida"})
		return
	}

	reminder, err := h.planUsecase.CreateReminder(userID, planID, &req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, reminder)
}

// ListReminders returns all reminders of a plan
// GET /plans/:id/reminders
func (h *PlanHandler) ListReminders(c *gin.Context) {
	userID := c.GetString("userID")
	planID := c.Param("id")

	reminders, err := h.planUsecase.ListReminders(userID, planID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, reminders)
}

// UpdateReminder applies a partial update to rule and/or is_active
// PATCH /reminders/:id
func (h *PlanHandler) UpdateReminder(c *gin.Context) {
	userID := c.GetString("userID")
	reminderID := c.Param("id")

	var patch plandto.ReminderPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cuerpo de solicitud inválido"})
		return
	}

	reminder, err := h.planUsecase.UpdateReminder(userID, reminderID, patch)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, reminder)
}

// DeleteReminder deletes a reminder
// DELETE /reminders/:id
func (h *PlanHandler) DeleteReminder(c *gin.Context) {
	userID := c.GetString("userID")
	reminderID := c.Param("id")

	if err := h.planUsecase.DeleteReminder(userID, reminderID); err != nil {
		h.respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
