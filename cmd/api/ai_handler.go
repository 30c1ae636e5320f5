package api

import (
	"io"
	"net/http"

	"github.com/DanielValenz21/LifeStyleIABACK/pkg/ai"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AIProxyHandler relays chat-completions request bodies verbatim to the
// external model service and returns its response untouched. No retry, no
// timeout beyond the transport default, no response validation.
type AIProxyHandler struct {
	client *ai.Client
	logger *zap.Logger
}

func NewAIProxyHandler(client *ai.Client, logger *zap.Logger) *AIProxyHandler {
	return &AIProxyHandler{client: client, logger: logger}
}

// Forward handles POST /ai/generate and POST /ai/adjust
func (h *AIProxyHandler) Forward(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cuerpo de solicitud inválido"})
		return
	}

	status, respBody, err := h.client.Forward(c.Request.Context(), body)
	if err != nil {
		h.logger.Error("AI proxy failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Error al contactar el servicio de IA",
			"details": err.Error(),
		})
		return
	}

	c.Data(status, "application/json", respBody)
}
