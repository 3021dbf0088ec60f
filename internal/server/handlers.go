package server

import (
	stderrors "errors"
	"net/http"

	domainErrors "github.com/Tomas-vilte/MateRelay/internal/domain/errors"
	"github.com/Tomas-vilte/MateRelay/internal/domain/models"
	"github.com/Tomas-vilte/MateRelay/internal/domain/ports"
	"github.com/Tomas-vilte/MateRelay/internal/logger"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	relay ports.RelayService
}

func NewHandler(relay ports.RelayService) *Handler {
	return &Handler{relay: relay}
}

// GetIssues atiende GET /jira/issues?type=&priority=&status=&createdAfter=&createdBefore=
func (h *Handler) GetIssues(c *gin.Context) {
	var filter models.IssueFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		writeError(c, domainErrors.ErrFetchIssues.WithError(err), domainErrors.ErrFetchIssues.Message)
		return
	}

	result, err := h.relay.SearchIssues(c.Request.Context(), filter)
	if err != nil {
		writeError(c, err, domainErrors.ErrFetchIssues.Message)
		return
	}

	c.JSON(http.StatusOK, result)
}

// QueryAI atiende POST /query-ai. Un cuerpo ilegible se trata igual que un prompt ausente;
// prompt y filtros escalares que no son strings se pasan a texto.
func (h *Handler) QueryAI(c *gin.Context) {
	var req models.AIQueryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, domainErrors.ErrPromptRequired.WithError(err), domainErrors.ErrAIGeneration.Message)
		return
	}

	output, err := h.relay.QueryAI(c.Request.Context(), req.PromptText(), req.Filter())
	if err != nil {
		writeError(c, err, domainErrors.ErrAIGeneration.Message)
		return
	}

	c.JSON(http.StatusOK, models.AIQueryResponse{Response: output})
}

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// writeError traduce la categoría del error a status HTTP y a un mensaje estático.
// El detalle nunca sale hacia el cliente; fallback cubre errores sin categoría conocida.
func writeError(c *gin.Context, err error, fallback string) {
	status, message := statusFor(err, fallback)
	if status >= http.StatusInternalServerError {
		logger.Error(c.Request.Context(), "upstream call failed", err, "type", domainErrors.TypeOf(err))
	} else {
		logger.Debug(c.Request.Context(), "request rejected", "error", err)
	}
	c.AbortWithStatusJSON(status, models.ErrorResponse{Error: message})
}

func statusFor(err error, fallback string) (int, string) {
	switch domainErrors.TypeOf(err) {
	case domainErrors.TypeInput:
		var appErr *domainErrors.AppError
		if stderrors.As(err, &appErr) {
			return http.StatusBadRequest, appErr.Message
		}
		return http.StatusBadRequest, domainErrors.ErrPromptRequired.Message
	case domainErrors.TypeTracker:
		return http.StatusInternalServerError, domainErrors.ErrFetchIssues.Message
	case domainErrors.TypeAI:
		return http.StatusInternalServerError, domainErrors.ErrAIGeneration.Message
	default:
		return http.StatusInternalServerError, fallback
	}
}
