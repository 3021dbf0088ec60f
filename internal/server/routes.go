package server

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"runtime/debug"
	"time"

	domainErrors "github.com/Tomas-vilte/MateRelay/internal/domain/errors"
	"github.com/Tomas-vilte/MateRelay/internal/domain/models"
	"github.com/Tomas-vilte/MateRelay/internal/domain/ports"
	"github.com/Tomas-vilte/MateRelay/internal/logger"
	"github.com/gin-gonic/gin"
)

// NewRouter registra los endpoints del relay sobre un engine de gin.
func NewRouter(relay ports.RelayService, log *slog.Logger) *gin.Engine {
	engine := gin.New()
	engine.Use(requestLogger(log), gin.CustomRecoveryWithWriter(io.Discard, recoverPanic))

	h := NewHandler(relay)
	engine.GET("/jira/issues", h.GetIssues)
	engine.POST("/query-ai", h.QueryAI)
	engine.GET("/healthz", h.Health)

	return engine
}

// recoverPanic responde con el mismo cuerpo estático que un error del endpoint y deja
// el stack en el log del request.
func recoverPanic(c *gin.Context, recovered any) {
	fallback := domainErrors.ErrAIGeneration.Message
	if c.FullPath() == "/jira/issues" {
		fallback = domainErrors.ErrFetchIssues.Message
	}
	logger.Error(c.Request.Context(), "panic recovered", fmt.Errorf("%v", recovered),
		"stack", string(debug.Stack()))
	c.AbortWithStatusJSON(http.StatusInternalServerError, models.ErrorResponse{Error: fallback})
}

// requestLogger deja un logger con method/path en el contexto del request y
// registra el resultado al terminar.
func requestLogger(base *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		reqLog := base.With("method", c.Request.Method, "path", c.Request.URL.Path)
		c.Request = c.Request.WithContext(logger.WithLogger(c.Request.Context(), reqLog))

		c.Next()

		args := []any{"status", c.Writer.Status(), "duration_ms", time.Since(start).Milliseconds()}
		if c.Writer.Status() >= 500 {
			reqLog.Warn("request failed", args...)
			return
		}
		reqLog.Info("request served", args...)
	}
}
