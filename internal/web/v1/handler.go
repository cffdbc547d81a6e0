package v1

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	pkgzerolog "github.com/duynhne/pkg/logger/zerolog"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/duynhne/shakplay/internal/core/gateway"
	logicv1 "github.com/duynhne/shakplay/internal/logic/v1"
	"github.com/duynhne/shakplay/middleware"
)

// Diagnoser reports whether the workspace can be reached.
type Diagnoser interface {
	Diagnose(ctx context.Context) gateway.ConnectionStatus
}

// Handler groups HTTP handlers for the app shell API v1.
// Dependencies are injected via the constructor, no global state.
type Handler struct {
	session *logicv1.SessionService
	matches *logicv1.MatchService
	clubs   *logicv1.ClubService
	diag    Diagnoser
	inbox   *logicv1.Inbox
}

// NewHandler creates a Handler over the services of one client session.
func NewHandler(session *logicv1.SessionService, matches *logicv1.MatchService, clubs *logicv1.ClubService, diag Diagnoser, inbox *logicv1.Inbox) *Handler {
	return &Handler{
		session: session,
		matches: matches,
		clubs:   clubs,
		diag:    diag,
		inbox:   inbox,
	}
}

// RegisterRoutes registers all API v1 routes on the given router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/auth/login", h.Login)
	rg.POST("/auth/register", h.Register)
	rg.POST("/auth/logout", h.Logout)
	rg.POST("/auth/refresh", h.RefreshUser)
	rg.GET("/auth/me", h.GetMe)
	rg.PATCH("/auth/me", h.UpdateMe)

	rg.GET("/matches", h.ListMatches)
	rg.POST("/matches", h.CreateMatch)
	rg.GET("/active-match", h.ActiveMatch)
	rg.POST("/matches/:id/start", h.StartMatch)
	rg.POST("/matches/:id/end", h.EndMatch)
	rg.PUT("/matches/:id/score", h.UpdateScore)
	rg.GET("/matches/:id/replays", h.ListReplays)
	rg.POST("/matches/:id/replays", h.MarkReplay)
	rg.PATCH("/matches/:id/share", h.ShareMatch)
	rg.DELETE("/matches/:id", h.DeleteMatch)

	rg.GET("/clubs", h.ListClubs)
	rg.GET("/clubs/:id", h.GetClub)
	rg.GET("/clubs/:id/courts", h.ListCourts)
	rg.POST("/clubs/:id/favorite", h.ToggleFavorite)
	rg.POST("/qr/scan", h.ScanQR)

	rg.GET("/status", h.Status)
	rg.GET("/notifications", h.Notifications)
}

// startSpan opens the per-request span the way every handler does.
func startSpan(c *gin.Context) (context.Context, trace.Span) {
	return middleware.StartSpan(c.Request.Context(), "http.request", trace.WithAttributes(
		attribute.String("layer", "web"),
		attribute.String("method", c.Request.Method),
		attribute.String("path", c.Request.URL.Path),
	))
}

// pathID parses the :id parameter, answering 400 when it is not a number.
func pathID(c *gin.Context, span trace.Span) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		span.SetAttributes(attribute.Bool("request.valid", false))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return 0, false
	}
	return id, true
}

// bind decodes the JSON body, answering 400 on failure.
func bind(ctx context.Context, c *gin.Context, span trace.Span, v any) bool {
	if err := c.ShouldBindJSON(v); err != nil {
		span.SetAttributes(attribute.Bool("request.valid", false))
		span.RecordError(err)
		logger := pkgzerolog.FromContext(ctx)
		logger.Error().Err(err).Msg("Invalid request")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return false
	}
	span.SetAttributes(attribute.Bool("request.valid", true))
	return true
}

// statusFor maps logic and gateway errors to HTTP statuses.
func statusFor(err error) int {
	switch {
	case errors.Is(err, logicv1.ErrNotAuthenticated), errors.Is(err, logicv1.ErrSessionExpired):
		return http.StatusUnauthorized
	case errors.Is(err, logicv1.ErrNoActiveMatch):
		return http.StatusConflict
	case errors.Is(err, gateway.ErrNotConfigured):
		return http.StatusServiceUnavailable
	case errors.Is(err, gateway.ErrNetwork):
		return http.StatusBadGateway
	case errors.Is(err, gateway.ErrRequest):
		return http.StatusBadRequest
	case errors.Is(err, gateway.ErrApplication):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func fail(ctx context.Context, c *gin.Context, span trace.Span, msg string, err error) {
	span.RecordError(err)
	logger := pkgzerolog.FromContext(ctx)
	logger.Error().Err(err).Msg(msg)
	c.JSON(statusFor(err), gin.H{"error": err.Error()})
}

// Status reports the workspace connection state.
// GET /api/v1/status
func (h *Handler) Status(c *gin.Context) {
	ctx, span := startSpan(c)
	defer span.End()

	status := h.diag.Diagnose(ctx)
	span.SetAttributes(
		attribute.Bool("xano.configured", status.Configured),
		attribute.Bool("xano.reachable", status.Reachable),
	)
	c.JSON(http.StatusOK, status)
}

// Notifications returns the most recent user notifications.
// GET /api/v1/notifications
func (h *Handler) Notifications(c *gin.Context) {
	c.JSON(http.StatusOK, h.inbox.Recent())
}
