package v1

import (
	"errors"
	"net/http"

	pkgzerolog "github.com/duynhne/pkg/logger/zerolog"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"

	"github.com/duynhne/shakplay/internal/core/domain"
	"github.com/duynhne/shakplay/internal/core/gateway"
)

type sessionView struct {
	State   string       `json:"state"`
	Loading bool         `json:"loading"`
	User    *domain.User `json:"user"`
}

func (h *Handler) view() sessionView {
	return sessionView{
		State:   h.session.State().String(),
		Loading: h.session.Loading(),
		User:    h.session.User(),
	}
}

// Login signs the session in.
// POST /api/v1/auth/login
func (h *Handler) Login(c *gin.Context) {
	ctx, span := startSpan(c)
	defer span.End()

	logger := pkgzerolog.FromContext(ctx)

	var req domain.LoginCredentials
	if !bind(ctx, c, span, &req) {
		return
	}

	if err := h.session.Login(ctx, req); err != nil {
		span.RecordError(err)
		logger.Error().Err(err).Msg("Login failed")
		// The workspace answers bad credentials with an application error.
		if errors.Is(err, gateway.ErrApplication) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	v := h.view()
	if v.User != nil {
		span.SetAttributes(attribute.Int64("user.id", v.User.ID))
		logger.Info().Int64("user_id", v.User.ID).Msg("Login successful")
	}
	c.JSON(http.StatusOK, v)
}

// Register creates an account and signs in.
// POST /api/v1/auth/register
func (h *Handler) Register(c *gin.Context) {
	ctx, span := startSpan(c)
	defer span.End()

	logger := pkgzerolog.FromContext(ctx)

	var req domain.RegisterData
	if !bind(ctx, c, span, &req) {
		return
	}

	if err := h.session.Register(ctx, req); err != nil {
		fail(ctx, c, span, "Registration failed", err)
		return
	}

	v := h.view()
	if v.User != nil {
		logger.Info().Int64("user_id", v.User.ID).Msg("Registration successful")
	}
	c.JSON(http.StatusCreated, v)
}

// Logout always succeeds locally.
// POST /api/v1/auth/logout
func (h *Handler) Logout(c *gin.Context) {
	ctx, span := startSpan(c)
	defer span.End()

	h.session.Logout(ctx)
	c.JSON(http.StatusOK, h.view())
}

// GetMe returns the session state and user.
// GET /api/v1/auth/me
func (h *Handler) GetMe(c *gin.Context) {
	_, span := startSpan(c)
	defer span.End()

	v := h.view()
	span.SetAttributes(attribute.String("session.state", v.State))
	if v.User == nil {
		c.JSON(http.StatusUnauthorized, v)
		return
	}
	c.JSON(http.StatusOK, v)
}

// UpdateMe patches the signed-in user's profile.
// PATCH /api/v1/auth/me
func (h *Handler) UpdateMe(c *gin.Context) {
	ctx, span := startSpan(c)
	defer span.End()

	var req domain.ProfileUpdate
	if !bind(ctx, c, span, &req) {
		return
	}

	if err := h.session.UpdateProfile(ctx, req); err != nil {
		fail(ctx, c, span, "Profile update failed", err)
		return
	}
	c.JSON(http.StatusOK, h.view())
}

// RefreshUser refetches the profile.
// POST /api/v1/auth/refresh
func (h *Handler) RefreshUser(c *gin.Context) {
	ctx, span := startSpan(c)
	defer span.End()

	if err := h.session.RefreshUser(ctx); err != nil {
		fail(ctx, c, span, "Refresh user failed", err)
		return
	}
	c.JSON(http.StatusOK, h.view())
}
