package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"

	"github.com/duynhne/shakplay/internal/core/domain"
)

type scanRequest struct {
	QRData string `json:"qr_data" binding:"required"`
}

// ListClubs returns clubs. With ?q= it searches instead of listing.
// GET /api/v1/clubs
func (h *Handler) ListClubs(c *gin.Context) {
	ctx, span := startSpan(c)
	defer span.End()

	if q, ok := c.GetQuery("q"); ok {
		filter := domain.ClubFilter{City: c.Query("city"), Sport: c.Query("sport")}
		c.JSON(http.StatusOK, h.clubs.Search(ctx, q, filter))
		return
	}

	if err := h.clubs.Load(ctx); err != nil {
		fail(ctx, c, span, "Load clubs failed", err)
		return
	}
	clubs := h.clubs.Clubs()
	span.SetAttributes(attribute.Int("clubs.count", len(clubs)))
	c.JSON(http.StatusOK, clubs)
}

// GetClub returns one club.
// GET /api/v1/clubs/:id
func (h *Handler) GetClub(c *gin.Context) {
	ctx, span := startSpan(c)
	defer span.End()

	id, ok := pathID(c, span)
	if !ok {
		return
	}
	club, err := h.clubs.Get(ctx, id)
	if err != nil {
		fail(ctx, c, span, "Get club failed", err)
		return
	}
	c.JSON(http.StatusOK, club)
}

// ListCourts returns the courts of a club.
// GET /api/v1/clubs/:id/courts
func (h *Handler) ListCourts(c *gin.Context) {
	ctx, span := startSpan(c)
	defer span.End()

	id, ok := pathID(c, span)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.clubs.Courts(ctx, id))
}

// ToggleFavorite flips a club's favorite flag.
// POST /api/v1/clubs/:id/favorite
func (h *Handler) ToggleFavorite(c *gin.Context) {
	ctx, span := startSpan(c)
	defer span.End()

	id, ok := pathID(c, span)
	if !ok {
		return
	}
	state, err := h.clubs.ToggleFavorite(ctx, id)
	if err != nil {
		fail(ctx, c, span, "Toggle favorite failed", err)
		return
	}
	c.JSON(http.StatusOK, state)
}

// ScanQR resolves a court QR code.
// POST /api/v1/qr/scan
func (h *Handler) ScanQR(c *gin.Context) {
	ctx, span := startSpan(c)
	defer span.End()

	var req scanRequest
	if !bind(ctx, c, span, &req) {
		return
	}
	result, err := h.clubs.ScanQR(ctx, req.QRData)
	if err != nil {
		fail(ctx, c, span, "Scan QR failed", err)
		return
	}
	c.JSON(http.StatusOK, result)
}
