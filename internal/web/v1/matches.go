package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
)

type createMatchRequest struct {
	ClubID   int64  `json:"club_id" binding:"required"`
	CourtID  int64  `json:"court_id" binding:"required"`
	Duration string `json:"duration" binding:"required"`
}

type endMatchRequest struct {
	FinalScore string `json:"final_score"`
}

type scoreRequest struct {
	PlayerScore   int `json:"player_score"`
	OpponentScore int `json:"opponent_score"`
}

type replayRequest struct {
	Timestamp   string `json:"timestamp" binding:"required"`
	Description string `json:"description"`
}

type shareRequest struct {
	ShareType string `json:"share_type" binding:"required,oneof=public friends private"`
}

// ListMatches reloads and returns the user's matches.
// GET /api/v1/matches
func (h *Handler) ListMatches(c *gin.Context) {
	ctx, span := startSpan(c)
	defer span.End()

	if err := h.matches.Load(ctx); err != nil {
		fail(ctx, c, span, "Load matches failed", err)
		return
	}
	matches := h.matches.Matches()
	span.SetAttributes(attribute.Int("matches.count", len(matches)))
	c.JSON(http.StatusOK, gin.H{"matches": matches, "active": h.matches.Active()})
}

// ActiveMatch returns the match being recorded.
// GET /api/v1/active-match
func (h *Handler) ActiveMatch(c *gin.Context) {
	active := h.matches.Active()
	if active == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No active match"})
		return
	}
	c.JSON(http.StatusOK, active)
}

// CreateMatch sets up a match.
// POST /api/v1/matches
func (h *Handler) CreateMatch(c *gin.Context) {
	ctx, span := startSpan(c)
	defer span.End()

	var req createMatchRequest
	if !bind(ctx, c, span, &req) {
		return
	}

	match, err := h.matches.Create(ctx, req.ClubID, req.CourtID, req.Duration)
	if err != nil {
		fail(ctx, c, span, "Create match failed", err)
		return
	}
	c.JSON(http.StatusCreated, match)
}

// StartMatch begins recording.
// POST /api/v1/matches/:id/start
func (h *Handler) StartMatch(c *gin.Context) {
	ctx, span := startSpan(c)
	defer span.End()

	id, ok := pathID(c, span)
	if !ok {
		return
	}
	match, err := h.matches.Start(ctx, id)
	if err != nil {
		fail(ctx, c, span, "Start match failed", err)
		return
	}
	c.JSON(http.StatusOK, match)
}

// EndMatch finishes a match.
// POST /api/v1/matches/:id/end
func (h *Handler) EndMatch(c *gin.Context) {
	ctx, span := startSpan(c)
	defer span.End()

	id, ok := pathID(c, span)
	if !ok {
		return
	}
	var req endMatchRequest
	if c.Request.ContentLength > 0 && !bind(ctx, c, span, &req) {
		return
	}
	match, err := h.matches.End(ctx, id, req.FinalScore)
	if err != nil {
		fail(ctx, c, span, "End match failed", err)
		return
	}
	c.JSON(http.StatusOK, match)
}

// UpdateScore sets the running score.
// PUT /api/v1/matches/:id/score
func (h *Handler) UpdateScore(c *gin.Context) {
	ctx, span := startSpan(c)
	defer span.End()

	id, ok := pathID(c, span)
	if !ok {
		return
	}
	var req scoreRequest
	if !bind(ctx, c, span, &req) {
		return
	}
	match, err := h.matches.UpdateScore(ctx, id, req.PlayerScore, req.OpponentScore)
	if err != nil {
		fail(ctx, c, span, "Update score failed", err)
		return
	}
	c.JSON(http.StatusOK, match)
}

// ListReplays lists a match's replays.
// GET /api/v1/matches/:id/replays
func (h *Handler) ListReplays(c *gin.Context) {
	ctx, span := startSpan(c)
	defer span.End()

	id, ok := pathID(c, span)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.matches.Replays(ctx, id))
}

// MarkReplay flags a replay moment.
// POST /api/v1/matches/:id/replays
func (h *Handler) MarkReplay(c *gin.Context) {
	ctx, span := startSpan(c)
	defer span.End()

	id, ok := pathID(c, span)
	if !ok {
		return
	}
	var req replayRequest
	if !bind(ctx, c, span, &req) {
		return
	}
	replay, err := h.matches.MarkReplay(ctx, id, req.Timestamp, req.Description)
	if err != nil {
		fail(ctx, c, span, "Mark replay failed", err)
		return
	}
	c.JSON(http.StatusCreated, replay)
}

// ShareMatch changes a match's visibility.
// PATCH /api/v1/matches/:id/share
func (h *Handler) ShareMatch(c *gin.Context) {
	ctx, span := startSpan(c)
	defer span.End()

	id, ok := pathID(c, span)
	if !ok {
		return
	}
	var req shareRequest
	if !bind(ctx, c, span, &req) {
		return
	}
	match, err := h.matches.Share(ctx, id, req.ShareType)
	if err != nil {
		fail(ctx, c, span, "Share match failed", err)
		return
	}
	c.JSON(http.StatusOK, match)
}

// DeleteMatch removes a match.
// DELETE /api/v1/matches/:id
func (h *Handler) DeleteMatch(c *gin.Context) {
	ctx, span := startSpan(c)
	defer span.End()

	id, ok := pathID(c, span)
	if !ok {
		return
	}
	if err := h.matches.Delete(ctx, id); err != nil {
		fail(ctx, c, span, "Delete match failed", err)
		return
	}
	c.Status(http.StatusNoContent)
}
