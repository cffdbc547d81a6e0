package endpoint

import (
	"context"
	"fmt"

	"github.com/duynhne/shakplay/internal/core/domain"
	"github.com/duynhne/shakplay/internal/core/gateway"
)

// PathMyMatches lists the current user's matches.
const PathMyMatches = "/matches/my"

// Matches covers match recording, replays, invites and social features.
type Matches struct{ c gateway.Caller }

// MyMatches lists the user's matches, optionally filtered by status.
func (m *Matches) MyMatches(ctx context.Context, status string, limit int) gateway.Result[[]domain.Match] {
	if limit <= 0 {
		limit = 50
	}
	q := newQuery().str("status", status).num("limit", limit).values()
	return gateway.Do[[]domain.Match](ctx, m.c, get(PathMyMatches, q))
}

func (m *Matches) Match(ctx context.Context, matchID int64) gateway.Result[domain.Match] {
	return gateway.Do[domain.Match](ctx, m.c, get(fmt.Sprintf("/matches/%d", matchID), nil))
}

func (m *Matches) Create(ctx context.Context, match domain.NewMatch) gateway.Result[domain.Match] {
	return gateway.Do[domain.Match](ctx, m.c, post("/matches", match))
}

// Start begins recording.
func (m *Matches) Start(ctx context.Context, matchID int64) gateway.Result[domain.Match] {
	return gateway.Do[domain.Match](ctx, m.c, patch(fmt.Sprintf("/matches/%d/start", matchID), nil))
}

func (m *Matches) End(ctx context.Context, matchID int64, finalScore string) gateway.Result[domain.Match] {
	body := map[string]any{"final_score": nil}
	if finalScore != "" {
		body["final_score"] = finalScore
	}
	return gateway.Do[domain.Match](ctx, m.c, patch(fmt.Sprintf("/matches/%d/end", matchID), body))
}

func (m *Matches) UpdateScore(ctx context.Context, matchID int64, playerScore, opponentScore int) gateway.Result[domain.Match] {
	body := map[string]int{"player_score": playerScore, "opponent_score": opponentScore}
	return gateway.Do[domain.Match](ctx, m.c, patch(fmt.Sprintf("/matches/%d/score", matchID), body))
}

// MarkReplay flags a moment of a running match.
func (m *Matches) MarkReplay(ctx context.Context, matchID int64, timestamp, description string) gateway.Result[domain.Replay] {
	body := struct {
		MatchID     int64  `json:"match_id"`
		Timestamp   string `json:"timestamp"`
		Description string `json:"description,omitempty"`
	}{matchID, timestamp, description}
	return gateway.Do[domain.Replay](ctx, m.c, post("/replays", body))
}

func (m *Matches) MatchReplays(ctx context.Context, matchID int64) gateway.Result[[]domain.Replay] {
	return gateway.Do[[]domain.Replay](ctx, m.c, get(fmt.Sprintf("/matches/%d/replays", matchID), nil))
}

func (m *Matches) MyReplays(ctx context.Context, page, limit int) gateway.Result[domain.ReplayPage] {
	return gateway.Do[domain.ReplayPage](ctx, m.c, get("/replays/my", paging(page, limit)))
}

func (m *Matches) UpdateReplay(ctx context.Context, replayID int64, update domain.ReplayUpdate) gateway.Result[domain.Replay] {
	return gateway.Do[domain.Replay](ctx, m.c, patch(fmt.Sprintf("/replays/%d", replayID), update))
}

func (m *Matches) DeleteReplay(ctx context.Context, replayID int64) gateway.Result[Raw] {
	return gateway.Do[Raw](ctx, m.c, del(fmt.Sprintf("/replays/%d", replayID)))
}

func (m *Matches) Share(ctx context.Context, matchID int64, shareType string) gateway.Result[domain.Match] {
	body := map[string]string{"share_type": shareType}
	return gateway.Do[domain.Match](ctx, m.c, patch(fmt.Sprintf("/matches/%d/share", matchID), body))
}

func (m *Matches) InvitePlayer(ctx context.Context, matchID int64, email, message string) gateway.Result[domain.MatchInvite] {
	body := struct {
		MatchID        int64  `json:"match_id"`
		RecipientEmail string `json:"recipient_email"`
		Message        string `json:"message,omitempty"`
	}{matchID, email, message}
	return gateway.Do[domain.MatchInvite](ctx, m.c, post("/matches/invite", body))
}

func (m *Matches) MyInvites(ctx context.Context, status string) gateway.Result[[]domain.MatchInvite] {
	return gateway.Do[[]domain.MatchInvite](ctx, m.c, get("/matches/invites/my", newQuery().str("status", status).values()))
}

func (m *Matches) RespondToInvite(ctx context.Context, inviteID int64, accept bool) gateway.Result[domain.MatchInvite] {
	status := "declined"
	if accept {
		status = "accepted"
	}
	body := map[string]string{"status": status}
	return gateway.Do[domain.MatchInvite](ctx, m.c, patch(fmt.Sprintf("/matches/invites/%d", inviteID), body))
}

func (m *Matches) Cancel(ctx context.Context, matchID int64, reason string) gateway.Result[domain.Match] {
	body := struct {
		Reason string `json:"reason,omitempty"`
	}{reason}
	return gateway.Do[domain.Match](ctx, m.c, patch(fmt.Sprintf("/matches/%d/cancel", matchID), body))
}

func (m *Matches) Delete(ctx context.Context, matchID int64) gateway.Result[Raw] {
	return gateway.Do[Raw](ctx, m.c, del(fmt.Sprintf("/matches/%d", matchID)))
}

// Stats aggregates matches over "week", "month", "year" or "all".
func (m *Matches) Stats(ctx context.Context, timeframe string) gateway.Result[domain.MatchStats] {
	return gateway.Do[domain.MatchStats](ctx, m.c, get("/matches/stats", newQuery().str("timeframe", timeframe).values()))
}

func (m *Matches) Search(ctx context.Context, text string, f domain.MatchFilter) gateway.Result[[]domain.Match] {
	q := newQuery().str("q", text).
		id("club_id", f.ClubID).
		str("status", f.Status).
		str("date_from", f.DateFrom).
		str("date_to", f.DateTo).
		str("match_type", f.MatchType)
	return gateway.Do[[]domain.Match](ctx, m.c, get("/matches/search", q.values()))
}

func (m *Matches) Public(ctx context.Context, page, limit int) gateway.Result[domain.MatchPage] {
	return gateway.Do[domain.MatchPage](ctx, m.c, get("/matches/public", paging(page, limit)))
}

func (m *Matches) ToggleLike(ctx context.Context, matchID int64) gateway.Result[domain.LikeState] {
	return gateway.Do[domain.LikeState](ctx, m.c, post(fmt.Sprintf("/matches/%d/like", matchID), nil))
}

func (m *Matches) Comment(ctx context.Context, matchID int64, comment string) gateway.Result[Raw] {
	body := map[string]string{"comment": comment}
	return gateway.Do[Raw](ctx, m.c, post(fmt.Sprintf("/matches/%d/comments", matchID), body))
}

func (m *Matches) Comments(ctx context.Context, matchID int64, page, limit int) gateway.Result[domain.CommentPage] {
	return gateway.Do[domain.CommentPage](ctx, m.c, get(fmt.Sprintf("/matches/%d/comments", matchID), paging(page, limit)))
}

func (m *Matches) Report(ctx context.Context, matchID int64, reason, description string) gateway.Result[Raw] {
	body := struct {
		MatchID     int64  `json:"match_id"`
		Reason      string `json:"reason"`
		Description string `json:"description,omitempty"`
	}{matchID, reason, description}
	return gateway.Do[Raw](ctx, m.c, post("/matches/report", body))
}

func (m *Matches) Analytics(ctx context.Context, matchID int64) gateway.Result[domain.MatchAnalytics] {
	return gateway.Do[domain.MatchAnalytics](ctx, m.c, get(fmt.Sprintf("/matches/%d/analytics", matchID), nil))
}
