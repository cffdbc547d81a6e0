package endpoint

import (
	"context"
	"fmt"

	"github.com/duynhne/shakplay/internal/core/domain"
	"github.com/duynhne/shakplay/internal/core/gateway"
)

// PathUserStats serves the user's aggregate statistics.
const PathUserStats = "/stats/user"

// Stats covers statistics, achievements, leaderboards and goals.
type Stats struct{ c gateway.Caller }

// UserStats fetches stats for userID, or the current user when zero.
func (s *Stats) UserStats(ctx context.Context, userID int64, sport string) gateway.Result[domain.UserStats] {
	q := newQuery().id("user_id", userID).str("sport", sport).values()
	return gateway.Do[domain.UserStats](ctx, s.c, get(PathUserStats, q))
}

// UpdateUserStats sends a partial update; only the keys present change.
func (s *Stats) UpdateUserStats(ctx context.Context, fields map[string]any) gateway.Result[domain.UserStats] {
	return gateway.Do[domain.UserStats](ctx, s.c, put(PathUserStats, fields))
}

// DetailedStats covers "week", "month", "quarter" or "year"; empty means month.
func (s *Stats) DetailedStats(ctx context.Context, timeframe string) gateway.Result[domain.PerformanceMetrics] {
	if timeframe == "" {
		timeframe = "month"
	}
	q := newQuery().str("timeframe", timeframe).values()
	return gateway.Do[domain.PerformanceMetrics](ctx, s.c, get("/stats/detailed", q))
}

func (s *Stats) Achievements(ctx context.Context, category string, unlockedOnly bool) gateway.Result[[]domain.Achievement] {
	q := newQuery().str("category", category)
	if unlockedOnly {
		q = q.str("unlocked_only", "true")
	}
	return gateway.Do[[]domain.Achievement](ctx, s.c, get("/stats/achievements", q.values()))
}

func (s *Stats) ClaimAchievement(ctx context.Context, achievementID int64) gateway.Result[Raw] {
	return gateway.Do[Raw](ctx, s.c, post(fmt.Sprintf("/stats/achievements/%d/claim", achievementID), nil))
}

// Leaderboard defaults to the overall monthly top 100.
func (s *Stats) Leaderboard(ctx context.Context, sport, category, timeframe string, limit int) gateway.Result[domain.Leaderboard] {
	if category == "" {
		category = "overall"
	}
	if timeframe == "" {
		timeframe = "monthly"
	}
	if limit <= 0 {
		limit = 100
	}
	q := newQuery().set("sport", sport).str("category", category).str("timeframe", timeframe).num("limit", limit)
	return gateway.Do[domain.Leaderboard](ctx, s.c, get("/stats/leaderboard", q.values()))
}

func (s *Stats) ClubLeaderboard(ctx context.Context, clubID int64, category, timeframe string) gateway.Result[domain.Leaderboard] {
	if category == "" {
		category = "overall"
	}
	if timeframe == "" {
		timeframe = "monthly"
	}
	q := newQuery().str("category", category).str("timeframe", timeframe).values()
	return gateway.Do[domain.Leaderboard](ctx, s.c, get(fmt.Sprintf("/stats/clubs/%d/leaderboard", clubID), q))
}

func (s *Stats) Goals(ctx context.Context, status string) gateway.Result[[]domain.Goal] {
	return gateway.Do[[]domain.Goal](ctx, s.c, get("/stats/goals", newQuery().str("status", status).values()))
}

func (s *Stats) CreateGoal(ctx context.Context, goal domain.NewGoal) gateway.Result[domain.Goal] {
	return gateway.Do[domain.Goal](ctx, s.c, post("/stats/goals", goal))
}

// UpdateGoal sends a partial update.
func (s *Stats) UpdateGoal(ctx context.Context, goalID int64, fields map[string]any) gateway.Result[domain.Goal] {
	return gateway.Do[domain.Goal](ctx, s.c, put(fmt.Sprintf("/stats/goals/%d", goalID), fields))
}

func (s *Stats) DeleteGoal(ctx context.Context, goalID int64) gateway.Result[Raw] {
	return gateway.Do[Raw](ctx, s.c, del(fmt.Sprintf("/stats/goals/%d", goalID)))
}

func (s *Stats) UpdateGoalProgress(ctx context.Context, goalID int64, currentValue float64) gateway.Result[Raw] {
	body := map[string]float64{"current_value": currentValue}
	return gateway.Do[Raw](ctx, s.c, put(fmt.Sprintf("/stats/goals/%d/progress", goalID), body))
}

func (s *Stats) CompleteGoal(ctx context.Context, goalID int64) gateway.Result[Raw] {
	return gateway.Do[Raw](ctx, s.c, post(fmt.Sprintf("/stats/goals/%d/complete", goalID), nil))
}

func (s *Stats) PauseGoal(ctx context.Context, goalID int64) gateway.Result[Raw] {
	return gateway.Do[Raw](ctx, s.c, post(fmt.Sprintf("/stats/goals/%d/pause", goalID), nil))
}

func (s *Stats) ResumeGoal(ctx context.Context, goalID int64) gateway.Result[Raw] {
	return gateway.Do[Raw](ctx, s.c, post(fmt.Sprintf("/stats/goals/%d/resume", goalID), nil))
}

func (s *Stats) LogActivity(ctx context.Context, activity domain.Activity) gateway.Result[Raw] {
	return gateway.Do[Raw](ctx, s.c, post("/stats/activities", activity))
}

func (s *Stats) Streaks(ctx context.Context) gateway.Result[Raw] {
	return gateway.Do[Raw](ctx, s.c, get("/stats/streaks", nil))
}
