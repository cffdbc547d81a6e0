package endpoint

import (
	"context"
	"fmt"

	"github.com/duynhne/shakplay/internal/core/domain"
	"github.com/duynhne/shakplay/internal/core/gateway"
)

// AI covers paid match analyses, insights and training plans.
type AI struct{ c gateway.Caller }

// TrainingProgress is the body of POST /ai/training-plans/{id}/progress.
type TrainingProgress struct {
	CompletedSession struct {
		Week               int      `json:"week"`
		Day                string   `json:"day"`
		CompletedExercises []string `json:"completed_exercises"`
		Notes              string   `json:"notes,omitempty"`
		Rating             int      `json:"rating,omitempty"`
	} `json:"completed_session"`
}

func (a *AI) RequestAnalysis(ctx context.Context, matchID int64, analysisType string) gateway.Result[domain.AIAnalysis] {
	body := struct {
		MatchID      int64  `json:"match_id"`
		AnalysisType string `json:"analysis_type"`
	}{matchID, analysisType}
	return gateway.Do[domain.AIAnalysis](ctx, a.c, post("/ai/analysis", body))
}

func (a *AI) Analysis(ctx context.Context, analysisID int64) gateway.Result[domain.AIAnalysis] {
	return gateway.Do[domain.AIAnalysis](ctx, a.c, get(fmt.Sprintf("/ai/analysis/%d", analysisID), nil))
}

// MyAnalyses pages through the user's analyses. A non-positive limit means 20.
func (a *AI) MyAnalyses(ctx context.Context, status string, limit, offset int) gateway.Result[[]domain.AIAnalysis] {
	if limit <= 0 {
		limit = 20
	}
	q := newQuery().str("status", status).num("limit", limit).num("offset", offset)
	return gateway.Do[[]domain.AIAnalysis](ctx, a.c, get("/ai/analysis", q.values()))
}

func (a *AI) PurchaseAnalysis(ctx context.Context, analysisID int64) gateway.Result[Raw] {
	return gateway.Do[Raw](ctx, a.c, post(fmt.Sprintf("/ai/analysis/%d/purchase", analysisID), nil))
}

func (a *AI) Insights(ctx context.Context, category string, unreadOnly bool) gateway.Result[[]domain.AIInsight] {
	q := newQuery().str("category", category)
	if unreadOnly {
		q = q.str("unread_only", "true")
	}
	return gateway.Do[[]domain.AIInsight](ctx, a.c, get("/ai/insights", q.values()))
}

func (a *AI) MarkInsightRead(ctx context.Context, insightID int64) gateway.Result[Raw] {
	return gateway.Do[Raw](ctx, a.c, post(fmt.Sprintf("/ai/insights/%d/read", insightID), nil))
}

func (a *AI) DismissInsight(ctx context.Context, insightID int64) gateway.Result[Raw] {
	return gateway.Do[Raw](ctx, a.c, del(fmt.Sprintf("/ai/insights/%d", insightID)))
}

// PerformanceComparison defaults timeframe to "3months".
func (a *AI) PerformanceComparison(ctx context.Context, timeframe string) gateway.Result[domain.PerformanceComparison] {
	if timeframe == "" {
		timeframe = "3months"
	}
	q := newQuery().str("timeframe", timeframe).values()
	return gateway.Do[domain.PerformanceComparison](ctx, a.c, get("/ai/performance-comparison", q))
}

func (a *AI) GenerateTrainingPlan(ctx context.Context, req domain.TrainingPlanRequest) gateway.Result[domain.TrainingPlan] {
	return gateway.Do[domain.TrainingPlan](ctx, a.c, post("/ai/training-plan", req))
}

func (a *AI) TrainingPlans(ctx context.Context) gateway.Result[[]domain.TrainingPlan] {
	return gateway.Do[[]domain.TrainingPlan](ctx, a.c, get("/ai/training-plans", nil))
}

func (a *AI) UpdateTrainingProgress(ctx context.Context, planID int64, progress TrainingProgress) gateway.Result[Raw] {
	return gateway.Do[Raw](ctx, a.c, post(fmt.Sprintf("/ai/training-plans/%d/progress", planID), progress))
}

func (a *AI) RateAnalysis(ctx context.Context, analysisID int64, rating int, feedback string) gateway.Result[Raw] {
	body := struct {
		Rating   int    `json:"rating"`
		Feedback string `json:"feedback,omitempty"`
	}{rating, feedback}
	return gateway.Do[Raw](ctx, a.c, post(fmt.Sprintf("/ai/analysis/%d/rate", analysisID), body))
}

// ShareAnalysis shares with "public", "friends" or "coach".
func (a *AI) ShareAnalysis(ctx context.Context, analysisID int64, shareWith string) gateway.Result[Raw] {
	body := map[string]string{"share_with": shareWith}
	return gateway.Do[Raw](ctx, a.c, post(fmt.Sprintf("/ai/analysis/%d/share", analysisID), body))
}
