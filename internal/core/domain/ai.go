package domain

import "encoding/json"

// Analysis types.
const (
	AnalysisPerformance = "performance"
	AnalysisTechnique   = "technique"
	AnalysisStrategy    = "strategy"
	AnalysisFull        = "full"
)

// AIAnalysis is a requested video analysis of a match.
// Results is kept raw: its nested layout is owned by the analysis model.
type AIAnalysis struct {
	ID           int64           `json:"id"`
	MatchID      int64           `json:"match_id"`
	UserID       int64           `json:"user_id"`
	AnalysisType string          `json:"analysis_type"`
	Status       string          `json:"status"`
	Progress     int             `json:"progress"`
	Results      json.RawMessage `json:"results,omitempty"`
	Price        float64         `json:"price"`
	IsPurchased  bool            `json:"is_purchased"`
	CreatedAt    string          `json:"created_at"`
	UpdatedAt    string          `json:"updated_at"`
	ExpiresAt    string          `json:"expires_at,omitempty"`
}

// AIInsight is a tip or warning derived from the user's matches.
type AIInsight struct {
	ID                int64  `json:"id"`
	UserID            int64  `json:"user_id"`
	Type              string `json:"type"`
	Title             string `json:"title"`
	Description       string `json:"description"`
	Category          string `json:"category"`
	Priority          string `json:"priority"`
	IsRead            bool   `json:"is_read"`
	ActionRequired    bool   `json:"action_required"`
	RelatedMatchID    int64  `json:"related_match_id,omitempty"`
	RelatedAnalysisID int64  `json:"related_analysis_id,omitempty"`
	CreatedAt         string `json:"created_at"`
}

// PerformanceComparison compares the user with peers over time.
type PerformanceComparison struct {
	UserStats struct {
		CurrentLevel      int       `json:"current_level"`
		ImprovementRate   float64   `json:"improvement_rate"`
		ConsistencyScore  float64   `json:"consistency_score"`
		RecentPerformance []float64 `json:"recent_performance"`
	} `json:"user_stats"`
	PeerComparison struct {
		Percentile     float64 `json:"percentile"`
		SimilarPlayers int     `json:"similar_players"`
		AverageScore   float64 `json:"average_score"`
		TopPerformers  []struct {
			UserID   int64   `json:"user_id"`
			Username string  `json:"username"`
			Score    float64 `json:"score"`
			Level    int     `json:"level"`
		} `json:"top_performers"`
	} `json:"peer_comparison"`
	HistoricalData []struct {
		Date          string  `json:"date"`
		Score         float64 `json:"score"`
		MatchesPlayed int     `json:"matches_played"`
	} `json:"historical_data"`
}

// TrainingPlan is a generated multi-week plan.
type TrainingPlan struct {
	ID              int64           `json:"id"`
	UserID          int64           `json:"user_id"`
	Title           string          `json:"title"`
	Description     string          `json:"description"`
	DurationWeeks   int             `json:"duration_weeks"`
	DifficultyLevel int             `json:"difficulty_level"`
	FocusAreas      []string        `json:"focus_areas"`
	WeeklySchedule  json.RawMessage `json:"weekly_schedule"`
	Progress        struct {
		CompletedWeeks       int     `json:"completed_weeks"`
		CompletionPercentage float64 `json:"completion_percentage"`
		LastSessionDate      string  `json:"last_session_date,omitempty"`
	} `json:"progress"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// TrainingPlanRequest is the body of POST /ai/training-plan.
type TrainingPlanRequest struct {
	FocusAreas      []string `json:"focus_areas"`
	DurationWeeks   int      `json:"duration_weeks"`
	SessionsPerWeek int      `json:"sessions_per_week"`
	CurrentLevel    int      `json:"current_level"`
	Goals           []string `json:"goals,omitempty"`
}
