package domain

// Achievement is an unlockable badge.
type Achievement struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Category    string `json:"category"`
	Rarity      string `json:"rarity"`
	Points      int    `json:"points"`
	UnlockedAt  string `json:"unlocked_at,omitempty"`
	Progress    *struct {
		Current    int     `json:"current"`
		Required   int     `json:"required"`
		Percentage float64 `json:"percentage"`
	} `json:"progress,omitempty"`
	Requirements []string `json:"requirements"`
}

// SkillBreakdown scores the components of a player's game.
type SkillBreakdown struct {
	Technique   float64 `json:"technique"`
	Strategy    float64 `json:"strategy"`
	Fitness     float64 `json:"fitness"`
	Mental      float64 `json:"mental"`
	Consistency float64 `json:"consistency"`
}

// MonthlyStats is one month of activity.
type MonthlyStats struct {
	Month         string  `json:"month"`
	MatchesPlayed int     `json:"matches_played"`
	MatchesWon    int     `json:"matches_won"`
	WinRate       float64 `json:"win_rate"`
	Playtime      int     `json:"playtime"`
}

// UserStats is the statistics page of a user.
type UserStats struct {
	UserID               int64          `json:"user_id"`
	Sport                string         `json:"sport"`
	Level                int            `json:"level"`
	XP                   int            `json:"xp"`
	NextLevelXP          int            `json:"next_level_xp"`
	MatchesPlayed        int            `json:"matches_played"`
	MatchesWon           int            `json:"matches_won"`
	MatchesLost          int            `json:"matches_lost"`
	MatchesDrawn         int            `json:"matches_drawn"`
	WinRate              float64        `json:"win_rate"`
	CurrentStreak        int            `json:"current_streak"`
	BestStreak           int            `json:"best_streak"`
	TotalPlaytime        int            `json:"total_playtime"`
	AverageMatchDuration float64        `json:"average_match_duration"`
	FavoriteClub         string         `json:"favorite_club"`
	FavoriteCourtType    string         `json:"favorite_court_type"`
	PerformanceTrend     string         `json:"performance_trend"`
	LastMatchDate        string         `json:"last_match_date,omitempty"`
	Achievements         []Achievement  `json:"achievements"`
	SkillBreakdown       SkillBreakdown `json:"skill_breakdown"`
	MonthlyStats         []MonthlyStats `json:"monthly_stats"`
	UpdatedAt            string         `json:"updated_at"`
}

// LeaderboardRow is one entry of a stats leaderboard.
type LeaderboardRow struct {
	Rank     int     `json:"rank"`
	UserID   int64   `json:"user_id"`
	Username string  `json:"username"`
	Avatar   string  `json:"avatar,omitempty"`
	Value    float64 `json:"value"`
	Change   int     `json:"change"`
	Badge    string  `json:"badge,omitempty"`
}

// Leaderboard ranks players by one category.
type Leaderboard struct {
	Timeframe string           `json:"timeframe"`
	Sport     string           `json:"sport"`
	Category  string           `json:"category"`
	Entries   []LeaderboardRow `json:"entries"`
	UserRank  *struct {
		Rank   int     `json:"rank"`
		Value  float64 `json:"value"`
		Change int     `json:"change"`
	} `json:"user_rank,omitempty"`
	UpdatedAt string `json:"updated_at"`
}

// PerformanceMetrics is the detailed stats view for a timeframe.
type PerformanceMetrics struct {
	UserID    int64  `json:"user_id"`
	Timeframe string `json:"timeframe"`
	Metrics   struct {
		MatchesPlayed       int     `json:"matches_played"`
		WinRate             float64 `json:"win_rate"`
		AverageScore        float64 `json:"average_score"`
		ImprovementRate     float64 `json:"improvement_rate"`
		ConsistencyScore    float64 `json:"consistency_score"`
		PeakPerformanceDate string  `json:"peak_performance_date"`
		LowPerformanceDate  string  `json:"low_performance_date"`
	} `json:"metrics"`
	SkillProgression []struct {
		Skill         string  `json:"skill"`
		CurrentLevel  float64 `json:"current_level"`
		PreviousLevel float64 `json:"previous_level"`
		Improvement   float64 `json:"improvement"`
		Trend         string  `json:"trend"`
	} `json:"skill_progression"`
	Goals []Goal `json:"goals"`
}

// Milestone is a checkpoint inside a goal.
type Milestone struct {
	Value       float64 `json:"value"`
	Description string  `json:"description"`
	Completed   bool    `json:"completed,omitempty"`
	CompletedAt string  `json:"completed_at,omitempty"`
}

// Goal is a personal target.
type Goal struct {
	ID                 int64       `json:"id"`
	UserID             int64       `json:"user_id"`
	Title              string      `json:"title"`
	Description        string      `json:"description"`
	Category           string      `json:"category"`
	TargetValue        float64     `json:"target_value"`
	CurrentValue       float64     `json:"current_value"`
	Unit               string      `json:"unit"`
	Deadline           string      `json:"deadline,omitempty"`
	Status             string      `json:"status"`
	Priority           string      `json:"priority"`
	ProgressPercentage float64     `json:"progress_percentage"`
	Milestones         []Milestone `json:"milestones"`
	CreatedAt          string      `json:"created_at"`
	UpdatedAt          string      `json:"updated_at"`
}

// NewGoal is the body of POST /stats/goals.
type NewGoal struct {
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Category    string      `json:"category"`
	TargetValue float64     `json:"target_value"`
	Unit        string      `json:"unit"`
	Deadline    string      `json:"deadline,omitempty"`
	Priority    string      `json:"priority,omitempty"`
	Milestones  []Milestone `json:"milestones,omitempty"`
}

// Activity is the body of POST /stats/activities.
type Activity struct {
	Type      string         `json:"type"`
	Duration  int            `json:"duration"`
	Intensity string         `json:"intensity"`
	Notes     string         `json:"notes,omitempty"`
	Metadata  map[string]any `json:"metadata,omitempty"`
}
