package domain

// Match statuses.
const (
	MatchScheduled = "scheduled"
	MatchActive    = "active"
	MatchCompleted = "completed"
	MatchCancelled = "cancelled"
)

// Share visibilities.
const (
	SharePublic  = "public"
	ShareFriends = "friends"
	SharePrivate = "private"
)

// Opponent is the other side of a singles match.
type Opponent struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Avatar     string `json:"avatar,omitempty"`
	SkillLevel string `json:"skill_level"`
}

// Participant is anyone attached to a match.
type Participant struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar,omitempty"`
	Role   string `json:"role"`
}

// Match is a recorded or scheduled game on a court.
type Match struct {
	ID            int64         `json:"id"`
	UserID        int64         `json:"user_id"`
	ClubID        int64         `json:"club_id"`
	CourtID       int64         `json:"court_id"`
	ClubName      string        `json:"club_name"`
	CourtName     string        `json:"court_name"`
	MatchType     string        `json:"match_type"`
	Status        string        `json:"status"`
	StartTime     string        `json:"start_time,omitempty"`
	EndTime       string        `json:"end_time,omitempty"`
	Duration      string        `json:"duration"`
	PlayerScore   int           `json:"player_score"`
	OpponentScore int           `json:"opponent_score"`
	FinalScore    string        `json:"final_score,omitempty"`
	RecordingURL  string        `json:"recording_url,omitempty"`
	ShareType     string        `json:"share_type"`
	ReplaysCount  int           `json:"replays_count"`
	Date          string        `json:"date"`
	CreatedAt     string        `json:"created_at"`
	UpdatedAt     string        `json:"updated_at"`
	Opponent      *Opponent     `json:"opponent,omitempty"`
	Participants  []Participant `json:"participants"`
}

// NewMatch is the body of POST /matches.
type NewMatch struct {
	ClubID        int64  `json:"club_id"`
	CourtID       int64  `json:"court_id"`
	MatchType     string `json:"match_type"`
	Duration      string `json:"duration"`
	ScheduledTime string `json:"scheduled_time,omitempty"`
	OpponentEmail string `json:"opponent_email,omitempty"`
}

// Replay is a marked moment of a match.
type Replay struct {
	ID           int64    `json:"id"`
	MatchID      int64    `json:"match_id"`
	Timestamp    string   `json:"timestamp"`
	Description  string   `json:"description,omitempty"`
	VideoURL     string   `json:"video_url,omitempty"`
	ThumbnailURL string   `json:"thumbnail_url,omitempty"`
	Duration     int      `json:"duration"`
	IsHighlight  bool     `json:"is_highlight"`
	Tags         []string `json:"tags"`
	CreatedAt    string   `json:"created_at"`
}

// ReplayUpdate is the body of PATCH /replays/{id}.
type ReplayUpdate struct {
	Description *string  `json:"description,omitempty"`
	IsHighlight *bool    `json:"is_highlight,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}

// ReplayPage is one page of the user's replays.
type ReplayPage struct {
	Replays []Replay `json:"replays"`
	Total   int      `json:"total"`
	Page    int      `json:"page"`
	Limit   int      `json:"limit"`
}

// MatchInvite invites another player to a match.
type MatchInvite struct {
	ID             int64  `json:"id"`
	MatchID        int64  `json:"match_id"`
	SenderID       int64  `json:"sender_id"`
	RecipientEmail string `json:"recipient_email"`
	RecipientID    int64  `json:"recipient_id,omitempty"`
	Status         string `json:"status"`
	Message        string `json:"message,omitempty"`
	CreatedAt      string `json:"created_at"`
	ExpiresAt      string `json:"expires_at"`
	Match          struct {
		ID        int64  `json:"id"`
		ClubName  string `json:"club_name"`
		CourtName string `json:"court_name"`
		Date      string `json:"date"`
		Duration  string `json:"duration"`
	} `json:"match"`
	Sender struct {
		Name   string `json:"name"`
		Avatar string `json:"avatar,omitempty"`
	} `json:"sender"`
}

// MatchStats aggregates a user's matches over a timeframe.
type MatchStats struct {
	TotalMatches   int     `json:"total_matches"`
	Wins           int     `json:"wins"`
	Losses         int     `json:"losses"`
	WinRate        float64 `json:"win_rate"`
	AverageScore   float64 `json:"average_score"`
	TotalPlaytime  int     `json:"total_playtime"`
	FavoriteClub   string  `json:"favorite_club"`
	LongestMatch   int     `json:"longest_match"`
	BestStreak     int     `json:"best_streak"`
	ReplaysCreated int     `json:"replays_created"`
}

// MatchFilter narrows /matches/search.
type MatchFilter struct {
	ClubID    int64
	Status    string
	DateFrom  string
	DateTo    string
	MatchType string
}

// MatchPage is one page of public matches.
type MatchPage struct {
	Matches []Match `json:"matches"`
	Total   int     `json:"total"`
	Page    int     `json:"page"`
	Limit   int     `json:"limit"`
}

// LikeState is returned when toggling a like.
type LikeState struct {
	IsLiked    bool `json:"is_liked"`
	LikesCount int  `json:"likes_count"`
}

// MatchComment is a comment left on a shared match.
type MatchComment struct {
	ID         int64  `json:"id"`
	UserID     int64  `json:"user_id"`
	UserName   string `json:"user_name"`
	UserAvatar string `json:"user_avatar,omitempty"`
	Comment    string `json:"comment"`
	CreatedAt  string `json:"created_at"`
}

// CommentPage is one page of match comments.
type CommentPage struct {
	Comments []MatchComment `json:"comments"`
	Total    int            `json:"total"`
	Page     int            `json:"page"`
	Limit    int            `json:"limit"`
}

// MatchAnalytics is the breakdown shown after a match.
type MatchAnalytics struct {
	DurationBreakdown []struct {
		Phase    string `json:"phase"`
		Duration int    `json:"duration"`
	} `json:"duration_breakdown"`
	ScoreProgression []struct {
		Timestamp     string `json:"timestamp"`
		PlayerScore   int    `json:"player_score"`
		OpponentScore int    `json:"opponent_score"`
	} `json:"score_progression"`
	ReplayHeatmap []struct {
		Timestamp string  `json:"timestamp"`
		Intensity float64 `json:"intensity"`
	} `json:"replay_heatmap"`
	PerformanceMetrics struct {
		AvgRallyLength float64 `json:"avg_rally_length"`
		Winners        int     `json:"winners"`
		UnforcedErrors int     `json:"unforced_errors"`
		BreakPoints    int     `json:"break_points"`
	} `json:"performance_metrics"`
}
