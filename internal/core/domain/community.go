package domain

import "encoding/json"

// Friend is a friendship edge seen from the current user.
type Friend struct {
	ID                 int64  `json:"id"`
	UserID             int64  `json:"user_id"`
	FriendID           int64  `json:"friend_id"`
	FriendName         string `json:"friend_name"`
	FriendAvatar       string `json:"friend_avatar,omitempty"`
	FriendSport        string `json:"friend_sport"`
	FriendLevel        int    `json:"friend_level"`
	Status             string `json:"status"`
	MutualFriends      int    `json:"mutual_friends"`
	LastPlayedTogether string `json:"last_played_together,omitempty"`
	CreatedAt          string `json:"created_at"`
}

// Attachment is a file attached to a chat message.
type Attachment struct {
	Type string `json:"type"`
	URL  string `json:"url"`
	Name string `json:"name"`
	Size int64  `json:"size"`
}

// ChatMessage is one message in a chat.
type ChatMessage struct {
	ID           int64        `json:"id"`
	ChatID       int64        `json:"chat_id"`
	SenderID     int64        `json:"sender_id"`
	SenderName   string       `json:"sender_name"`
	SenderAvatar string       `json:"sender_avatar,omitempty"`
	Message      string       `json:"message"`
	MessageType  string       `json:"message_type"`
	Attachments  []Attachment `json:"attachments,omitempty"`
	IsRead       bool         `json:"is_read"`
	CreatedAt    string       `json:"created_at"`
	UpdatedAt    string       `json:"updated_at,omitempty"`
}

// ChatParticipant is a member of a chat.
type ChatParticipant struct {
	UserID   int64  `json:"user_id"`
	Name     string `json:"name"`
	Avatar   string `json:"avatar,omitempty"`
	Role     string `json:"role"`
	JoinedAt string `json:"joined_at"`
	LastSeen string `json:"last_seen,omitempty"`
}

// Chat is a direct, group or club conversation.
type Chat struct {
	ID           int64             `json:"id"`
	Type         string            `json:"type"`
	Name         string            `json:"name,omitempty"`
	Description  string            `json:"description,omitempty"`
	Avatar       string            `json:"avatar,omitempty"`
	Participants []ChatParticipant `json:"participants"`
	LastMessage  *ChatMessage      `json:"last_message,omitempty"`
	UnreadCount  int               `json:"unread_count"`
	IsMuted      bool              `json:"is_muted"`
	CreatedAt    string            `json:"created_at"`
	UpdatedAt    string            `json:"updated_at"`
}

// NewGroupChat is the body of POST /community/chats/group.
type NewGroupChat struct {
	Name           string  `json:"name"`
	Description    string  `json:"description,omitempty"`
	ParticipantIDs []int64 `json:"participant_ids"`
}

// Invitation invites a user to a match, tournament, training or event.
type Invitation struct {
	ID             int64          `json:"id"`
	Type           string         `json:"type"`
	FromUserID     int64          `json:"from_user_id"`
	FromUserName   string         `json:"from_user_name"`
	FromUserAvatar string         `json:"from_user_avatar,omitempty"`
	ToUserID       int64          `json:"to_user_id"`
	Title          string         `json:"title"`
	Description    string         `json:"description"`
	EventDate      string         `json:"event_date,omitempty"`
	EventTime      string         `json:"event_time,omitempty"`
	Location       string         `json:"location,omitempty"`
	ClubID         int64          `json:"club_id,omitempty"`
	ClubName       string         `json:"club_name,omitempty"`
	CourtID        int64          `json:"court_id,omitempty"`
	CourtName      string         `json:"court_name,omitempty"`
	Status         string         `json:"status"`
	ExpiresAt      string         `json:"expires_at,omitempty"`
	Metadata       map[string]any `json:"metadata,omitempty"`
	CreatedAt      string         `json:"created_at"`
}

// NewInvitation is the body of POST /community/invitations.
type NewInvitation struct {
	Type        string `json:"type"`
	ToUserID    int64  `json:"to_user_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	EventDate   string `json:"event_date,omitempty"`
	EventTime   string `json:"event_time,omitempty"`
	Location    string `json:"location,omitempty"`
	ClubID      int64  `json:"club_id,omitempty"`
	CourtID     int64  `json:"court_id,omitempty"`
}

// LeaderboardEntry is one ranked player.
type LeaderboardEntry struct {
	Rank          int      `json:"rank"`
	UserID        int64    `json:"user_id"`
	Username      string   `json:"username"`
	Avatar        string   `json:"avatar,omitempty"`
	Score         float64  `json:"score"`
	Level         int      `json:"level"`
	Sport         string   `json:"sport"`
	MatchesPlayed int      `json:"matches_played"`
	WinRate       float64  `json:"win_rate"`
	RecentChange  int      `json:"recent_change"`
	Badges        []string `json:"badges"`
}

// TournamentParticipant is a registered player.
type TournamentParticipant struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
	Avatar   string `json:"avatar,omitempty"`
	Level    int    `json:"level"`
	Seed     int    `json:"seed,omitempty"`
	Status   string `json:"status"`
}

// Tournament is a community competition.
type Tournament struct {
	ID                   int64    `json:"id"`
	Name                 string   `json:"name"`
	Description          string   `json:"description"`
	Sport                string   `json:"sport"`
	TournamentType       string   `json:"tournament_type"`
	Status               string   `json:"status"`
	MaxParticipants      int      `json:"max_participants"`
	CurrentParticipants  int      `json:"current_participants"`
	EntryFee             float64  `json:"entry_fee"`
	PrizePool            float64  `json:"prize_pool"`
	StartDate            string   `json:"start_date"`
	EndDate              string   `json:"end_date"`
	RegistrationDeadline string   `json:"registration_deadline"`
	ClubID               int64    `json:"club_id,omitempty"`
	ClubName             string   `json:"club_name,omitempty"`
	OrganizerID          int64    `json:"organizer_id"`
	OrganizerName        string   `json:"organizer_name"`
	Rules                []string `json:"rules"`
	Requirements         struct {
		MinLevel int    `json:"min_level"`
		MaxLevel int    `json:"max_level,omitempty"`
		AgeGroup string `json:"age_group,omitempty"`
		Gender   string `json:"gender,omitempty"`
	} `json:"requirements"`
	Participants []TournamentParticipant `json:"participants"`
	Brackets     json.RawMessage         `json:"brackets,omitempty"`
	CreatedAt    string                  `json:"created_at"`
}
