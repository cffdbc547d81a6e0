package endpoint

import (
	"context"
	"fmt"

	"github.com/duynhne/shakplay/internal/core/domain"
	"github.com/duynhne/shakplay/internal/core/gateway"
)

// Upload is one file sent in a multipart body.
type Upload struct {
	Filename string
	Content  []byte
}

// OutgoingMessage is a chat message with optional attachments.
type OutgoingMessage struct {
	Message string
	// Type is "text", "image", "video" or "match_invite". Empty means text.
	Type        string
	Attachments []Upload
}

// UserFilter narrows /community/users/search.
type UserFilter struct {
	Sport      string
	LevelMin   int
	LevelMax   int
	Location   string
	DistanceKM float64
}

// Community covers friends, chats, invitations, rankings and tournaments.
type Community struct{ c gateway.Caller }

func (cm *Community) Friends(ctx context.Context, status string) gateway.Result[[]domain.Friend] {
	q := newQuery().str("status", status).values()
	return gateway.Do[[]domain.Friend](ctx, cm.c, get("/community/friends", q))
}

func (cm *Community) SendFriendRequest(ctx context.Context, userID int64, message string) gateway.Result[Raw] {
	body := struct {
		UserID  int64  `json:"user_id"`
		Message string `json:"message,omitempty"`
	}{userID, message}
	return gateway.Do[Raw](ctx, cm.c, post("/community/friends/request", body))
}

func (cm *Community) AcceptFriendRequest(ctx context.Context, requestID int64) gateway.Result[Raw] {
	return gateway.Do[Raw](ctx, cm.c, post(fmt.Sprintf("/community/friends/%d/accept", requestID), nil))
}

func (cm *Community) DeclineFriendRequest(ctx context.Context, requestID int64) gateway.Result[Raw] {
	return gateway.Do[Raw](ctx, cm.c, post(fmt.Sprintf("/community/friends/%d/decline", requestID), nil))
}

func (cm *Community) RemoveFriend(ctx context.Context, friendID int64) gateway.Result[Raw] {
	return gateway.Do[Raw](ctx, cm.c, del(fmt.Sprintf("/community/friends/%d", friendID)))
}

func (cm *Community) Block(ctx context.Context, userID int64) gateway.Result[Raw] {
	body := map[string]int64{"user_id": userID}
	return gateway.Do[Raw](ctx, cm.c, post("/community/users/block", body))
}

func (cm *Community) Unblock(ctx context.Context, userID int64) gateway.Result[Raw] {
	return gateway.Do[Raw](ctx, cm.c, del(fmt.Sprintf("/community/users/block/%d", userID)))
}

func (cm *Community) Chats(ctx context.Context) gateway.Result[[]domain.Chat] {
	return gateway.Do[[]domain.Chat](ctx, cm.c, get("/community/chats", nil))
}

func (cm *Community) Chat(ctx context.Context, chatID int64) gateway.Result[domain.Chat] {
	return gateway.Do[domain.Chat](ctx, cm.c, get(fmt.Sprintf("/community/chats/%d", chatID), nil))
}

// ChatMessages pages through a chat. A non-positive limit means 50.
func (cm *Community) ChatMessages(ctx context.Context, chatID int64, limit, offset int) gateway.Result[[]domain.ChatMessage] {
	if limit <= 0 {
		limit = 50
	}
	path := fmt.Sprintf("/community/chats/%d/messages", chatID)
	return gateway.Do[[]domain.ChatMessage](ctx, cm.c, get(path, window(limit, offset)))
}

// SendMessage posts a multipart message. Attachments are sent as
// attachment_0, attachment_1 and so on.
func (cm *Community) SendMessage(ctx context.Context, chatID int64, msg OutgoingMessage) gateway.Result[domain.ChatMessage] {
	kind := msg.Type
	if kind == "" {
		kind = "text"
	}
	form := gateway.NewForm().Set("message", msg.Message).Set("message_type", kind)
	for i, a := range msg.Attachments {
		form.AddFile(fmt.Sprintf("attachment_%d", i), a.Filename, a.Content)
	}
	path := fmt.Sprintf("/community/chats/%d/messages", chatID)
	return gateway.Do[domain.ChatMessage](ctx, cm.c, post(path, form))
}

func (cm *Community) CreateDirectChat(ctx context.Context, userID int64) gateway.Result[domain.Chat] {
	body := map[string]int64{"user_id": userID}
	return gateway.Do[domain.Chat](ctx, cm.c, post("/community/chats/direct", body))
}

func (cm *Community) CreateGroupChat(ctx context.Context, chat domain.NewGroupChat) gateway.Result[domain.Chat] {
	return gateway.Do[domain.Chat](ctx, cm.c, post("/community/chats/group", chat))
}

func (cm *Community) MarkMessagesRead(ctx context.Context, chatID int64, messageIDs []int64) gateway.Result[Raw] {
	body := map[string][]int64{"message_ids": messageIDs}
	return gateway.Do[Raw](ctx, cm.c, post(fmt.Sprintf("/community/chats/%d/read", chatID), body))
}

// Mute silences a chat for duration minutes; zero mutes indefinitely.
func (cm *Community) Mute(ctx context.Context, chatID int64, duration int) gateway.Result[Raw] {
	body := struct {
		Duration int `json:"duration,omitempty"`
	}{duration}
	return gateway.Do[Raw](ctx, cm.c, post(fmt.Sprintf("/community/chats/%d/mute", chatID), body))
}

func (cm *Community) Unmute(ctx context.Context, chatID int64) gateway.Result[Raw] {
	return gateway.Do[Raw](ctx, cm.c, del(fmt.Sprintf("/community/chats/%d/mute", chatID)))
}

func (cm *Community) Invitations(ctx context.Context, kind, status string) gateway.Result[[]domain.Invitation] {
	q := newQuery().str("type", kind).str("status", status).values()
	return gateway.Do[[]domain.Invitation](ctx, cm.c, get("/community/invitations", q))
}

func (cm *Community) SendInvitation(ctx context.Context, inv domain.NewInvitation) gateway.Result[domain.Invitation] {
	return gateway.Do[domain.Invitation](ctx, cm.c, post("/community/invitations", inv))
}

func (cm *Community) RespondToInvitation(ctx context.Context, invitationID int64, accept bool) gateway.Result[Raw] {
	response := "decline"
	if accept {
		response = "accept"
	}
	body := map[string]string{"response": response}
	return gateway.Do[Raw](ctx, cm.c, post(fmt.Sprintf("/community/invitations/%d/respond", invitationID), body))
}

func (cm *Community) CancelInvitation(ctx context.Context, invitationID int64) gateway.Result[Raw] {
	return gateway.Do[Raw](ctx, cm.c, del(fmt.Sprintf("/community/invitations/%d", invitationID)))
}

// Leaderboard defaults to the monthly top 100.
func (cm *Community) Leaderboard(ctx context.Context, sport, timeframe string, limit int) gateway.Result[[]domain.LeaderboardEntry] {
	if timeframe == "" {
		timeframe = "monthly"
	}
	if limit <= 0 {
		limit = 100
	}
	q := newQuery().str("sport", sport).str("timeframe", timeframe).num("limit", limit).values()
	return gateway.Do[[]domain.LeaderboardEntry](ctx, cm.c, get("/community/leaderboard", q))
}

func (cm *Community) MyRanking(ctx context.Context, sport, timeframe string) gateway.Result[domain.LeaderboardEntry] {
	if timeframe == "" {
		timeframe = "monthly"
	}
	q := newQuery().str("sport", sport).str("timeframe", timeframe).values()
	return gateway.Do[domain.LeaderboardEntry](ctx, cm.c, get("/community/leaderboard/me", q))
}

func (cm *Community) Tournaments(ctx context.Context, status, sport string) gateway.Result[[]domain.Tournament] {
	q := newQuery().str("status", status).str("sport", sport).values()
	return gateway.Do[[]domain.Tournament](ctx, cm.c, get("/community/tournaments", q))
}

func (cm *Community) Tournament(ctx context.Context, tournamentID int64) gateway.Result[domain.Tournament] {
	return gateway.Do[domain.Tournament](ctx, cm.c, get(fmt.Sprintf("/community/tournaments/%d", tournamentID), nil))
}

func (cm *Community) RegisterForTournament(ctx context.Context, tournamentID int64) gateway.Result[Raw] {
	return gateway.Do[Raw](ctx, cm.c, post(fmt.Sprintf("/community/tournaments/%d/register", tournamentID), nil))
}

func (cm *Community) WithdrawFromTournament(ctx context.Context, tournamentID int64, reason string) gateway.Result[Raw] {
	body := struct {
		Reason string `json:"reason,omitempty"`
	}{reason}
	return gateway.Do[Raw](ctx, cm.c, post(fmt.Sprintf("/community/tournaments/%d/withdraw", tournamentID), body))
}

// SearchUsers always sends query, even when empty.
func (cm *Community) SearchUsers(ctx context.Context, text string, f UserFilter) gateway.Result[Raw] {
	q := newQuery().set("query", text).str("sport", f.Sport).str("location", f.Location).
		float("distance_km", f.DistanceKM)
	if f.LevelMin > 0 {
		q = q.num("level_min", f.LevelMin)
	}
	if f.LevelMax > 0 {
		q = q.num("level_max", f.LevelMax)
	}
	return gateway.Do[Raw](ctx, cm.c, get("/community/users/search", q.values()))
}

func (cm *Community) UserProfile(ctx context.Context, userID int64) gateway.Result[Raw] {
	return gateway.Do[Raw](ctx, cm.c, get(fmt.Sprintf("/community/users/%d", userID), nil))
}

func (cm *Community) Follow(ctx context.Context, userID int64) gateway.Result[Raw] {
	return gateway.Do[Raw](ctx, cm.c, post(fmt.Sprintf("/community/users/%d/follow", userID), nil))
}

func (cm *Community) Unfollow(ctx context.Context, userID int64) gateway.Result[Raw] {
	return gateway.Do[Raw](ctx, cm.c, del(fmt.Sprintf("/community/users/%d/follow", userID)))
}

func (cm *Community) ActivityFeed(ctx context.Context, limit, offset int) gateway.Result[Raw] {
	if limit <= 0 {
		limit = 20
	}
	return gateway.Do[Raw](ctx, cm.c, get("/community/activity", window(limit, offset)))
}
