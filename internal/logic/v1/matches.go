package v1

import (
	"context"
	"fmt"
	"sync"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/duynhne/shakplay/internal/core/domain"
	"github.com/duynhne/shakplay/internal/core/endpoint"
	"github.com/duynhne/shakplay/middleware"
)

// DefaultMatchType is used when a match is created without one.
const DefaultMatchType = "singles"

// MatchService keeps the user's matches and the match being recorded.
// Mutations reload the list the way the match screens expect.
type MatchService struct {
	api      *endpoint.Matches
	notifier Notifier

	mu      sync.RWMutex
	matches []domain.Match
	active  *domain.Match
	loading bool
	lastErr string
}

// NewMatchService creates an empty MatchService. A nil notifier logs.
func NewMatchService(api *endpoint.Matches, notifier Notifier) *MatchService {
	if notifier == nil {
		notifier = LogNotifier{}
	}
	return &MatchService{api: api, notifier: notifier}
}

// Matches returns the last loaded matches.
func (s *MatchService) Matches() []domain.Match {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Match, len(s.matches))
	copy(out, s.matches)
	return out
}

// Active returns the match being recorded, or nil.
func (s *MatchService) Active() *domain.Match {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.active == nil {
		return nil
	}
	m := *s.active
	return &m
}

// Loading reports whether Load is in flight.
func (s *MatchService) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// LastError returns the message of the last failed Load, or "".
func (s *MatchService) LastError() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastErr
}

func (s *MatchService) setActive(m *domain.Match) {
	s.mu.Lock()
	s.active = m
	s.mu.Unlock()
}

// Load fetches the user's matches and picks up an active one if present.
func (s *MatchService) Load(ctx context.Context) error {
	ctx, span := middleware.StartSpan(ctx, "matches.load", trace.WithAttributes(
		attribute.String("layer", "logic"),
	))
	defer span.End()

	s.mu.Lock()
	s.loading = true
	s.lastErr = ""
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		s.loading = false
		s.mu.Unlock()
	}()

	res := s.api.MyMatches(ctx, "", 0)
	if res.Failed() {
		s.mu.Lock()
		s.lastErr = res.Error
		s.mu.Unlock()
		span.RecordError(res.Err())
		notifyFail(ctx, s.notifier, "Error loading matches", res.Error)
		return fmt.Errorf("load matches: %w", res.Err())
	}

	s.mu.Lock()
	s.matches = *res.Data
	for i := range s.matches {
		if s.matches[i].Status == domain.MatchActive {
			m := s.matches[i]
			s.active = &m
			break
		}
	}
	s.mu.Unlock()

	span.SetAttributes(attribute.Int("matches.count", len(*res.Data)))
	return nil
}

// reload refreshes the list after a mutation. Its failure is already
// notified and does not fail the mutation.
func (s *MatchService) reload(ctx context.Context) {
	_ = s.Load(ctx)
}

// Create sets up a new match on a court.
func (s *MatchService) Create(ctx context.Context, clubID, courtID int64, duration string) (*domain.Match, error) {
	res := s.api.Create(ctx, domain.NewMatch{
		ClubID:    clubID,
		CourtID:   courtID,
		Duration:  duration,
		MatchType: DefaultMatchType,
	})
	if res.Failed() {
		notifyFail(ctx, s.notifier, "Failed to create match", res.Error)
		return nil, fmt.Errorf("create match: %w", res.Err())
	}
	notifyOK(ctx, s.notifier, "Match Created", "Your match has been set up successfully")
	s.reload(ctx)
	return res.Data, nil
}

// Start begins recording matchID and makes it the active match.
func (s *MatchService) Start(ctx context.Context, matchID int64) (*domain.Match, error) {
	res := s.api.Start(ctx, matchID)
	if res.Failed() {
		notifyFail(ctx, s.notifier, "Failed to start match", res.Error)
		return nil, fmt.Errorf("start match %d: %w", matchID, res.Err())
	}
	m := *res.Data
	s.setActive(&m)
	notifyOK(ctx, s.notifier, "Match Started", "Recording has begun!")
	s.reload(ctx)
	return res.Data, nil
}

// End finishes matchID and clears the active match.
func (s *MatchService) End(ctx context.Context, matchID int64, finalScore string) (*domain.Match, error) {
	res := s.api.End(ctx, matchID, finalScore)
	if res.Failed() {
		notifyFail(ctx, s.notifier, "Failed to end match", res.Error)
		return nil, fmt.Errorf("end match %d: %w", matchID, res.Err())
	}
	s.setActive(nil)
	notifyOK(ctx, s.notifier, "Match Completed", "Match ended successfully!")
	s.reload(ctx)
	return res.Data, nil
}

// EndActive finishes the active match.
func (s *MatchService) EndActive(ctx context.Context, finalScore string) (*domain.Match, error) {
	active := s.Active()
	if active == nil {
		return nil, fmt.Errorf("end match: %w", ErrNoActiveMatch)
	}
	return s.End(ctx, active.ID, finalScore)
}

// MarkReplay flags timestamp in matchID as a replay moment.
func (s *MatchService) MarkReplay(ctx context.Context, matchID int64, timestamp, description string) (*domain.Replay, error) {
	res := s.api.MarkReplay(ctx, matchID, timestamp, description)
	if res.Failed() {
		notifyFail(ctx, s.notifier, "Failed to mark replay", res.Error)
		return nil, fmt.Errorf("mark replay on match %d: %w", matchID, res.Err())
	}
	notifyOK(ctx, s.notifier, "Replay Marked", "Marked at "+timestamp)
	return res.Data, nil
}

// Replays lists the replays of matchID. Failures yield an empty list.
func (s *MatchService) Replays(ctx context.Context, matchID int64) []domain.Replay {
	res := s.api.MatchReplays(ctx, matchID)
	if res.Failed() {
		notifyFail(ctx, s.notifier, "Failed to load replays", res.Error)
		return []domain.Replay{}
	}
	return *res.Data
}

// UpdateScore sets the running score and refreshes the active match.
func (s *MatchService) UpdateScore(ctx context.Context, matchID int64, playerScore, opponentScore int) (*domain.Match, error) {
	res := s.api.UpdateScore(ctx, matchID, playerScore, opponentScore)
	if res.Failed() {
		notifyFail(ctx, s.notifier, "Failed to update score", res.Error)
		return nil, fmt.Errorf("update score of match %d: %w", matchID, res.Err())
	}
	s.mu.Lock()
	if s.active != nil && s.active.ID == matchID {
		m := *res.Data
		s.active = &m
	}
	s.mu.Unlock()
	s.reload(ctx)
	return res.Data, nil
}

// Invite asks email to join matchID.
func (s *MatchService) Invite(ctx context.Context, matchID int64, email string) (*domain.MatchInvite, error) {
	res := s.api.InvitePlayer(ctx, matchID, email, "")
	if res.Failed() {
		notifyFail(ctx, s.notifier, "Failed to send invitation", res.Error)
		return nil, fmt.Errorf("invite %q to match %d: %w", email, matchID, res.Err())
	}
	notifyOK(ctx, s.notifier, "Invitation Sent", fmt.Sprintf("Invited %s to join the match", email))
	return res.Data, nil
}

// RespondToInvite accepts or declines inviteID.
func (s *MatchService) RespondToInvite(ctx context.Context, inviteID int64, accept bool) (*domain.MatchInvite, error) {
	res := s.api.RespondToInvite(ctx, inviteID, accept)
	if res.Failed() {
		notifyFail(ctx, s.notifier, "Failed to respond to invitation", res.Error)
		return nil, fmt.Errorf("respond to invite %d: %w", inviteID, res.Err())
	}
	action := "declined"
	if accept {
		action = "accepted"
	}
	notifyOK(ctx, s.notifier, "Invitation Response", fmt.Sprintf("You have %s the match invitation", action))
	s.reload(ctx)
	return res.Data, nil
}

// Delete removes matchID permanently.
func (s *MatchService) Delete(ctx context.Context, matchID int64) error {
	res := s.api.Delete(ctx, matchID)
	if res.Failed() {
		notifyFail(ctx, s.notifier, "Failed to delete match", res.Error)
		return fmt.Errorf("delete match %d: %w", matchID, res.Err())
	}
	notifyOK(ctx, s.notifier, "Match Deleted", "Match has been permanently deleted")
	s.reload(ctx)
	return nil
}

// Share changes who can see matchID: "public", "friends" or "private".
func (s *MatchService) Share(ctx context.Context, matchID int64, shareType string) (*domain.Match, error) {
	res := s.api.Share(ctx, matchID, shareType)
	if res.Failed() {
		notifyFail(ctx, s.notifier, "Failed to share match", res.Error)
		return nil, fmt.Errorf("share match %d: %w", matchID, res.Err())
	}
	notifyOK(ctx, s.notifier, "Match Shared", "Match sharing settings updated")
	s.reload(ctx)
	return res.Data, nil
}
