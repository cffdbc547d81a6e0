package v1

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	pkgzerolog "github.com/duynhne/pkg/logger/zerolog"
	"github.com/golang-jwt/jwt/v5"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/duynhne/shakplay/internal/core/domain"
	"github.com/duynhne/shakplay/internal/core/endpoint"
	"github.com/duynhne/shakplay/middleware"
)

// State is the authentication state of a session.
type State int

const (
	// StateUnknown is the state before Init has finished.
	StateUnknown State = iota
	StateUnauthenticated
	StateAuthenticated
)

func (s State) String() string {
	switch s {
	case StateUnauthenticated:
		return "unauthenticated"
	case StateAuthenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}

// TokenHolder holds and persists the session token. *gateway.Client
// implements it.
type TokenHolder interface {
	Token() string
	SetToken(ctx context.Context, token string) error
	ClearToken(ctx context.Context) error
}

// SessionService owns the signed-in user and drives the auth flows.
// Concurrent operations are not ordered: the last one to finish wins.
type SessionService struct {
	tokens   TokenHolder
	auth     *endpoint.Auth
	notifier Notifier
	now      func() time.Time

	mu      sync.RWMutex
	user    *domain.User
	state   State
	loading int
}

// NewSessionService creates a session in StateUnknown. Call Init to restore
// a stored token. A nil notifier logs notifications.
func NewSessionService(tokens TokenHolder, auth *endpoint.Auth, notifier Notifier) *SessionService {
	if notifier == nil {
		notifier = LogNotifier{}
	}
	return &SessionService{
		tokens:   tokens,
		auth:     auth,
		notifier: notifier,
		now:      time.Now,
	}
}

// User returns a copy of the signed-in user, or nil.
func (s *SessionService) User() *domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	u.Achievements = slices.Clone(s.user.Achievements)
	return &u
}

// IsAuthenticated reports whether a user is signed in.
func (s *SessionService) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user != nil
}

// Loading reports whether an auth operation is in flight. A session whose
// state is still unknown counts as loading.
func (s *SessionService) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading > 0 || s.state == StateUnknown
}

// State returns the current authentication state.
func (s *SessionService) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

func (s *SessionService) begin() func() {
	s.mu.Lock()
	s.loading++
	s.mu.Unlock()
	return func() {
		s.mu.Lock()
		s.loading--
		s.mu.Unlock()
	}
}

func (s *SessionService) signIn(u domain.User) {
	s.mu.Lock()
	s.user = &u
	s.state = StateAuthenticated
	s.mu.Unlock()
}

func (s *SessionService) signOut() {
	s.mu.Lock()
	s.user = nil
	s.state = StateUnauthenticated
	s.mu.Unlock()
}

// dropToken clears the token. A store failure is logged, never returned.
func (s *SessionService) dropToken(ctx context.Context) {
	if err := s.tokens.ClearToken(ctx); err != nil {
		logger := pkgzerolog.FromContext(ctx)
		logger.Error().Err(err).Msg("Failed to clear stored token")
	}
}

// Init restores the session from the stored token. A token that is a JWT
// past its exp claim is dropped without a network call; otherwise the
// profile is fetched and any failure drops the token.
func (s *SessionService) Init(ctx context.Context) error {
	ctx, span := middleware.StartSpan(ctx, "session.init", trace.WithAttributes(
		attribute.String("layer", "logic"),
	))
	defer span.End()
	defer s.begin()()

	logger := pkgzerolog.FromContext(ctx)

	token := s.tokens.Token()
	if token == "" {
		s.signOut()
		span.SetAttributes(attribute.Bool("session.restored", false))
		return nil
	}

	if expired(token, s.now()) {
		s.dropToken(ctx)
		s.signOut()
		span.AddEvent("session.expired")
		logger.Info().Msg("Stored token expired")
		return fmt.Errorf("restore session: %w", ErrSessionExpired)
	}

	res := s.auth.Profile(ctx)
	if res.Failed() {
		span.RecordError(res.Err())
		logger.Error().Str("error", res.Error).Msg("Auth check failed")
		s.dropToken(ctx)
		s.signOut()
		return fmt.Errorf("restore session: %w", res.Err())
	}

	s.signIn(*res.Data)
	span.SetAttributes(
		attribute.Bool("session.restored", true),
		attribute.Int64("user.id", res.Data.ID),
	)
	return nil
}

// expired reports whether token is a JWT whose exp lies before now. Opaque
// tokens and tokens without exp never count as expired.
func expired(token string, now time.Time) bool {
	claims := jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return false
	}
	return claims.ExpiresAt != nil && claims.ExpiresAt.Before(now)
}

// Login signs in with credentials. The full profile is fetched after the
// token is stored; if that fails a minimal profile is built from the login
// response.
func (s *SessionService) Login(ctx context.Context, creds domain.LoginCredentials) error {
	ctx, span := middleware.StartSpan(ctx, "session.login", trace.WithAttributes(
		attribute.String("layer", "logic"),
		attribute.String("email", creds.Email),
	))
	defer span.End()
	defer s.begin()()

	res := s.auth.Login(ctx, creds)
	if res.Failed() {
		span.SetAttributes(attribute.Bool("auth.success", false))
		span.AddEvent("authentication.failed")
		notifyFail(ctx, s.notifier, "Login failed", res.Error)
		return fmt.Errorf("login %q: %w", creds.Email, res.Err())
	}

	user := s.establish(ctx, *res.Data, func(u domain.AuthUser) domain.User {
		return fallbackUser(u, "", u.SkillLevel, u.XP, true)
	})

	span.SetAttributes(
		attribute.Int64("user.id", user.ID),
		attribute.Bool("auth.success", true),
	)
	span.AddEvent("user.authenticated")
	notifyOK(ctx, s.notifier, "Welcome back!", "You have successfully logged in.")
	return nil
}

// Register creates an account and signs in with it.
func (s *SessionService) Register(ctx context.Context, data domain.RegisterData) error {
	ctx, span := middleware.StartSpan(ctx, "session.register", trace.WithAttributes(
		attribute.String("layer", "logic"),
		attribute.String("email", data.Email),
	))
	defer span.End()
	defer s.begin()()

	res := s.auth.Register(ctx, data)
	if res.Failed() {
		span.SetAttributes(attribute.Bool("registration.success", false))
		notifyFail(ctx, s.notifier, "Registration failed", res.Error)
		return fmt.Errorf("register %q: %w", data.Email, res.Err())
	}

	user := s.establish(ctx, *res.Data, func(u domain.AuthUser) domain.User {
		return fallbackUser(u, data.Sport, data.SkillLevel, 0, false)
	})

	span.SetAttributes(
		attribute.Int64("user.id", user.ID),
		attribute.Bool("registration.success", true),
	)
	span.AddEvent("user.registered")
	notifyOK(ctx, s.notifier, "Account created", "Welcome to ShakPlay!")
	return nil
}

// establish stores the issued token and signs in with the full profile, or
// with fallback when the profile cannot be fetched.
func (s *SessionService) establish(ctx context.Context, resp domain.AuthResponse, fallback func(domain.AuthUser) domain.User) domain.User {
	logger := pkgzerolog.FromContext(ctx)

	if err := s.tokens.SetToken(ctx, resp.AuthToken); err != nil {
		logger.Error().Err(err).Msg("Failed to persist token")
	}

	var user domain.User
	if profile := s.auth.Profile(ctx); !profile.Failed() {
		user = *profile.Data
	} else {
		logger.Warn().Str("error", profile.Error).Msg("Profile fetch failed, using basic user data")
		user = fallback(resp.User)
	}
	s.signIn(user)
	return user
}

// fallbackUser builds a minimal profile from the reduced auth user.
func fallbackUser(u domain.AuthUser, sport string, skillLevel, xp int, emailVerified bool) domain.User {
	if sport == "" {
		sport = "Tennis"
	}
	if skillLevel == 0 {
		skillLevel = 1
	}
	return domain.User{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		Avatar:       u.Avatar,
		Role:         domain.RolePlayer,
		Sport:        sport,
		SkillLevel:   skillLevel,
		XP:           xp,
		NextLevelXP:  100,
		Achievements: []string{},
		Preferences: domain.Preferences{
			Notifications: true,
			Privacy:       "public",
			Language:      "en",
		},
		Subscription:  domain.Subscription{Type: "free"},
		Stats:         domain.ProfileStats{},
		CreatedAt:     u.CreatedAt,
		UpdatedAt:     u.UpdatedAt,
		EmailVerified: emailVerified,
	}
}

// Logout tells the server, then clears the token and user whatever it
// answered.
func (s *SessionService) Logout(ctx context.Context) {
	ctx, span := middleware.StartSpan(ctx, "session.logout", trace.WithAttributes(
		attribute.String("layer", "logic"),
	))
	defer span.End()
	defer s.begin()()

	if res := s.auth.Logout(ctx); res.Failed() {
		logger := pkgzerolog.FromContext(ctx)
		logger.Warn().Str("error", res.Error).Msg("Logout error")
		span.RecordError(res.Err())
	}

	s.dropToken(ctx)
	s.signOut()
	notifyOK(ctx, s.notifier, "Signed out", "You have been logged out.")
}

// UpdateProfile patches the signed-in user's profile.
func (s *SessionService) UpdateProfile(ctx context.Context, update domain.ProfileUpdate) error {
	ctx, span := middleware.StartSpan(ctx, "session.update_profile", trace.WithAttributes(
		attribute.String("layer", "logic"),
	))
	defer span.End()

	current := s.User()
	if current == nil {
		return fmt.Errorf("update profile: %w", ErrNotAuthenticated)
	}
	span.SetAttributes(attribute.Int64("user.id", current.ID))

	res := s.auth.UpdateProfile(ctx, current.ID, update)
	if res.Failed() {
		span.RecordError(res.Err())
		notifyFail(ctx, s.notifier, "Profile update failed", res.Error)
		return fmt.Errorf("update profile %d: %w", current.ID, res.Err())
	}

	s.signIn(*res.Data)
	notifyOK(ctx, s.notifier, "Profile updated", "Your changes have been saved.")
	return nil
}

// RefreshUser refetches the profile of the signed-in user. The current user
// is kept when the fetch fails.
func (s *SessionService) RefreshUser(ctx context.Context) error {
	ctx, span := middleware.StartSpan(ctx, "session.refresh_user", trace.WithAttributes(
		attribute.String("layer", "logic"),
	))
	defer span.End()

	if !s.IsAuthenticated() {
		return nil
	}

	res := s.auth.Profile(ctx)
	if res.Failed() {
		logger := pkgzerolog.FromContext(ctx)
		logger.Error().Str("error", res.Error).Msg("Refresh user error")
		return fmt.Errorf("refresh user: %w", res.Err())
	}
	s.signIn(*res.Data)
	return nil
}
