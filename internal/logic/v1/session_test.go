package v1

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/duynhne/shakplay/internal/core/domain"
	"github.com/duynhne/shakplay/internal/core/endpoint"
	"github.com/duynhne/shakplay/internal/core/fixture"
	"github.com/duynhne/shakplay/internal/core/gateway"
)

var demoUser = domain.User{ID: 1, Name: "Demo User", Email: "demo@shakplay.com", Role: domain.RolePlayer, SkillLevel: 5}

func newSession(c gateway.Caller, tokens *tokenBox) (*SessionService, *Inbox) {
	inbox := NewInbox(nil, 10)
	return NewSessionService(tokens, endpoint.New(c).Auth, inbox), inbox
}

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(exp),
	}).SignedString([]byte("k"))
	require.NoError(t, err)
	return token
}

func TestNewSessionService_StartsUnknown(t *testing.T) {
	s, _ := newSession(newScripted(), &tokenBox{})
	assert.Equal(t, StateUnknown, s.State())
	assert.Nil(t, s.User())
	assert.False(t, s.IsAuthenticated())
	assert.True(t, s.Loading(), "unknown state counts as loading")

	require.NoError(t, s.Init(context.Background()))
	assert.False(t, s.Loading())
}

func TestLoading_WhileCallInFlight(t *testing.T) {
	ctx := context.Background()
	backend := newScripted().
		ok(http.MethodPost, endpoint.PathLogin, domain.AuthResponse{AuthToken: "tok", User: domain.AuthUser{ID: 1, Email: demoUser.Email}}).
		ok(http.MethodPost, endpoint.PathSignup, domain.AuthResponse{AuthToken: "tok", User: domain.AuthUser{ID: 2, Email: "new@example.com"}}).
		ok(http.MethodGet, endpoint.PathMe, demoUser).
		ok(http.MethodPost, endpoint.PathLogout, map[string]bool{"success": true})

	tests := []struct {
		name   string
		stored string
		run    func(*SessionService) error
	}{
		{"init", "opaque-token", func(s *SessionService) error { return s.Init(ctx) }},
		{"login", "", func(s *SessionService) error {
			return s.Login(ctx, domain.LoginCredentials{Email: demoUser.Email, Password: "demo123"})
		}},
		{"register", "", func(s *SessionService) error {
			return s.Register(ctx, domain.RegisterData{Name: "New", Email: "new@example.com", Password: "pw"})
		}},
		{"logout", "", func(s *SessionService) error { s.Logout(ctx); return nil }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newGated(backend)
			tokens := &tokenBox{token: tt.stored}
			s, _ := newSession(g, tokens)
			if tt.stored == "" {
				// No stored token: Init settles without a call.
				require.NoError(t, s.Init(ctx))
				require.False(t, s.Loading())
			}

			done := make(chan error, 1)
			go func() { done <- tt.run(s) }()

			<-g.entered
			assert.True(t, s.Loading())

			close(g.release)
			require.NoError(t, <-done)
			assert.False(t, s.Loading())
		})
	}
}

func TestInit(t *testing.T) {
	ctx := context.Background()

	t.Run("no token", func(t *testing.T) {
		c := newScripted()
		s, _ := newSession(c, &tokenBox{})

		require.NoError(t, s.Init(ctx))
		assert.Equal(t, StateUnauthenticated, s.State())
		assert.Empty(t, c.calls, "no request without a token")
	})

	t.Run("expired jwt dropped without a request", func(t *testing.T) {
		c := newScripted().ok(http.MethodGet, endpoint.PathMe, demoUser)
		tokens := &tokenBox{token: signedToken(t, time.Now().Add(-time.Hour))}
		s, _ := newSession(c, tokens)

		err := s.Init(ctx)
		assert.ErrorIs(t, err, ErrSessionExpired)
		assert.Empty(t, tokens.Token())
		assert.Equal(t, StateUnauthenticated, s.State())
		assert.Zero(t, c.called("GET "+endpoint.PathMe))
	})

	t.Run("valid token restores profile", func(t *testing.T) {
		c := newScripted().ok(http.MethodGet, endpoint.PathMe, demoUser)
		tokens := &tokenBox{token: signedToken(t, time.Now().Add(time.Hour))}
		s, _ := newSession(c, tokens)

		require.NoError(t, s.Init(ctx))
		assert.Equal(t, StateAuthenticated, s.State())
		require.NotNil(t, s.User())
		assert.Equal(t, demoUser.Email, s.User().Email)
		assert.NotEmpty(t, tokens.Token())
	})

	t.Run("opaque token checked by the server", func(t *testing.T) {
		c := newScripted().ok(http.MethodGet, endpoint.PathMe, demoUser)
		s, _ := newSession(c, &tokenBox{token: "opaque-xano-token"})

		require.NoError(t, s.Init(ctx))
		assert.True(t, s.IsAuthenticated())
		assert.Equal(t, 1, c.called("GET "+endpoint.PathMe))
	})

	t.Run("rejected token dropped", func(t *testing.T) {
		c := newScripted().fail(http.MethodGet, endpoint.PathMe, gateway.Response{
			Error: "Unauthorized", Status: http.StatusUnauthorized, Kind: gateway.KindApplication,
		})
		tokens := &tokenBox{token: "stale"}
		s, _ := newSession(c, tokens)

		err := s.Init(ctx)
		assert.ErrorIs(t, err, gateway.ErrApplication)
		assert.Empty(t, tokens.Token())
		assert.Equal(t, StateUnauthenticated, s.State())
		assert.Nil(t, s.User())
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	auth := domain.AuthResponse{
		AuthToken: "tok-123",
		User:      domain.AuthUser{ID: 9, Name: "Kim", Email: "kim@example.com", SkillLevel: 3, XP: 40},
	}

	t.Run("full profile", func(t *testing.T) {
		c := newScripted().
			ok(http.MethodPost, endpoint.PathLogin, auth).
			ok(http.MethodGet, endpoint.PathMe, domain.User{ID: 9, Name: "Kim", Email: "kim@example.com", Sport: "Padel"})
		tokens := &tokenBox{}
		s, inbox := newSession(c, tokens)

		require.NoError(t, s.Login(ctx, domain.LoginCredentials{Email: "kim@example.com", Password: "pw"}))
		assert.Equal(t, "tok-123", tokens.Token())
		assert.Equal(t, "Padel", s.User().Sport)
		assert.Equal(t, StateAuthenticated, s.State())
		assert.Equal(t, []string{"Welcome back!"}, titles(inbox))
	})

	t.Run("fallback profile when me fails", func(t *testing.T) {
		c := newScripted().
			ok(http.MethodPost, endpoint.PathLogin, auth).
			fail(http.MethodGet, endpoint.PathMe, networkDown())
		s, _ := newSession(c, &tokenBox{})

		require.NoError(t, s.Login(ctx, domain.LoginCredentials{Email: "kim@example.com", Password: "pw"}))
		user := s.User()
		require.NotNil(t, user)
		assert.Equal(t, int64(9), user.ID)
		assert.Equal(t, domain.RolePlayer, user.Role)
		assert.Equal(t, "Tennis", user.Sport)
		assert.Equal(t, 3, user.SkillLevel)
		assert.Equal(t, 40, user.XP)
		assert.Equal(t, 100, user.NextLevelXP)
		assert.Equal(t, "free", user.Subscription.Type)
		assert.True(t, user.EmailVerified)
		assert.Equal(t, "public", user.Preferences.Privacy)
	})

	t.Run("rejected credentials", func(t *testing.T) {
		c := newScripted().fail(http.MethodPost, endpoint.PathLogin, gateway.Response{
			Error: "Invalid credentials", Status: http.StatusUnauthorized, Kind: gateway.KindApplication,
		})
		tokens := &tokenBox{}
		s, inbox := newSession(c, tokens)

		err := s.Login(ctx, domain.LoginCredentials{Email: "kim@example.com", Password: "bad"})
		assert.ErrorIs(t, err, gateway.ErrApplication)
		assert.Empty(t, tokens.Token())
		assert.Nil(t, s.User())
		require.Len(t, inbox.Recent(), 1)
		assert.True(t, inbox.Recent()[0].Destructive)
		assert.Equal(t, "Invalid credentials", inbox.Recent()[0].Description)
	})
}

func TestRegister_FallbackKeepsRequestedSport(t *testing.T) {
	c := newScripted().ok(http.MethodPost, endpoint.PathSignup, domain.AuthResponse{
		AuthToken: "tok",
		User:      domain.AuthUser{ID: 3, Name: "Lee", Email: "lee@example.com"},
	})
	s, inbox := newSession(c, &tokenBox{})

	err := s.Register(context.Background(), domain.RegisterData{
		Name: "Lee", Email: "lee@example.com", Password: "pw", Sport: "Padel", SkillLevel: 2,
	})
	require.NoError(t, err)
	user := s.User()
	assert.Equal(t, "Padel", user.Sport)
	assert.Equal(t, 2, user.SkillLevel)
	assert.Zero(t, user.XP)
	assert.False(t, user.EmailVerified)
	assert.Equal(t, []string{"Account created"}, titles(inbox))
}

func TestLogout_ClearsEvenWhenServerFails(t *testing.T) {
	ctx := context.Background()
	c := newScripted().
		ok(http.MethodGet, endpoint.PathMe, demoUser).
		fail(http.MethodPost, endpoint.PathLogout, networkDown())
	tokens := &tokenBox{token: "opaque"}
	s, _ := newSession(c, tokens)
	require.NoError(t, s.Init(ctx))
	require.True(t, s.IsAuthenticated())

	s.Logout(ctx)
	assert.Empty(t, tokens.Token())
	assert.Nil(t, s.User())
	assert.Equal(t, StateUnauthenticated, s.State())
	assert.Equal(t, 1, c.called("POST "+endpoint.PathLogout))
}

func TestLogout_StoreFailureIsNotFatal(t *testing.T) {
	tokens := &tokenBox{token: "opaque", clearErr: errors.New("disk full")}
	s, _ := newSession(newScripted(), tokens)

	s.Logout(context.Background())
	assert.Equal(t, 1, tokens.cleared)
	assert.Equal(t, StateUnauthenticated, s.State())
}

func TestUpdateProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("requires a user", func(t *testing.T) {
		c := newScripted()
		s, _ := newSession(c, &tokenBox{})
		name := "x"
		err := s.UpdateProfile(ctx, domain.ProfileUpdate{Name: &name})
		assert.ErrorIs(t, err, ErrNotAuthenticated)
		assert.Empty(t, c.calls)
	})

	t.Run("replaces the user", func(t *testing.T) {
		updated := demoUser
		updated.Bio = "Lefty"
		c := newScripted().
			ok(http.MethodGet, endpoint.PathMe, demoUser).
			ok(http.MethodPatch, "/users/1", updated)
		s, inbox := newSession(c, &tokenBox{token: "opaque"})
		require.NoError(t, s.Init(ctx))

		bio := "Lefty"
		require.NoError(t, s.UpdateProfile(ctx, domain.ProfileUpdate{Bio: &bio}))
		assert.Equal(t, "Lefty", s.User().Bio)
		assert.Equal(t, []string{"Profile updated"}, titles(inbox))
	})
}

func TestRefreshUser(t *testing.T) {
	ctx := context.Background()

	c := newScripted()
	s, _ := newSession(c, &tokenBox{})
	require.NoError(t, s.RefreshUser(ctx))
	assert.Empty(t, c.calls, "signed out refresh is a no-op")

	c = newScripted().ok(http.MethodGet, endpoint.PathMe, demoUser)
	s, _ = newSession(c, &tokenBox{token: "opaque"})
	require.NoError(t, s.Init(ctx))

	c.fail(http.MethodGet, endpoint.PathMe, networkDown())
	assert.ErrorIs(t, s.RefreshUser(ctx), gateway.ErrNetwork)
	assert.Equal(t, demoUser.Email, s.User().Email, "user kept on failure")
}

func TestUser_ReturnsCopy(t *testing.T) {
	user := demoUser
	user.Achievements = []string{"first-win"}
	c := newScripted().ok(http.MethodGet, endpoint.PathMe, user)
	s, _ := newSession(c, &tokenBox{token: "opaque"})
	require.NoError(t, s.Init(context.Background()))

	s.User().Name = "mutated"
	assert.Equal(t, "Demo User", s.User().Name)

	s.User().Achievements[0] = "mutated"
	assert.Equal(t, []string{"first-win"}, s.User().Achievements)
}

func TestDemoLoginAgainstFixtures(t *testing.T) {
	ctx := context.Background()
	p, err := fixture.New(fixture.WithDelayScale(0))
	require.NoError(t, err)

	tokens := &tokenBox{}
	s, _ := newSession(p, tokens)

	err = s.Login(ctx, domain.LoginCredentials{Email: "demo@shakplay.com", Password: "wrong"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), fixture.MsgInvalidCredentials)

	require.NoError(t, s.Login(ctx, domain.LoginCredentials{Email: "demo@shakplay.com", Password: "demo123"}))
	assert.Equal(t, "Demo User", s.User().Name)

	// A fresh session restores from the issued token.
	restored, _ := newSession(p, tokens)
	require.NoError(t, restored.Init(ctx))
	assert.True(t, restored.IsAuthenticated())
}
