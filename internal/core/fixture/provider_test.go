package fixture_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/duynhne/shakplay/internal/core/domain"
	"github.com/duynhne/shakplay/internal/core/endpoint"
	"github.com/duynhne/shakplay/internal/core/fixture"
	"github.com/duynhne/shakplay/internal/core/gateway"
)

func newProvider(t *testing.T) (*fixture.Provider, *endpoint.API) {
	t.Helper()
	p, err := fixture.New(fixture.WithDelayScale(0), fixture.WithSigningKey([]byte("test-key")))
	require.NoError(t, err)
	return p, endpoint.New(p)
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	p, api := newProvider(t)

	t.Run("demo account", func(t *testing.T) {
		res := api.Auth.Login(ctx, domain.LoginCredentials{Email: "demo@shakplay.com", Password: "demo123"})
		require.False(t, res.Failed(), res.Error)
		assert.Equal(t, int64(1), res.Data.User.ID)
		assert.Equal(t, "Demo User", res.Data.User.Name)

		claims, err := p.ParseToken(res.Data.AuthToken)
		require.NoError(t, err)
		assert.Equal(t, "demo@shakplay.com", claims.Email)
		assert.Equal(t, "1", claims.Subject)
		assert.WithinDuration(t, time.Now().Add(fixture.TokenTTL), claims.ExpiresAt.Time, time.Minute)
	})

	t.Run("wrong password", func(t *testing.T) {
		res := api.Auth.Login(ctx, domain.LoginCredentials{Email: "demo@shakplay.com", Password: "nope"})
		assert.True(t, res.Failed())
		assert.Nil(t, res.Data)
		assert.Equal(t, fixture.MsgInvalidCredentials, res.Error)
		assert.Equal(t, http.StatusUnauthorized, res.Status)
		assert.Equal(t, gateway.KindApplication, res.Kind)
	})

	t.Run("unknown email", func(t *testing.T) {
		res := api.Auth.Login(ctx, domain.LoginCredentials{Email: "someone@else.com", Password: "demo123"})
		assert.Equal(t, fixture.MsgInvalidCredentials, res.Error)
	})
}

func TestParseToken_RejectsForeignKey(t *testing.T) {
	ctx := context.Background()
	_, api := newProvider(t)
	other, err := fixture.New(fixture.WithDelayScale(0), fixture.WithSigningKey([]byte("other-key")))
	require.NoError(t, err)

	res := api.Auth.Login(ctx, domain.LoginCredentials{Email: "demo@shakplay.com", Password: "demo123"})
	require.False(t, res.Failed())

	_, err = other.ParseToken(res.Data.AuthToken)
	assert.Error(t, err)
}

func TestSignup(t *testing.T) {
	_, api := newProvider(t)

	res := api.Auth.Register(context.Background(), domain.RegisterData{
		Name:     "Sam Court",
		Email:    "sam@example.com",
		Password: "secret",
	})
	require.False(t, res.Failed(), res.Error)
	assert.Equal(t, "Sam Court", res.Data.User.Name)
	assert.Equal(t, "sam@example.com", res.Data.User.Email)
	assert.Equal(t, 1, res.Data.User.SkillLevel)
	assert.Zero(t, res.Data.User.XP)
	assert.NotEqual(t, int64(1), res.Data.User.ID)
	assert.NotEmpty(t, res.Data.AuthToken)
}

func TestProfileFollowsBearerToken(t *testing.T) {
	ctx := context.Background()
	var token string
	p, err := fixture.New(
		fixture.WithDelayScale(0),
		fixture.WithSigningKey([]byte("test-key")),
		fixture.WithTokenSource(func() string { return token }),
	)
	require.NoError(t, err)
	api := endpoint.New(p)
	demoLocation := p.Profile().Location

	reg := api.Auth.Register(ctx, domain.RegisterData{Name: "Ana", Email: "ana@example.com", Password: "pw", Sport: "Padel"})
	require.False(t, reg.Failed(), reg.Error)
	token = reg.Data.AuthToken

	me := api.Auth.Profile(ctx)
	require.False(t, me.Failed(), me.Error)
	assert.Equal(t, reg.Data.User.ID, me.Data.ID)
	assert.Equal(t, "ana@example.com", me.Data.Email)
	assert.Equal(t, "Padel", me.Data.Sport)

	location := "Lisbon"
	updated := api.Auth.UpdateProfile(ctx, me.Data.ID, domain.ProfileUpdate{Location: &location})
	require.False(t, updated.Failed(), updated.Error)
	assert.Equal(t, "ana@example.com", updated.Data.Email)
	account, ok := p.Account(me.Data.ID)
	require.True(t, ok)
	assert.Equal(t, location, account.Location)
	assert.Equal(t, demoLocation, p.Profile().Location)

	for name, tok := range map[string]string{"no token": "", "garbage": "not-a-jwt"} {
		token = tok
		me = api.Auth.Profile(ctx)
		require.False(t, me.Failed(), name)
		assert.Equal(t, "demo@shakplay.com", me.Data.Email, name)
	}
}

func TestProfileAndUpdate(t *testing.T) {
	ctx := context.Background()
	p, api := newProvider(t)

	me := api.Auth.Profile(ctx)
	require.False(t, me.Failed(), me.Error)
	assert.Equal(t, "demo@shakplay.com", me.Data.Email)
	assert.Equal(t, "premium", me.Data.Subscription.Type)

	bio := "Clay court specialist"
	updated := api.Auth.UpdateProfile(ctx, me.Data.ID, domain.ProfileUpdate{Bio: &bio})
	require.False(t, updated.Failed(), updated.Error)
	assert.Equal(t, bio, updated.Data.Bio)
	assert.Equal(t, "Demo User", updated.Data.Name)
	assert.Equal(t, bio, p.Profile().Bio)
}

func TestLogout(t *testing.T) {
	res := endpoint.New(mustProvider(t)).Auth.Logout(context.Background())
	require.False(t, res.Failed())
	assert.JSONEq(t, `{"success":true}`, string(*res.Data))
}

func mustProvider(t *testing.T) *fixture.Provider {
	p, _ := newProvider(t)
	return p
}

func TestMatchesAndClubs(t *testing.T) {
	ctx := context.Background()
	_, api := newProvider(t)

	all := api.Matches.MyMatches(ctx, "", 0)
	require.False(t, all.Failed(), all.Error)
	assert.Len(t, *all.Data, 2)

	done := api.Matches.MyMatches(ctx, "completed", 0)
	require.False(t, done.Failed())
	require.Len(t, *done.Data, 1)
	assert.Equal(t, "6-4 3-6 7-5", (*done.Data)[0].FinalScore)

	clubs := api.Clubs.List(ctx, domain.ClubFilter{City: "Brooklyn"})
	require.False(t, clubs.Failed(), clubs.Error)
	require.Len(t, *clubs.Data, 1)
	assert.Equal(t, "Brooklyn Padel House", (*clubs.Data)[0].Name)

	courts := api.Clubs.Courts(ctx, 1)
	require.False(t, courts.Failed(), courts.Error)
	assert.Len(t, *courts.Data, 2)

	missing := api.Clubs.Get(ctx, 999)
	assert.True(t, missing.Failed())
	assert.Equal(t, "Club not found", missing.Error)
	assert.Equal(t, http.StatusNotFound, missing.Status)

	stats := api.Stats.UserStats(ctx, 0, "")
	require.False(t, stats.Failed(), stats.Error)
	assert.Equal(t, 25, stats.Data.MatchesPlayed)
}

func TestUnservedRouteLooksUnconfigured(t *testing.T) {
	p, api := newProvider(t)

	assert.False(t, p.Handles(http.MethodGet, "/shop/products"))
	assert.True(t, p.Handles(http.MethodGet, "/clubs/7/courts"))

	res := api.Shop.Cart(context.Background())
	assert.True(t, res.Failed())
	assert.Equal(t, gateway.KindConfig, res.Kind)
	assert.Equal(t, gateway.MsgNotConfigured, res.Error)
}

func TestDelayHonoursContext(t *testing.T) {
	p, err := fixture.New(fixture.WithDelayScale(10))
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	start := time.Now()
	res := endpoint.New(p).Auth.Profile(ctx)
	assert.True(t, res.Failed())
	assert.Less(t, time.Since(start), time.Second)
}

func TestNewFromSeed_RejectsBadYAML(t *testing.T) {
	_, err := fixture.NewFromSeed([]byte("demo: [unclosed"))
	assert.Error(t, err)
}
