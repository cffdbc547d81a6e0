package v1

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/duynhne/shakplay/internal/core/domain"
	"github.com/duynhne/shakplay/internal/core/endpoint"
)

func newClubs(c *scripted) (*ClubService, *Inbox) {
	inbox := NewInbox(nil, 10)
	return NewClubService(endpoint.New(c).Clubs, inbox), inbox
}

func TestClubService_LoadAndFavorite(t *testing.T) {
	ctx := context.Background()
	c := newScripted().
		ok(http.MethodGet, endpoint.PathClubs, []domain.Club{{ID: 1, Name: "Elite"}, {ID: 2, Name: "Padel House"}}).
		ok(http.MethodPost, "/clubs/2/favorite", domain.FavoriteState{IsFavorite: true})
	s, inbox := newClubs(c)

	require.NoError(t, s.Load(ctx))
	require.Len(t, s.Clubs(), 2)

	state, err := s.ToggleFavorite(ctx, 2)
	require.NoError(t, err)
	assert.True(t, state.IsFavorite)
	assert.False(t, s.Clubs()[0].IsFavorite)
	assert.True(t, s.Clubs()[1].IsFavorite)
	assert.Equal(t, "Club added to favorites", inbox.Recent()[0].Description)
}

func TestClubService_Search(t *testing.T) {
	ctx := context.Background()
	c := newScripted().ok(http.MethodGet, "/clubs/search", []domain.Club{{ID: 7, Name: "Match"}})
	s, _ := newClubs(c)

	found := s.Search(ctx, "match", domain.ClubFilter{})
	require.Len(t, found, 1)
	assert.Equal(t, found, s.Clubs())
	assert.False(t, s.Loading())
}

func TestClubService_Failures(t *testing.T) {
	ctx := context.Background()
	s, inbox := newClubs(newScripted())

	assert.Empty(t, s.Courts(ctx, 1))
	assert.Empty(t, s.Search(ctx, "x", domain.ClubFilter{}))
	_, err := s.ScanQR(ctx, "garbage")
	require.Error(t, err)
	require.Error(t, s.Load(ctx))
	assert.NotEmpty(t, s.LastError())

	assert.Equal(t, []string{"Error loading courts", "Search Failed", "Invalid QR Code", "Error loading clubs"}, titles(inbox))
}

func TestClubService_ScanQR(t *testing.T) {
	c := newScripted().ok(http.MethodPost, "/clubs/scan-qr", domain.QRScanResult{
		ClubID: 1, CourtID: 11, ClubName: "Elite", CourtName: "Court 1",
	})
	s, inbox := newClubs(c)

	res, err := s.ScanQR(context.Background(), "shakplay://court/11")
	require.NoError(t, err)
	assert.Equal(t, int64(11), res.CourtID)
	assert.Equal(t, "Elite - Court 1", inbox.Recent()[0].Description)
}

func TestInbox_KeepsMostRecent(t *testing.T) {
	var forwarded []string
	next := notifierFunc(func(_ context.Context, n Notification) { forwarded = append(forwarded, n.Title) })
	in := NewInbox(next, 2)

	for _, title := range []string{"a", "b", "c"} {
		in.Notify(context.Background(), Notification{Title: title})
	}
	assert.Equal(t, []string{"b", "c"}, titles(in))
	assert.Equal(t, []string{"a", "b", "c"}, forwarded)
}

type notifierFunc func(context.Context, Notification)

func (f notifierFunc) Notify(ctx context.Context, n Notification) { f(ctx, n) }
