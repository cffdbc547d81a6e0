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

// ClubService keeps the loaded club list.
type ClubService struct {
	api      *endpoint.Clubs
	notifier Notifier

	mu      sync.RWMutex
	clubs   []domain.Club
	loading bool
	lastErr string
}

// NewClubService creates an empty ClubService. A nil notifier logs.
func NewClubService(api *endpoint.Clubs, notifier Notifier) *ClubService {
	if notifier == nil {
		notifier = LogNotifier{}
	}
	return &ClubService{api: api, notifier: notifier}
}

// Clubs returns the last loaded or searched clubs.
func (s *ClubService) Clubs() []domain.Club {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Club, len(s.clubs))
	copy(out, s.clubs)
	return out
}

// Loading reports whether Load or Search is in flight.
func (s *ClubService) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// LastError returns the message of the last failed Load, or "".
func (s *ClubService) LastError() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastErr
}

func (s *ClubService) setLoading(v bool) {
	s.mu.Lock()
	s.loading = v
	s.mu.Unlock()
}

// Load fetches every club.
func (s *ClubService) Load(ctx context.Context) error {
	ctx, span := middleware.StartSpan(ctx, "clubs.load", trace.WithAttributes(
		attribute.String("layer", "logic"),
	))
	defer span.End()

	s.mu.Lock()
	s.loading = true
	s.lastErr = ""
	s.mu.Unlock()
	defer s.setLoading(false)

	res := s.api.List(ctx, domain.ClubFilter{})
	if res.Failed() {
		s.mu.Lock()
		s.lastErr = res.Error
		s.mu.Unlock()
		span.RecordError(res.Err())
		notifyFail(ctx, s.notifier, "Error loading clubs", res.Error)
		return fmt.Errorf("load clubs: %w", res.Err())
	}

	s.mu.Lock()
	s.clubs = *res.Data
	s.mu.Unlock()
	span.SetAttributes(attribute.Int("clubs.count", len(*res.Data)))
	return nil
}

// Get fetches one club.
func (s *ClubService) Get(ctx context.Context, clubID int64) (*domain.Club, error) {
	res := s.api.Get(ctx, clubID)
	if res.Failed() {
		notifyFail(ctx, s.notifier, "Error loading club", res.Error)
		return nil, fmt.Errorf("get club %d: %w", clubID, res.Err())
	}
	return res.Data, nil
}

// Courts lists the courts of a club. Failures yield an empty list.
func (s *ClubService) Courts(ctx context.Context, clubID int64) []domain.Court {
	res := s.api.Courts(ctx, clubID)
	if res.Failed() {
		notifyFail(ctx, s.notifier, "Error loading courts", res.Error)
		return []domain.Court{}
	}
	return *res.Data
}

// ScanQR resolves a court QR code.
func (s *ClubService) ScanQR(ctx context.Context, qrData string) (*domain.QRScanResult, error) {
	res := s.api.ScanQR(ctx, qrData)
	if res.Failed() {
		notifyFail(ctx, s.notifier, "Invalid QR Code", res.Error)
		return nil, fmt.Errorf("scan qr: %w", res.Err())
	}
	notifyOK(ctx, s.notifier, "QR Code Scanned", res.Data.ClubName+" - "+res.Data.CourtName)
	return res.Data, nil
}

// Book reserves a court for duration minutes on date.
func (s *ClubService) Book(ctx context.Context, clubID, courtID int64, date string, duration int) (*domain.CourtBooking, error) {
	res := s.api.BookCourt(ctx, clubID, courtID, date, duration, "")
	if res.Failed() {
		notifyFail(ctx, s.notifier, "Booking Failed", res.Error)
		return nil, fmt.Errorf("book court %d: %w", courtID, res.Err())
	}
	notifyOK(ctx, s.notifier, "Court Booked", "Your court has been successfully booked")
	return res.Data, nil
}

// Rate submits a rating and reloads the clubs for the new average.
func (s *ClubService) Rate(ctx context.Context, clubID int64, rating int, review string) (*domain.ClubRating, error) {
	res := s.api.Rate(ctx, clubID, rating, review)
	if res.Failed() {
		notifyFail(ctx, s.notifier, "Rating Failed", res.Error)
		return nil, fmt.Errorf("rate club %d: %w", clubID, res.Err())
	}
	notifyOK(ctx, s.notifier, "Rating Submitted", "Thank you for your feedback!")
	_ = s.Load(ctx)
	return res.Data, nil
}

// ToggleFavorite flips the favorite flag and mirrors it in the local list.
func (s *ClubService) ToggleFavorite(ctx context.Context, clubID int64) (*domain.FavoriteState, error) {
	res := s.api.ToggleFavorite(ctx, clubID)
	if res.Failed() {
		notifyFail(ctx, s.notifier, "Update Failed", res.Error)
		return nil, fmt.Errorf("toggle favorite %d: %w", clubID, res.Err())
	}

	s.mu.Lock()
	for i := range s.clubs {
		if s.clubs[i].ID == clubID {
			s.clubs[i].IsFavorite = res.Data.IsFavorite
		}
	}
	s.mu.Unlock()

	action := "removed from"
	if res.Data.IsFavorite {
		action = "added to"
	}
	notifyOK(ctx, s.notifier, "Favorites Updated", fmt.Sprintf("Club %s favorites", action))
	return res.Data, nil
}

// Search replaces the local list with the clubs matching text.
func (s *ClubService) Search(ctx context.Context, text string, f domain.ClubFilter) []domain.Club {
	s.setLoading(true)
	defer s.setLoading(false)

	res := s.api.Search(ctx, text, f)
	if res.Failed() {
		notifyFail(ctx, s.notifier, "Search Failed", res.Error)
		return []domain.Club{}
	}
	s.mu.Lock()
	s.clubs = *res.Data
	s.mu.Unlock()
	return *res.Data
}
