package endpoint

import (
	"context"
	"fmt"

	"github.com/duynhne/shakplay/internal/core/domain"
	"github.com/duynhne/shakplay/internal/core/gateway"
)

// PathClubs lists clubs.
const PathClubs = "/clubs"

// Clubs covers venues, courts, bookings and club events.
type Clubs struct{ c gateway.Caller }

func clubQuery(q query, f domain.ClubFilter) query {
	q = q.str("city", f.City).
		str("sport", f.Sport).
		float("rating_min", f.RatingMin).
		flag("has_courts", f.HasCourts).
		float("max_distance", f.MaxDistance).
		coord("lat", f.Lat).
		coord("lng", f.Lng)
	return q
}

func (c *Clubs) List(ctx context.Context, f domain.ClubFilter) gateway.Result[[]domain.Club] {
	return gateway.Do[[]domain.Club](ctx, c.c, get(PathClubs, clubQuery(newQuery(), f).values()))
}

func (c *Clubs) Get(ctx context.Context, clubID int64) gateway.Result[domain.Club] {
	return gateway.Do[domain.Club](ctx, c.c, get(fmt.Sprintf("/clubs/%d", clubID), nil))
}

func (c *Clubs) Courts(ctx context.Context, clubID int64) gateway.Result[[]domain.Court] {
	return gateway.Do[[]domain.Court](ctx, c.c, get(fmt.Sprintf("/clubs/%d/courts", clubID), nil))
}

// Search always sends q, even when empty.
func (c *Clubs) Search(ctx context.Context, text string, f domain.ClubFilter) gateway.Result[[]domain.Club] {
	q := newQuery().set("q", text)
	return gateway.Do[[]domain.Club](ctx, c.c, get("/clubs/search", clubQuery(q, f).values()))
}

func (c *Clubs) ScanQR(ctx context.Context, qrData string) gateway.Result[domain.QRScanResult] {
	body := map[string]string{"qr_data": qrData}
	return gateway.Do[domain.QRScanResult](ctx, c.c, post("/clubs/scan-qr", body))
}

// BookCourt reserves a court. An empty startTime lets the server pick.
func (c *Clubs) BookCourt(ctx context.Context, clubID, courtID int64, date string, duration int, startTime string) gateway.Result[domain.CourtBooking] {
	body := struct {
		ClubID    int64  `json:"club_id"`
		CourtID   int64  `json:"court_id"`
		Date      string `json:"date"`
		Duration  int    `json:"duration"`
		StartTime string `json:"start_time,omitempty"`
	}{clubID, courtID, date, duration, startTime}
	return gateway.Do[domain.CourtBooking](ctx, c.c, post("/bookings", body))
}

func (c *Clubs) MyBookings(ctx context.Context, status string) gateway.Result[[]domain.CourtBooking] {
	return gateway.Do[[]domain.CourtBooking](ctx, c.c, get("/bookings/my", newQuery().str("status", status).values()))
}

func (c *Clubs) CancelBooking(ctx context.Context, bookingID int64) gateway.Result[domain.CourtBooking] {
	return gateway.Do[domain.CourtBooking](ctx, c.c, patch(fmt.Sprintf("/bookings/%d/cancel", bookingID), nil))
}

func (c *Clubs) Rate(ctx context.Context, clubID int64, rating int, review string) gateway.Result[domain.ClubRating] {
	body := struct {
		ClubID int64  `json:"club_id"`
		Rating int    `json:"rating"`
		Review string `json:"review,omitempty"`
	}{clubID, rating, review}
	return gateway.Do[domain.ClubRating](ctx, c.c, post("/clubs/rate", body))
}

func (c *Clubs) Ratings(ctx context.Context, clubID int64, page, limit int) gateway.Result[domain.RatingPage] {
	return gateway.Do[domain.RatingPage](ctx, c.c, get(fmt.Sprintf("/clubs/%d/ratings", clubID), paging(page, limit)))
}

func (c *Clubs) ToggleFavorite(ctx context.Context, clubID int64) gateway.Result[domain.FavoriteState] {
	return gateway.Do[domain.FavoriteState](ctx, c.c, post(fmt.Sprintf("/clubs/%d/favorite", clubID), nil))
}

func (c *Clubs) Favorites(ctx context.Context) gateway.Result[[]domain.Club] {
	return gateway.Do[[]domain.Club](ctx, c.c, get("/clubs/favorites", nil))
}

// Availability lists free slots per court for date (YYYY-MM-DD).
func (c *Clubs) Availability(ctx context.Context, clubID int64, date string) gateway.Result[[]domain.CourtAvailability] {
	q := newQuery().str("date", date).values()
	return gateway.Do[[]domain.CourtAvailability](ctx, c.c, get(fmt.Sprintf("/clubs/%d/availability", clubID), q))
}

// Nearby lists clubs within radius km. A non-positive radius means 10.
func (c *Clubs) Nearby(ctx context.Context, lat, lng, radius float64) gateway.Result[[]domain.Club] {
	if radius <= 0 {
		radius = 10
	}
	q := newQuery().coord("lat", &lat).coord("lng", &lng).coord("radius", &radius)
	return gateway.Do[[]domain.Club](ctx, c.c, get("/clubs/nearby", q.values()))
}

func (c *Clubs) ReportIssue(ctx context.Context, clubID int64, issueType, description string) gateway.Result[Raw] {
	body := struct {
		ClubID      int64  `json:"club_id"`
		IssueType   string `json:"issue_type"`
		Description string `json:"description"`
	}{clubID, issueType, description}
	return gateway.Do[Raw](ctx, c.c, post("/clubs/report", body))
}

func (c *Clubs) Events(ctx context.Context, clubID int64) gateway.Result[[]domain.ClubEvent] {
	return gateway.Do[[]domain.ClubEvent](ctx, c.c, get(fmt.Sprintf("/clubs/%d/events", clubID), nil))
}

func (c *Clubs) JoinEvent(ctx context.Context, eventID int64) gateway.Result[Raw] {
	return gateway.Do[Raw](ctx, c.c, post(fmt.Sprintf("/events/%d/join", eventID), nil))
}
