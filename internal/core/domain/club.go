package domain

// OpeningHours is one day's opening window.
type OpeningHours struct {
	Open  string `json:"open"`
	Close string `json:"close"`
}

// Pricing lists a club's court rates.
type Pricing struct {
	PeakHourRate float64 `json:"peak_hour_rate"`
	OffPeakRate  float64 `json:"off_peak_rate"`
	MemberRate   float64 `json:"member_rate,omitempty"`
}

// Court is a bookable playing surface.
type Court struct {
	ID         int64   `json:"id"`
	ClubID     int64   `json:"club_id"`
	Name       string  `json:"name"`
	Type       string  `json:"type"`
	Surface    string  `json:"surface"`
	IsActive   bool    `json:"is_active"`
	HasLights  bool    `json:"has_lights"`
	MaxPlayers int     `json:"max_players"`
	HourlyRate float64 `json:"hourly_rate"`
	QRCode     string  `json:"qr_code,omitempty"`
	BookingURL string  `json:"booking_url,omitempty"`
	CreatedAt  string  `json:"created_at"`
	UpdatedAt  string  `json:"updated_at"`
}

// Club is a venue with courts.
type Club struct {
	ID             int64                   `json:"id"`
	Name           string                  `json:"name"`
	Logo           string                  `json:"logo,omitempty"`
	Address        string                  `json:"address"`
	City           string                  `json:"city"`
	State          string                  `json:"state"`
	ZipCode        string                  `json:"zip_code"`
	Phone          string                  `json:"phone,omitempty"`
	Email          string                  `json:"email,omitempty"`
	Website        string                  `json:"website,omitempty"`
	Description    string                  `json:"description,omitempty"`
	Rating         float64                 `json:"rating"`
	TotalReviews   int                     `json:"total_reviews"`
	IsFavorite     bool                    `json:"is_favorite,omitempty"`
	Amenities      []string                `json:"amenities"`
	Courts         []Court                 `json:"courts"`
	OperatingHours map[string]OpeningHours `json:"operating_hours"`
	Pricing        Pricing                 `json:"pricing"`
	Images         []string                `json:"images"`
	CreatedAt      string                  `json:"created_at"`
	UpdatedAt      string                  `json:"updated_at"`
}

// ClubFilter narrows /clubs and /clubs/search.
type ClubFilter struct {
	City        string
	Sport       string
	RatingMin   float64
	HasCourts   *bool
	MaxDistance float64
	Lat         *float64
	Lng         *float64
}

// QRScanResult identifies the court a QR code points at.
type QRScanResult struct {
	ClubID    int64  `json:"club_id"`
	CourtID   int64  `json:"court_id"`
	ClubName  string `json:"club_name"`
	CourtName string `json:"court_name"`
	Valid     bool   `json:"valid"`
}

// CourtBooking reserves a court for a time window.
type CourtBooking struct {
	ID            int64   `json:"id"`
	ClubID        int64   `json:"club_id"`
	CourtID       int64   `json:"court_id"`
	UserID        int64   `json:"user_id"`
	Date          string  `json:"date"`
	StartTime     string  `json:"start_time"`
	EndTime       string  `json:"end_time"`
	Duration      int     `json:"duration"`
	TotalCost     float64 `json:"total_cost"`
	Status        string  `json:"status"`
	PaymentStatus string  `json:"payment_status"`
	CreatedAt     string  `json:"created_at"`
}

// ClubRating is a user's review of a club.
type ClubRating struct {
	ID        int64  `json:"id"`
	ClubID    int64  `json:"club_id"`
	UserID    int64  `json:"user_id"`
	Rating    int    `json:"rating"`
	Review    string `json:"review,omitempty"`
	CreatedAt string `json:"created_at"`
}

// RatingPage is one page of club ratings.
type RatingPage struct {
	Ratings []ClubRating `json:"ratings"`
	Total   int          `json:"total"`
	Page    int          `json:"page"`
	Limit   int          `json:"limit"`
}

// FavoriteState is returned when toggling a favorite club.
type FavoriteState struct {
	IsFavorite bool `json:"is_favorite"`
}

// Slot is a bookable time window.
type Slot struct {
	StartTime string  `json:"start_time"`
	EndTime   string  `json:"end_time"`
	Price     float64 `json:"price"`
}

// CourtAvailability lists free slots of one court on a date.
type CourtAvailability struct {
	CourtID        int64  `json:"court_id"`
	CourtName      string `json:"court_name"`
	AvailableSlots []Slot `json:"available_slots"`
}

// ClubEvent is an event organised by a club.
type ClubEvent struct {
	ID                  int64   `json:"id"`
	Title               string  `json:"title"`
	Description         string  `json:"description"`
	Date                string  `json:"date"`
	StartTime           string  `json:"start_time"`
	EndTime             string  `json:"end_time"`
	MaxParticipants     int     `json:"max_participants"`
	CurrentParticipants int     `json:"current_participants"`
	Price               float64 `json:"price"`
	Status              string  `json:"status"`
}
