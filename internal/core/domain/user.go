package domain

// Roles a User can hold.
const (
	RolePlayer        = "player"
	RoleClubAdmin     = "club-admin"
	RolePlatformAdmin = "platform-admin"
)

// Preferences are the user-facing settings stored with a profile.
type Preferences struct {
	Notifications bool   `json:"notifications"`
	Privacy       string `json:"privacy"`
	Language      string `json:"language"`
}

// Subscription describes the user's plan.
type Subscription struct {
	Type      string `json:"type"`
	ExpiresAt string `json:"expires_at,omitempty"`
}

// ProfileStats are the headline counters shown on a profile.
type ProfileStats struct {
	MatchesPlayed int    `json:"matches_played"`
	MatchesWon    int    `json:"matches_won"`
	TotalPlaytime int    `json:"total_playtime"`
	FavoriteClub  string `json:"favorite_club,omitempty"`
}

// User is the full profile returned by /auth/me.
type User struct {
	ID            int64        `json:"id"`
	Name          string       `json:"name"`
	Email         string       `json:"email"`
	Avatar        string       `json:"avatar,omitempty"`
	Role          string       `json:"role"`
	Sport         string       `json:"sport"`
	SkillLevel    int          `json:"skill_level"`
	XP            int          `json:"xp"`
	NextLevelXP   int          `json:"next_level_xp"`
	Phone         string       `json:"phone,omitempty"`
	DateOfBirth   string       `json:"date_of_birth,omitempty"`
	Location      string       `json:"location,omitempty"`
	Bio           string       `json:"bio,omitempty"`
	Achievements  []string     `json:"achievements"`
	Preferences   Preferences  `json:"preferences"`
	Subscription  Subscription `json:"subscription"`
	Stats         ProfileStats `json:"stats"`
	CreatedAt     string       `json:"created_at"`
	UpdatedAt     string       `json:"updated_at"`
	EmailVerified bool         `json:"email_verified"`
	LastLogin     string       `json:"last_login,omitempty"`
}

// ProfileUpdate is a partial User. Nil fields are left untouched.
type ProfileUpdate struct {
	Name        *string      `json:"name,omitempty"`
	Avatar      *string      `json:"avatar,omitempty"`
	Sport       *string      `json:"sport,omitempty"`
	SkillLevel  *int         `json:"skill_level,omitempty"`
	Phone       *string      `json:"phone,omitempty"`
	DateOfBirth *string      `json:"date_of_birth,omitempty"`
	Location    *string      `json:"location,omitempty"`
	Bio         *string      `json:"bio,omitempty"`
	Preferences *Preferences `json:"preferences,omitempty"`
}

// Apply copies the set fields of u onto user.
func (u ProfileUpdate) Apply(user *User) {
	if u.Name != nil {
		user.Name = *u.Name
	}
	if u.Avatar != nil {
		user.Avatar = *u.Avatar
	}
	if u.Sport != nil {
		user.Sport = *u.Sport
	}
	if u.SkillLevel != nil {
		user.SkillLevel = *u.SkillLevel
	}
	if u.Phone != nil {
		user.Phone = *u.Phone
	}
	if u.DateOfBirth != nil {
		user.DateOfBirth = *u.DateOfBirth
	}
	if u.Location != nil {
		user.Location = *u.Location
	}
	if u.Bio != nil {
		user.Bio = *u.Bio
	}
	if u.Preferences != nil {
		user.Preferences = *u.Preferences
	}
}

// LoginCredentials is the body of POST /auth/login.
type LoginCredentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterData is the body of POST /auth/signup.
type RegisterData struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	Sport       string `json:"sport,omitempty"`
	SkillLevel  int    `json:"skill_level,omitempty"`
	Phone       string `json:"phone,omitempty"`
	DateOfBirth string `json:"date_of_birth,omitempty"`
}

// AuthUser is the reduced user embedded in login and signup responses.
type AuthUser struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Avatar     string `json:"avatar,omitempty"`
	SkillLevel int    `json:"skill_level"`
	XP         int    `json:"xp"`
	CreatedAt  string `json:"created_at"`
	UpdatedAt  string `json:"updated_at"`
}

// AuthResponse is returned by login and signup.
type AuthResponse struct {
	User      AuthUser `json:"user"`
	AuthToken string   `json:"authToken"`
}
