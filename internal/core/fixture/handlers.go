package fixture

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/duynhne/shakplay/internal/core/domain"
)

// Claims are carried by mock tokens.
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

func (p *Provider) issueToken(userID int64, email string, now time.Time) (string, error) {
	claims := Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "shakplay-fixture",
			Subject:   strconv.FormatInt(userID, 10),
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(p.signingKey)
}

// bearerUser resolves the caller from a token this provider issued at
// signup. Missing tokens, foreign tokens and the demo account all read as
// the demo profile.
func (p *Provider) bearerUser(r *http.Request) domain.User {
	token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
	if !ok || token == "" {
		return p.Profile()
	}
	claims, err := p.ParseToken(token)
	if err != nil {
		return p.Profile()
	}
	id, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return p.Profile()
	}
	if u, found := p.Account(id); found {
		return u
	}
	return p.Profile()
}

// ParseToken verifies a token issued by this provider.
func (p *Provider) ParseToken(token string) (*Claims, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return p.signingKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}
	return claims, nil
}

func authUser(u domain.User) domain.AuthUser {
	return domain.AuthUser{
		ID:         u.ID,
		Name:       u.Name,
		Email:      u.Email,
		Avatar:     u.Avatar,
		SkillLevel: u.SkillLevel,
		XP:         u.XP,
		CreatedAt:  u.CreatedAt,
		UpdatedAt:  u.UpdatedAt,
	}
}

func (p *Provider) login(w http.ResponseWriter, r *http.Request) {
	if err := p.pause(r.Context(), AuthDelay); err != nil {
		writeError(w, http.StatusRequestTimeout, err.Error())
		return
	}

	var creds domain.LoginCredentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if creds.Email != p.demoEmail || bcrypt.CompareHashAndPassword(p.demoHash, []byte(creds.Password)) != nil {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": MsgInvalidCredentials})
		return
	}

	profile := p.Profile()
	token, err := p.issueToken(profile.ID, profile.Email, time.Now())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, domain.AuthResponse{User: authUser(profile), AuthToken: token})
}

func (p *Provider) signup(w http.ResponseWriter, r *http.Request) {
	if err := p.pause(r.Context(), AuthDelay); err != nil {
		writeError(w, http.StatusRequestTimeout, err.Error())
		return
	}

	var data domain.RegisterData
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	now := time.Now()
	stamp := now.UTC().Format(time.RFC3339)

	user := p.Profile()
	user.ID = now.UnixMilli()
	user.Name = data.Name
	user.Email = data.Email
	user.Sport = data.Sport
	if user.Sport == "" {
		user.Sport = "Tennis"
	}
	user.SkillLevel = data.SkillLevel
	if user.SkillLevel == 0 {
		user.SkillLevel = 1
	}
	user.XP = 0
	user.Achievements = []string{}
	user.CreatedAt = stamp
	user.UpdatedAt = stamp

	p.mu.Lock()
	p.accounts[user.ID] = user
	p.mu.Unlock()

	token, err := p.issueToken(user.ID, user.Email, now)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, domain.AuthResponse{User: authUser(user), AuthToken: token})
}

func (p *Provider) me(w http.ResponseWriter, r *http.Request) {
	if err := p.pause(r.Context(), ProfileDelay); err != nil {
		writeError(w, http.StatusRequestTimeout, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, p.bearerUser(r))
}

func (p *Provider) updateProfile(w http.ResponseWriter, r *http.Request) {
	if err := p.pause(r.Context(), ProfileDelay); err != nil {
		writeError(w, http.StatusRequestTimeout, err.Error())
		return
	}

	var update domain.ProfileUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid user id")
		return
	}
	stamp := time.Now().UTC().Format(time.RFC3339)

	p.mu.Lock()
	var profile domain.User
	if account, ok := p.accounts[id]; ok {
		update.Apply(&account)
		account.UpdatedAt = stamp
		p.accounts[id] = account
		profile = account
	} else {
		update.Apply(&p.profile)
		p.profile.UpdatedAt = stamp
		profile = p.profile
	}
	p.mu.Unlock()

	writeJSON(w, http.StatusOK, profile)
}

func (p *Provider) logout(w http.ResponseWriter, r *http.Request) {
	if err := p.pause(r.Context(), ProfileDelay); err != nil {
		writeError(w, http.StatusRequestTimeout, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (p *Provider) myMatches(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit <= 0 {
		limit = 50
	}

	out := make([]domain.Match, 0, len(p.matches))
	for _, m := range p.matches {
		if status != "" && m.Status != status {
			continue
		}
		if len(out) == limit {
			break
		}
		out = append(out, m)
	}
	writeJSON(w, http.StatusOK, out)
}

func (p *Provider) listClubs(w http.ResponseWriter, r *http.Request) {
	city := r.URL.Query().Get("city")
	out := make([]domain.Club, 0, len(p.clubs))
	for _, c := range p.clubs {
		if city != "" && c.City != city {
			continue
		}
		out = append(out, c)
	}
	writeJSON(w, http.StatusOK, out)
}

func (p *Provider) findClub(w http.ResponseWriter, r *http.Request) (domain.Club, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid club id")
		return domain.Club{}, false
	}
	for _, c := range p.clubs {
		if c.ID == id {
			return c, true
		}
	}
	writeError(w, http.StatusNotFound, "Club not found")
	return domain.Club{}, false
}

func (p *Provider) getClub(w http.ResponseWriter, r *http.Request) {
	if club, ok := p.findClub(w, r); ok {
		writeJSON(w, http.StatusOK, club)
	}
}

func (p *Provider) clubCourts(w http.ResponseWriter, r *http.Request) {
	club, ok := p.findClub(w, r)
	if !ok {
		return
	}
	courts := club.Courts
	if courts == nil {
		courts = []domain.Court{}
	}
	writeJSON(w, http.StatusOK, courts)
}

func (p *Provider) userStats(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, p.stats)
}
