package endpoint

import (
	"context"
	"fmt"

	"github.com/duynhne/shakplay/internal/core/domain"
	"github.com/duynhne/shakplay/internal/core/gateway"
)

// Auth paths.
const (
	PathLogin   = "/auth/login"
	PathSignup  = "/auth/signup"
	PathMe      = "/auth/me"
	PathLogout  = "/auth/logout"
	PathUserFmt = "/users/%d"
)

// Auth covers login, signup and the current profile.
type Auth struct{ c gateway.Caller }

func (a *Auth) Login(ctx context.Context, creds domain.LoginCredentials) gateway.Result[domain.AuthResponse] {
	return gateway.Do[domain.AuthResponse](ctx, a.c, post(PathLogin, creds))
}

func (a *Auth) Register(ctx context.Context, data domain.RegisterData) gateway.Result[domain.AuthResponse] {
	return gateway.Do[domain.AuthResponse](ctx, a.c, post(PathSignup, data))
}

// Profile fetches the user the held token belongs to.
func (a *Auth) Profile(ctx context.Context) gateway.Result[domain.User] {
	return gateway.Do[domain.User](ctx, a.c, get(PathMe, nil))
}

func (a *Auth) UpdateProfile(ctx context.Context, userID int64, update domain.ProfileUpdate) gateway.Result[domain.User] {
	return gateway.Do[domain.User](ctx, a.c, patch(fmt.Sprintf(PathUserFmt, userID), update))
}

func (a *Auth) Logout(ctx context.Context) gateway.Result[Raw] {
	return gateway.Do[Raw](ctx, a.c, post(PathLogout, nil))
}
