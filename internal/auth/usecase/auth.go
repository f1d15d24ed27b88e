package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"zenwell-client/internal/auth"
	"zenwell-client/internal/session"
	pkgJWT "zenwell-client/pkg/jwt"
)

func (uc *usecase) Login(ctx context.Context, ip auth.LoginInput) (auth.Identity, error) {
	if ip.Email == "" || ip.Password == "" {
		return auth.Identity{}, auth.ErrEmptyCredentials
	}

	body, err := uc.requester.Do(ctx, http.MethodPost, "/auth/login", ip, nil)
	if err != nil {
		return auth.Identity{}, fmt.Errorf("login failed: %w", err)
	}

	var out auth.LoginResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return auth.Identity{}, fmt.Errorf("failed to decode login response: %w", err)
	}
	if out.AccessToken == "" || out.RefreshToken == "" {
		return auth.Identity{}, auth.ErrMissingTokens
	}

	// The backend denormalizes userId/role next to the tokens; fall back to
	// the token claims when a field is missing.
	if out.UserID == "" || out.Role == "" {
		if claims, claimsErr := pkgJWT.Parse(out.AccessToken); claimsErr == nil {
			if out.UserID == "" {
				out.UserID = claims.UserID()
			}
			if out.Role == "" {
				out.Role = claims.Role
			}
		}
	}

	sess := session.Session{
		AccessToken:  out.AccessToken,
		RefreshToken: out.RefreshToken,
		UserID:       out.UserID,
		Role:         out.Role,
	}
	if err := uc.store.Set(sess); err != nil {
		return auth.Identity{}, fmt.Errorf("failed to persist session: %w", err)
	}

	uc.l.Infof(ctx, "logged in as user %s (%s)", out.UserID, out.Role)
	return auth.Identity{UserID: out.UserID, Role: out.Role}, nil
}

func (uc *usecase) Register(ctx context.Context, ip auth.RegisterInput) error {
	if ip.Email == "" || ip.Password == "" {
		return auth.ErrEmptyCredentials
	}
	if _, err := uc.requester.Do(ctx, http.MethodPost, "/auth/register", ip, nil); err != nil {
		return fmt.Errorf("registration failed: %w", err)
	}
	return nil
}

// Logout revokes the refresh credential server-side, then unconditionally
// drops local session state and routes back to login. A failed revocation
// never leaves credentials behind.
func (uc *usecase) Logout(ctx context.Context) error {
	sess, err := uc.store.Get()
	if err != nil {
		uc.l.Errorf(ctx, "failed to read session on logout: %v", err)
	}

	var netErr error
	if sess.RefreshToken != "" {
		payload := map[string]string{"refreshToken": sess.RefreshToken}
		if _, err := uc.requester.Do(ctx, http.MethodPost, "/auth/logout", payload, nil); err != nil {
			uc.l.Warnf(ctx, "logout call failed, clearing local session anyway: %v", err)
			netErr = err
		}
	}

	if err := uc.store.Clear(); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	if uc.onSessionEnded != nil {
		uc.onSessionEnded()
	}
	if netErr != nil {
		return fmt.Errorf("logout request failed: %w", netErr)
	}
	return nil
}

func (uc *usecase) CurrentUser() (auth.Identity, error) {
	sess, err := uc.store.Get()
	if err != nil {
		return auth.Identity{}, fmt.Errorf("failed to read session: %w", err)
	}
	if sess.IsZero() {
		return auth.Identity{}, auth.ErrNotAuthenticated
	}
	return auth.Identity{UserID: sess.UserID, Role: sess.Role}, nil
}

func (uc *usecase) IsAuthenticated() bool {
	sess, err := uc.store.Get()
	if err != nil || sess.AccessToken == "" {
		return false
	}
	return !pkgJWT.Expired(sess.AccessToken, time.Now())
}
