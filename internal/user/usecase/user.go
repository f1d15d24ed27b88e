package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"zenwell-client/internal/model"
	"zenwell-client/internal/user"
)

func (uc *usecase) Profile(ctx context.Context) (model.User, error) {
	body, err := uc.requester.Do(ctx, http.MethodGet, "/users/profile", nil, nil)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to fetch profile: %w", err)
	}
	return decodeUser(body)
}

func (uc *usecase) UpdateProfile(ctx context.Context, ip user.UpdateProfileInput) (model.User, error) {
	body, err := uc.requester.Do(ctx, http.MethodPut, "/users/profile", ip, nil)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to update profile: %w", err)
	}
	return decodeUser(body)
}

func (uc *usecase) ChangePassword(ctx context.Context, ip user.ChangePasswordInput) error {
	if ip.CurrentPassword == "" || ip.NewPassword == "" {
		return user.ErrEmptyPassword
	}
	if _, err := uc.requester.Do(ctx, http.MethodPut, "/users/password", ip, nil); err != nil {
		return fmt.Errorf("failed to change password: %w", err)
	}
	return nil
}

func decodeUser(body []byte) (model.User, error) {
	var out model.User
	if err := json.Unmarshal(body, &out); err != nil {
		return model.User{}, fmt.Errorf("failed to decode user: %w", err)
	}
	return out, nil
}
