package grocy

import (
	"context"
	"fmt"
)

// UserService manages users and per-user settings.
type UserService struct {
	client *Client
}

// List returns all users.
func (s *UserService) List(ctx context.Context) ([]*User, error) {
	var raw []UserDto
	if err := s.client.get(ctx, "users", nil, &raw); err != nil {
		return nil, err
	}
	users := make([]*User, 0, len(raw))
	for _, dto := range raw {
		users = append(users, userFromDto(dto))
	}
	return users, nil
}

// Current returns the user the API key belongs to.
func (s *UserService) Current(ctx context.Context) (*User, error) {
	var raw []UserDto
	if err := s.client.get(ctx, "user", nil, &raw); err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, nil
	}
	return userFromDto(raw[0]), nil
}

// Create adds a user. The data map holds the user fields (username,
// first_name, last_name, password).
func (s *UserService) Create(ctx context.Context, data map[string]any) error {
	return s.client.post(ctx, "users", data, nil)
}

// Edit updates fields of a user.
func (s *UserService) Edit(ctx context.Context, userID int, data map[string]any) error {
	return s.client.put(ctx, fmt.Sprintf("users/%d", userID), data, nil)
}

// Delete removes a user.
func (s *UserService) Delete(ctx context.Context, userID int) error {
	return s.client.delete(ctx, fmt.Sprintf("users/%d", userID))
}

// Settings returns every setting of the current user.
func (s *UserService) Settings(ctx context.Context) (map[string]any, error) {
	var resp map[string]any
	if err := s.client.get(ctx, "user/settings", nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// Setting returns one setting of the current user.
func (s *UserService) Setting(ctx context.Context, key string) (any, error) {
	var resp struct {
		Value any `json:"value"`
	}
	if err := s.client.get(ctx, "user/settings/"+key, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Value, nil
}

// SetSetting stores one setting for the current user.
func (s *UserService) SetSetting(ctx context.Context, key string, value any) error {
	return s.client.put(ctx, "user/settings/"+key, map[string]any{"value": value}, nil)
}

// DeleteSetting removes one setting of the current user.
func (s *UserService) DeleteSetting(ctx context.Context, key string) error {
	return s.client.delete(ctx, "user/settings/"+key)
}
