package api

import (
	"context"
	"fmt"
)

// UserService calls the profile endpoints for the current user.
type UserService service

// UpdateProfileRequest edits the current user's own profile.
type UpdateProfileRequest struct {
	Name  string `json:"name,omitempty"`
	Phone string `json:"phone,omitempty"`
}

// Profile returns the current user's profile.
func (s *UserService) Profile(ctx context.Context) (*User, error) {
	var user User
	if err := s.client.get(ctx, "/users/me", &user); err != nil {
		return nil, fmt.Errorf("users.Profile: %w", err)
	}
	return &user, nil
}

// UpdateProfile edits the current user's profile.
func (s *UserService) UpdateProfile(ctx context.Context, req UpdateProfileRequest) (*User, error) {
	var user User
	if err := s.client.put(ctx, "/users/me", req, &user); err != nil {
		return nil, fmt.Errorf("users.UpdateProfile: %w", err)
	}
	return &user, nil
}
