package api

import (
	"context"
	"fmt"
)

// AuthService calls the authentication endpoints.
type AuthService service

// LoginRequest is the login payload.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RegisterRequest is the account creation payload.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Phone    string `json:"phone" validate:"required"`
}

// AuthResponse is returned by login and register. Older backend versions
// returned the token under accessToken; BearerToken handles both.
type AuthResponse struct {
	Token       string `json:"token"`
	AccessToken string `json:"accessToken"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Role        string `json:"role"`
}

// BearerToken returns the credential from whichever field the backend used.
func (r *AuthResponse) BearerToken() string {
	if r.Token != "" {
		return r.Token
	}
	return r.AccessToken
}

// Login authenticates with the given credentials.
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	var resp AuthResponse
	if err := s.client.post(ctx, "/auth/login", req, &resp); err != nil {
		return nil, fmt.Errorf("auth.Login: %w", err)
	}
	return &resp, nil
}

// Register creates a new customer account.
func (s *AuthService) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	var resp AuthResponse
	if err := s.client.post(ctx, "/auth/register", req, &resp); err != nil {
		return nil, fmt.Errorf("auth.Register: %w", err)
	}
	return &resp, nil
}

// CurrentUser returns the profile attached to the current credential.
func (s *AuthService) CurrentUser(ctx context.Context) (*User, error) {
	var user User
	if err := s.client.get(ctx, "/auth/me", &user); err != nil {
		return nil, fmt.Errorf("auth.CurrentUser: %w", err)
	}
	return &user, nil
}
