package api

import (
	"context"
	"fmt"
	"net/url"
)

// AdminService calls the admin-only endpoints.
type AdminService service

// UpdateUserRequest edits an account's profile fields. Nil pointers leave the
// corresponding field unchanged.
type UpdateUserRequest struct {
	Name   string `json:"name,omitempty"`
	Email  string `json:"email,omitempty" validate:"omitempty,email"`
	Phone  string `json:"phone,omitempty"`
	Role   string `json:"role,omitempty" validate:"omitempty,oneof=CUSTOMER COURIER ADMIN"`
	Active *bool  `json:"active,omitempty"`
}

// Stats returns the dashboard summary.
func (s *AdminService) Stats(ctx context.Context) (*DashboardStats, error) {
	var stats DashboardStats
	if err := s.client.get(ctx, "/admin/stats", &stats); err != nil {
		return nil, fmt.Errorf("admin.Stats: %w", err)
	}
	return &stats, nil
}

// Users returns a page of accounts.
func (s *AdminService) Users(ctx context.Context, q PageQuery) (*Page[User], error) {
	var page Page[User]
	if err := s.client.get(ctx, "/admin/users?"+q.encode(), &page); err != nil {
		return nil, fmt.Errorf("admin.Users: %w", err)
	}
	return &page, nil
}

// User fetches a single account by ID.
func (s *AdminService) User(ctx context.Context, id string) (*User, error) {
	var user User
	if err := s.client.get(ctx, "/admin/users/"+url.PathEscape(id), &user); err != nil {
		return nil, fmt.Errorf("admin.User: %w", err)
	}
	return &user, nil
}

// UpdateUser edits an account.
func (s *AdminService) UpdateUser(ctx context.Context, id string, req UpdateUserRequest) (*User, error) {
	var user User
	if err := s.client.put(ctx, "/admin/users/"+url.PathEscape(id), req, &user); err != nil {
		return nil, fmt.Errorf("admin.UpdateUser: %w", err)
	}
	return &user, nil
}

// DeleteUser removes an account.
func (s *AdminService) DeleteUser(ctx context.Context, id string) error {
	if err := s.client.delete(ctx, "/admin/users/"+url.PathEscape(id), nil); err != nil {
		return fmt.Errorf("admin.DeleteUser: %w", err)
	}
	return nil
}

// UpdateRole changes an account's role.
func (s *AdminService) UpdateRole(ctx context.Context, id, role string) (*User, error) {
	var user User
	body := map[string]string{"role": role}
	if err := s.client.patch(ctx, "/admin/users/"+url.PathEscape(id)+"/role", body, &user); err != nil {
		return nil, fmt.Errorf("admin.UpdateRole: %w", err)
	}
	return &user, nil
}

// UpdateActive enables or disables an account.
func (s *AdminService) UpdateActive(ctx context.Context, id string, active bool) (*User, error) {
	var user User
	body := map[string]bool{"active": active}
	if err := s.client.patch(ctx, "/admin/users/"+url.PathEscape(id)+"/status", body, &user); err != nil {
		return nil, fmt.Errorf("admin.UpdateActive: %w", err)
	}
	return &user, nil
}

// AssignCourier assigns a courier account to a package.
func (s *AdminService) AssignCourier(ctx context.Context, packageID, courierID string) (*Package, error) {
	var pkg Package
	body := map[string]string{"courierId": courierID}
	if err := s.client.patch(ctx, "/admin/packages/"+url.PathEscape(packageID)+"/assign", body, &pkg); err != nil {
		return nil, fmt.Errorf("admin.AssignCourier: %w", err)
	}
	return &pkg, nil
}
