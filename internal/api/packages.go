package api

import (
	"context"
	"fmt"
	"net/url"
)

// PackageService calls the shipment endpoints.
type PackageService service

// CreatePackageRequest is the payload for booking a new shipment.
type CreatePackageRequest struct {
	Sender      Party   `json:"sender" validate:"required"`
	Receiver    Party   `json:"receiver" validate:"required"`
	PackageType string  `json:"packageType" validate:"required,oneof=NORMAL_POST SPEED_POST EXPRESS OVERNIGHT"`
	Weight      float64 `json:"weight" validate:"required,gt=0"`
	Description string  `json:"description,omitempty"`
}

// UpdatePackageRequest is the payload for editing a shipment before pickup.
type UpdatePackageRequest struct {
	Receiver    *Party  `json:"receiver,omitempty"`
	PackageType string  `json:"packageType,omitempty"`
	Weight      float64 `json:"weight,omitempty"`
	Description string  `json:"description,omitempty"`
}

// UpdateStatusRequest advances a shipment to a new status. OTP is required by
// the backend when marking a package delivered.
type UpdateStatusRequest struct {
	Status   string `json:"status" validate:"required"`
	Location string `json:"location,omitempty"`
	Remarks  string `json:"remarks,omitempty"`
	OTP      string `json:"otp,omitempty"`
}

// PriceRequest asks for a shipping quote.
type PriceRequest struct {
	Weight      float64 `json:"weight" validate:"required,gt=0"`
	PackageType string  `json:"packageType" validate:"required,oneof=NORMAL_POST SPEED_POST EXPRESS OVERNIGHT"`
}

// Create books a new shipment.
func (s *PackageService) Create(ctx context.Context, req CreatePackageRequest) (*Package, error) {
	var pkg Package
	if err := s.client.post(ctx, "/packages", req, &pkg); err != nil {
		return nil, fmt.Errorf("packages.Create: %w", err)
	}
	return &pkg, nil
}

// Get fetches a shipment by ID.
func (s *PackageService) Get(ctx context.Context, id string) (*Package, error) {
	var pkg Package
	if err := s.client.get(ctx, "/packages/"+url.PathEscape(id), &pkg); err != nil {
		return nil, fmt.Errorf("packages.Get: %w", err)
	}
	return &pkg, nil
}

// Track fetches a shipment by tracking number. The backend serves this
// without authentication for public tracking.
func (s *PackageService) Track(ctx context.Context, trackingNumber string) (*Package, error) {
	var pkg Package
	if err := s.client.get(ctx, "/packages/track/"+url.PathEscape(trackingNumber), &pkg); err != nil {
		return nil, fmt.Errorf("packages.Track: %w", err)
	}
	return &pkg, nil
}

// Mine lists the current user's shipments.
func (s *PackageService) Mine(ctx context.Context) ([]Package, error) {
	var pkgs []Package
	if err := s.client.get(ctx, "/packages/my-packages", &pkgs); err != nil {
		return nil, fmt.Errorf("packages.Mine: %w", err)
	}
	return pkgs, nil
}

// List returns a page of all shipments (admin and courier accounts).
func (s *PackageService) List(ctx context.Context, q PageQuery) (*Page[Package], error) {
	var page Page[Package]
	if err := s.client.get(ctx, "/packages?"+q.encode(), &page); err != nil {
		return nil, fmt.Errorf("packages.List: %w", err)
	}
	return &page, nil
}

// Update edits a shipment that has not been picked up yet.
func (s *PackageService) Update(ctx context.Context, id string, req UpdatePackageRequest) (*Package, error) {
	var pkg Package
	if err := s.client.put(ctx, "/packages/"+url.PathEscape(id), req, &pkg); err != nil {
		return nil, fmt.Errorf("packages.Update: %w", err)
	}
	return &pkg, nil
}

// UpdateStatus advances a shipment's status.
func (s *PackageService) UpdateStatus(ctx context.Context, id string, req UpdateStatusRequest) (*Package, error) {
	var pkg Package
	if err := s.client.patch(ctx, "/packages/"+url.PathEscape(id)+"/status", req, &pkg); err != nil {
		return nil, fmt.Errorf("packages.UpdateStatus: %w", err)
	}
	return &pkg, nil
}

// Cancel cancels a shipment that has not been delivered.
func (s *PackageService) Cancel(ctx context.Context, id string) (*Package, error) {
	var pkg Package
	if err := s.client.patch(ctx, "/packages/"+url.PathEscape(id)+"/cancel", nil, &pkg); err != nil {
		return nil, fmt.Errorf("packages.Cancel: %w", err)
	}
	return &pkg, nil
}

// CalculatePrice returns a quote without creating a shipment.
func (s *PackageService) CalculatePrice(ctx context.Context, req PriceRequest) (*PriceCalculation, error) {
	var quote PriceCalculation
	if err := s.client.post(ctx, "/packages/calculate-price", req, &quote); err != nil {
		return nil, fmt.Errorf("packages.CalculatePrice: %w", err)
	}
	return &quote, nil
}
