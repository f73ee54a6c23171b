package api

import (
	"context"
	"fmt"
	"net/url"
)

// HubService calls the hub endpoints.
type HubService service

// List returns all hubs.
func (s *HubService) List(ctx context.Context) ([]Hub, error) {
	var hubs []Hub
	if err := s.client.get(ctx, "/hubs", &hubs); err != nil {
		return nil, fmt.Errorf("hubs.List: %w", err)
	}
	return hubs, nil
}

// Get fetches a hub by ID.
func (s *HubService) Get(ctx context.Context, id string) (*Hub, error) {
	var hub Hub
	if err := s.client.get(ctx, "/hubs/"+url.PathEscape(id), &hub); err != nil {
		return nil, fmt.Errorf("hubs.Get: %w", err)
	}
	return &hub, nil
}

// Create registers a new hub.
func (s *HubService) Create(ctx context.Context, hub Hub) (*Hub, error) {
	var created Hub
	if err := s.client.post(ctx, "/hubs", hub, &created); err != nil {
		return nil, fmt.Errorf("hubs.Create: %w", err)
	}
	return &created, nil
}

// Update replaces a hub's details.
func (s *HubService) Update(ctx context.Context, id string, hub Hub) (*Hub, error) {
	var updated Hub
	if err := s.client.put(ctx, "/hubs/"+url.PathEscape(id), hub, &updated); err != nil {
		return nil, fmt.Errorf("hubs.Update: %w", err)
	}
	return &updated, nil
}

// Delete removes a hub.
func (s *HubService) Delete(ctx context.Context, id string) error {
	if err := s.client.delete(ctx, "/hubs/"+url.PathEscape(id), nil); err != nil {
		return fmt.Errorf("hubs.Delete: %w", err)
	}
	return nil
}
