package api

import (
	"context"
	"fmt"
	"net/url"
)

// TrackingService calls the tracking-event endpoints.
type TrackingService service

// AddEventRequest appends a tracking event to a package's history.
type AddEventRequest struct {
	Status   string `json:"status" validate:"required"`
	Location string `json:"location,omitempty"`
	Remarks  string `json:"remarks,omitempty"`
}

// History returns the tracking events for a tracking number, oldest first.
func (s *TrackingService) History(ctx context.Context, trackingNumber string) ([]TrackingEvent, error) {
	var events []TrackingEvent
	if err := s.client.get(ctx, "/tracking/"+url.PathEscape(trackingNumber)+"/history", &events); err != nil {
		return nil, fmt.Errorf("tracking.History: %w", err)
	}
	return events, nil
}

// AddEvent records a new tracking event against a package ID.
func (s *TrackingService) AddEvent(ctx context.Context, packageID string, req AddEventRequest) (*TrackingEvent, error) {
	var event TrackingEvent
	if err := s.client.post(ctx, "/tracking/"+url.PathEscape(packageID)+"/event", req, &event); err != nil {
		return nil, fmt.Errorf("tracking.AddEvent: %w", err)
	}
	return &event, nil
}
