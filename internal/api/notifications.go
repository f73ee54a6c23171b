package api

import (
	"context"
	"fmt"
)

// NotificationService calls the notification endpoints.
type NotificationService service

// List returns the current user's notifications, newest first.
func (s *NotificationService) List(ctx context.Context) ([]Notification, error) {
	var notifications []Notification
	if err := s.client.get(ctx, "/notifications", &notifications); err != nil {
		return nil, fmt.Errorf("notifications.List: %w", err)
	}
	return notifications, nil
}
