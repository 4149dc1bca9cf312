package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/adjei-dev/gatherly/internal/models"
)

// EventViewsService records detail-page views and reports view stats.
// Tracking is best effort; a failure never blocks serving the event.
type EventViewsService struct {
	viewsRepo models.EventViewsRepo
}

func NewEventViewsService(viewsRepo models.EventViewsRepo) *EventViewsService {
	return &EventViewsService{
		viewsRepo: viewsRepo,
	}
}

func (vs *EventViewsService) Track(ctx context.Context, eventId, sessionId string, userId *string) error {
	if strings.TrimSpace(eventId) == "" || strings.TrimSpace(sessionId) == "" {
		return fmt.Errorf("%w: event ID and session ID are required", models.ErrValidation)
	}

	return vs.viewsRepo.TrackEventView(ctx, &models.EventView{
		EventID:   eventId,
		SessionID: sessionId,
		UserID:    userId,
	})
}

func (vs *EventViewsService) Stats(ctx context.Context, eventId string) (*models.EventViewStats, error) {
	if strings.TrimSpace(eventId) == "" {
		return nil, fmt.Errorf("%w: event ID is required", models.ErrValidation)
	}

	return vs.viewsRepo.GetEventViewStats(ctx, eventId)
}
