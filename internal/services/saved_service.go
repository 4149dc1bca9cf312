package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/adjei-dev/gatherly/internal/models"
	"github.com/google/uuid"
)

// SavedEventsService manages a user's bookmarked events, kept in MongoDB
// alongside the primary store.
type SavedEventsService struct {
	savedRepo  models.SavedEventsRepo
	eventsRepo models.EventsRepo
}

func NewSavedEventsService(savedRepo models.SavedEventsRepo, eventsRepo models.EventsRepo) *SavedEventsService {
	return &SavedEventsService{
		savedRepo:  savedRepo,
		eventsRepo: eventsRepo,
	}
}

func (ss *SavedEventsService) Save(ctx context.Context, userId uuid.UUID, eventId string) (*models.SavedEvents, error) {
	if userId == uuid.Nil {
		return nil, models.ErrUnauthenticated
	}
	if strings.TrimSpace(eventId) == "" {
		return nil, fmt.Errorf("%w: event ID cannot be empty", models.ErrValidation)
	}

	return ss.savedRepo.SaveEvent(ctx, userId, eventId)
}

func (ss *SavedEventsService) Unsave(ctx context.Context, userId uuid.UUID, eventId string) error {
	if userId == uuid.Nil {
		return models.ErrUnauthenticated
	}
	if strings.TrimSpace(eventId) == "" {
		return fmt.Errorf("%w: event ID cannot be empty", models.ErrValidation)
	}

	return ss.savedRepo.UnsaveEvent(ctx, userId, eventId)
}

// ListSaved resolves the user's bookmarks against the event store. Events
// deleted since they were saved are silently dropped from the result.
func (ss *SavedEventsService) ListSaved(ctx context.Context, userId uuid.UUID) ([]*models.Event, error) {
	if userId == uuid.Nil {
		return nil, models.ErrUnauthenticated
	}

	saved, err := ss.savedRepo.GetSavedEventsByUserID(ctx, userId)
	if err != nil {
		return nil, err
	}

	events := make([]*models.Event, 0, len(saved.Items))
	for _, item := range saved.Items {
		id, err := uuid.Parse(item.EventID)
		if err != nil {
			continue
		}
		event, err := ss.eventsRepo.GetEventByID(ctx, id)
		if err != nil {
			continue
		}
		events = append(events, event)
	}

	return events, nil
}
