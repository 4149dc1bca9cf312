package services

import (
	"context"
	"fmt"
	"time"

	"github.com/adjei-dev/gatherly/internal/models"
	"github.com/google/uuid"
)

// DefaultNearbyRadiusMiles is used when a nearby search doesn't name a
// radius.
const DefaultNearbyRadiusMiles = 50.0

type EventService struct {
	eventsRepo models.EventsRepo
}

func NewEventService(eventsRepo models.EventsRepo) *EventService {
	return &EventService{
		eventsRepo: eventsRepo,
	}
}

func (es *EventService) ListEvents(ctx context.Context) ([]*models.Event, error) {
	return es.eventsRepo.ListEvents(ctx)
}

// SearchEvents fetches the full event list and narrows it in memory. The
// filter is recomputed from scratch on every call; nothing is cached
// between requests.
func (es *EventService) SearchEvents(ctx context.Context, filter models.EventFilter) ([]*models.Event, error) {
	if filter.Near != nil && filter.Near.RadiusMiles <= 0 {
		filter.Near.RadiusMiles = DefaultNearbyRadiusMiles
	}

	events, err := es.eventsRepo.ListEvents(ctx)
	if err != nil {
		return nil, err
	}

	return filter.Apply(events), nil
}

// NearbyEvents returns events within radiusMiles of the reference point.
func (es *EventService) NearbyEvents(ctx context.Context, lat, lng, radiusMiles float64) ([]*models.Event, error) {
	return es.SearchEvents(ctx, models.EventFilter{
		Near: &models.NearbyFilter{
			Center:      models.Coordinates{Latitude: lat, Longitude: lng},
			RadiusMiles: radiusMiles,
		},
	})
}

func (es *EventService) GetEvent(ctx context.Context, id uuid.UUID) (*models.Event, error) {
	if id == uuid.Nil {
		return nil, fmt.Errorf("%w: invalid event ID", models.ErrValidation)
	}

	return es.eventsRepo.GetEventByID(ctx, id)
}

func (es *EventService) CreateEvent(ctx context.Context, event *models.Event, userId uuid.UUID, accessToken string) (*models.Event, error) {
	if userId == uuid.Nil {
		return nil, models.ErrUnauthenticated
	}

	if err := models.Validate.Struct(event); err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrValidation, err)
	}

	// Mirrors the client-side rule: events must be scheduled in the future.
	if !event.Date.After(time.Now()) {
		return nil, fmt.Errorf("%w: event date must be in the future", models.ErrValidation)
	}

	// A single coordinate without its pair is meaningless; require both or
	// neither.
	if (event.Latitude == nil) != (event.Longitude == nil) {
		return nil, fmt.Errorf("%w: latitude and longitude must be set together", models.ErrValidation)
	}

	if event.ID == uuid.Nil {
		event.ID = uuid.New()
	}
	now := time.Now()
	event.CreatedBy = userId
	event.CreatedAt = now
	event.UpdatedAt = now

	return es.eventsRepo.CreateEvent(ctx, event, accessToken)
}

func (es *EventService) UpdateEvent(ctx context.Context, id uuid.UUID, patch map[string]interface{}, accessToken string) (*models.Event, error) {
	if id == uuid.Nil {
		return nil, fmt.Errorf("%w: invalid event ID", models.ErrValidation)
	}
	if len(patch) == 0 {
		return nil, fmt.Errorf("%w: no fields to update", models.ErrValidation)
	}

	// Server-owned fields are never patchable.
	delete(patch, "id")
	delete(patch, "created_by")
	delete(patch, "created_at")
	patch["updated_at"] = time.Now()

	return es.eventsRepo.UpdateEvent(ctx, id, patch, accessToken)
}

func (es *EventService) DeleteEvent(ctx context.Context, id uuid.UUID, accessToken string) error {
	if id == uuid.Nil {
		return fmt.Errorf("%w: invalid event ID", models.ErrValidation)
	}

	return es.eventsRepo.DeleteEvent(ctx, id, accessToken)
}
