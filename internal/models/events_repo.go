package models

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/supabase-community/postgrest-go"
)

type EventsRepo interface {
	ListEvents(ctx context.Context) ([]*Event, error)
	GetEventByID(ctx context.Context, id uuid.UUID) (*Event, error)
	CreateEvent(ctx context.Context, event *Event, accessToken string) (*Event, error)
	UpdateEvent(ctx context.Context, id uuid.UUID, patch map[string]interface{}, accessToken string) (*Event, error)
	DeleteEvent(ctx context.Context, id uuid.UUID, accessToken string) error
	ListEventsByCreator(ctx context.Context, userId uuid.UUID, accessToken string) ([]*Event, error)
	ListJoinedEvents(ctx context.Context, userId uuid.UUID, accessToken string) ([]*Event, error)
}

// eventColumns is the projection used for event reads; kept explicit so a
// schema addition doesn't silently widen responses.
const eventColumns = "id,title,description,location,latitude,longitude,category,date,max_participants,created_by,created_at,updated_at"

func (su *SupabaseRepo) ListEvents(ctx context.Context) ([]*Event, error) {
	data, count, err := su.supabaseClient.
		From(EventsTable).
		Select(eventColumns, "exact", false).
		Order("date", &postgrest.OrderOpts{Ascending: true}).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("%w: failed to list events: %v", ErrStoreFailure, err)
	}

	if count == 0 {
		return []*Event{}, nil
	}

	var events []*Event
	if err := json.Unmarshal(data, &events); err != nil {
		return nil, fmt.Errorf("%w: failed to unmarshal events: %v", ErrStoreFailure, err)
	}

	return events, nil
}

func (su *SupabaseRepo) GetEventByID(ctx context.Context, id uuid.UUID) (*Event, error) {
	data, _, err := su.supabaseClient.
		From(EventsTable).
		Select("*", "", false).
		Eq("id", id.String()).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("%w: failed to get event by ID: %v", ErrStoreFailure, err)
	}

	// Supabase returns an array even for single results
	var events []*Event
	if err := json.Unmarshal(data, &events); err != nil {
		return nil, fmt.Errorf("%w: failed to unmarshal event row: %v", ErrStoreFailure, err)
	}

	if len(events) == 0 {
		return nil, fmt.Errorf("%w: event %s", ErrNotFound, id)
	}

	return events[0], nil
}

func (su *SupabaseRepo) CreateEvent(ctx context.Context, event *Event, accessToken string) (*Event, error) {
	client, err := su.GetAuthenticatedClient(accessToken)
	if err != nil {
		return nil, fmt.Errorf("failed to create authenticated client: %v", err)
	}

	eventData := map[string]interface{}{
		"id":               event.ID,
		"title":            event.Title,
		"description":      event.Description,
		"location":         event.Location,
		"category":         event.Category,
		"date":             event.Date,
		"max_participants": event.MaxParticipants,
		"created_by":       event.CreatedBy,
		"created_at":       event.CreatedAt,
		"updated_at":       event.UpdatedAt,
	}
	// Left out entirely when unset so the columns stay NULL.
	if event.Latitude != nil {
		eventData["latitude"] = *event.Latitude
	}
	if event.Longitude != nil {
		eventData["longitude"] = *event.Longitude
	}

	data, count, err := client.
		From(EventsTable).
		Insert(eventData, false, "", "", "exact").
		Execute()
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create event: %v", ErrStoreFailure, err)
	}

	var created []*Event
	if err := json.Unmarshal(data, &created); err != nil {
		return nil, fmt.Errorf("%w: failed to unmarshal created event: %v", ErrStoreFailure, err)
	}

	if count == 0 || len(created) == 0 {
		return nil, fmt.Errorf("%w: no event data returned after insert", ErrStoreFailure)
	}

	return created[0], nil
}

func (su *SupabaseRepo) UpdateEvent(ctx context.Context, id uuid.UUID, patch map[string]interface{}, accessToken string) (*Event, error) {
	if len(patch) == 0 {
		return nil, fmt.Errorf("%w: no fields to update", ErrValidation)
	}

	client, err := su.GetAuthenticatedClient(accessToken)
	if err != nil {
		return nil, fmt.Errorf("failed to create authenticated client: %v", err)
	}

	data, count, err := client.
		From(EventsTable).
		Update(patch, "", "exact").
		Eq("id", id.String()).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("%w: failed to update event: %v", ErrStoreFailure, err)
	}

	if count == 0 {
		return nil, fmt.Errorf("%w: event %s", ErrNotFound, id)
	}

	var updated []*Event
	if err := json.Unmarshal(data, &updated); err != nil {
		return nil, fmt.Errorf("%w: failed to unmarshal updated event: %v", ErrStoreFailure, err)
	}

	if len(updated) == 0 {
		return nil, fmt.Errorf("%w: no event data returned after update", ErrStoreFailure)
	}

	return updated[0], nil
}

func (su *SupabaseRepo) DeleteEvent(ctx context.Context, id uuid.UUID, accessToken string) error {
	client, err := su.GetAuthenticatedClient(accessToken)
	if err != nil {
		return fmt.Errorf("failed to create authenticated client: %v", err)
	}

	_, count, err := client.
		From(EventsTable).
		Delete("", "exact").
		Eq("id", id.String()).
		Execute()
	if err != nil {
		return fmt.Errorf("%w: failed to delete event: %v", ErrStoreFailure, err)
	}

	if count == 0 {
		return fmt.Errorf("%w: event %s", ErrNotFound, id)
	}

	return nil
}

func (su *SupabaseRepo) ListEventsByCreator(ctx context.Context, userId uuid.UUID, accessToken string) ([]*Event, error) {
	client, err := su.GetAuthenticatedClient(accessToken)
	if err != nil {
		return nil, fmt.Errorf("failed to create authenticated client: %v", err)
	}

	data, count, err := client.
		From(EventsTable).
		Select(eventColumns, "exact", false).
		Eq("created_by", userId.String()).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("%w: failed to list events by creator: %v", ErrStoreFailure, err)
	}

	if count == 0 {
		return []*Event{}, nil
	}

	var events []*Event
	if err := json.Unmarshal(data, &events); err != nil {
		return nil, fmt.Errorf("%w: failed to unmarshal events: %v", ErrStoreFailure, err)
	}

	return events, nil
}

func (su *SupabaseRepo) ListJoinedEvents(ctx context.Context, userId uuid.UUID, accessToken string) ([]*Event, error) {
	client, err := su.GetAuthenticatedClient(accessToken)
	if err != nil {
		return nil, fmt.Errorf("failed to create authenticated client: %v", err)
	}

	// PostgREST embedded select: one participation row per joined event,
	// each carrying the full event record.
	data, _, err := client.
		From(ParticipantsTable).
		Select(fmt.Sprintf("events:event_id(%s)", eventColumns), "", false).
		Eq("user_id", userId.String()).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("%w: failed to list joined events: %v", ErrStoreFailure, err)
	}

	var rows []struct {
		Events *Event `json:"events"`
	}
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("%w: failed to unmarshal joined events: %v", ErrStoreFailure, err)
	}

	events := make([]*Event, 0, len(rows))
	for _, row := range rows {
		if row.Events != nil {
			events = append(events, row.Events)
		}
	}

	return events, nil
}
