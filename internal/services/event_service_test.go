package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/adjei-dev/gatherly/internal/models"
	"github.com/google/uuid"
)

func TestSearchEventsAppliesFilter(t *testing.T) {
	jazz := testEvent("Jazz Night Live", "San Francisco, CA", models.CategoryMusic)
	meetup := testEvent("Go Meetup", "Oakland, CA", models.CategoryTech)
	repo := &fakeEventsRepo{events: []*models.Event{jazz, meetup}}
	svc := NewEventService(repo)

	got, err := svc.SearchEvents(context.Background(), models.EventFilter{SearchQuery: "jazz"})
	if err != nil {
		t.Fatalf("SearchEvents: %v", err)
	}
	if len(got) != 1 || got[0].ID != jazz.ID {
		t.Fatalf("got %d events, want only %q", len(got), jazz.Title)
	}
}

func TestSearchEventsDefaultsRadius(t *testing.T) {
	near := testEvent("Jazz Night Live", "San Francisco, CA", models.CategoryMusic)
	near.Latitude = floatPtr(37.7749)
	near.Longitude = floatPtr(-122.4194)
	far := testEvent("Broadway Opening", "New York, NY", models.CategoryArt)
	far.Latitude = floatPtr(40.7128)
	far.Longitude = floatPtr(-74.0060)
	repo := &fakeEventsRepo{events: []*models.Event{near, far}}
	svc := NewEventService(repo)

	// Radius 0 falls back to the 50-mile default, which keeps SF and drops NY.
	got, err := svc.NearbyEvents(context.Background(), 37.7749, -122.4194, 0)
	if err != nil {
		t.Fatalf("NearbyEvents: %v", err)
	}
	if len(got) != 1 || got[0].ID != near.ID {
		t.Fatalf("got %d events, want only the San Francisco one", len(got))
	}
}

func TestSearchEventsPropagatesStoreFailure(t *testing.T) {
	repo := &fakeEventsRepo{listErr: models.ErrStoreFailure}
	svc := NewEventService(repo)

	_, err := svc.SearchEvents(context.Background(), models.EventFilter{})
	if !errors.Is(err, models.ErrStoreFailure) {
		t.Fatalf("got %v, want ErrStoreFailure", err)
	}
}

func TestCreateEventRequiresAuthentication(t *testing.T) {
	svc := NewEventService(&fakeEventsRepo{})

	_, err := svc.CreateEvent(context.Background(), testEvent("Go Meetup", "Oakland, CA", models.CategoryTech), uuid.Nil, "")
	if !errors.Is(err, models.ErrUnauthenticated) {
		t.Fatalf("got %v, want ErrUnauthenticated", err)
	}
}

func TestCreateEventValidation(t *testing.T) {
	userId := uuid.New()
	svc := NewEventService(&fakeEventsRepo{})

	cases := []struct {
		name   string
		mutate func(*models.Event)
	}{
		{"missing title", func(e *models.Event) { e.Title = "" }},
		{"unknown category", func(e *models.Event) { e.Category = "Karaoke" }},
		{"zero capacity", func(e *models.Event) { e.MaxParticipants = 0 }},
		{"past date", func(e *models.Event) { e.Date = time.Now().Add(-time.Hour) }},
		{"latitude without longitude", func(e *models.Event) { e.Latitude = floatPtr(37.7749) }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			event := testEvent("Go Meetup", "Oakland, CA", models.CategoryTech)
			tc.mutate(event)

			_, err := svc.CreateEvent(context.Background(), event, userId, "")
			if !errors.Is(err, models.ErrValidation) {
				t.Fatalf("got %v, want ErrValidation", err)
			}
		})
	}
}

func TestCreateEventStampsOwnership(t *testing.T) {
	userId := uuid.New()
	repo := &fakeEventsRepo{}
	svc := NewEventService(repo)

	event := testEvent("Go Meetup", "Oakland, CA", models.CategoryTech)
	event.ID = uuid.Nil

	created, err := svc.CreateEvent(context.Background(), event, userId, "token")
	if err != nil {
		t.Fatalf("CreateEvent: %v", err)
	}
	if created.ID == uuid.Nil {
		t.Error("created event has no ID")
	}
	if created.CreatedBy != userId {
		t.Errorf("created_by = %s, want %s", created.CreatedBy, userId)
	}
	if created.CreatedAt.IsZero() || created.UpdatedAt.IsZero() {
		t.Error("timestamps not set on create")
	}
}

func TestUpdateEventStripsServerOwnedFields(t *testing.T) {
	userId := uuid.New()
	event := testEvent("Go Meetup", "Oakland, CA", models.CategoryTech)
	repo := &fakeEventsRepo{events: []*models.Event{event}}
	svc := NewEventService(repo)

	patch := map[string]interface{}{
		"title":      "Go Meetup (rescheduled)",
		"id":         uuid.New(),
		"created_by": userId,
		"created_at": time.Now(),
	}
	if _, err := svc.UpdateEvent(context.Background(), event.ID, patch, "token"); err != nil {
		t.Fatalf("UpdateEvent: %v", err)
	}

	for _, field := range []string{"id", "created_by", "created_at"} {
		if _, ok := patch[field]; ok {
			t.Errorf("patch still carries server-owned field %q", field)
		}
	}
	if _, ok := patch["updated_at"]; !ok {
		t.Error("patch missing updated_at")
	}
}

func TestGetEventRejectsNilID(t *testing.T) {
	svc := NewEventService(&fakeEventsRepo{})

	if _, err := svc.GetEvent(context.Background(), uuid.Nil); !errors.Is(err, models.ErrValidation) {
		t.Fatalf("got %v, want ErrValidation", err)
	}
}
