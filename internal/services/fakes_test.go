package services

import (
	"context"
	"fmt"
	"time"

	"github.com/adjei-dev/gatherly/internal/models"
	"github.com/google/uuid"
)

// fakeEventsRepo keeps events in memory, in insertion order.
type fakeEventsRepo struct {
	events  []*models.Event
	listErr error
}

func (f *fakeEventsRepo) ListEvents(ctx context.Context) ([]*models.Event, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.events, nil
}

func (f *fakeEventsRepo) GetEventByID(ctx context.Context, id uuid.UUID) (*models.Event, error) {
	for _, e := range f.events {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, fmt.Errorf("%w: event %s", models.ErrNotFound, id)
}

func (f *fakeEventsRepo) CreateEvent(ctx context.Context, event *models.Event, accessToken string) (*models.Event, error) {
	f.events = append(f.events, event)
	return event, nil
}

func (f *fakeEventsRepo) UpdateEvent(ctx context.Context, id uuid.UUID, patch map[string]interface{}, accessToken string) (*models.Event, error) {
	event, err := f.GetEventByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if title, ok := patch["title"].(string); ok {
		event.Title = title
	}
	return event, nil
}

func (f *fakeEventsRepo) DeleteEvent(ctx context.Context, id uuid.UUID, accessToken string) error {
	for i, e := range f.events {
		if e.ID == id {
			f.events = append(f.events[:i], f.events[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: event %s", models.ErrNotFound, id)
}

func (f *fakeEventsRepo) ListEventsByCreator(ctx context.Context, userId uuid.UUID, accessToken string) ([]*models.Event, error) {
	var out []*models.Event
	for _, e := range f.events {
		if e.CreatedBy == userId {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeEventsRepo) ListJoinedEvents(ctx context.Context, userId uuid.UUID, accessToken string) ([]*models.Event, error) {
	return []*models.Event{}, nil
}

// fakeParticipantsRepo records joins without any capacity guard, matching
// the real store's behavior.
type fakeParticipantsRepo struct {
	rows     []*models.Participation
	countErr error
}

func (f *fakeParticipantsRepo) ListParticipants(ctx context.Context, eventId uuid.UUID) ([]*models.Participation, error) {
	out := []*models.Participation{}
	for _, r := range f.rows {
		if r.EventID == eventId {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeParticipantsRepo) CountParticipants(ctx context.Context, eventId uuid.UUID) (int, error) {
	if f.countErr != nil {
		return 0, f.countErr
	}
	count := 0
	for _, r := range f.rows {
		if r.EventID == eventId {
			count++
		}
	}
	return count, nil
}

func (f *fakeParticipantsRepo) JoinEvent(ctx context.Context, eventId, userId uuid.UUID, accessToken string) error {
	f.rows = append(f.rows, &models.Participation{
		ID:       uuid.New(),
		EventID:  eventId,
		UserID:   userId,
		JoinedAt: time.Now(),
	})
	return nil
}

func (f *fakeParticipantsRepo) LeaveEvent(ctx context.Context, eventId, userId uuid.UUID, accessToken string) error {
	kept := f.rows[:0]
	for _, r := range f.rows {
		if r.EventID != eventId || r.UserID != userId {
			kept = append(kept, r)
		}
	}
	f.rows = kept
	return nil
}

func floatPtr(v float64) *float64 { return &v }

func testEvent(title, location, category string) *models.Event {
	return &models.Event{
		ID:              uuid.New(),
		Title:           title,
		Location:        location,
		Category:        category,
		Date:            time.Now().Add(48 * time.Hour),
		MaxParticipants: 10,
		CreatedBy:       uuid.New(),
	}
}
