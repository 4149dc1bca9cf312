package services

import (
	"context"
	"errors"
	"testing"

	"github.com/adjei-dev/gatherly/internal/models"
	"github.com/google/uuid"
)

func newParticipationFixture(t *testing.T) (*ParticipationService, *fakeParticipantsRepo, *models.Event) {
	t.Helper()
	event := testEvent("Go Meetup", "Oakland, CA", models.CategoryTech)
	event.MaxParticipants = 2
	participants := &fakeParticipantsRepo{}
	svc := NewParticipationService(participants, &fakeEventsRepo{events: []*models.Event{event}})
	return svc, participants, event
}

func TestJoinIncrementsCount(t *testing.T) {
	svc, _, event := newParticipationFixture(t)
	ctx := context.Background()

	before, err := svc.Count(ctx, event.ID)
	if err != nil {
		t.Fatalf("Count: %v", err)
	}

	if err := svc.Join(ctx, event.ID, uuid.New(), "token"); err != nil {
		t.Fatalf("Join: %v", err)
	}

	after, err := svc.Count(ctx, event.ID)
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if after != before+1 {
		t.Errorf("count went from %d to %d, want +1", before, after)
	}
}

func TestJoinRequiresAuthentication(t *testing.T) {
	svc, _, event := newParticipationFixture(t)

	err := svc.Join(context.Background(), event.ID, uuid.Nil, "")
	if !errors.Is(err, models.ErrUnauthenticated) {
		t.Fatalf("got %v, want ErrUnauthenticated", err)
	}
}

func TestJoinMissingEvent(t *testing.T) {
	svc, _, _ := newParticipationFixture(t)

	err := svc.Join(context.Background(), uuid.New(), uuid.New(), "token")
	if !errors.Is(err, models.ErrNotFound) {
		t.Fatalf("got %v, want ErrNotFound", err)
	}
}

func TestLeaveNeverJoinedIsNoOp(t *testing.T) {
	svc, _, event := newParticipationFixture(t)
	ctx := context.Background()

	joined := uuid.New()
	if err := svc.Join(ctx, event.ID, joined, "token"); err != nil {
		t.Fatalf("Join: %v", err)
	}

	if err := svc.Leave(ctx, event.ID, uuid.New(), "token"); err != nil {
		t.Fatalf("Leave for a non-participant: %v", err)
	}

	count, err := svc.Count(ctx, event.ID)
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if count != 1 {
		t.Errorf("count = %d after no-op leave, want 1", count)
	}
}

func TestLeaveRemovesParticipation(t *testing.T) {
	svc, _, event := newParticipationFixture(t)
	ctx := context.Background()
	userId := uuid.New()

	if err := svc.Join(ctx, event.ID, userId, "token"); err != nil {
		t.Fatalf("Join: %v", err)
	}
	if err := svc.Leave(ctx, event.ID, userId, "token"); err != nil {
		t.Fatalf("Leave: %v", err)
	}

	count, err := svc.Count(ctx, event.ID)
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if count != 0 {
		t.Errorf("count = %d after leave, want 0", count)
	}
}

// Joins past capacity succeed: there is no atomic capacity guard, and
// SpotsRemaining only clamps at zero after the fact.
func TestJoinPastCapacitySucceeds(t *testing.T) {
	svc, _, event := newParticipationFixture(t)
	ctx := context.Background()

	for i := 0; i < event.MaxParticipants+1; i++ {
		if err := svc.Join(ctx, event.ID, uuid.New(), "token"); err != nil {
			t.Fatalf("join %d: %v", i+1, err)
		}
	}

	count, err := svc.Count(ctx, event.ID)
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if count != event.MaxParticipants+1 {
		t.Errorf("count = %d, want %d", count, event.MaxParticipants+1)
	}

	remaining, err := svc.SpotsRemaining(ctx, event.ID)
	if err != nil {
		t.Fatalf("SpotsRemaining: %v", err)
	}
	if remaining != 0 {
		t.Errorf("spots remaining = %d for an overbooked event, want 0", remaining)
	}
}

func TestSpotsRemaining(t *testing.T) {
	svc, _, event := newParticipationFixture(t)
	ctx := context.Background()

	remaining, err := svc.SpotsRemaining(ctx, event.ID)
	if err != nil {
		t.Fatalf("SpotsRemaining: %v", err)
	}
	if remaining != event.MaxParticipants {
		t.Errorf("spots remaining = %d, want %d", remaining, event.MaxParticipants)
	}

	if err := svc.Join(ctx, event.ID, uuid.New(), "token"); err != nil {
		t.Fatalf("Join: %v", err)
	}

	remaining, err = svc.SpotsRemaining(ctx, event.ID)
	if err != nil {
		t.Fatalf("SpotsRemaining: %v", err)
	}
	if remaining != event.MaxParticipants-1 {
		t.Errorf("spots remaining = %d, want %d", remaining, event.MaxParticipants-1)
	}
}
