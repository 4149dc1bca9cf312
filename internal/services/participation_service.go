package services

import (
	"context"
	"fmt"

	"github.com/adjei-dev/gatherly/internal/models"
	"github.com/google/uuid"
)

// ParticipationService handles joining and leaving events. Neither
// operation is atomic with a capacity check: near the capacity boundary,
// concurrent joins can overbook. Callers that need a hard ceiling have to
// enforce it at the store (uniqueness plus a conditional write).
type ParticipationService struct {
	participantsRepo models.ParticipantsRepo
	eventsRepo       models.EventsRepo
}

func NewParticipationService(participantsRepo models.ParticipantsRepo, eventsRepo models.EventsRepo) *ParticipationService {
	return &ParticipationService{
		participantsRepo: participantsRepo,
		eventsRepo:       eventsRepo,
	}
}

func (ps *ParticipationService) Join(ctx context.Context, eventId, userId uuid.UUID, accessToken string) error {
	if userId == uuid.Nil {
		return models.ErrUnauthenticated
	}
	if eventId == uuid.Nil {
		return fmt.Errorf("%w: invalid event ID", models.ErrValidation)
	}

	// The event must exist; capacity is deliberately not re-checked here.
	if _, err := ps.eventsRepo.GetEventByID(ctx, eventId); err != nil {
		return err
	}

	return ps.participantsRepo.JoinEvent(ctx, eventId, userId, accessToken)
}

// Leave removes the user's participation. Leaving an event that was never
// joined is a no-op success.
func (ps *ParticipationService) Leave(ctx context.Context, eventId, userId uuid.UUID, accessToken string) error {
	if userId == uuid.Nil {
		return models.ErrUnauthenticated
	}
	if eventId == uuid.Nil {
		return fmt.Errorf("%w: invalid event ID", models.ErrValidation)
	}

	return ps.participantsRepo.LeaveEvent(ctx, eventId, userId, accessToken)
}

func (ps *ParticipationService) Count(ctx context.Context, eventId uuid.UUID) (int, error) {
	if eventId == uuid.Nil {
		return 0, fmt.Errorf("%w: invalid event ID", models.ErrValidation)
	}

	return ps.participantsRepo.CountParticipants(ctx, eventId)
}

func (ps *ParticipationService) Participants(ctx context.Context, eventId uuid.UUID) ([]*models.Participation, error) {
	if eventId == uuid.Nil {
		return nil, fmt.Errorf("%w: invalid event ID", models.ErrValidation)
	}

	return ps.participantsRepo.ListParticipants(ctx, eventId)
}

// SpotsRemaining reports capacity minus the current participant count.
// Advisory only: by the time the caller acts on it the number may be stale.
func (ps *ParticipationService) SpotsRemaining(ctx context.Context, eventId uuid.UUID) (int, error) {
	event, err := ps.eventsRepo.GetEventByID(ctx, eventId)
	if err != nil {
		return 0, err
	}

	count, err := ps.participantsRepo.CountParticipants(ctx, eventId)
	if err != nil {
		return 0, err
	}

	remaining := event.MaxParticipants - count
	if remaining < 0 {
		remaining = 0
	}
	return remaining, nil
}
