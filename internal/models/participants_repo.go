package models

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

type ParticipantsRepo interface {
	ListParticipants(ctx context.Context, eventId uuid.UUID) ([]*Participation, error)
	CountParticipants(ctx context.Context, eventId uuid.UUID) (int, error)
	JoinEvent(ctx context.Context, eventId, userId uuid.UUID, accessToken string) error
	LeaveEvent(ctx context.Context, eventId, userId uuid.UUID, accessToken string) error
}

func (su *SupabaseRepo) ListParticipants(ctx context.Context, eventId uuid.UUID) ([]*Participation, error) {
	data, count, err := su.supabaseClient.
		From(ParticipantsTable).
		Select("*", "exact", false).
		Eq("event_id", eventId.String()).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("%w: failed to list participants: %v", ErrStoreFailure, err)
	}

	if count == 0 {
		return []*Participation{}, nil
	}

	var participants []*Participation
	if err := json.Unmarshal(data, &participants); err != nil {
		return nil, fmt.Errorf("%w: failed to unmarshal participants: %v", ErrStoreFailure, err)
	}

	return participants, nil
}

func (su *SupabaseRepo) CountParticipants(ctx context.Context, eventId uuid.UUID) (int, error) {
	_, count, err := su.supabaseClient.
		From(ParticipantsTable).
		Select("id", "exact", false).
		Eq("event_id", eventId.String()).
		Execute()
	if err != nil {
		return 0, fmt.Errorf("%w: failed to count participants: %v", ErrStoreFailure, err)
	}

	return int(count), nil
}

// JoinEvent inserts one participation row. There is deliberately no
// capacity check here: the store's uniqueness constraint is the only
// guard, and overbooking near the capacity boundary is possible under
// concurrent joins.
func (su *SupabaseRepo) JoinEvent(ctx context.Context, eventId, userId uuid.UUID, accessToken string) error {
	client, err := su.GetAuthenticatedClient(accessToken)
	if err != nil {
		return fmt.Errorf("failed to create authenticated client: %v", err)
	}

	row := map[string]interface{}{
		"event_id": eventId,
		"user_id":  userId,
	}

	_, _, err = client.
		From(ParticipantsTable).
		Insert(row, false, "", "", "").
		Execute()
	if err != nil {
		return fmt.Errorf("%w: failed to join event: %v", ErrStoreFailure, err)
	}

	return nil
}

// LeaveEvent deletes the caller's participation rows for the event.
// Deleting a record that never existed is a success, not an error.
func (su *SupabaseRepo) LeaveEvent(ctx context.Context, eventId, userId uuid.UUID, accessToken string) error {
	client, err := su.GetAuthenticatedClient(accessToken)
	if err != nil {
		return fmt.Errorf("failed to create authenticated client: %v", err)
	}

	_, _, err = client.
		From(ParticipantsTable).
		Delete("", "").
		Eq("event_id", eventId.String()).
		Eq("user_id", userId.String()).
		Execute()
	if err != nil {
		return fmt.Errorf("%w: failed to leave event: %v", ErrStoreFailure, err)
	}

	return nil
}
