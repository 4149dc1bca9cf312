package services

import (
	"context"
	"fmt"

	"github.com/adjei-dev/gatherly/internal/helpers"
	"github.com/adjei-dev/gatherly/internal/models"
	"github.com/google/uuid"
)

type UserService struct {
	userRepo   models.UserRepo
	eventsRepo models.EventsRepo
}

func NewUserService(userRepo models.UserRepo, eventsRepo models.EventsRepo) *UserService {
	return &UserService{
		userRepo:   userRepo,
		eventsRepo: eventsRepo,
	}
}

func (us *UserService) CreateUser(email, password string) (interface{}, error) {
	if err := models.Validate.Var(email, "required,email"); err != nil {
		return nil, fmt.Errorf("%w: invalid email format", models.ErrValidation)
	}

	if !helpers.IsPasswordStrong(password) {
		return nil, fmt.Errorf("%w: password is not strong enough", models.ErrValidation)
	}

	return us.userRepo.CreateUser(context.Background(), email, password)
}

func (us *UserService) AuthenticateUser(email, password string) (interface{}, error) {
	if err := models.Validate.Var(email, "required,email"); err != nil {
		return nil, fmt.Errorf("%w: invalid email format", models.ErrValidation)
	}
	if err := models.Validate.Var(password, "required,min=8"); err != nil {
		return nil, fmt.Errorf("%w: invalid password format", models.ErrValidation)
	}

	response, err := us.userRepo.AuthenticateUser(context.Background(), email, password)
	if err != nil {
		return nil, fmt.Errorf("authentication failed: %w", err)
	}

	return response, nil
}

func (us *UserService) RefreshToken(refreshToken string) (interface{}, error) {
	if refreshToken == "" {
		return nil, fmt.Errorf("%w: refresh token is required", models.ErrValidation)
	}
	response, err := us.userRepo.RefreshToken(context.Background(), refreshToken)
	if err != nil {
		return nil, fmt.Errorf("token refresh failed: %v", err)
	}
	return response, nil
}

// GetProfile is the single-shot "who is the current user" lookup: one call,
// one outcome, either the profile or a typed failure.
func (us *UserService) GetProfile(ctx context.Context, id uuid.UUID, accessToken string) (*models.Profile, error) {
	if id == uuid.Nil {
		return nil, models.ErrUnauthenticated
	}

	return us.userRepo.GetProfile(ctx, id, accessToken)
}

// MyEvents lists the events the user created.
func (us *UserService) MyEvents(ctx context.Context, userId uuid.UUID, accessToken string) ([]*models.Event, error) {
	if userId == uuid.Nil {
		return nil, models.ErrUnauthenticated
	}

	return us.eventsRepo.ListEventsByCreator(ctx, userId, accessToken)
}

// JoinedEvents lists the events the user has joined.
func (us *UserService) JoinedEvents(ctx context.Context, userId uuid.UUID, accessToken string) ([]*models.Event, error) {
	if userId == uuid.Nil {
		return nil, models.ErrUnauthenticated
	}

	return us.eventsRepo.ListJoinedEvents(ctx, userId, accessToken)
}
