package service

import (
	"context"
	"errors"
	"testing"

	"github.com/Izanmg/streamevents/internal/models"
	"github.com/Izanmg/streamevents/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type userRepoStub struct {
	getByIDFn       func(context.Context, uint) (*models.User, error)
	getByEmailFn    func(context.Context, string) (*models.User, error)
	getByUsernameFn func(context.Context, string) (*models.User, error)
	createFn        func(context.Context, *models.User) error
	updateFn        func(context.Context, *models.User) error
	listFn          func(context.Context, int, int) ([]models.User, error)
}

func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmailFn(ctx, email)
}
func (s *userRepoStub) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.getByUsernameFn(ctx, username)
}
func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}
func (s *userRepoStub) Update(ctx context.Context, user *models.User) error {
	return s.updateFn(ctx, user)
}
func (s *userRepoStub) List(ctx context.Context, limit, offset int) ([]models.User, error) {
	return s.listFn(ctx, limit, offset)
}

// noopUserRepo returns a stub whose methods succeed with empty results.
func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		getByIDFn:       func(context.Context, uint) (*models.User, error) { return &models.User{}, nil },
		getByEmailFn:    func(context.Context, string) (*models.User, error) { return nil, nil },
		getByUsernameFn: func(context.Context, string) (*models.User, error) { return nil, nil },
		createFn:        func(context.Context, *models.User) error { return nil },
		updateFn:        func(context.Context, *models.User) error { return nil },
		listFn:          func(context.Context, int, int) ([]models.User, error) { return nil, nil },
	}
}

type eventRepoStub struct {
	getByIDFn       func(context.Context, uint) (*models.Event, error)
	createFn        func(context.Context, *models.Event) error
	updateFn        func(context.Context, *models.Event) error
	deleteFn        func(context.Context, uint) error
	filterFn        func(context.Context, repository.EventFilter) ([]models.Event, error)
	listByCreatorFn func(context.Context, uint, int, int) ([]models.Event, error)
}

func (s *eventRepoStub) GetByID(ctx context.Context, id uint) (*models.Event, error) {
	return s.getByIDFn(ctx, id)
}
func (s *eventRepoStub) Create(ctx context.Context, event *models.Event) error {
	return s.createFn(ctx, event)
}
func (s *eventRepoStub) Update(ctx context.Context, event *models.Event) error {
	return s.updateFn(ctx, event)
}
func (s *eventRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}
func (s *eventRepoStub) Filter(ctx context.Context, filter repository.EventFilter) ([]models.Event, error) {
	return s.filterFn(ctx, filter)
}
func (s *eventRepoStub) ListByCreator(ctx context.Context, creatorID uint, limit, offset int) ([]models.Event, error) {
	return s.listByCreatorFn(ctx, creatorID, limit, offset)
}

// noopEventRepo returns a stub whose methods succeed with empty results.
func noopEventRepo() *eventRepoStub {
	return &eventRepoStub{
		getByIDFn:       func(context.Context, uint) (*models.Event, error) { return &models.Event{}, nil },
		createFn:        func(context.Context, *models.Event) error { return nil },
		updateFn:        func(context.Context, *models.Event) error { return nil },
		deleteFn:        func(context.Context, uint) error { return nil },
		filterFn:        func(context.Context, repository.EventFilter) ([]models.Event, error) { return nil, nil },
		listByCreatorFn: func(context.Context, uint, int, int) ([]models.Event, error) { return nil, nil },
	}
}

// assertAppErrorCode asserts that err is an AppError with the given code.
func assertAppErrorCode(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr), "expected AppError, got %T: %v", err, err)
	assert.Equal(t, code, appErr.Code)
}

// assertValidationError asserts that err is an AppError with code VALIDATION_ERROR.
func assertValidationError(t *testing.T, err error) {
	t.Helper()
	assertAppErrorCode(t, err, "VALIDATION_ERROR")
}
