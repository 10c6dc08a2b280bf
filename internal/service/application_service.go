package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rgalvan/jobtracker-api/internal/domain"
	"github.com/rgalvan/jobtracker-api/internal/repository"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ApplicationService enforces ownership on every record access: a user
// can only see or mutate applications they created.
type ApplicationService struct {
	appRepo repository.ApplicationRepository
}

func NewApplicationService(appRepo repository.ApplicationRepository) *ApplicationService {
	return &ApplicationService{appRepo: appRepo}
}

type CreateApplicationInput struct {
	CompanyName string
	JobTitle    string
	Status      domain.ApplicationStatus
	DateApplied *time.Time
	Notes       string
}

func (s *ApplicationService) ListOwned(ctx context.Context, ownerID uuid.UUID) ([]*domain.JobApplication, error) {
	return s.appRepo.GetByOwner(ctx, ownerID)
}

// GetOwned loads an application and checks ownership. A missing record
// and an existing record owned by someone else are distinct failures;
// callers depend on the 404 vs 403 distinction.
func (s *ApplicationService) GetOwned(ctx context.Context, ownerID, id uuid.UUID) (*domain.JobApplication, error) {
	app, err := s.appRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrApplicationNotFound
		}
		return nil, err
	}

	if app.UserID != ownerID {
		return nil, domain.ErrNotOwner
	}

	return app, nil
}

// Create stores a new application owned by ownerID. The owner always
// comes from the resolved session, never from the request payload.
func (s *ApplicationService) Create(ctx context.Context, ownerID uuid.UUID, input CreateApplicationInput) (*domain.JobApplication, error) {
	if input.Status != "" && !input.Status.Valid() {
		return nil, domain.ErrInvalidStatus
	}

	dateApplied := time.Now()
	if input.DateApplied != nil {
		dateApplied = *input.DateApplied
	}

	app := &domain.JobApplication{
		ID:          uuid.New(),
		UserID:      ownerID,
		CompanyName: input.CompanyName,
		JobTitle:    input.JobTitle,
		Status:      input.Status,
		DateApplied: datatypes.Date(dateApplied),
		Notes:       input.Notes,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if err := s.appRepo.Create(ctx, app); err != nil {
		return nil, err
	}

	return app, nil
}

// Update merges the non-nil fields of the partial update onto the stored
// record. Nil fields are left untouched.
func (s *ApplicationService) Update(ctx context.Context, ownerID, id uuid.UUID, update domain.ApplicationUpdate) (*domain.JobApplication, error) {
	if update.Status != nil && !update.Status.Valid() {
		return nil, domain.ErrInvalidStatus
	}

	app, err := s.GetOwned(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	app.Merge(update)
	app.UpdatedAt = time.Now()

	if err := s.appRepo.Update(ctx, app); err != nil {
		return nil, err
	}

	return app, nil
}

func (s *ApplicationService) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	app, err := s.GetOwned(ctx, ownerID, id)
	if err != nil {
		return err
	}
	return s.appRepo.Delete(ctx, app.ID)
}

// DeleteAllForOwner removes every application a user owns, used when an
// account is deleted so no orphaned records remain.
func (s *ApplicationService) DeleteAllForOwner(ctx context.Context, ownerID uuid.UUID) error {
	return s.appRepo.DeleteByOwner(ctx, ownerID)
}
