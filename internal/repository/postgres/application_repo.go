package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/rgalvan/jobtracker-api/internal/domain"
	"gorm.io/gorm"
)

type applicationRepository struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) *applicationRepository {
	return &applicationRepository{db: db}
}

func (r *applicationRepository) Create(ctx context.Context, app *domain.JobApplication) error {
	return r.db.WithContext(ctx).Create(app).Error
}

func (r *applicationRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.JobApplication, error) {
	var app domain.JobApplication
	err := r.db.WithContext(ctx).First(&app, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &app, nil
}

func (r *applicationRepository) GetByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.JobApplication, error) {
	var apps []*domain.JobApplication
	err := r.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Order("created_at ASC").
		Find(&apps).Error
	if err != nil {
		return nil, err
	}
	return apps, nil
}

func (r *applicationRepository) Update(ctx context.Context, app *domain.JobApplication) error {
	return r.db.WithContext(ctx).Save(app).Error
}

func (r *applicationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&domain.JobApplication{}, "id = ?", id).Error
}

// DeleteByOwner removes every application a user owns. This is the
// explicit cascade used when an account is removed.
func (r *applicationRepository) DeleteByOwner(ctx context.Context, ownerID uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&domain.JobApplication{}, "user_id = ?", ownerID).Error
}
