package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/rgalvan/jobtracker-api/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

type SessionRepository interface {
	Create(ctx context.Context, session *domain.Session) error
	GetByToken(ctx context.Context, token string) (*domain.Session, error)
	DeleteByToken(ctx context.Context, token string) error
	DeleteByUserID(ctx context.Context, userID uuid.UUID) error
}

type ApplicationRepository interface {
	Create(ctx context.Context, app *domain.JobApplication) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.JobApplication, error)
	GetByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.JobApplication, error)
	Update(ctx context.Context, app *domain.JobApplication) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByOwner(ctx context.Context, ownerID uuid.UUID) error
}

type Repositories struct {
	User        UserRepository
	Session     SessionRepository
	Application ApplicationRepository
}
