package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rgalvan/jobtracker-api/internal/config"
	"github.com/rgalvan/jobtracker-api/internal/domain"
	"github.com/rgalvan/jobtracker-api/internal/repository"
	"gorm.io/gorm"
)

type AuthService struct {
	userRepo    repository.UserRepository
	sessionRepo repository.SessionRepository
	hasher      PasswordHasher
	cfg         *config.Config
}

func NewAuthService(userRepo repository.UserRepository, sessionRepo repository.SessionRepository, hasher PasswordHasher, cfg *config.Config) *AuthService {
	return &AuthService{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		hasher:      hasher,
		cfg:         cfg,
	}
}

type RegisterInput struct {
	Email    string
	Password string
	UserName string
}

type LoginInput struct {
	Email    string
	Password string
}

func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*domain.User, error) {
	email := domain.NormalizeEmail(input.Email)

	exists, err := s.userRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrEmailTaken
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: hash,
		UserName:     input.UserName,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// Login verifies credentials and opens a fresh session. A missing user
// and a wrong password return the same error so callers cannot tell
// which check failed.
func (s *AuthService) Login(ctx context.Context, input LoginInput) (*domain.User, *domain.Session, error) {
	user, err := s.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, domain.ErrInvalidCredentials
		}
		return nil, nil, err
	}

	if !s.hasher.Verify(input.Password, user.PasswordHash) {
		return nil, nil, domain.ErrInvalidCredentials
	}

	session := &domain.Session{
		ID:        uuid.New(),
		Token:     uuid.New().String(),
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(s.cfg.SessionTTL),
		CreatedAt: time.Now(),
	}

	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, nil, err
	}

	return user, session, nil
}

// CurrentUser resolves the identity bound to a session token. It is
// called on every authenticated request; a session deleted by logout is
// unauthenticated immediately.
func (s *AuthService) CurrentUser(ctx context.Context, token string) (*domain.User, error) {
	if token == "" {
		return nil, domain.ErrNotAuthenticated
	}

	session, err := s.sessionRepo.GetByToken(ctx, token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotAuthenticated
		}
		return nil, err
	}

	if session.Expired(time.Now()) {
		_ = s.sessionRepo.DeleteByToken(ctx, token)
		return nil, domain.ErrNotAuthenticated
	}

	user, err := s.userRepo.GetByID(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Stale session pointing at a removed account.
			_ = s.sessionRepo.DeleteByToken(ctx, token)
			return nil, domain.ErrNotAuthenticated
		}
		return nil, err
	}

	return user, nil
}

// Logout invalidates the session for a token. Unknown tokens are not an
// error, so calling logout twice is safe.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return s.sessionRepo.DeleteByToken(ctx, token)
}
