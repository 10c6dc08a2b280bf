package service

import (
	"github.com/rgalvan/jobtracker-api/internal/config"
	"github.com/rgalvan/jobtracker-api/internal/repository"
)

type Services struct {
	Auth        *AuthService
	Application *ApplicationService
}

func NewServices(repos *repository.Repositories, cfg *config.Config) *Services {
	return &Services{
		Auth:        NewAuthService(repos.User, repos.Session, NewBcryptHasher(), cfg),
		Application: NewApplicationService(repos.Application),
	}
}
