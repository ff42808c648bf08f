package user

import (
	"context"

	"github.com/rs/zerolog"
)

// Service describes the business logic surface for user queries.
type Service interface {
	ListUsers(ctx context.Context) ([]User, error)
	GetUser(ctx context.Context, id uint) (*User, error)
}

type service struct {
	repo Repository
	log  zerolog.Logger
}

// NewService wires the user service with its repository.
func NewService(repo Repository, log zerolog.Logger) Service {
	return &service{
		repo: repo,
		log:  log.With().Str("component", "user-service").Logger(),
	}
}

func (s *service) ListUsers(ctx context.Context) ([]User, error) {
	return s.repo.List(ctx)
}

func (s *service) GetUser(ctx context.Context, id uint) (*User, error) {
	usr, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.log.Warn().Err(err).Uint("user_id", id).Msg("fetch user")
		return nil, err
	}
	return usr, nil
}
