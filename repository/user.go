package repository

import (
	"context"

	"github.com/fadelaryap/agrione-v1-sub000/domain"
)

type UserRepository interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
	ListByRole(ctx context.Context, roles []string) ([]domain.User, error)
}
