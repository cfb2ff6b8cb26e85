package repository

import (
	"context"

	"github.com/fadelaryap/agrione-v1-sub000/domain"
)

type FieldRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Field, error)
	List(ctx context.Context) ([]domain.Field, error)
}
