package repository

import (
	"context"

	"github.com/fadelaryap/agrione-v1-sub000/domain"
)

type SeasonFilter struct {
	FieldID string
	Status  string
}

type SeasonRepository interface {
	GetByID(ctx context.Context, id string) (*domain.CultivationSeason, error)
	List(ctx context.Context, filter SeasonFilter) ([]domain.CultivationSeason, error)
	CountByField(ctx context.Context, fieldID string) (int, error)
	Create(ctx context.Context, season *domain.CultivationSeason) (*domain.CultivationSeason, error)
	Update(ctx context.Context, season *domain.CultivationSeason) error
	Delete(ctx context.Context, id string) error
}
