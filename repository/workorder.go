package repository

import (
	"context"

	"github.com/fadelaryap/agrione-v1-sub000/domain"
)

type WorkOrderFilter struct {
	FieldID  string
	SeasonID string
	Status   string
	Assignee string
	Search   string
	Limit    int
	Offset   int
}

type WorkOrderRepository interface {
	GetByID(ctx context.Context, id string) (*domain.WorkOrder, error)
	List(ctx context.Context, filter WorkOrderFilter) ([]domain.WorkOrder, error)
	CountBySeason(ctx context.Context, seasonID string) (int, error)
	Create(ctx context.Context, order *domain.WorkOrder) (*domain.WorkOrder, error)
	Update(ctx context.Context, order *domain.WorkOrder) error
	Delete(ctx context.Context, id string) error
}
