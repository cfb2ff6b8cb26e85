package workorder

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/fadelaryap/agrione-v1-sub000/domain"
	"github.com/fadelaryap/agrione-v1-sub000/repository"
	"github.com/fadelaryap/agrione-v1-sub000/usecase"
)

type UseCase struct {
	orders repository.WorkOrderRepository
	buffer usecase.OperationBuffer
	logger *zap.Logger
}

func New(orders repository.WorkOrderRepository, buffer usecase.OperationBuffer, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		orders: orders,
		buffer: buffer,
		logger: logger,
	}
}

func (uc *UseCase) List(ctx context.Context, filter repository.WorkOrderFilter) ([]domain.WorkOrder, error) {
	return uc.orders.List(ctx, filter)
}

func (uc *UseCase) Get(ctx context.Context, id string) (*domain.WorkOrder, error) {
	return uc.orders.GetByID(ctx, id)
}

// UpdateInput carries the mutable fields of a work order. Nil pointers leave
// the stored value untouched.
type UpdateInput struct {
	Status      *string
	Priority    *domain.Priority
	Assignee    *string
	Progress    *int
	Description *string
}

// Update applies a partial update. Completing an order forces progress to 100
// and stamps the completion date; failed writes are parked in the offline
// buffer when one is configured.
func (uc *UseCase) Update(ctx context.Context, id string, input UpdateInput) (*domain.WorkOrder, error) {
	order, err := uc.orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Status != nil {
		if !domain.IsWorkOrderStatus(*input.Status) {
			return nil, domain.WrapError(domain.ErrCodeInvalid, "unknown work order status", domain.ErrInvalidPayload)
		}
		order.Status = *input.Status
	}
	if input.Priority != nil {
		order.Priority = *input.Priority
	}
	if input.Assignee != nil {
		order.Assignee = *input.Assignee
	}
	if input.Progress != nil {
		if *input.Progress < 0 || *input.Progress > 100 {
			return nil, domain.WrapError(domain.ErrCodeInvalid, "progress must be between 0 and 100", domain.ErrInvalidPayload)
		}
		order.Progress = *input.Progress
	}
	if input.Description != nil {
		order.Description = *input.Description
	}

	if order.Progress == 100 && order.Status != domain.WorkOrderStatusCompleted {
		order.Status = domain.WorkOrderStatusCompleted
	}
	if order.IsCompleted() {
		order.Progress = 100
		if order.CompletedDate == nil {
			now := time.Now()
			order.CompletedDate = &now
		}
	} else {
		order.CompletedDate = nil
	}

	if err := uc.orders.Update(ctx, order); err != nil {
		if uc.shouldBuffer(ctx, usecase.OperationUpdate, order) {
			return order, nil
		}
		return nil, err
	}
	return order, nil
}

func (uc *UseCase) Delete(ctx context.Context, id string) error {
	if err := uc.orders.Delete(ctx, id); err != nil {
		if err == domain.ErrWorkOrderNotFound {
			return err
		}
		order := &domain.WorkOrder{ID: id}
		if uc.shouldBuffer(ctx, usecase.OperationDelete, order) {
			return nil
		}
		return err
	}
	return nil
}

func (uc *UseCase) shouldBuffer(ctx context.Context, operation string, order *domain.WorkOrder) bool {
	if uc.buffer == nil {
		return false
	}
	if err := uc.buffer.BufferWorkOrder(ctx, operation, order); err != nil {
		uc.logger.Error("failed to buffer work order operation",
			zap.String("operation", operation), zap.Error(err))
		return false
	}
	uc.logger.Warn("work order operation buffered",
		zap.String("operation", operation), zap.String("work_order_id", order.ID))
	return true
}
