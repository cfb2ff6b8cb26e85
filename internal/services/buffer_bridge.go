package services

import (
	"context"
	"encoding/json"

	"github.com/fadelaryap/agrione-v1-sub000/domain"
	"github.com/fadelaryap/agrione-v1-sub000/internal/infrastructure/buffer"
	"github.com/fadelaryap/agrione-v1-sub000/usecase"
)

type BufferBridge struct {
	processor *BufferProcessor
}

func NewBufferBridge(processor *BufferProcessor) *BufferBridge {
	return &BufferBridge{processor: processor}
}

func (b *BufferBridge) BufferWorkOrder(ctx context.Context, operation string, order *domain.WorkOrder) error {
	if b.processor == nil || order == nil {
		return domain.ErrInvalidPayload
	}
	payload, err := json.Marshal(order)
	if err != nil {
		return err
	}
	item := buffer.Item{
		ID:        order.ID,
		UserID:    order.Assignee,
		Entity:    buffer.EntityWorkOrder,
		Operation: operation,
		Data:      payload,
		Priority:  4,
	}
	return b.processor.BufferOperation(ctx, item)
}

var _ usecase.OperationBuffer = (*BufferBridge)(nil)
