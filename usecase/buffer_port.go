package usecase

import (
	"context"

	"github.com/fadelaryap/agrione-v1-sub000/domain"
)

// Buffered operation kinds.
const (
	OperationCreate = "create"
	OperationUpdate = "update"
	OperationDelete = "delete"
)

// OperationBuffer abstracts the offline buffer so use cases stay storage-agnostic.
// Work order mutations that fail against the primary store can be parked here
// and drained once connectivity returns.
type OperationBuffer interface {
	BufferWorkOrder(ctx context.Context, operation string, order *domain.WorkOrder) error
}
