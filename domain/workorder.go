package domain

import "time"

// Work order status values.
const (
	WorkOrderStatusPending    = "pending"
	WorkOrderStatusInProgress = "in-progress"
	WorkOrderStatusCompleted  = "completed"
	WorkOrderStatusOverdue    = "overdue"
	WorkOrderStatusCancelled  = "cancelled"
)

// IsWorkOrderStatus reports whether s is a known status value.
func IsWorkOrderStatus(s string) bool {
	switch s {
	case WorkOrderStatusPending, WorkOrderStatusInProgress, WorkOrderStatusCompleted,
		WorkOrderStatusOverdue, WorkOrderStatusCancelled:
		return true
	}
	return false
}

// WorkOrder is a persisted, assignable task derived from one template
// activity and tracked to completion by field reports.
type WorkOrder struct {
	ID                  string           `json:"id"`
	FieldID             string           `json:"field_id"`
	CultivationSeasonID string           `json:"cultivation_season_id"`
	Title               string           `json:"title"`
	Kind                ActivityKind     `json:"kind"`
	Category            ActivityCategory `json:"category"`
	Status              string           `json:"status"`
	Priority            Priority         `json:"priority"`
	Assignee            string           `json:"assignee"`
	StartDate           *time.Time       `json:"start_date,omitempty"`
	EndDate             *time.Time       `json:"end_date,omitempty"`
	Progress            int              `json:"progress"`
	Description         string           `json:"description,omitempty"`
	CreatedBy           string           `json:"created_by"`
	CompletedDate       *time.Time       `json:"completed_date,omitempty"`
	CreatedAt           time.Time        `json:"created_at"`
	UpdatedAt           time.Time        `json:"updated_at"`
}

func (w *WorkOrder) IsCompleted() bool {
	return w != nil && w.Status == WorkOrderStatusCompleted
}

// IsDated reports whether the order carries at least one calendar date and
// therefore participates in schedule views.
func (w *WorkOrder) IsDated() bool {
	return w != nil && (w.StartDate != nil || w.EndDate != nil)
}
