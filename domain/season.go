package domain

import "time"

// Season status values.
const (
	SeasonStatusActive    = "active"
	SeasonStatusCompleted = "completed"
)

// CultivationSeason is one planting-to-harvest cycle for a specific field.
// At most one season per field may be active at any time.
type CultivationSeason struct {
	ID            string     `json:"id"`
	FieldID       string     `json:"field_id"`
	FieldName     string     `json:"field_name,omitempty"`
	SeasonNumber  int        `json:"season_number"`
	Name          string     `json:"name"`
	PlantingDate  time.Time  `json:"planting_date"`
	Status        string     `json:"status"`
	CompletedDate *time.Time `json:"completed_date,omitempty"`
	Notes         string     `json:"notes,omitempty"`
	CreatedBy     string     `json:"created_by"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

func (s *CultivationSeason) IsActive() bool {
	return s != nil && s.Status == SeasonStatusActive
}
