package domain

import "time"

// Field is a cultivated plot. AssignedUserID, when set, names the preferred
// responsible party for work orders materialized on this field.
type Field struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Description    string    `json:"description,omitempty"`
	AreaHa         float64   `json:"area_ha"`
	AssignedUserID string    `json:"assigned_user_id,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
