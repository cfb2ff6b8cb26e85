package domain

import "time"

// Template is a reusable, named set of activities authored against a specific
// planting date. Stored templates are immutable; loading one into a new
// planning session produces a recalculated copy, never a mutation.
type Template struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Description  string     `json:"description,omitempty"`
	PlantingDate time.Time  `json:"planting_date"`
	Activities   []Activity `json:"activities"`
	CreatedAt    time.Time  `json:"created_at"`
}

// ActivityByID returns the activity with the given id, or nil.
func (t *Template) ActivityByID(id string) *Activity {
	if t == nil {
		return nil
	}
	for i := range t.Activities {
		if t.Activities[i].ID == id {
			return &t.Activities[i]
		}
	}
	return nil
}
