package domain

import "time"

// Roles eligible to execute field work orders.
const (
	RoleFieldOperator   = "field_operator"
	RoleFieldSupervisor = "field_supervisor"
)

// User represents an identity known to the platform. Authentication lives
// with an external collaborator; users are read here only to resolve work
// order assignees.
type User struct {
	ID        string    `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email,omitempty"`
	Role      string    `json:"role"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (u *User) IsActive() bool {
	return u != nil && u.Status == "active"
}

// DisplayName is the assignee label recorded on work orders.
func (u *User) DisplayName() string {
	if u == nil {
		return ""
	}
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}
