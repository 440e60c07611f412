package entities

import "time"

// Habit represents a tracked habit owned by a single user
type Habit struct {
	ID          string    `json:"id"` // UUID
	UserID      string    `json:"user_id"`
	Name        string    `json:"nombre"`
	Description *string   `json:"descripcion,omitempty"` // Pointer allows nil (no description)
	Active      bool      `json:"activo"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
