package models

// CreateHabitRequest represents the request body for creating a habit.
// Field names on the wire follow the original API contract (nombre/descripcion/activo).
type CreateHabitRequest struct {
	Name        string  `json:"nombre" binding:"required"`
	Description *string `json:"descripcion,omitempty"`
	Active      *bool   `json:"activo,omitempty"` // defaults to true when omitted
}

// CreateHabitLogRequest represents the request body for logging a habit on a date.
// Fecha is a naive calendar date in YYYY-MM-DD form.
type CreateHabitLogRequest struct {
	Date      string `json:"fecha" binding:"required"`
	Completed *bool  `json:"completado,omitempty"` // defaults to true when omitted
}
