package models

import "time"

// HabitResponse represents a habit as returned by the API
type HabitResponse struct {
	ID          string    `json:"id"` // UUID
	Name        string    `json:"nombre"`
	Description *string   `json:"descripcion,omitempty"`
	Active      bool      `json:"activo"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// HabitLogResponse represents a completion log as returned by the API
type HabitLogResponse struct {
	ID        string    `json:"id"` // UUID
	HabitID   string    `json:"habit_id"`
	Date      string    `json:"fecha"` // YYYY-MM-DD
	Completed bool      `json:"completado"`
	CreatedAt time.Time `json:"created_at"`
}

// HabitStatsResponse represents the computed statistics for one habit
type HabitStatsResponse struct {
	HabitID              string  `json:"habit_id"`
	TotalLogs            int     `json:"total_registros"`
	CompletedDays        int     `json:"dias_cumplidos"`
	CurrentStreak        int     `json:"racha_actual"`
	CompletionPercentage float64 `json:"porcentaje_cumplimiento"`
}
