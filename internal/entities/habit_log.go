package entities

import "time"

// HabitLog represents one dated completion record for a habit.
// Date carries a calendar date only; the time-of-day component is always midnight.
type HabitLog struct {
	ID        string    `json:"id"` // UUID
	HabitID   string    `json:"habit_id"`
	Date      time.Time `json:"fecha"`
	Completed bool      `json:"completado"`
	CreatedAt time.Time `json:"created_at"`
}
