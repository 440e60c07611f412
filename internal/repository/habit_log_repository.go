package repository

import (
	"database/sql"
	"fmt"
	"time"

	"habits-be/internal/entities"
)

//go:generate mockgen -source=habit_log_repository.go -destination=mocks/mock_habit_log_repository.go -package=mocks

// HabitLogRepository defines the interface for habit-log database operations
type HabitLogRepository interface {
	Create(habitID string, date time.Time, completed bool) (*entities.HabitLog, error)
	ExistsForDate(habitID string, date time.Time) (bool, error)
	ListByHabit(habitID string) ([]*entities.HabitLog, error)
	ListCompleted(habitID string) ([]*entities.HabitLog, error)
}

type habitLogRepository struct {
	db *sql.DB
}

// NewHabitLogRepository creates a new habit-log repository
func NewHabitLogRepository(db *sql.DB) HabitLogRepository {
	return &habitLogRepository{db: db}
}

// Create inserts a new completion log into the database
func (r *habitLogRepository) Create(habitID string, date time.Time, completed bool) (*entities.HabitLog, error) {
	query := `
		INSERT INTO registros_habitos (habit_id, fecha, completado)
		VALUES ($1, $2, $3)
		RETURNING id, habit_id, fecha, completado, created_at
	`

	var log entities.HabitLog
	err := r.db.QueryRow(query, habitID, date, completed).Scan(
		&log.ID,
		&log.HabitID,
		&log.Date,
		&log.Completed,
		&log.CreatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("failed to create habit log: %w", err)
	}

	return &log, nil
}

// ExistsForDate reports whether a log already exists for the habit on that date
func (r *habitLogRepository) ExistsForDate(habitID string, date time.Time) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM registros_habitos
			WHERE habit_id = $1 AND fecha = $2
		)
	`

	var exists bool
	if err := r.db.QueryRow(query, habitID, date).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check habit log existence: %w", err)
	}

	return exists, nil
}

// ListByHabit retrieves all logs for a habit, most recent date first
func (r *habitLogRepository) ListByHabit(habitID string) ([]*entities.HabitLog, error) {
	query := `
		SELECT id, habit_id, fecha, completado, created_at
		FROM registros_habitos
		WHERE habit_id = $1
		ORDER BY fecha DESC
	`

	return r.queryLogs(query, habitID)
}

// ListCompleted retrieves only completed logs for a habit, most recent date first
func (r *habitLogRepository) ListCompleted(habitID string) ([]*entities.HabitLog, error) {
	query := `
		SELECT id, habit_id, fecha, completado, created_at
		FROM registros_habitos
		WHERE habit_id = $1 AND completado = TRUE
		ORDER BY fecha DESC
	`

	return r.queryLogs(query, habitID)
}

func (r *habitLogRepository) queryLogs(query string, habitID string) ([]*entities.HabitLog, error) {
	rows, err := r.db.Query(query, habitID)
	if err != nil {
		return nil, fmt.Errorf("failed to list habit logs: %w", err)
	}
	defer rows.Close()

	var logs []*entities.HabitLog
	for rows.Next() {
		var log entities.HabitLog
		err := rows.Scan(
			&log.ID,
			&log.HabitID,
			&log.Date,
			&log.Completed,
			&log.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan habit log: %w", err)
		}
		logs = append(logs, &log)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating habit logs: %w", err)
	}

	return logs, nil
}
