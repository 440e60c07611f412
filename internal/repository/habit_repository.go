package repository

import (
	"database/sql"
	"fmt"

	"habits-be/internal/entities"
)

//go:generate mockgen -source=habit_repository.go -destination=mocks/mock_habit_repository.go -package=mocks

// HabitRepository defines the interface for habit database operations.
// Every lookup is scoped to an owner id so that a habit belonging to another
// user is indistinguishable from one that does not exist.
type HabitRepository interface {
	Create(userID, name string, description *string, active bool) (*entities.Habit, error)
	FindOwned(id, userID string) (*entities.Habit, error)
	ListByUser(userID string) ([]*entities.Habit, error)
	DeleteOwned(id, userID string) error
}

type habitRepository struct {
	db *sql.DB
}

// NewHabitRepository creates a new habit repository
func NewHabitRepository(db *sql.DB) HabitRepository {
	return &habitRepository{db: db}
}

// Create inserts a new habit into the database
func (r *habitRepository) Create(userID, name string, description *string, active bool) (*entities.Habit, error) {
	query := `
		INSERT INTO habitos (user_id, nombre, descripcion, activo)
		VALUES ($1, $2, $3, $4)
		RETURNING id, user_id, nombre, descripcion, activo, created_at, updated_at
	`

	var habit entities.Habit
	err := r.db.QueryRow(query, userID, name, description, active).Scan(
		&habit.ID,
		&habit.UserID,
		&habit.Name,
		&habit.Description,
		&habit.Active,
		&habit.CreatedAt,
		&habit.UpdatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("failed to create habit: %w", err)
	}

	return &habit, nil
}

// FindOwned finds a habit by id, but only if it belongs to the given user
func (r *habitRepository) FindOwned(id, userID string) (*entities.Habit, error) {
	query := `
		SELECT id, user_id, nombre, descripcion, activo, created_at, updated_at
		FROM habitos
		WHERE id = $1 AND user_id = $2
	`

	var habit entities.Habit
	err := r.db.QueryRow(query, id, userID).Scan(
		&habit.ID,
		&habit.UserID,
		&habit.Name,
		&habit.Description,
		&habit.Active,
		&habit.CreatedAt,
		&habit.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrNoRows
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find habit: %w", err)
	}

	return &habit, nil
}

// ListByUser retrieves all habits for a specific user
func (r *habitRepository) ListByUser(userID string) ([]*entities.Habit, error) {
	query := `
		SELECT id, user_id, nombre, descripcion, activo, created_at, updated_at
		FROM habitos
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list habits: %w", err)
	}
	defer rows.Close()

	var habits []*entities.Habit
	for rows.Next() {
		var habit entities.Habit
		err := rows.Scan(
			&habit.ID,
			&habit.UserID,
			&habit.Name,
			&habit.Description,
			&habit.Active,
			&habit.CreatedAt,
			&habit.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan habit: %w", err)
		}
		habits = append(habits, &habit)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating habits: %w", err)
	}

	return habits, nil
}

// DeleteOwned removes a habit, but only if it belongs to the given user.
// Returns ErrNoRows when the habit is absent or owned by someone else.
func (r *habitRepository) DeleteOwned(id, userID string) error {
	result, err := r.db.Exec(`DELETE FROM habitos WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete habit: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return ErrNoRows
	}

	return nil
}
