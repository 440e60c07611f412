package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/lib/pq"

	"habits-be/internal/cache"
	"habits-be/internal/entities"
	"habits-be/internal/models"
	"habits-be/internal/repository"
)

const (
	dateLayout    = "2006-01-02"
	statsCacheTTL = 5 * time.Minute
)

// HabitService defines the interface for habit business logic. Every method
// takes the authenticated user's id; habits belonging to other users are
// reported as not found.
type HabitService interface {
	CreateHabit(userID string, req *models.CreateHabitRequest) (*models.HabitResponse, error)
	ListHabits(userID string) ([]*models.HabitResponse, error)
	DeleteHabit(habitID, userID string) error
	CreateLog(habitID, userID string, req *models.CreateHabitLogRequest) (*models.HabitLogResponse, error)
	ListLogs(habitID, userID string) ([]*models.HabitLogResponse, error)
	GetStats(habitID, userID string) (*models.HabitStatsResponse, error)
}

type habitService struct {
	habitRepo repository.HabitRepository
	logRepo   repository.HabitLogRepository
	cache     cache.Cache
	ctx       context.Context
}

// NewHabitService creates a new habit service. cacheClient may be nil; the
// service then computes stats on every request.
func NewHabitService(habitRepo repository.HabitRepository, logRepo repository.HabitLogRepository, cacheClient cache.Cache) HabitService {
	return &habitService{
		habitRepo: habitRepo,
		logRepo:   logRepo,
		cache:     cacheClient,
		ctx:       context.Background(),
	}
}

// ownedHabit resolves a habit for the requesting user. Absent and not-owned
// collapse to ErrNotFound so existence of other users' habits never leaks.
func (s *habitService) ownedHabit(habitID, userID string) (*entities.Habit, error) {
	habit, err := s.habitRepo.FindOwned(habitID, userID)
	if errors.Is(err, repository.ErrNoRows) || isInvalidID(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load habit: %w", err)
	}
	return habit, nil
}

// CreateHabit creates a new habit owned by the given user
func (s *habitService) CreateHabit(userID string, req *models.CreateHabitRequest) (*models.HabitResponse, error) {
	active := true
	if req.Active != nil {
		active = *req.Active
	}

	habit, err := s.habitRepo.Create(userID, req.Name, req.Description, active)
	if err != nil {
		return nil, fmt.Errorf("failed to create habit: %w", err)
	}

	return habitToResponse(habit), nil
}

// ListHabits lists all habits owned by the given user
func (s *habitService) ListHabits(userID string) ([]*models.HabitResponse, error) {
	habits, err := s.habitRepo.ListByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list habits: %w", err)
	}

	responses := make([]*models.HabitResponse, 0, len(habits))
	for _, habit := range habits {
		responses = append(responses, habitToResponse(habit))
	}
	return responses, nil
}

// DeleteHabit removes a habit (hard delete) if the user owns it
func (s *habitService) DeleteHabit(habitID, userID string) error {
	err := s.habitRepo.DeleteOwned(habitID, userID)
	if errors.Is(err, repository.ErrNoRows) || isInvalidID(err) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to delete habit: %w", err)
	}

	s.invalidateStats(habitID)
	return nil
}

// CreateLog records a completion for a habit on a calendar date.
// Rejected when the date is in the future or already logged for that habit.
func (s *habitService) CreateLog(habitID, userID string, req *models.CreateHabitLogRequest) (*models.HabitLogResponse, error) {
	habit, err := s.ownedHabit(habitID, userID)
	if err != nil {
		return nil, err
	}

	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return nil, ErrInvalidDate
	}

	// "Future" means after the server's local calendar date.
	if date.After(today()) {
		return nil, ErrFutureDate
	}

	// Fast-path check; the unique constraint on (habit_id, fecha) is the
	// authoritative guard against concurrent duplicates.
	exists, err := s.logRepo.ExistsForDate(habit.ID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing log: %w", err)
	}
	if exists {
		return nil, ErrDuplicateLog
	}

	completed := true
	if req.Completed != nil {
		completed = *req.Completed
	}

	logEntry, err := s.logRepo.Create(habit.ID, date, completed)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateLog
		}
		return nil, fmt.Errorf("failed to create habit log: %w", err)
	}

	s.invalidateStats(habit.ID)
	return logToResponse(logEntry), nil
}

// ListLogs lists all logs for a habit the user owns, most recent first
func (s *habitService) ListLogs(habitID, userID string) ([]*models.HabitLogResponse, error) {
	habit, err := s.ownedHabit(habitID, userID)
	if err != nil {
		return nil, err
	}

	logs, err := s.logRepo.ListByHabit(habit.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list habit logs: %w", err)
	}

	responses := make([]*models.HabitLogResponse, 0, len(logs))
	for _, logEntry := range logs {
		responses = append(responses, logToResponse(logEntry))
	}
	return responses, nil
}

// GetStats returns streak statistics for a habit the user owns
func (s *habitService) GetStats(habitID, userID string) (*models.HabitStatsResponse, error) {
	habit, err := s.ownedHabit(habitID, userID)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		var cached models.HabitStatsResponse
		if err := s.cache.GetJSON(s.ctx, statsCacheKey(habit.ID), &cached); err == nil {
			return &cached, nil
		}
	}

	logs, err := s.logRepo.ListCompleted(habit.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list habit logs: %w", err)
	}

	stats := ComputeHabitStats(habit.ID, logs)

	if s.cache != nil {
		if err := s.cache.SetJSON(s.ctx, statsCacheKey(habit.ID), stats, statsCacheTTL); err != nil {
			log.Printf("Warning: failed to cache stats for habit %s: %v", habit.ID, err)
		}
	}

	return stats, nil
}

func (s *habitService) invalidateStats(habitID string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(s.ctx, statsCacheKey(habitID)); err != nil {
		log.Printf("Warning: failed to invalidate stats cache for habit %s: %v", habitID, err)
	}
}

// isUniqueViolation reports whether err is a Postgres unique-constraint error,
// raised when a concurrent request slipped past the existence check.
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}

// isInvalidID reports whether err is Postgres rejecting a value that cannot be
// cast to uuid. A syntactically invalid habit id behaves like a missing one.
func isInvalidID(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "22P02"
}

func statsCacheKey(habitID string) string {
	return fmt.Sprintf("stats:habit:%s", habitID)
}

// today returns the server's local calendar date at UTC midnight, matching the
// normalization of parsed log dates.
func today() time.Time {
	y, m, d := time.Now().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func habitToResponse(habit *entities.Habit) *models.HabitResponse {
	return &models.HabitResponse{
		ID:          habit.ID,
		Name:        habit.Name,
		Description: habit.Description,
		Active:      habit.Active,
		CreatedAt:   habit.CreatedAt,
		UpdatedAt:   habit.UpdatedAt,
	}
}

func logToResponse(logEntry *entities.HabitLog) *models.HabitLogResponse {
	return &models.HabitLogResponse{
		ID:        logEntry.ID,
		HabitID:   logEntry.HabitID,
		Date:      logEntry.Date.Format(dateLayout),
		Completed: logEntry.Completed,
		CreatedAt: logEntry.CreatedAt,
	}
}
