package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"

	"habits-be/internal/entities"
	"habits-be/internal/middleware"
	"habits-be/internal/repository"
	"habits-be/internal/repository/mocks"
	"habits-be/internal/service"
)

type habitRouterFixture struct {
	router    *gin.Engine
	habitRepo *mocks.MockHabitRepository
	logRepo   *mocks.MockHabitLogRepository
}

// setupHabitRouter wires a real habit service over mocked repositories, with a
// stub middleware standing in for JWT auth.
func setupHabitRouter(t *testing.T, userID string) *habitRouterFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	f := &habitRouterFixture{
		habitRepo: mocks.NewMockHabitRepository(ctrl),
		logRepo:   mocks.NewMockHabitLogRepository(ctrl),
	}

	habitController := NewHabitController(service.NewHabitService(f.habitRepo, f.logRepo, nil))

	f.router = gin.New()
	authed := f.router.Group("/api/v1", func(c *gin.Context) {
		c.Set(middleware.ContextUserIDKey, userID)
		c.Next()
	})
	authed.POST("/habitos", habitController.CreateHabit)
	authed.GET("/habitos", habitController.ListHabits)
	authed.DELETE("/habitos/:id", habitController.DeleteHabit)
	authed.POST("/habitos/:id/logs", habitController.CreateLog)
	authed.GET("/habitos/:id/logs", habitController.ListLogs)
	authed.GET("/habitos/:id/stats", habitController.GetStats)

	return f
}

func (f *habitRouterFixture) do(method, path string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		data, _ := json.Marshal(body)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func TestCreateLogFutureDateReturns400(t *testing.T) {
	f := setupHabitRouter(t, "user-1")
	f.habitRepo.EXPECT().FindOwned("habit-1", "user-1").Return(&entities.Habit{
		ID:     "habit-1",
		UserID: "user-1",
		Name:   "leer 20 minutos",
	}, nil)

	tomorrow := time.Now().AddDate(0, 0, 1).Format("2006-01-02")
	w := f.do(http.MethodPost, "/api/v1/habitos/habit-1/logs", gin.H{"fecha": tomorrow})

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d (body %s)", w.Code, http.StatusBadRequest, w.Body.String())
	}
}

func TestCreateLogDuplicateDateReturns409(t *testing.T) {
	f := setupHabitRouter(t, "user-1")
	f.habitRepo.EXPECT().FindOwned("habit-1", "user-1").Return(&entities.Habit{
		ID:     "habit-1",
		UserID: "user-1",
	}, nil)
	f.logRepo.EXPECT().ExistsForDate("habit-1", gomock.Any()).Return(true, nil)

	w := f.do(http.MethodPost, "/api/v1/habitos/habit-1/logs", gin.H{"fecha": "2024-01-10"})

	if w.Code != http.StatusConflict {
		t.Errorf("status = %d, want %d (body %s)", w.Code, http.StatusConflict, w.Body.String())
	}
}

func TestCreateLogReturns201(t *testing.T) {
	f := setupHabitRouter(t, "user-1")
	date, _ := time.Parse("2006-01-02", "2024-01-10")

	f.habitRepo.EXPECT().FindOwned("habit-1", "user-1").Return(&entities.Habit{
		ID:     "habit-1",
		UserID: "user-1",
	}, nil)
	f.logRepo.EXPECT().ExistsForDate("habit-1", date).Return(false, nil)
	f.logRepo.EXPECT().Create("habit-1", date, false).Return(&entities.HabitLog{
		ID:        "log-1",
		HabitID:   "habit-1",
		Date:      date,
		Completed: false,
	}, nil)

	w := f.do(http.MethodPost, "/api/v1/habitos/habit-1/logs", gin.H{
		"fecha":      "2024-01-10",
		"completado": false,
	})

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d (body %s)", w.Code, http.StatusCreated, w.Body.String())
	}

	var resp map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp["fecha"] != "2024-01-10" {
		t.Errorf("fecha = %v, want %q", resp["fecha"], "2024-01-10")
	}
	if resp["completado"] != false {
		t.Errorf("completado = %v, want false", resp["completado"])
	}
}

func TestStatsWireFormat(t *testing.T) {
	f := setupHabitRouter(t, "user-1")
	date, _ := time.Parse("2006-01-02", "2024-01-10")

	f.habitRepo.EXPECT().FindOwned("habit-1", "user-1").Return(&entities.Habit{
		ID:     "habit-1",
		UserID: "user-1",
	}, nil)
	f.logRepo.EXPECT().ListCompleted("habit-1").Return([]*entities.HabitLog{
		{HabitID: "habit-1", Date: date, Completed: true},
		{HabitID: "habit-1", Date: date.AddDate(0, 0, -1), Completed: true},
		{HabitID: "habit-1", Date: date.AddDate(0, 0, -3), Completed: true},
	}, nil)

	w := f.do(http.MethodGet, "/api/v1/habitos/habit-1/stats", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d (body %s)", w.Code, http.StatusOK, w.Body.String())
	}

	var resp map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	want := map[string]interface{}{
		"habit_id":                "habit-1",
		"total_registros":         float64(3),
		"dias_cumplidos":          float64(3),
		"racha_actual":            float64(2),
		"porcentaje_cumplimiento": float64(100),
	}
	for key, wantVal := range want {
		if resp[key] != wantVal {
			t.Errorf("%s = %v, want %v", key, resp[key], wantVal)
		}
	}
}

func TestListLogsReturnsDatesAsCalendarDays(t *testing.T) {
	f := setupHabitRouter(t, "user-1")
	date, _ := time.Parse("2006-01-02", "2024-01-10")

	f.habitRepo.EXPECT().FindOwned("habit-1", "user-1").Return(&entities.Habit{
		ID:     "habit-1",
		UserID: "user-1",
	}, nil)
	f.logRepo.EXPECT().ListByHabit("habit-1").Return([]*entities.HabitLog{
		{ID: "log-2", HabitID: "habit-1", Date: date, Completed: true},
		{ID: "log-1", HabitID: "habit-1", Date: date.AddDate(0, 0, -1), Completed: false},
	}, nil)

	w := f.do(http.MethodGet, "/api/v1/habitos/habit-1/logs", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d (body %s)", w.Code, http.StatusOK, w.Body.String())
	}

	var logs []map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &logs); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(logs) != 2 {
		t.Fatalf("len(logs) = %d, want 2", len(logs))
	}
	if logs[0]["fecha"] != "2024-01-10" || logs[1]["fecha"] != "2024-01-09" {
		t.Errorf("fechas = %v, %v, want 2024-01-10, 2024-01-09", logs[0]["fecha"], logs[1]["fecha"])
	}
}

func TestUnownedHabitLooksLikeMissingHabit(t *testing.T) {
	f := setupHabitRouter(t, "intruder")

	// Owned by someone else and plain nonexistent resolve the same way at
	// the repository, so the responses must be identical.
	f.habitRepo.EXPECT().FindOwned("habit-1", "intruder").Return(nil, repository.ErrNoRows)
	notOwned := f.do(http.MethodGet, "/api/v1/habitos/habit-1/stats", nil)

	f.habitRepo.EXPECT().FindOwned("ghost", "intruder").Return(nil, repository.ErrNoRows)
	missing := f.do(http.MethodGet, "/api/v1/habitos/ghost/stats", nil)

	if notOwned.Code != http.StatusNotFound || missing.Code != http.StatusNotFound {
		t.Fatalf("statuses = %d, %d, want both %d", notOwned.Code, missing.Code, http.StatusNotFound)
	}
	if !bytes.Equal(notOwned.Body.Bytes(), missing.Body.Bytes()) {
		t.Errorf("not-found bodies differ: %q vs %q", notOwned.Body.String(), missing.Body.String())
	}
}

func TestDeleteHabitNotOwnedReturns404(t *testing.T) {
	f := setupHabitRouter(t, "intruder")
	f.habitRepo.EXPECT().DeleteOwned("habit-1", "intruder").Return(repository.ErrNoRows)

	w := f.do(http.MethodDelete, "/api/v1/habitos/habit-1", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", w.Code, http.StatusNotFound)
	}
}

func TestDeleteHabitReturns204(t *testing.T) {
	f := setupHabitRouter(t, "user-1")
	f.habitRepo.EXPECT().DeleteOwned("habit-1", "user-1").Return(nil)

	w := f.do(http.MethodDelete, "/api/v1/habitos/habit-1", nil)
	if w.Code != http.StatusNoContent {
		t.Errorf("status = %d, want %d", w.Code, http.StatusNoContent)
	}
}

func TestCreateAndListHabits(t *testing.T) {
	f := setupHabitRouter(t, "user-1")

	desc := "20 minutos al día"
	f.habitRepo.EXPECT().
		Create("user-1", "leer", &desc, true).
		Return(&entities.Habit{
			ID:          "habit-1",
			UserID:      "user-1",
			Name:        "leer",
			Description: &desc,
			Active:      true,
		}, nil)

	created := f.do(http.MethodPost, "/api/v1/habitos", gin.H{
		"nombre":      "leer",
		"descripcion": desc,
	})
	if created.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d (body %s)", created.Code, http.StatusCreated, created.Body.String())
	}

	f.habitRepo.EXPECT().ListByUser("user-1").Return([]*entities.Habit{
		{ID: "habit-1", UserID: "user-1", Name: "leer", Description: &desc, Active: true},
	}, nil)

	listed := f.do(http.MethodGet, "/api/v1/habitos", nil)
	if listed.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", listed.Code, http.StatusOK)
	}

	var habits []map[string]interface{}
	if err := json.Unmarshal(listed.Body.Bytes(), &habits); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(habits) != 1 || habits[0]["nombre"] != "leer" {
		t.Errorf("habits = %+v, want one habit named %q", habits, "leer")
	}
}
