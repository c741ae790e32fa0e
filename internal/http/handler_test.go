package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"task-board-system.com/task-board-system/internal/cache"
	dto "task-board-system.com/task-board-system/internal/data_models"
	model "task-board-system.com/task-board-system/internal/models"
	repository "task-board-system.com/task-board-system/internal/repositories"
	"task-board-system.com/task-board-system/internal/services"
)

func newTestServer(t *testing.T) (*echo.Echo, *gorm.DB) {
	db, err := gorm.Open(sqlite.Open(":memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	err = db.AutoMigrate(
		&model.User{},
		&model.Category{},
		&model.Column{},
		&model.Client{},
		&model.Task{},
	)
	if err != nil {
		t.Fatalf("failed to migrate database: %v", err)
	}
	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1)

	boardCache := cache.NewNoopBoardCache()
	taskRepo := repository.NewTaskRepository(db)
	columnRepo := repository.NewColumnRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	boardRepo := repository.NewBoardRepository(db)

	handler := NewHandler(
		services.NewTaskService(taskRepo, columnRepo, boardCache),
		services.NewBoardService(boardRepo, boardCache, time.Minute),
		services.NewCatalogService(categoryRepo, columnRepo),
		services.NewHealthService(db, "test"),
		"actor-1",
	)

	e := echo.New()
	Register(e, handler, 100000)
	return e, db
}

func doJSON(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func seedColumn(t *testing.T, db *gorm.DB, name, slug string) *model.Column {
	column := &model.Column{
		ID:        uuid.NewString(),
		Name:      name,
		Slug:      slug,
		ColorCode: "#6c757d",
		SortOrder: 1,
		IsActive:  true,
	}
	if err := db.Create(column).Error; err != nil {
		t.Fatalf("failed to create column: %v", err)
	}
	return column
}

func TestHandler_CreateTask(t *testing.T) {
	e, _ := newTestServer(t)

	rec := doJSON(e, http.MethodPost, "/tasks", `{"title":"A","priority":"normal"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var task dto.TaskResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &task); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if task.Version != 1 {
		t.Errorf("expected version 1, got %d", task.Version)
	}
	if task.CreatedBy == nil || *task.CreatedBy != "actor-1" {
		t.Error("expected attribution to the resolved actor")
	}
}

func TestHandler_CreateTaskValidation(t *testing.T) {
	e, _ := newTestServer(t)

	rec := doJSON(e, http.MethodPost, "/tasks", `{"priority":"normal"}`)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("missing title: expected 422, got %d", rec.Code)
	}

	rec = doJSON(e, http.MethodPost, "/tasks", `{"title":"A","priority":"critical"}`)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("bad priority: expected 422, got %d", rec.Code)
	}

	rec = doJSON(e, http.MethodPost, "/tasks", `{not json`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("bad JSON: expected 400, got %d", rec.Code)
	}
}

func TestHandler_UpdateConflict(t *testing.T) {
	e, _ := newTestServer(t)

	rec := doJSON(e, http.MethodPost, "/tasks", `{"title":"A"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("create failed: %d", rec.Code)
	}
	var task dto.TaskResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &task); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	rec = doJSON(e, http.MethodPut, "/tasks/"+task.ID, `{"priority":"high","version":1}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("guarded update: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = doJSON(e, http.MethodPut, "/tasks/"+task.ID, `{"priority":"low","version":1}`)
	if rec.Code != http.StatusConflict {
		t.Errorf("stale update: expected 409, got %d", rec.Code)
	}

	rec = doJSON(e, http.MethodGet, "/tasks/"+task.ID, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("get failed: %d", rec.Code)
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &task); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if task.Priority != "high" || task.Version != 2 {
		t.Errorf("stale update must not stick, got priority %s version %d", task.Priority, task.Version)
	}
}

func TestHandler_GetMissingTask(t *testing.T) {
	e, _ := newTestServer(t)

	rec := doJSON(e, http.MethodGet, "/tasks/"+uuid.NewString(), "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}

func TestHandler_MoveTask(t *testing.T) {
	e, db := newTestServer(t)
	column := seedColumn(t, db, "In Progress", "in-progress")

	rec := doJSON(e, http.MethodPost, "/tasks", `{"title":"A"}`)
	var task dto.TaskResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &task); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	rec = doJSON(e, http.MethodPost, "/tasks/"+task.ID+"/move",
		fmt.Sprintf(`{"column_id":%q}`, uuid.NewString()))
	if rec.Code != http.StatusNotFound {
		t.Errorf("missing column: expected 404, got %d", rec.Code)
	}

	rec = doJSON(e, http.MethodPost, "/tasks/"+task.ID+"/move",
		fmt.Sprintf(`{"column_id":%q}`, column.ID))
	if rec.Code != http.StatusOK {
		t.Fatalf("move: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var moved map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &moved); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if moved["new_column"] != "In Progress" {
		t.Errorf("expected new_column in response, got %v", moved)
	}
}

func TestHandler_DeleteTask(t *testing.T) {
	e, _ := newTestServer(t)

	rec := doJSON(e, http.MethodPost, "/tasks", `{"title":"A"}`)
	var task dto.TaskResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &task); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	rec = doJSON(e, http.MethodDelete, "/tasks/"+task.ID, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("delete: expected 200, got %d", rec.Code)
	}

	rec = doJSON(e, http.MethodGet, "/tasks/"+task.ID, "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("deleted task: expected 404, got %d", rec.Code)
	}

	// Idempotent: deleting again still succeeds.
	rec = doJSON(e, http.MethodDelete, "/tasks/"+task.ID, "")
	if rec.Code != http.StatusOK {
		t.Errorf("second delete: expected 200, got %d", rec.Code)
	}
}

func TestHandler_ListTasksValidation(t *testing.T) {
	e, _ := newTestServer(t)

	rec := doJSON(e, http.MethodGet, "/tasks?per_page=5000", "")
	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("per_page over limit: expected 422, got %d", rec.Code)
	}

	rec = doJSON(e, http.MethodGet, "/tasks?page=0", "")
	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("page zero: expected 422, got %d", rec.Code)
	}

	rec = doJSON(e, http.MethodGet, "/tasks", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("default paging: expected 200, got %d", rec.Code)
	}

	var list dto.TaskListResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &list); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if list.Page != 1 || list.PerPage != 100 {
		t.Errorf("expected default page 1, per_page 100, got %d, %d", list.Page, list.PerPage)
	}
}

func TestHandler_BoardAndCatalog(t *testing.T) {
	e, db := newTestServer(t)
	seedColumn(t, db, "Backlog", "backlog")

	rec := doJSON(e, http.MethodPost, "/tasks", `{"title":"A","priority":"urgent"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("create failed: %d", rec.Code)
	}

	rec = doJSON(e, http.MethodGet, "/board", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("board: expected 200, got %d", rec.Code)
	}
	var board dto.BoardResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &board); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if board.Statistics.TotalTasks != 1 || board.Statistics.UrgentTasks != 1 {
		t.Errorf("unexpected statistics: %+v", board.Statistics)
	}

	rec = doJSON(e, http.MethodGet, "/columns", "")
	if rec.Code != http.StatusOK {
		t.Errorf("columns: expected 200, got %d", rec.Code)
	}
	rec = doJSON(e, http.MethodGet, "/categories", "")
	if rec.Code != http.StatusOK {
		t.Errorf("categories: expected 200, got %d", rec.Code)
	}
}

func TestHandler_Health(t *testing.T) {
	e, _ := newTestServer(t)

	rec := doJSON(e, http.MethodGet, "/health", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("health: expected 200, got %d", rec.Code)
	}

	var health dto.HealthResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &health); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if health.Status != "healthy" || health.Database != "healthy" {
		t.Errorf("unexpected health payload: %+v", health)
	}
}
