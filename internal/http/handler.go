package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	dto "task-board-system.com/task-board-system/internal/data_models"
	apperrors "task-board-system.com/task-board-system/internal/errors"
	"task-board-system.com/task-board-system/internal/services"
)

type Handler struct {
	taskService    *services.TaskService
	boardService   *services.BoardService
	catalogService *services.CatalogService
	healthService  *services.HealthService

	// actorID is the attribution identity resolved at startup; there is
	// no per-request auth, so every mutation is credited to it.
	actorID string
}

func NewHandler(
	taskService *services.TaskService,
	boardService *services.BoardService,
	catalogService *services.CatalogService,
	healthService *services.HealthService,
	actorID string,
) *Handler {
	return &Handler{
		taskService:    taskService,
		boardService:   boardService,
		catalogService: catalogService,
		healthService:  healthService,
		actorID:        actorID,
	}
}

func (h *Handler) ListTasks(c echo.Context) error {
	query := dto.ListTasksQuery{Page: 1, PerPage: 100}
	if err := c.Bind(&query); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "invalid query parameters")
	}
	if err := c.Validate(&query); err != nil {
		return err
	}

	list, err := h.taskService.ListTasks(c.Request().Context(), &query)
	if err != nil {
		return serviceError(err)
	}

	return c.JSON(http.StatusOK, list)
}

func (h *Handler) GetTask(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "task id is required")
	}

	task, err := h.taskService.GetTask(c.Request().Context(), id)
	if err != nil {
		return serviceError(err)
	}

	return c.JSON(http.StatusOK, task)
}

func (h *Handler) CreateTask(c echo.Context) error {
	var req dto.CreateTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	task, err := h.taskService.CreateTask(c.Request().Context(), h.actorID, &req)
	if err != nil {
		return serviceError(err)
	}

	return c.JSON(http.StatusOK, task)
}

func (h *Handler) UpdateTask(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "task id is required")
	}

	var patch dto.UpdateTaskRequest
	if err := c.Bind(&patch); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := c.Validate(&patch); err != nil {
		return err
	}

	task, err := h.taskService.UpdateTask(c.Request().Context(), h.actorID, id, &patch)
	if err != nil {
		return serviceError(err)
	}

	return c.JSON(http.StatusOK, task)
}

func (h *Handler) DeleteTask(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "task id is required")
	}

	if err := h.taskService.DeleteTask(c.Request().Context(), id); err != nil {
		return serviceError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message": "Task deleted successfully",
	})
}

func (h *Handler) MoveTask(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "task id is required")
	}

	var req dto.MoveTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	column, err := h.taskService.MoveTask(c.Request().Context(), id, req.ColumnID)
	if err != nil {
		return serviceError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message":    "Task moved successfully",
		"new_column": column.Name,
	})
}

func (h *Handler) GetBoard(c echo.Context) error {
	board, err := h.boardService.BoardState(c.Request().Context())
	if err != nil {
		return serviceError(err)
	}

	return c.JSON(http.StatusOK, board)
}

func (h *Handler) ListCategories(c echo.Context) error {
	categories, err := h.catalogService.ListCategories(c.Request().Context())
	if err != nil {
		return serviceError(err)
	}

	return c.JSON(http.StatusOK, categories)
}

func (h *Handler) ListColumns(c echo.Context) error {
	columns, err := h.catalogService.ListColumns(c.Request().Context())
	if err != nil {
		return serviceError(err)
	}

	return c.JSON(http.StatusOK, columns)
}

func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, h.healthService.Check(c.Request().Context()))
}

func serviceError(err error) error {
	return echo.NewHTTPError(apperrors.StatusCode(err), err.Error())
}
