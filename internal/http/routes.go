package http

import (
	"time"

	"github.com/labstack/echo/v4"

	middleware "task-board-system.com/task-board-system/internal/http/middlewares"
	"task-board-system.com/task-board-system/internal/http/validators"
)

func Register(e *echo.Echo, h *Handler, rateLimitPerMinute int) {
	e.Validator = validators.New()
	e.Use(middleware.RateLimiter(rateLimitPerMinute, time.Minute))

	e.GET("/tasks", h.ListTasks)
	e.POST("/tasks", h.CreateTask)
	e.GET("/tasks/:id", h.GetTask)
	e.PUT("/tasks/:id", h.UpdateTask)
	e.DELETE("/tasks/:id", h.DeleteTask)
	e.POST("/tasks/:id/move", h.MoveTask)

	e.GET("/board", h.GetBoard)
	e.GET("/categories", h.ListCategories)
	e.GET("/columns", h.ListColumns)
	e.GET("/health", h.Health)
}
