package dto

import (
	"time"

	model "task-board-system.com/task-board-system/internal/models"
)

const dateLayout = "2006-01-02"

type CreateTaskRequest struct {
	Title          string         `json:"title" validate:"required,max=500"`
	Description    string         `json:"description"`
	CategoryID     *string        `json:"category_id" validate:"omitempty,uuid"`
	ColumnID       *string        `json:"column_id" validate:"omitempty,uuid"`
	ClientID       *string        `json:"client_id" validate:"omitempty,uuid"`
	Priority       string         `json:"priority" validate:"omitempty,oneof=urgent high normal low"`
	Status         string         `json:"status" validate:"omitempty,oneof=active completed cancelled"`
	DueDate        *string        `json:"due_date" validate:"omitempty,datetime=2006-01-02"`
	EstimatedHours *int           `json:"estimated_hours" validate:"omitempty,min=0"`
	Metadata       map[string]any `json:"metadata"`
	AssignedTo     *string        `json:"assigned_to" validate:"omitempty,uuid"`
}

// UpdateTaskRequest is a merge patch: nil fields are left untouched.
// Version is a precondition only, never a target value.
type UpdateTaskRequest struct {
	Title          *string        `json:"title" validate:"omitempty,max=500"`
	Description    *string        `json:"description"`
	CategoryID     *string        `json:"category_id" validate:"omitempty,uuid"`
	ColumnID       *string        `json:"column_id" validate:"omitempty,uuid"`
	ClientID       *string        `json:"client_id" validate:"omitempty,uuid"`
	Priority       *string        `json:"priority" validate:"omitempty,oneof=urgent high normal low"`
	Status         *string        `json:"status" validate:"omitempty,oneof=active completed cancelled"`
	DueDate        *string        `json:"due_date" validate:"omitempty,datetime=2006-01-02"`
	EstimatedHours *int           `json:"estimated_hours" validate:"omitempty,min=0"`
	ActualHours    *int           `json:"actual_hours" validate:"omitempty,min=0"`
	Metadata       map[string]any `json:"metadata"`
	AssignedTo     *string        `json:"assigned_to" validate:"omitempty,uuid"`
	Version        *uint          `json:"version"`
}

type MoveTaskRequest struct {
	ColumnID string `json:"column_id" validate:"required,uuid"`
}

type ListTasksQuery struct {
	ColumnID   string `query:"column_id" validate:"omitempty,uuid"`
	CategoryID string `query:"category_id" validate:"omitempty,uuid"`
	Priority   string `query:"priority" validate:"omitempty,oneof=urgent high normal low"`
	Page       int    `query:"page" validate:"min=1"`
	PerPage    int    `query:"per_page" validate:"min=1,max=1000"`
}

type TaskResponse struct {
	ID             string         `json:"id"`
	Title          string         `json:"title"`
	Description    string         `json:"description"`
	CategoryID     *string        `json:"category_id"`
	ColumnID       *string        `json:"column_id"`
	ClientID       *string        `json:"client_id"`
	Priority       string         `json:"priority"`
	Status         string         `json:"status"`
	DueDate        *string        `json:"due_date"`
	EstimatedHours *int           `json:"estimated_hours"`
	ActualHours    *int           `json:"actual_hours"`
	Metadata       map[string]any `json:"metadata"`
	AssignedTo     *string        `json:"assigned_to"`
	Version        uint           `json:"version"`
	IsDeleted      bool           `json:"is_deleted"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	CreatedBy      *string        `json:"created_by"`
	UpdatedBy      *string        `json:"updated_by"`

	CategoryName *string `json:"category_name"`
	ColumnName   *string `json:"column_name"`
	ClientName   *string `json:"client_name"`
}

type TaskListResponse struct {
	Tasks   []TaskResponse `json:"tasks"`
	Total   int64          `json:"total"`
	Page    int            `json:"page"`
	PerPage int            `json:"per_page"`
}

// NewTaskResponse projects a task and its preloaded relations into the
// denormalized response shape. Pure, so it is testable without a store.
func NewTaskResponse(t *model.Task) TaskResponse {
	resp := TaskResponse{
		ID:             t.ID,
		Title:          t.Title,
		Description:    t.Description,
		CategoryID:     t.CategoryID,
		ColumnID:       t.ColumnID,
		ClientID:       t.ClientID,
		Priority:       string(t.Priority),
		Status:         string(t.Status),
		DueDate:        FormatDate(t.DueDate),
		EstimatedHours: t.EstimatedHours,
		ActualHours:    t.ActualHours,
		Metadata:       t.Metadata,
		AssignedTo:     t.AssignedTo,
		Version:        t.Version,
		IsDeleted:      t.IsDeleted,
		CreatedAt:      t.CreatedAt,
		UpdatedAt:      t.UpdatedAt,
		CreatedBy:      t.CreatedBy,
		UpdatedBy:      t.UpdatedBy,
	}

	if t.Category != nil {
		resp.CategoryName = &t.Category.Name
	}
	if t.Column != nil {
		resp.ColumnName = &t.Column.Name
	}
	if t.Client != nil {
		resp.ClientName = &t.Client.Name
	}

	return resp
}

func FormatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(dateLayout)
	return &s
}

func ParseDate(s string) (time.Time, error) {
	return time.Parse(dateLayout, s)
}
