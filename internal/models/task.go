package model

import (
	"time"

	"task-board-system.com/task-board-system/internal/constants"
)

// Task is the central mutable entity. Version is the sole concurrency
// token: every successful update or move raises it by exactly one.
type Task struct {
	ID             string                 `gorm:"primaryKey;size:36" json:"id"`
	Title          string                 `gorm:"size:500;not null" json:"title"`
	Description    string                 `gorm:"type:text" json:"description"`
	CategoryID     *string                `gorm:"size:36;index" json:"category_id"`
	ColumnID       *string                `gorm:"size:36;index" json:"column_id"`
	ClientID       *string                `gorm:"size:36;index" json:"client_id"`
	Priority       constants.TaskPriority `gorm:"type:varchar(20);not null;default:normal" json:"priority"`
	Status         constants.TaskStatus   `gorm:"type:varchar(20);not null;default:active" json:"status"`
	DueDate        *time.Time             `gorm:"type:date" json:"due_date"`
	EstimatedHours *int                   `json:"estimated_hours"`
	ActualHours    *int                   `json:"actual_hours"`
	Metadata       map[string]any         `gorm:"serializer:json" json:"metadata"`
	AssignedTo     *string                `gorm:"size:36" json:"assigned_to"`
	Version        uint                   `gorm:"not null;default:1" json:"version"`
	IsDeleted      bool                   `gorm:"not null;default:false;index" json:"is_deleted"`
	CreatedAt      time.Time              `json:"created_at"`
	UpdatedAt      time.Time              `json:"updated_at"`
	CreatedBy      *string                `gorm:"size:36" json:"created_by"`
	UpdatedBy      *string                `gorm:"size:36" json:"updated_by"`

	Category *Category `gorm:"foreignKey:CategoryID" json:"-"`
	Column   *Column   `gorm:"foreignKey:ColumnID" json:"-"`
	Client   *Client   `gorm:"foreignKey:ClientID" json:"-"`
}
