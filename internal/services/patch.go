package services

import (
	"encoding/json"

	"task-board-system.com/task-board-system/internal/constants"
	dto "task-board-system.com/task-board-system/internal/data_models"
	apperrors "task-board-system.com/task-board-system/internal/errors"
)

// PatchFields translates a merge patch into the column assignments it
// carries. Nil fields produce no assignment, so anything the caller left
// out stays untouched. The version precondition is not part of the
// output; the repository owns the version column.
func PatchFields(patch *dto.UpdateTaskRequest) (map[string]interface{}, error) {
	fields := map[string]interface{}{}

	if patch.Title != nil {
		if *patch.Title == "" {
			return nil, apperrors.NewValidation("title must not be empty")
		}
		fields["title"] = *patch.Title
	}
	if patch.Description != nil {
		fields["description"] = *patch.Description
	}
	if patch.CategoryID != nil {
		fields["category_id"] = *patch.CategoryID
	}
	if patch.ColumnID != nil {
		fields["column_id"] = *patch.ColumnID
	}
	if patch.ClientID != nil {
		fields["client_id"] = *patch.ClientID
	}
	if patch.Priority != nil {
		priority := constants.TaskPriority(*patch.Priority)
		if !constants.ValidPriority(priority) {
			return nil, apperrors.NewValidation("priority must be one of urgent, high, normal, low")
		}
		fields["priority"] = priority
	}
	if patch.Status != nil {
		status := constants.TaskStatus(*patch.Status)
		if !constants.ValidStatus(status) {
			return nil, apperrors.NewValidation("status must be one of active, completed, cancelled")
		}
		fields["status"] = status
	}
	if patch.DueDate != nil {
		due, err := dto.ParseDate(*patch.DueDate)
		if err != nil {
			return nil, apperrors.NewValidation("due_date must be a YYYY-MM-DD date")
		}
		fields["due_date"] = due
	}
	if patch.EstimatedHours != nil {
		fields["estimated_hours"] = *patch.EstimatedHours
	}
	if patch.ActualHours != nil {
		fields["actual_hours"] = *patch.ActualHours
	}
	if patch.Metadata != nil {
		// Map-based Updates skips the column serializer, so the value
		// has to be marshalled here or the driver rejects the bind.
		payload, err := json.Marshal(patch.Metadata)
		if err != nil {
			return nil, apperrors.NewValidation("metadata must be JSON-serializable")
		}
		fields["metadata"] = string(payload)
	}
	if patch.AssignedTo != nil {
		fields["assigned_to"] = *patch.AssignedTo
	}

	return fields, nil
}
