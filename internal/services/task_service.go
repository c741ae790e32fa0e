package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"task-board-system.com/task-board-system/internal/cache"
	"task-board-system.com/task-board-system/internal/constants"
	dto "task-board-system.com/task-board-system/internal/data_models"
	apperrors "task-board-system.com/task-board-system/internal/errors"
	model "task-board-system.com/task-board-system/internal/models"
	repository "task-board-system.com/task-board-system/internal/repositories"
)

type TaskService struct {
	repo       *repository.TaskRepository
	columnRepo *repository.ColumnRepository
	boardCache cache.BoardCache
}

func NewTaskService(
	repo *repository.TaskRepository,
	columnRepo *repository.ColumnRepository,
	boardCache cache.BoardCache,
) *TaskService {
	return &TaskService{
		repo:       repo,
		columnRepo: columnRepo,
		boardCache: boardCache,
	}
}

// CreateTask persists a new task at version 1, attributed to the actor
// the boundary resolved.
func (s *TaskService) CreateTask(ctx context.Context, actorID string, req *dto.CreateTaskRequest) (*dto.TaskResponse, error) {
	task := &model.Task{
		ID:             uuid.NewString(),
		Title:          req.Title,
		Description:    req.Description,
		CategoryID:     req.CategoryID,
		ColumnID:       req.ColumnID,
		ClientID:       req.ClientID,
		Priority:       constants.PriorityNormal,
		Status:         constants.StatusActive,
		EstimatedHours: req.EstimatedHours,
		Metadata:       req.Metadata,
		AssignedTo:     req.AssignedTo,
		Version:        1,
		CreatedBy:      &actorID,
		UpdatedBy:      &actorID,
	}

	if req.Priority != "" {
		priority := constants.TaskPriority(req.Priority)
		if !constants.ValidPriority(priority) {
			return nil, apperrors.NewValidation("priority must be one of urgent, high, normal, low")
		}
		task.Priority = priority
	}
	if req.Status != "" {
		status := constants.TaskStatus(req.Status)
		if !constants.ValidStatus(status) {
			return nil, apperrors.NewValidation("status must be one of active, completed, cancelled")
		}
		task.Status = status
	}
	if req.DueDate != nil {
		due, err := dto.ParseDate(*req.DueDate)
		if err != nil {
			return nil, apperrors.NewValidation("due_date must be a YYYY-MM-DD date")
		}
		task.DueDate = &due
	}
	if task.Metadata == nil {
		task.Metadata = map[string]any{}
	}

	if err := s.repo.Create(ctx, task); err != nil {
		return nil, err
	}

	s.invalidateBoard(ctx)
	return s.reload(ctx, task.ID)
}

func (s *TaskService) GetTask(ctx context.Context, id string) (*dto.TaskResponse, error) {
	return s.reload(ctx, id)
}

func (s *TaskService) ListTasks(ctx context.Context, query *dto.ListTasksQuery) (*dto.TaskListResponse, error) {
	filter := repository.TaskFilter{
		ColumnID:   query.ColumnID,
		CategoryID: query.CategoryID,
		Priority:   query.Priority,
	}

	tasks, total, err := s.repo.List(ctx, filter, query.Page, query.PerPage)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.TaskResponse, 0, len(tasks))
	for i := range tasks {
		responses = append(responses, dto.NewTaskResponse(&tasks[i]))
	}

	return &dto.TaskListResponse{
		Tasks:   responses,
		Total:   total,
		Page:    query.Page,
		PerPage: query.PerPage,
	}, nil
}

// UpdateTask applies a merge patch under optimistic concurrency control.
// A supplied expected version that does not match the stored one fails
// with a conflict; the write itself is conditioned on the version read
// here, so a concurrent writer cannot slip in between.
func (s *TaskService) UpdateTask(ctx context.Context, actorID, id string, patch *dto.UpdateTaskRequest) (*dto.TaskResponse, error) {
	task, err := s.repo.FindActiveByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTaskNotFound
		}
		return nil, err
	}

	if patch.Version != nil && *patch.Version != task.Version {
		return nil, apperrors.ErrVersionConflict
	}

	fields, err := PatchFields(patch)
	if err != nil {
		return nil, err
	}
	fields["updated_by"] = actorID

	if err := s.repo.UpdateVersioned(ctx, id, task.Version, fields); err != nil {
		if errors.Is(err, repository.ErrOptimisticLock) {
			return nil, apperrors.ErrVersionConflict
		}
		return nil, err
	}

	s.invalidateBoard(ctx)
	return s.reload(ctx, id)
}

// MoveTask reassigns a task's column. The target column is verified
// first so a bad destination leaves the task, and its version, alone.
// Moves carry no actor: updated_by keeps pointing at the last edit.
func (s *TaskService) MoveTask(ctx context.Context, id, columnID string) (*model.Column, error) {
	if _, err := s.repo.FindActiveByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTaskNotFound
		}
		return nil, err
	}

	column, err := s.columnRepo.FindByID(ctx, columnID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrColumnNotFound
		}
		return nil, err
	}

	if err := s.repo.MoveToColumn(ctx, id, column.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTaskNotFound
		}
		return nil, err
	}

	s.invalidateBoard(ctx)
	return column, nil
}

func (s *TaskService) DeleteTask(ctx context.Context, id string) error {
	if err := s.repo.SoftDelete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrTaskNotFound
		}
		return err
	}

	s.invalidateBoard(ctx)
	return nil
}

func (s *TaskService) reload(ctx context.Context, id string) (*dto.TaskResponse, error) {
	task, err := s.repo.FindActiveByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTaskNotFound
		}
		return nil, err
	}

	resp := dto.NewTaskResponse(task)
	return &resp, nil
}

// Cache invalidation is best effort; a failed delete only means the
// board stays cached until its TTL runs out.
func (s *TaskService) invalidateBoard(ctx context.Context) {
	_ = s.boardCache.Invalidate(ctx)
}
