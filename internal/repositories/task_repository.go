package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	model "task-board-system.com/task-board-system/internal/models"
)

type TaskRepository struct {
	db *gorm.DB
}

// ErrOptimisticLock is returned when a conditional update matched no row,
// meaning the version moved (or the task vanished) between read and write.
var ErrOptimisticLock = errors.New("optimistic locking conflict")

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// TaskFilter narrows List results; empty fields are ignored and the
// remaining conditions are combined with AND.
type TaskFilter struct {
	ColumnID   string
	CategoryID string
	Priority   string
}

func (r *TaskRepository) Create(ctx context.Context, task *model.Task) error {
	return r.db.WithContext(ctx).Create(task).Error
}

// FindActiveByID resolves a non-deleted task with its relations loaded.
func (r *TaskRepository) FindActiveByID(ctx context.Context, id string) (*model.Task, error) {
	var task model.Task
	err := withRelations(r.db.WithContext(ctx)).
		First(&task, "id = ? AND is_deleted = ?", id, false).Error
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// FindByID does not filter on the delete flag; the delete path uses it so
// soft-deleting twice keeps succeeding.
func (r *TaskRepository) FindByID(ctx context.Context, id string) (*model.Task, error) {
	var task model.Task
	err := r.db.WithContext(ctx).First(&task, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// List returns one page of non-deleted tasks ordered most recent first,
// together with the unpaginated match count.
func (r *TaskRepository) List(ctx context.Context, filter TaskFilter, page, perPage int) ([]model.Task, int64, error) {
	var total int64
	if err := r.listQuery(ctx, filter).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var tasks []model.Task
	err := withRelations(r.listQuery(ctx, filter)).
		Order("created_at desc").
		Offset((page - 1) * perPage).
		Limit(perPage).
		Find(&tasks).Error
	if err != nil {
		return nil, 0, err
	}

	return tasks, total, nil
}

func (r *TaskRepository) listQuery(ctx context.Context, filter TaskFilter) *gorm.DB {
	query := r.db.WithContext(ctx).Model(&model.Task{}).Where("is_deleted = ?", false)

	if filter.ColumnID != "" {
		query = query.Where("column_id = ?", filter.ColumnID)
	}
	if filter.CategoryID != "" {
		query = query.Where("category_id = ?", filter.CategoryID)
	}
	if filter.Priority != "" {
		query = query.Where("priority = ?", filter.Priority)
	}

	return query
}

// UpdateVersioned applies fields to a single task iff its stored version
// still equals the given one. The version check and the write are one
// conditional UPDATE, so there is no lost-update window between them.
func (r *TaskRepository) UpdateVersioned(ctx context.Context, id string, version uint, fields map[string]interface{}) error {
	updates := make(map[string]interface{}, len(fields)+1)
	for k, v := range fields {
		updates[k] = v
	}
	updates["version"] = gorm.Expr("version + 1")

	res := r.db.WithContext(ctx).Model(&model.Task{}).
		Where("id = ? AND version = ? AND is_deleted = ?", id, version, false).
		Updates(updates)

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrOptimisticLock
	}
	return nil
}

// MoveToColumn reassigns the column reference and bumps the version in a
// single UPDATE. Moves carry no version precondition.
func (r *TaskRepository) MoveToColumn(ctx context.Context, id, columnID string) error {
	res := r.db.WithContext(ctx).Model(&model.Task{}).
		Where("id = ? AND is_deleted = ?", id, false).
		Updates(map[string]interface{}{
			"column_id": columnID,
			"version":   gorm.Expr("version + 1"),
		})

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// SoftDelete flags the task without touching its version. The row is
// located regardless of its current flag state.
func (r *TaskRepository) SoftDelete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Model(&model.Task{}).
		Where("id = ?", id).
		Update("is_deleted", true)

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func withRelations(query *gorm.DB) *gorm.DB {
	return query.Preload("Category").Preload("Column").Preload("Client")
}
