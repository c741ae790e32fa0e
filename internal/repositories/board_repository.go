package repository

import (
	"context"

	"gorm.io/gorm"

	model "task-board-system.com/task-board-system/internal/models"
)

type BoardRepository struct {
	db *gorm.DB
}

func NewBoardRepository(db *gorm.DB) *BoardRepository {
	return &BoardRepository{db: db}
}

// BoardSnapshot holds the raw rows the board view is assembled from.
type BoardSnapshot struct {
	Columns    []model.Column
	Categories []model.Category
	Tasks      []model.Task
}

// Snapshot reads columns, categories and tasks inside one transaction so
// the statistics and the per-column partitions agree on a single logical
// point in time.
func (r *BoardRepository) Snapshot(ctx context.Context) (*BoardSnapshot, error) {
	var snap BoardSnapshot

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("is_active = ?", true).
			Order("sort_order asc").
			Find(&snap.Columns).Error; err != nil {
			return err
		}

		if err := tx.Where("is_active = ?", true).
			Order("sort_order asc").
			Find(&snap.Categories).Error; err != nil {
			return err
		}

		return withRelations(tx).
			Where("is_deleted = ?", false).
			Find(&snap.Tasks).Error
	})
	if err != nil {
		return nil, err
	}

	return &snap, nil
}
