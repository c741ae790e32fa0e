package repository

import (
	"context"

	"gorm.io/gorm"

	model "task-board-system.com/task-board-system/internal/models"
)

type ColumnRepository struct {
	db *gorm.DB
}

func NewColumnRepository(db *gorm.DB) *ColumnRepository {
	return &ColumnRepository{db: db}
}

func (r *ColumnRepository) ListActive(ctx context.Context) ([]model.Column, error) {
	var columns []model.Column
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("sort_order asc").
		Find(&columns).Error
	return columns, err
}

func (r *ColumnRepository) FindByID(ctx context.Context, id string) (*model.Column, error) {
	var column model.Column
	err := r.db.WithContext(ctx).First(&column, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &column, nil
}

func (r *ColumnRepository) FirstOrCreate(ctx context.Context, column *model.Column) error {
	return r.db.WithContext(ctx).
		Where("slug = ?", column.Slug).
		FirstOrCreate(column).Error
}
