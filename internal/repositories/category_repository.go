package repository

import (
	"context"

	"gorm.io/gorm"

	model "task-board-system.com/task-board-system/internal/models"
)

type CategoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) ListActive(ctx context.Context) ([]model.Category, error) {
	var categories []model.Category
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("sort_order asc").
		Find(&categories).Error
	return categories, err
}

func (r *CategoryRepository) FirstOrCreate(ctx context.Context, category *model.Category) error {
	return r.db.WithContext(ctx).
		Where("slug = ?", category.Slug).
		FirstOrCreate(category).Error
}
