package services

import (
	"context"

	model "task-board-system.com/task-board-system/internal/models"
	repository "task-board-system.com/task-board-system/internal/repositories"
)

// CatalogService serves the read-only configuration entities the board
// frontend needs for its pickers.
type CatalogService struct {
	categoryRepo *repository.CategoryRepository
	columnRepo   *repository.ColumnRepository
}

func NewCatalogService(
	categoryRepo *repository.CategoryRepository,
	columnRepo *repository.ColumnRepository,
) *CatalogService {
	return &CatalogService{
		categoryRepo: categoryRepo,
		columnRepo:   columnRepo,
	}
}

func (s *CatalogService) ListCategories(ctx context.Context) ([]model.Category, error) {
	return s.categoryRepo.ListActive(ctx)
}

func (s *CatalogService) ListColumns(ctx context.Context) ([]model.Column, error) {
	return s.columnRepo.ListActive(ctx)
}
