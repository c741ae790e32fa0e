package repository

import (
	"context"

	"gorm.io/gorm"

	model "task-board-system.com/task-board-system/internal/models"
)

type ClientRepository struct {
	db *gorm.DB
}

func NewClientRepository(db *gorm.DB) *ClientRepository {
	return &ClientRepository{db: db}
}

func (r *ClientRepository) Create(ctx context.Context, client *model.Client) error {
	return r.db.WithContext(ctx).Create(client).Error
}

func (r *ClientRepository) FirstOrCreate(ctx context.Context, client *model.Client) error {
	return r.db.WithContext(ctx).
		Where("name = ?", client.Name).
		FirstOrCreate(client).Error
}
