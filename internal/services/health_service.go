package services

import (
	"context"
	"time"

	"gorm.io/gorm"

	dto "task-board-system.com/task-board-system/internal/data_models"
)

type HealthService struct {
	db      *gorm.DB
	version string
}

func NewHealthService(db *gorm.DB, version string) *HealthService {
	return &HealthService{db: db, version: version}
}

// Check reports the database state as part of the payload instead of
// failing the endpoint when the store is unreachable.
func (s *HealthService) Check(ctx context.Context) dto.HealthResponse {
	resp := dto.HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Database:  "healthy",
		Version:   s.version,
	}

	sqlDB, err := s.db.DB()
	if err == nil {
		err = sqlDB.PingContext(ctx)
	}
	if err != nil {
		resp.Status = "degraded"
		resp.Database = "unhealthy: " + err.Error()
	}

	return resp
}
