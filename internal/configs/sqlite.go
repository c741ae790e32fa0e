package config

import (
	log "github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	model "task-board-system.com/task-board-system/internal/models"
)

func NewDatabaseClient(dsn string) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("db open failed: %v", err)
	}

	if err := db.AutoMigrate(
		&model.User{},
		&model.Category{},
		&model.Column{},
		&model.Client{},
		&model.Task{},
	); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	return db
}
