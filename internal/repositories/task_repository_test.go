package repository

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"task-board-system.com/task-board-system/internal/constants"
	model "task-board-system.com/task-board-system/internal/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}

	err = db.AutoMigrate(
		&model.User{},
		&model.Category{},
		&model.Column{},
		&model.Client{},
		&model.Task{},
	)
	if err != nil {
		t.Fatalf("failed to migrate database: %v", err)
	}

	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1)

	return db
}

func newTask(t *testing.T, repo *TaskRepository) *model.Task {
	task := &model.Task{
		ID:       uuid.NewString(),
		Title:    "T",
		Priority: constants.PriorityNormal,
		Status:   constants.StatusActive,
		Version:  1,
	}
	if err := repo.Create(context.Background(), task); err != nil {
		t.Fatalf("failed to create task: %v", err)
	}
	return task
}

func TestTaskRepository_UpdateVersionedConflict(t *testing.T) {
	repo := NewTaskRepository(setupTestDB(t))
	ctx := context.Background()
	task := newTask(t, repo)

	if err := repo.UpdateVersioned(ctx, task.ID, 1, map[string]interface{}{"title": "first"}); err != nil {
		t.Fatalf("first update failed: %v", err)
	}

	// Same precondition again: the version already moved to 2.
	err := repo.UpdateVersioned(ctx, task.ID, 1, map[string]interface{}{"title": "second"})
	if !errors.Is(err, ErrOptimisticLock) {
		t.Fatalf("expected optimistic lock error, got %v", err)
	}

	stored, err := repo.FindActiveByID(ctx, task.ID)
	if err != nil {
		t.Fatalf("failed to refetch: %v", err)
	}
	if stored.Title != "first" {
		t.Errorf("losing writer must not change the row, got %q", stored.Title)
	}
	if stored.Version != 2 {
		t.Errorf("expected version 2, got %d", stored.Version)
	}
}

func TestTaskRepository_ConcurrentVersionedUpdates(t *testing.T) {
	repo := NewTaskRepository(setupTestDB(t))
	ctx := context.Background()
	task := newTask(t, repo)

	const writers = 20
	var wg sync.WaitGroup
	wg.Add(writers)

	errs := make(chan error, writers)

	for i := 0; i < writers; i++ {
		go func() {
			defer wg.Done()

			// Re-read and retry on conflict, the way a client would.
			for attempt := 0; attempt < writers*4; attempt++ {
				current, err := repo.FindActiveByID(ctx, task.ID)
				if err != nil {
					errs <- err
					return
				}
				err = repo.UpdateVersioned(ctx, task.ID, current.Version, map[string]interface{}{
					"title": "raced",
				})
				if err == nil {
					return
				}
				if !errors.Is(err, ErrOptimisticLock) {
					errs <- err
					return
				}
			}
			errs <- errors.New("writer starved out of retries")
		}()
	}

	wg.Wait()
	close(errs)
	for err := range errs {
		t.Fatalf("concurrent update failed: %v", err)
	}

	stored, err := repo.FindActiveByID(ctx, task.ID)
	if err != nil {
		t.Fatalf("failed to refetch: %v", err)
	}
	if stored.Version != 1+writers {
		t.Errorf("expected version %d after %d successful updates, got %d", 1+writers, writers, stored.Version)
	}
}

func TestTaskRepository_UpdateVersionedSkipsDeleted(t *testing.T) {
	repo := NewTaskRepository(setupTestDB(t))
	ctx := context.Background()
	task := newTask(t, repo)

	if err := repo.SoftDelete(ctx, task.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	err := repo.UpdateVersioned(ctx, task.ID, 1, map[string]interface{}{"title": "zombie"})
	if !errors.Is(err, ErrOptimisticLock) {
		t.Fatalf("expected no row to match a deleted task, got %v", err)
	}
}
