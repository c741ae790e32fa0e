package services

import (
	"context"
	"encoding/json"
	"time"

	"task-board-system.com/task-board-system/internal/cache"
	"task-board-system.com/task-board-system/internal/constants"
	dto "task-board-system.com/task-board-system/internal/data_models"
	apperrors "task-board-system.com/task-board-system/internal/errors"
	model "task-board-system.com/task-board-system/internal/models"
	repository "task-board-system.com/task-board-system/internal/repositories"
)

type BoardService struct {
	repo       *repository.BoardRepository
	boardCache cache.BoardCache
	cacheTTL   time.Duration
}

func NewBoardService(
	repo *repository.BoardRepository,
	boardCache cache.BoardCache,
	cacheTTL time.Duration,
) *BoardService {
	return &BoardService{
		repo:       repo,
		boardCache: boardCache,
		cacheTTL:   cacheTTL,
	}
}

// BoardState returns the aggregated board view, serving the cached copy
// when one exists and filling the cache after a store read.
func (s *BoardService) BoardState(ctx context.Context) (*dto.BoardResponse, error) {
	if payload, err := s.boardCache.Get(ctx); err == nil {
		var board dto.BoardResponse
		if err := json.Unmarshal(payload, &board); err == nil {
			return &board, nil
		}
	}

	snap, err := s.repo.Snapshot(ctx)
	if err != nil {
		return nil, apperrors.ErrStoreUnavailable
	}

	board := AssembleBoard(snap.Columns, snap.Categories, snap.Tasks)

	if payload, err := json.Marshal(board); err == nil {
		_ = s.boardCache.Set(ctx, payload, s.cacheTTL)
	}

	return board, nil
}

// AssembleBoard builds the board view from one snapshot's rows. Pure so
// the grouping and statistics are testable without a store. Tasks whose
// column is missing or inactive count toward the statistics but appear
// in no partition.
func AssembleBoard(columns []model.Column, categories []model.Category, tasks []model.Task) *dto.BoardResponse {
	board := &dto.BoardResponse{
		Columns:    make([]dto.BoardColumn, 0, len(columns)),
		Categories: make([]dto.CategorySummary, 0, len(categories)),
	}

	for _, cat := range categories {
		board.Categories = append(board.Categories, dto.CategorySummary{
			ID:        cat.ID,
			Name:      cat.Name,
			Slug:      cat.Slug,
			ColorCode: cat.ColorCode,
			IconEmoji: cat.IconEmoji,
		})
	}

	stats := dto.BoardStatistics{TotalTasks: len(tasks)}
	for i := range tasks {
		switch tasks[i].Priority {
		case constants.PriorityUrgent:
			stats.UrgentTasks++
		case constants.PriorityHigh:
			stats.HighPriority++
		}
		if tasks[i].Status == constants.StatusCompleted {
			stats.CompletedTasks++
		}
	}
	board.Statistics = stats

	for _, col := range columns {
		boardCol := dto.BoardColumn{
			ID:        col.ID,
			Name:      col.Name,
			Slug:      col.Slug,
			ColorCode: col.ColorCode,
			Tasks:     []dto.BoardTask{},
		}

		// Fetch order is preserved within each partition.
		for i := range tasks {
			if tasks[i].ColumnID == nil || *tasks[i].ColumnID != col.ID {
				continue
			}
			boardCol.Tasks = append(boardCol.Tasks, newBoardTask(&tasks[i]))
		}

		boardCol.TaskCount = len(boardCol.Tasks)
		board.Columns = append(board.Columns, boardCol)
	}

	return board
}

func newBoardTask(t *model.Task) dto.BoardTask {
	task := dto.BoardTask{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		CategoryID:  t.CategoryID,
		Priority:    string(t.Priority),
		Status:      string(t.Status),
		DueDate:     dto.FormatDate(t.DueDate),
		Version:     t.Version,
	}

	if t.Category != nil {
		task.CategoryName = &t.Category.Name
		task.CategoryColor = &t.Category.ColorCode
	}
	if t.Client != nil {
		task.ClientName = &t.Client.Name
	}

	return task
}
