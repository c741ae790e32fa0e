package cmd

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"task-board-system.com/task-board-system/internal/cache"
	config "task-board-system.com/task-board-system/internal/configs"
	httpapi "task-board-system.com/task-board-system/internal/http"
	repository "task-board-system.com/task-board-system/internal/repositories"
	"task-board-system.com/task-board-system/internal/services"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long:  "Starts the task board HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := godotenv.Load(); err != nil {
			log.Println(".env file not found, using environment variables")
		}

		cfg := config.Load()
		database := config.NewDatabaseClient(cfg.DatabaseDSN)

		var boardCache cache.BoardCache = cache.NewNoopBoardCache()
		if cfg.BoardCacheEnabled {
			redisClient := config.NewRedisClient(cfg.RedisAddr)
			defer redisClient.Close()
			boardCache = cache.NewRedisBoardCache(redisClient, cfg.BoardCacheKey)
		}

		taskRepo := repository.NewTaskRepository(database)
		columnRepo := repository.NewColumnRepository(database)
		categoryRepo := repository.NewCategoryRepository(database)
		boardRepo := repository.NewBoardRepository(database)
		userRepo := repository.NewUserRepository(database)

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		// The boundary resolves the attribution identity once; services
		// only ever see an explicit actor id.
		actor, err := userRepo.EnsureDefault(ctx, cfg.DefaultUserEmail, cfg.DefaultUserName)
		if err != nil {
			log.Fatalf("failed to resolve default user: %v", err)
		}

		taskService := services.NewTaskService(taskRepo, columnRepo, boardCache)
		boardService := services.NewBoardService(
			boardRepo,
			boardCache,
			time.Duration(cfg.BoardCacheTTLSeconds)*time.Second,
		)
		catalogService := services.NewCatalogService(categoryRepo, columnRepo)
		healthService := services.NewHealthService(database, config.Version)

		e := echo.New()
		handler := httpapi.NewHandler(taskService, boardService, catalogService, healthService, actor.ID)
		httpapi.Register(e, handler, cfg.RateLimit)

		go func() {
			log.Printf("HTTP server listening on %s", cfg.AppURL)
			if err := e.Start(cfg.AppURL); err != nil {
				log.Printf("server stopped: %v", err)
			}
		}()

		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(
			context.Background(),
			time.Duration(cfg.ShutdownTimeoutSeconds)*time.Second,
		)
		defer cancel()
		_ = e.Shutdown(shutdownCtx)

		log.Println("HTTP server shut down gracefully")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
