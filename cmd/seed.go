package cmd

import (
	"context"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	config "task-board-system.com/task-board-system/internal/configs"
	model "task-board-system.com/task-board-system/internal/models"
	repository "task-board-system.com/task-board-system/internal/repositories"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert the default board configuration",
	Long:  "Creates the default categories, columns, clients and user when missing; safe to run repeatedly",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := godotenv.Load(); err != nil {
			log.Println(".env file not found, using environment variables")
		}

		cfg := config.Load()
		database := config.NewDatabaseClient(cfg.DatabaseDSN)

		categoryRepo := repository.NewCategoryRepository(database)
		columnRepo := repository.NewColumnRepository(database)
		clientRepo := repository.NewClientRepository(database)
		userRepo := repository.NewUserRepository(database)

		ctx := context.Background()

		user, err := userRepo.EnsureDefault(ctx, cfg.DefaultUserEmail, cfg.DefaultUserName)
		if err != nil {
			return err
		}

		categories := []model.Category{
			{Name: "Concrete", Slug: "concrete", ColorCode: "#FF6B6B", IconEmoji: "🏗️", SortOrder: 1},
			{Name: "Customer", Slug: "customer", ColorCode: "#4ECDC4", IconEmoji: "👥", SortOrder: 2},
			{Name: "Crew", Slug: "crew", ColorCode: "#45B7D1", IconEmoji: "👷", SortOrder: 3},
			{Name: "Personal", Slug: "personal", ColorCode: "#96CEB4", IconEmoji: "👤", SortOrder: 4},
		}
		for i := range categories {
			categories[i].ID = uuid.NewString()
			categories[i].IsActive = true
			if err := categoryRepo.FirstOrCreate(ctx, &categories[i]); err != nil {
				return err
			}
		}

		columns := []model.Column{
			{Name: "Backlog", Slug: "backlog", ColorCode: "#6c757d", SortOrder: 1},
			{Name: "This Week", Slug: "this-week", ColorCode: "#ffc107", SortOrder: 2},
			{Name: "In Progress", Slug: "in-progress", ColorCode: "#17a2b8", SortOrder: 3},
			{Name: "Done", Slug: "done", ColorCode: "#28a745", SortOrder: 4},
		}
		for i := range columns {
			columns[i].ID = uuid.NewString()
			columns[i].IsActive = true
			if err := columnRepo.FirstOrCreate(ctx, &columns[i]); err != nil {
				return err
			}
		}

		clients := []model.Client{
			{Name: "Victor"},
			{Name: "US Soccer"},
			{Name: "Jerry Solomon"},
		}
		for i := range clients {
			clients[i].ID = uuid.NewString()
			clients[i].IsActive = true
			clients[i].CreatedBy = &user.ID
			if err := clientRepo.FirstOrCreate(ctx, &clients[i]); err != nil {
				return err
			}
		}

		log.Printf("seeded %d categories, %d columns, %d clients, default user %s",
			len(categories), len(columns), len(clients), user.Email)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}
