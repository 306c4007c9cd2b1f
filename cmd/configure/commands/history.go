package commands

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/prioriza/prioriza/internal/database"
	"github.com/spf13/cobra"
)

// NewHistoryCmd creates the history inspection command. It prints a
// user's classification history straight from the database, which is
// handy when debugging reports of missing or misordered records.
func NewHistoryCmd() *cobra.Command {
	var userID string
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Inspect a user's classification history",
		Long:  "Print a user's task classification and daily plan history directly from the database",
		RunE: func(cmd *cobra.Command, args []string) error {
			if userID == "" {
				return fmt.Errorf("--user-id is required")
			}
			uid, err := uuid.Parse(userID)
			if err != nil {
				return fmt.Errorf("invalid --user-id: %w", err)
			}

			db, err := openDB()
			if err != nil {
				return err
			}
			defer closeDB(db)

			ctx := context.Background()
			userRepo := database.NewUserRepository(db)
			taskRepo := database.NewTaskRepository(db)
			planRepo := database.NewDailyPlanRepository(db)

			user, err := userRepo.GetByID(ctx, uid)
			if err != nil {
				return fmt.Errorf("failed to look up user: %w", err)
			}
			fmt.Printf("User: %s (%s)\n", user.Email, user.ID)

			activityRepo := database.NewUserActivityRepository(db)
			if activity, err := activityRepo.GetByUserID(ctx, uid); err == nil && activity != nil {
				fmt.Printf("Last API interaction: %s\n", activity.LastAPIInteraction.Format("2006-01-02 15:04:05"))
			}

			total, err := taskRepo.CountByUserID(ctx, uid)
			if err != nil {
				return fmt.Errorf("failed to count tasks: %w", err)
			}

			tasks, err := taskRepo.ListByUserID(ctx, uid)
			if err != nil {
				return fmt.Errorf("failed to list tasks: %w", err)
			}
			fmt.Printf("\nTasks (%d total):\n", total)
			for i, t := range tasks {
				if limit > 0 && i >= limit {
					fmt.Printf("  ... %d more\n", len(tasks)-i)
					break
				}
				fmt.Printf("  [%s] (%s) %s\n", t.CreatedAt.Format("2006-01-02 15:04:05"), t.Category, t.Description)
			}

			plans, err := planRepo.ListByUserID(ctx, uid)
			if err != nil {
				return fmt.Errorf("failed to list daily plans: %w", err)
			}
			fmt.Printf("\nDaily plans (%d total):\n", len(plans))
			for i, p := range plans {
				if limit > 0 && i >= limit {
					fmt.Printf("  ... %d more\n", len(plans)-i)
					break
				}
				fmt.Printf("  [%s] %s\n", p.CreatedAt.Format("2006-01-02 15:04:05"), p.PlanText)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&userID, "user-id", "", "User ID (UUID) to inspect (required)")
	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum entries to print per section (0 for all)")

	return cmd
}
