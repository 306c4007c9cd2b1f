package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/prioriza/prioriza/internal/database"
	"github.com/prioriza/prioriza/internal/models"
	"github.com/prioriza/prioriza/internal/validation"
	"github.com/spf13/cobra"
)

// NewCorsCmd creates the CORS configuration command with list and set subcommands.
func NewCorsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cors",
		Short: "Manage CORS configuration",
		Long:  "List or update allowed CORS origins. Stored in database and picked up by the server without a restart.",
	}
	cmd.AddCommand(newCorsListCmd())
	cmd.AddCommand(newCorsSetCmd())
	return cmd
}

func newCorsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List current CORS configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := openDB()
			if err != nil {
				return err
			}
			defer closeDB(db)

			repo := database.NewCorsConfigRepository(db)
			c, err := repo.Get(context.Background())
			if err != nil {
				return fmt.Errorf("get CORS config: %w", err)
			}
			if c == nil {
				fmt.Println("No CORS configuration in database. Use 'cors set' to add one.")
				return nil
			}
			fmt.Println("CORS configuration:")
			for _, origin := range database.AllowedOriginsSlice(c.AllowedOrigins) {
				fmt.Printf("  Origin: %s\n", origin)
			}
			fmt.Printf("  Allow credentials: %t\n", c.AllowCredentials)
			fmt.Printf("  Max age: %d\n", c.MaxAge)
			return nil
		},
	}
}

func newCorsSetCmd() *cobra.Command {
	var origins string
	var allowCredentials bool
	var maxAge int

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Set CORS configuration",
		Long:  "Update allowed CORS origins (comma-separated). Stored in database.",
		RunE: func(cmd *cobra.Command, args []string) error {
			origins = strings.TrimSpace(origins)
			if origins == "" {
				return fmt.Errorf("--origins is required (comma-separated list of allowed origins)")
			}
			for _, origin := range database.AllowedOriginsSlice(origins) {
				if err := validation.ValidateOrigin(origin); err != nil {
					return fmt.Errorf("invalid origin: %w", err)
				}
			}

			db, err := openDB()
			if err != nil {
				return err
			}
			defer closeDB(db)

			repo := database.NewCorsConfigRepository(db)
			c := &models.CorsConfig{
				AllowedOrigins:   origins,
				AllowCredentials: allowCredentials,
				MaxAge:           maxAge,
			}
			if err := repo.Set(context.Background(), c); err != nil {
				return fmt.Errorf("set CORS config: %w", err)
			}
			fmt.Println("CORS configuration updated.")
			return nil
		},
	}

	cmd.Flags().StringVar(&origins, "origins", "", "Comma-separated list of allowed origins (required)")
	cmd.Flags().BoolVar(&allowCredentials, "allow-credentials", true, "Allow credentials in CORS requests")
	cmd.Flags().IntVar(&maxAge, "max-age", 300, "Preflight cache max age in seconds")
	return cmd
}
