package commands

import (
	"fmt"
	"os"

	"github.com/prioriza/prioriza/internal/database"
)

// openDB connects to the database named by DATABASE_URL. The configure
// tool reads the connection string directly so it can run without the
// rest of the server's environment (gateway credentials, Redis, etc.).
func openDB() (*database.DB, error) {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}
	db, err := database.New(dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}

func closeDB(db *database.DB) {
	if err := db.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to close database: %v\n", err)
	}
}
