package main

import (
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"storefront-admin/internal/config"
	"storefront-admin/internal/db"
)

func main() {
	mode := flag.String("mode", "up", "migration mode: up or down")
	dir := flag.String("dir", "./migrations", "migrations directory")
	flag.Parse()

	cfg := config.LoadConfig()

	database, err := db.NewDatabase(cfg)
	if err != nil {
		log.Fatalf("failed to connect db: %v", err)
	}
	defer database.Close()

	if err := run(database, *mode, *dir); err != nil {
		log.Fatal(err)
	}
}

func run(database *sql.DB, mode, migrationsDir string) error {
	_, err := database.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version TEXT PRIMARY KEY,
			applied_at TIMESTAMP NOT NULL DEFAULT NOW()
		);
	`)
	if err != nil {
		return fmt.Errorf("failed to ensure schema_migrations table: %w", err)
	}

	files, err := filepath.Glob(filepath.Join(migrationsDir, "*.sql"))
	if err != nil {
		return fmt.Errorf("failed to read migrations: %w", err)
	}
	sort.Strings(files)

	switch mode {
	case "up":
		return migrateUp(database, files)
	case "down":
		return migrateDown(database, files)
	default:
		return fmt.Errorf("unknown mode: %s (use 'up' or 'down')", mode)
	}
}

func migrateUp(database *sql.DB, files []string) error {
	for _, file := range files {
		version := filepath.Base(file)

		var exists bool
		err := database.QueryRow(`SELECT EXISTS(SELECT 1 FROM schema_migrations WHERE version = $1)`, version).Scan(&exists)
		if err != nil {
			return fmt.Errorf("failed to check migration status: %w", err)
		}
		if exists {
			fmt.Printf("skipping already applied migration: %s\n", version)
			continue
		}

		content, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", file, err)
		}

		fmt.Printf("applying migration: %s\n", version)
		if _, err := database.Exec(migrationPart(string(content), "Up")); err != nil {
			return fmt.Errorf("migration failed (%s): %w", version, err)
		}

		if _, err := database.Exec(`INSERT INTO schema_migrations (version) VALUES ($1)`, version); err != nil {
			return fmt.Errorf("failed to record migration version: %w", err)
		}
	}
	fmt.Println("all new migrations applied")
	return nil
}

func migrateDown(database *sql.DB, files []string) error {
	var lastVersion string
	err := database.QueryRow(`SELECT version FROM schema_migrations ORDER BY applied_at DESC LIMIT 1`).Scan(&lastVersion)
	if err == sql.ErrNoRows {
		fmt.Println("no migrations to roll back")
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to get last applied migration: %w", err)
	}

	filePath := ""
	for _, f := range files {
		if filepath.Base(f) == lastVersion {
			filePath = f
			break
		}
	}
	if filePath == "" {
		return fmt.Errorf("migration file not found for version: %s", lastVersion)
	}

	content, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", filePath, err)
	}

	fmt.Printf("rolling back migration: %s\n", lastVersion)
	if _, err := database.Exec(migrationPart(string(content), "Down")); err != nil {
		return fmt.Errorf("rollback failed (%s): %w", filePath, err)
	}

	if _, err := database.Exec(`DELETE FROM schema_migrations WHERE version = $1`, lastVersion); err != nil {
		return fmt.Errorf("failed to remove migration record: %w", err)
	}

	fmt.Println("rollback successful")
	return nil
}

// migrationPart pulls the statements between "-- +migrate <section>" markers.
func migrationPart(content, section string) string {
	lines := strings.Split(content, "\n")
	var part strings.Builder
	var inPart bool

	for _, line := range lines {
		if strings.Contains(line, "-- +migrate "+section) {
			inPart = true
			continue
		}
		if inPart && strings.HasPrefix(line, "-- +migrate") {
			break
		}
		if inPart {
			part.WriteString(line + "\n")
		}
	}
	return part.String()
}
