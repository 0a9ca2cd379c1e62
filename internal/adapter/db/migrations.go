package db

import (
	"context"
	"embed"
	"fmt"
	"path"
	"sort"
	"strings"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"besttodo/internal/config"
)

//go:embed migrations/mysql/*.sql migrations/postgres/*.sql
var migrationFiles embed.FS

// Tables names the two store tables.
type Tables struct {
	Tasks   string
	Folders string
}

func TablesFromConfig(conf *config.Config) Tables {
	return Tables{Tasks: conf.TasksTable, Folders: conf.FoldersTable}
}

// Migrate applies the embedded schema for the connected dialect. Every
// statement is idempotent, so it is safe on each start-up.
func Migrate(ctx context.Context, db *sqlx.DB, tables Tables) error {
	statements, err := migrationStatements(db.DriverName(), tables)
	if err != nil {
		return err
	}

	for _, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("apply migration: %w", err)
		}
	}

	zap.L().Info("store migrations applied", zap.String("driver", db.DriverName()), zap.Int("statements", len(statements)))
	return nil
}

func migrationStatements(driver string, tables Tables) ([]string, error) {
	dir := "migrations/mysql"
	if driver == config.DriverPostgres {
		dir = "migrations/postgres"
	}

	entries, err := migrationFiles.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("list migrations: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	replacer := strings.NewReplacer(
		"{{tasks_table}}", tables.Tasks,
		"{{folders_table}}", tables.Folders,
	)

	var statements []string
	for _, name := range names {
		content, err := migrationFiles.ReadFile(path.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("read migration %s: %w", name, err)
		}
		for _, stmt := range strings.Split(replacer.Replace(string(content)), ";") {
			stmt = strings.TrimSpace(stmt)
			if stmt != "" {
				statements = append(statements, stmt)
			}
		}
	}

	return statements, nil
}
