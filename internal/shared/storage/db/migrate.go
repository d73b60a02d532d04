package db

import (
	"context"
	"database/sql"
	"embed"

	"github.com/pressly/goose/v3"
)

// The analyses schema ships inside the binary so the API and the
// migrate command apply the same migrations without a files-on-disk
// deployment step.
//
//go:embed migrations/*.sql
var analysesMigrations embed.FS

// RunMigrations brings the analyses schema up to date via goose. A nil
// database is a no-op: the router falls back to the in-memory repo and
// has nothing to migrate.
func RunMigrations(ctx context.Context, database *sql.DB) error {
	if database == nil {
		return nil
	}
	goose.SetBaseFS(analysesMigrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	return goose.UpContext(ctx, database, "migrations")
}
