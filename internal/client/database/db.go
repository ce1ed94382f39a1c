// Package database opens the client's SQLite file and brings its schema up
// to date.
package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/storefront/internal/client/migrations"
	"github.com/dmitrijs2005/storefront/internal/filex"
	"github.com/dmitrijs2005/storefront/internal/logging"
	"github.com/pressly/goose/v3"

	_ "modernc.org/sqlite"
)

// gooseLogger routes goose output into the client logger at debug level.
type gooseLogger struct {
	log logging.Logger
}

func (g gooseLogger) Printf(format string, v ...any) {
	g.log.Debug(context.Background(), fmt.Sprintf(format, v...))
}

func (g gooseLogger) Fatalf(format string, v ...any) {
	g.log.Error(context.Background(), fmt.Sprintf(format, v...))
}

// RunMigrations applies every pending embedded migration. It is idempotent.
func RunMigrations(ctx context.Context, db *sql.DB, log logging.Logger) error {
	goose.SetBaseFS(migrations.Migrations)
	goose.SetLogger(gooseLogger{log: log})

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	if err := goose.UpContext(ctx, db, "."); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	return nil
}

// Open opens (creating it and its directory if needed) the SQLite database
// at dsn and migrates it.
// SQLite allows a single writer, so the pool is limited to one connection.
func Open(ctx context.Context, dsn string, log logging.Logger) (*sql.DB, error) {
	if _, err := filex.EnsureParentDir(dsn); err != nil {
		return nil, fmt.Errorf("failed to prepare database directory: %w", err)
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := RunMigrations(ctx, db, log); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}
