// Copyright (c) 2026 Minar. All rights reserved.

// Package migration brings the content schema to its latest version at
// startup by applying the versioned SQL pairs under data/migrations.
//
// # Architecture
//
// Built on golang-migrate with its pgx/v5 database driver and file source.
// cmd/api runs this once, before the router binds: the category, book,
// chapter, post, and audio tables must exist before the first request.
package migration

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	// Registers the "pgx5" database scheme.
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	// Registers the "file" source scheme for on-disk .sql pairs.
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

// RunUp applies every pending up migration found under dir.
//
// A dirty version — a previous run died mid-migration — aborts startup with
// an error: a half-applied schema needs an operator, not a retry loop.
func RunUp(dsn, dir string, logger *slog.Logger) error {
	migrator, err := migrate.New("file://"+dir, pgx5URL(dsn))
	if err != nil {
		return fmt.Errorf("migration: init: %w", err)
	}
	defer func() {
		srcErr, dbErr := migrator.Close()
		if srcErr != nil {
			logger.Error("migration_source_close_failed", slog.Any("error", srcErr))
		}
		if dbErr != nil {
			logger.Error("migration_db_close_failed", slog.Any("error", dbErr))
		}
	}()

	migrator.Log = &slogBridge{logger: logger}

	version, dirty, err := migrator.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("migration: read version: %w", err)
	}
	if dirty {
		return fmt.Errorf("migration: schema dirty at version %d, manual repair required", version)
	}

	if err := migrator.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			logger.Info("migration_schema_current", slog.Int("version", int(version)))
			return nil
		}
		return fmt.Errorf("migration: up: %w", err)
	}

	applied, _, _ := migrator.Version()
	logger.Info("migration_applied",
		slog.Int("from_version", int(version)),
		slog.Int("to_version", int(applied)),
	)

	return nil
}

// pgx5URL rewrites a postgres:// or postgresql:// DSN to the pgx5:// scheme
// golang-migrate registers for its pgx/v5 driver. Anything else passes
// through untouched.
func pgx5URL(dsn string) string {
	for _, scheme := range []string{"postgres://", "postgresql://"} {
		if rest, ok := strings.CutPrefix(dsn, scheme); ok {
			return "pgx5://" + rest
		}
	}
	return dsn
}

// slogBridge satisfies migrate.Logger on top of slog.
type slogBridge struct {
	logger *slog.Logger
}

func (bridge *slogBridge) Printf(format string, args ...any) {
	bridge.logger.Debug(strings.TrimSpace(fmt.Sprintf(format, args...)))
}

func (bridge *slogBridge) Verbose() bool { return false }
