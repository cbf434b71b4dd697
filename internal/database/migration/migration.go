package migration

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"
)

type migrationStep struct {
	Name string
	SQL  string
}

// sentinelTable is created by the last step, so a partially applied schema is migrated again.
const sentinelTable = "public.thumbnail_jobs"

var steps = []migrationStep{
	{
		Name: "create_table_users",
		SQL: `CREATE TABLE IF NOT EXISTS users (
  id            UUID        PRIMARY KEY,
  email         TEXT        NOT NULL,
  password_hash TEXT        NOT NULL,
  created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_unique_index_users_email",
		SQL:  `CREATE UNIQUE INDEX IF NOT EXISTS idx_users_email ON users (email);`,
	},
	{
		Name: "create_table_files",
		SQL: `CREATE TABLE IF NOT EXISTS files (
  seq        BIGSERIAL   NOT NULL UNIQUE,
  id         UUID        PRIMARY KEY,
  user_id    UUID        NOT NULL REFERENCES users (id),
  name       TEXT        NOT NULL,
  type       TEXT        NOT NULL CHECK (type IN ('folder', 'file', 'image')),
  is_public  BOOLEAN     NOT NULL DEFAULT false,
  parent_id  UUID        NULL,
  local_path TEXT        NULL,
  created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
  CHECK ((type = 'folder') = (local_path IS NULL))
);`,
	},
	{
		Name: "create_index_files_user_parent",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_files_user_parent ON files (user_id, parent_id, seq);`,
	},
	{
		Name: "create_table_thumbnail_jobs",
		SQL: `CREATE TABLE IF NOT EXISTS thumbnail_jobs (
  id         BIGSERIAL   PRIMARY KEY,
  user_id    UUID        NOT NULL,
  file_id    UUID        NOT NULL,
  status     TEXT        NOT NULL DEFAULT 'pending' CHECK (status IN ('pending', 'running', 'done', 'failed')),
  attempts   INT         NOT NULL DEFAULT 0,
  last_error TEXT        NULL,
  created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
  updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_thumbnail_jobs_pending",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_thumbnail_jobs_pending ON thumbnail_jobs (id) WHERE status = 'pending';`,
	},
	{
		Name: "create_index_thumbnail_jobs_running",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_thumbnail_jobs_running ON thumbnail_jobs (updated_at) WHERE status = 'running';`,
	},
}

// EnsureMigrated creates the users, files and thumbnail_jobs schema unless it already exists.
func EnsureMigrated(ctx context.Context, db *sql.DB, log *slog.Logger, dbHost string) error {
	start := time.Now()
	log = log.With("component", "database", "db_host", dbHost)

	log.Info("db_migration_check", "status", "starting")

	var exists bool
	query := fmt.Sprintf("SELECT to_regclass('%s') IS NOT NULL", sentinelTable)
	if err := db.QueryRowContext(ctx, query).Scan(&exists); err != nil {
		log.Error("db_migration_failed",
			"status", "error",
			"error_message", fmt.Sprintf("failed to check sentinel table: %v", err),
			"duration_ms", time.Since(start).Milliseconds(),
		)
		return fmt.Errorf("failed to check sentinel table: %w", err)
	}

	if exists {
		log.Info("db_migration_skip",
			"status", "success",
			"detail", "schema already exists, skipping migration",
			"duration_ms", time.Since(start).Milliseconds(),
		)
		return nil
	}

	log.Info("db_migration_start", "status", "in_progress")

	for _, step := range steps {
		stepStart := time.Now()
		if _, err := db.ExecContext(ctx, step.SQL); err != nil {
			log.Error("db_migration_failed",
				"status", "error",
				"migration_step", step.Name,
				"error_message", err.Error(),
				"duration_ms", time.Since(start).Milliseconds(),
				"step_duration_ms", time.Since(stepStart).Milliseconds(),
			)
			return fmt.Errorf("migration step %s failed: %w", step.Name, err)
		}

		log.Info("db_migration_step",
			"status", "success",
			"migration_step", step.Name,
			"step_duration_ms", time.Since(stepStart).Milliseconds(),
		)
	}

	log.Info("db_migration_success",
		"status", "success",
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return nil
}
