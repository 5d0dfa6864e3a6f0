package migrations

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/yigit/injurydesk/internal/db"
)

//go:embed sql/*.sql
var embedded embed.FS

// Files returns the bundled migration scripts
func Files() fs.FS {
	sub, err := fs.Sub(embedded, "sql")
	if err != nil {
		panic(err)
	}
	return sub
}

// Migration is one versioned SQL script
type Migration struct {
	Version string
	Name    string
	SQL     string
}

// Load reads every *.sql file of fsys, ordered by file name.
// The version is the file name prefix up to the first underscore ("001_init.sql" => "001").
func Load(fsys fs.FS) ([]Migration, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("failed to read migration directory: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".sql") {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)

	migrations := make([]Migration, 0, len(names))
	seen := make(map[string]string, len(names))
	for _, name := range names {
		version := strings.SplitN(name, "_", 2)[0]
		if prev, dup := seen[version]; dup {
			return nil, fmt.Errorf("migrations %s and %s share version %s", prev, name, version)
		}
		seen[version] = name

		content, err := fs.ReadFile(fsys, path.Clean(name))
		if err != nil {
			return nil, fmt.Errorf("failed to read migration file %s: %w", name, err)
		}
		migrations = append(migrations, Migration{Version: version, Name: name, SQL: string(content)})
	}
	return migrations, nil
}

// Migrator manages database migrations
type Migrator struct {
	db     *db.PostgresDB
	logger zerolog.Logger
}

// NewMigrator creates a new migrator
func NewMigrator(database *db.PostgresDB, logger zerolog.Logger) *Migrator {
	return &Migrator{db: database, logger: logger}
}

func (m *Migrator) ensureMigrationTableExists(ctx context.Context) error {
	_, err := m.db.Pool.Exec(ctx, `
	CREATE TABLE IF NOT EXISTS schema_migrations (
		version VARCHAR(255) PRIMARY KEY,
		applied_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);`)
	if err != nil {
		return fmt.Errorf("failed to create migration tracking table: %w", err)
	}
	return nil
}

func (m *Migrator) applied(ctx context.Context) (map[string]bool, error) {
	rows, err := m.db.Pool.Query(ctx, `SELECT version FROM schema_migrations`)
	if err != nil {
		return nil, fmt.Errorf("failed to check migration status: %w", err)
	}
	versions, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("failed to read migration status: %w", err)
	}

	done := make(map[string]bool, len(versions))
	for _, v := range versions {
		done[v] = true
	}
	return done, nil
}

// Migrate applies every migration of fsys that has not been recorded yet,
// each in its own transaction. It returns the number of scripts applied.
func (m *Migrator) Migrate(ctx context.Context, fsys fs.FS) (int, error) {
	migrations, err := Load(fsys)
	if err != nil {
		return 0, err
	}
	if err := m.ensureMigrationTableExists(ctx); err != nil {
		return 0, err
	}
	done, err := m.applied(ctx)
	if err != nil {
		return 0, err
	}

	count := 0
	for _, mig := range migrations {
		if done[mig.Version] {
			m.logger.Debug().Str("migration", mig.Name).Msg("Migration already applied, skipping")
			continue
		}

		err := m.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
			if _, err := tx.Exec(ctx, mig.SQL); err != nil {
				return fmt.Errorf("error occurred during SQL migration %s: %w", mig.Name, err)
			}
			if _, err := tx.Exec(ctx,
				`INSERT INTO schema_migrations (version, applied_at) VALUES ($1, $2)`,
				mig.Version, time.Now().UTC()); err != nil {
				return fmt.Errorf("failed to record migration %s: %w", mig.Name, err)
			}
			return nil
		})
		if err != nil {
			return count, err
		}

		count++
		m.logger.Info().Str("migration", mig.Name).Msg("Migration applied")
	}
	return count, nil
}
