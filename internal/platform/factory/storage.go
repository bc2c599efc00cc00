// Package factory arma los repositorios según el driver configurado.
package factory

import (
	"context"
	"database/sql"
	"fmt"

	mem "pet-care-companion/internal/adapters/storage/memory"
	pg "pet-care-companion/internal/adapters/storage/postgres"
	"pet-care-companion/internal/adapters/storage/sqlite"
	"pet-care-companion/internal/adapters/storage/sqlstore"
	"pet-care-companion/internal/config"
	"pet-care-companion/internal/domain/pets"
	"pet-care-companion/internal/domain/profile"
	"pet-care-companion/internal/domain/reports"
	"pet-care-companion/internal/domain/tasks"
	"pet-care-companion/internal/platform/logger"
)

// Repos es el conjunto de colecciones que comparten todas las vistas.
type Repos struct {
	Tasks   tasks.Repository
	Reports reports.Repository
	Pets    pets.Repository
	Profile profile.Repository
}

// Memory devuelve repos in-memory vacíos.
func Memory() Repos {
	return Repos{
		Tasks:   mem.NewTaskRepo(),
		Reports: mem.NewReportRepo(),
		Pets:    mem.NewPetRepo(),
		Profile: mem.NewProfileRepo(),
	}
}

// OpenStorage abre el backend de cfg.DBDriver. close libera la conexión (no-op en memoria).
func OpenStorage(ctx context.Context, cfg *config.Config, log logger.Logger) (Repos, func() error, error) {
	noop := func() error { return nil }

	var (
		db      *sql.DB
		dialect sqlstore.Dialect
		err     error
	)

	switch cfg.DBDriver {
	case config.DriverMemory:
		log.Info("storage ready", map[string]any{"driver": cfg.DBDriver})
		return Memory(), noop, nil

	case config.DriverPostgres:
		db, err = pg.Open(ctx, cfg.PostgresDSN)
		if err != nil {
			return Repos{}, noop, fmt.Errorf("open postgres: %w", err)
		}
		if err := pg.EnsureSchema(ctx, db); err != nil {
			_ = db.Close()
			return Repos{}, noop, err
		}
		dialect = sqlstore.Postgres

	case config.DriverSQLite:
		db, err = sqlite.Open(ctx, cfg.SQLitePath)
		if err != nil {
			return Repos{}, noop, fmt.Errorf("open sqlite: %w", err)
		}
		if err := sqlite.EnsureSchema(ctx, db); err != nil {
			_ = db.Close()
			return Repos{}, noop, err
		}
		dialect = sqlstore.SQLite

	default:
		return Repos{}, noop, fmt.Errorf("unsupported DB_DRIVER: %s", cfg.DBDriver)
	}

	store := sqlstore.New(db, dialect)
	log.Info("storage ready", map[string]any{"driver": cfg.DBDriver})

	return Repos{
		Tasks:   store.Tasks(),
		Reports: store.Reports(),
		Pets:    store.Pets(),
		Profile: store.Profile(),
	}, db.Close, nil
}
