package postgres

import (
	"embed"
	"errors"
	"fmt"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	pgxmigrate "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"

	"github.com/jhoicas/Restaurante-api/pkg/logger"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

// Migrate lleva el esquema a la última versión embebida en migrations/ (NNN_nombre.up.sql / .down.sql).
// golang-migrate guarda la versión en schema_migrations y toma un advisory lock, así que
// varias instancias pueden arrancar a la vez. Devuelve la versión resultante.
func Migrate(pool *pgxpool.Pool, log *logger.Logger) (uint, error) {
	m, err := newMigrator(pool)
	if err != nil {
		return 0, err
	}
	defer m.Close()
	m.Log = migrateLogger{log: log.Component("migrate")}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return 0, fmt.Errorf("aplicar migraciones: %w", err)
	}
	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return 0, fmt.Errorf("leer versión: %w", err)
	}
	if dirty {
		return version, fmt.Errorf("esquema en versión %d marcado dirty", version)
	}
	return version, nil
}

func newMigrator(pool *pgxpool.Pool) (*migrate.Migrate, error) {
	src, err := iofs.New(migrationFiles, "migrations")
	if err != nil {
		return nil, fmt.Errorf("leer migraciones embebidas: %w", err)
	}
	// Cerrar este *sql.DB no cierra el pool.
	db := stdlib.OpenDBFromPool(pool)
	driver, err := pgxmigrate.WithInstance(db, &pgxmigrate.Config{})
	if err != nil {
		_ = src.Close()
		_ = db.Close()
		return nil, fmt.Errorf("driver de migraciones: %w", err)
	}
	m, err := migrate.NewWithInstance("iofs", src, "pgx5", driver)
	if err != nil {
		return nil, fmt.Errorf("crear migrador: %w", err)
	}
	return m, nil
}

// migrateLogger adapta logger.Logger a migrate.Logger.
type migrateLogger struct {
	log *logger.Logger
}

func (l migrateLogger) Printf(format string, v ...interface{}) {
	l.log.Info().Msg(strings.TrimSpace(fmt.Sprintf(format, v...)))
}

func (l migrateLogger) Verbose() bool { return false }
