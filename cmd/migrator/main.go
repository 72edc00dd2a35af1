package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/spf13/pflag"
)

const (
	databaseURLFlag   = "database-url"
	migrationPathFlag = "migrations-path"
	downFlag          = "down"

	databaseURLEnv = "STOREFRONT_BACKEND_URL"
	pgxScheme      = "pgx5"
)

type flags struct {
	databaseURL    string
	migrationsPath string
	down           int
}

func main() {
	f := getFlagsValues()
	validateFlags(f)

	m := newMigrate(f)
	defer closeMigrate(m)

	if f.down > 0 {
		rollback(m, f.down)
		return
	}
	makeMigrations(m)
}

type MigrationLogger struct {
	logger  *slog.Logger
	verbose bool
}

func NewMigrationLogger() *MigrationLogger {
	return &MigrationLogger{
		logger:  slog.Default(),
		verbose: true,
	}
}

func (ml *MigrationLogger) Printf(format string, v ...any) {
	ml.logger.Info(strings.TrimSpace(fmt.Sprintf(format, v...)))
}

func (ml *MigrationLogger) Verbose() bool {
	return ml.verbose
}

func getFlagsValues() flags {
	databaseURL := pflag.StringP(databaseURLFlag, "d", os.Getenv(databaseURLEnv),
		"postgres url, defaults to $"+databaseURLEnv)
	migrationsPath := pflag.StringP(migrationPathFlag, "m", "migrations", "")
	down := pflag.Int(downFlag, 0, "roll back this many migrations")
	pflag.Parse()
	return flags{*databaseURL, *migrationsPath, *down}
}

func validateFlags(f flags) {
	var errs []error

	if f.databaseURL == "" {
		errs = append(errs, fmt.Errorf("--%s flag: required", databaseURLFlag))
	}

	if f.migrationsPath == "" {
		errs = append(errs, fmt.Errorf("--%s flag: required", migrationPathFlag))
	}

	if f.down < 0 {
		errs = append(errs, fmt.Errorf("--%s flag: must not be negative", downFlag))
	}

	if len(errs) != 0 {
		slog.Error("invalid args", "err", errors.Join(errs...))
		fallDown()
	}
}

// pgxURL switches a postgres url to the scheme of the pgx/v5 driver.
func pgxURL(databaseURL string) string {
	_, rest, ok := strings.Cut(databaseURL, "://")
	if !ok {
		return pgxScheme + "://" + databaseURL
	}
	return pgxScheme + "://" + rest
}

func newMigrate(f flags) *migrate.Migrate {
	m, err := migrate.New(
		fmt.Sprintf("file://%s", f.migrationsPath),
		pgxURL(f.databaseURL),
	)
	if err != nil {
		slog.Error("failed to migrate", "err", err)
		fallDown()
	}

	m.Log = NewMigrationLogger()
	return m
}

func makeMigrations(m *migrate.Migrate) {
	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			m.Log.Printf("no migrations to apply")
			return
		}
		slog.Error("failed to migrate", "err", err)
		fallDown()
	}
	m.Log.Printf("migration applied\n")
}

func rollback(m *migrate.Migrate, steps int) {
	if err := m.Steps(-steps); err != nil {
		slog.Error("failed to roll back", "steps", steps, "err", err)
		fallDown()
	}
	m.Log.Printf("rolled back %d migrations", steps)
}

func closeMigrate(m *migrate.Migrate) {
	srcErr, dbErr := m.Close()
	if err := errors.Join(srcErr, dbErr); err != nil {
		slog.Error("failed to close migrate", "err", err)
	}
}

func fallDown() {
	os.Exit(2)
}
