package migrate

import (
	"errors"
	"fmt"
	"log"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/mysql"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"gorm.io/gorm"

	"aquaria-partner-portal/migrations"
)

// Source returns the embedded migrations for driver.
func Source(driver string) (source.Driver, error) {
	switch driver {
	case "mysql", "postgres":
		return iofs.New(migrations.FS, driver)
	}
	return nil, fmt.Errorf("no migrations for driver %q", driver)
}

// RunMigrations applies every pending up migration on the database behind db.
func RunMigrations(db *gorm.DB, driver string) error {
	src, err := Source(driver)
	if err != nil {
		return err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB from gorm.DB: %w", err)
	}

	var target database.Driver
	switch driver {
	case "mysql":
		target, err = mysql.WithInstance(sqlDB, &mysql.Config{})
	case "postgres":
		target, err = postgres.WithInstance(sqlDB, &postgres.Config{})
	}
	if err != nil {
		return fmt.Errorf("creating %s driver: %w", driver, err)
	}

	m, err := migrate.NewWithInstance("iofs", src, driver, target)
	if err != nil {
		return fmt.Errorf("creating migrate instance: %w", err)
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("applying migrations: %w", err)
	}

	v, dirty, _ := m.Version()
	log.Printf("migrations applied (version=%d dirty=%v)", v, dirty)
	return nil
}
