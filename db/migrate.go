package db

import (
	"log"
	"net/url"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/mongodb"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

// RunMigrations applies the migrations in db/migrations against the
// configured database. Currently this only maintains indexes.
func RunMigrations(mongoURI, dbName string) {
	u, err := url.Parse(mongoURI)
	if err != nil {
		log.Fatalf("invalid DB_URI: %v", err)
	}
	u.Path = "/" + dbName

	m, err := migrate.New("file://db/migrations", u.String())
	if err != nil {
		log.Fatalf("migration failed to start: %v", err)
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		log.Fatalf("could not run up migrations: %v", err)
	}

	log.Println("Migrations applied successfully")
}
