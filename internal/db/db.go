// internal/db/db.go
package db

import (
    "database/sql"
    "embed"
    "log"

    _ "github.com/lib/pq"
    "github.com/pressly/goose/v3"

    "github.com/unclebandit/leadcapture-backend/internal/config"
)

//go:embed migrations/*.sql
var migrations embed.FS

var DB *sql.DB

func Init(cfg *config.Config) {
    dsn := cfg.DSN()

    log.Println("DB_USER:", cfg.DBUser)
    log.Println("DB_NAME:", cfg.DBName)
    log.Println("DB_HOST:", cfg.DBHost)

    var err error
    DB, err = sql.Open("postgres", dsn)
    if err != nil {
        log.Fatalf("failed to connect to DB: %v", err)
    }

    if err = DB.Ping(); err != nil {
        log.Fatalf("failed to ping DB: %v", err)
    }

    goose.SetBaseFS(migrations)
    if err := goose.SetDialect("postgres"); err != nil {
        log.Fatalf("failed to set goose dialect: %v", err)
    }
    if err := goose.Up(DB, "migrations"); err != nil {
        log.Fatalf("failed to run migrations: %v", err)
    }

    log.Println("✅ Connected to database")
}
