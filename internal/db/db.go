package db

import (
	"fmt"
	"os"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/husan7006/davon-taxi-bot/internal/config"
)

type DB struct {
	Conn *sqlx.DB
}

func New(cfg *config.Config) (*DB, error) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName)

	dbConn, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("db.New: cannot connect to database: %w", err)
	}

	dbConn.SetMaxOpenConns(20)
	dbConn.SetMaxIdleConns(5)
	dbConn.SetConnMaxLifetime(60 * time.Minute)

	return &DB{Conn: dbConn}, nil
}

func (db *DB) Close() error {
	return db.Conn.Close()
}

// RunMigrations executes the given .sql files in order. Statements are
// expected to be idempotent (CREATE TABLE IF NOT EXISTS style).
func RunMigrations(conn *sqlx.DB, paths ...string) error {
	for _, path := range paths {
		script, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("db.RunMigrations: read %s: %w", path, err)
		}

		if _, err := conn.Exec(string(script)); err != nil {
			return fmt.Errorf("db.RunMigrations: exec %s: %w", path, err)
		}
	}

	return nil
}
