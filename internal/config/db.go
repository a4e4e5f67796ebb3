package config

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"sync"
	"time"

	_ "github.com/go-sql-driver/mysql"
)

var (
	DB   *sql.DB
	dbMu sync.Mutex
)

// ConnectDB initializes the shared DB connection (idempotent).
func ConnectDB(env Env) *sql.DB {
	dbMu.Lock()
	defer dbMu.Unlock()
	return connectLocked(env)
}

func connectLocked(env Env) *sql.DB {
	if DB != nil {
		return DB
	}

	dsn := fmt.Sprintf("%s:%s@tcp(%s)/%s?parseTime=true&loc=UTC&charset=utf8mb4&timeout=5s&readTimeout=30s&writeTimeout=30s",
		env.DBUser,
		env.DBPass,
		env.DBHost,
		env.DBName,
	)

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		log.Fatalf("failed to open DB: %v", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(10 * time.Minute)
	db.SetConnMaxIdleTime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		log.Fatalf("failed to ping DB: %v", err)
	}

	DB = db
	return DB
}

// EnsureDB pings the shared connection, reconnecting when missing.
func EnsureDB(env Env) error {
	dbMu.Lock()
	defer dbMu.Unlock()

	if DB == nil {
		connectLocked(env)
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	return DB.PingContext(ctx)
}

func CloseDB() {
	dbMu.Lock()
	defer dbMu.Unlock()

	if DB != nil {
		_ = DB.Close()
		DB = nil
	}
}
