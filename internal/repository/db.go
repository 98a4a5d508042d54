package repository

import (
	"context"
	"database/sql"
	"sync"
	"time"

	"github.com/go-sql-driver/mysql"
)

var (
	dbOnce sync.Once
	dbConn *sql.DB
	dbErr  error
)

// withClientFoundRows rewrites a DSN so the server reports matched rows
// instead of changed rows. Without it, rewriting a row with identical values
// yields RowsAffected == 0 and an existing task would be mistaken for a
// missing one.
func withClientFoundRows(dsn string) (string, error) {
	cfg, err := mysql.ParseDSN(dsn)
	if err != nil {
		return "", err
	}
	cfg.ClientFoundRows = true
	return cfg.FormatDSN(), nil
}

// Open returns the process-wide MySQL connection pool, creating it on first
// use. Concurrent first callers share a single initialization; subsequent
// calls return the same handle (and the same error, if the first attempt
// failed).
func Open(dsn string) (*sql.DB, error) {
	dbOnce.Do(func() {
		dsn, err := withClientFoundRows(dsn)
		if err != nil {
			dbErr = err
			return
		}

		db, err := sql.Open("mysql", dsn)
		if err != nil {
			dbErr = err
			return
		}

		db.SetMaxOpenConns(25)
		db.SetMaxIdleConns(5)
		db.SetConnMaxLifetime(5 * time.Minute)

		if err := db.Ping(); err != nil {
			dbErr = err
			return
		}

		dbConn = db
	})

	return dbConn, dbErr
}

// schema holds the DDL for the users, tasks and projects tables.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		username VARCHAR(255) NOT NULL,
		email VARCHAR(255) NOT NULL,
		password_hash VARCHAR(255) NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
		UNIQUE KEY uq_users_email (email)
	)`,
	`CREATE TABLE IF NOT EXISTS tasks (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		task_id CHAR(36) NOT NULL,
		user_id BIGINT NOT NULL,
		title VARCHAR(300) NOT NULL,
		description TEXT NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
		UNIQUE KEY uq_tasks_task_id (task_id),
		KEY idx_tasks_user_id (user_id),
		CONSTRAINT fk_tasks_user FOREIGN KEY (user_id) REFERENCES users (id)
	)`,
	`CREATE TABLE IF NOT EXISTS projects (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		project_id CHAR(36) NOT NULL,
		user_id BIGINT NOT NULL,
		name VARCHAR(255) NOT NULL,
		description TEXT NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
		UNIQUE KEY uq_projects_project_id (project_id),
		KEY idx_projects_user_id (user_id),
		CONSTRAINT fk_projects_user FOREIGN KEY (user_id) REFERENCES users (id)
	)`,
}

// EnsureSchema creates the application tables if they do not exist.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	for _, ddl := range schema {
		if _, err := db.ExecContext(ctx, ddl); err != nil {
			return err
		}
	}
	return nil
}
