package database

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

type DB struct {
	*sql.DB
}

func New(dbPath string) (*DB, error) {
	// Ensure directory exists
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	// Pragmas in the DSN apply to every pooled connection. Account deletion
	// relies on foreign key cascades.
	dsn := dbPath + "?_foreign_keys=on&_busy_timeout=5000&_journal_mode=WAL"
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &DB{db}, nil
}

func (db *DB) Migrate() error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS profiles (
			id TEXT PRIMARY KEY,
			email TEXT NOT NULL,
			full_name TEXT NOT NULL DEFAULT '',
			role TEXT NOT NULL DEFAULT 'job_seeker' CHECK (role IN ('job_seeker', 'employer')),
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,

		`CREATE TABLE IF NOT EXISTS cvs (
			id TEXT PRIMARY KEY,
			user_id TEXT NOT NULL UNIQUE,
			name TEXT NOT NULL,
			profession TEXT NOT NULL,
			city TEXT NOT NULL DEFAULT '',
			district TEXT NOT NULL DEFAULT '',
			experience_years INTEGER NOT NULL DEFAULT 0,
			education_level TEXT NOT NULL DEFAULT '',
			skills TEXT NOT NULL DEFAULT '[]',
			languages TEXT NOT NULL DEFAULT '[]',
			about TEXT NOT NULL DEFAULT '',
			salary_min INTEGER NOT NULL DEFAULT 0,
			salary_max INTEGER NOT NULL DEFAULT 0,
			work_type TEXT NOT NULL DEFAULT '',
			employment_type TEXT NOT NULL DEFAULT '',
			military_status TEXT NOT NULL DEFAULT '',
			driving_license INTEGER NOT NULL DEFAULT 0,
			can_travel INTEGER NOT NULL DEFAULT 0,
			is_disabled INTEGER NOT NULL DEFAULT 0,
			is_retired INTEGER NOT NULL DEFAULT 0,
			is_student INTEGER NOT NULL DEFAULT 0,
			is_active INTEGER NOT NULL DEFAULT 1,
			photo_url TEXT NOT NULL DEFAULT '',
			email TEXT NOT NULL DEFAULT '',
			phone TEXT NOT NULL DEFAULT '',
			views INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (user_id) REFERENCES profiles(id) ON DELETE CASCADE
		)`,

		`CREATE TABLE IF NOT EXISTS companies (
			id TEXT PRIMARY KEY,
			user_id TEXT NOT NULL UNIQUE,
			name TEXT NOT NULL,
			industry TEXT NOT NULL DEFAULT '',
			city TEXT NOT NULL DEFAULT '',
			size TEXT NOT NULL DEFAULT '',
			website TEXT NOT NULL DEFAULT '',
			description TEXT NOT NULL DEFAULT '',
			logo_url TEXT NOT NULL DEFAULT '',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (user_id) REFERENCES profiles(id) ON DELETE CASCADE
		)`,

		`CREATE TABLE IF NOT EXISTS contact_requests (
			id TEXT PRIMARY KEY,
			requester_id TEXT NOT NULL,
			target_user_id TEXT NOT NULL,
			cv_id TEXT NOT NULL,
			company_id TEXT NOT NULL DEFAULT '',
			message TEXT NOT NULL DEFAULT '',
			status TEXT NOT NULL DEFAULT 'pending' CHECK (status IN ('pending', 'approved', 'rejected', 'cancelled')),
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			responded_at DATETIME,
			FOREIGN KEY (requester_id) REFERENCES profiles(id) ON DELETE CASCADE,
			FOREIGN KEY (target_user_id) REFERENCES profiles(id) ON DELETE CASCADE,
			FOREIGN KEY (cv_id) REFERENCES cvs(id) ON DELETE CASCADE
		)`,

		`CREATE TABLE IF NOT EXISTS notifications (
			id TEXT PRIMARY KEY,
			user_id TEXT NOT NULL,
			type TEXT NOT NULL,
			title TEXT NOT NULL,
			message TEXT NOT NULL DEFAULT '',
			related_id TEXT NOT NULL DEFAULT '',
			is_read INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (user_id) REFERENCES profiles(id) ON DELETE CASCADE
		)`,

		`CREATE TABLE IF NOT EXISTS saved_cvs (
			user_id TEXT NOT NULL,
			cv_id TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			PRIMARY KEY (user_id, cv_id),
			FOREIGN KEY (user_id) REFERENCES profiles(id) ON DELETE CASCADE,
			FOREIGN KEY (cv_id) REFERENCES cvs(id) ON DELETE CASCADE
		)`,

		// At most one pending request per requester/target pair
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_contact_requests_pending_pair
			ON contact_requests(requester_id, target_user_id) WHERE status = 'pending'`,
		`CREATE INDEX IF NOT EXISTS idx_contact_requests_target ON contact_requests(target_user_id, status)`,
		`CREATE INDEX IF NOT EXISTS idx_contact_requests_requester ON contact_requests(requester_id, status)`,
		`CREATE INDEX IF NOT EXISTS idx_notifications_user ON notifications(user_id, created_at)`,
		`CREATE INDEX IF NOT EXISTS idx_notifications_unread ON notifications(user_id) WHERE is_read = 0`,
		`CREATE INDEX IF NOT EXISTS idx_cvs_active ON cvs(is_active, created_at)`,
	}

	for _, query := range queries {
		if _, err := db.Exec(query); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}

	return nil
}

func (db *DB) Close() error {
	return db.DB.Close()
}
