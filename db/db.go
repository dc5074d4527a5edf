package db

import (
	"database/sql"

	_ "github.com/mattn/go-sqlite3"
)

// DB is a wrapper around sql.DB holding the bot's usage counters. These
// are advisory numbers for /stats, not correctness-critical state; the
// default path is :memory: so they reset with the process.
type DB struct {
	*sql.DB
}

// New creates a new database connection
func New(dbPath string) (*DB, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, err
	}

	// Test the connection
	if err = db.Ping(); err != nil {
		return nil, err
	}

	return &DB{db}, nil
}

// Initialize sets up the database tables
func (db *DB) Initialize() error {
	_, err := db.Exec(`
	CREATE TABLE IF NOT EXISTS chats (
		chat_id INTEGER PRIMARY KEY
	)`)
	if err != nil {
		return err
	}

	_, err = db.Exec(`
	CREATE TABLE IF NOT EXISTS counters (
		name TEXT PRIMARY KEY,
		value INTEGER NOT NULL
	)`)
	if err != nil {
		return err
	}

	return nil
}

// RecordChat marks a chat as seen. Repeat visits are no-ops.
func (db *DB) RecordChat(chatID int64) error {
	_, err := db.Exec(`INSERT OR IGNORE INTO chats (chat_id) VALUES (?)`, chatID)
	return err
}

// IncrementSearches bumps the total search counter by one.
func (db *DB) IncrementSearches() error {
	_, err := db.Exec(`
	INSERT INTO counters (name, value) VALUES ('searches', 1)
	ON CONFLICT(name) DO UPDATE SET value = value + 1`)
	return err
}

// Stats returns the number of distinct chats seen and the total search
// count.
func (db *DB) Stats() (chats int64, searches int64, err error) {
	if err = db.QueryRow(`SELECT COUNT(*) FROM chats`).Scan(&chats); err != nil {
		return 0, 0, err
	}

	err = db.QueryRow(`SELECT value FROM counters WHERE name = 'searches'`).Scan(&searches)
	if err == sql.ErrNoRows {
		return chats, 0, nil
	}
	if err != nil {
		return 0, 0, err
	}

	return chats, searches, nil
}
