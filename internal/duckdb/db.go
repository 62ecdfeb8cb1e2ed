// Package duckdb is the optional DuckDB export sink: the run's final event
// sequence is appended to an events table for ad-hoc SQL analysis.
package duckdb

import (
	"database/sql"
	"encoding/json"
	"fmt"

	_ "github.com/duckdb/duckdb-go/v2"

	"github.com/wh0isandrew/WinEventsOrganizer/internal/types"
)

// DB is an open DuckDB database with migrations applied.
// Use Open to create; call Close when done.
type DB struct {
	sql  *sql.DB
	path string
}

// Open opens or creates a DuckDB database at path and runs migrations.
// Path can be a file path (e.g. "events.duckdb") or "" for in-memory.
func Open(path string) (*DB, error) {
	dsn := path
	if dsn == "" {
		dsn = ":memory:"
	}
	sqlDB, err := sql.Open("duckdb", dsn)
	if err != nil {
		return nil, err
	}
	db := &DB{sql: sqlDB, path: path}
	if err := db.migrate(); err != nil {
		sqlDB.Close()
		return nil, err
	}
	return db, nil
}

// Close closes the database.
func (db *DB) Close() error {
	return db.sql.Close()
}

// SQL returns the underlying *sql.DB for ad-hoc queries.
func (db *DB) SQL() *sql.DB {
	return db.sql
}

func (db *DB) migrate() error {
	// events: append-only; one row per event that survived the filter
	_, err := db.sql.Exec(`
		CREATE TABLE IF NOT EXISTS events (
			level VARCHAR NOT NULL,
			timestamp VARCHAR NOT NULL,
			provider VARCHAR NOT NULL,
			event_id VARCHAR NOT NULL,
			message VARCHAR NOT NULL,
			details JSON,
			explanation VARCHAR NOT NULL
		)
	`)
	return err
}

// InsertEvents appends events in order. Details maps are stored as JSON;
// an event without extended fields stores NULL.
func (db *DB) InsertEvents(events []types.Event) error {
	if len(events) == 0 {
		return nil
	}
	tx, err := db.sql.Begin()
	if err != nil {
		return err
	}
	stmt, err := tx.Prepare(`INSERT INTO events (level, timestamp, provider, event_id, message, details, explanation) VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		tx.Rollback()
		return err
	}
	defer stmt.Close()
	for _, ev := range events {
		var details any
		if len(ev.Details) > 0 {
			data, err := json.Marshal(ev.Details)
			if err != nil {
				tx.Rollback()
				return fmt.Errorf("encode details: %w", err)
			}
			details = string(data)
		}
		if _, err := stmt.Exec(ev.Level, ev.Timestamp, ev.Provider, ev.EventID, ev.Message, details, ev.Explanation); err != nil {
			tx.Rollback()
			return err
		}
	}
	return tx.Commit()
}

// CountEvents returns the number of stored events.
func (db *DB) CountEvents() (int64, error) {
	var n int64
	err := db.sql.QueryRow(`SELECT COUNT(*) FROM events`).Scan(&n)
	return n, err
}
