package database

import (
	"database/sql"

	_ "modernc.org/sqlite" // SQLite driver
)

// New creates a new database connection pool.
func New(dataSourceName string) (*sql.DB, error) {
	// _time_format=sqlite stores time.Time values in a lexicographically
	// sortable text form, so timestamp range predicates work in SQL.
	db, err := sql.Open("sqlite", dataSourceName+"?_time_format=sqlite")
	if err != nil {
		return nil, err
	}
	// SQLite allows a single writer; serializing through one connection
	// avoids SQLITE_BUSY under concurrent request handling.
	db.SetMaxOpenConns(1)
	if err = db.Ping(); err != nil {
		return nil, err
	}
	if _, err = db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate runs the SQL statements to set up the database schema.
func Migrate(db *sql.DB) error {
	const sqlStmt = `
	CREATE TABLE IF NOT EXISTS users (
		id TEXT NOT NULL PRIMARY KEY,
		display_name TEXT NOT NULL UNIQUE,
		role TEXT NOT NULL DEFAULT 'member',
		banned INTEGER NOT NULL DEFAULT 0,
		last_seen DATETIME NOT NULL,
		created_at DATETIME NOT NULL
	);

	CREATE TABLE IF NOT EXISTS messages (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		author_id TEXT NOT NULL,
		author_display_name TEXT NOT NULL,
		content TEXT NOT NULL,
		created_at DATETIME NOT NULL,
		edited INTEGER NOT NULL DEFAULT 0,
		-- parent_id is a plain reference, not a foreign key: a deleted
		-- parent leaves a dangling id for the client to handle.
		parent_id INTEGER
	);

	CREATE TABLE IF NOT EXISTS events (
		id TEXT NOT NULL PRIMARY KEY,
		type TEXT NOT NULL,
		level TEXT NOT NULL,
		message TEXT NOT NULL,
		actor_id TEXT,
		created_at DATETIME NOT NULL
	);
	`
	_, err := db.Exec(sqlStmt)
	return err
}
