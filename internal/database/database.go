package database

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

type DB struct {
	conn *sql.DB
}

// Open connects to an existing SQLite database. The schema is owned by
// the surrounding system; nothing is created here. Foreign-key
// enforcement is requested for the lifetime of the connection.
func Open(path string) (*DB, error) {
	conn, err := sql.Open("sqlite3", path+"?_foreign_keys=on")
	if err != nil {
		return nil, err
	}

	// sql.Open is lazy with the sqlite3 driver; surface a bad or
	// unreadable file now rather than on the first query.
	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, err
	}

	return &DB{conn: conn}, nil
}

func (db *DB) Close() error {
	return db.conn.Close()
}

// TableExists reports whether a table is present in the system catalog.
func (db *DB) TableExists(name string) (bool, error) {
	var count int
	err := db.conn.QueryRow(`
		SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name=?
	`, name).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("check table %q: %w", name, err)
	}
	return count > 0, nil
}

// ColumnExists reports whether a column is present on a table, via
// PRAGMA table_info. The table name cannot be bound as a parameter in
// a pragma, so callers must pass a trusted name.
func (db *DB) ColumnExists(table, column string) (bool, error) {
	rows, err := db.conn.Query(fmt.Sprintf("PRAGMA table_info(%s)", table))
	if err != nil {
		return false, fmt.Errorf("inspect table %q: %w", table, err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			cid        int
			name       string
			ctype      string
			notNull    int
			deflt      sql.NullString
			primaryKey int
		)
		if err := rows.Scan(&cid, &name, &ctype, &notNull, &deflt, &primaryKey); err != nil {
			return false, fmt.Errorf("inspect table %q: %w", table, err)
		}
		if name == column {
			return true, nil
		}
	}
	return false, rows.Err()
}

// DeleteDisabledAccounts removes all rows from accounts where enabled=0
// within a single transaction and returns how many rows were removed.
// The count is taken before the delete so the reported number matches
// what the statement is about to remove.
func (db *DB) DeleteDisabledAccounts() (int, error) {
	tx, err := db.conn.Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	var count int
	if err := tx.QueryRow(`SELECT COUNT(*) FROM accounts WHERE enabled = 0`).Scan(&count); err != nil {
		return 0, err
	}

	if _, err := tx.Exec(`DELETE FROM accounts WHERE enabled = 0`); err != nil {
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}

	return count, nil
}
