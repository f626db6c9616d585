package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// SQLiteStore persists calculation history in a SQLite database, so a
// REPL session can pick up where the previous one left off.
type SQLiteStore struct {
	db     *sql.DB
	dbPath string
}

// OpenSQLite opens (creating if needed) a history database at dbPath.
func OpenSQLite(dbPath string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create history directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}

	store := &SQLiteStore{db: db, dbPath: dbPath}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize history schema: %w", err)
	}
	return store, nil
}

// migrate ensures the history schema exists.
func (s *SQLiteStore) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS history (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		expression TEXT NOT NULL,
		result REAL NOT NULL,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_history_created_at ON history(created_at);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Add appends a new history entry.
func (s *SQLiteStore) Add(expression string, result float64) error {
	_, err := s.db.Exec(
		`INSERT INTO history (expression, result, created_at) VALUES (?, ?, ?)`,
		expression, result, time.Now().UTC(),
	)
	return err
}

// List returns all stored records in insertion order.
func (s *SQLiteStore) List() ([]Record, error) {
	rows, err := s.db.Query(
		`SELECT expression, result, created_at FROM history ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var r Record
		if err := rows.Scan(&r.Expression, &r.Result, &r.At); err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// Clear removes all stored records.
func (s *SQLiteStore) Clear() error {
	_, err := s.db.Exec(`DELETE FROM history`)
	return err
}

// Path returns the database file path.
func (s *SQLiteStore) Path() string {
	return s.dbPath
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
