package storage

import (
	"bytedata/pkg/common"
	"database/sql"
	"log"
	"sync"

	_ "modernc.org/sqlite"
)

type Backend interface {
	BatchWrite(records []common.Record) error
	ReplaceAll(records []common.Record) error
	LoadAll() ([]common.Record, error)
	Close()
	Truncate() error
}

type SQLiteBackend struct {
	db *sql.DB
	mu sync.Mutex
}

func NewSQLiteBackend(path string) (*SQLiteBackend, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	query := `
	CREATE TABLE IF NOT EXISTS sorted_values (
		pos   INTEGER PRIMARY KEY CHECK (pos >= 0),
		value INTEGER NOT NULL
	);`
	if _, err := db.Exec(query); err != nil {
		db.Close()
		return nil, err
	}

	_, err = db.Exec(`
		PRAGMA journal_mode = WAL;
		PRAGMA synchronous = NORMAL;
	`)
	if err != nil {
		log.Printf("[Snapshot] Warning: Failed to set PRAGMA: %v", err)
	}

	return &SQLiteBackend{db: db}, nil
}

func (s *SQLiteBackend) BatchWrite(records []common.Record) error {
	if len(records) == 0 {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	if err := insertRecords(tx, records); err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit()
}

// ReplaceAll swaps the table contents in one transaction. On failure the
// previous snapshot is left intact.
func (s *SQLiteBackend) ReplaceAll(records []common.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	if _, err := tx.Exec("DELETE FROM sorted_values"); err != nil {
		tx.Rollback()
		return err
	}
	if err := insertRecords(tx, records); err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit()
}

func insertRecords(tx *sql.Tx, records []common.Record) error {
	stmt, err := tx.Prepare("INSERT OR REPLACE INTO sorted_values (pos, value) VALUES (?, ?)")
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, rec := range records {
		if _, err := stmt.Exec(rec.Pos, int64(rec.Value)); err != nil {
			return err
		}
	}
	return nil
}

func (s *SQLiteBackend) LoadAll() ([]common.Record, error) {
	rows, err := s.db.Query("SELECT pos, value FROM sorted_values ORDER BY pos ASC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []common.Record
	for rows.Next() {
		var pos int
		var v int64
		if err := rows.Scan(&pos, &v); err != nil {
			return nil, err
		}
		records = append(records, common.Record{Pos: pos, Value: common.Value(v)})
	}
	return records, rows.Err()
}

func (s *SQLiteBackend) Truncate() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.db.Exec("DELETE FROM sorted_values")
	return err
}

func (s *SQLiteBackend) Close() {
	s.db.Close()
}

// ToRecords numbers values by position.
func ToRecords(values []common.Value) []common.Record {
	records := make([]common.Record, len(values))
	for i, v := range values {
		records[i] = common.Record{Pos: i, Value: v}
	}
	return records
}
