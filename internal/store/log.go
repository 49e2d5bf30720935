package store

import (
	"database/sql"
	"fmt"

	"github.com/rslocke/choreboard/internal/model"
)

// LogStore reads and mutates the completion log. Rows are appended and
// deleted whole; nothing is ever updated in place.
type LogStore struct {
	db *sql.DB
}

func NewLogStore(db *sql.DB) *LogStore {
	return &LogStore{db: db}
}

const logCols = `position, task, room, date, done_by`

func scanLog(scanner interface{ Scan(...any) error }) (*model.LogEntry, error) {
	var e model.LogEntry
	err := scanner.Scan(&e.Position, &e.Task, &e.Room, &e.Date, &e.CompletedBy)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// List returns every log entry in storage order, each carrying its row
// position.
func (s *LogStore) List() ([]model.LogEntry, error) {
	rows, err := s.db.Query(`SELECT ` + logCols + ` FROM logs ORDER BY position ASC`)
	if err != nil {
		return nil, fmt.Errorf("list logs: %w", err)
	}
	defer rows.Close()

	var entries []model.LogEntry
	for rows.Next() {
		e, err := scanLog(rows)
		if err != nil {
			return nil, fmt.Errorf("scan log: %w", err)
		}
		entries = append(entries, *e)
	}
	return entries, rows.Err()
}

// Append adds a completion record to the end of the log.
func (s *LogStore) Append(e model.LogEntry) error {
	_, err := s.db.Exec(
		`INSERT INTO logs (task, room, date, done_by) VALUES (?, ?, ?, ?)`,
		e.Task, e.Room, e.Date, e.CompletedBy,
	)
	if err != nil {
		return fmt.Errorf("append log: %w", err)
	}
	return nil
}

// DeleteAt removes the row at the given position. Deleting a position that
// does not exist is not an error; callers resolve positions from a fresh
// List first.
func (s *LogStore) DeleteAt(position int64) error {
	_, err := s.db.Exec(`DELETE FROM logs WHERE position = ?`, position)
	if err != nil {
		return fmt.Errorf("delete log: %w", err)
	}
	return nil
}
