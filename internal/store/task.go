package store

import (
	"database/sql"
	"fmt"

	"github.com/rslocke/choreboard/internal/model"
)

// TaskStore reads task definitions. Tasks are managed out of band (seeded or
// edited directly in the store); the service only ever reads them.
type TaskStore struct {
	db *sql.DB
}

func NewTaskStore(db *sql.DB) *TaskStore {
	return &TaskStore{db: db}
}

const taskCols = `task, room, owner, frequency, notes, target_day`

func scanTask(scanner interface{ Scan(...any) error }) (*model.Task, error) {
	var t model.Task
	err := scanner.Scan(&t.Name, &t.Room, &t.Owner, &t.Frequency, &t.Notes, &t.TargetDay)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// List returns every task definition in definition order.
func (s *TaskStore) List() ([]model.Task, error) {
	rows, err := s.db.Query(`SELECT ` + taskCols + ` FROM tasks ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()

	var tasks []model.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		tasks = append(tasks, *t)
	}
	return tasks, rows.Err()
}

// Create inserts a task definition. Used for seeding and tests.
func (s *TaskStore) Create(t model.Task) error {
	_, err := s.db.Exec(
		`INSERT INTO tasks (task, room, owner, frequency, notes, target_day) VALUES (?, ?, ?, ?, ?, ?)`,
		t.Name, t.Room, t.Owner, t.Frequency, t.Notes, t.TargetDay,
	)
	if err != nil {
		return fmt.Errorf("insert task: %w", err)
	}
	return nil
}
