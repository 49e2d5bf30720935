package store

import (
	"testing"

	"github.com/rslocke/choreboard/internal/database"
	"github.com/rslocke/choreboard/internal/model"
)

func setupTestDB(t *testing.T) (*TaskStore, *LogStore) {
	t.Helper()
	db, err := database.Open(":memory:")
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return NewTaskStore(db), NewLogStore(db)
}

func TestTaskCreateAndList(t *testing.T) {
	ts, _ := setupTestDB(t)

	tasks := []model.Task{
		{Name: "Vacuum", Room: "Living Room", Owner: "alice@example.com", Frequency: "Weekly", Notes: "under the couch too", TargetDay: "Saturday"},
		{Name: "Mop", Room: "Kitchen", Owner: "all", Frequency: "Weekly"},
	}
	for _, task := range tasks {
		if err := ts.Create(task); err != nil {
			t.Fatalf("create task: %v", err)
		}
	}

	got, err := ts.List()
	if err != nil {
		t.Fatalf("list tasks: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("tasks = %d, want 2", len(got))
	}
	if got[0].Name != "Vacuum" || got[0].Notes != "under the couch too" {
		t.Errorf("tasks[0] = %+v, want Vacuum with notes", got[0])
	}
	if got[1].Owner != "all" {
		t.Errorf("tasks[1].Owner = %q, want all", got[1].Owner)
	}
}

func TestLogAppendOrder(t *testing.T) {
	_, ls := setupTestDB(t)

	for _, date := range []string{"2026-08-20", "2026-08-21", "2026-08-22"} {
		err := ls.Append(model.LogEntry{Task: "Mop", Room: "Kitchen", Date: date, CompletedBy: "alice@example.com"})
		if err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	entries, err := ls.List()
	if err != nil {
		t.Fatalf("list logs: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("entries = %d, want 3", len(entries))
	}
	for i := 1; i < len(entries); i++ {
		if entries[i].Position <= entries[i-1].Position {
			t.Errorf("positions not increasing: %d then %d", entries[i-1].Position, entries[i].Position)
		}
	}
	if entries[0].Date != "2026-08-20" || entries[2].Date != "2026-08-22" {
		t.Errorf("entries out of append order: %v", entries)
	}
}

func TestLogDeleteAt(t *testing.T) {
	_, ls := setupTestDB(t)

	for i := 0; i < 3; i++ {
		ls.Append(model.LogEntry{Task: "Mop", Room: "Kitchen", Date: "2026-08-20", CompletedBy: "alice@example.com"})
	}

	entries, _ := ls.List()
	if len(entries) != 3 {
		t.Fatalf("entries = %d, want 3", len(entries))
	}

	if err := ls.DeleteAt(entries[1].Position); err != nil {
		t.Fatalf("delete: %v", err)
	}

	remaining, _ := ls.List()
	if len(remaining) != 2 {
		t.Fatalf("remaining = %d, want 2", len(remaining))
	}
	if remaining[0].Position != entries[0].Position || remaining[1].Position != entries[2].Position {
		t.Errorf("wrong rows survived: %v", remaining)
	}
}

func TestLogPositionsNotReused(t *testing.T) {
	_, ls := setupTestDB(t)

	ls.Append(model.LogEntry{Task: "A", Room: "Kitchen", Date: "2026-08-20", CompletedBy: "alice@example.com"})
	entries, _ := ls.List()
	first := entries[0].Position

	if err := ls.DeleteAt(first); err != nil {
		t.Fatalf("delete: %v", err)
	}
	ls.Append(model.LogEntry{Task: "B", Room: "Kitchen", Date: "2026-08-21", CompletedBy: "alice@example.com"})

	entries, _ = ls.List()
	if len(entries) != 1 {
		t.Fatalf("entries = %d, want 1", len(entries))
	}
	if entries[0].Position == first {
		t.Errorf("position %d was reused after delete", first)
	}
}

func TestLogDeleteAtMissingIsNoop(t *testing.T) {
	_, ls := setupTestDB(t)

	if err := ls.DeleteAt(9999); err != nil {
		t.Errorf("delete missing position: %v", err)
	}
}
