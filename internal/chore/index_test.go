package chore

import (
	"testing"
	"time"

	"github.com/rslocke/choreboard/internal/model"
)

var indexToday = time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC)

func TestBuildOwnerIndexFiltersByIdentity(t *testing.T) {
	logs := []model.LogEntry{
		{Task: "Vacuum", Room: "Living Room", Date: "2026-08-20", CompletedBy: "Alice@Example.com"},
		{Task: "Vacuum", Room: "Living Room", Date: "2026-08-21", CompletedBy: "bob@example.com"},
		{Task: "Dust", Room: "Office", Date: "2026-08-22", CompletedBy: " alice@example.com "},
	}

	idx, _ := BuildOwnerIndex(logs, "alice@example.com", indexToday)

	if got := len(idx[Key{Task: "Vacuum", Room: "Living Room"}]); got != 1 {
		t.Errorf("vacuum dates = %d, want 1", got)
	}
	if got := len(idx[Key{Task: "Dust", Room: "Office"}]); got != 1 {
		t.Errorf("dust dates = %d, want 1", got)
	}
}

func TestBuildOwnerIndexSkipsMalformedDates(t *testing.T) {
	logs := []model.LogEntry{
		{Task: "Vacuum", Room: "Living Room", Date: "not-a-date", CompletedBy: "alice@example.com"},
		{Task: "Vacuum", Room: "Living Room", Date: "2026-08-20", CompletedBy: "alice@example.com"},
	}

	idx, _ := BuildOwnerIndex(logs, "alice@example.com", indexToday)

	if got := len(idx[Key{Task: "Vacuum", Room: "Living Room"}]); got != 1 {
		t.Errorf("dates = %d, want 1 (malformed entry skipped)", got)
	}
}

func TestBuildOwnerIndexRecentWindow(t *testing.T) {
	logs := []model.LogEntry{
		{Task: "A", Room: "Kitchen", Date: "2026-08-24", CompletedBy: "alice@example.com"}, // today
		{Task: "B", Room: "Kitchen", Date: "2026-08-21", CompletedBy: "alice@example.com"}, // 3 days ago
		{Task: "C", Room: "Kitchen", Date: "2026-08-20", CompletedBy: "alice@example.com"}, // 4 days ago
		{Task: "D", Room: "Kitchen", Date: "2026-08-25", CompletedBy: "alice@example.com"}, // tomorrow
	}

	_, recent := BuildOwnerIndex(logs, "alice@example.com", indexToday)

	got := make(map[string]bool)
	for _, r := range recent {
		got[r.Task] = true
	}
	for _, task := range []string{"A", "B", "D"} {
		if !got[task] {
			t.Errorf("expected task %s in recent history", task)
		}
	}
	if got["C"] {
		t.Error("task C is 4 days old, should not be in recent history")
	}
}

func TestBuildGlobalIndexKeysByOwner(t *testing.T) {
	logs := []model.LogEntry{
		{Task: "Vacuum", Room: "Living Room", Date: "2026-08-20", CompletedBy: "Alice@Example.com"},
		{Task: "Vacuum", Room: "Living Room", Date: "2026-08-21", CompletedBy: "bob@example.com"},
		{Task: "Vacuum", Room: "Living Room", Date: "bad", CompletedBy: "bob@example.com"},
	}

	idx := BuildGlobalIndex(logs)

	if got := len(idx[OwnerKey{Owner: "alice@example.com", Task: "Vacuum", Room: "Living Room"}]); got != 1 {
		t.Errorf("alice dates = %d, want 1", got)
	}
	if got := len(idx[OwnerKey{Owner: "bob@example.com", Task: "Vacuum", Room: "Living Room"}]); got != 1 {
		t.Errorf("bob dates = %d, want 1 (malformed skipped)", got)
	}
}

func TestGlobalIndexForOwner(t *testing.T) {
	logs := []model.LogEntry{
		{Task: "Vacuum", Room: "Living Room", Date: "2026-08-20", CompletedBy: "alice@example.com"},
		{Task: "Mop", Room: "Kitchen", Date: "2026-08-21", CompletedBy: "bob@example.com"},
	}

	idx := BuildGlobalIndex(logs).ForOwner("Alice@Example.com")

	if got := len(idx[Key{Task: "Vacuum", Room: "Living Room"}]); got != 1 {
		t.Errorf("vacuum dates = %d, want 1", got)
	}
	if _, ok := idx[Key{Task: "Mop", Room: "Kitchen"}]; ok {
		t.Error("bob's completion should not appear in alice's view")
	}
}
