package chore

import (
	"strings"
	"time"

	"github.com/rslocke/choreboard/internal/model"
)

// recentWindowDays is how far back a completion may be and still appear in
// the recent-history list.
const recentWindowDays = 3

// Key identifies a task: log entries and task definitions correlate only
// through this pair.
type Key struct {
	Task string
	Room string
}

// OwnerKey scopes a task key to one owner, for the digest's global index.
type OwnerKey struct {
	Owner string // lowercased
	Task  string
	Room  string
}

// Index maps a task key to the dates it was completed.
type Index map[Key][]time.Time

// GlobalIndex maps owner-scoped task keys to completion dates.
type GlobalIndex map[OwnerKey][]time.Time

// BuildOwnerIndex indexes the completions logged by one identity
// (case-insensitive match on completed_by) and collects the identity's
// recent history: entries dated within recentWindowDays of today. Entries
// with unparseable dates are dropped.
func BuildOwnerIndex(logs []model.LogEntry, identity string, today time.Time) (Index, []model.RecentEntry) {
	idx := make(Index)
	var recent []model.RecentEntry

	for _, entry := range logs {
		if !identityMatch(entry.CompletedBy, identity) {
			continue
		}
		d, ok := ParseDate(entry.Date)
		if !ok {
			continue
		}

		key := Key{Task: entry.Task, Room: entry.Room}
		idx[key] = append(idx[key], d)

		if daysBetween(d, today) <= recentWindowDays {
			recent = append(recent, model.RecentEntry{
				Task: entry.Task,
				Room: entry.Room,
				Date: entry.Date,
			})
		}
	}
	return idx, recent
}

// BuildGlobalIndex indexes every completion keyed by who logged it, for the
// digest's all-owners pass. Entries with unparseable dates are dropped.
func BuildGlobalIndex(logs []model.LogEntry) GlobalIndex {
	idx := make(GlobalIndex)
	for _, entry := range logs {
		d, ok := ParseDate(entry.Date)
		if !ok {
			continue
		}
		key := OwnerKey{
			Owner: strings.ToLower(strings.TrimSpace(entry.CompletedBy)),
			Task:  entry.Task,
			Room:  entry.Room,
		}
		idx[key] = append(idx[key], d)
	}
	return idx
}

// ForOwner projects the global index down to the pair-keyed view the
// due-status calculator consumes, keeping only the given owner's completions.
func (g GlobalIndex) ForOwner(owner string) Index {
	owner = strings.ToLower(strings.TrimSpace(owner))
	idx := make(Index)
	for key, dates := range g {
		if key.Owner != owner {
			continue
		}
		idx[Key{Task: key.Task, Room: key.Room}] = dates
	}
	return idx
}

func identityMatch(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
