package chore

import (
	"sort"
	"strings"
	"time"

	"github.com/rslocke/choreboard/internal/model"
)

// QueryResult is the on-demand query response for one household member.
type QueryResult struct {
	DueTasks      []model.DueStatus   `json:"due_tasks"`
	RecentHistory []model.RecentEntry `json:"recent_history"`
}

// DueTasksForOwner selects the tasks owned by identity (or by everyone),
// computes due status against the identity's own completion log, and keeps
// only the due ones. Due tasks sort by (days until, task name); recent
// history sorts newest first.
func DueTasksForOwner(tasks []model.Task, logs []model.LogEntry, identity string, today time.Time) QueryResult {
	idx, recent := BuildOwnerIndex(logs, identity, today)

	var due []model.DueStatus
	for _, task := range tasks {
		owner := strings.ToLower(strings.TrimSpace(task.Owner))
		if owner != model.OwnerAll && !identityMatch(task.Owner, identity) {
			continue
		}
		status := ComputeDueStatus(task, idx, today, QueryDueThreshold)
		if status.IsDue {
			due = append(due, status)
		}
	}

	sort.Slice(due, func(i, j int) bool {
		if due[i].DaysUntil != due[j].DaysUntil {
			return due[i].DaysUntil < due[j].DaysUntil
		}
		return due[i].Task < due[j].Task
	})
	sort.Slice(recent, func(i, j int) bool {
		// Lexicographic order on YYYY-MM-DD is date order.
		return recent[i].Date > recent[j].Date
	})

	return QueryResult{DueTasks: due, RecentHistory: recent}
}
