package chore

import (
	"time"

	"github.com/rslocke/choreboard/internal/model"
)

const (
	// DefaultDueThreshold is used by the weekly digest.
	DefaultDueThreshold = 7
	// QueryDueThreshold is used by the on-demand query. It differs from the
	// digest threshold by one day; both values are load-bearing and must not
	// be unified without a coordinated behavior change.
	QueryDueThreshold = 6
)

// ComputeDueStatus determines when a task is next due given its completion
// index. A task with no recorded completions is due today. today must be a
// UTC-midnight date (see DateOf).
func ComputeDueStatus(task model.Task, idx Index, today time.Time, threshold int) model.DueStatus {
	interval := ParseFrequency(task.Frequency)

	var lastDone time.Time
	for _, d := range idx[Key{Task: task.Name, Room: task.Room}] {
		if d.After(lastDone) {
			lastDone = d
		}
	}

	dueDate := today
	if !lastDone.IsZero() {
		dueDate = lastDone.AddDate(0, 0, interval)
	}

	daysUntil := daysBetween(today, dueDate)

	return model.DueStatus{
		Task:      task.Name,
		Room:      task.Room,
		Notes:     task.Notes,
		TargetDay: task.TargetDay,
		Frequency: task.Frequency,
		DueDate:   dueDate.Format(time.DateOnly),
		DaysUntil: daysUntil,
		IsDue:     daysUntil <= threshold,
	}
}
