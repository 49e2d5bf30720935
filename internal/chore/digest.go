package chore

import (
	"strings"
	"time"

	"github.com/rslocke/choreboard/internal/model"
)

// Digest maps owner identity -> room -> due items, the shape the weekly
// notification is built from.
type Digest map[string]map[string][]model.DueStatus

// BuildDigest aggregates due items for every addressable owner. Owners
// without an "@" in their identity (unassigned or malformed rows) are
// dropped silently. Tasks owned by everyone are evaluated once per owner,
// against that owner's own completion log. Owners with nothing due get no
// entry at all.
func BuildDigest(tasks []model.Task, logs []model.LogEntry, today time.Time) Digest {
	global := BuildGlobalIndex(logs)

	byOwner := make(map[string][]model.Task)
	var order []string
	var forAll []model.Task
	for _, task := range tasks {
		owner := strings.ToLower(strings.TrimSpace(task.Owner))
		if owner == model.OwnerAll {
			forAll = append(forAll, task)
			continue
		}
		if !strings.Contains(owner, "@") {
			continue
		}
		if _, seen := byOwner[owner]; !seen {
			order = append(order, owner)
		}
		byOwner[owner] = append(byOwner[owner], task)
	}
	for _, owner := range order {
		byOwner[owner] = append(byOwner[owner], forAll...)
	}

	digest := make(Digest)
	for owner, ownerTasks := range byOwner {
		idx := global.ForOwner(owner)

		var due []model.DueStatus
		for _, task := range ownerTasks {
			status := ComputeDueStatus(task, idx, today, DefaultDueThreshold)
			if status.IsDue {
				due = append(due, status)
			}
		}
		if len(due) == 0 {
			continue
		}

		rooms := make(map[string][]model.DueStatus)
		for _, item := range due {
			rooms[item.Room] = append(rooms[item.Room], item)
		}
		digest[owner] = rooms
	}
	return digest
}
