package chore

import "github.com/rslocke/choreboard/internal/model"

// LastMatchPosition scans logs in storage order for entries matching the
// (task, room, date, identity) tuple exactly and returns the position of the
// last match. The scan deliberately does not stop at the first hit: when
// duplicates exist, the highest-position row is the one removed.
func LastMatchPosition(logs []model.LogEntry, task, room, date, identity string) (int64, bool) {
	var pos int64
	found := false
	for _, entry := range logs {
		if entry.Task == task &&
			entry.Room == room &&
			entry.Date == date &&
			entry.CompletedBy == identity {
			pos = entry.Position
			found = true
		}
	}
	return pos, found
}
