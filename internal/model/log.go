package model

// LogEntry records that a task was completed on a given date. Entries are
// append-only; the uncheck operation deletes whole rows by position.
type LogEntry struct {
	// Position is the store's native row index. It is carried through reads
	// so the uncheck operation can delete the exact row it matched.
	Position    int64  `json:"-"`
	Task        string `json:"task"`
	Room        string `json:"room"`
	Date        string `json:"date"` // YYYY-MM-DD
	CompletedBy string `json:"completed_by"`
}

// RecentEntry is a recently logged completion, shown in the query response
// independent of any task definition.
type RecentEntry struct {
	Task string `json:"task"`
	Room string `json:"room"`
	Date string `json:"date"`
}
