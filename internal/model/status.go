package model

// DueStatus is the computed due determination for a single task. It is
// derived per request and never persisted.
type DueStatus struct {
	Task      string `json:"task"`
	Room      string `json:"room"`
	Notes     string `json:"notes"`
	TargetDay string `json:"target_day"`
	Frequency string `json:"frequency"`
	DueDate   string `json:"due_date"` // YYYY-MM-DD
	DaysUntil int    `json:"days_until"`
	IsDue     bool   `json:"is_due"`
}
