package model

// OwnerAll is the sentinel owner meaning a task applies to every household member.
const OwnerAll = "all"

// Task is a recurring chore definition. A task is identified by its
// (Name, Room) pair — two tasks with the same name in different rooms are
// distinct, and log entries correlate to tasks solely through this pair.
type Task struct {
	Name      string `json:"task"`
	Room      string `json:"room"`
	Owner     string `json:"owner"`
	Frequency string `json:"frequency"`
	Notes     string `json:"notes"`
	TargetDay string `json:"target_day"`
}
