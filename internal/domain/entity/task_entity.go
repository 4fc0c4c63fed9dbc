package entity

import "time"

// TaskStatus enumerates the states a task can be in.
type TaskStatus string

const (
	StatusTodo       TaskStatus = "to do"
	StatusInProgress TaskStatus = "in progress"
	StatusDone       TaskStatus = "done"
)

// ValidTaskStatus reports whether s is one of the three known statuses.
func ValidTaskStatus(s string) bool {
	switch TaskStatus(s) {
	case StatusTodo, StatusInProgress, StatusDone:
		return true
	}
	return false
}

// Task belongs to exactly one user, referenced by UserID. The owner never
// changes after creation.
type Task struct {
	ID          string
	Title       string
	UserID      string
	Status      TaskStatus
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (t *Task) IsCompleted() bool {
	return t.Status == StatusDone
}

func (t *Task) IsInProgress() bool {
	return t.Status == StatusInProgress
}

// CanTransitionTo reports whether the task may move to the given status.
// Every known status is currently reachable from every other one.
func (t *Task) CanTransitionTo(status TaskStatus) bool {
	return ValidTaskStatus(string(status))
}
