package entity

import "testing"

func TestValidTaskStatus(t *testing.T) {
	tests := []struct {
		status string
		want   bool
	}{
		{"to do", true},
		{"in progress", true},
		{"done", true},
		{"", false},
		{"todo", false},
		{"DONE", false},
		{"completed", false},
	}

	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			if got := ValidTaskStatus(tt.status); got != tt.want {
				t.Errorf("ValidTaskStatus(%q) = %v, want %v", tt.status, got, tt.want)
			}
		})
	}
}

func TestTaskStatusPredicates(t *testing.T) {
	todo := &Task{Status: StatusTodo}
	inProgress := &Task{Status: StatusInProgress}
	done := &Task{Status: StatusDone}

	if todo.IsCompleted() || inProgress.IsCompleted() {
		t.Error("only done tasks should be completed")
	}
	if !done.IsCompleted() {
		t.Error("done task should be completed")
	}
	if !inProgress.IsInProgress() {
		t.Error("in progress task should report in progress")
	}
	if todo.IsInProgress() || done.IsInProgress() {
		t.Error("only in-progress tasks should report in progress")
	}
}

func TestCanTransitionTo(t *testing.T) {
	task := &Task{Status: StatusTodo}

	// Every known status is reachable from every other.
	for _, s := range []TaskStatus{StatusTodo, StatusInProgress, StatusDone} {
		if !task.CanTransitionTo(s) {
			t.Errorf("CanTransitionTo(%q) = false, want true", s)
		}
	}
	if task.CanTransitionTo("archived") {
		t.Error("CanTransitionTo should reject unknown statuses")
	}
}
