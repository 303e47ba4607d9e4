package models

import "time"

// DueDateLayout is the date format used in the storage file and on the wire.
const DueDateLayout = "2006-01-02"

const (
	StatusPending   = "Pending"
	StatusCompleted = "Completed"
	StatusOverdue   = "Overdue"
)

type Task struct {
	Subject     string `json:"subject"`
	Description string `json:"description"`
	DueDate     string `json:"due_date"`
	Status      string `json:"status"`
}

func ValidStatus(s string) bool {
	return s == StatusPending || s == StatusCompleted || s == StatusOverdue
}

// DisplayStatus is the status shown to users: a pending task whose due
// date has passed reads as Overdue. The stored row is never rewritten.
func (t Task) DisplayStatus(today time.Time) string {
	if t.Status != StatusPending {
		return t.Status
	}
	due, err := time.Parse(DueDateLayout, t.DueDate)
	if err != nil {
		return t.Status
	}
	day := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	if due.Before(day) {
		return StatusOverdue
	}
	return t.Status
}
