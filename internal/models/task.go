package models

import (
	"time"
)

// TaskStatus represents the lifecycle status of a task/lead
type TaskStatus string

const (
	StatusPending    TaskStatus = "Pending"
	StatusInProgress TaskStatus = "In Progress"
	StatusCompleted  TaskStatus = "Completed"
	StatusOnHold     TaskStatus = "On Hold"
	StatusCancelled  TaskStatus = "Cancelled"
	StatusSubmitted  TaskStatus = "Submitted"
)

// ValidStatuses defines allowed task statuses
var ValidStatuses = map[TaskStatus]bool{
	StatusPending:    true,
	StatusInProgress: true,
	StatusCompleted:  true,
	StatusOnHold:     true,
	StatusCancelled:  true,
	StatusSubmitted:  true,
}

// statusVariants maps each status to its display badge variant.
var statusVariants = map[TaskStatus]string{
	StatusPending:    "warning",
	StatusInProgress: "primary",
	StatusCompleted:  "success",
	StatusOnHold:     "secondary",
	StatusCancelled:  "danger",
	StatusSubmitted:  "info",
}

// BadgeVariant returns the display variant for a status. Unknown
// statuses fall back to "secondary" rather than failing.
func (s TaskStatus) BadgeVariant() string {
	if v, ok := statusVariants[s]; ok {
		return v
	}
	return "secondary"
}

// Task represents a trackable lead/task owned by the server.
// The id is always assigned remotely; this client never invents one.
// AssignedTo holds a user id and may be empty; it is resolved to a
// contact via a directory lookup, never coerced to a display string.
type Task struct {
	ID          string     `json:"_id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      TaskStatus `json:"status"`
	AssignedTo  string     `json:"assignedTo,omitempty"`
	Mobile      string     `json:"mobile,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// HasAssignee reports whether the task carries an assignee reference.
func (t *Task) HasAssignee() bool {
	return t.AssignedTo != ""
}

// CandidateRecord is one row of an import file mapped to the lead
// shape. It is valid for import only when all five fields are
// non-empty after trimming.
type CandidateRecord struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Mobile      string `json:"mobile"`
}

// Complete reports whether every required field is populated.
func (r *CandidateRecord) Complete() bool {
	return r.Title != "" && r.Description != "" && r.Name != "" && r.Email != "" && r.Mobile != ""
}
