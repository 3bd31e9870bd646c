package models

import (
	"time"
)

// UpdateType classifies a follow-up entry
type UpdateType string

const (
	UpdateCall         UpdateType = "call"
	UpdateMeeting      UpdateType = "meeting"
	UpdateEmail        UpdateType = "email"
	UpdateStatusChange UpdateType = "status_change"
	UpdateNote         UpdateType = "note"
	UpdateOther        UpdateType = "other"
)

// ValidUpdateTypes defines allowed follow-up types
var ValidUpdateTypes = map[UpdateType]bool{
	UpdateCall:         true,
	UpdateMeeting:      true,
	UpdateEmail:        true,
	UpdateStatusChange: true,
	UpdateNote:         true,
	UpdateOther:        true,
}

// UpdateTypeFormat is the presentation of one follow-up variant.
type UpdateTypeFormat struct {
	Icon  string
	Label string
}

// UpdateTypeFormats is the single rendering table for the closed
// update-type enumeration. Every member of ValidUpdateTypes has an
// entry; lookups for unknown types fall back to the "other" row.
var UpdateTypeFormats = map[UpdateType]UpdateTypeFormat{
	UpdateCall:         {Icon: "📞", Label: "Call"},
	UpdateMeeting:      {Icon: "📅", Label: "Meeting"},
	UpdateEmail:        {Icon: "✉️", Label: "Email"},
	UpdateStatusChange: {Icon: "🔄", Label: "Status Change"},
	UpdateNote:         {Icon: "📝", Label: "Note"},
	UpdateOther:        {Icon: "📋", Label: "Other"},
}

// Format returns the icon/label pair for the update type.
func (u UpdateType) Format() UpdateTypeFormat {
	if f, ok := UpdateTypeFormats[u]; ok {
		return f
	}
	return UpdateTypeFormats[UpdateOther]
}

// Priority represents the urgency of a follow-up
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// ValidPriorities defines allowed follow-up priorities
var ValidPriorities = map[Priority]bool{
	PriorityLow:    true,
	PriorityMedium: true,
	PriorityHigh:   true,
}

// TaskUpdate is one immutable entry of a task's follow-up history.
// Entries are only ever appended by the server; this client reads
// them and creates new ones, never mutates or deletes.
type TaskUpdate struct {
	ID           string     `json:"_id"`
	TaskID       string     `json:"taskId"`
	UpdateType   UpdateType `json:"updateType"`
	Notes        string     `json:"notes,omitempty"`
	OldStatus    TaskStatus `json:"oldStatus,omitempty"`
	NewStatus    TaskStatus `json:"newStatus,omitempty"`
	NextFollowUp *time.Time `json:"nextFollowUp,omitempty"`
	Priority     Priority   `json:"priority,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
}
