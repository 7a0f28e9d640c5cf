package model

import (
	"errors"
	"strings"
)

// InboxListID is the reserved list id meaning "task has no user-assigned list".
const InboxListID = "inbox"

// DefaultDurationMinutes is assumed when a task has a due date but no end date.
const DefaultDurationMinutes = 60

var ErrEmptyTitle = errors.New("model: task title is required")

// Priority orders tasks from none to high.
type Priority int

const (
	PriorityNone Priority = iota
	PriorityLow
	PriorityMedium
	PriorityHigh
)

func (p Priority) IsValid() bool {
	return p >= PriorityNone && p <= PriorityHigh
}

func (p Priority) String() string {
	switch p {
	case PriorityLow:
		return "low"
	case PriorityMedium:
		return "medium"
	case PriorityHigh:
		return "high"
	default:
		return "none"
	}
}

// ParsePriority accepts the names and the numeric shorthand used by quick add.
func ParsePriority(raw string) (Priority, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "none", "0":
		return PriorityNone, nil
	case "low", "1":
		return PriorityLow, nil
	case "medium", "med", "2":
		return PriorityMedium, nil
	case "high", "3":
		return PriorityHigh, nil
	}
	return PriorityNone, errors.New("model: unknown priority " + raw)
}

// Subtask is owned exclusively by its parent task. When a standalone task
// is merged under a parent, its field values are snapshotted here.
type Subtask struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	IsCompleted bool       `json:"isCompleted"`
	DueDate     *Timestamp `json:"dueDate,omitempty"`
	IsAllDay    bool       `json:"isAllDay,omitempty"`
	Priority    Priority   `json:"priority,omitempty"`
	Tags        []string   `json:"tags,omitempty"`
}

// Attachment is a small metadata+payload record owned by a task.
type Attachment struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Type  string `json:"type"` // "image" or "file"
	URL   string `json:"url"`
}

// Location is optional display data for a task.
type Location struct {
	Name string  `json:"name"`
	Lat  float64 `json:"lat,omitempty"`
	Lng  float64 `json:"lng,omitempty"`
}

// Task is the central record.
type Task struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description,omitempty"`
	IsCompleted bool         `json:"isCompleted"`
	Priority    Priority     `json:"priority"`
	ListID      string       `json:"listId"`
	Tags        []string     `json:"tags"`
	DueDate     *Timestamp   `json:"dueDate,omitempty"`
	EndDate     *Timestamp   `json:"endDate,omitempty"`
	Duration    int          `json:"duration,omitempty"` // minutes
	IsAllDay    bool         `json:"isAllDay,omitempty"`
	Subtasks    []Subtask    `json:"subtasks"`
	Attachments []Attachment `json:"attachments"`
	IsNote      bool         `json:"isNote,omitempty"`
	IsDeleted   bool         `json:"isDeleted,omitempty"`
	Reminder    *Timestamp   `json:"reminder,omitempty"`
	ExternalID  string       `json:"externalId,omitempty"`
	CreatedAt   *Timestamp   `json:"createdAt,omitempty"`
	IsPinned    bool         `json:"isPinned,omitempty"`
	IsWontDo    bool         `json:"isWontDo,omitempty"`
	Repeat      string       `json:"repeat,omitempty"`
	Location    *Location    `json:"location,omitempty"`
}

// NewTask builds a task with a fresh id filed to the inbox.
func NewTask(title string) Task {
	now := Now()
	return Task{
		ID:          NewID(),
		Title:       title,
		ListID:      InboxListID,
		Tags:        []string{},
		Subtasks:    []Subtask{},
		Attachments: []Attachment{},
		CreatedAt:   &now,
	}
}

// Validate checks direct user input; everything else is a defined no-op
// elsewhere rather than a validation failure.
func (t Task) Validate() error {
	if strings.TrimSpace(t.Title) == "" {
		return ErrEmptyTitle
	}
	return nil
}

// DurationMinutes derives the task length from its date window,
// defaulting to an hour when only a due date is set.
func (t Task) DurationMinutes() int {
	if t.DueDate != nil && t.EndDate != nil && t.EndDate.After(t.DueDate.Time) {
		return int(t.EndDate.Sub(t.DueDate.Time).Minutes())
	}
	if t.Duration > 0 {
		return t.Duration
	}
	return DefaultDurationMinutes
}

// AsSubtask snapshots the task's fields for a merge under a parent task.
func (t Task) AsSubtask() Subtask {
	return Subtask{
		ID:          t.ID,
		Title:       t.Title,
		IsCompleted: t.IsCompleted,
		DueDate:     t.DueDate,
		IsAllDay:    t.IsAllDay,
		Priority:    t.Priority,
		Tags:        t.Tags,
	}
}
