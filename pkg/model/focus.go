package model

// TimerMode selects the focus timer style for a category.
type TimerMode string

const (
	TimerPomo      TimerMode = "pomo"
	TimerStopwatch TimerMode = "stopwatch"
)

func (m TimerMode) IsValid() bool {
	return m == TimerPomo || m == TimerStopwatch
}

// FocusCategory is static configuration for the focus timer.
type FocusCategory struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Icon            string    `json:"icon"`
	Color           string    `json:"color"`
	Mode            TimerMode `json:"mode"`
	DefaultDuration int       `json:"defaultDuration"` // minutes
}

// FocusSession is an append-only record of one completed timer run.
// The task title is snapshotted so the log survives task deletion.
type FocusSession struct {
	ID         string    `json:"id"`
	Duration   int       `json:"duration"` // minutes
	Timestamp  Timestamp `json:"timestamp"`
	TaskID     string    `json:"taskId,omitempty"`
	TaskTitle  string    `json:"taskTitle,omitempty"`
	CategoryID string    `json:"categoryId,omitempty"`
}
