package model

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// DateKeyLayout is the calendar-date key format for habit history.
const DateKeyLayout = "2006-01-02"

// DateKey renders a time as a habit history key.
func DateKey(t time.Time) string {
	return t.Local().Format(DateKeyLayout)
}

var ErrInvalidFrequency = errors.New("model: invalid habit frequency type")

// FrequencyType describes how often a habit is scheduled.
type FrequencyType string

const (
	FrequencyDaily    FrequencyType = "daily"
	FrequencyWeekly   FrequencyType = "weekly"
	FrequencyInterval FrequencyType = "interval"
)

func (f FrequencyType) IsValid() bool {
	switch f {
	case FrequencyDaily, FrequencyWeekly, FrequencyInterval:
		return true
	default:
		return false
	}
}

// HabitLog is one completion event. Entries only exist for completed
// days; unchecking a day removes the key instead of writing
// completed=false, so the key count is the completion count.
type HabitLog struct {
	Completed bool      `json:"completed"`
	Timestamp Timestamp `json:"timestamp"`
	Mood      string    `json:"mood,omitempty"`
	Note      string    `json:"note,omitempty"`
}

// Habit is a tracked recurring practice.
type Habit struct {
	ID             string              `json:"id"`
	Name           string              `json:"name"`
	Icon           string              `json:"icon"`
	Color          string              `json:"color"`
	Description    string              `json:"description,omitempty"`
	Quote          string              `json:"quote,omitempty"`
	FrequencyType  FrequencyType       `json:"frequencyType,omitempty"`
	FrequencyDays  []int               `json:"frequencyDays,omitempty"` // 0-6, Sunday first
	FrequencyCount int                 `json:"frequencyCount,omitempty"`
	StartDate      *Timestamp          `json:"startDate,omitempty"`
	EndDate        *Timestamp          `json:"endDate,omitempty"`
	Reminders      []string            `json:"reminders,omitempty"` // "HH:mm"
	TargetValue    int                 `json:"targetValue,omitempty"`
	Unit           string              `json:"unit,omitempty"`
	IsArchived     bool                `json:"isArchived,omitempty"`
	CreatedDate    *Timestamp          `json:"createdDate,omitempty"`
	History        map[string]HabitLog `json:"history"`
}

// NewHabit builds a daily habit with a fresh id and empty history.
func NewHabit(name string) Habit {
	now := Now()
	return Habit{
		ID:            NewID(),
		Name:          name,
		FrequencyType: FrequencyDaily,
		FrequencyDays: []int{0, 1, 2, 3, 4, 5, 6},
		CreatedDate:   &now,
		History:       map[string]HabitLog{},
	}
}

func (h Habit) Validate() error {
	if strings.TrimSpace(h.Name) == "" {
		return errors.New("model: habit name is required")
	}
	if h.FrequencyType != "" && !h.FrequencyType.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidFrequency, h.FrequencyType)
	}
	return nil
}

// CompletionCount is the number of history keys, by the history invariant.
func (h Habit) CompletionCount() int {
	return len(h.History)
}

// CompletedOn reports whether the habit has a completion entry for the day.
func (h Habit) CompletedOn(dateKey string) bool {
	log, ok := h.History[dateKey]
	return ok && log.Completed
}

// Streak counts consecutive completed days ending today or yesterday.
func (h Habit) Streak(now time.Time) int {
	day := now
	if !h.CompletedOn(DateKey(day)) {
		day = day.AddDate(0, 0, -1)
	}
	streak := 0
	for h.CompletedOn(DateKey(day)) {
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak
}
