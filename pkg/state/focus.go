package state

import (
	"time"

	"tableflip.dev/tick/pkg/model"
)

// AddFocusCategory appends a focus timer category.
func AddFocusCategory(categories []model.FocusCategory, c model.FocusCategory) []model.FocusCategory {
	if c.ID == "" {
		c.ID = model.NewID()
	}
	if !c.Mode.IsValid() {
		c.Mode = model.TimerPomo
	}
	next := make([]model.FocusCategory, 0, len(categories)+1)
	next = append(next, categories...)
	next = append(next, c)
	return next
}

// RecordFocusSession prepends a completed timer run to the session log and
// updates the settings aggregates from the same pre-update snapshot:
// karma gains twice the focused minutes, total minutes gains the minutes.
func RecordFocusSession(sessions []model.FocusSession, settings model.AppSettings, durationMinutes int, taskID, taskTitle, categoryID string, now time.Time) ([]model.FocusSession, model.AppSettings) {
	session := model.FocusSession{
		ID:         model.NewID(),
		Duration:   durationMinutes,
		Timestamp:  model.At(now),
		TaskID:     taskID,
		TaskTitle:  taskTitle,
		CategoryID: categoryID,
	}
	next := make([]model.FocusSession, 0, len(sessions)+1)
	next = append(next, session)
	next = append(next, sessions...)

	stats := settings.Stats
	stats.KarmaScore += 2 * durationMinutes
	stats.TotalFocusMinutes += durationMinutes
	if stats.Level == 0 {
		stats.Level = 1
	}
	settings.Stats = stats

	return next, settings
}
