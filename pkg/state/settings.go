package state

import (
	"tableflip.dev/tick/pkg/model"
)

// CountTaskCompleted bumps the completed-task aggregate when a toggle
// lands on completed. Untoggling does not decrement; the counter tracks
// completion events, not current state.
func CountTaskCompleted(settings model.AppSettings) model.AppSettings {
	stats := settings.Stats
	stats.CompletedTaskCount++
	if stats.Level == 0 {
		stats.Level = 1
	}
	settings.Stats = stats
	return settings
}

// SetUserName updates the display name on the settings record.
func SetUserName(settings model.AppSettings, name string) model.AppSettings {
	settings.UserName = name
	return settings
}

// SetThemeColor updates the theme color on the settings record.
func SetThemeColor(settings model.AppSettings, color string) model.AppSettings {
	settings.ThemeColor = color
	return settings
}
