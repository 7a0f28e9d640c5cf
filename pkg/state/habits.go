package state

import (
	"time"

	"tableflip.dev/tick/pkg/model"
)

// UpsertHabit replaces a habit with a matching id or appends a new one.
func UpsertHabit(habits []model.Habit, h model.Habit) ([]model.Habit, error) {
	if err := h.Validate(); err != nil {
		return habits, err
	}
	replaced := false
	next := make([]model.Habit, len(habits))
	for i, existing := range habits {
		if existing.ID == h.ID {
			// createdDate is immutable after creation.
			h.CreatedDate = existing.CreatedDate
			next[i] = h
			replaced = true
		} else {
			next[i] = existing
		}
	}
	if !replaced {
		next = append(next, h)
	}
	return next, nil
}

// DeleteHabit removes the habit outright.
func DeleteHabit(habits []model.Habit, habitID string) []model.Habit {
	next := make([]model.Habit, 0, len(habits))
	for _, h := range habits {
		if h.ID == habitID {
			continue
		}
		next = append(next, h)
	}
	return next
}

// SetHabitArchived flips the archived flag on the matching habit.
func SetHabitArchived(habits []model.Habit, habitID string, archived bool) []model.Habit {
	next := make([]model.Habit, len(habits))
	for i, h := range habits {
		if h.ID == habitID {
			h.IsArchived = archived
		}
		next[i] = h
	}
	return next
}

// ToggleHabitCheck toggles the completion entry for the given date key.
// A completed entry is removed rather than flipped to completed=false,
// keeping the completion count equal to the history key count.
func ToggleHabitCheck(habits []model.Habit, habitID, dateKey string, now time.Time) []model.Habit {
	next := make([]model.Habit, len(habits))
	for i, h := range habits {
		if h.ID == habitID {
			history := make(map[string]model.HabitLog, len(h.History)+1)
			for k, v := range h.History {
				history[k] = v
			}
			if log, ok := history[dateKey]; ok && log.Completed {
				delete(history, dateKey)
			} else {
				history[dateKey] = model.HabitLog{
					Completed: true,
					Timestamp: model.At(now),
				}
			}
			h.History = history
		}
		next[i] = h
	}
	return next
}

// FindHabit looks a habit up by id.
func FindHabit(habits []model.Habit, habitID string) (model.Habit, bool) {
	for _, h := range habits {
		if h.ID == habitID {
			return h, true
		}
	}
	return model.Habit{}, false
}
