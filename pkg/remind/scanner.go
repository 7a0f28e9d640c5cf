// Package remind detects tasks and habits whose trigger time equals the
// current minute and turns them into notifications. The scan itself is a
// pure aggregation over in-memory collections; it never refetches from
// the store, and a tick missed while the process was suspended is simply
// a missed reminder.
package remind

import (
	"time"

	"tableflip.dev/tick/pkg/model"
)

// Trigger is one matched item from a scan.
type Trigger struct {
	Kind  string // "task" or "habit"
	ID    string
	Title string
	Body  string
}

// MinuteKey truncates a time to its trigger minute. The key carries the
// date so a reminder at the same wall-clock minute tomorrow fires again.
func MinuteKey(now time.Time) string {
	return now.Local().Format("2006-01-02T15:04")
}

// Scan collects every task and habit triggering at now's minute.
//
// A task triggers on its explicit reminder, or on its due date when it
// is not an all-day task. Completed and soft-deleted tasks never
// trigger. A habit triggers when the minute-of-day matches one of its
// reminder entries and it has no completion recorded for today.
func Scan(now time.Time, tasks []model.Task, habits []model.Habit) []Trigger {
	var out []Trigger

	for _, t := range tasks {
		if t.IsCompleted || t.IsDeleted {
			continue
		}
		var trigger *model.Timestamp
		switch {
		case t.Reminder != nil:
			trigger = t.Reminder
		case t.DueDate != nil && !t.IsAllDay:
			trigger = t.DueDate
		}
		if trigger == nil || !trigger.SameMinute(now) {
			continue
		}
		body := t.Description
		if body == "" {
			body = "It's time!"
		}
		out = append(out, Trigger{Kind: "task", ID: t.ID, Title: t.Title, Body: body})
	}

	minuteOfDay := now.Local().Format("15:04")
	todayKey := model.DateKey(now)
	for _, h := range habits {
		if h.IsArchived || h.CompletedOn(todayKey) {
			continue
		}
		for _, r := range h.Reminders {
			if r == minuteOfDay {
				out = append(out, Trigger{Kind: "habit", ID: h.ID, Title: h.Name, Body: "Time to check in."})
				break
			}
		}
	}

	return out
}
