package state

import (
	"time"

	"tableflip.dev/tick/pkg/model"
)

// View names the task filters the CLI exposes.
type View string

const (
	ViewInbox     View = "inbox"
	ViewToday     View = "today"
	ViewCompleted View = "completed"
	ViewTrash     View = "trash"
	ViewAll       View = "all"
)

// FilterView selects the tasks a view shows. Soft-deleted tasks appear
// only in trash; every other view excludes them.
func FilterView(tasks []model.Task, view View, now time.Time) []model.Task {
	out := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		if view == ViewTrash {
			if t.IsDeleted {
				out = append(out, t)
			}
			continue
		}
		if t.IsDeleted {
			continue
		}
		switch view {
		case ViewInbox:
			if t.ListID == model.InboxListID && !t.IsCompleted {
				out = append(out, t)
			}
		case ViewToday:
			if t.DueDate != nil && t.DueDate.SameDay(now) && !t.IsCompleted {
				out = append(out, t)
			}
		case ViewCompleted:
			if t.IsCompleted {
				out = append(out, t)
			}
		default:
			out = append(out, t)
		}
	}
	return out
}

// FilterList selects non-deleted tasks filed under one list.
func FilterList(tasks []model.Task, listID string) []model.Task {
	out := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.IsDeleted {
			continue
		}
		if t.ListID == listID {
			out = append(out, t)
		}
	}
	return out
}
