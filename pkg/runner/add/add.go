// Package add creates tasks from CLI input.
package add

import (
	"context"
	"fmt"
	"strings"
	"time"

	"tableflip.dev/tick/pkg/app"
	"tableflip.dev/tick/pkg/model"
	"tableflip.dev/tick/pkg/nlp"
	"tableflip.dev/tick/pkg/printers"
	"tableflip.dev/tick/pkg/state"
)

const (
	layoutDay    = "2006-01-02"
	layoutMinute = "2006-01-02 15:04"
)

// Add creates one task, optionally through the quick-add parser.
type Add struct {
	Title    string
	List     string
	Priority string
	Due      string
	Note     bool
	Smart    bool

	App *app.App
}

// Do builds and inserts the task, then reprints the inbox view.
func (n *Add) Do(ctx context.Context) error {
	t := model.NewTask(n.Title)
	t.IsNote = n.Note

	if n.Smart {
		parsed := nlp.Parse(n.Title, time.Now())
		t.Title = parsed.Title
		t.Priority = parsed.Priority
		t.Tags = parsed.Tags
		t.IsAllDay = parsed.IsAllDay
		if parsed.DueDate != nil {
			due := model.At(*parsed.DueDate)
			t.DueDate = &due
		}
	}

	if n.Priority != "" {
		p, err := model.ParsePriority(n.Priority)
		if err != nil {
			return err
		}
		t.Priority = p
	}

	if n.Due != "" {
		due, allDay, err := parseDue(n.Due)
		if err != nil {
			return err
		}
		ts := model.At(due)
		t.DueDate = &ts
		t.IsAllDay = allDay
	}

	if n.List != "" {
		listID, err := resolveList(n.App.Lists, n.List)
		if err != nil {
			return err
		}
		t.ListID = listID
	}

	if err := n.App.AddTask(t); err != nil {
		return err
	}

	// AddTask dispatches the calendar mirror in the background; its
	// write-back may land while we print, so read under the app lock.
	tasks, _ := n.App.Snapshot()

	pp := printers.PrettyPrint{}
	pp.Title("Inbox")
	pp.Tasks(state.FilterView(tasks, state.ViewInbox, time.Now())...)
	return nil
}

func parseDue(raw string) (time.Time, bool, error) {
	if t, err := time.ParseInLocation(layoutMinute, raw, time.Local); err == nil {
		return t, false, nil
	}
	if t, err := time.ParseInLocation(layoutDay, raw, time.Local); err == nil {
		return t, true, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, false, nil
	}
	return time.Time{}, false, fmt.Errorf("add: cannot parse due date %q", raw)
}

func resolveList(lists []model.List, raw string) (string, error) {
	if strings.EqualFold(raw, model.InboxListID) {
		return model.InboxListID, nil
	}
	for _, l := range lists {
		if l.ID == raw || strings.EqualFold(l.Name, raw) {
			return l.ID, nil
		}
	}
	return "", fmt.Errorf("add: no list named %q", raw)
}
