package add

import (
	"context"
	"testing"
	"time"

	"tableflip.dev/tick/pkg/app"
	"tableflip.dev/tick/pkg/model"
	"tableflip.dev/tick/pkg/state"
	"tableflip.dev/tick/pkg/store"
	"tableflip.dev/tick/pkg/sync"
)

type instantCalendar struct{}

func (instantCalendar) CreateEvent(ctx context.Context, token string, task model.Task) (string, error) {
	return "remote-1", nil
}

func (instantCalendar) UpdateEvent(ctx context.Context, token string, task model.Task) (string, error) {
	return task.ExternalID, nil
}

type stubIdentity struct{}

func (stubIdentity) Login(ctx context.Context) (sync.UserIdentity, string, error) {
	return sync.UserIdentity{DisplayName: "Alex"}, "tok", nil
}

func (stubIdentity) Logout(ctx context.Context) error { return nil }

// The inbox reprint runs while the mirror goroutine may still be
// writing the remote id back; every read in Do must go through the
// app lock or the race detector trips here.
func TestAddPrintsSafelyWhileMirrorInFlight(t *testing.T) {
	kv, err := store.OpenPath(t.TempDir(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	a, err := app.New(app.Options{Store: kv, Calendar: instantCalendar{}, Identity: stubIdentity{}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := a.Login(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i := 0; i < 20; i++ {
		s := Add{Title: "Standup prep", App: a}
		if err := s.Do(context.Background()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	a.Flush()

	tasks, _ := a.Snapshot()
	for _, task := range tasks {
		if task.Title == "Standup prep" && task.ExternalID != "remote-1" {
			t.Fatalf("expected every add linked after flush, got %+v", task)
		}
	}
}

func TestAddParsesDueDateFormats(t *testing.T) {
	day, allDay, err := parseDue("2026-09-02")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !allDay {
		t.Fatalf("a bare date is all-day")
	}
	if day.Hour() != 0 {
		t.Fatalf("unexpected time %v", day)
	}

	at, allDay, err := parseDue("2026-09-02 09:30")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if allDay {
		t.Fatalf("a timed date is not all-day")
	}
	if at.Hour() != 9 || at.Minute() != 30 {
		t.Fatalf("unexpected time %v", at)
	}

	if _, _, err := parseDue("next thursday-ish"); err == nil {
		t.Fatalf("expected an error for an unparseable date")
	}
}

func TestAddSmartFillsTaskFields(t *testing.T) {
	kv, err := store.OpenPath(t.TempDir(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	a, err := app.New(app.Options{Store: kv})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	s := Add{Title: "pay rent tomorrow at 5pm !high #bills", Smart: true, App: a}
	if err := s.Do(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tasks, _ := a.Snapshot()
	var got model.Task
	found := false
	for _, task := range tasks {
		if task.Title == "pay rent" {
			got, found = task, true
		}
	}
	if !found {
		t.Fatalf("expected the cleaned title, got %+v", tasks)
	}
	if got.Priority != model.PriorityHigh {
		t.Fatalf("expected high priority, got %v", got.Priority)
	}
	if len(got.Tags) != 1 || got.Tags[0] != "bills" {
		t.Fatalf("unexpected tags %v", got.Tags)
	}
	if got.DueDate == nil || got.IsAllDay {
		t.Fatalf("expected a timed due date, got %+v", got)
	}
	want := time.Now().AddDate(0, 0, 1)
	if !got.DueDate.SameDay(want) {
		t.Fatalf("expected tomorrow, got %v", got.DueDate)
	}
	if _, ok := state.FindTask(tasks, got.ID); !ok {
		t.Fatalf("task missing from the collection")
	}
}
