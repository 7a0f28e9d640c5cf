package app

import (
	"context"
	gosync "sync"
	"testing"
	"time"

	"tableflip.dev/tick/pkg/model"
	"tableflip.dev/tick/pkg/state"
	"tableflip.dev/tick/pkg/store"
	"tableflip.dev/tick/pkg/sync"
)

type fakeCalendar struct {
	mu      gosync.Mutex
	creates int
	updates int

	createID string
	err      error
	block    chan struct{}
}

func (f *fakeCalendar) CreateEvent(ctx context.Context, token string, task model.Task) (string, error) {
	if f.block != nil {
		select {
		case <-f.block:
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.creates++
	return f.createID, f.err
}

func (f *fakeCalendar) UpdateEvent(ctx context.Context, token string, task model.Task) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.updates++
	return task.ExternalID, f.err
}

type fakeIdentity struct {
	loggedOut bool
}

func (f *fakeIdentity) Login(ctx context.Context) (sync.UserIdentity, string, error) {
	return sync.UserIdentity{DisplayName: "Alex", Email: "alex@example.com"}, "tok", nil
}

func (f *fakeIdentity) Logout(ctx context.Context) error {
	f.loggedOut = true
	return nil
}

type fakeSuggester struct {
	titles []string
	err    error
}

func (f *fakeSuggester) SuggestSubtasks(ctx context.Context, title string) ([]string, error) {
	return f.titles, f.err
}

func newTestApp(t *testing.T, dir string, opts Options) *App {
	t.Helper()
	kv, err := store.OpenPath(dir, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	opts.Store = kv
	a, err := New(opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return a
}

func TestFirstRunSeedsDefaults(t *testing.T) {
	a := newTestApp(t, t.TempDir(), Options{})

	if len(a.Tasks) != 1 || a.Tasks[0].Title != "Welcome to tick!" {
		t.Fatalf("expected the welcome task, got %+v", a.Tasks)
	}
	if len(a.Lists) != 2 {
		t.Fatalf("expected two seed lists, got %+v", a.Lists)
	}
	if len(a.FocusCategories) != 2 {
		t.Fatalf("expected two seed categories, got %+v", a.FocusCategories)
	}
}

func TestTaskLifecyclePersists(t *testing.T) {
	dir := t.TempDir()
	a := newTestApp(t, dir, Options{})

	task := model.NewTask("Buy milk")
	if err := a.AddTask(task); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.Tasks[0].ID != task.ID {
		t.Fatalf("new tasks go first: %+v", a.Tasks[0])
	}

	after, ok := a.ToggleTask(task.ID)
	if !ok || !after.IsCompleted {
		t.Fatalf("expected the task completed: %+v", after)
	}
	if a.Settings.Stats.CompletedTaskCount != 1 {
		t.Fatalf("completing must bump the counter, got %d", a.Settings.Stats.CompletedTaskCount)
	}

	// Untoggling does not decrement the counter.
	a.ToggleTask(task.ID)
	if a.Settings.Stats.CompletedTaskCount != 1 {
		t.Fatalf("untoggling must not decrement, got %d", a.Settings.Stats.CompletedTaskCount)
	}

	a.DeleteTask(task.ID)
	got, _ := state.FindTask(a.Tasks, task.ID)
	if !got.IsDeleted {
		t.Fatalf("expected the task in the trash")
	}

	a.PurgeTask(task.ID)
	if _, ok := state.FindTask(a.Tasks, task.ID); ok {
		t.Fatalf("expected the task gone")
	}
	a.Close()

	// A fresh app over the same directory sees the persisted outcome.
	b := newTestApp(t, dir, Options{})
	if _, ok := state.FindTask(b.Tasks, task.ID); ok {
		t.Fatalf("the purge must survive a restart")
	}
	if b.Settings.Stats.CompletedTaskCount != 1 {
		t.Fatalf("settings must survive a restart, got %d", b.Settings.Stats.CompletedTaskCount)
	}
}

func TestAddTaskMirrorsWhenSignedIn(t *testing.T) {
	cal := &fakeCalendar{createID: "remote-1"}
	a := newTestApp(t, t.TempDir(), Options{Calendar: cal, Identity: &fakeIdentity{}})

	if _, err := a.Login(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	task := model.NewTask("Standup")
	if err := a.AddTask(task); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	a.Flush()

	got, ok := state.FindTask(a.Tasks, task.ID)
	if !ok {
		t.Fatalf("task missing")
	}
	if got.ExternalID != "remote-1" {
		t.Fatalf("expected the remote id linked, got %q", got.ExternalID)
	}
}

func TestAddTaskSkipsMirrorSignedOut(t *testing.T) {
	cal := &fakeCalendar{createID: "remote-1"}
	a := newTestApp(t, t.TempDir(), Options{Calendar: cal})

	if err := a.AddTask(model.NewTask("Standup")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	a.Flush()

	cal.mu.Lock()
	defer cal.mu.Unlock()
	if cal.creates != 0 {
		t.Fatalf("signed-out adds must stay local, got %d calls", cal.creates)
	}
}

func TestLinkDiscardedWhenTaskPurgedMidFlight(t *testing.T) {
	cal := &fakeCalendar{createID: "remote-1", block: make(chan struct{})}
	a := newTestApp(t, t.TempDir(), Options{Calendar: cal, Identity: &fakeIdentity{}})
	if _, err := a.Login(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	task := model.NewTask("Ephemeral")
	if err := a.AddTask(task); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// The task disappears while the create call is still in flight.
	a.PurgeTask(task.ID)
	close(cal.block)
	a.Flush()

	if _, ok := state.FindTask(a.Tasks, task.ID); ok {
		t.Fatalf("the write-back must not resurrect a purged task")
	}
}

func TestUpdateBeforeLinkIsDropped(t *testing.T) {
	cal := &fakeCalendar{createID: "remote-1"}
	a := newTestApp(t, t.TempDir(), Options{Calendar: cal, Identity: &fakeIdentity{}})
	if _, err := a.Login(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	task := model.NewTask("Draft")
	task.ExternalID = "" // not yet linked
	a.UpdateTask(task)
	a.Flush()

	cal.mu.Lock()
	defer cal.mu.Unlock()
	if cal.updates != 0 {
		t.Fatalf("updates before the link lands must be dropped, got %d", cal.updates)
	}
}

func TestLogoutClearsPersistedToken(t *testing.T) {
	dir := t.TempDir()
	id := &fakeIdentity{}
	a := newTestApp(t, dir, Options{Identity: id})

	if _, err := a.Login(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.Token() != "tok" {
		t.Fatalf("expected the token held")
	}

	if err := a.Logout(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !id.loggedOut {
		t.Fatalf("expected the provider told")
	}
	if a.Token() != "" {
		t.Fatalf("expected the token dropped")
	}

	b := newTestApp(t, dir, Options{})
	if b.Token() != "" {
		t.Fatalf("the cleared token must not come back after a restart")
	}
}

func TestSuggestSubtasksAppends(t *testing.T) {
	a := newTestApp(t, t.TempDir(), Options{Suggest: &fakeSuggester{titles: []string{"one", "two"}}})

	task := model.NewTask("Plan trip")
	if err := a.AddTask(task); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	titles, err := a.SuggestSubtasks(context.Background(), task.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(titles) != 2 {
		t.Fatalf("unexpected titles %v", titles)
	}
	got, _ := state.FindTask(a.Tasks, task.ID)
	if len(got.Subtasks) != 2 {
		t.Fatalf("expected two appended subtasks, got %+v", got.Subtasks)
	}
}

func TestSuggestSubtasksFailureAppendsNothing(t *testing.T) {
	a := newTestApp(t, t.TempDir(), Options{Suggest: &fakeSuggester{err: context.DeadlineExceeded}})

	task := model.NewTask("Plan trip")
	if err := a.AddTask(task); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := a.SuggestSubtasks(context.Background(), task.ID); err == nil {
		t.Fatalf("expected the suggester error surfaced")
	}
	got, _ := state.FindTask(a.Tasks, task.ID)
	if len(got.Subtasks) != 0 {
		t.Fatalf("a failed suggestion must append nothing, got %+v", got.Subtasks)
	}
}

func TestDeleteListMovesTasksToInbox(t *testing.T) {
	a := newTestApp(t, t.TempDir(), Options{})

	l := a.AddList("Errands", "#f00")
	task := model.NewTask("Post office")
	task.ListID = l.ID
	if err := a.AddTask(task); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	before := len(a.Tasks)
	a.DeleteList(l.ID)
	if len(a.Tasks) != before {
		t.Fatalf("deleting a list must keep its tasks")
	}
	got, _ := state.FindTask(a.Tasks, task.ID)
	if got.ListID != model.InboxListID {
		t.Fatalf("expected the task refiled to the inbox, got %q", got.ListID)
	}
}

func TestToggleHabitPersists(t *testing.T) {
	dir := t.TempDir()
	a := newTestApp(t, dir, Options{})

	h := model.NewHabit("Read")
	if err := a.UpsertHabit(h); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	key := model.DateKey(time.Now())
	a.ToggleHabit(h.ID, key)

	b := newTestApp(t, dir, Options{})
	got, ok := state.FindHabit(b.Habits, h.ID)
	if !ok {
		t.Fatalf("habit missing after restart")
	}
	if !got.CompletedOn(key) {
		t.Fatalf("expected today's check persisted")
	}
}

func TestRecordFocusSessionSnapshotsTitle(t *testing.T) {
	a := newTestApp(t, t.TempDir(), Options{})

	task := model.NewTask("Write report")
	if err := a.AddTask(task); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	s := a.RecordFocusSession(25, task.ID, "")
	if s.TaskTitle != "Write report" {
		t.Fatalf("expected the title snapshotted, got %q", s.TaskTitle)
	}
	if a.Settings.Stats.KarmaScore != 50 || a.Settings.Stats.TotalFocusMinutes != 25 {
		t.Fatalf("unexpected stats %+v", a.Settings.Stats)
	}

	// The log entry survives the task itself.
	a.PurgeTask(task.ID)
	if a.FocusSessions[0].TaskTitle != "Write report" {
		t.Fatalf("the session log must not depend on the task record")
	}
}
