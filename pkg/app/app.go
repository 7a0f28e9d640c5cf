// Package app holds the application state: the in-memory collections,
// the store that snapshots them, and the collaborators that mirror and
// notify. Every mutation goes mutate → persist → (maybe) dispatch sync,
// in that order; the remote mirror is always a follow-up effect, never a
// precondition for local success.
package app

import (
	"context"
	"fmt"
	gosync "sync"
	"time"

	"go.uber.org/zap"

	"tableflip.dev/tick/pkg/assist"
	"tableflip.dev/tick/pkg/model"
	"tableflip.dev/tick/pkg/notify"
	"tableflip.dev/tick/pkg/state"
	"tableflip.dev/tick/pkg/store"
	"tableflip.dev/tick/pkg/sync"
)

// App is the explicit application-state struct. The CLI holds one and
// runners mutate through it.
type App struct {
	mu gosync.Mutex

	kv       *store.KV
	log      *zap.Logger
	notifier notify.Notifier
	identity sync.Identity
	suggest  assist.Suggester
	adapter  *sync.Adapter

	Tasks           []model.Task
	Lists           []model.List
	Habits          []model.Habit
	FocusCategories []model.FocusCategory
	FocusSessions   []model.FocusSession
	Settings        model.AppSettings

	token string
}

// Options carries the collaborators for New. Nil collaborators disable
// the matching feature instead of failing.
type Options struct {
	Store    *store.KV
	Log      *zap.Logger
	Notifier notify.Notifier
	Calendar sync.Calendar
	Identity sync.Identity
	Suggest  assist.Suggester
	Timeout  time.Duration
}

// New loads all collections from the store, seeding first-run defaults.
func New(opts Options) (*App, error) {
	if opts.Store == nil {
		return nil, fmt.Errorf("app: store is required")
	}
	log := opts.Log
	if log == nil {
		log = zap.NewNop()
	}

	a := &App{
		kv:       opts.Store,
		log:      log,
		notifier: opts.Notifier,
		identity: opts.Identity,
		suggest:  opts.Suggest,
	}
	a.adapter = &sync.Adapter{
		Calendar: opts.Calendar,
		Tokens:   a,
		Notifier: opts.Notifier,
		Log:      log,
		Timeout:  opts.Timeout,
		Link:     a.linkExternalID,
	}

	a.load()
	return a, nil
}

func (a *App) load() {
	a.Tasks = store.Load(a.kv, store.KeyTasks, seedTasks())
	a.Lists = store.Load(a.kv, store.KeyLists, seedLists())
	a.Habits = store.Load(a.kv, store.KeyHabits, []model.Habit{})
	a.FocusCategories = store.Load(a.kv, store.KeyFocusCategories, seedFocusCategories())
	a.FocusSessions = store.Load(a.kv, store.KeyFocusSessions, []model.FocusSession{})
	a.Settings = store.Load(a.kv, store.KeySettings, model.AppSettings{})
	a.token = store.Load(a.kv, store.KeySyncToken, "")
}

// Close waits out in-flight sync calls and flushes the logger.
func (a *App) Close() {
	a.adapter.Flush()
	_ = a.log.Sync()
}

// Token returns the held access token. Part of sync.TokenSource.
func (a *App) Token() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.token
}

// ClearToken drops the held token, locally only. Part of sync.TokenSource.
func (a *App) ClearToken() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.token = ""
	a.kv.Erase(store.KeySyncToken)
}

func (a *App) setToken(token string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.token = token
	store.Save(a.kv, store.KeySyncToken, token)
}

// linkExternalID is the narrow phase-2 write-back after a create sync.
func (a *App) linkExternalID(taskID, externalID string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if _, ok := state.FindTask(a.Tasks, taskID); !ok {
		// Deleted while the sync call was in flight; discard the result.
		return
	}
	a.Tasks = state.SetExternalID(a.Tasks, taskID, externalID)
	store.Save(a.kv, store.KeyTasks, a.Tasks)
}

// AddTask inserts the task, persists, and dispatches the create mirror.
func (a *App) AddTask(t model.Task) error {
	a.mu.Lock()
	next, err := state.AddTask(a.Tasks, t)
	if err != nil {
		a.mu.Unlock()
		return err
	}
	a.Tasks = next
	store.Save(a.kv, store.KeyTasks, a.Tasks)
	a.mu.Unlock()

	a.adapter.OnTaskCreated(t)
	return nil
}

// UpdateTask replaces the task, persists, and dispatches the update
// mirror when the task is linked to a remote event.
func (a *App) UpdateTask(t model.Task) {
	a.mu.Lock()
	a.Tasks = state.UpdateTask(a.Tasks, t)
	store.Save(a.kv, store.KeyTasks, a.Tasks)
	a.mu.Unlock()

	a.adapter.OnTaskUpdated(t)
}

// ToggleTask flips completion; completing bumps the completed counter.
func (a *App) ToggleTask(taskID string) (model.Task, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()

	before, ok := state.FindTask(a.Tasks, taskID)
	a.Tasks = state.ToggleTaskCompletion(a.Tasks, taskID)
	after, _ := state.FindTask(a.Tasks, taskID)
	if ok && !before.IsCompleted && after.IsCompleted {
		a.Settings = state.CountTaskCompleted(a.Settings)
		store.Save(a.kv, store.KeySettings, a.Settings)
	}
	store.Save(a.kv, store.KeyTasks, a.Tasks)
	return after, ok
}

// DeleteTask soft-deletes into trash.
func (a *App) DeleteTask(taskID string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.Tasks = state.SoftDeleteTask(a.Tasks, taskID)
	store.Save(a.kv, store.KeyTasks, a.Tasks)
}

// PurgeTask removes the task permanently.
func (a *App) PurgeTask(taskID string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.Tasks = state.HardDeleteTask(a.Tasks, taskID)
	store.Save(a.kv, store.KeyTasks, a.Tasks)
}

// LinkTask merges child into parent as a subtask.
func (a *App) LinkTask(childID, parentID string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.Tasks = state.LinkAsSubtask(a.Tasks, childID, parentID)
	store.Save(a.kv, store.KeyTasks, a.Tasks)
}

// AddList creates a list.
func (a *App) AddList(name, color string) model.List {
	a.mu.Lock()
	defer a.mu.Unlock()
	next, l := state.AddList(a.Lists, name, color)
	a.Lists = next
	store.Save(a.kv, store.KeyLists, a.Lists)
	return l
}

// DeleteList removes the list and refiles its tasks to the inbox. Both
// collections are persisted from the same pass.
func (a *App) DeleteList(listID string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.Lists, a.Tasks = state.DeleteList(a.Lists, a.Tasks, listID)
	store.Save(a.kv, store.KeyLists, a.Lists)
	store.Save(a.kv, store.KeyTasks, a.Tasks)
}

// UpsertHabit adds or replaces a habit.
func (a *App) UpsertHabit(h model.Habit) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	next, err := state.UpsertHabit(a.Habits, h)
	if err != nil {
		return err
	}
	a.Habits = next
	store.Save(a.kv, store.KeyHabits, a.Habits)
	return nil
}

// DeleteHabit removes a habit.
func (a *App) DeleteHabit(habitID string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.Habits = state.DeleteHabit(a.Habits, habitID)
	store.Save(a.kv, store.KeyHabits, a.Habits)
}

// ArchiveHabit hides a habit from active views and reminder scans.
func (a *App) ArchiveHabit(habitID string, archived bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.Habits = state.SetHabitArchived(a.Habits, habitID, archived)
	store.Save(a.kv, store.KeyHabits, a.Habits)
}

// ToggleHabit toggles the completion entry for a date.
func (a *App) ToggleHabit(habitID, dateKey string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.Habits = state.ToggleHabitCheck(a.Habits, habitID, dateKey, time.Now())
	store.Save(a.kv, store.KeyHabits, a.Habits)
}

// AddFocusCategory registers a timer category.
func (a *App) AddFocusCategory(c model.FocusCategory) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.FocusCategories = state.AddFocusCategory(a.FocusCategories, c)
	store.Save(a.kv, store.KeyFocusCategories, a.FocusCategories)
}

// RecordFocusSession logs a completed timer run and updates the stats
// aggregates from the same snapshot.
func (a *App) RecordFocusSession(durationMinutes int, taskID, categoryID string) model.FocusSession {
	a.mu.Lock()
	defer a.mu.Unlock()

	taskTitle := ""
	if taskID != "" {
		if t, ok := state.FindTask(a.Tasks, taskID); ok {
			taskTitle = t.Title
		}
	}
	a.FocusSessions, a.Settings = state.RecordFocusSession(
		a.FocusSessions, a.Settings, durationMinutes, taskID, taskTitle, categoryID, time.Now())
	store.Save(a.kv, store.KeyFocusSessions, a.FocusSessions)
	store.Save(a.kv, store.KeySettings, a.Settings)
	return a.FocusSessions[0]
}

// Login obtains a token from the identity provider and stores it.
func (a *App) Login(ctx context.Context) (sync.UserIdentity, error) {
	if a.identity == nil {
		return sync.UserIdentity{}, sync.ErrNoIdentityProvider
	}
	user, token, err := a.identity.Login(ctx)
	if err != nil {
		return sync.UserIdentity{}, err
	}
	a.setToken(token)
	return user, nil
}

// Logout tells the provider and drops the local token either way.
func (a *App) Logout(ctx context.Context) error {
	var err error
	if a.identity != nil {
		err = a.identity.Logout(ctx)
	}
	a.ClearToken()
	return err
}

// SuggestSubtasks asks the completion collaborator to break the task
// down and appends the suggestions as incomplete subtasks. Failures are
// logged and append nothing.
func (a *App) SuggestSubtasks(ctx context.Context, taskID string) ([]string, error) {
	if a.suggest == nil {
		return nil, assist.ErrNoAPIKey
	}
	a.mu.Lock()
	task, ok := state.FindTask(a.Tasks, taskID)
	a.mu.Unlock()
	if !ok {
		return nil, fmt.Errorf("app: no task with id %s", taskID)
	}

	titles, err := a.suggest.SuggestSubtasks(ctx, task.Title)
	if err != nil {
		a.log.Warn("app: subtask suggestion failed", zap.String("task", taskID), zap.Error(err))
		return nil, err
	}

	a.mu.Lock()
	a.Tasks = state.AppendSubtasks(a.Tasks, taskID, titles)
	store.Save(a.kv, store.KeyTasks, a.Tasks)
	a.mu.Unlock()
	return titles, nil
}

// SetUserName updates and persists the display name.
func (a *App) SetUserName(name string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.Settings = state.SetUserName(a.Settings, name)
	store.Save(a.kv, store.KeySettings, a.Settings)
}

// SetThemeColor updates and persists the theme color.
func (a *App) SetThemeColor(color string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.Settings = state.SetThemeColor(a.Settings, color)
	store.Save(a.kv, store.KeySettings, a.Settings)
}

// Snapshot returns the current task and habit collections for the
// reminder scanner.
func (a *App) Snapshot() ([]model.Task, []model.Habit) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.Tasks, a.Habits
}

// Flush waits for in-flight sync calls; exposed for tests and shutdown.
func (a *App) Flush() {
	a.adapter.Flush()
}
