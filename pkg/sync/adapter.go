package sync

import (
	"context"
	"errors"
	gosync "sync"
	"time"

	"go.uber.org/zap"

	"tableflip.dev/tick/pkg/model"
	"tableflip.dev/tick/pkg/notify"
)

// DefaultTimeout bounds each remote call; expiry is an ordinary failure.
const DefaultTimeout = 10 * time.Second

// Adapter dispatches fire-and-forget calendar mirroring. OnTaskCreated
// and OnTaskUpdated return before the remote call resolves; completions
// are handled purely for side effects.
type Adapter struct {
	Calendar Calendar
	Tokens   TokenSource
	Notifier notify.Notifier
	Log      *zap.Logger
	Timeout  time.Duration

	// Link writes a remote id back onto the local task once a create
	// succeeds. The write-back is a second, narrowly-scoped mutation; it
	// must tolerate the task having been deleted in the meantime.
	Link func(taskID, externalID string)

	wg gosync.WaitGroup
}

func (a *Adapter) logger() *zap.Logger {
	if a.Log == nil {
		return zap.NewNop()
	}
	return a.Log
}

func (a *Adapter) timeout() time.Duration {
	if a.Timeout <= 0 {
		return DefaultTimeout
	}
	return a.Timeout
}

// OnTaskCreated mirrors a freshly created task. With no token held this
// is a no-op; the product stays fully usable signed out.
func (a *Adapter) OnTaskCreated(task model.Task) {
	if a.Calendar == nil || a.Tokens == nil {
		return
	}
	token := a.Tokens.Token()
	if token == "" {
		return
	}

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), a.timeout())
		defer cancel()

		remoteID, err := a.Calendar.CreateEvent(ctx, token, task)
		if err != nil {
			a.fail("create", task.ID, err)
			return
		}
		if remoteID != "" && a.Link != nil {
			a.Link(task.ID, remoteID)
		}
	}()
}

// OnTaskUpdated mirrors an update for a task already linked to a remote
// event. Tasks with no externalId are skipped — including updates racing
// ahead of a still-unresolved create, which keeps remote writes ordered.
func (a *Adapter) OnTaskUpdated(task model.Task) {
	if a.Calendar == nil || a.Tokens == nil || task.ExternalID == "" {
		return
	}
	token := a.Tokens.Token()
	if token == "" {
		return
	}

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), a.timeout())
		defer cancel()

		if _, err := a.Calendar.UpdateEvent(ctx, token, task); err != nil {
			a.fail("update", task.ID, err)
		}
	}()
}

// Flush waits for in-flight mirror calls. The CLI calls it before exit;
// tests use it to observe completions.
func (a *Adapter) Flush() {
	a.wg.Wait()
}

func (a *Adapter) fail(op, taskID string, err error) {
	a.logger().Warn("sync: remote mirror failed",
		zap.String("op", op),
		zap.String("task", taskID),
		zap.Error(err))
	if errors.Is(err, ErrUnauthorized) {
		// Local-only housekeeping; the user re-authenticates on next use.
		a.Tokens.ClearToken()
	}
	if a.Notifier != nil {
		a.Notifier.Notify("Sync Failed", "Could not save task to the calendar. Check connection.")
	}
}
