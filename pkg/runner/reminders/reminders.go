// Package reminders runs the reminder daemon.
package reminders

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"tableflip.dev/tick/pkg/app"
	"tableflip.dev/tick/pkg/notify"
	"tableflip.dev/tick/pkg/printers"
	"tableflip.dev/tick/pkg/remind"
)

// Daemon polls the reminder scanner until interrupted.
type Daemon struct {
	Interval time.Duration
	Notifier notify.Notifier
	Log      *zap.Logger

	App *app.App
}

// Do blocks in the scan loop until the context is cancelled.
func (n *Daemon) Do(ctx context.Context) error {
	if n.App == nil {
		return errors.New("can not watch reminders, no app state")
	}
	notifier := n.Notifier
	if notifier == nil {
		notifier = notify.NewTerminal()
	}

	scanner := remind.NewScanner(n.App.Snapshot, notifier, n.Log)
	if n.Interval > 0 {
		scanner.Interval = n.Interval
	}

	pp := printers.PrettyPrint{}
	pp.NewLine()
	pp.Title("Watching reminders (ctrl-c to stop)")

	err := scanner.Run(ctx)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
