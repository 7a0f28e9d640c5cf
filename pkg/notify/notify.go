// Package notify defines the notification collaborator. Calls are
// fire-and-forget; no return value is consumed by the core.
package notify

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Notifier delivers local notifications and audible alerts.
type Notifier interface {
	RequestPermission(ctx context.Context) error
	Notify(title, body string)
	PlayAlert()
}

// Terminal writes notifications to a terminal and rings the bell for
// audible alerts.
type Terminal struct {
	Out io.Writer
}

// NewTerminal returns a Terminal notifier on the color-capable stdout.
func NewTerminal() *Terminal {
	return &Terminal{Out: color.Output}
}

func (t *Terminal) RequestPermission(ctx context.Context) error {
	// The terminal needs no permission grant.
	return nil
}

func (t *Terminal) Notify(title, body string) {
	bold := color.New(color.Bold, color.FgHiYellow)
	faint := color.New(color.Faint)
	_, _ = bold.Fprintf(t.Out, "⏰ %s\n", title)
	if body != "" {
		_, _ = faint.Fprintf(t.Out, "   %s\n", body)
	}
}

func (t *Terminal) PlayAlert() {
	_, _ = fmt.Fprint(t.Out, "\a")
}
