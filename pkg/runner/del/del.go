// Package del moves tasks to trash and empties it.
package del

import (
	"context"
	"errors"
	"time"

	"tableflip.dev/tick/pkg/app"
	"tableflip.dev/tick/pkg/printers"
	"tableflip.dev/tick/pkg/state"
)

// Delete soft-deletes a task into the trash view.
type Delete struct {
	ID string

	App *app.App
}

// Do marks the task deleted and reprints the trash.
func (n *Delete) Do(ctx context.Context) error {
	if n.App == nil {
		return errors.New("can not delete, no app state")
	}
	n.App.DeleteTask(n.ID)

	pp := printers.PrettyPrint{ShowID: true}
	pp.NewLine()
	pp.Title("Trash")
	pp.Tasks(state.FilterView(n.App.Tasks, state.ViewTrash, time.Now())...)
	return nil
}

// Purge removes a task permanently.
type Purge struct {
	ID string

	App *app.App
}

// Do removes the task from the collection outright.
func (n *Purge) Do(ctx context.Context) error {
	if n.App == nil {
		return errors.New("can not purge, no app state")
	}
	n.App.PurgeTask(n.ID)

	pp := printers.PrettyPrint{ShowID: true}
	pp.NewLine()
	pp.Title("Trash")
	pp.Tasks(state.FilterView(n.App.Tasks, state.ViewTrash, time.Now())...)
	return nil
}
