// Package complete toggles task completion.
package complete

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/tick/pkg/app"
	"tableflip.dev/tick/pkg/printers"
)

// Complete toggles the completion state of one task.
type Complete struct {
	ID string

	App *app.App
}

// Do flips the task and reports the result. Toggling a note is a
// defined no-op, which is worth telling the user about.
func (n *Complete) Do(ctx context.Context) error {
	if n.App == nil {
		return errors.New("can not complete, no app state")
	}

	task, ok := n.App.ToggleTask(n.ID)
	if !ok {
		return fmt.Errorf("no task with id %s", n.ID)
	}

	pp := printers.PrettyPrint{}
	pp.NewLine()
	if task.IsNote {
		pp.Title("Notes have no completion state")
	}
	pp.Tasks(task)
	return nil
}
