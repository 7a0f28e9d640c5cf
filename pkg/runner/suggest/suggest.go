// Package suggest asks the completion collaborator for subtasks.
package suggest

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/tick/pkg/app"
	"tableflip.dev/tick/pkg/printers"
	"tableflip.dev/tick/pkg/state"
)

// Suggest appends AI-suggested subtasks to one task.
type Suggest struct {
	ID string

	App *app.App
}

// Do fetches suggestions and shows the enriched task.
func (n *Suggest) Do(ctx context.Context) error {
	if n.App == nil {
		return errors.New("can not suggest, no app state")
	}

	titles, err := n.App.SuggestSubtasks(ctx, n.ID)
	if err != nil {
		return err
	}
	if len(titles) == 0 {
		return errors.New("no suggestions came back")
	}

	task, ok := state.FindTask(n.App.Tasks, n.ID)
	if !ok {
		return fmt.Errorf("no task with id %s", n.ID)
	}

	pp := printers.PrettyPrint{}
	pp.NewLine()
	pp.Tasks(task)
	return nil
}
