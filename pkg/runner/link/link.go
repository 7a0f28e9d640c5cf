// Package link merges a standalone task under a parent as a subtask.
package link

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/tick/pkg/app"
	"tableflip.dev/tick/pkg/printers"
	"tableflip.dev/tick/pkg/state"
)

// Link performs the one-way subtask merge. There is no unlink.
type Link struct {
	ChildID  string
	ParentID string

	App *app.App
}

// Do merges and prints the updated parent.
func (n *Link) Do(ctx context.Context) error {
	if n.App == nil {
		return errors.New("can not link, no app state")
	}
	if n.ChildID == n.ParentID {
		return errors.New("a task cannot be its own subtask")
	}

	n.App.LinkTask(n.ChildID, n.ParentID)

	parent, ok := state.FindTask(n.App.Tasks, n.ParentID)
	if !ok {
		return fmt.Errorf("no task with id %s", n.ParentID)
	}

	pp := printers.PrettyPrint{}
	pp.NewLine()
	pp.Tasks(parent)
	return nil
}
