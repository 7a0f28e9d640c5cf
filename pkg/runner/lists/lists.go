// Package lists manages the task list buckets.
package lists

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"tableflip.dev/tick/pkg/app"
	"tableflip.dev/tick/pkg/printers"
)

// Show prints every list with its task count.
type Show struct {
	ShowID bool

	App *app.App
}

func (n *Show) Do(ctx context.Context) error {
	if n.App == nil {
		return errors.New("can not get lists, no app state")
	}
	pp := printers.PrettyPrint{ShowID: n.ShowID}
	pp.NewLine()
	pp.Title("Lists")
	pp.Lists(n.App.Lists, n.App.Tasks)
	return nil
}

// Add creates a list.
type Add struct {
	Name  string
	Color string

	App *app.App
}

func (n *Add) Do(ctx context.Context) error {
	if n.App == nil {
		return errors.New("can not add list, no app state")
	}
	if strings.TrimSpace(n.Name) == "" {
		return errors.New("list name is required")
	}
	n.App.AddList(n.Name, n.Color)

	pp := printers.PrettyPrint{}
	pp.NewLine()
	pp.Title("Lists")
	pp.Lists(n.App.Lists, n.App.Tasks)
	return nil
}

// Delete removes a list; its tasks are refiled to the inbox, never lost.
type Delete struct {
	Name string

	App *app.App
}

func (n *Delete) Do(ctx context.Context) error {
	if n.App == nil {
		return errors.New("can not delete list, no app state")
	}

	listID := ""
	for _, l := range n.App.Lists {
		if l.ID == n.Name || strings.EqualFold(l.Name, n.Name) {
			listID = l.ID
			break
		}
	}
	if listID == "" {
		return fmt.Errorf("no list named %q", n.Name)
	}

	n.App.DeleteList(listID)

	pp := printers.PrettyPrint{}
	pp.NewLine()
	pp.Title("Lists")
	pp.Lists(n.App.Lists, n.App.Tasks)
	return nil
}
