// Package get renders task views.
package get

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/tick/pkg/app"
	"tableflip.dev/tick/pkg/model"
	"tableflip.dev/tick/pkg/printers"
	"tableflip.dev/tick/pkg/state"
)

// Get prints one task view, or one list's tasks.
type Get struct {
	View   string
	List   string
	ShowID bool
	JSON   bool

	App *app.App
}

// Do filters and prints.
func (n *Get) Do(ctx context.Context) error {
	var title string
	var tasks []model.Task

	switch {
	case n.List != "":
		listID := n.List
		title = n.List
		for _, l := range n.App.Lists {
			if l.ID == n.List || strings.EqualFold(l.Name, n.List) {
				listID = l.ID
				title = l.Name
			}
		}
		tasks = state.FilterList(n.App.Tasks, listID)
	default:
		view := state.View(strings.ToLower(n.View))
		switch view {
		case state.ViewInbox, state.ViewToday, state.ViewCompleted, state.ViewTrash, state.ViewAll:
		case "":
			view = state.ViewInbox
		default:
			return fmt.Errorf("get: unknown view %q", n.View)
		}
		title = capitalize(string(view))
		tasks = state.FilterView(n.App.Tasks, view, time.Now())
	}

	if n.JSON {
		b, err := json.MarshalIndent(tasks, "", "  ")
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintln(color.Output, string(b))
		return nil
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	pp.NewLine()
	pp.TitleWithCount(title, len(tasks))
	pp.Tasks(tasks...)
	return nil
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
