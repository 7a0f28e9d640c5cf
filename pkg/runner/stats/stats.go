// Package stats shows and edits the settings record.
package stats

import (
	"context"
	"errors"

	"tableflip.dev/tick/pkg/app"
	"tableflip.dev/tick/pkg/printers"
)

// Show prints the karma and focus aggregates.
type Show struct {
	App *app.App
}

func (n *Show) Do(ctx context.Context) error {
	if n.App == nil {
		return errors.New("can not get stats, no app state")
	}
	title := "Stats"
	if n.App.Settings.UserName != "" {
		title = n.App.Settings.UserName
	}

	pp := printers.PrettyPrint{}
	pp.NewLine()
	pp.Title(title)
	pp.Stats(n.App.Settings.Stats)
	pp.NewLine()
	return nil
}

// Configure updates the settings singleton.
type Configure struct {
	UserName   string
	ThemeColor string

	App *app.App
}

func (n *Configure) Do(ctx context.Context) error {
	if n.App == nil {
		return errors.New("can not configure, no app state")
	}
	if n.UserName != "" {
		n.App.SetUserName(n.UserName)
	}
	if n.ThemeColor != "" {
		n.App.SetThemeColor(n.ThemeColor)
	}

	pp := printers.PrettyPrint{}
	pp.NewLine()
	pp.Title("Settings saved")
	return nil
}
