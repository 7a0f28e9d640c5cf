// Package focus records completed timer runs and shows the session log.
package focus

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"tableflip.dev/tick/pkg/app"
	"tableflip.dev/tick/pkg/model"
	"tableflip.dev/tick/pkg/printers"
	"tableflip.dev/tick/pkg/timeutil"
)

// Categories prints the configured timer categories.
type Categories struct {
	App *app.App
}

func (n *Categories) Do(ctx context.Context) error {
	if n.App == nil {
		return errors.New("can not get categories, no app state")
	}
	pp := printers.PrettyPrint{}
	pp.NewLine()
	pp.Title("Focus categories")
	pp.FocusCategories(n.App.FocusCategories)
	return nil
}

// AddCategory registers a timer category.
type AddCategory struct {
	Name     string
	Mode     string
	Duration string

	App *app.App
}

func (n *AddCategory) Do(ctx context.Context) error {
	if n.App == nil {
		return errors.New("can not add category, no app state")
	}
	c := model.FocusCategory{
		Name: n.Name,
		Mode: model.TimerMode(strings.ToLower(n.Mode)),
	}
	if n.Duration != "" {
		d, _, err := timeutil.ParseWindow(n.Duration)
		if err != nil {
			return err
		}
		c.DefaultDuration = int(d.Minutes())
	}
	n.App.AddFocusCategory(c)

	pp := printers.PrettyPrint{}
	pp.NewLine()
	pp.Title("Focus categories")
	pp.FocusCategories(n.App.FocusCategories)
	return nil
}

// Record logs one completed focus run and updates karma stats.
type Record struct {
	For      string // e.g. "25m", "1h30m"
	TaskID   string
	Category string

	App *app.App
}

func (n *Record) Do(ctx context.Context) error {
	if n.App == nil {
		return errors.New("can not record focus, no app state")
	}

	d, canonical, err := timeutil.ParseWindow(n.For)
	if err != nil {
		return err
	}
	minutes := int(d.Minutes())
	if minutes <= 0 {
		return errors.New("focus sessions are measured in whole minutes")
	}

	categoryID := ""
	if n.Category != "" {
		for _, c := range n.App.FocusCategories {
			if c.ID == n.Category || strings.EqualFold(c.Name, n.Category) {
				categoryID = c.ID
			}
		}
		if categoryID == "" {
			return fmt.Errorf("no focus category named %q", n.Category)
		}
	}

	n.App.RecordFocusSession(minutes, n.TaskID, categoryID)

	pp := printers.PrettyPrint{}
	pp.NewLine()
	pp.Title(fmt.Sprintf("Focused for %s", canonical))
	pp.Stats(n.App.Settings.Stats)
	pp.NewLine()
	return nil
}

// Log prints recorded sessions inside a time window (default one week).
type Log struct {
	Window string

	App *app.App
}

func (n *Log) Do(ctx context.Context) error {
	if n.App == nil {
		return errors.New("can not get focus log, no app state")
	}
	window, canonical, err := timeutil.ParseWindow(n.Window)
	if err != nil {
		return err
	}

	cutoff := time.Now().Add(-window)
	recent := make([]model.FocusSession, 0, len(n.App.FocusSessions))
	for _, s := range n.App.FocusSessions {
		if s.Timestamp.After(cutoff) {
			recent = append(recent, s)
		}
	}

	pp := printers.PrettyPrint{}
	pp.NewLine()
	pp.Title(fmt.Sprintf("Focus log (%s)", canonical))
	pp.FocusLog(recent, n.App.FocusCategories)
	return nil
}
