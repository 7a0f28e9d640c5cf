// Package habit manages habits and their completion history.
package habit

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"tableflip.dev/tick/pkg/app"
	"tableflip.dev/tick/pkg/model"
	"tableflip.dev/tick/pkg/printers"
	"tableflip.dev/tick/pkg/state"
)

func find(habits []model.Habit, raw string) (model.Habit, bool) {
	for _, h := range habits {
		if h.ID == raw || strings.EqualFold(h.Name, raw) {
			return h, true
		}
	}
	return model.Habit{}, false
}

// Show prints the habit list with today's check state.
type Show struct {
	ShowID bool

	App *app.App
}

func (n *Show) Do(ctx context.Context) error {
	if n.App == nil {
		return errors.New("can not get habits, no app state")
	}
	pp := printers.PrettyPrint{ShowID: n.ShowID}
	pp.NewLine()
	pp.Title("Habits")
	pp.Habits(n.App.Habits, time.Now())
	return nil
}

// Add creates a daily habit.
type Add struct {
	Name      string
	Icon      string
	Color     string
	Reminders []string // "HH:mm"

	App *app.App
}

func (n *Add) Do(ctx context.Context) error {
	if n.App == nil {
		return errors.New("can not add habit, no app state")
	}
	h := model.NewHabit(n.Name)
	h.Icon = n.Icon
	h.Color = n.Color
	for _, r := range n.Reminders {
		if _, err := time.Parse("15:04", r); err != nil {
			return fmt.Errorf("bad reminder %q, want HH:mm", r)
		}
		h.Reminders = append(h.Reminders, r)
	}
	if err := n.App.UpsertHabit(h); err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	pp.NewLine()
	pp.Title("Habits")
	pp.Habits(n.App.Habits, time.Now())
	return nil
}

// Check toggles a habit's completion for a day (today by default).
type Check struct {
	Name string
	On   string // "yyyy-MM-dd", optional

	App *app.App
}

func (n *Check) Do(ctx context.Context) error {
	if n.App == nil {
		return errors.New("can not check habit, no app state")
	}
	h, ok := find(n.App.Habits, n.Name)
	if !ok {
		return fmt.Errorf("no habit named %q", n.Name)
	}

	dateKey := model.DateKey(time.Now())
	if n.On != "" {
		if _, err := time.Parse(model.DateKeyLayout, n.On); err != nil {
			return fmt.Errorf("bad date %q, want yyyy-MM-dd", n.On)
		}
		dateKey = n.On
	}

	n.App.ToggleHabit(h.ID, dateKey)

	updated, _ := state.FindHabit(n.App.Habits, h.ID)
	pp := printers.PrettyPrint{}
	pp.NewLine()
	if updated.CompletedOn(dateKey) {
		pp.Title(fmt.Sprintf("%s ✔ %s", updated.Name, dateKey))
	} else {
		pp.Title(fmt.Sprintf("%s unchecked for %s", updated.Name, dateKey))
	}
	pp.Habits(n.App.Habits, time.Now())
	return nil
}

// Stats prints the habit stats table.
type Stats struct {
	App *app.App
}

func (n *Stats) Do(ctx context.Context) error {
	if n.App == nil {
		return errors.New("can not get habit stats, no app state")
	}
	pp := printers.PrettyPrint{}
	pp.NewLine()
	pp.Title("Habit stats")
	pp.HabitStats(n.App.Habits, time.Now())
	return nil
}

// Archive hides or restores a habit.
type Archive struct {
	Name    string
	Restore bool

	App *app.App
}

func (n *Archive) Do(ctx context.Context) error {
	if n.App == nil {
		return errors.New("can not archive habit, no app state")
	}
	h, ok := find(n.App.Habits, n.Name)
	if !ok {
		return fmt.Errorf("no habit named %q", n.Name)
	}
	n.App.ArchiveHabit(h.ID, !n.Restore)

	pp := printers.PrettyPrint{}
	pp.NewLine()
	pp.Title("Habits")
	pp.Habits(n.App.Habits, time.Now())
	return nil
}

// Delete removes a habit and its history.
type Delete struct {
	Name string

	App *app.App
}

func (n *Delete) Do(ctx context.Context) error {
	if n.App == nil {
		return errors.New("can not delete habit, no app state")
	}
	h, ok := find(n.App.Habits, n.Name)
	if !ok {
		return fmt.Errorf("no habit named %q", n.Name)
	}
	n.App.DeleteHabit(h.ID)

	pp := printers.PrettyPrint{}
	pp.NewLine()
	pp.Title("Habits")
	pp.Habits(n.App.Habits, time.Now())
	return nil
}
