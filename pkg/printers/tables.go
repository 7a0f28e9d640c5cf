package printers

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/tick/pkg/model"
)

// HabitStats renders the habit stats table: streaks, totals, and today's
// check state.
func (pp *PrettyPrint) HabitStats(habits []model.Habit, now time.Time) {
	table := uitable.New()
	table.MaxColWidth = 40
	table.AddRow("HABIT", "STREAK", "TOTAL", "TODAY")

	today := model.DateKey(now)
	for _, h := range habits {
		if h.IsArchived {
			continue
		}
		checked := " "
		if h.CompletedOn(today) {
			checked = "✔"
		}
		table.AddRow(h.Name, h.Streak(now), h.CompletionCount(), checked)
	}
	_, _ = fmt.Fprintln(color.Output, table)
	_, _ = fmt.Fprintln(color.Output, "")
}

// Habits renders the habit list with today's check state.
func (pp *PrettyPrint) Habits(habits []model.Habit, now time.Time) {
	if len(habits) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Fprint(color.Output, " none\n\n")
		return
	}
	t := color.New()
	faint := color.New(color.Faint)
	today := model.DateKey(now)
	for _, h := range habits {
		mark := "○"
		if h.CompletedOn(today) {
			mark = "●"
		}
		if h.IsArchived {
			mark = "✕"
		}
		_, _ = t.Fprintf(color.Output, "%s %s", mark, h.Name)
		if pp.ShowID {
			_, _ = faint.Fprintf(color.Output, "  (%s)", h.ID)
		}
		_, _ = t.Fprintln(color.Output, "")
	}
	_, _ = t.Fprintln(color.Output, "")
}

// FocusLog renders completed focus sessions, newest first.
func (pp *PrettyPrint) FocusLog(sessions []model.FocusSession, categories []model.FocusCategory) {
	table := uitable.New()
	table.MaxColWidth = 40
	table.AddRow("WHEN", "DURATION", "TASK", "CATEGORY")

	names := make(map[string]string, len(categories))
	for _, c := range categories {
		names[c.ID] = c.Name
	}
	for _, s := range sessions {
		table.AddRow(
			s.Timestamp.Local().Format("Jan 2 15:04"),
			fmt.Sprintf("%dm", s.Duration),
			s.TaskTitle,
			names[s.CategoryID],
		)
	}
	_, _ = fmt.Fprintln(color.Output, table)
	_, _ = fmt.Fprintln(color.Output, "")
}

// FocusCategories renders the configured timer categories.
func (pp *PrettyPrint) FocusCategories(categories []model.FocusCategory) {
	table := uitable.New()
	table.AddRow("CATEGORY", "MODE", "DEFAULT")
	for _, c := range categories {
		table.AddRow(c.Name, string(c.Mode), fmt.Sprintf("%dm", c.DefaultDuration))
	}
	_, _ = fmt.Fprintln(color.Output, table)
	_, _ = fmt.Fprintln(color.Output, "")
}
