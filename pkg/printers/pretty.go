package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/tick/pkg/glyph"
	"tableflip.dev/tick/pkg/model"
)

type PrettyPrint struct {
	ShowID bool
}

var (
	spacing = strings.Repeat(" ", len("1716497112000.12  "))
)

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Println(title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Print(title)
	_, _ = c.Printf(" - %d", count)

	switch count {
	case 1:
		_, _ = c.Println(" task")
	default:
		_, _ = c.Println(" tasks")
	}
}

// Tasks renders a task collection, one line each plus subtask lines.
func (pp *PrettyPrint) Tasks(tasks ...model.Task) {
	if len(tasks) == 0 {
		f := color.New(color.Faint, color.Italic)
		if pp.ShowID {
			_, _ = f.Print(spacing)
		}
		_, _ = f.Print(" none\n\n")
		return
	}

	t := color.New()
	y := color.New(color.FgHiYellow, color.Italic, color.Faint)
	faint := color.New(color.Faint)

	for _, task := range tasks {
		if pp.ShowID {
			_, _ = y.Print(task.ID)
			_, _ = y.Print(strings.Repeat(" ", max(1, len(spacing)-len(task.ID))))
		}
		title := task.Title
		if task.IsCompleted || task.IsWontDo {
			title = glyph.Strike(title)
		}
		_, _ = t.Printf("%s %s %s", signifierFor(task), bulletFor(task), title)
		if task.DueDate != nil {
			_, _ = faint.Printf("  (%s)", dueLabel(*task.DueDate, task.IsAllDay))
		}
		if len(task.Tags) > 0 {
			_, _ = faint.Printf("  #%s", strings.Join(task.Tags, " #"))
		}
		_, _ = t.Println("")

		for _, sub := range task.Subtasks {
			subTitle := sub.Title
			if sub.IsCompleted {
				subTitle = glyph.Strike(subTitle)
			}
			if pp.ShowID {
				_, _ = t.Print(spacing)
			}
			_, _ = t.Printf("    %s %s\n", glyph.Subtask.String(), subTitle)
		}
	}
	_, _ = t.Println("")
}

func bulletFor(task model.Task) glyph.Bullet {
	switch {
	case task.IsDeleted:
		return glyph.Trash
	case task.IsNote:
		return glyph.Note
	case task.IsWontDo:
		return glyph.WontDo
	case task.IsCompleted:
		return glyph.Completed
	default:
		return glyph.Task
	}
}

func signifierFor(task model.Task) string {
	if task.IsPinned {
		return "★"
	}
	return glyph.ForPriority(int(task.Priority)).String()
}

func dueLabel(due model.Timestamp, allDay bool) string {
	if allDay {
		return due.Local().Format("Jan 2")
	}
	return due.Local().Format("Jan 2 15:04")
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// Lists renders the list collection with per-task counts.
func (pp *PrettyPrint) Lists(lists []model.List, tasks []model.Task) {
	t := color.New()
	faint := color.New(color.Faint)

	counts := make(map[string]int, len(lists))
	for _, task := range tasks {
		if !task.IsDeleted {
			counts[task.ListID]++
		}
	}

	_, _ = t.Printf("%s %s", glyph.Task.String(), glyph.Bold("inbox"))
	_, _ = faint.Printf("  %d\n", counts[model.InboxListID])
	for _, l := range lists {
		_, _ = t.Printf("%s %s", glyph.Task.String(), l.Name)
		_, _ = faint.Printf("  %d", counts[l.ID])
		if pp.ShowID {
			_, _ = faint.Printf("  (%s)", l.ID)
		}
		_, _ = t.Println("")
	}
	_, _ = t.Println("")
}

// Identity renders the signed-in account line.
func (pp *PrettyPrint) Identity(name, email string) {
	t := color.New()
	faint := color.New(color.Faint)
	_, _ = t.Printf("Signed in as %s", glyph.Bold(name))
	if email != "" {
		_, _ = faint.Printf(" <%s>", email)
	}
	_, _ = t.Println("")
}

// Stats renders the settings aggregates.
func (pp *PrettyPrint) Stats(s model.Stats) {
	t := color.New()
	_, _ = t.Printf("karma      %d\n", s.KarmaScore)
	_, _ = t.Printf("focused    %s\n", focusLabel(s.TotalFocusMinutes))
	_, _ = t.Printf("completed  %d\n", s.CompletedTaskCount)
	_, _ = t.Printf("level      %d\n", maxLevel(s.Level))
}

func focusLabel(minutes int) string {
	d := time.Duration(minutes) * time.Minute
	if d < time.Hour {
		return fmt.Sprintf("%dm", minutes)
	}
	return fmt.Sprintf("%dh%dm", minutes/60, minutes%60)
}

func maxLevel(level int) int {
	if level < 1 {
		return 1
	}
	return level
}
