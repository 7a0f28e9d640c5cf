// Package nlp parses quick-add input like
// "pay rent tomorrow at 5pm !high #bills" into task fields.
package nlp

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"tableflip.dev/tick/pkg/model"
)

// QuickAdd is the parse result. DueDate is nil when no date token was
// found; IsAllDay flips off only when an explicit time was given.
type QuickAdd struct {
	Title    string
	Priority model.Priority
	Tags     []string
	DueDate  *time.Time
	IsAllDay bool
}

var (
	highPattern     = regexp.MustCompile(`(?i)!high|!3`)
	mediumPattern   = regexp.MustCompile(`(?i)!medium|!2`)
	lowPattern      = regexp.MustCompile(`(?i)!low|!1`)
	tagPattern      = regexp.MustCompile(`#\w+`)
	tomorrowPattern = regexp.MustCompile(`(?i)tomorrow|tmrw`)
	todayPattern    = regexp.MustCompile(`(?i)today`)
	nextWeekPattern = regexp.MustCompile(`(?i)next week`)
	timePattern     = regexp.MustCompile(`(?i)(?:at|@)\s?(\d{1,2})(?::(\d{2}))?\s?(am|pm)?`)
	spacePattern    = regexp.MustCompile(`\s+`)
)

// Parse extracts priority, tags, and a simple due date from the input,
// returning the cleaned title alongside them.
func Parse(input string, now time.Time) QuickAdd {
	title := input
	out := QuickAdd{Priority: model.PriorityNone, Tags: []string{}, IsAllDay: true}

	switch {
	case highPattern.MatchString(input):
		out.Priority = model.PriorityHigh
		title = highPattern.ReplaceAllString(title, "")
	case mediumPattern.MatchString(input):
		out.Priority = model.PriorityMedium
		title = mediumPattern.ReplaceAllString(title, "")
	case lowPattern.MatchString(input):
		out.Priority = model.PriorityLow
		title = lowPattern.ReplaceAllString(title, "")
	}

	for _, tag := range tagPattern.FindAllString(input, -1) {
		out.Tags = append(out.Tags, tag[1:])
	}
	title = tagPattern.ReplaceAllString(title, "")

	var due time.Time
	switch {
	case todayPattern.MatchString(input):
		due = now
		title = todayPattern.ReplaceAllString(title, "")
	case tomorrowPattern.MatchString(input):
		due = now.AddDate(0, 0, 1)
		title = tomorrowPattern.ReplaceAllString(title, "")
	case nextWeekPattern.MatchString(input):
		due = nextMonday(now)
		title = nextWeekPattern.ReplaceAllString(title, "")
	}

	if match := timePattern.FindStringSubmatch(input); match != nil && !due.IsZero() {
		hours, _ := strconv.Atoi(match[1])
		minutes := 0
		if match[2] != "" {
			minutes, _ = strconv.Atoi(match[2])
		}
		switch strings.ToLower(match[3]) {
		case "pm":
			if hours < 12 {
				hours += 12
			}
		case "am":
			if hours == 12 {
				hours = 0
			}
		}
		due = time.Date(due.Year(), due.Month(), due.Day(), hours, minutes, 0, 0, due.Location())
		out.IsAllDay = false
		title = strings.Replace(title, match[0], "", 1)
	}

	if !due.IsZero() {
		out.DueDate = &due
	}
	out.Title = strings.TrimSpace(spacePattern.ReplaceAllString(title, " "))
	return out
}

func nextMonday(now time.Time) time.Time {
	days := (int(time.Monday) - int(now.Weekday()) + 7) % 7
	if days == 0 {
		days = 7
	}
	return now.AddDate(0, 0, days)
}
