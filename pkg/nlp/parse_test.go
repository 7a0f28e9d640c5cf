package nlp

import (
	"testing"
	"time"

	"tableflip.dev/tick/pkg/model"
)

var parseNow = time.Date(2025, time.March, 14, 10, 0, 0, 0, time.Local) // a Friday

func TestParsePriorityAndTags(t *testing.T) {
	got := Parse("pay rent !high #bills #home", parseNow)
	if got.Title != "pay rent" {
		t.Fatalf("unexpected title %q", got.Title)
	}
	if got.Priority != model.PriorityHigh {
		t.Fatalf("expected high priority, got %v", got.Priority)
	}
	if len(got.Tags) != 2 || got.Tags[0] != "bills" || got.Tags[1] != "home" {
		t.Fatalf("unexpected tags %v", got.Tags)
	}
	if got.DueDate != nil {
		t.Fatalf("no date token means no due date")
	}
}

func TestParseNumericPriority(t *testing.T) {
	got := Parse("water plants !2", parseNow)
	if got.Priority != model.PriorityMedium {
		t.Fatalf("expected medium priority, got %v", got.Priority)
	}
	if got.Title != "water plants" {
		t.Fatalf("unexpected title %q", got.Title)
	}
}

func TestParseTomorrowWithTime(t *testing.T) {
	got := Parse("dentist tomorrow at 5pm", parseNow)
	if got.Title != "dentist" {
		t.Fatalf("unexpected title %q", got.Title)
	}
	if got.DueDate == nil {
		t.Fatalf("expected a due date")
	}
	want := time.Date(2025, time.March, 15, 17, 0, 0, 0, time.Local)
	if !got.DueDate.Equal(want) {
		t.Fatalf("expected %v, got %v", want, got.DueDate)
	}
	if got.IsAllDay {
		t.Fatalf("an explicit time clears the all-day flag")
	}
}

func TestParseTodayStaysAllDayWithoutTime(t *testing.T) {
	got := Parse("buy milk today", parseNow)
	if got.DueDate == nil || got.DueDate.Day() != parseNow.Day() {
		t.Fatalf("expected today's date, got %v", got.DueDate)
	}
	if !got.IsAllDay {
		t.Fatalf("no time token keeps the task all-day")
	}
}

func TestParseNextWeekIsMonday(t *testing.T) {
	got := Parse("plan sprint next week", parseNow)
	if got.Title != "plan sprint" {
		t.Fatalf("unexpected title %q", got.Title)
	}
	if got.DueDate == nil {
		t.Fatalf("expected a due date")
	}
	if got.DueDate.Weekday() != time.Monday {
		t.Fatalf("next week means the coming Monday, got %v", got.DueDate.Weekday())
	}
	if !got.DueDate.After(parseNow) {
		t.Fatalf("the coming Monday must be in the future")
	}
}

func TestParseTimeAtNoonAndMidnight(t *testing.T) {
	got := Parse("lunch today @ 12pm", parseNow)
	if got.DueDate == nil || got.DueDate.Hour() != 12 {
		t.Fatalf("12pm is noon, got %v", got.DueDate)
	}

	got = Parse("backup today at 12am", parseNow)
	if got.DueDate == nil || got.DueDate.Hour() != 0 {
		t.Fatalf("12am is midnight, got %v", got.DueDate)
	}
}

func TestParseTimeWithoutDateIsIgnored(t *testing.T) {
	got := Parse("standup at 9am", parseNow)
	if got.DueDate != nil {
		t.Fatalf("a bare time with no date token sets no due date, got %v", got.DueDate)
	}
}

func TestParseCollapsesWhitespace(t *testing.T) {
	got := Parse("  ship   release tomorrow  !low ", parseNow)
	if got.Title != "ship release" {
		t.Fatalf("unexpected title %q", got.Title)
	}
	if got.Priority != model.PriorityLow {
		t.Fatalf("expected low priority, got %v", got.Priority)
	}
}
