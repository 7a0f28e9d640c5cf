package timeutil

import (
	"testing"
	"time"
)

func TestParseWindowDefault(t *testing.T) {
	dur, label, err := ParseWindow("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := 7 * 24 * time.Hour
	if dur != want {
		t.Fatalf("expected %v, got %v", want, dur)
	}
	if label != "1w" {
		t.Fatalf("expected label 1w, got %s", label)
	}
}

func TestParseWindowSessionLengths(t *testing.T) {
	cases := map[string]time.Duration{
		"25m":    25 * time.Minute,
		"1h30m":  90 * time.Minute,
		"45 min": 45 * time.Minute,
	}
	for input, want := range cases {
		dur, _, err := ParseWindow(input)
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", input, err)
		}
		if dur != want {
			t.Fatalf("%q: expected %v, got %v", input, want, dur)
		}
	}
}

func TestParseWindowComposite(t *testing.T) {
	dur, label, err := ParseWindow("1w2d6h30m")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := (7*24+2*24+6)*time.Hour + 30*time.Minute
	if dur != want {
		t.Fatalf("expected %v, got %v", want, dur)
	}
	if label != "1w2d6h30m" {
		t.Fatalf("unexpected label: %s", label)
	}
}

func TestParseWindowInvalid(t *testing.T) {
	if _, _, err := ParseWindow("noop"); err == nil {
		t.Fatalf("expected error for invalid window")
	}
	if _, _, err := ParseWindow("0m"); err == nil {
		t.Fatalf("expected error for a zero-length session")
	}
}

func TestFormatWindowDropsZeroSegments(t *testing.T) {
	if got := FormatWindow(25 * time.Minute); got != "25m" {
		t.Fatalf("expected 25m, got %s", got)
	}
	if got := FormatWindow(24*time.Hour + 30*time.Minute); got != "1d30m" {
		t.Fatalf("expected 1d30m, got %s", got)
	}
	if got := FormatWindow(0); got != "0s" {
		t.Fatalf("expected 0s, got %s", got)
	}
}
