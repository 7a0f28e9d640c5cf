package sync

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"tableflip.dev/tick/pkg/model"
)

func TestGoogleCalendarCreateEvent(t *testing.T) {
	var gotAuth string
	var gotBody eventBody
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode body: %v", err)
		}
		_ = json.NewEncoder(w).Encode(map[string]string{"id": "remote-42"})
	}))
	defer srv.Close()

	due := model.At(time.Date(2025, time.June, 1, 9, 0, 0, 0, time.UTC))
	task := model.Task{ID: "t1", Title: "Standup", DueDate: &due}

	g := NewGoogleCalendar(srv.URL)
	id, err := g.CreateEvent(context.Background(), "tok", task)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != "remote-42" {
		t.Fatalf("expected the remote id, got %q", id)
	}
	if gotAuth != "Bearer tok" {
		t.Fatalf("expected a bearer token, got %q", gotAuth)
	}
	if gotBody.Summary != "Standup" {
		t.Fatalf("unexpected summary %q", gotBody.Summary)
	}
	if gotBody.Start.DateTime == "" || gotBody.Start.Date != "" {
		t.Fatalf("timed tasks use dateTime: %+v", gotBody.Start)
	}
	// Default duration is one hour when no end date is set.
	if gotBody.End.DateTime != due.Add(time.Hour).Format(time.RFC3339) {
		t.Fatalf("unexpected end: %+v", gotBody.End)
	}
}

func TestGoogleCalendarAllDayEvent(t *testing.T) {
	var gotBody eventBody
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		_ = json.NewEncoder(w).Encode(map[string]string{"id": "remote-1"})
	}))
	defer srv.Close()

	due := model.At(time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC))
	task := model.Task{ID: "t1", Title: "Trip", DueDate: &due, IsAllDay: true}

	g := NewGoogleCalendar(srv.URL)
	if _, err := g.CreateEvent(context.Background(), "tok", task); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotBody.Start.Date != "2025-06-01" || gotBody.Start.DateTime != "" {
		t.Fatalf("all-day tasks use date: %+v", gotBody.Start)
	}
}

func TestGoogleCalendarUnauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	g := NewGoogleCalendar(srv.URL)
	_, err := g.CreateEvent(context.Background(), "bad", model.Task{ID: "t1", Title: "a"})
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestGoogleCalendarUpdateRequiresExternalID(t *testing.T) {
	g := NewGoogleCalendar("http://calendar.invalid")
	if _, err := g.UpdateEvent(context.Background(), "tok", model.Task{ID: "t1", Title: "a"}); err == nil {
		t.Fatalf("expected an error for an unlinked task")
	}
}
