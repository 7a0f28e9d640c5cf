package sync

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"tableflip.dev/tick/pkg/model"
)

// GoogleCalendar implements Calendar against the Calendar v3 events API.
type GoogleCalendar struct {
	BaseURL    string
	CalendarID string
	Client     *http.Client
}

// NewGoogleCalendar builds a client for the primary calendar.
func NewGoogleCalendar(baseURL string) *GoogleCalendar {
	return &GoogleCalendar{
		BaseURL:    baseURL,
		CalendarID: "primary",
		Client:     &http.Client{},
	}
}

type eventTime struct {
	DateTime string `json:"dateTime,omitempty"`
	Date     string `json:"date,omitempty"`
}

type eventBody struct {
	Summary     string    `json:"summary"`
	Description string    `json:"description,omitempty"`
	Start       eventTime `json:"start"`
	End         eventTime `json:"end"`
}

type eventResponse struct {
	ID string `json:"id"`
}

func (g *GoogleCalendar) CreateEvent(ctx context.Context, token string, task model.Task) (string, error) {
	url := fmt.Sprintf("%s/calendars/%s/events", g.BaseURL, g.CalendarID)
	return g.send(ctx, http.MethodPost, url, token, task)
}

func (g *GoogleCalendar) UpdateEvent(ctx context.Context, token string, task model.Task) (string, error) {
	if task.ExternalID == "" {
		return "", fmt.Errorf("sync: task %s has no external id", task.ID)
	}
	url := fmt.Sprintf("%s/calendars/%s/events/%s", g.BaseURL, g.CalendarID, task.ExternalID)
	return g.send(ctx, http.MethodPut, url, token, task)
}

func (g *GoogleCalendar) send(ctx context.Context, method, url, token string, task model.Task) (string, error) {
	payload, err := json.Marshal(taskToEvent(task))
	if err != nil {
		return "", fmt.Errorf("sync: encode event: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("sync: build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())

	resp, err := g.client().Do(req)
	if err != nil {
		return "", fmt.Errorf("sync: %s event: %w", method, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return "", fmt.Errorf("%w: status %d", ErrUnauthorized, resp.StatusCode)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("sync: calendar returned %d: %s", resp.StatusCode, bytes.TrimSpace(body))
	}

	var event eventResponse
	if err := json.NewDecoder(resp.Body).Decode(&event); err != nil {
		return "", fmt.Errorf("sync: decode event response: %w", err)
	}
	return event.ID, nil
}

func (g *GoogleCalendar) client() *http.Client {
	if g.Client == nil {
		return http.DefaultClient
	}
	return g.Client
}

func taskToEvent(task model.Task) eventBody {
	body := eventBody{
		Summary:     task.Title,
		Description: task.Description,
	}
	if task.DueDate == nil {
		return body
	}
	start := task.DueDate.Time
	end := start.Add(time.Duration(task.DurationMinutes()) * time.Minute)
	if task.EndDate != nil {
		end = task.EndDate.Time
	}
	if task.IsAllDay {
		body.Start = eventTime{Date: start.Format("2006-01-02")}
		body.End = eventTime{Date: end.Format("2006-01-02")}
	} else {
		body.Start = eventTime{DateTime: start.Format(time.RFC3339)}
		body.End = eventTime{DateTime: end.Format(time.RFC3339)}
	}
	return body
}
