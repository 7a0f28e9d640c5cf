// Package assist wraps the text-completion collaborator that suggests
// subtasks. The contract with the core is narrow: on success the caller
// appends each returned string as a new incomplete subtask, on failure
// it appends nothing and only the log hears about it.
package assist

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
)

// ErrNoAPIKey is returned when suggestions are requested without a key.
var ErrNoAPIKey = errors.New("assist: no api key configured")

// Suggester produces subtask titles for a task title.
type Suggester interface {
	SuggestSubtasks(ctx context.Context, title string) ([]string, error)
}

const defaultModel = "gemini-3-flash-preview"

// Gemini implements Suggester over the generateContent endpoint.
type Gemini struct {
	BaseURL string
	APIKey  string
	Model   string
	Client  *http.Client
}

// NewGemini builds a suggestion client.
func NewGemini(baseURL, apiKey string) *Gemini {
	return &Gemini{
		BaseURL: baseURL,
		APIKey:  apiKey,
		Model:   defaultModel,
		Client:  &http.Client{},
	}
}

type generateRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	ResponseMimeType string `json:"responseMimeType"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

func (g *Gemini) SuggestSubtasks(ctx context.Context, title string) ([]string, error) {
	if g.APIKey == "" {
		return nil, ErrNoAPIKey
	}

	prompt := fmt.Sprintf("Break down the following task into 3-5 concrete, actionable short subtasks. Respond with a JSON array of strings.\nTask: %q", title)
	payload, err := json.Marshal(generateRequest{
		Contents:         []content{{Parts: []part{{Text: prompt}}}},
		GenerationConfig: generationConfig{ResponseMimeType: "application/json"},
	})
	if err != nil {
		return nil, fmt.Errorf("assist: encode request: %w", err)
	}

	model := g.Model
	if model == "" {
		model = defaultModel
	}
	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", g.BaseURL, model, g.APIKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("assist: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())

	resp, err := g.client().Do(req)
	if err != nil {
		return nil, fmt.Errorf("assist: generate: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("assist: completion returned %d", resp.StatusCode)
	}

	var generated generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&generated); err != nil {
		return nil, fmt.Errorf("assist: decode response: %w", err)
	}
	if len(generated.Candidates) == 0 || len(generated.Candidates[0].Content.Parts) == 0 {
		return nil, nil
	}

	var titles []string
	text := generated.Candidates[0].Content.Parts[0].Text
	if err := json.Unmarshal([]byte(text), &titles); err != nil {
		return nil, fmt.Errorf("assist: parse suggestions: %w", err)
	}
	return titles, nil
}

func (g *Gemini) client() *http.Client {
	if g.Client == nil {
		return http.DefaultClient
	}
	return g.Client
}
