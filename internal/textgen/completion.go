package textgen

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatResponse struct {
	Model   string `json:"model"`
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// Completion calls an OpenAI-compatible chat completion endpoint.
type Completion struct {
	URL    string
	APIKey string
	Model  string
	Client *http.Client
}

func NewCompletion(url, apiKey, model string) *Completion {
	return &Completion{URL: url, APIKey: apiKey, Model: model, Client: http.DefaultClient}
}

func (c *Completion) Generate(ctx context.Context, p Prompt) (Generation, error) {
	body, err := json.Marshal(chatRequest{
		Model: c.Model,
		Messages: []chatMessage{
			{Role: "system", Content: p.System},
			{Role: "user", Content: p.User},
		},
		Temperature: 0.7,
		MaxTokens:   250,
	})
	if err != nil {
		return Generation{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.URL, bytes.NewReader(body))
	if err != nil {
		return Generation{}, err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.APIKey)
	}

	resp, err := c.Client.Do(req)
	if err != nil {
		return Generation{}, fmt.Errorf("completion request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return Generation{}, fmt.Errorf("completion status %d: %s", resp.StatusCode, strings.TrimSpace(string(msg)))
	}

	var out chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return Generation{}, fmt.Errorf("completion decode: %w", err)
	}
	if len(out.Choices) == 0 {
		return Generation{}, fmt.Errorf("completion returned no choices")
	}

	model := out.Model
	if model == "" {
		model = c.Model
	}
	return Generation{Text: strings.TrimSpace(out.Choices[0].Message.Content), Model: model}, nil
}
