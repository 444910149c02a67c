package textgen

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/astroproof/internal/logging"
	"github.com/dmitrijs2005/astroproof/internal/normalize"
)

var paris = normalize.NormalizedInputs{DOB: "2024-01-05", Time: "09:30", Place: "paris, FR"}

func TestReadingPrompt(t *testing.T) {
	p := ReadingPrompt(paris)
	assert.Equal(t, systemPrompt, p.System)
	assert.Contains(t, p.User, "for friend, born 2024-01-05 at 09:30 in paris, FR.")
	assert.NotContains(t, p.User, "They ask")
	assert.Equal(t, paris, p.Inputs)

	in := paris
	in.Name = "Ada"
	in.Question = "Should I move?"
	p = ReadingPrompt(in)
	assert.Contains(t, p.User, "for Ada,")
	assert.Contains(t, p.User, `They ask: "Should I move?"`)
}

func TestPrompt_WithScope(t *testing.T) {
	p := ReadingPrompt(paris).WithScope("vedic-sage")
	assert.Equal(t, "vedic-sage", p.Scope)
	assert.True(t, strings.HasPrefix(p.System, systemPrompt))
	assert.Contains(t, p.System, "vedic-sage guru")

	assert.Equal(t, ReadingPrompt(paris), ReadingPrompt(paris).WithScope(""))
}

func TestDeterministic_PicksMessagesFromDateAndHour(t *testing.T) {
	got, err := Deterministic{}.Generate(context.Background(), ReadingPrompt(paris))
	require.NoError(t, err)

	assert.Equal(t, DeterministicModel, got.Model)
	assert.True(t, got.IsFallback)
	// day of year 5, hour 9
	assert.Contains(t, got.Text, focusMessages[4])
	assert.Contains(t, got.Text, insightMessages[4])
	assert.Contains(t, got.Text, nextStepMessages[3])
	assert.Contains(t, got.Text, "Born in paris, FR,")
	assert.Contains(t, got.Text, "Trust the timing of your life, friend")
	assert.True(t, strings.HasSuffix(got.Text, Disclaimer))
}

func TestDeterministic_Stable(t *testing.T) {
	a, err := Deterministic{}.Generate(context.Background(), ReadingPrompt(paris))
	require.NoError(t, err)
	b, err := Deterministic{}.Generate(context.Background(), ReadingPrompt(paris))
	require.NoError(t, err)
	assert.Equal(t, a.Text, b.Text)
}

func TestDeterministic_BadInputs(t *testing.T) {
	in := paris
	in.DOB = "nope"
	_, err := Deterministic{}.Generate(context.Background(), ReadingPrompt(in))
	assert.Error(t, err)

	in = paris
	in.Time = "xx:00"
	_, err = Deterministic{}.Generate(context.Background(), ReadingPrompt(in))
	assert.Error(t, err)
}

func TestCompletion_Generate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer k-123", r.Header.Get("Authorization"))

		var req chatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "gpt-4o-mini", req.Model)
		require.Len(t, req.Messages, 2)
		assert.Equal(t, "system", req.Messages[0].Role)
		assert.Equal(t, "user", req.Messages[1].Role)

		_, _ = w.Write([]byte(`{"model":"gpt-4o-mini-2024","choices":[{"message":{"role":"assistant","content":"  Trust the timing.\n"}}]}`))
	}))
	defer srv.Close()

	c := NewCompletion(srv.URL, "k-123", "gpt-4o-mini")
	got, err := c.Generate(context.Background(), ReadingPrompt(paris))
	require.NoError(t, err)
	assert.Equal(t, "Trust the timing.", got.Text)
	assert.Equal(t, "gpt-4o-mini-2024", got.Model)
	assert.False(t, got.IsFallback)
}

func TestCompletion_Errors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{"status", http.StatusTooManyRequests, `{"error":"slow down"}`},
		{"bad json", http.StatusOK, `{`},
		{"no choices", http.StatusOK, `{"choices":[]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			_, err := NewCompletion(srv.URL, "", "m").Generate(context.Background(), ReadingPrompt(paris))
			assert.Error(t, err)
		})
	}
}

type stubGenerator struct {
	res Generation
	err error
}

func (s stubGenerator) Generate(context.Context, Prompt) (Generation, error) {
	return s.res, s.err
}

func TestWithFallback(t *testing.T) {
	log := logging.NewNop()
	ok := stubGenerator{res: Generation{Text: "ai text", Model: "m"}}
	failing := stubGenerator{err: errors.New("boom")}
	empty := stubGenerator{res: Generation{Model: "m"}}

	got, err := WithFallback(ok, Deterministic{}, log).Generate(context.Background(), ReadingPrompt(paris))
	require.NoError(t, err)
	assert.Equal(t, "ai text", got.Text)
	assert.False(t, got.IsFallback)

	for _, primary := range []Generator{failing, empty, nil} {
		got, err = WithFallback(primary, Deterministic{}, log).Generate(context.Background(), ReadingPrompt(paris))
		require.NoError(t, err)
		assert.True(t, got.IsFallback)
		assert.Equal(t, DeterministicModel, got.Model)
	}

	_, err = WithFallback(failing, failing, log).Generate(context.Background(), ReadingPrompt(paris))
	assert.Error(t, err)
}
