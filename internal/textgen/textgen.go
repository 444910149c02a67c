// Package textgen produces reading text from normalized inputs.
package textgen

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/astroproof/internal/logging"
	"github.com/dmitrijs2005/astroproof/internal/normalize"
)

// Generation is the outcome of a Generate call.
type Generation struct {
	Text       string
	Model      string
	IsFallback bool
}

const systemPrompt = `You are a wise, compassionate astrologer who provides thoughtful insights. Write exactly 3 short sections: "Today's Focus", "Core Insight", and "Next Step". Keep each section 2-3 sentences. Total response should be 120-180 words. Use a warm, encouraging tone.`

// Prompt is a generation request. Inputs are kept alongside the rendered
// messages so that offline generators can work from them directly.
type Prompt struct {
	System string
	User   string
	Scope  string
	Inputs normalize.NormalizedInputs
}

// Generator turns a prompt into reading text.
type Generator interface {
	Generate(ctx context.Context, p Prompt) (Generation, error)
}

// ReadingPrompt builds the prompt for a reading over in.
func ReadingPrompt(in normalize.NormalizedInputs) Prompt {
	name := in.Name
	if name == "" {
		name = "friend"
	}

	user := fmt.Sprintf("Create an astrology reading for %s, born %s at %s in %s.", name, in.DOB, in.Time, in.Place)
	if in.Question != "" {
		user += fmt.Sprintf(" They ask: %q", in.Question)
	}
	user += " Provide 3 sections: Today's Focus, Core Insight, and Next Step. Be warm and encouraging."

	return Prompt{System: systemPrompt, User: user, Inputs: in}
}

// WithScope addresses p to the guru serving scope. An empty scope leaves p
// unchanged.
func (p Prompt) WithScope(scope string) Prompt {
	if scope == "" {
		return p
	}
	p.Scope = scope
	p.System += fmt.Sprintf(" You speak as the %s guru.", scope)
	return p
}

type fallbackGenerator struct {
	primary  Generator
	fallback Generator
	log      logging.Logger
}

// WithFallback tries primary and switches to fallback when it fails or
// returns an empty text. Results from fallback are flagged IsFallback.
func WithFallback(primary, fallback Generator, log logging.Logger) Generator {
	return &fallbackGenerator{primary: primary, fallback: fallback, log: log.With("module", "textgen")}
}

func (g *fallbackGenerator) Generate(ctx context.Context, p Prompt) (Generation, error) {
	if g.primary != nil {
		res, err := g.primary.Generate(ctx, p)
		if err == nil && res.Text != "" {
			return res, nil
		}
		g.log.Warn(ctx, "primary generator failed, using fallback", "error", err)
	}

	res, err := g.fallback.Generate(ctx, p)
	if err != nil {
		return Generation{}, err
	}
	res.IsFallback = true
	return res, nil
}
