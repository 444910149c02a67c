package textgen

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/astroproof/internal/common"
)

// DeterministicModel is the model name reported by Deterministic.
const DeterministicModel = "deterministic-v1"

// Disclaimer closes every deterministic reading.
const Disclaimer = "*This reading is for entertainment purposes only and not intended as medical, legal, or financial advice.*"

var (
	focusMessages = []string{
		"Today brings opportunities for creative expression and personal growth.",
		"Focus on communication and building meaningful connections with others.",
		"Your intuition is heightened - trust your inner wisdom today.",
		"A good day for planning and organizing your future goals.",
		"Pay attention to your emotional well-being and self-care.",
	}
	insightMessages = []string{
		"Your natural leadership qualities are emerging more strongly.",
		"There's a harmonious balance between your practical and spiritual sides.",
		"Recent challenges have been preparing you for upcoming opportunities.",
		"Your ability to adapt and flow with change is one of your greatest strengths.",
		"The universe is aligning to support your authentic self-expression.",
	}
	nextStepMessages = []string{
		"Take one small action toward a goal that truly excites you.",
		"Reach out to someone you've been thinking about connecting with.",
		"Create some quiet time for reflection and meditation.",
		"Organize one area of your life that's been feeling chaotic.",
		"Express gratitude for the growth you've experienced recently.",
	}
)

// Deterministic derives a reading from the birth date and hour alone, so
// the same inputs always yield the same text. It never calls out.
type Deterministic struct{}

func (Deterministic) Generate(_ context.Context, p Prompt) (Generation, error) {
	in := p.Inputs

	day, err := time.ParseInLocation(common.DayLayout, in.DOB, time.UTC)
	if err != nil {
		return Generation{}, fmt.Errorf("dob: %w", err)
	}
	hours, err := strconv.Atoi(strings.SplitN(in.Time, ":", 2)[0])
	if err != nil {
		return Generation{}, fmt.Errorf("time: %w", err)
	}

	name := in.Name
	if name == "" {
		name = "friend"
	}

	doy := day.YearDay()
	focus := focusMessages[(doy+hours)%len(focusMessages)]
	insight := insightMessages[(doy*3+hours)%len(insightMessages)]
	step := nextStepMessages[(doy*7+hours*2)%len(nextStepMessages)]

	var b strings.Builder
	fmt.Fprintf(&b, "**Today's Focus**\n%s Born in %s, your connection to this location continues to influence your path in meaningful ways.\n\n", focus, in.Place)
	fmt.Fprintf(&b, "**Core Insight**\n%s The planetary positions at your birth time of %s suggest a natural rhythm that serves you well.\n\n", insight, in.Time)
	fmt.Fprintf(&b, "**Next Step**\n%s Trust the timing of your life, %s - everything is unfolding as it should.\n\n", step, name)
	b.WriteString(Disclaimer)

	return Generation{Text: b.String(), Model: DeterministicModel, IsFallback: true}, nil
}
