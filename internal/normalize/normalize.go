// Package normalize canonicalizes raw reading requests so that semantically
// equal inputs produce byte-identical serialized forms.
package normalize

import (
	"bytes"
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/astroproof/internal/common"
)

// RawInputs is a reading request as submitted by the user.
type RawInputs struct {
	Name     string `json:"name,omitempty"`
	DOB      string `json:"dob"`
	Time     string `json:"time"`
	Place    string `json:"place"`
	Question string `json:"question,omitempty"`
}

// NormalizedInputs is the canonical form of RawInputs. ProducedAt records
// when normalization happened and never takes part in hashing.
type NormalizedInputs struct {
	Name       string    `json:"name"`
	DOB        string    `json:"dob"`
	Time       string    `json:"time"`
	Place      string    `json:"place"`
	Question   string    `json:"question"`
	ProducedAt time.Time `json:"timestamp"`
}

// ValidationError reports a malformed field. It matches common.ErrValidation.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == common.ErrValidation
}

var (
	datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	timePattern = regexp.MustCompile(`^\d{1,2}:\d{2}$`)

	// now is a test seam for the ProducedAt stamp.
	now = time.Now
)

// Normalize validates raw and returns its canonical form.
func Normalize(raw RawInputs) (NormalizedInputs, error) {
	dob, err := normalizeDate(raw.DOB)
	if err != nil {
		return NormalizedInputs{}, err
	}

	t, err := normalizeTime(raw.Time)
	if err != nil {
		return NormalizedInputs{}, err
	}

	place, err := normalizePlace(raw.Place)
	if err != nil {
		return NormalizedInputs{}, err
	}

	return NormalizedInputs{
		Name:       collapse(raw.Name),
		DOB:        dob,
		Time:       t,
		Place:      place,
		Question:   collapse(raw.Question),
		ProducedAt: now().UTC(),
	}, nil
}

// IsSpace reports whether r is whitespace in the sense of JavaScript's \s
// and String.prototype.trim. Unlike unicode.IsSpace it includes U+FEFF and
// excludes U+0085.
func IsSpace(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r', ' ',
		'\u00a0', '\u1680', '\u2028', '\u2029', '\u202f', '\u205f', '\u3000', '\ufeff':
		return true
	}
	return r >= '\u2000' && r <= '\u200a'
}

// TrimSpace strips leading and trailing IsSpace runes.
func TrimSpace(s string) string {
	return strings.TrimFunc(s, IsSpace)
}

// collapse trims s and folds every internal whitespace run into one space.
func collapse(s string) string {
	return strings.Join(strings.FieldsFunc(s, IsSpace), " ")
}

func normalizeDate(s string) (string, error) {
	cleaned := TrimSpace(s)
	if !datePattern.MatchString(cleaned) {
		return "", &ValidationError{Field: "dob", Message: "date must be in YYYY-MM-DD format"}
	}

	// time.Parse rejects out-of-range days (2023-02-30) instead of rolling over.
	d, err := time.ParseInLocation(common.DayLayout, cleaned, time.UTC)
	if err != nil {
		return "", &ValidationError{Field: "dob", Message: "invalid date"}
	}

	return d.Format(common.DayLayout), nil
}

func normalizeTime(s string) (string, error) {
	cleaned := TrimSpace(s)
	if !timePattern.MatchString(cleaned) {
		return "", &ValidationError{Field: "time", Message: "time must be in HH:MM format"}
	}

	hh, mm, _ := strings.Cut(cleaned, ":")
	h, _ := strconv.Atoi(hh)
	m, _ := strconv.Atoi(mm)

	if h > 23 || m > 59 {
		return "", &ValidationError{Field: "time", Message: "invalid time"}
	}

	return fmt.Sprintf("%02d:%02d", h, m), nil
}

// normalizePlace splits on the last comma into locality and region code and
// renders "Locality, CC". Without a comma the collapsed input is accepted
// verbatim as a degraded place.
func normalizePlace(s string) (string, error) {
	cleaned := collapse(s)
	if cleaned == "" {
		return "", &ValidationError{Field: "place", Message: "place is required"}
	}

	idx := strings.LastIndex(cleaned, ",")
	if idx < 0 {
		return cleaned, nil
	}

	// Commas inside the locality get the same spacing as the final one.
	segments := strings.Split(cleaned[:idx], ",")
	for i := range segments {
		segments[i] = collapse(segments[i])
	}
	locality := strings.Join(segments, ", ")
	if collapse(strings.ReplaceAll(locality, ",", "")) == "" {
		return "", &ValidationError{Field: "place", Message: "locality is required"}
	}

	region := strings.ToUpper(collapse(cleaned[idx+1:]))
	if region == "" {
		return locality, nil
	}

	return locality + ", " + region, nil
}

// stableInputs fixes the hashed key order: dob, name, place, question, time.
type stableInputs struct {
	DOB      string `json:"dob"`
	Name     string `json:"name"`
	Place    string `json:"place"`
	Question string `json:"question"`
	Time     string `json:"time"`
}

// StableString is the canonical serialization of in, excluding ProducedAt.
// Empty fields are always present so omission and "" cannot be confused.
// HTML escaping is off, and Normalize has already folded U+2028 and U+2029
// into spaces, so for valid UTF-8 fields produced by Normalize the bytes
// equal a JavaScript JSON.stringify of the same object.
func StableString(in NormalizedInputs) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	// Encoding a struct of strings cannot fail.
	_ = enc.Encode(stableInputs{
		DOB:      in.DOB,
		Name:     in.Name,
		Place:    in.Place,
		Question: in.Question,
		Time:     in.Time,
	})

	return strings.TrimSuffix(buf.String(), "\n")
}
