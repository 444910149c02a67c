package logging

import (
	"context"
	"log/slog"
	"strings"
)

const redacted = "[REDACTED]"

// secretKeys are attribute keys whose values are never written out.
var secretKeys = map[string]bool{
	"passphrase":    true,
	"password":      true,
	"secret":        true,
	"secret_key":    true,
	"access_token":  true,
	"authorization": true,
	"api_key":       true,
}

func isSecret(key string) bool {
	return secretKeys[strings.ToLower(key)]
}

// redact returns args with the values of secret keys replaced. args is not
// modified.
func redact(args []any) []any {
	var out []any
	for i := 0; i < len(args); i++ {
		switch v := args[i].(type) {
		case slog.Attr:
			if isSecret(v.Key) {
				if out == nil {
					out = append([]any(nil), args...)
				}
				out[i] = slog.String(v.Key, redacted)
			}
		case string:
			if i+1 < len(args) && isSecret(v) {
				if out == nil {
					out = append([]any(nil), args...)
				}
				out[i+1] = redacted
			}
			i++
		}
	}
	if out == nil {
		return args
	}
	return out
}

// SlogLogger adapts *slog.Logger to Logger and redacts secret attributes.
type SlogLogger struct {
	l *slog.Logger
}

func NewSlogLogger(l *slog.Logger) *SlogLogger {
	return &SlogLogger{l: l}
}

func (s *SlogLogger) Debug(ctx context.Context, msg string, args ...any) {
	s.l.DebugContext(ctx, msg, redact(args)...)
}

func (s *SlogLogger) Info(ctx context.Context, msg string, args ...any) {
	s.l.InfoContext(ctx, msg, redact(args)...)
}

func (s *SlogLogger) Warn(ctx context.Context, msg string, args ...any) {
	s.l.WarnContext(ctx, msg, redact(args)...)
}

func (s *SlogLogger) Error(ctx context.Context, msg string, args ...any) {
	s.l.ErrorContext(ctx, msg, redact(args)...)
}

func (s *SlogLogger) With(args ...any) Logger {
	return &SlogLogger{l: s.l.With(redact(args)...)}
}
