package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func newTestLogger(t *testing.T) (*SlogLogger, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	h := slog.NewTextHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})
	l := slog.New(h)
	return NewSlogLogger(l), &buf
}

func TestSlogLogger_Levels_WriteExpectedOutput(t *testing.T) {
	log, buf := newTestLogger(t)
	ctx := context.Background()

	log.Debug(ctx, "dbg", "a", 1)
	log.Info(ctx, "inf", "b", 2)
	log.Warn(ctx, "wrn", "c", 3)
	log.Error(ctx, "err", "d", 4)

	out := buf.String()

	tests := []struct {
		level string
		msg   string
		key   string
		val   string
	}{
		{"DEBUG", "dbg", "a", "1"},
		{"INFO", "inf", "b", "2"},
		{"WARN", "wrn", "c", "3"},
		{"ERROR", "err", "d", "4"},
	}

	for _, tc := range tests {
		if !strings.Contains(out, "level="+tc.level) {
			t.Fatalf("expected line with level=%s in output:\n%s", tc.level, out)
		}
		if !strings.Contains(out, "msg="+tc.msg) {
			t.Fatalf("expected line with msg=%q in output:\n%s", tc.msg, out)
		}
		if !strings.Contains(out, tc.key+"="+tc.val) {
			t.Fatalf("expected attribute %s=%s in output:\n%s", tc.key, tc.val, out)
		}
	}
}

func TestSlogLogger_With_AddsAttributes(t *testing.T) {
	log, buf := newTestLogger(t)
	ctx := context.Background()

	log2 := log.With("module", "access", "identity", "0xabc")
	log2.Info(ctx, "hello", "k", "v")

	out := buf.String()
	wantSubs := []string{
		"level=INFO",
		"msg=hello",
		"module=access",
		"identity=0xabc",
		"k=v",
	}
	for _, s := range wantSubs {
		if !strings.Contains(out, s) {
			t.Fatalf("expected %q in output, got:\n%s", s, out)
		}
	}
}

func TestSlogLogger_ContextDoesNotPanic(t *testing.T) {
	log, _ := newTestLogger(t)

	ctx := context.TODO()
	log.Info(ctx, "ctx-ok")
	log.Debug(ctx, "ctx-ok")
	log.Warn(ctx, "ctx-ok")
	log.Error(ctx, "ctx-ok")
}

func TestNewJSON_WritesJSONLines(t *testing.T) {
	var buf bytes.Buffer
	log := NewJSON(&buf, slog.LevelInfo)

	log.Debug(context.Background(), "hidden")
	log.Info(context.Background(), "visible", "proof_id", "p-1")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("debug line must be filtered at info level:\n%s", out)
	}
	if !strings.Contains(out, `"msg":"visible"`) || !strings.Contains(out, `"proof_id":"p-1"`) {
		t.Fatalf("unexpected json output:\n%s", out)
	}
}

func TestNewNop_DiscardsEverything(t *testing.T) {
	log := NewNop()
	log.Error(context.Background(), "nothing to see")
	log.With("k", "v").Info(context.Background(), "still nothing")
}

func TestSlogLogger_RedactsSecrets(t *testing.T) {
	log, buf := newTestLogger(t)
	ctx := context.Background()

	args := []any{"passphrase", "hunter2", "proof_id", "p-1"}
	log.Info(ctx, "sealing", args...)
	log.With("access_token", "eyJhbGci").Warn(ctx, "retry", slog.String("Secret_Key", "k"), "n", 1)

	out := buf.String()
	for _, leaked := range []string{"hunter2", "eyJhbGci", "=k "} {
		if strings.Contains(out, leaked) {
			t.Fatalf("secret %q leaked into output:\n%s", leaked, out)
		}
	}
	for _, want := range []string{"passphrase=[REDACTED]", "proof_id=p-1", "access_token=[REDACTED]", "Secret_Key=[REDACTED]", "n=1"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
	if args[1] != "hunter2" {
		t.Fatalf("caller args must not be modified, got %v", args)
	}
}
