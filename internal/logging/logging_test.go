package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestSetup_Levels(t *testing.T) {
	ctx := context.Background()

	debug := Setup(Options{Debug: true, Out: &bytes.Buffer{}})
	if !debug.Enabled(ctx, slog.LevelDebug) {
		t.Error("expected Debug enabled when Debug=true")
	}

	info := Setup(Options{Out: &bytes.Buffer{}})
	if !info.Enabled(ctx, slog.LevelInfo) {
		t.Error("expected Info enabled by default")
	}
	if info.Enabled(ctx, slog.LevelDebug) {
		t.Error("expected Debug disabled by default")
	}
}

func TestSetup_TextHandler(t *testing.T) {
	var buf bytes.Buffer
	Setup(Options{Out: &buf}).Info("backup created", "path", "portal.php")

	out := buf.String()
	if !strings.Contains(out, `msg="backup created"`) || !strings.Contains(out, "path=portal.php") {
		t.Fatalf("unexpected text log: %q", out)
	}
}

func TestSetup_JSONHandler(t *testing.T) {
	var buf bytes.Buffer
	Setup(Options{JSON: true, Out: &buf}).Info("file truncated", "removed", 305)

	var rec map[string]any
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("log line is not JSON: %v; %q", err, buf.String())
	}
	if rec["msg"] != "file truncated" || rec["removed"] != float64(305) {
		t.Fatalf("unexpected record: %v", rec)
	}
}

func TestWithLogger_FromContext_RoundTrip(t *testing.T) {
	logger := Setup(Options{Out: &bytes.Buffer{}})
	ctx := WithLogger(context.Background(), logger)

	if FromContext(ctx) != logger {
		t.Error("FromContext did not return the logger stored with WithLogger")
	}
}

func TestFromContext_ReturnsDefault_WhenNotInContext(t *testing.T) {
	if FromContext(context.Background()) != slog.Default() {
		t.Error("FromContext should return slog.Default() when logger not in context")
	}
}
