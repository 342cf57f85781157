package cmd

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// captureStdout captures stdout output for assertions in tests.
func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	return capture(t, &os.Stdout, fn)
}

// captureStderr captures stderr output for assertions in tests.
func captureStderr(t *testing.T, fn func()) string {
	t.Helper()
	return capture(t, &os.Stderr, fn)
}

func capture(t *testing.T, target **os.File, fn func()) string {
	t.Helper()

	orig := *target
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	*target = w

	done := make(chan string)
	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, r)
		_ = r.Close()
		done <- buf.String()
	}()

	defer func() { *target = orig }()
	fn()

	_ = w.Close()
	*target = orig
	return <-done
}

// withStdin replaces os.Stdin with a pipe holding input for the duration of the test.
func withStdin(t *testing.T, input string) {
	t.Helper()

	stdin := os.Stdin
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	os.Stdin = r
	t.Cleanup(func() {
		os.Stdin = stdin
		_ = r.Close()
	})

	_, _ = w.WriteString(input)
	_ = w.Close()
}

// writeLinesFile creates dir/name with n numbered lines.
func writeLinesFile(t *testing.T, dir, name string, n int) string {
	t.Helper()

	var b strings.Builder
	for i := 1; i <= n; i++ {
		fmt.Fprintf(&b, "<?php // line %d ?>\n", i)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func backups(t *testing.T, dir string) []string {
	t.Helper()

	matches, err := filepath.Glob(filepath.Join(dir, "*_backup_*"))
	if err != nil {
		t.Fatalf("glob: %v", err)
	}
	return matches
}

// isolateEnv clears LINETRIM_* variables so the host environment cannot leak in.
func isolateEnv(t *testing.T) {
	t.Helper()
	t.Setenv("LINETRIM_OUTPUT", "")
	t.Setenv("LINETRIM_COLOR", "never")
	t.Setenv("LINETRIM_LINES", "")
}
