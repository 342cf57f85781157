// Package truncate backs up a text file and cuts it down to its first N lines.
package truncate

import (
	"context"
	"fmt"
	"os"
	"time"
	"unicode/utf8"

	"github.com/salmonumbrella/linetrim/internal/logging"
)

// Report summarizes a truncation (or a planned one).
type Report struct {
	Path          string `json:"path"`
	BackupPath    string `json:"backupPath,omitempty"`
	Cutoff        int    `json:"cutoff"`
	OriginalLines int    `json:"originalLines"`
	RetainedLines int    `json:"retainedLines"`
	RemovedLines  int    `json:"removedLines"`
	OriginalBytes int64  `json:"originalBytes"`
	RetainedBytes int64  `json:"retainedBytes"`
	DryRun        bool   `json:"dryRun"`
}

// Truncator performs backup-then-truncate on a single file.
type Truncator struct {
	// Now returns the time used in backup names. Defaults to time.Now.
	Now func() time.Time
}

// New returns a Truncator using the wall clock.
func New() *Truncator {
	return &Truncator{Now: time.Now}
}

func (t *Truncator) now() time.Time {
	if t == nil || t.Now == nil {
		return time.Now()
	}
	return t.Now()
}

// Plan reports what Truncate would do without creating or modifying anything.
func (t *Truncator) Plan(ctx context.Context, path string, cutoff int) (*Report, error) {
	if err := checkStart(ctx, cutoff); err != nil {
		return nil, err
	}

	data, err := readTarget(path)
	if err != nil {
		return nil, err
	}

	r := newReport(path, cutoff, data)
	r.BackupPath = BackupPath(path, t.now())
	r.DryRun = true

	logging.FromContext(ctx).Debug("planned truncation",
		"path", path, "cutoff", cutoff, "lines", r.OriginalLines, "remove", r.RemovedLines)
	return r, nil
}

// Truncate copies path to a timestamped backup and then rewrites path with
// only its first cutoff lines.
//
// When a step after the backup fails, the returned Report is non-nil and
// carries BackupPath. Nothing is rolled back.
func (t *Truncator) Truncate(ctx context.Context, path string, cutoff int) (*Report, error) {
	if err := checkStart(ctx, cutoff); err != nil {
		return nil, err
	}
	log := logging.FromContext(ctx)

	backup := BackupPath(path, t.now())
	if err := copyFile(path, backup); err != nil {
		return nil, err
	}
	log.Debug("backup created", "path", path, "backup", backup)

	partial := &Report{Path: path, BackupPath: backup, Cutoff: cutoff}

	data, err := readTarget(path)
	if err != nil {
		return partial, err
	}

	r := newReport(path, cutoff, data)
	r.BackupPath = backup

	off, _ := cutOffset(data, cutoff)
	if err := overwrite(path, data[:off]); err != nil {
		return r, err
	}

	log.Debug("file truncated",
		"path", path, "original", r.OriginalLines, "retained", r.RetainedLines, "removed", r.RemovedLines)
	return r, nil
}

func checkStart(ctx context.Context, cutoff int) error {
	if cutoff < 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidCutoff, cutoff)
	}
	return ctx.Err()
}

func newReport(path string, cutoff int, data []byte) *Report {
	off, kept := cutOffset(data, cutoff)
	total := CountLines(data)
	return &Report{
		Path:          path,
		Cutoff:        cutoff,
		OriginalLines: total,
		RetainedLines: kept,
		RemovedLines:  total - kept,
		OriginalBytes: int64(len(data)),
		RetainedBytes: int64(off),
	}
}

func readTarget(path string) ([]byte, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, classify("stat", path, err)
	}
	if info.IsDir() {
		return nil, &PathError{Op: "read", Path: path, Kind: ErrIO, Err: fmt.Errorf("is a directory")}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, classify("read", path, err)
	}
	if !utf8.Valid(data) {
		return nil, &PathError{Op: "read", Path: path, Kind: ErrIO, Err: fmt.Errorf("content is not valid UTF-8")}
	}
	return data, nil
}

// overwrite replaces the content of an existing file, keeping its mode.
func overwrite(path string, data []byte) (err error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_TRUNC, 0)
	if err != nil {
		return classify("write", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = classify("write", path, cerr)
		}
	}()

	if _, err := f.Write(data); err != nil {
		return classify("write", path, err)
	}
	return nil
}
