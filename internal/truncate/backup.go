package truncate

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// BackupLayout is the timestamp layout embedded in backup file names.
const BackupLayout = "20060102_150405"

// BackupPath derives the backup file name for path at time now:
// <stem>_backup_<YYYYMMDD_HHMMSS><.ext>, in the same directory as path.
func BackupPath(path string, now time.Time) string {
	dir, base := filepath.Split(path)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)
	if stem == "" {
		// Dotfiles like ".env" have no stem; treat the whole name as one.
		stem, ext = base, ""
	}
	return filepath.Join(dir, fmt.Sprintf("%s_backup_%s%s", stem, now.Format(BackupLayout), ext))
}

// copyFile copies src to dst byte for byte. The source is opened first so a
// missing source never leaves an empty dst behind. An existing dst is never
// overwritten.
func copyFile(src, dst string) (err error) {
	in, err := os.Open(src)
	if err != nil {
		return classify("backup", src, err)
	}
	defer in.Close() //nolint:errcheck // read-only handle

	info, err := in.Stat()
	if err != nil {
		return classify("backup", src, err)
	}
	if info.IsDir() {
		return &PathError{Op: "backup", Path: src, Kind: ErrIO, Err: fmt.Errorf("is a directory")}
	}

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, info.Mode().Perm())
	if err != nil {
		return classify("backup", dst, err)
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = classify("backup", dst, cerr)
		}
	}()

	if _, err := io.Copy(out, in); err != nil {
		return classify("backup", dst, err)
	}
	return nil
}
