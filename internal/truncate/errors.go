package truncate

import (
	"errors"
	"fmt"
	"io/fs"
)

// Error kinds. Match with errors.Is.
var (
	ErrFileNotFound     = errors.New("file not found")
	ErrPermissionDenied = errors.New("permission denied")
	ErrIO               = errors.New("i/o error")
	ErrInvalidCutoff    = errors.New("cutoff must be non-negative")
)

// PathError records the step and path of a failed filesystem operation,
// along with the kind it was classified as.
type PathError struct {
	Op   string // stat, backup, read, write
	Path string
	Kind error
	Err  error
}

// Error reads "op path: kind: cause", dropping the cause when it only
// repeats the kind (EACCES already says "permission denied").
func (e *PathError) Error() string {
	if e.Kind == nil {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
	}
	if e.Err == nil || e.Err.Error() == e.Kind.Error() {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Kind)
	}
	return fmt.Sprintf("%s %s: %v: %v", e.Op, e.Path, e.Kind, e.Err)
}

// Unwrap exposes both the kind and the underlying error.
func (e *PathError) Unwrap() []error {
	errs := make([]error, 0, 2)
	for _, err := range []error{e.Kind, e.Err} {
		if err != nil {
			errs = append(errs, err)
		}
	}
	return errs
}

func classify(op, path string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrFileNotFound) || errors.Is(err, ErrPermissionDenied) || errors.Is(err, ErrIO) {
		return err
	}

	kind := ErrIO
	switch {
	case errors.Is(err, fs.ErrNotExist):
		kind = ErrFileNotFound
	case errors.Is(err, fs.ErrPermission):
		kind = ErrPermissionDenied
	}

	// os errors already carry the path; keep only the cause.
	var pe *fs.PathError
	if errors.As(err, &pe) {
		err = pe.Err
	}

	return &PathError{Op: op, Path: path, Kind: kind, Err: err}
}
