package state

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"
)

// CorruptStateError reports a state record that exists but cannot be decoded.
type CorruptStateError struct {
	Path string
	Err  error
}

func (e *CorruptStateError) Error() string {
	return fmt.Sprintf("state record %s is corrupt: %v", e.Path, e.Err)
}

func (e *CorruptStateError) Unwrap() error { return e.Err }

// IsCorrupt reports whether err is a *CorruptStateError.
func IsCorrupt(err error) bool {
	var e *CorruptStateError
	return errors.As(err, &e)
}

// moveAside renames path and any of its companion files to
// "<name>.corrupt-<timestamp>". Missing files are skipped.
func moveAside(path string, companions ...string) error {
	suffix := ".corrupt-" + time.Now().UTC().Format("20060102T150405.000000000")
	for _, p := range append([]string{path}, companions...) {
		if err := os.Rename(p, p+suffix); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("move aside %s: %w", p, err)
		}
	}
	return nil
}
