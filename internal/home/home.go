// Package home manages the agent home directory: a writable directory that
// holds properties files, seeded assets, the instance identity, and the
// single-instance lock.
package home

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofrs/flock"
	"golang.org/x/sys/unix"

	"lodestone/internal/logging"
)

const lockFileName = "lodestone.lock"

// Home is a validated agent home directory.
type Home struct {
	dir    string
	logger *slog.Logger
	lock   *flock.Flock
}

// Open validates and, if needed, creates the home directory. Paths containing
// spaces are rejected outright: downstream tooling splits on them.
func Open(dir string, logger *slog.Logger) (*Home, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, errors.New("home directory must not be empty")
	}

	abs, err := filepath.Abs(filepath.Clean(dir))
	if err != nil {
		return nil, fmt.Errorf("resolve home directory %q: %w", dir, err)
	}
	if strings.Contains(strings.TrimSpace(abs), " ") {
		return nil, fmt.Errorf("home directory %q must not contain spaces; choose a different location", abs)
	}

	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, fmt.Errorf("create home directory %q: %w", abs, err)
	}

	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("stat home directory %q: %w", abs, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("home path %q is not a directory; delete the file first", abs)
	}

	if err := unix.Access(abs, unix.R_OK|unix.W_OK|unix.X_OK); err != nil {
		return nil, fmt.Errorf("home directory %q is not writable: %w", abs, err)
	}

	return &Home{
		dir:    abs,
		logger: logging.NewComponentLogger(logger, "home"),
		lock:   flock.New(filepath.Join(abs, lockFileName)),
	}, nil
}

// Dir returns the absolute home directory path.
func (h *Home) Dir() string {
	return h.dir
}

// File returns the absolute path of name inside the home.
func (h *Home) File(name string) string {
	return filepath.Join(h.dir, name)
}

// LogDir returns the log directory inside the home.
func (h *Home) LogDir() string {
	return filepath.Join(h.dir, "log")
}

// CopyFileTo seeds a file into the home from r. Only the base name of name is
// used. An existing file is left untouched unless overwrite is set.
func (h *Home) CopyFileTo(r io.Reader, name string, overwrite bool) error {
	target := h.File(filepath.Base(name))
	if !overwrite {
		if _, err := os.Stat(target); err == nil {
			return nil
		}
	}

	out, err := os.Create(target)
	if err != nil {
		return fmt.Errorf("write %s: %w", target, err)
	}
	_, copyErr := io.Copy(out, r)
	closeErr := out.Close()
	if copyErr != nil {
		return fmt.Errorf("write %s: %w", target, copyErr)
	}
	if closeErr != nil {
		return fmt.Errorf("write %s: %w", target, closeErr)
	}
	return nil
}
