package home_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"lodestone/internal/home"
)

func TestOpen(t *testing.T) {
	t.Run("creates the directory", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "agent-home")
		h, err := home.Open(dir, nil)
		if err != nil {
			t.Fatalf("Open: %v", err)
		}
		info, statErr := os.Stat(h.Dir())
		if statErr != nil || !info.IsDir() {
			t.Fatalf("expected home directory to exist: %v", statErr)
		}
	})

	t.Run("rejects paths with spaces", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "agent home")
		if _, err := home.Open(dir, nil); err == nil {
			t.Fatal("expected an error for a path containing a space")
		}
	})

	t.Run("rejects an existing file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "occupied")
		if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
			t.Fatalf("seed file: %v", err)
		}
		if _, err := home.Open(path, nil); err == nil {
			t.Fatal("expected an error when the home path is a file")
		}
	})

	t.Run("rejects empty path", func(t *testing.T) {
		if _, err := home.Open("  ", nil); err == nil {
			t.Fatal("expected an error for an empty path")
		}
	})
}

type demoProps struct {
	Endpoint string `toml:"endpoint"`
	Port     int    `toml:"port"`
}

func TestProperties(t *testing.T) {
	h, err := home.Open(filepath.Join(t.TempDir(), "h"), nil)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	t.Run("round trip", func(t *testing.T) {
		saved := demoProps{Endpoint: "10.0.0.1", Port: 8080}
		if err := h.SaveProperties("agent.toml", saved); err != nil {
			t.Fatalf("SaveProperties: %v", err)
		}

		var loaded demoProps
		h.LoadProperties("agent.toml", &loaded)
		if loaded != saved {
			t.Fatalf("round trip mismatch: %+v != %+v", loaded, saved)
		}
	})

	t.Run("missing file leaves defaults", func(t *testing.T) {
		loaded := demoProps{Endpoint: "default", Port: 1}
		h.LoadProperties("absent.toml", &loaded)
		if loaded.Endpoint != "default" || loaded.Port != 1 {
			t.Fatalf("defaults were clobbered: %+v", loaded)
		}
	})
}

func TestCopyFileTo(t *testing.T) {
	h, err := home.Open(filepath.Join(t.TempDir(), "h"), nil)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	if err := h.CopyFileTo(strings.NewReader("first"), "seed.txt", false); err != nil {
		t.Fatalf("CopyFileTo: %v", err)
	}
	// Existing files are kept unless overwrite is requested.
	if err := h.CopyFileTo(strings.NewReader("second"), "seed.txt", false); err != nil {
		t.Fatalf("CopyFileTo: %v", err)
	}
	data, err := os.ReadFile(h.File("seed.txt"))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(data) != "first" {
		t.Fatalf("expected original content kept, got %q", data)
	}

	if err := h.CopyFileTo(strings.NewReader("second"), "seed.txt", true); err != nil {
		t.Fatalf("CopyFileTo overwrite: %v", err)
	}
	data, _ = os.ReadFile(h.File("seed.txt"))
	if string(data) != "second" {
		t.Fatalf("expected overwritten content, got %q", data)
	}
}

func TestInstanceID(t *testing.T) {
	h, err := home.Open(filepath.Join(t.TempDir(), "h"), nil)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	first, err := h.InstanceID()
	if err != nil {
		t.Fatalf("InstanceID: %v", err)
	}
	if len(first) != 32 || strings.Contains(first, "-") {
		t.Fatalf("expected a dashless uuid, got %q", first)
	}

	second, err := h.InstanceID()
	if err != nil {
		t.Fatalf("InstanceID: %v", err)
	}
	if first != second {
		t.Fatalf("instance id must be stable: %q != %q", first, second)
	}
}

func TestTryLock(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "h")
	first, err := home.Open(dir, nil)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	ok, err := first.TryLock()
	if err != nil || !ok {
		t.Fatalf("expected first lock to succeed: ok=%v err=%v", ok, err)
	}
	defer first.Unlock()

	second, err := home.Open(dir, nil)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	ok, err = second.TryLock()
	if err != nil {
		t.Fatalf("second TryLock: %v", err)
	}
	if ok {
		t.Fatal("expected the lock to be held already")
	}
}
