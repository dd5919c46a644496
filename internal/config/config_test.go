package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"lodestone/internal/config"
)

func TestLoadDefaultsAndExpandsPaths(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if resolved == "" {
		t.Fatal("expected resolved path")
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}

	wantHome := filepath.Join(tempHome, ".local", "share", "lodestone")
	if cfg.Paths.HomeDir != wantHome {
		t.Fatalf("unexpected home dir: got %q want %q", cfg.Paths.HomeDir, wantHome)
	}
	if !cfg.Resolver.PreferIPv4 {
		t.Fatal("expected IPv4 preference by default")
	}
	if cfg.Resolver.PreferIPv6 {
		t.Fatal("expected IPv6 preference off by default")
	}
	if len(cfg.Resolver.ProbeHosts) != 2 || cfg.Resolver.ProbeHosts[0] != "www.google.com:80" {
		t.Fatalf("unexpected probe hosts: %v", cfg.Resolver.ProbeHosts)
	}
	if cfg.Resolver.ProbeTimeoutSeconds != 2 {
		t.Fatalf("unexpected probe timeout: %d", cfg.Resolver.ProbeTimeoutSeconds)
	}
	if cfg.Resolver.FallbackPort != 16000 {
		t.Fatalf("unexpected fallback port: %d", cfg.Resolver.FallbackPort)
	}
	if cfg.Journal.Enabled {
		t.Fatal("expected journal disabled by default")
	}
	if cfg.Logging.Format != "console" || cfg.Logging.Level != "info" {
		t.Fatalf("unexpected logging defaults: %+v", cfg.Logging)
	}
}

func TestLoadExplicitFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	content := map[string]any{
		"resolver": map[string]any{
			"prefer_ipv4":           false,
			"prefer_ipv6":           true,
			"probe_hosts":           []string{"probe.example.com:80"},
			"probe_timeout_seconds": 5,
		},
		"logging": map[string]any{"format": "json", "level": "debug"},
	}
	data, err := toml.Marshal(content)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, resolved, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !exists || resolved != path {
		t.Fatalf("expected explicit file to be used: exists=%v resolved=%q", exists, resolved)
	}
	if !cfg.Resolver.PreferIPv6 || cfg.Resolver.PreferIPv4 {
		t.Fatalf("unexpected preferences: %+v", cfg.Resolver)
	}
	if len(cfg.Resolver.ProbeHosts) != 1 || cfg.Resolver.ProbeHosts[0] != "probe.example.com:80" {
		t.Fatalf("unexpected probe hosts: %v", cfg.Resolver.ProbeHosts)
	}
	if cfg.Resolver.ProbeTimeoutSeconds != 5 {
		t.Fatalf("unexpected timeout: %d", cfg.Resolver.ProbeTimeoutSeconds)
	}
	if cfg.Logging.Format != "json" || cfg.Logging.Level != "debug" {
		t.Fatalf("unexpected logging: %+v", cfg.Logging)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	dir := t.TempDir()

	write := func(t *testing.T, content map[string]any) string {
		t.Helper()
		data, err := toml.Marshal(content)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		path := filepath.Join(dir, "bad.toml")
		if err := os.WriteFile(path, data, 0o644); err != nil {
			t.Fatalf("write: %v", err)
		}
		return path
	}

	t.Run("both family preferences", func(t *testing.T) {
		path := write(t, map[string]any{
			"resolver": map[string]any{"prefer_ipv4": true, "prefer_ipv6": true},
		})
		if _, _, _, err := config.Load(path); err == nil {
			t.Fatal("expected an error for mutually exclusive preferences")
		}
	})

	t.Run("probe host without port", func(t *testing.T) {
		path := write(t, map[string]any{
			"resolver": map[string]any{"probe_hosts": []string{"no-port.example.com"}},
		})
		if _, _, _, err := config.Load(path); err == nil {
			t.Fatal("expected an error for host without port")
		}
	})

	t.Run("unknown log format", func(t *testing.T) {
		path := write(t, map[string]any{
			"logging": map[string]any{"format": "yaml"},
		})
		if _, _, _, err := config.Load(path); err == nil {
			t.Fatal("expected an error for unknown log format")
		}
	})
}

func TestCreateSample(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample: %v", err)
	}

	cfg, _, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("sample config does not load: %v", err)
	}
	if !exists {
		t.Fatal("expected sample file to exist")
	}
	if !cfg.Resolver.PreferIPv4 {
		t.Fatal("expected sample to keep IPv4 preference")
	}
}
