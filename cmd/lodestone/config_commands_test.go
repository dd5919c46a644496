package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestConfigInitWritesSample(t *testing.T) {
	target := filepath.Join(t.TempDir(), "config.toml")

	out, _, err := runCLI(t, target, "config", "init")
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	requireContains(t, out, "wrote sample config")

	if _, err := os.Stat(target); err != nil {
		t.Fatalf("expected config file at %s: %v", target, err)
	}

	// A second init without --overwrite must refuse.
	if _, _, err := runCLI(t, target, "config", "init"); err == nil {
		t.Fatal("expected error when config already exists")
	}

	if _, _, err := runCLI(t, target, "config", "init", "--overwrite"); err != nil {
		t.Fatalf("config init --overwrite: %v", err)
	}
}

func TestConfigShowReportsSettings(t *testing.T) {
	cfg := localProbeConfig(t)
	configPath := newTestConfigFile(t, cfg)

	out, _, err := runCLI(t, configPath, "config", "show")
	if err != nil {
		t.Fatalf("config show: %v", err)
	}
	requireContains(t, out, "config file: "+configPath)
	requireContains(t, out, "resolver.fallback_port")
	requireContains(t, out, "paths.home_dir")
}

func TestConfigShowWithoutFileUsesDefaults(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "no-such.toml")

	out, _, err := runCLI(t, missing, "config", "show")
	if err != nil {
		t.Fatalf("config show: %v", err)
	}
	requireContains(t, out, "none found")
	requireContains(t, out, "resolver.fallback_port")
}
