// Package testsupport provides helpers shared by package tests.
package testsupport

import (
	"path/filepath"
	"testing"

	"lodestone/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with unique temp directories per test.
// It defaults common fields and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.HomeDir = filepath.Join(base, "home")
	cfg.Paths.LogDir = filepath.Join(base, "logs")
	cfg.Journal.Path = filepath.Join(base, "journal.db")

	for _, opt := range opts {
		opt(&cfg)
	}

	return &cfg
}

// WithProbeHosts overrides the outbound probe targets on the test config.
func WithProbeHosts(hosts ...string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Resolver.ProbeHosts = hosts
	}
}

// WithJournalEnabled switches the journal on for the test config.
func WithJournalEnabled() ConfigOption {
	return func(cfg *config.Config) {
		cfg.Journal.Enabled = true
	}
}
