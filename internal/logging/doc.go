// Package logging configures slog for lodestone: a key=value console handler
// for interactive use, a JSON handler for machine consumption, and a small set
// of attribute helpers shared by every package that logs.
package logging
