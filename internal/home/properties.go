package home

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"lodestone/internal/logging"
)

// LoadProperties reads the TOML properties file name into v. Loading is best
// effort: a missing or unreadable file leaves v untouched, so callers always
// start from their own defaults.
func (h *Home) LoadProperties(name string, v any) {
	data, err := os.ReadFile(h.File(name))
	if err != nil {
		h.logger.Debug("properties not loaded",
			logging.String("file", name),
			logging.Error(err),
		)
		return
	}
	if err := toml.Unmarshal(data, v); err != nil {
		h.logger.Warn("properties file is malformed; using defaults",
			logging.String("file", name),
			logging.Error(err),
		)
	}
}

// SaveProperties writes v as TOML to the properties file name. A write
// failure is logged and returned; the home stays usable.
func (h *Home) SaveProperties(name string, v any) error {
	data, err := toml.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode properties %s: %w", name, err)
	}
	if err := os.WriteFile(h.File(name), data, 0o644); err != nil {
		h.logger.Error("could not save properties",
			logging.String("file", name),
			logging.Error(err),
		)
		return fmt.Errorf("save properties %s: %w", name, err)
	}
	return nil
}
