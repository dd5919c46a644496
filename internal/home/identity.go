package home

import (
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
)

const instanceIDFile = "instance-id"

// InstanceID returns the stable identity of this home, creating it on first
// use. The identity is a dashless UUID stored in the instance-id file.
func (h *Home) InstanceID() (string, error) {
	path := h.File(instanceIDFile)
	if data, err := os.ReadFile(path); err == nil {
		if id := strings.TrimSpace(string(data)); id != "" {
			return id, nil
		}
	}

	id := strings.ReplaceAll(uuid.New().String(), "-", "")
	if err := os.WriteFile(path, []byte(id+"\n"), 0o644); err != nil {
		return "", fmt.Errorf("write instance id: %w", err)
	}
	return id, nil
}
