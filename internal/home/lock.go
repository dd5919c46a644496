package home

import "fmt"

// TryLock attempts to take the single-instance lock for this home. It returns
// false without error when another process already holds it.
func (h *Home) TryLock() (bool, error) {
	ok, err := h.lock.TryLock()
	if err != nil {
		return false, fmt.Errorf("acquire home lock: %w", err)
	}
	return ok, nil
}

// Unlock releases the single-instance lock.
func (h *Home) Unlock() error {
	return h.lock.Unlock()
}
