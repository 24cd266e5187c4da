package memory

import (
	"context"
)

// HGet implements store.HashStore interface.
func (m *Memory) HGet(ctx context.Context, key, field string) (string, bool, error) {
	if err := m.check(ctx); err != nil {
		return "", false, err
	}
	m.db.mu.Lock()
	defer m.db.mu.Unlock()

	h, err := m.hash(m.Options.Key(key), false)
	if err != nil || h == nil {
		return "", false, err
	}
	value, ok := h[field]
	return value, ok, nil
}

// HSet implements store.HashStore interface.
func (m *Memory) HSet(ctx context.Context, key, field, value string) error {
	if err := m.check(ctx); err != nil {
		return err
	}
	m.db.mu.Lock()
	defer m.db.mu.Unlock()

	h, err := m.hash(m.Options.Key(key), true)
	if err != nil {
		return err
	}
	h[field] = value
	return nil
}
