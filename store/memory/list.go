package memory

import (
	"context"

	"github.com/krysopath/pydis/errors"
	"github.com/krysopath/pydis/store"
)

// LIndex implements store.ListStore interface.
func (m *Memory) LIndex(ctx context.Context, key string, index int64) (string, bool, error) {
	if err := m.check(ctx); err != nil {
		return "", false, err
	}
	m.db.mu.Lock()
	defer m.db.mu.Unlock()

	l, err := m.list(m.Options.Key(key), false)
	if err != nil || l == nil {
		return "", false, err
	}
	i, ok := l.index(index)
	if !ok {
		return "", false, nil
	}
	return l.items[i], true, nil
}

// LSet implements store.ListStore interface.
func (m *Memory) LSet(ctx context.Context, key string, index int64, value string) error {
	if err := m.check(ctx); err != nil {
		return err
	}
	m.db.mu.Lock()
	defer m.db.mu.Unlock()

	l, err := m.list(m.Options.Key(key), false)
	if err != nil {
		return err
	}
	if l == nil {
		return errors.Wrapf(store.ErrNoSuchKey, "list: '%s'", key)
	}
	i, ok := l.index(index)
	if !ok {
		return errors.Wrapf(store.ErrOutOfRange, "list: '%s' index: %d", key, index)
	}
	l.items[i] = value
	return nil
}

// LLen implements store.ListStore interface.
func (m *Memory) LLen(ctx context.Context, key string) (int64, error) {
	if err := m.check(ctx); err != nil {
		return 0, err
	}
	m.db.mu.Lock()
	defer m.db.mu.Unlock()

	l, err := m.list(m.Options.Key(key), false)
	if err != nil || l == nil {
		return 0, err
	}
	return int64(len(l.items)), nil
}

// LRange implements store.ListStore interface.
func (m *Memory) LRange(ctx context.Context, key string, start, stop int64) ([]string, error) {
	if err := m.check(ctx); err != nil {
		return nil, err
	}
	m.db.mu.Lock()
	defer m.db.mu.Unlock()

	l, err := m.list(m.Options.Key(key), false)
	if err != nil {
		return nil, err
	}
	if l == nil {
		return []string{}, nil
	}
	length := int64(len(l.items))
	if start < 0 {
		start += length
		if start < 0 {
			start = 0
		}
	}
	if stop < 0 {
		stop += length
	}
	if stop >= length {
		stop = length - 1
	}
	if start > stop || start >= length {
		return []string{}, nil
	}
	result := make([]string, stop-start+1)
	copy(result, l.items[start:stop+1])
	return result, nil
}

// LPush implements store.ListStore interface.
func (m *Memory) LPush(ctx context.Context, key string, values ...string) error {
	return m.push(ctx, key, true, values)
}

// RPush implements store.ListStore interface.
func (m *Memory) RPush(ctx context.Context, key string, values ...string) error {
	return m.push(ctx, key, false, values)
}

// LPop implements store.ListStore interface.
func (m *Memory) LPop(ctx context.Context, key string) (string, bool, error) {
	return m.pop(ctx, key, true)
}

// RPop implements store.ListStore interface.
func (m *Memory) RPop(ctx context.Context, key string) (string, bool, error) {
	return m.pop(ctx, key, false)
}

// LRem implements store.ListStore interface.
func (m *Memory) LRem(ctx context.Context, key string, count int64, value string) (int64, error) {
	if err := m.check(ctx); err != nil {
		return 0, err
	}
	m.db.mu.Lock()
	defer m.db.mu.Unlock()

	stored := m.Options.Key(key)
	l, err := m.list(stored, false)
	if err != nil || l == nil {
		return 0, err
	}

	limit := count
	if limit < 0 {
		limit = -limit
	}
	matches := func(i int) bool { return l.items[i] == value }

	remove := make(map[int]struct{})
	if count >= 0 {
		for i := 0; i < len(l.items); i++ {
			if matches(i) {
				remove[i] = struct{}{}
				if limit > 0 && int64(len(remove)) == limit {
					break
				}
			}
		}
	} else {
		for i := len(l.items) - 1; i >= 0; i-- {
			if matches(i) {
				remove[i] = struct{}{}
				if int64(len(remove)) == limit {
					break
				}
			}
		}
	}
	if len(remove) == 0 {
		return 0, nil
	}
	items := make([]string, 0, len(l.items)-len(remove))
	for i, item := range l.items {
		if _, ok := remove[i]; !ok {
			items = append(items, item)
		}
	}
	l.items = items
	if len(l.items) == 0 {
		m.db.cache.Delete(stored)
	}
	return int64(len(remove)), nil
}

func (m *Memory) push(ctx context.Context, key string, head bool, values []string) error {
	if err := m.check(ctx); err != nil {
		return err
	}
	if len(values) == 0 {
		return nil
	}
	m.db.mu.Lock()
	defer m.db.mu.Unlock()

	l, err := m.list(m.Options.Key(key), true)
	if err != nil {
		return err
	}
	if !head {
		l.items = append(l.items, values...)
		return nil
	}
	items := make([]string, 0, len(values)+len(l.items))
	for i := len(values) - 1; i >= 0; i-- {
		items = append(items, values[i])
	}
	l.items = append(items, l.items...)
	return nil
}

func (m *Memory) pop(ctx context.Context, key string, head bool) (string, bool, error) {
	if err := m.check(ctx); err != nil {
		return "", false, err
	}
	m.db.mu.Lock()
	defer m.db.mu.Unlock()

	stored := m.Options.Key(key)
	l, err := m.list(stored, false)
	if err != nil || l == nil {
		return "", false, err
	}
	var value string
	if head {
		value, l.items = l.items[0], l.items[1:]
	} else {
		last := len(l.items) - 1
		value, l.items = l.items[last], l.items[:last]
	}
	// Redis removes the keys of the empty lists.
	if len(l.items) == 0 {
		m.db.cache.Delete(stored)
	}
	return value, true, nil
}

func (l *listValue) index(index int64) (int, bool) {
	length := int64(len(l.items))
	if index < 0 {
		index += length
	}
	if index < 0 || index >= length {
		return 0, false
	}
	return int(index), true
}
