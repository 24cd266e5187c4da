package memory

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/patrickmn/go-cache"

	"github.com/krysopath/pydis/errors"
	"github.com/krysopath/pydis/log"
	"github.com/krysopath/pydis/store"
)

var logger = log.NewModuleLogger("memory-store")

// Compile time check if memory implements store interfaces.
var (
	_ store.Store   = &Memory{}
	_ store.Factory = &Memory{}
)

type hashValue map[string]string

type listValue struct {
	items []string
}

// db is the data shared by all connections of the memory store.
type db struct {
	mu    sync.Mutex
	cache *cache.Cache
}

// Memory is a in-memory store implementation with the semantics of the Redis hash and list commands.
// Each operation is atomic. The keys expire after the Options.DefaultExpiration since their last
// hash or list push write.
type Memory struct {
	db      *db
	closed  atomic.Bool
	Options *store.Options
}

// New creates new in-memory store.
func New(options ...store.Option) *Memory {
	m := &Memory{
		Options: store.DefaultOptions(),
	}
	for _, option := range options {
		option(m.Options)
	}
	m.db = &db{cache: cache.New(m.Options.DefaultExpiration, m.Options.CleanupInterval)}
	logger.Debugf("new memory store with prefix: '%s'", m.Options.Prefix)
	return m
}

// Connect implements store.Factory interface. The connection shares the data with the store 'm'.
func (m *Memory) Connect(ctx context.Context) (store.Store, error) {
	if err := m.check(ctx); err != nil {
		return nil, err
	}
	return &Memory{db: m.db, Options: m.Options}, nil
}

// Exists implements store.KeyStore interface.
func (m *Memory) Exists(ctx context.Context, key string) (bool, error) {
	if err := m.check(ctx); err != nil {
		return false, err
	}
	m.db.mu.Lock()
	defer m.db.mu.Unlock()

	_, ok := m.db.cache.Get(m.Options.Key(key))
	return ok, nil
}

// Delete implements store.KeyStore interface.
func (m *Memory) Delete(ctx context.Context, key string) error {
	if err := m.check(ctx); err != nil {
		return err
	}
	m.db.mu.Lock()
	defer m.db.mu.Unlock()

	m.db.cache.Delete(m.Options.Key(key))
	return nil
}

// Find implements store.KeyStore interface.
func (m *Memory) Find(ctx context.Context, options ...store.FindOption) ([]string, error) {
	if err := m.check(ctx); err != nil {
		return nil, err
	}
	pattern := store.NewFindPattern(options...)
	stored := &store.FindPattern{Prefix: m.Options.Prefix + pattern.Prefix, Suffix: pattern.Suffix + m.Options.Suffix}

	m.db.mu.Lock()
	items := m.db.cache.Items()
	m.db.mu.Unlock()

	keys := []string{}
	for k := range items {
		if !stored.Match(k) {
			continue
		}
		key := m.Options.Unkey(k)
		if pattern.Filter != nil && !pattern.Filter(key) {
			continue
		}
		keys = append(keys, key)
	}
	return pattern.Apply(keys), nil
}

// Close implements store.Store interface. Closing the connection doesn't remove the data shared
// with the other connections.
func (m *Memory) Close(context.Context) error {
	m.closed.Store(true)
	return nil
}

// Flush removes all the keys from the store.
func (m *Memory) Flush() {
	m.db.mu.Lock()
	defer m.db.mu.Unlock()
	m.db.cache.Flush()
}

func (m *Memory) check(ctx context.Context) error {
	if m.closed.Load() {
		return errors.Wrap(store.ErrClosed, "memory store")
	}
	if err := ctx.Err(); err != nil {
		return errors.Wrap(store.ErrConnection, err.Error())
	}
	return nil
}

func (m *Memory) hash(key string, create bool) (hashValue, error) {
	v, ok := m.db.cache.Get(key)
	if !ok {
		if !create {
			return nil, nil
		}
		h := hashValue{}
		m.db.cache.Set(key, h, cache.DefaultExpiration)
		return h, nil
	}
	h, ok := v.(hashValue)
	if !ok {
		return nil, errors.Wrapf(store.ErrWrongType, "key: '%s' doesn't hold a hash", m.Options.Unkey(key))
	}
	if create {
		m.db.cache.Set(key, h, cache.DefaultExpiration)
	}
	return h, nil
}

func (m *Memory) list(key string, create bool) (*listValue, error) {
	v, ok := m.db.cache.Get(key)
	if !ok {
		if !create {
			return nil, nil
		}
		l := &listValue{}
		m.db.cache.Set(key, l, cache.DefaultExpiration)
		return l, nil
	}
	l, ok := v.(*listValue)
	if !ok {
		return nil, errors.Wrapf(store.ErrWrongType, "key: '%s' doesn't hold a list", m.Options.Unkey(key))
	}
	if create {
		m.db.cache.Set(key, l, cache.DefaultExpiration)
	}
	return l, nil
}
