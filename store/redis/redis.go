package redis

import (
	"context"

	"github.com/redis/go-redis/v9"

	"github.com/krysopath/pydis/store"
)

var (
	_ store.Store  = &Store{}
	_ store.Dialer = &Store{}
)

// scanCount is the COUNT hint used while scanning the keys.
const scanCount = 100

// Store is the redis implementation of the store.Store interface.
type Store struct {
	Options *store.Options
	name    string
	client  *redis.Client
}

// Name gets the client name of the store connection.
func (s *Store) Name() string {
	return s.name
}

// Dial implements store.Dialer interface.
func (s *Store) Dial(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		logger.Errorf("dialing redis store: '%s' failed: %v", s.name, err)
		return mapError(err, "")
	}
	return nil
}

// Close implements store.Store interface.
func (s *Store) Close(context.Context) error {
	logger.Debugf("closing redis store: '%s'", s.name)
	return mapError(s.client.Close(), "")
}

// Exists implements store.KeyStore interface.
func (s *Store) Exists(ctx context.Context, key string) (bool, error) {
	logger.Debug3f("EXISTS %s", key)
	n, err := s.client.Exists(ctx, s.Options.Key(key)).Result()
	if err != nil {
		return false, mapError(err, key)
	}
	return n > 0, nil
}

// Delete implements store.KeyStore interface.
func (s *Store) Delete(ctx context.Context, key string) error {
	logger.Debug3f("DEL %s", key)
	return mapError(s.client.Del(ctx, s.Options.Key(key)).Err(), key)
}

// Find implements store.KeyStore interface. The keys are scanned incrementally.
func (s *Store) Find(ctx context.Context, options ...store.FindOption) ([]string, error) {
	pattern := store.NewFindPattern(options...)
	stored := &store.FindPattern{Prefix: s.Options.Prefix + pattern.Prefix, Suffix: pattern.Suffix + s.Options.Suffix}
	match := stored.Glob()
	logger.Debug3f("SCAN MATCH %s", match)

	seen := map[string]struct{}{}
	keys := []string{}
	var cursor uint64
	for {
		page, next, err := s.client.Scan(ctx, cursor, match, scanCount).Result()
		if err != nil {
			return nil, mapError(err, match)
		}
		for _, k := range page {
			if _, ok := seen[k]; ok || !stored.Match(k) {
				continue
			}
			seen[k] = struct{}{}
			key := s.Options.Unkey(k)
			if pattern.Filter != nil && !pattern.Filter(key) {
				continue
			}
			keys = append(keys, key)
		}
		if next == 0 {
			break
		}
		cursor = next
	}
	return pattern.Apply(keys), nil
}

// HGet implements store.HashStore interface.
func (s *Store) HGet(ctx context.Context, key, field string) (string, bool, error) {
	logger.Debug3f("HGET %s %s", key, field)
	return stringResult(s.client.HGet(ctx, s.Options.Key(key), field), key)
}

// HSet implements store.HashStore interface.
func (s *Store) HSet(ctx context.Context, key, field, value string) error {
	logger.Debug3f("HSET %s %s", key, field)
	return s.write(ctx, key, func(c redis.Cmdable, stored string) error {
		return c.HSet(ctx, stored, field, value).Err()
	})
}

// LIndex implements store.ListStore interface.
func (s *Store) LIndex(ctx context.Context, key string, index int64) (string, bool, error) {
	logger.Debug3f("LINDEX %s %d", key, index)
	return stringResult(s.client.LIndex(ctx, s.Options.Key(key), index), key)
}

// LSet implements store.ListStore interface.
func (s *Store) LSet(ctx context.Context, key string, index int64, value string) error {
	logger.Debug3f("LSET %s %d", key, index)
	return mapError(s.client.LSet(ctx, s.Options.Key(key), index, value).Err(), key)
}

// LLen implements store.ListStore interface.
func (s *Store) LLen(ctx context.Context, key string) (int64, error) {
	logger.Debug3f("LLEN %s", key)
	n, err := s.client.LLen(ctx, s.Options.Key(key)).Result()
	return n, mapError(err, key)
}

// LRange implements store.ListStore interface.
func (s *Store) LRange(ctx context.Context, key string, start, stop int64) ([]string, error) {
	logger.Debug3f("LRANGE %s %d %d", key, start, stop)
	items, err := s.client.LRange(ctx, s.Options.Key(key), start, stop).Result()
	if err != nil {
		return nil, mapError(err, key)
	}
	if items == nil {
		items = []string{}
	}
	return items, nil
}

// LPush implements store.ListStore interface.
func (s *Store) LPush(ctx context.Context, key string, values ...string) error {
	if len(values) == 0 {
		return nil
	}
	logger.Debug3f("LPUSH %s (%d)", key, len(values))
	return s.write(ctx, key, func(c redis.Cmdable, stored string) error {
		return c.LPush(ctx, stored, toInterfaces(values)...).Err()
	})
}

// RPush implements store.ListStore interface.
func (s *Store) RPush(ctx context.Context, key string, values ...string) error {
	if len(values) == 0 {
		return nil
	}
	logger.Debug3f("RPUSH %s (%d)", key, len(values))
	return s.write(ctx, key, func(c redis.Cmdable, stored string) error {
		return c.RPush(ctx, stored, toInterfaces(values)...).Err()
	})
}

// LPop implements store.ListStore interface.
func (s *Store) LPop(ctx context.Context, key string) (string, bool, error) {
	logger.Debug3f("LPOP %s", key)
	return stringResult(s.client.LPop(ctx, s.Options.Key(key)), key)
}

// RPop implements store.ListStore interface.
func (s *Store) RPop(ctx context.Context, key string) (string, bool, error) {
	logger.Debug3f("RPOP %s", key)
	return stringResult(s.client.RPop(ctx, s.Options.Key(key)), key)
}

// LRem implements store.ListStore interface.
func (s *Store) LRem(ctx context.Context, key string, count int64, value string) (int64, error) {
	logger.Debug3f("LREM %s %d", key, count)
	n, err := s.client.LRem(ctx, s.Options.Key(key), count, value).Result()
	return n, mapError(err, key)
}

// write runs the write command 'fn' on the stored 'key'. With the default expiration set, the command
// and the PEXPIRE of the key are sent in a single MULTI/EXEC pipeline.
func (s *Store) write(ctx context.Context, key string, fn func(c redis.Cmdable, stored string) error) error {
	stored := s.Options.Key(key)
	if s.Options.DefaultExpiration <= 0 {
		return mapError(fn(s.client, stored), key)
	}
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		if err := fn(pipe, stored); err != nil {
			return err
		}
		return pipe.PExpire(ctx, stored, s.Options.DefaultExpiration).Err()
	})
	return mapError(err, key)
}

func stringResult(cmd *redis.StringCmd, key string) (string, bool, error) {
	value, err := cmd.Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, mapError(err, key)
	}
	return value, true, nil
}

func toInterfaces(values []string) []interface{} {
	result := make([]interface{}, len(values))
	for i, v := range values {
		result[i] = v
	}
	return result
}
