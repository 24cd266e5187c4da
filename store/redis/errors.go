package redis

import (
	"context"
	"io"
	"net"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/krysopath/pydis/errors"
	"github.com/krysopath/pydis/store"
)

// mapError maps the redis client error into the store error classes.
func mapError(err error, key string) error {
	if err == nil {
		return nil
	}
	var redisErr redis.Error
	if errors.As(err, &redisErr) {
		msg := redisErr.Error()
		switch {
		case strings.HasPrefix(msg, "ERR index out of range"):
			return errors.Wrapf(store.ErrOutOfRange, "key: '%s'", key)
		case strings.HasPrefix(msg, "ERR no such key"):
			return errors.Wrapf(store.ErrNoSuchKey, "key: '%s'", key)
		case strings.HasPrefix(msg, "WRONGTYPE"):
			return errors.Wrapf(store.ErrWrongType, "key: '%s'", key)
		}
		return errors.Wrapf(store.ErrStore, "key: '%s': %s", key, msg)
	}

	switch {
	case errors.Is(err, redis.ErrClosed):
		return errors.Wrap(store.ErrClosed, err.Error())
	case errors.Is(err, io.EOF), errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return errors.Wrap(store.ErrConnection, err.Error())
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return errors.Wrap(store.ErrConnection, err.Error())
	}
	return errors.Wrapf(store.ErrInternal, "key: '%s': %v", key, err)
}
