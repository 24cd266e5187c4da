package store

import (
	"time"
)

// Options are the initialization options for the store.
type Options struct {
	// DefaultExpiration is the expiration time of the keys, refreshed by each hash or list push write.
	// Zero or negative value means no expiration.
	DefaultExpiration time.Duration
	// CleanupInterval sets the interval of deleting the expired keys by the stores that doesn't expire
	// them on their own.
	CleanupInterval time.Duration
	// Prefix, Suffix are the default prefix, suffix for the keys.
	Prefix, Suffix string
}

// DefaultOptions creates the default store options.
func DefaultOptions() *Options {
	return &Options{
		DefaultExpiration: -1,
		CleanupInterval:   -1,
	}
}

// Key gets the store key for provided object 'key'.
func (o *Options) Key(key string) string {
	return o.Prefix + key + o.Suffix
}

// Unkey strips the prefix and the suffix from the stored 'key'.
func (o *Options) Unkey(key string) string {
	return key[len(o.Prefix) : len(key)-len(o.Suffix)]
}

// Option is an option function that changes Options.
type Option func(o *Options)

// WithDefaultExpiration sets the default expiration option.
func WithDefaultExpiration(expiration time.Duration) Option {
	return func(o *Options) {
		o.DefaultExpiration = expiration
	}
}

// WithCleanupInterval sets the interval of deleting the expired keys.
func WithCleanupInterval(interval time.Duration) Option {
	return func(o *Options) {
		o.CleanupInterval = interval
	}
}

// WithPrefix sets the default prefix for the keys using this store.
func WithPrefix(prefix string) Option {
	return func(o *Options) {
		o.Prefix = prefix
	}
}

// WithSuffix sets the default suffix for the keys using this store.
func WithSuffix(suffix string) Option {
	return func(o *Options) {
		o.Suffix = suffix
	}
}
