package store

import (
	"context"
)

// Store is an interface for the key-value stores that keeps hash and list structures under their keys.
// Each method is a single blocking round-trip to the store. The values that are not found are reported
// with the 'found' flag and are never treated as an error.
type Store interface {
	KeyStore
	HashStore
	ListStore
	// Close closes the store connection.
	Close(ctx context.Context) error
}

// KeyStore is the interface for the operations on the whole keys.
type KeyStore interface {
	// Exists checks if the store holds any value under 'key'.
	Exists(ctx context.Context, key string) (bool, error)
	// Delete deletes the 'key' with all its sub structure. Deleting not existing key is not an error.
	Delete(ctx context.Context, key string) error
	// Find finds the keys matching given find options. The keys are returned in lexicographical order.
	Find(ctx context.Context, options ...FindOption) ([]string, error)
}

// HashStore is the interface for the hash structures.
type HashStore interface {
	// HGet gets the 'field' value of the hash stored under 'key'.
	HGet(ctx context.Context, key, field string) (value string, found bool, err error)
	// HSet sets the 'field' value of the hash stored under 'key'.
	HSet(ctx context.Context, key, field, value string) error
}

// ListStore is the interface for the list structures. The indexes might be negative
// in which case they are counted from the end of the list.
type ListStore interface {
	// LIndex gets the element at 'index'.
	LIndex(ctx context.Context, key string, index int64) (value string, found bool, err error)
	// LSet sets the element at 'index'. If the index is out of range the ErrOutOfRange is returned,
	// and if the list doesn't exists - the ErrNoSuchKey.
	LSet(ctx context.Context, key string, index int64, value string) error
	// LLen gets the length of the list.
	LLen(ctx context.Context, key string) (int64, error)
	// LRange gets the elements between 'start' and 'stop' - both inclusive.
	LRange(ctx context.Context, key string, start, stop int64) ([]string, error)
	// LPush inserts 'values' at the head of the list, one after another.
	LPush(ctx context.Context, key string, values ...string) error
	// RPush inserts 'values' at the tail of the list.
	RPush(ctx context.Context, key string, values ...string) error
	// LPop removes and gets the first element of the list.
	LPop(ctx context.Context, key string) (value string, found bool, err error)
	// RPop removes and gets the last element of the list.
	RPop(ctx context.Context, key string) (value string, found bool, err error)
	// LRem removes 'count' occurrences of 'value'. Positive 'count' removes from head to tail,
	// negative from tail to head and zero removes all occurrences. Returns the number of removed elements.
	LRem(ctx context.Context, key string, count int64, value string) (int64, error)
}

// Dialer is an interface that starts the connection for the store.
type Dialer interface {
	Dial(ctx context.Context) error
}

// Factory is the interface that creates new, configured store connections on demand.
type Factory interface {
	Connect(ctx context.Context) (Store, error)
}
