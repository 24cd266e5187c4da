package store

import (
	"github.com/krysopath/pydis/errors"
)

var (
	// ErrStore is the major store error.
	ErrStore = errors.New("store")
	// ErrConnection is the error when the store could not be reached.
	ErrConnection = errors.Wrap(ErrStore, "connection")
	// ErrOutOfRange is the error when the list index is out of range.
	ErrOutOfRange = errors.Wrap(ErrStore, "index out of range")
	// ErrNoSuchKey is the error when the operation requires existing key.
	ErrNoSuchKey = errors.Wrap(ErrStore, "no such key")
	// ErrWrongType is the error when the operation is done on the key holding other structure.
	ErrWrongType = errors.Wrap(ErrStore, "wrong type")
	// ErrClosed is the error when the store was already closed.
	ErrClosed = errors.Wrap(ErrConnection, "closed")
	// ErrInternal is the internal store error.
	ErrInternal = errors.Wrap(errors.ErrInternal, "store")
)
