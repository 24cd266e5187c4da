package pydis

import (
	"context"

	"github.com/krysopath/pydis/log"
	"github.com/krysopath/pydis/store"
)

var logger = log.NewModuleLogger("pydis")

// Object is the stored object bound to its identity and the store.
type Object interface {
	Identity() Identity
	Store() store.Store
	Exists(ctx context.Context) (bool, error)
	Delete(ctx context.Context) error
}

type object struct {
	id    Identity
	store store.Store
}

// Identity gets the object identity.
func (o *object) Identity() Identity {
	return o.id
}

// Store gets the store the object is bound to.
func (o *object) Store() store.Store {
	return o.store
}

// Exists checks if the store holds any value for the object.
func (o *object) Exists(ctx context.Context) (bool, error) {
	return o.store.Exists(ctx, o.id.Key())
}

// Delete removes the object from the store. Deleting an object that doesn't exist is not an error.
// The child sequences of the object are not deleted.
func (o *object) Delete(ctx context.Context) error {
	logger.Debug3f("deleting: %s", o.id)
	return o.store.Delete(ctx, o.id.Key())
}

// Equal checks if the 'other' object has the same identity.
func (o *object) Equal(other Object) bool {
	return other != nil && o.id.Equal(other.Identity())
}

// String implements fmt.Stringer interface.
func (o *object) String() string {
	return o.id.String()
}
