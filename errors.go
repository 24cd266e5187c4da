package pydis

import (
	"github.com/krysopath/pydis/errors"
)

var (
	// ErrObject is the major object mapping error.
	ErrObject = errors.New("object")
	// ErrUndeclaredField is the error when the field is not declared in the record schema.
	ErrUndeclaredField = errors.Wrap(ErrObject, "undeclared field")
	// ErrChildField is the error when the value is written into the child sequence field.
	ErrChildField = errors.Wrap(ErrObject, "child field")
	// ErrFieldType is the error when the read value is not of the requested type.
	ErrFieldType = errors.Wrap(ErrObject, "field type")
	// ErrUnsupportedSliceStep is the error when the sequence slice has a step other than one.
	// It is classified as errors.ErrNotImplemented.
	ErrUnsupportedSliceStep = errors.Wrap(errors.ErrNotImplemented, "unsupported slice step")
	// ErrIdentity is the error for malformed identities.
	ErrIdentity = errors.Wrap(ErrObject, "identity")
	// ErrSchema is the error for invalid schema definitions.
	ErrSchema = errors.Wrap(ErrObject, "schema")
)
