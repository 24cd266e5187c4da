// Package errors provides lightweight error handling and classification primitives.
//
// Each package defines its classes as sentinel errors wrapped over a major
// error of that package, i.e.:
//
//	ErrStore = errors.New("store")
//	ErrConnection = errors.Wrap(ErrStore, "connection")
//
// Errors returned at runtime wrap these classes with the operation details,
// so that the callers could check the class with the Is function.
package errors
