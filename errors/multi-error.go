package errors

import (
	"strings"
)

// MultiError is the slice of errors parsable into a single error.
type MultiError []error

// Error implements error interface.
func (m MultiError) Error() string {
	sb := &strings.Builder{}

	for i, e := range m {
		sb.WriteString(e.Error())
		if i != len(m)-1 {
			sb.WriteString(", ")
		}
	}
	return sb.String()
}

// Is checks if any of the errors matches 'target'.
func (m MultiError) Is(target error) bool {
	for _, e := range m {
		if Is(e, target) {
			return true
		}
	}
	return false
}

// ErrorOrNil returns nil if there is no error in the slice, a single error if there is only one,
// or the MultiError itself otherwise.
func (m MultiError) ErrorOrNil() error {
	switch len(m) {
	case 0:
		return nil
	case 1:
		return m[0]
	default:
		return m
	}
}
