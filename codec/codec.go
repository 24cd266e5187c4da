package codec

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/krysopath/pydis/errors"
)

var (
	// ErrCodec is the major codec error.
	ErrCodec = errors.New("codec")
	// ErrDecode is the error when the stored value could not be parsed by the field type.
	ErrDecode = errors.Wrap(ErrCodec, "decode")
	// ErrFieldValue is the error when the value written doesn't match the field type.
	ErrFieldValue = errors.Wrap(ErrCodec, "field value")
)

// Kind is the field kind tag.
type Kind int

// Enumerated field kinds.
const (
	KindText Kind = iota
	KindInteger
	KindFloat
	KindBoolean
	KindCustom
	KindChild
)

func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindInteger:
		return "integer"
	case KindFloat:
		return "float"
	case KindBoolean:
		return "boolean"
	case KindCustom:
		return "custom"
	case KindChild:
		return "child"
	}
	return "unknown"
}

// Field is the type erased field descriptor used by the record schemas.
type Field interface {
	// Kind gets the field kind tag.
	Kind() Kind
	// Name gets the name of the field type.
	Name() string
	// ZeroValue gets the zero value of the field type.
	ZeroValue() interface{}
	// DecodeValue decodes the 'raw' value. If the value is not 'present' the zero value is returned.
	DecodeValue(raw string, present bool) (interface{}, error)
	// EncodeValue encodes provided 'value' into its string form.
	EncodeValue(value interface{}) (string, error)
}

// Encode returns the canonical string form of the 'value'.
func Encode(value interface{}) string {
	switch v := value.(type) {
	case string:
		return v
	case []byte:
		return string(v)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case int32:
		return strconv.FormatInt(int64(v), 10)
	case uint:
		return strconv.FormatUint(uint64(v), 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	case float64:
		return formatFloat(v, 64)
	case float32:
		return formatFloat(float64(v), 32)
	case bool:
		return strconv.FormatBool(v)
	case time.Time:
		return v.Format(time.RFC3339Nano)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

// formatFloat formats the float in the decimal notation, and in the exponent notation
// only if the value is very small or very large.
func formatFloat(v float64, bitSize int) string {
	if abs := math.Abs(v); abs != 0 && (abs < 1e-4 || abs >= 1e16) {
		return strconv.FormatFloat(v, 'g', -1, bitSize)
	}
	return strconv.FormatFloat(v, 'f', -1, bitSize)
}

var _ Field = Type[string]{}

// Type is the field descriptor for the values of type T.
type Type[T any] struct {
	kind   Kind
	name   string
	parse  func(string) (T, error)
	format func(T) (string, error)
}

// Custom creates new custom field type with provided 'parse' and 'format' functions.
// The 'format' function must return the string that 'parse' could read back.
func Custom[T any](name string, parse func(string) (T, error), format func(T) (string, error)) Type[T] {
	return Type[T]{kind: KindCustom, name: name, parse: parse, format: format}
}

// Stringer creates new custom field type for the values that implements fmt.Stringer.
func Stringer[T fmt.Stringer](name string, parse func(string) (T, error)) Type[T] {
	return Type[T]{kind: KindCustom, name: name, parse: parse, format: func(v T) (string, error) { return v.String(), nil }}
}

// Kind implements Field interface.
func (t Type[T]) Kind() Kind {
	return t.kind
}

// Name implements Field interface.
func (t Type[T]) Name() string {
	return t.name
}

// Zero gets the zero value of the type.
func (t Type[T]) Zero() T {
	var zero T
	return zero
}

// Decode parses the 'raw' value. If the value is not 'present' the zero value is returned.
func (t Type[T]) Decode(raw string, present bool) (T, error) {
	if !present {
		return t.Zero(), nil
	}
	v, err := t.parse(raw)
	if err != nil {
		return t.Zero(), errors.Wrapf(ErrDecode, "value: '%s' is not a valid %s", raw, t.name)
	}
	return v, nil
}

// Encode formats the value into its string form.
func (t Type[T]) Encode(v T) (string, error) {
	if t.format == nil {
		return Encode(v), nil
	}
	raw, err := t.format(v)
	if err != nil {
		return "", errors.Wrapf(ErrFieldValue, "formatting %s value failed: %v", t.name, err)
	}
	return raw, nil
}

// ZeroValue implements Field interface.
func (t Type[T]) ZeroValue() interface{} {
	return t.Zero()
}

// DecodeValue implements Field interface.
func (t Type[T]) DecodeValue(raw string, present bool) (interface{}, error) {
	return t.Decode(raw, present)
}

// EncodeValue implements Field interface. The value must be of type T, or a string that
// could be parsed by the type.
func (t Type[T]) EncodeValue(value interface{}) (string, error) {
	switch v := value.(type) {
	case T:
		return t.Encode(v)
	case string:
		if _, err := t.parse(v); err != nil {
			return "", errors.Wrapf(ErrFieldValue, "value: '%s' is not a valid %s", v, t.name)
		}
		return v, nil
	default:
		return "", errors.Wrapf(ErrFieldValue, "value of type: '%T' is not a valid %s", value, t.name)
	}
}
