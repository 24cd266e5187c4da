package namer

import (
	"reflect"
	"strings"

	"github.com/iancoleman/strcase"
	"github.com/jinzhu/inflection"

	"github.com/krysopath/pydis/errors"
)

// ErrNamingConvention is an error related with the naming convention.
var ErrNamingConvention = errors.New("naming convention")

// Namer is the function that change the name with some prepared formatting.
type Namer func(string) string

// NamingConvention is the object kinds naming convention.
type NamingConvention int

const (
	// TypeName is the naming convention that keeps the raw type name, i.e.: SampleHolder.
	TypeName NamingConvention = iota
	// SnakeCase is the naming convention where all words are in lower case letters separated by the '_' character.
	// i.e.: sample_holder
	SnakeCase
	// CamelCase is the naming convention where words are not separated by any character or space and each word starts
	// with a capital letter.
	// i.e.: SampleHolder
	CamelCase
	// LowerCamelCase is the naming convention where words are not separated by any character and all but first words
	// starts with a capital letter.
	// i.e.: sampleHolder
	LowerCamelCase
	// KebabCase is the naming convention where all words are in lower case letters separated by the '-' character.
	// i.e.: sample-holder
	KebabCase
)

// Parse parses the naming convention by its name.
func (n *NamingConvention) Parse(name string) error {
	switch strings.ToLower(name) {
	case "type", "":
		*n = TypeName
	case "snake":
		*n = SnakeCase
	case "lower_camel":
		*n = LowerCamelCase
	case "camel":
		*n = CamelCase
	case "kebab":
		*n = KebabCase
	default:
		return errors.Wrapf(ErrNamingConvention, "unknown naming convention name: %s", name)
	}
	return nil
}

// Namer gets the Namer function for given naming convention.
func (n NamingConvention) Namer() Namer {
	switch n {
	case SnakeCase:
		return NamingSnake
	case CamelCase:
		return NamingCamel
	case LowerCamelCase:
		return NamingLowerCamel
	case KebabCase:
		return NamingKebab
	default:
		return func(raw string) string { return raw }
	}
}

func (n NamingConvention) String() string {
	switch n {
	case TypeName:
		return "type"
	case SnakeCase:
		return "snake"
	case CamelCase:
		return "camel"
	case LowerCamelCase:
		return "lower_camel"
	case KebabCase:
		return "kebab"
	}
	return "unknown"
}

// NamingSnake is a Namer function that converts the 'raw' into the 'snake_case_model'.
func NamingSnake(raw string) string {
	return strcase.ToSnake(raw)
}

// NamingKebab is a Namer function that converts the 'raw' into the 'kebab-case-model'.
func NamingKebab(raw string) string {
	return strcase.ToKebab(raw)
}

// NamingCamel is a Namer function that converts the 'raw' into the 'CamelCaseModel'.
func NamingCamel(raw string) string {
	return strcase.ToCamel(raw)
}

// NamingLowerCamel is a Namer function that converts the 'raw' into the 'camelCaseModel'.
func NamingLowerCamel(raw string) string {
	return strcase.ToLowerCamel(raw)
}

// KindOf derives the object kind from the type name of 'v'. Pointers are dereferenced.
// If 'plural' is true the type name is pluralized before the naming convention is applied.
func KindOf(v interface{}, convention NamingConvention, plural bool) string {
	t := reflect.TypeOf(v)
	for t != nil && t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t == nil {
		return ""
	}
	return FormatKind(t.Name(), convention, plural)
}

// FormatKind formats the kind 'name' with the naming 'convention'. If 'plural' is true the name
// is pluralized first.
func FormatKind(name string, convention NamingConvention, plural bool) string {
	if plural {
		name = inflection.Plural(name)
	}
	return convention.Namer()(name)
}
