package pydis

import (
	"github.com/krysopath/pydis/codec"
	"github.com/krysopath/pydis/errors"
	"github.com/krysopath/pydis/store"
)

// IDField is the reserved name of the identity field.
const IDField = "id"

// FieldDef is the record schema field definition.
type FieldDef struct {
	name  string
	field codec.Field
	child *childDef
}

type childDef struct {
	tag         string
	newSequence func(parent Identity, s store.Store) interface{}
}

// Field defines the record field 'name' of the 'field' type.
func Field(name string, field codec.Field) FieldDef {
	return FieldDef{name: name, field: field}
}

// Child defines the record field 'name' that gives access to the child sequence of
// 'itemType' items stored under the parent identity and 'tag'. Empty 'tag' defaults to the 'name'.
func Child[T any](name, tag string, itemType codec.Type[T]) FieldDef {
	if tag == "" {
		tag = name
	}
	return FieldDef{
		name:  name,
		field: itemType,
		child: &childDef{
			tag: tag,
			newSequence: func(parent Identity, s store.Store) interface{} {
				return newSequence(parent.Child(tag), s, itemType)
			},
		},
	}
}

// Name gets the field name.
func (f FieldDef) Name() string {
	return f.name
}

// Kind gets the field kind tag.
func (f FieldDef) Kind() codec.Kind {
	if f.child != nil {
		return codec.KindChild
	}
	return f.field.Kind()
}

// Type gets the field type. For the child fields it is the type of the sequence items.
func (f FieldDef) Type() codec.Field {
	return f.field
}

// Tag gets the child sequence tag. Empty for the non child fields.
func (f FieldDef) Tag() string {
	if f.child == nil {
		return ""
	}
	return f.child.tag
}

// Schema is the ordered, fixed set of the record fields.
type Schema struct {
	kind   string
	fields []FieldDef
	index  map[string]int
}

// NewSchema creates new schema for the records of given 'kind'.
func NewSchema(kind string, fields ...FieldDef) (*Schema, error) {
	s := &Schema{kind: kind, index: make(map[string]int, len(fields))}
	for _, f := range fields {
		switch {
		case f.name == "":
			return nil, errors.Wrapf(ErrSchema, "empty field name in schema: '%s'", kind)
		case f.name == IDField:
			return nil, errors.Wrapf(ErrSchema, "reserved field name: '%s' in schema: '%s'", IDField, kind)
		case f.field == nil:
			return nil, errors.Wrapf(ErrSchema, "no type for the field: '%s' in schema: '%s'", f.name, kind)
		}
		if _, ok := s.index[f.name]; ok {
			return nil, errors.Wrapf(ErrSchema, "duplicated field: '%s' in schema: '%s'", f.name, kind)
		}
		s.index[f.name] = len(s.fields)
		s.fields = append(s.fields, f)
	}
	return s, nil
}

// MustSchema creates new schema and panics on error.
func MustSchema(kind string, fields ...FieldDef) *Schema {
	s, err := NewSchema(kind, fields...)
	if err != nil {
		panic(err)
	}
	return s
}

// Kind gets the default kind of the schema records.
func (s *Schema) Kind() string {
	return s.kind
}

// Fields gets the field definitions in their declaration order.
func (s *Schema) Fields() []FieldDef {
	return append([]FieldDef(nil), s.fields...)
}

// Names gets the field names in their declaration order.
func (s *Schema) Names() []string {
	names := make([]string, len(s.fields))
	for i, f := range s.fields {
		names[i] = f.name
	}
	return names
}

// Lookup gets the field definition by its 'name'.
func (s *Schema) Lookup(name string) (FieldDef, bool) {
	i, ok := s.index[name]
	if !ok {
		return FieldDef{}, false
	}
	return s.fields[i], true
}
