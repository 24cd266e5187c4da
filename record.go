package pydis

import (
	"context"

	"github.com/krysopath/pydis/errors"
	"github.com/krysopath/pydis/store"
)

// BeforeWriter is the hook that transforms the record 'value' of the field 'key' before it is stored.
type BeforeWriter interface {
	BeforeWrite(ctx context.Context, key string, value interface{}) (interface{}, error)
}

// BeforeWriteFunc is the function that implements BeforeWriter interface.
type BeforeWriteFunc func(ctx context.Context, key string, value interface{}) (interface{}, error)

// BeforeWrite implements BeforeWriter interface.
func (f BeforeWriteFunc) BeforeWrite(ctx context.Context, key string, value interface{}) (interface{}, error) {
	return f(ctx, key, value)
}

var _ Object = &Record{}

// Record is the object stored as a hash with a fixed schema. Each field is stored
// as a separate hash entry.
type Record struct {
	object
	schema      *Schema
	beforeWrite BeforeWriter
}

// NewRecord creates new record of the 'schema' bound to the store 's'. The default values
// provided in the options are written immediately in the schema order, one field at a time.
func NewRecord(ctx context.Context, s store.Store, schema *Schema, options ...Option) (*Record, error) {
	o := newOptions(options)
	for name := range o.Defaults {
		f, ok := schema.Lookup(name)
		if !ok {
			return nil, errors.Wrapf(ErrUndeclaredField, "default field: '%s' is not declared for: '%s'", name, schema.kind)
		}
		if f.child != nil {
			return nil, errors.Wrapf(ErrChildField, "default value for child field: '%s' of: '%s'", name, schema.kind)
		}
	}

	kind := o.Kind
	if kind == "" {
		kind = schema.kind
	}
	id, err := NewIdentity(kind, o.ID, o.TokenGenerator)
	if err != nil {
		return nil, err
	}
	r := &Record{
		object:      object{id: id, store: s},
		schema:      schema,
		beforeWrite: o.BeforeWrite,
	}
	logger.Debug3f("new record: %s", id)

	for _, f := range schema.fields {
		value, ok := o.Defaults[f.name]
		if !ok {
			continue
		}
		if err = r.Write(ctx, f.name, value); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Schema gets the record schema.
func (r *Record) Schema() *Schema {
	return r.schema
}

// Read reads the value of the field 'key'. The 'id' key returns the identity token
// and the child fields returns their child *Sequence. Absent values are returned as
// the zero value of the field type.
func (r *Record) Read(ctx context.Context, key string) (interface{}, error) {
	if key == IDField {
		return r.id.Token(), nil
	}
	f, err := r.field(key)
	if err != nil {
		return nil, err
	}
	if f.child != nil {
		return f.child.newSequence(r.id, r.store), nil
	}
	raw, found, err := r.store.HGet(ctx, r.id.Key(), key)
	if err != nil {
		return nil, err
	}
	value, err := f.field.DecodeValue(raw, found)
	if err != nil {
		return nil, errors.Wrapf(err, "field: '%s' of: '%s'", key, r.id)
	}
	return value, nil
}

// Write stores the 'value' of the field 'key'. The value is passed through the before write hook
// if the record has any.
func (r *Record) Write(ctx context.Context, key string, value interface{}) error {
	f, err := r.field(key)
	if err != nil {
		return err
	}
	if f.child != nil {
		return errors.Wrapf(ErrChildField, "field: '%s' of: '%s' is a child sequence", key, r.id)
	}
	if r.beforeWrite != nil {
		if value, err = r.beforeWrite.BeforeWrite(ctx, key, value); err != nil {
			return err
		}
	}
	raw, err := f.field.EncodeValue(value)
	if err != nil {
		return errors.Wrapf(err, "field: '%s' of: '%s'", key, r.id)
	}
	return r.store.HSet(ctx, r.id.Key(), key, raw)
}

// Fields creates the iterator over the record fields. The first field is always the 'id'
// followed by the schema fields in their declaration order. Each value is read when the
// iterator advances.
func (r *Record) Fields(ctx context.Context) *FieldIterator {
	return &FieldIterator{ctx: ctx, record: r}
}

// All reads all the record fields in the Fields order.
func (r *Record) All(ctx context.Context) ([]FieldValue, error) {
	values := make([]FieldValue, 0, len(r.schema.fields)+1)
	it := r.Fields(ctx)
	for it.Next() {
		values = append(values, FieldValue{Name: it.Name(), Value: it.Value()})
	}
	return values, it.Err()
}

func (r *Record) field(key string) (FieldDef, error) {
	f, ok := r.schema.Lookup(key)
	if !ok {
		return FieldDef{}, errors.Wrapf(ErrUndeclaredField, "field: '%s' is not declared for: '%s'", key, r.id)
	}
	return f, nil
}

// FieldValue is the record field name and its value.
type FieldValue struct {
	Name  string
	Value interface{}
}

// FieldIterator iterates over the record fields.
type FieldIterator struct {
	ctx    context.Context
	record *Record
	pos    int
	name   string
	value  interface{}
	err    error
}

// Next reads the next field. It returns false when there are no more fields or an error occurred.
func (it *FieldIterator) Next() bool {
	if it.err != nil || it.pos > len(it.record.schema.fields) {
		return false
	}
	if it.pos == 0 {
		it.name = IDField
	} else {
		it.name = it.record.schema.fields[it.pos-1].name
	}
	it.pos++
	it.value, it.err = it.record.Read(it.ctx, it.name)
	return it.err == nil
}

// Name gets the current field name.
func (it *FieldIterator) Name() string {
	return it.name
}

// Value gets the current field value.
func (it *FieldIterator) Value() interface{} {
	return it.value
}

// Err gets the error that stopped the iteration.
func (it *FieldIterator) Err() error {
	return it.err
}

// Get reads the record field 'key' as a value of type T.
func Get[T any](ctx context.Context, r *Record, key string) (T, error) {
	var zero T
	value, err := r.Read(ctx, key)
	if err != nil {
		return zero, err
	}
	v, ok := value.(T)
	if !ok {
		return zero, errors.Wrapf(ErrFieldType, "field: '%s' of: '%s' is of type: '%T'", key, r.id, value)
	}
	return v, nil
}

// ChildSequence gets the child sequence of the record field 'name'.
func ChildSequence[T any](r *Record, name string) (*Sequence[T], error) {
	f, err := r.field(name)
	if err != nil {
		return nil, err
	}
	if f.child == nil {
		return nil, errors.Wrapf(ErrFieldType, "field: '%s' of: '%s' is not a child sequence", name, r.id)
	}
	seq, ok := f.child.newSequence(r.id, r.store).(*Sequence[T])
	if !ok {
		return nil, errors.Wrapf(ErrFieldType, "child field: '%s' of: '%s' holds items of type: '%s'", name, r.id, f.field.Name())
	}
	return seq, nil
}
