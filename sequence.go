package pydis

import (
	"context"

	"github.com/krysopath/pydis/codec"
	"github.com/krysopath/pydis/errors"
	"github.com/krysopath/pydis/store"
)

// DefaultSequenceKind is the kind of the sequences created without one.
const DefaultSequenceKind = "Sequence"

// deletedSentinel marks the element removed by the DeleteAt method.
const deletedSentinel = "__DELETED__"

// Sequence is the object stored as a list of the items of type T. The duplicates are allowed.
type Sequence[T any] struct {
	object
	itemType codec.Type[T]
}

// NewSequence creates new sequence bound to the store 's' with the items of 'itemType'.
// Provided 'items' are appended to the stored list in their order.
func NewSequence[T any](ctx context.Context, s store.Store, itemType codec.Type[T], items []T, options ...Option) (*Sequence[T], error) {
	o := newOptions(options)
	kind := o.Kind
	if kind == "" {
		kind = DefaultSequenceKind
	}
	id, err := NewIdentity(kind, o.ID, o.TokenGenerator)
	if err != nil {
		return nil, err
	}
	seq := newSequence(id, s, itemType)
	logger.Debug3f("new sequence: %s", id)
	if err = seq.Extend(ctx, items...); err != nil {
		return nil, err
	}
	return seq, nil
}

// AsChild creates the constructor of the 'parent' child sequence tagged with 'tag'.
// The sequence created twice for the same parent and tag refers to the same stored list.
func AsChild[T any](parent Object, tag string, itemType codec.Type[T]) func() *Sequence[T] {
	return func() *Sequence[T] {
		return newSequence(parent.Identity().Child(tag), parent.Store(), itemType)
	}
}

func newSequence[T any](id Identity, s store.Store, itemType codec.Type[T]) *Sequence[T] {
	return &Sequence[T]{object: object{id: id, store: s}, itemType: itemType}
}

// ItemType gets the type of the sequence items.
func (s *Sequence[T]) ItemType() codec.Type[T] {
	return s.itemType
}

// Get gets the item at 'index'. Negative index counts from the end. The index out of range
// returns the zero value of the item type.
func (s *Sequence[T]) Get(ctx context.Context, index int64) (T, error) {
	raw, found, err := s.store.LIndex(ctx, s.id.Key(), index)
	if err != nil {
		return s.itemType.Zero(), err
	}
	return s.decode(raw, found)
}

// Slice defines the range of the sequence items. Both Start and End are inclusive.
type Slice struct {
	Start, End int64
	// Step must be either zero or one.
	Step int64
}

// ReadSlice reads the items within the 'slice' range.
func (s *Sequence[T]) ReadSlice(ctx context.Context, slice Slice) ([]T, error) {
	if slice.Step != 0 && slice.Step != 1 {
		return nil, errors.Wrapf(ErrUnsupportedSliceStep, "step: %d for: '%s'", slice.Step, s.id)
	}
	raws, err := s.store.LRange(ctx, s.id.Key(), slice.Start, slice.End)
	if err != nil {
		return nil, err
	}
	items := make([]T, len(raws))
	for i, raw := range raws {
		if items[i], err = s.decode(raw, true); err != nil {
			return nil, err
		}
	}
	return items, nil
}

// Range reads the items between 'start' and 'end', both inclusive.
func (s *Sequence[T]) Range(ctx context.Context, start, end int64) ([]T, error) {
	return s.ReadSlice(ctx, Slice{Start: start, End: end})
}

// Set replaces the item at 'index'. If the index is out of range store.ErrOutOfRange is returned,
// and if the sequence is not stored - store.ErrNoSuchKey.
func (s *Sequence[T]) Set(ctx context.Context, index int64, value T) error {
	raw, err := s.encode(value)
	if err != nil {
		return err
	}
	return s.store.LSet(ctx, s.id.Key(), index, raw)
}

// Len gets the number of the sequence items.
func (s *Sequence[T]) Len(ctx context.Context) (int64, error) {
	return s.store.LLen(ctx, s.id.Key())
}

// DeleteAt removes the item at 'index'. The item is first replaced with a marker value, and then
// the first marker in the list is removed. Both steps are separate store commands.
func (s *Sequence[T]) DeleteAt(ctx context.Context, index int64) error {
	if err := s.store.LSet(ctx, s.id.Key(), index, deletedSentinel); err != nil {
		return err
	}
	_, err := s.store.LRem(ctx, s.id.Key(), 1, deletedSentinel)
	return err
}

// Iterate creates the iterator over all the sequence items from left to right.
// The items are fetched on the first Next call.
func (s *Sequence[T]) Iterate(ctx context.Context) *Iterator[T] {
	return &Iterator[T]{ctx: ctx, seq: s}
}

// All reads all the sequence items.
func (s *Sequence[T]) All(ctx context.Context) ([]T, error) {
	return s.Range(ctx, 0, -1)
}

// PopLeft removes and gets the first item. Empty sequence returns the zero value of the item type.
func (s *Sequence[T]) PopLeft(ctx context.Context) (T, error) {
	raw, found, err := s.store.LPop(ctx, s.id.Key())
	if err != nil {
		return s.itemType.Zero(), err
	}
	return s.decode(raw, found)
}

// PopRight removes and gets the last item. Empty sequence returns the zero value of the item type.
func (s *Sequence[T]) PopRight(ctx context.Context) (T, error) {
	raw, found, err := s.store.RPop(ctx, s.id.Key())
	if err != nil {
		return s.itemType.Zero(), err
	}
	return s.decode(raw, found)
}

// PushLeft inserts the 'value' at the head of the sequence.
func (s *Sequence[T]) PushLeft(ctx context.Context, value T) error {
	raw, err := s.encode(value)
	if err != nil {
		return err
	}
	return s.store.LPush(ctx, s.id.Key(), raw)
}

// PushRight inserts the 'value' at the tail of the sequence.
func (s *Sequence[T]) PushRight(ctx context.Context, value T) error {
	raw, err := s.encode(value)
	if err != nil {
		return err
	}
	return s.store.RPush(ctx, s.id.Key(), raw)
}

// Append is the PushRight alias.
func (s *Sequence[T]) Append(ctx context.Context, value T) error {
	return s.PushRight(ctx, value)
}

// Extend appends the 'values' at the tail of the sequence within a single store command.
func (s *Sequence[T]) Extend(ctx context.Context, values ...T) error {
	if len(values) == 0 {
		return nil
	}
	raws := make([]string, len(values))
	for i, v := range values {
		raw, err := s.encode(v)
		if err != nil {
			return err
		}
		raws[i] = raw
	}
	return s.store.RPush(ctx, s.id.Key(), raws...)
}

func (s *Sequence[T]) encode(value T) (string, error) {
	raw, err := s.itemType.Encode(value)
	if err != nil {
		return "", errors.Wrapf(err, "item of: '%s'", s.id)
	}
	return raw, nil
}

func (s *Sequence[T]) decode(raw string, found bool) (T, error) {
	v, err := s.itemType.Decode(raw, found)
	if err != nil {
		return v, errors.Wrapf(err, "item of: '%s'", s.id)
	}
	return v, nil
}

// Iterator iterates over the sequence items.
type Iterator[T any] struct {
	ctx     context.Context
	seq     *Sequence[T]
	raws    []string
	fetched bool
	pos     int
	value   T
	err     error
}

// Next advances the iterator. It returns false when there are no more items or an error occurred.
func (it *Iterator[T]) Next() bool {
	if it.err != nil {
		return false
	}
	if !it.fetched {
		it.fetched = true
		if it.raws, it.err = it.seq.store.LRange(it.ctx, it.seq.id.Key(), 0, -1); it.err != nil {
			return false
		}
	}
	if it.pos >= len(it.raws) {
		return false
	}
	it.value, it.err = it.seq.decode(it.raws[it.pos], true)
	it.pos++
	return it.err == nil
}

// Value gets the current item.
func (it *Iterator[T]) Value() T {
	return it.value
}

// Err gets the error that stopped the iteration.
func (it *Iterator[T]) Err() error {
	return it.err
}
