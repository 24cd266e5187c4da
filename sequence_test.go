package pydis

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krysopath/pydis/codec"
	"github.com/krysopath/pydis/config"
	"github.com/krysopath/pydis/errors"
	"github.com/krysopath/pydis/store"
	"github.com/krysopath/pydis/store/memory"
)

func TestSequence(t *testing.T) {
	forEachBackend(t, func(t *testing.T, s store.Store) {
		ctx := context.Background()

		t.Run("Scenario", func(t *testing.T) {
			seq, err := NewSequence[int](ctx, s, codec.Int, nil)
			require.NoError(t, err)
			assert.Equal(t, DefaultSequenceKind, seq.Identity().Kind())

			for _, v := range []int{1, 2, 3} {
				require.NoError(t, seq.Append(ctx, v))
			}
			items, err := seq.ReadSlice(ctx, Slice{Start: 0, End: 2})
			require.NoError(t, err)
			assert.Equal(t, []int{1, 2, 3}, items)

			require.NoError(t, seq.DeleteAt(ctx, 1))

			values := []int{}
			it := seq.Iterate(ctx)
			for it.Next() {
				values = append(values, it.Value())
			}
			require.NoError(t, it.Err())
			assert.Equal(t, []int{1, 3}, values)
		})

		t.Run("Length", func(t *testing.T) {
			seq, err := NewSequence[string](ctx, s, codec.Text, nil)
			require.NoError(t, err)

			length, err := seq.Len(ctx)
			require.NoError(t, err)
			assert.Equal(t, int64(0), length)

			for _, v := range []string{"a", "b", "a", "c"} {
				require.NoError(t, seq.Append(ctx, v))
			}
			length, err = seq.Len(ctx)
			require.NoError(t, err)
			assert.Equal(t, int64(4), length)
		})

		t.Run("SetGet", func(t *testing.T) {
			seq, err := NewSequence(ctx, s, codec.Float, []float64{1.5, 2.5, 3.5}, WithKind("Floats"))
			require.NoError(t, err)
			assert.Equal(t, "Floats", seq.Identity().Kind())

			for i := int64(0); i < 3; i++ {
				require.NoError(t, seq.Set(ctx, i, float64(i)*10))
				v, err := seq.Get(ctx, i)
				require.NoError(t, err)
				assert.Equal(t, float64(i)*10, v)
			}

			last, err := seq.Get(ctx, -1)
			require.NoError(t, err)
			assert.Equal(t, 20.0, last)

			absent, err := seq.Get(ctx, 10)
			require.NoError(t, err)
			assert.Equal(t, 0.0, absent)

			err = seq.Set(ctx, 10, 1)
			assert.True(t, errors.Is(err, store.ErrOutOfRange))

			err = seq.DeleteAt(ctx, 10)
			assert.True(t, errors.Is(err, store.ErrOutOfRange))

			empty, err := NewSequence[float64](ctx, s, codec.Float, nil)
			require.NoError(t, err)
			err = empty.Set(ctx, 0, 1)
			assert.True(t, errors.Is(err, store.ErrNoSuchKey))
		})

		t.Run("PushPop", func(t *testing.T) {
			seq, err := NewSequence(ctx, s, codec.Int, []int{1, 2})
			require.NoError(t, err)

			before, err := seq.Len(ctx)
			require.NoError(t, err)

			require.NoError(t, seq.PushRight(ctx, 9))
			v, err := seq.PopRight(ctx)
			require.NoError(t, err)
			assert.Equal(t, 9, v)

			after, err := seq.Len(ctx)
			require.NoError(t, err)
			assert.Equal(t, before, after)

			require.NoError(t, seq.PushLeft(ctx, 0))
			v, err = seq.PopLeft(ctx)
			require.NoError(t, err)
			assert.Equal(t, 0, v)

			_, err = seq.PopLeft(ctx)
			require.NoError(t, err)
			_, err = seq.PopLeft(ctx)
			require.NoError(t, err)

			v, err = seq.PopRight(ctx)
			require.NoError(t, err)
			assert.Equal(t, 0, v)

			exists, err := seq.Exists(ctx)
			require.NoError(t, err)
			assert.False(t, exists)
		})

		t.Run("Slices", func(t *testing.T) {
			seq, err := NewSequence(ctx, s, codec.Int, []int{0, 1, 2, 3, 4})
			require.NoError(t, err)

			_, err = seq.ReadSlice(ctx, Slice{Start: 0, End: 4, Step: 2})
			assert.True(t, errors.Is(err, ErrUnsupportedSliceStep))
			assert.True(t, errors.Is(err, errors.ErrNotImplemented))

			items, err := seq.ReadSlice(ctx, Slice{Start: 1, End: 3, Step: 1})
			require.NoError(t, err)
			assert.Equal(t, []int{1, 2, 3}, items)

			items, err = seq.Range(ctx, -2, -1)
			require.NoError(t, err)
			assert.Equal(t, []int{3, 4}, items)

			items, err = seq.Range(ctx, 3, 100)
			require.NoError(t, err)
			assert.Equal(t, []int{3, 4}, items)

			items, err = seq.All(ctx)
			require.NoError(t, err)
			assert.Equal(t, []int{0, 1, 2, 3, 4}, items)
		})

		t.Run("Duplicates", func(t *testing.T) {
			seq, err := NewSequence(ctx, s, codec.Text, []string{"a", "b", "a"}, WithID("dups"))
			require.NoError(t, err)
			assert.Equal(t, "Sequence:dups", seq.Identity().Key())

			require.NoError(t, seq.DeleteAt(ctx, 2))
			items, err := seq.All(ctx)
			require.NoError(t, err)
			assert.Equal(t, []string{"a", "b"}, items)
		})

		t.Run("AsChild", func(t *testing.T) {
			first, err := NewRecord(ctx, s, testSchema, WithID("owner"))
			require.NoError(t, err)
			second, err := NewRecord(ctx, s, testSchema, WithID("owner"))
			require.NoError(t, err)

			friends := AsChild(first, "friends", codec.Int)()
			require.NoError(t, friends.Extend(ctx, 4, 5, 6))

			other := AsChild(second, "friends", codec.Int)()
			assert.True(t, friends.Equal(other))
			items, err := other.All(ctx)
			require.NoError(t, err)
			assert.Equal(t, []int{4, 5, 6}, items)

			require.NoError(t, first.Delete(ctx))
			length, err := other.Len(ctx)
			require.NoError(t, err)
			assert.Equal(t, int64(3), length)
		})

		t.Run("IterateDecodeError", func(t *testing.T) {
			seq, err := NewSequence(ctx, s, codec.Int, []int{1})
			require.NoError(t, err)
			require.NoError(t, s.RPush(ctx, seq.Identity().Key(), "x"))

			it := seq.Iterate(ctx)
			require.True(t, it.Next())
			assert.Equal(t, 1, it.Value())
			assert.False(t, it.Next())
			assert.True(t, errors.Is(it.Err(), codec.ErrDecode))
		})
	})
}

func TestFind(t *testing.T) {
	forEachBackend(t, func(t *testing.T, s store.Store) {
		ctx := context.Background()
		for _, id := range []string{"b", "a", "c"} {
			r, err := NewRecord(ctx, s, testSchema, WithID(id), WithDefaults(map[string]interface{}{"name": id}))
			require.NoError(t, err)
			history, err := ChildSequence[int](r, "history")
			require.NoError(t, err)
			require.NoError(t, history.Append(ctx, 1))
		}
		_, err := NewSequence(ctx, s, codec.Int, []int{1}, WithKind("Other"))
		require.NoError(t, err)

		ids, err := Find(ctx, s, "Counter")
		require.NoError(t, err)
		require.Len(t, ids, 3)
		assert.Equal(t, "Counter:a", ids[0].Key())
		assert.Equal(t, "Counter:c", ids[2].Key())

		ids, err = Find(ctx, s, "Counter", store.WithFindLimit(1), store.WithFindOffset(1))
		require.NoError(t, err)
		require.Len(t, ids, 1)
		assert.Equal(t, "Counter:b", ids[0].Key())

		ids, err = Find(ctx, s, "Counter", store.WithFindPrefix("c"))
		require.NoError(t, err)
		require.Len(t, ids, 1)
		assert.Equal(t, "c", ids[0].Token())
	})
}

func TestMapper(t *testing.T) {
	type SampleHolder struct{}

	m, err := NewMapper(nil)
	require.NoError(t, err)
	assert.Equal(t, "SampleHolder", m.Kind(&SampleHolder{}))

	require.NoError(t, m.Convention.Parse("snake"))
	m.PluralKinds = true
	assert.Equal(t, "sample_holders", m.Kind(SampleHolder{}))

	ctx := context.Background()
	s := memory.New()
	r, err := NewRecord(ctx, s, testSchema, m.Options(SampleHolder{})...)
	require.NoError(t, err)
	assert.Equal(t, "sample_holders", r.Identity().Kind())
	assert.Equal(t, "weather_stations", m.KindName("WeatherStation"))

	t.Run("TokenGenerator", func(t *testing.T) {
		cfg := config.DefaultMapper()
		cfg.TokenGenerator = "uuid"
		m, err := NewMapper(cfg)
		require.NoError(t, err)

		r, err := NewRecord(ctx, s, testSchema, m.Options(SampleHolder{})...)
		require.NoError(t, err)
		_, err = uuid.Parse(r.Identity().Token())
		assert.NoError(t, err)
	})

	t.Run("Invalid", func(t *testing.T) {
		cfg := config.DefaultMapper()
		cfg.TokenGenerator = "sequential"
		_, err := NewMapper(cfg)
		assert.True(t, errors.Is(err, config.ErrInvalidConfig))
	})
}
