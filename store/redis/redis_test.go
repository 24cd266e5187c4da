package redis

import (
	"context"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krysopath/pydis/config"
	"github.com/krysopath/pydis/errors"
	"github.com/krysopath/pydis/store"
)

func testConnection(t *testing.T, s *miniredis.Miniredis) *config.Connection {
	t.Helper()
	port, err := strconv.Atoi(s.Port())
	require.NoError(t, err)

	conn := config.DefaultConnection()
	conn.Host = s.Host()
	conn.Port = port
	conn.DialTimeout = time.Second
	return conn
}

func testStore(t *testing.T, options ...store.Option) (*miniredis.Miniredis, store.Store) {
	t.Helper()
	s := miniredis.RunT(t)

	f, err := NewFactory(testConnection(t, s), options...)
	require.NoError(t, err)

	st, err := f.Connect(context.Background())
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close(context.Background()) })
	return s, st
}

func TestFactory(t *testing.T) {
	t.Run("Invalid", func(t *testing.T) {
		conn := config.DefaultConnection()
		conn.Port = 0
		_, err := NewFactory(conn)
		assert.True(t, errors.Is(err, config.ErrConfig))

		_, err = NewFactory(nil)
		assert.True(t, errors.Is(err, config.ErrConfig))
	})

	t.Run("ConnectionRefused", func(t *testing.T) {
		s := miniredis.RunT(t)
		conn := testConnection(t, s)
		s.Close()

		f, err := NewFactory(conn)
		require.NoError(t, err)
		_, err = f.Connect(context.Background())
		assert.True(t, errors.Is(err, store.ErrConnection))
	})

	t.Run("ClientName", func(t *testing.T) {
		conn := config.DefaultConnection()
		conn.ClientName = "piredis"

		first, second := NewStore(conn), NewStore(conn)
		assert.True(t, strings.HasPrefix(first.Name(), "piredis-"))
		assert.NotEqual(t, first.Name(), second.Name())

		conn.ClientName = ""
		assert.Empty(t, NewStore(conn).Name())
	})

	t.Run("Separate", func(t *testing.T) {
		s := miniredis.RunT(t)
		f, err := NewFactory(testConnection(t, s))
		require.NoError(t, err)

		ctx := context.Background()
		first, err := f.Connect(ctx)
		require.NoError(t, err)
		second, err := f.Connect(ctx)
		require.NoError(t, err)

		require.NoError(t, first.Close(ctx))
		_, err = first.Exists(ctx, "a")
		assert.True(t, errors.Is(err, store.ErrConnection))

		_, err = second.Exists(ctx, "a")
		assert.NoError(t, err)
	})
}

func TestHash(t *testing.T) {
	ctx := context.Background()
	s, st := testStore(t, store.WithPrefix("baropi:"))

	_, found, err := st.HGet(ctx, "User:abc", "name")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, st.HSet(ctx, "User:abc", "name", "bob"))
	assert.Equal(t, "bob", s.HGet("baropi:User:abc", "name"))

	value, found, err := st.HGet(ctx, "User:abc", "name")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "bob", value)

	exists, err := st.Exists(ctx, "User:abc")
	require.NoError(t, err)
	assert.True(t, exists)

	require.NoError(t, st.Delete(ctx, "User:abc"))
	assert.False(t, s.Exists("baropi:User:abc"))
	require.NoError(t, st.Delete(ctx, "User:abc"))
}

func TestList(t *testing.T) {
	ctx := context.Background()
	s, st := testStore(t)

	require.NoError(t, st.RPush(ctx, "l", "b", "c"))
	require.NoError(t, st.LPush(ctx, "l", "a", "z"))

	items, err := st.LRange(ctx, "l", 0, -1)
	require.NoError(t, err)
	assert.Equal(t, []string{"z", "a", "b", "c"}, items)

	items, err = st.LRange(ctx, "missing", 0, -1)
	require.NoError(t, err)
	assert.Equal(t, []string{}, items)

	value, found, err := st.LIndex(ctx, "l", -1)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "c", value)

	_, found, err = st.LIndex(ctx, "l", 10)
	require.NoError(t, err)
	assert.False(t, found)

	err = st.LSet(ctx, "l", 10, "x")
	assert.True(t, errors.Is(err, store.ErrOutOfRange))
	err = st.LSet(ctx, "missing", 0, "x")
	assert.True(t, errors.Is(err, store.ErrNoSuchKey))

	length, err := st.LLen(ctx, "l")
	require.NoError(t, err)
	assert.Equal(t, int64(4), length)

	removed, err := st.LRem(ctx, "l", 1, "a")
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)

	value, found, err = st.LPop(ctx, "l")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "z", value)

	value, found, err = st.RPop(ctx, "l")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "c", value)

	_, _, err = st.LPop(ctx, "l")
	require.NoError(t, err)
	assert.False(t, s.Exists("l"))

	_, found, err = st.LPop(ctx, "l")
	require.NoError(t, err)
	assert.False(t, found)

	t.Run("WrongType", func(t *testing.T) {
		require.NoError(t, st.HSet(ctx, "h", "a", "b"))
		err := st.RPush(ctx, "h", "a")
		assert.True(t, errors.Is(err, store.ErrWrongType))
	})
}

func TestFind(t *testing.T) {
	ctx := context.Background()
	_, st := testStore(t, store.WithPrefix("baropi:"))

	require.NoError(t, st.HSet(ctx, "User:b", "name", "b"))
	require.NoError(t, st.HSet(ctx, "User:a", "name", "a"))
	require.NoError(t, st.RPush(ctx, "User:a:friends", "b"))
	require.NoError(t, st.HSet(ctx, "Sample:a", "name", "a"))

	keys, err := st.Find(ctx, store.WithFindPrefix("User:"))
	require.NoError(t, err)
	assert.Equal(t, []string{"User:a", "User:a:friends", "User:b"}, keys)

	keys, err = st.Find(ctx, store.WithFindPrefix("User:"), store.WithFindFilter(func(key string) bool {
		return !strings.HasSuffix(key, ":friends")
	}))
	require.NoError(t, err)
	assert.Equal(t, []string{"User:a", "User:b"}, keys)
}
