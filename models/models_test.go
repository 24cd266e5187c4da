package models

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/krysopath/pydis"
	"github.com/krysopath/pydis/codec"
	"github.com/krysopath/pydis/errors"
	"github.com/krysopath/pydis/store/memory"
)

func TestMain(m *testing.M) {
	PasswordCost = bcrypt.MinCost
	m.Run()
}

func TestUser(t *testing.T) {
	ctx := context.Background()
	s := memory.New()

	u, err := NewUser(ctx, s, "georg@example.com", map[string]interface{}{"name": "Georg", "password": "secret"})
	require.NoError(t, err)
	assert.Equal(t, "User:georg@example.com", u.Identity().Key())

	email, err := pydis.Get[string](ctx, u.Record, "email")
	require.NoError(t, err)
	assert.Equal(t, "georg@example.com", email)

	stored, err := pydis.Get[string](ctx, u.Record, "password")
	require.NoError(t, err)
	assert.NotEqual(t, "secret", stored)
	assert.True(t, strings.HasPrefix(stored, "$2"))

	ok, err := u.Verify(ctx, "secret")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = u.Verify(ctx, "wrong")
	require.NoError(t, err)
	assert.False(t, ok)

	t.Run("ChangePassword", func(t *testing.T) {
		same, err := NewUser(ctx, s, "georg@example.com", nil)
		require.NoError(t, err)
		require.NoError(t, same.Write(ctx, "password", "other"))

		ok, err := u.Verify(ctx, "other")
		require.NoError(t, err)
		assert.True(t, ok)

		err = same.Write(ctx, "password", 12)
		assert.True(t, errors.Is(err, codec.ErrFieldValue))
	})

	t.Run("NoPassword", func(t *testing.T) {
		anonymous, err := NewUser(ctx, s, "", nil)
		require.NoError(t, err)
		assert.Equal(t, "User", anonymous.Identity().Kind())

		ok, err := anonymous.Verify(ctx, "")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("Friends", func(t *testing.T) {
		require.NoError(t, u.Friends().Append(ctx, "User:alice@example.com"))
		friends, err := pydis.ChildSequence[string](u.Record, "friends")
		require.NoError(t, err)
		assert.Equal(t, "User:georg@example.com:friends", friends.Identity().Key())

		items, err := friends.All(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"User:alice@example.com"}, items)
	})
}

func TestSampleHolder(t *testing.T) {
	ctx := context.Background()
	s := memory.New()

	h, err := NewSampleHolder(ctx, s, "baropi")
	require.NoError(t, err)
	assert.Equal(t, "SampleHolder:baropi", h.Identity().Key())

	climate := ClimateSample{Timestamp: 1500000000.5, Temperature: 16, Humidity: 42, DewPointCelsius: 3.11}
	require.NoError(t, h.Climate().Append(ctx, climate))
	sentinel := SentinelSample{Timestamp: 1500000000.5, Temperature: 52, DiskTotal: 49080.57, PercentRAM: 32.4}
	require.NoError(t, h.Sentinel().Append(ctx, sentinel))

	request, err := NewEventRequest(ctx, s, 1500000000.25, map[string]interface{}{
		"event_name":    "open day",
		"visitor_count": 12,
		"location":      "station",
	})
	require.NoError(t, err)
	assert.Equal(t, "EventRequest:1500000000.25", request.Identity().Key())
	require.NoError(t, h.AddEventRequest(ctx, request))

	again, err := NewSampleHolder(ctx, s, "baropi")
	require.NoError(t, err)

	climates, err := again.Climate().All(ctx)
	require.NoError(t, err)
	assert.Equal(t, []ClimateSample{climate}, climates)

	sentinels, err := again.Sentinel().All(ctx)
	require.NoError(t, err)
	assert.Equal(t, []SentinelSample{sentinel}, sentinels)

	requests, err := again.EventRequests().All(ctx)
	require.NoError(t, err)
	require.Len(t, requests, 1)
	assert.True(t, request.Identity().Equal(requests[0]))

	// Each child is stored under its own tag.
	for _, tag := range []string{"climate", "sentinel", "event_request"} {
		length, err := s.LLen(ctx, "SampleHolder:baropi:"+tag)
		require.NoError(t, err)
		assert.Equal(t, int64(1), length, tag)
	}

	count, err := pydis.Get[int](ctx, request.Record, "visitor_count")
	require.NoError(t, err)
	assert.Equal(t, 12, count)

	timestamp, err := pydis.Get[float64](ctx, request.Record, "timestamp")
	require.NoError(t, err)
	assert.Equal(t, 1500000000.25, timestamp)

	_, err = NewEventRequest(ctx, s, 1, map[string]interface{}{"id": "x"})
	assert.True(t, errors.Is(err, pydis.ErrUndeclaredField))
}
