package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krysopath/pydis/errors"
)

// TestParseConnection tests the connection string parse function.
func TestParseConnection(t *testing.T) {
	type testcase struct {
		name string
		s    string
		tf   func(t *testing.T, c *Connection, err error)
	}

	tests := []testcase{
		{
			"Valid",
			"host=172.16.1.1 port=6380 password=pass database_index=3 client_name=baropi dial_timeout=1m key_prefix=test:",
			func(t *testing.T, c *Connection, err error) {
				require.NoError(t, err)

				assert.Equal(t, "172.16.1.1", c.Host)
				assert.Equal(t, 6380, c.Port)
				assert.Equal(t, "pass", c.Password)
				assert.Equal(t, 3, c.DatabaseIndex)
				assert.Equal(t, "baropi", c.ClientName)
				assert.Equal(t, time.Minute, c.DialTimeout)
				assert.Equal(t, 3*time.Second, c.ReadTimeout)
				assert.Equal(t, "test:", c.KeyPrefix)
				assert.Equal(t, "172.16.1.1:6380", c.Addr())
			},
		},
		{
			"ShortDB",
			"db=2",
			func(t *testing.T, c *Connection, err error) {
				require.NoError(t, err)
				assert.Equal(t, 2, c.DatabaseIndex)
				assert.Equal(t, "localhost", c.Host)
			},
		},
		{
			"InvalidEqualSymbol",
			"host:172.16.1.1 port=6379",
			func(t *testing.T, c *Connection, err error) {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidConnectionString))
			},
		},
		{
			"InvalidPort",
			"host=172.16.1.1 port=as6379",
			func(t *testing.T, c *Connection, err error) {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidConnectionString))
			},
		},
		{
			"UnknownKey",
			"host=172.16.1.1 unknown=something",
			func(t *testing.T, c *Connection, err error) {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrUnknownKey))
			},
		},
		{
			"InvalidTimeout",
			"host=172.16.1.1 read_timeout=3123dhas",
			func(t *testing.T, c *Connection, err error) {
				require.Error(t, err)
			},
		},
	}

	for _, tcase := range tests {
		t.Run(tcase.name, func(t *testing.T) {
			c := DefaultConnection()
			err := c.Parse(tcase.s)
			tcase.tf(t, c, err)
		})
	}
}

func TestValidateConnection(t *testing.T) {
	t.Run("Default", func(t *testing.T) {
		assert.NoError(t, DefaultConnection().Validate())
	})

	t.Run("InvalidPort", func(t *testing.T) {
		c := DefaultConnection()
		c.Port = 70000
		err := c.Validate()
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidConfig))
	})

	t.Run("NegativeDatabase", func(t *testing.T) {
		c := DefaultConnection()
		c.DatabaseIndex = -1
		assert.Error(t, c.Validate())
	})

	t.Run("EmptyHost", func(t *testing.T) {
		c := DefaultConnection()
		c.Host = ""
		assert.Error(t, c.Validate())
	})
}
