package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krysopath/pydis/errors"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestReadDefaultConfig(t *testing.T) {
	c, err := ReadDefaultConfig()
	require.NoError(t, err)

	t.Run("Connection", func(t *testing.T) {
		assert.Equal(t, "localhost", c.Connection.Host)
		assert.Equal(t, 6379, c.Connection.Port)
		assert.Equal(t, 0, c.Connection.DatabaseIndex)
		assert.Equal(t, "", c.Connection.Password)
		assert.Equal(t, 5*time.Second, c.Connection.DialTimeout)
	})

	t.Run("Mapper", func(t *testing.T) {
		assert.Equal(t, "type", c.Mapper.NamingConvention)
		assert.Equal(t, "random", c.Mapper.TokenGenerator)
		assert.False(t, c.Mapper.PluralKinds)
	})

	assert.Equal(t, "info", c.Log.Level)
}

func TestReadConfigFile(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		path := writeConfig(t, "pydis.yaml", `
connection:
  host: 192.168.0.254
  port: 6380
  password: secret
  database_index: 2
  read_timeout: 10s
mapper:
  naming_convention: snake
  token_generator: ulid
log:
  level: debug
`)
		c, err := ReadConfigFile(path)
		require.NoError(t, err)

		assert.Equal(t, "192.168.0.254", c.Connection.Host)
		assert.Equal(t, 6380, c.Connection.Port)
		assert.Equal(t, "secret", c.Connection.Password)
		assert.Equal(t, 2, c.Connection.DatabaseIndex)
		assert.Equal(t, 10*time.Second, c.Connection.ReadTimeout)
		assert.Equal(t, 3*time.Second, c.Connection.WriteTimeout)
		assert.Equal(t, "snake", c.Mapper.NamingConvention)
		assert.Equal(t, "ulid", c.Mapper.TokenGenerator)
		assert.Equal(t, "debug", c.Log.Level)
	})

	t.Run("UnknownKey", func(t *testing.T) {
		path := writeConfig(t, "pydis.yaml", `
connection:
  host: localhost
  pickle_proto: -1
`)
		_, err := ReadConfigFile(path)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrUnknownKey))
	})

	t.Run("InvalidGenerator", func(t *testing.T) {
		path := writeConfig(t, "pydis.yaml", `
mapper:
  token_generator: sequential
`)
		_, err := ReadConfigFile(path)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidConfig))
	})

	t.Run("NotFound", func(t *testing.T) {
		_, err := ReadConfigFile(filepath.Join(t.TempDir(), "missing.yaml"))
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrConfig))
	})
}

func TestReadNamedConfig(t *testing.T) {
	path := writeConfig(t, "custom.yaml", `
connection:
  port: 7000
`)
	c, err := ReadNamedConfig("custom", filepath.Dir(path))
	require.NoError(t, err)
	assert.Equal(t, 7000, c.Connection.Port)
	assert.Equal(t, "localhost", c.Connection.Host)
}

func TestReadConfigEnv(t *testing.T) {
	t.Setenv("PYDIS_CONNECTION_HOST", "10.0.0.5")
	t.Setenv("PYDIS_CONNECTION_DATABASE_INDEX", "4")

	c, err := ReadDefaultConfig()
	require.NoError(t, err)
	assert.Equal(t, "10.0.0.5", c.Connection.Host)
	assert.Equal(t, 4, c.Connection.DatabaseIndex)
}
