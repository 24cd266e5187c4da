package log

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krysopath/pydis/errors"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, LDEBUG3, ParseLevel("debug3"))
	assert.Equal(t, LDEBUG, ParseLevel("DEBUG"))
	assert.Equal(t, LWARNING, ParseLevel("Warning"))
	assert.Equal(t, LUNKNOWN, ParseLevel("verbose"))
}

func TestLogger(t *testing.T) {
	defer func() {
		logger = nil
		debugLeveled, isDebugLeveled = nil, false
		currentLevel = LINFO
	}()

	buf := &bytes.Buffer{}
	New(buf, "", 0)
	require.NotNil(t, Logger())

	Debugf("hidden: %d", 1)
	assert.NotContains(t, buf.String(), "hidden: 1")

	Infof("visible: %d", 2)
	assert.Contains(t, buf.String(), "visible: 2")

	t.Run("SetLevel", func(t *testing.T) {
		buf.Reset()
		require.NoError(t, SetLevel(LDEBUG))
		assert.Equal(t, LDEBUG, Level())

		Debugf("now visible: %d", 3)
		assert.Contains(t, buf.String(), "now visible: 3")
	})

	t.Run("Unknown", func(t *testing.T) {
		err := SetLevel(LUNKNOWN)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrUnknownLevel))
	})

	t.Run("Module", func(t *testing.T) {
		buf.Reset()
		m := NewModuleLogger("test-module")
		m.Infof("module message")
		assert.Contains(t, buf.String(), "[test-module] module message")

		buf.Reset()
		m.SetLevel(LERROR)
		m.Infof("filtered module message")
		assert.NotContains(t, buf.String(), "filtered module message")
	})
}
