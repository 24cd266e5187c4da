package namer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krysopath/pydis/errors"
)

type SampleHolder struct{}

func TestNamingConvention(t *testing.T) {
	type testcase struct {
		name       string
		convention NamingConvention
	}
	tests := []testcase{
		{"type", TypeName},
		{"snake", SnakeCase},
		{"camel", CamelCase},
		{"lower_camel", LowerCamelCase},
		{"kebab", KebabCase},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var n NamingConvention
			require.NoError(t, n.Parse(tc.name))
			assert.Equal(t, tc.convention, n)
			assert.Equal(t, tc.name, n.String())
		})
	}

	t.Run("Unknown", func(t *testing.T) {
		var n NamingConvention
		err := n.Parse("screaming")
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrNamingConvention))
	})
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, "SampleHolder", KindOf(&SampleHolder{}, TypeName, false))
	assert.Equal(t, "sample_holder", KindOf(SampleHolder{}, SnakeCase, false))
	assert.Equal(t, "sample-holders", KindOf(&SampleHolder{}, KebabCase, true))
	assert.Equal(t, "sampleHolder", KindOf(&SampleHolder{}, LowerCamelCase, false))
	assert.Equal(t, "", KindOf(nil, TypeName, false))
}

func TestFormatKind(t *testing.T) {
	assert.Equal(t, "WeatherStation", FormatKind("WeatherStation", TypeName, false))
	assert.Equal(t, "weather_stations", FormatKind("WeatherStation", SnakeCase, true))
	assert.Equal(t, "WeatherStation", FormatKind("weather_station", CamelCase, false))
}
