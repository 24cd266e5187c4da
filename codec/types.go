package codec

import (
	"strconv"
	"time"
)

var (
	// Text is the field type for the string values.
	Text = Type[string]{
		kind:   KindText,
		name:   "text",
		parse:  func(raw string) (string, error) { return raw, nil },
		format: func(v string) (string, error) { return v, nil },
	}

	// Int is the field type for the integer values.
	Int = Type[int]{
		kind:   KindInteger,
		name:   "integer",
		parse:  strconv.Atoi,
		format: func(v int) (string, error) { return strconv.Itoa(v), nil },
	}

	// Int64 is the field type for the 64-bit integer values.
	Int64 = Type[int64]{
		kind:   KindInteger,
		name:   "integer",
		parse:  func(raw string) (int64, error) { return strconv.ParseInt(raw, 10, 64) },
		format: func(v int64) (string, error) { return strconv.FormatInt(v, 10), nil },
	}

	// Float is the field type for the floating point values.
	Float = Type[float64]{
		kind:   KindFloat,
		name:   "float",
		parse:  func(raw string) (float64, error) { return strconv.ParseFloat(raw, 64) },
		format: func(v float64) (string, error) { return formatFloat(v, 64), nil },
	}

	// Bool is the field type for the boolean values.
	Bool = Type[bool]{
		kind:   KindBoolean,
		name:   "boolean",
		parse:  strconv.ParseBool,
		format: func(v bool) (string, error) { return strconv.FormatBool(v), nil },
	}

	// Time is the custom field type for the timestamps stored in RFC3339 format.
	Time = Custom("time",
		func(raw string) (time.Time, error) { return time.Parse(time.RFC3339Nano, raw) },
		func(v time.Time) (string, error) { return v.Format(time.RFC3339Nano), nil },
	)
)
