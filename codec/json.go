package codec

import (
	"encoding/json"
)

// JSON creates new custom field type for the values stored as JSON documents.
func JSON[T any](name string) Type[T] {
	return Custom(name,
		func(raw string) (T, error) {
			var v T
			err := json.Unmarshal([]byte(raw), &v)
			return v, err
		},
		func(v T) (string, error) {
			b, err := json.Marshal(v)
			if err != nil {
				return "", err
			}
			return string(b), nil
		},
	)
}
