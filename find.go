package pydis

import (
	"context"
	"strings"

	"github.com/krysopath/pydis/store"
)

// Find finds the identities of the top level objects of given 'kind'. The child sequences are not included.
// The prefix find option narrows the tokens of the identities.
func Find(ctx context.Context, s store.KeyStore, kind string, options ...store.FindOption) ([]Identity, error) {
	pattern := store.NewFindPattern(options...)
	prefix := kind + Separator
	keys, err := s.Find(ctx,
		store.WithFindPrefix(prefix+pattern.Prefix),
		store.WithFindSuffix(pattern.Suffix),
		store.WithFindLimit(pattern.Limit),
		store.WithFindOffset(pattern.Offset),
		store.WithFindFilter(func(key string) bool {
			if strings.Contains(key[len(prefix):], Separator) {
				return false
			}
			return pattern.Filter == nil || pattern.Filter(key)
		}),
	)
	if err != nil {
		return nil, err
	}
	ids := make([]Identity, len(keys))
	for i, key := range keys {
		ids[i] = Identity{key: key}
	}
	return ids, nil
}
