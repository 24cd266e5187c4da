package store

import (
	"sort"
	"strings"
)

// FindPattern is the pattern used for querying the store keys.
type FindPattern struct {
	Suffix string
	Prefix string
	// Limit is the maximum number of keys returned. Zero means no limit.
	Limit  int
	Offset int
	// Filter if set, is an additional key matching function.
	Filter func(key string) bool
}

// NewFindPattern creates new find pattern with given options applied.
func NewFindPattern(options ...FindOption) *FindPattern {
	p := &FindPattern{}
	for _, option := range options {
		option(p)
	}
	return p
}

// Match checks if the 'key' matches the pattern prefix, suffix and filter.
func (p *FindPattern) Match(key string) bool {
	if len(key) < len(p.Prefix)+len(p.Suffix) {
		return false
	}
	if !strings.HasPrefix(key, p.Prefix) || !strings.HasSuffix(key, p.Suffix) {
		return false
	}
	return p.Filter == nil || p.Filter(key)
}

// Glob gets the store glob style pattern matching the prefix and suffix of the pattern.
func (p *FindPattern) Glob() string {
	return escapeGlob(p.Prefix) + "*" + escapeGlob(p.Suffix)
}

// Apply sorts matched 'keys' and cuts them with respect to the offset and the limit.
func (p *FindPattern) Apply(keys []string) []string {
	sort.Strings(keys)
	if p.Offset > 0 {
		if p.Offset >= len(keys) {
			return []string{}
		}
		keys = keys[p.Offset:]
	}
	if p.Limit > 0 && p.Limit < len(keys) {
		keys = keys[:p.Limit]
	}
	return keys
}

func escapeGlob(s string) string {
	if !strings.ContainsAny(s, `*?[]\`) {
		return s
	}
	sb := strings.Builder{}
	for _, r := range s {
		switch r {
		case '*', '?', '[', ']', '\\':
			sb.WriteRune('\\')
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

// FindOption is a option func that changes find pattern.
type FindOption func(o *FindPattern)

// WithFindLimit sets the limit for the find pattern.
func WithFindLimit(limit int) FindOption {
	return func(o *FindPattern) {
		o.Limit = limit
	}
}

// WithFindOffset sets the offset for the find pattern.
func WithFindOffset(offset int) FindOption {
	return func(o *FindPattern) {
		o.Offset = offset
	}
}

// WithFindPrefix sets the prefix for the find pattern.
func WithFindPrefix(prefix string) FindOption {
	return func(o *FindPattern) {
		o.Prefix = prefix
	}
}

// WithFindSuffix sets the suffix for the find pattern.
func WithFindSuffix(suffix string) FindOption {
	return func(o *FindPattern) {
		o.Suffix = suffix
	}
}

// WithFindFilter sets the additional key matching function.
func WithFindFilter(filter func(key string) bool) FindOption {
	return func(o *FindPattern) {
		o.Filter = filter
	}
}
