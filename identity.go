package pydis

import (
	"strings"

	"github.com/krysopath/pydis/codec"
	"github.com/krysopath/pydis/errors"
)

// Separator separates the parts of the identity key.
const Separator = ":"

// Identity is the immutable store key of an object in a form of 'Kind:token'.
type Identity struct {
	key string
}

// NewIdentity creates new identity for given 'kind' and 'token'. If the 'token' is empty
// the 'gen' generator is used to create it. If the token doesn't contain the separator it
// gets prefixed by the 'kind'. The identity is not checked for uniqueness.
func NewIdentity(kind, token string, gen TokenGenerator) (Identity, error) {
	if token == "" {
		if gen == nil {
			gen = DefaultTokenGenerator
		}
		var err error
		if token, err = gen(); err != nil {
			return Identity{}, errors.Wrapf(ErrIdentity, "generating token failed: %v", err)
		}
	}
	if strings.Contains(token, Separator) {
		return Identity{key: token}, nil
	}
	if kind == "" {
		return Identity{}, errors.Wrapf(ErrIdentity, "no kind provided for the token: '%s'", token)
	}
	return Identity{key: kind + Separator + token}, nil
}

// ParseIdentity parses the identity from its 'key'.
func ParseIdentity(key string) (Identity, error) {
	i := strings.Index(key, Separator)
	if i <= 0 || i == len(key)-1 {
		return Identity{}, errors.Wrapf(ErrIdentity, "invalid identity key: '%s'", key)
	}
	return Identity{key: key}, nil
}

// IdentityType is the field type for the values that refers to other objects.
var IdentityType = codec.Custom("identity", ParseIdentity, func(id Identity) (string, error) { return id.key, nil })

// Key gets the store key of the identity.
func (i Identity) Key() string {
	return i.key
}

// Kind gets the part of the key before the first separator.
func (i Identity) Kind() string {
	if idx := strings.Index(i.key, Separator); idx >= 0 {
		return i.key[:idx]
	}
	return i.key
}

// Token gets the part of the key after the last separator.
func (i Identity) Token() string {
	return i.key[strings.LastIndex(i.key, Separator)+1:]
}

// Child gets the identity of the child collection tagged with 'tag'.
func (i Identity) Child(tag string) Identity {
	return Identity{key: i.key + Separator + tag}
}

// Equal checks if both identities have the same key.
func (i Identity) Equal(other Identity) bool {
	return i.key == other.key
}

// IsZero checks if the identity is not set.
func (i Identity) IsZero() bool {
	return i.key == ""
}

// String implements fmt.Stringer interface.
func (i Identity) String() string {
	return i.key
}
