package pydis

import (
	"crypto/rand"
	"encoding/base64"
	"strings"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"

	"github.com/krysopath/pydis/errors"
)

// DefaultTokenLength is the number of random bytes used by the default token generator.
const DefaultTokenLength = 9

// TokenGenerator is the function that creates new identity tokens.
type TokenGenerator func() (string, error)

// DefaultTokenGenerator is the token generator used when none is provided.
var DefaultTokenGenerator = RandomToken(DefaultTokenLength)

// RandomToken creates the generator of the URL-safe base64 encoded, 'n' random bytes tokens.
func RandomToken(n int) TokenGenerator {
	return func() (string, error) {
		b := make([]byte, n)
		if _, err := rand.Read(b); err != nil {
			return "", err
		}
		return base64.URLEncoding.EncodeToString(b), nil
	}
}

// UUIDToken generates the random UUID tokens.
func UUIDToken() (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

// ULIDToken generates the lexicographically sortable ULID tokens.
func ULIDToken() (string, error) {
	return ulid.Make().String(), nil
}

// TokenGeneratorByName gets the token generator by its configuration 'name': random, uuid or ulid.
func TokenGeneratorByName(name string) (TokenGenerator, error) {
	switch strings.ToLower(name) {
	case "random", "":
		return DefaultTokenGenerator, nil
	case "uuid":
		return UUIDToken, nil
	case "ulid":
		return ULIDToken, nil
	}
	return nil, errors.Wrapf(ErrIdentity, "unknown token generator: '%s'", name)
}
