package pydis

import (
	"github.com/krysopath/pydis/config"
	"github.com/krysopath/pydis/namer"
)

// Mapper derives the object kinds and identity tokens by the mapper configuration.
type Mapper struct {
	Convention     namer.NamingConvention
	PluralKinds    bool
	TokenGenerator TokenGenerator
}

// NewMapper creates new mapper for the 'cfg' configuration.
func NewMapper(cfg *config.Mapper) (*Mapper, error) {
	if cfg == nil {
		cfg = config.DefaultMapper()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	m := &Mapper{PluralKinds: cfg.PluralKinds}
	if err := m.Convention.Parse(cfg.NamingConvention); err != nil {
		return nil, err
	}
	gen, err := TokenGeneratorByName(cfg.TokenGenerator)
	if err != nil {
		return nil, err
	}
	m.TokenGenerator = gen
	return m, nil
}

// Kind gets the object kind of the Go value 'v'.
func (m *Mapper) Kind(v interface{}) string {
	return namer.KindOf(v, m.Convention, m.PluralKinds)
}

// KindName formats the kind 'name' with the mapper naming convention.
func (m *Mapper) KindName(name string) string {
	return namer.FormatKind(name, m.Convention, m.PluralKinds)
}

// Options gets the object options with the kind of 'v' and the mapper token generator.
func (m *Mapper) Options(v interface{}) []Option {
	return []Option{WithKind(m.Kind(v)), WithTokenGenerator(m.TokenGenerator)}
}
