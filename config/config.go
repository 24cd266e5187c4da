package config

import (
	"gopkg.in/go-playground/validator.v9"

	"github.com/krysopath/pydis/errors"
)

var (
	// ErrConfig is the major configuration error.
	ErrConfig = errors.New("config")
	// ErrInvalidConfig is the error for the configuration that doesn't pass the validation.
	ErrInvalidConfig = errors.Wrap(ErrConfig, "invalid")
	// ErrUnknownKey is the error when the configuration contains unrecognized key.
	ErrUnknownKey = errors.Wrap(ErrConfig, "unknown key")
	// ErrInvalidConnectionString is the error for malformed connection strings.
	ErrInvalidConnectionString = errors.Wrap(ErrConfig, "invalid connection string")
)

// Config contains general configurations for the pydis based applications.
type Config struct {
	// Connection is the key-value store connection configuration.
	Connection *Connection `mapstructure:"connection" validate:"required"`
	// Mapper defines how the objects are named and identified.
	Mapper *Mapper `mapstructure:"mapper" validate:"required"`
	// Log is the logging configuration.
	Log *Log `mapstructure:"log" validate:"required"`
}

// Default creates the configuration with default values.
func Default() *Config {
	return &Config{
		Connection: DefaultConnection(),
		Mapper:     DefaultMapper(),
		Log:        &Log{Level: "info"},
	}
}

// Validate validates the whole configuration.
func (c *Config) Validate() error {
	return validate(c)
}

// Log is the logger configuration.
type Log struct {
	// Level is the name of the logging level: debug3, debug2, debug, info, warning, error, critical.
	Level string `mapstructure:"level" validate:"oneof=debug3 debug2 debug info warning error critical"`
}

// Mapper is the configuration of the objects mapping.
type Mapper struct {
	// NamingConvention is the convention used to derive the object kinds from the type names.
	// Possible values: type, snake, kebab, camel, lower_camel.
	NamingConvention string `mapstructure:"naming_convention" validate:"oneof=type snake kebab camel lower_camel"`
	// PluralKinds sets the derived kinds to be pluralized.
	PluralKinds bool `mapstructure:"plural_kinds"`
	// TokenGenerator is the name of the identity token generator: random, uuid or ulid.
	TokenGenerator string `mapstructure:"token_generator" validate:"oneof=random uuid ulid"`
}

// DefaultMapper creates default mapper configuration.
func DefaultMapper() *Mapper {
	return &Mapper{
		NamingConvention: "type",
		TokenGenerator:   "random",
	}
}

// Validate validates the mapper configuration.
func (m *Mapper) Validate() error {
	return validate(m)
}

var validatorInstance = validator.New()

func validate(v interface{}) error {
	if err := validatorInstance.Struct(v); err != nil {
		return errors.Wrap(ErrInvalidConfig, err.Error())
	}
	return nil
}
