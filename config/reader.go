package config

import (
	"strings"

	"github.com/spf13/viper"

	"github.com/krysopath/pydis/errors"
	"github.com/krysopath/pydis/log"
)

// EnvPrefix is the prefix of the environment variables read by the config, i.e. PYDIS_CONNECTION_HOST.
const EnvPrefix = "pydis"

// ViperSetDefaults sets the default values for the viper config.
func ViperSetDefaults(v *viper.Viper) {
	setDefaults(v)
}

// ReadConfig reads the config named 'pydis' from the current or 'configs' directory.
func ReadConfig() (*Config, error) {
	return ReadNamedConfig("pydis", ".", "configs")
}

// ReadNamedConfig reads the config with the provided name, searched within provided 'paths'.
func ReadNamedConfig(name string, paths ...string) (*Config, error) {
	v := newViper()
	v.SetConfigName(name)
	for _, path := range paths {
		v.AddConfigPath(path)
	}
	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrapf(ErrConfig, "reading config: '%s' failed: %v", name, err)
	}
	return unmarshal(v)
}

// ReadConfigFile reads the config from the file at 'path'.
func ReadConfigFile(path string) (*Config, error) {
	v := newViper()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrapf(ErrConfig, "reading config file: '%s' failed: %v", path, err)
	}
	return unmarshal(v)
}

// ReadDefaultConfig reads the default configuration overwritten by the environment variables.
func ReadDefaultConfig() (*Config, error) {
	return unmarshal(newViper())
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)
	return v
}

func unmarshal(v *viper.Viper) (*Config, error) {
	c := &Config{}
	if err := v.UnmarshalExact(c); err != nil {
		log.Debugf("Unmarshaling Config failed. %v", err)
		if strings.Contains(err.Error(), "invalid keys") {
			return nil, errors.Wrap(ErrUnknownKey, err.Error())
		}
		return nil, errors.Wrap(ErrInvalidConfig, err.Error())
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func setDefaults(v *viper.Viper) {
	d := Default()
	keys := map[string]interface{}{
		"connection.host":           d.Connection.Host,
		"connection.port":           d.Connection.Port,
		"connection.password":       d.Connection.Password,
		"connection.database_index": d.Connection.DatabaseIndex,
		"connection.client_name":    d.Connection.ClientName,
		"connection.dial_timeout":   d.Connection.DialTimeout,
		"connection.read_timeout":   d.Connection.ReadTimeout,
		"connection.write_timeout":  d.Connection.WriteTimeout,
		"connection.key_prefix":     d.Connection.KeyPrefix,
		"mapper.naming_convention":  d.Mapper.NamingConvention,
		"mapper.plural_kinds":       d.Mapper.PluralKinds,
		"mapper.token_generator":    d.Mapper.TokenGenerator,
		"log.level":                 d.Log.Level,
	}
	for k, value := range keys {
		v.SetDefault(k, value)
	}
}
