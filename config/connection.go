package config

import (
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/krysopath/pydis/errors"
)

// Connection defines the key-value store connection configuration.
type Connection struct {
	// Host defines the access hostname or the ip address.
	Host string `mapstructure:"host" validate:"required,hostname|ip"`

	// Port is the connection port.
	Port int `mapstructure:"port" validate:"min=1,max=65535"`

	// Password is the optional credential used to authenticate the connection.
	Password string `mapstructure:"password"`

	// DatabaseIndex is the store database number selected after connecting.
	DatabaseIndex int `mapstructure:"database_index" validate:"min=0"`

	// ClientName if set, is used as the prefix of the connection name. Each connection gets
	// a unique name: '<ClientName>-<uuid>'.
	ClientName string `mapstructure:"client_name"`

	// DialTimeout is the timeout for establishing new connection.
	DialTimeout time.Duration `mapstructure:"dial_timeout" validate:"min=0"`

	// ReadTimeout is the timeout for the socket reads.
	ReadTimeout time.Duration `mapstructure:"read_timeout" validate:"min=0"`

	// WriteTimeout is the timeout for the socket writes.
	WriteTimeout time.Duration `mapstructure:"write_timeout" validate:"min=0"`

	// KeyPrefix is prepended to every key used by the connection.
	KeyPrefix string `mapstructure:"key_prefix"`
}

// DefaultConnection creates the connection configuration with default values.
func DefaultConnection() *Connection {
	return &Connection{
		Host:         "localhost",
		Port:         6379,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	}
}

// Addr returns the 'host:port' address of the connection.
func (c *Connection) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// Validate validates the connection configuration.
func (c *Connection) Validate() error {
	return validate(c)
}

// Parse parses the connection settings from the string in a form of space separated
// 'key=value' pairs, i.e.: 'host=172.16.1.1 port=6379 database_index=2'.
// The keys not provided in the 's' keeps their current values. Unknown keys are rejected.
func (c *Connection) Parse(s string) error {
	for _, pair := range strings.Fields(s) {
		i := strings.IndexRune(pair, '=')
		if i <= 0 {
			return errors.Wrapf(ErrInvalidConnectionString, "invalid key value pair: '%s'", pair)
		}
		key, value := pair[:i], pair[i+1:]

		var err error
		switch key {
		case "host":
			c.Host = value
		case "port":
			c.Port, err = strconv.Atoi(value)
		case "password":
			c.Password = value
		case "database_index", "db":
			c.DatabaseIndex, err = strconv.Atoi(value)
		case "client_name":
			c.ClientName = value
		case "dial_timeout":
			c.DialTimeout, err = time.ParseDuration(value)
		case "read_timeout":
			c.ReadTimeout, err = time.ParseDuration(value)
		case "write_timeout":
			c.WriteTimeout, err = time.ParseDuration(value)
		case "key_prefix":
			c.KeyPrefix = value
		default:
			return errors.Wrapf(ErrUnknownKey, "connection key: '%s'", key)
		}
		if err != nil {
			return errors.Wrapf(ErrInvalidConnectionString, "invalid '%s' value: '%s'", key, value)
		}
	}
	return nil
}
