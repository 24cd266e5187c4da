package redis

import (
	"context"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/krysopath/pydis/config"
	"github.com/krysopath/pydis/errors"
	"github.com/krysopath/pydis/log"
	"github.com/krysopath/pydis/store"
)

var logger = log.NewModuleLogger("redis-store")

var _ store.Factory = &Factory{}

// Factory creates new configured redis store connections.
type Factory struct {
	Connection *config.Connection
	options    []store.Option
}

// NewFactory creates new redis store factory for the 'conn' configuration.
// The 'options' are applied to each created store.
func NewFactory(conn *config.Connection, options ...store.Option) (*Factory, error) {
	if conn == nil {
		return nil, errors.Wrap(config.ErrInvalidConfig, "no connection configuration provided")
	}
	if err := conn.Validate(); err != nil {
		return nil, err
	}
	return &Factory{Connection: conn, options: options}, nil
}

// Connect implements store.Factory interface. Each call creates new store with its own client
// and checks the connection.
func (f *Factory) Connect(ctx context.Context) (store.Store, error) {
	s := NewStore(f.Connection, f.options...)
	if err := s.Dial(ctx); err != nil {
		_ = s.Close(ctx)
		return nil, err
	}
	return s, nil
}

// NewStore creates new redis store for provided 'conn' configuration. The connection is not checked
// until the Dial method is called.
func NewStore(conn *config.Connection, options ...store.Option) *Store {
	o := store.DefaultOptions()
	if conn.KeyPrefix != "" {
		o.Prefix = conn.KeyPrefix
	}
	for _, option := range options {
		option(o)
	}
	redisOptions := &redis.Options{
		Addr:             conn.Addr(),
		Password:         conn.Password,
		DB:               conn.DatabaseIndex,
		DialTimeout:      conn.DialTimeout,
		ReadTimeout:      conn.ReadTimeout,
		WriteTimeout:     conn.WriteTimeout,
		DisableIndentity: true,
	}
	if conn.ClientName != "" {
		redisOptions.ClientName = conn.ClientName + "-" + uuid.New().String()
	}
	s := &Store{
		Options: o,
		name:    redisOptions.ClientName,
		client:  redis.NewClient(redisOptions),
	}
	logger.Debugf("new redis store: '%s' at: %s db: %d", s.name, conn.Addr(), conn.DatabaseIndex)
	return s
}
