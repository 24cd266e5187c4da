package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/krysopath/pydis"
	"github.com/krysopath/pydis/config"
	"github.com/krysopath/pydis/errors"
	"github.com/krysopath/pydis/log"
	"github.com/krysopath/pydis/store"
	"github.com/krysopath/pydis/store/redis"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	ConfigFile string
	Connection string
	Format     string // "yaml" | "text"
	Verbose    bool

	// Config is the configuration loaded before any command runs.
	Config *config.Config
	// Mapper names and identifies the created objects. It is built from the Config.
	Mapper *pydis.Mapper
	// Factory creates the store connections. If nil, the redis factory is created from the Config.
	Factory store.Factory
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"yaml", "text"}

// NewRootCommand creates the root command for the pydisctl CLI.
func NewRootCommand() *cobra.Command {
	return newRootCommand(&RootOptions{})
}

func newRootCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pydisctl",
		Short: "pydisctl - inspect and edit pydis objects",
		Long:  "A command line tool for inspecting and editing the records and sequences stored by pydis.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			return opts.load()
		},
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVarP(&opts.ConfigFile, "config", "c", "", "config file path (default: pydis.yaml in . or configs)")
	cmd.PersistentFlags().StringVar(&opts.Connection, "connection", "", "connection settings, i.e.: 'host=localhost port=6379 db=0'")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "yaml", "output format (yaml|text)")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")

	cmd.AddCommand(newExistsCommand(opts))
	cmd.AddCommand(newDeleteCommand(opts))
	cmd.AddCommand(newFindCommand(opts))
	cmd.AddCommand(newRecordCommand(opts))
	cmd.AddCommand(newListCommand(opts))
	return cmd
}

// Execute runs the root command.
func Execute() error {
	return NewRootCommand().Execute()
}

func (o *RootOptions) load() (err error) {
	if o.Config == nil {
		switch {
		case o.ConfigFile != "":
			o.Config, err = config.ReadConfigFile(o.ConfigFile)
		default:
			o.Config, err = config.ReadConfig()
			if err != nil {
				log.Debugf("no config file found, using defaults: %v", err)
				o.Config, err = config.ReadDefaultConfig()
			}
		}
		if err != nil {
			return err
		}
	}
	if o.Connection != "" {
		if err = o.Config.Connection.Parse(o.Connection); err != nil {
			return err
		}
	}

	if o.Mapper, err = pydis.NewMapper(o.Config.Mapper); err != nil {
		return err
	}

	if log.Logger() == nil {
		log.Default()
	}
	level := log.ParseLevel(o.Config.Log.Level)
	if o.Verbose {
		level = log.LDEBUG
	}
	return log.SetLevel(level)
}

func (o *RootOptions) connect(ctx context.Context) (store.Store, error) {
	if o.Factory == nil {
		f, err := redis.NewFactory(o.Config.Connection)
		if err != nil {
			return nil, err
		}
		o.Factory = f
	}
	s, err := o.Factory.Connect(ctx)
	if err != nil {
		return nil, errors.Wrapf(err, "connecting to: %s", o.Config.Connection.Addr())
	}
	return s, nil
}

// withStore connects to the store, runs the 'fn' and closes the connection.
func (o *RootOptions) withStore(cmd *cobra.Command, fn func(ctx context.Context, s store.Store) error) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	s, err := o.connect(ctx)
	if err != nil {
		return err
	}
	defer s.Close(ctx)
	return fn(ctx, s)
}

func (o *RootOptions) formatter(cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{Format: o.Format, Writer: cmd.OutOrStdout()}
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}
