package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/krysopath/pydis"
	"github.com/krysopath/pydis/errors"
	"github.com/krysopath/pydis/store"
)

// FindOptions holds the find command flags.
type FindOptions struct {
	Prefix string
	Limit  int
	Offset int
}

func newExistsCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "exists <key>",
		Short: "Check if the object is stored",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return rootOpts.withStore(cmd, func(ctx context.Context, s store.Store) error {
				exists, err := s.Exists(ctx, args[0])
				if err != nil {
					return err
				}
				return rootOpts.formatter(cmd).Value(exists)
			})
		},
	}
}

func newDeleteCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <key>...",
		Short: "Delete the objects",
		Long:  "Delete the objects stored under given keys. The child sequences needs to be deleted separately.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return rootOpts.withStore(cmd, func(ctx context.Context, s store.Store) error {
				var errs errors.MultiError
				deleted := []string{}
				for _, key := range args {
					if err := s.Delete(ctx, key); err != nil {
						errs = append(errs, errors.Wrapf(err, "deleting: '%s'", key))
						continue
					}
					deleted = append(deleted, key)
				}
				if err := rootOpts.formatter(cmd).List(deleted); err != nil {
					return err
				}
				return errs.ErrorOrNil()
			})
		},
	}
}

func newFindCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &FindOptions{}
	cmd := &cobra.Command{
		Use:   "find <kind>",
		Short: "List the identities of the objects of given kind",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return rootOpts.withStore(cmd, func(ctx context.Context, s store.Store) error {
				ids, err := pydis.Find(ctx, s, args[0],
					store.WithFindPrefix(opts.Prefix),
					store.WithFindLimit(opts.Limit),
					store.WithFindOffset(opts.Offset),
				)
				if err != nil {
					return err
				}
				keys := make([]string, len(ids))
				for i, id := range ids {
					keys[i] = id.Key()
				}
				return rootOpts.formatter(cmd).List(keys)
			})
		},
	}
	cmd.Flags().StringVar(&opts.Prefix, "prefix", "", "token prefix")
	cmd.Flags().IntVar(&opts.Limit, "limit", 0, "maximum number of identities (0 - no limit)")
	cmd.Flags().IntVar(&opts.Offset, "offset", 0, "number of identities to skip")
	return cmd
}
