package cli

import (
	"context"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/krysopath/pydis"
	"github.com/krysopath/pydis/codec"
	"github.com/krysopath/pydis/store"
)

// ListOptions holds the list command flags.
type ListOptions struct {
	Left bool
}

func newListCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ListOptions{}
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Read and modify the sequences",
	}
	cmd.PersistentFlags().BoolVar(&opts.Left, "left", false, "push or pop at the head of the sequence")

	rangeCmd := &cobra.Command{
		Use:   "range <key> [start] [end]",
		Short: "Read the sequence items between start and end, both inclusive",
		Long: `Read the sequence items between start and end, both inclusive.

Negative indices count from the end of the sequence, i.e.: 'list range Sequence:letters -2 -1'.`,
		Args: cobra.RangeArgs(1, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			bounds := []int64{0, -1}
			for i, arg := range args[1:] {
				v, err := strconv.ParseInt(arg, 10, 64)
				if err != nil {
					return err
				}
				bounds[i] = v
			}
			return withSequence(rootOpts, cmd, args[0], func(ctx context.Context, seq *pydis.Sequence[string]) error {
				items, err := seq.Range(ctx, bounds[0], bounds[1])
				if err != nil {
					return err
				}
				return rootOpts.formatter(cmd).List(items)
			})
		},
	}
	// The flags must precede the arguments so the negative indices are not parsed as flags.
	rangeCmd.Flags().SetInterspersed(false)
	cmd.AddCommand(rangeCmd)
	cmd.AddCommand(&cobra.Command{
		Use:   "len <key>",
		Short: "Get the sequence length",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSequence(rootOpts, cmd, args[0], func(ctx context.Context, seq *pydis.Sequence[string]) error {
				length, err := seq.Len(ctx)
				if err != nil {
					return err
				}
				return rootOpts.formatter(cmd).Value(length)
			})
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "push <key> <value>...",
		Short: "Push the values into the sequence",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSequence(rootOpts, cmd, args[0], func(ctx context.Context, seq *pydis.Sequence[string]) error {
				if !opts.Left {
					if err := seq.Extend(ctx, args[1:]...); err != nil {
						return err
					}
				} else {
					for _, v := range args[1:] {
						if err := seq.PushLeft(ctx, v); err != nil {
							return err
						}
					}
				}
				length, err := seq.Len(ctx)
				if err != nil {
					return err
				}
				return rootOpts.formatter(cmd).Value(length)
			})
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "pop <key>",
		Short: "Pop the value from the sequence",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSequence(rootOpts, cmd, args[0], func(ctx context.Context, seq *pydis.Sequence[string]) error {
				pop := seq.PopRight
				if opts.Left {
					pop = seq.PopLeft
				}
				v, err := pop(ctx)
				if err != nil {
					return err
				}
				return rootOpts.formatter(cmd).Value(v)
			})
		},
	})
	return cmd
}

func withSequence(rootOpts *RootOptions, cmd *cobra.Command, key string, fn func(ctx context.Context, seq *pydis.Sequence[string]) error) error {
	if _, err := pydis.ParseIdentity(key); err != nil {
		return err
	}
	return rootOpts.withStore(cmd, func(ctx context.Context, s store.Store) error {
		seq, err := pydis.NewSequence[string](ctx, s, codec.Text, nil, pydis.WithID(key))
		if err != nil {
			return err
		}
		return fn(ctx, seq)
	})
}
