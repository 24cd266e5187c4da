package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/krysopath/pydis"
	"github.com/krysopath/pydis/codec"
	"github.com/krysopath/pydis/errors"
	"github.com/krysopath/pydis/models"
	"github.com/krysopath/pydis/store"
)

// kindDef is the known record kind with its schema and record options.
type kindDef struct {
	schema  *pydis.Schema
	options []pydis.Option
}

var kinds = map[string]kindDef{
	models.UserSchema.Kind():         {schema: models.UserSchema, options: []pydis.Option{pydis.WithBeforeWrite(models.PasswordHasher)}},
	models.SampleHolderSchema.Kind(): {schema: models.SampleHolderSchema},
	models.EventRequestSchema.Kind(): {schema: models.EventRequestSchema},
}

func newRecordCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "record",
		Short: "Read and write the record fields",
		Long: `Read and write the record fields.

The records of the known kinds (User, SampleHolder, EventRequest) use their schemas.
The fields of the other records are treated as text.`,
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "new <kind> [field=value]...",
		Short: "Create the record with generated identity",
		Long: `Create the record with generated identity and print its key.

The token is generated by the configured mapper token generator. The names of
the unknown kinds are formatted with the mapper naming convention.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return rootOpts.withStore(cmd, func(ctx context.Context, s store.Store) error {
				return runRecordNew(ctx, rootOpts.formatter(cmd), s, rootOpts.Mapper, args[0], args[1:])
			})
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "get <key> [field]...",
		Short: "Read the record fields",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return rootOpts.withStore(cmd, func(ctx context.Context, s store.Store) error {
				return runRecordGet(ctx, rootOpts.formatter(cmd), s, args[0], args[1:])
			})
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "set <key> <field=value>...",
		Short: "Write the record fields",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return rootOpts.withStore(cmd, func(ctx context.Context, s store.Store) error {
				return runRecordSet(ctx, rootOpts.formatter(cmd), s, args[0], args[1:])
			})
		},
	})
	return cmd
}

func runRecordGet(ctx context.Context, f *OutputFormatter, s store.Store, key string, fields []string) error {
	r, err := openRecord(ctx, s, key, fields)
	if err != nil {
		return err
	}
	var values []pydis.FieldValue
	if len(fields) == 0 {
		if values, err = r.All(ctx); err != nil {
			return err
		}
	} else {
		for _, name := range fields {
			value, err := r.Read(ctx, name)
			if err != nil {
				return err
			}
			values = append(values, pydis.FieldValue{Name: name, Value: value})
		}
	}
	for i, v := range values {
		if stringer, ok := v.Value.(fmt.Stringer); ok {
			values[i].Value = stringer.String()
		}
	}
	return f.Fields(values)
}

func runRecordNew(ctx context.Context, f *OutputFormatter, s store.Store, m *pydis.Mapper, kind string, pairs []string) error {
	names, values, err := parsePairs(pairs)
	if err != nil {
		return err
	}
	def, ok := kinds[kind]
	if !ok {
		if def, err = textKind(m.KindName(kind), names); err != nil {
			return err
		}
	}
	defaults := make(map[string]interface{}, len(names))
	for i, name := range names {
		defaults[name] = values[i]
	}
	options := append([]pydis.Option{pydis.WithTokenGenerator(m.TokenGenerator), pydis.WithDefaults(defaults)}, def.options...)
	r, err := pydis.NewRecord(ctx, s, def.schema, options...)
	if err != nil {
		return err
	}
	return f.Value(r.Identity().Key())
}

func runRecordSet(ctx context.Context, f *OutputFormatter, s store.Store, key string, pairs []string) error {
	names, values, err := parsePairs(pairs)
	if err != nil {
		return err
	}
	r, err := openRecord(ctx, s, key, names)
	if err != nil {
		return err
	}
	for i, name := range names {
		if err = r.Write(ctx, name, values[i]); err != nil {
			return err
		}
	}
	return f.List(names)
}

// openRecord opens the record stored under 'key'. The records of unknown kinds get the text schema
// with provided 'fields'.
func openRecord(ctx context.Context, s store.Store, key string, fields []string) (*pydis.Record, error) {
	id, err := pydis.ParseIdentity(key)
	if err != nil {
		return nil, err
	}
	def, ok := kinds[id.Kind()]
	if !ok {
		if len(fields) == 0 {
			return nil, errors.Wrapf(pydis.ErrSchema, "unknown kind: '%s' requires the field names", id.Kind())
		}
		if def, err = textKind(id.Kind(), fields); err != nil {
			return nil, err
		}
	}
	return pydis.NewRecord(ctx, s, def.schema, append([]pydis.Option{pydis.WithID(key)}, def.options...)...)
}

// textKind creates the kind with the text schema of the 'fields'. The 'id' and repeated fields are skipped.
func textKind(kind string, fields []string) (kindDef, error) {
	defs := make([]pydis.FieldDef, 0, len(fields))
	seen := make(map[string]struct{}, len(fields))
	for _, name := range fields {
		if _, ok := seen[name]; ok || name == pydis.IDField {
			continue
		}
		seen[name] = struct{}{}
		defs = append(defs, pydis.Field(name, codec.Text))
	}
	schema, err := pydis.NewSchema(kind, defs...)
	if err != nil {
		return kindDef{}, err
	}
	return kindDef{schema: schema}, nil
}

// parsePairs splits the 'field=value' pairs.
func parsePairs(pairs []string) (names, values []string, err error) {
	names = make([]string, len(pairs))
	values = make([]string, len(pairs))
	for i, pair := range pairs {
		idx := strings.IndexRune(pair, '=')
		if idx <= 0 {
			return nil, nil, fmt.Errorf("invalid field value pair: %q", pair)
		}
		names[i], values[i] = pair[:idx], pair[idx+1:]
	}
	return names, values, nil
}
