package pydis

// Options are the object creation options.
type Options struct {
	// ID is the object identity token or the full key. Empty ID gets generated.
	ID string
	// Kind overrides the default kind of the object.
	Kind string
	// Defaults are the record field values written on creation. Not used by the sequences.
	Defaults map[string]interface{}
	// TokenGenerator generates the token when no ID is provided.
	TokenGenerator TokenGenerator
	// BeforeWrite is the record hook that transforms the values before they are stored.
	BeforeWrite BeforeWriter
}

// Option is the function that sets up the object options.
type Option func(o *Options)

func newOptions(options []Option) *Options {
	o := &Options{}
	for _, option := range options {
		option(o)
	}
	return o
}

// WithID sets the identity token or the full 'Kind:token' key of the object.
func WithID(id string) Option {
	return func(o *Options) {
		o.ID = id
	}
}

// WithKind sets the kind of the object.
func WithKind(kind string) Option {
	return func(o *Options) {
		o.Kind = kind
	}
}

// WithDefaults sets the record field values written on creation. Subsequent calls merge the values.
func WithDefaults(defaults map[string]interface{}) Option {
	return func(o *Options) {
		if o.Defaults == nil {
			o.Defaults = map[string]interface{}{}
		}
		for k, v := range defaults {
			o.Defaults[k] = v
		}
	}
}

// WithTokenGenerator sets the identity token generator.
func WithTokenGenerator(gen TokenGenerator) Option {
	return func(o *Options) {
		o.TokenGenerator = gen
	}
}

// WithBeforeWrite sets the record before write hook.
func WithBeforeWrite(hook BeforeWriter) Option {
	return func(o *Options) {
		o.BeforeWrite = hook
	}
}
