package knip

// Output is what a plugin returns: either a configuration fragment or no contribution.
// The zero value is "no contribution".
type Output struct {
	config  Config
	present bool
}

// Some wraps a fragment. A nil config becomes an empty one.
func Some(config Config) Output {
	if config == nil {
		config = Config{}
	}
	return Output{config: config, present: true}
}

// None means the plugin contributes nothing.
func None() Output {
	return Output{}
}

// Get returns the fragment and whether there is one.
func (o Output) Get() (Config, bool) {
	return o.config, o.present
}

// IsNone reports whether the output carries no fragment.
func (o Output) IsNone() bool {
	return !o.present
}

// OrEmpty returns the fragment, or an empty config for None.
func (o Output) OrEmpty() Config {
	if !o.present {
		return Config{}
	}
	return o.config
}
