package extend

// defaultTrimLimit is the distilled spec's trim quadratic-blowup cutoff
// (§4.2): selector lists longer than this are returned from trim unchanged
// rather than run through the O(n^2) superselector comparison.
const defaultTrimLimit = 100

// Config holds the store's tunables. Grounded on the reference compiler's
// Parse/Eval option structs (contexts.go), but built from functional options
// rather than a map[string]any copied in by reflection: that map-of-any
// shape exists in the reference repo only because it mirrors a JS options
// object, which has no Go-native justification here.
type Config struct {
	TrimLimit int
	Logger    Logger
}

func DefaultConfig() Config {
	return Config{
		TrimLimit: defaultTrimLimit,
		Logger:    NopLogger{},
	}
}

// Option configures a Config in place.
type Option func(*Config)

// WithTrimLimit overrides trim's quadratic-blowup cutoff. A limit <= 0
// disables trimming's size guard (every selector list is fully trimmed,
// however large).
func WithTrimLimit(limit int) Option {
	return func(c *Config) { c.TrimLimit = limit }
}

// WithLogger overrides the store's diagnostic sink.
func WithLogger(l Logger) Option {
	return func(c *Config) {
		if l != nil {
			c.Logger = l
		}
	}
}

func applyOptions(opts []Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
