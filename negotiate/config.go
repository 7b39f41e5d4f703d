package negotiate

const (
	// DefaultInitialSize is the first capacity tried by Grow.
	DefaultInitialSize = 256
	// DefaultMaxSize caps the capacity of any buffer a strategy allocates.
	DefaultMaxSize = 1 << 20
	// DefaultMaxAttempts caps the number of fills per negotiation.
	DefaultMaxAttempts = 16
	// DefaultGrowthFactor multiplies the capacity after each too-small fill.
	DefaultGrowthFactor = 2
)

// Config holds negotiation limits. Zero values mean the documented defaults.
type Config struct {
	InitialSize  int
	MaxSize      int
	MaxAttempts  int
	GrowthFactor int
	TooSmall     TooSmall
}

// Option configures a Strategy.
type Option func(*Config)

// WithInitialSize sets the first capacity tried.
func WithInitialSize(n int) Option {
	return func(c *Config) {
		c.InitialSize = n
	}
}

// WithMaxSize sets the largest capacity that will be allocated.
func WithMaxSize(n int) Option {
	return func(c *Config) {
		c.MaxSize = n
	}
}

// WithMaxAttempts sets the maximum number of fills.
func WithMaxAttempts(n int) Option {
	return func(c *Config) {
		c.MaxAttempts = n
	}
}

// WithGrowthFactor sets the capacity multiplier. Values below 2 are raised
// to 2 so that every retry makes progress.
func WithGrowthFactor(f int) Option {
	return func(c *Config) {
		c.GrowthFactor = f
	}
}

// WithTooSmall sets the predicate that recognizes a too-small buffer.
func WithTooSmall(p TooSmall) Option {
	return func(c *Config) {
		c.TooSmall = p
	}
}

func newConfig(opts []Option) Config {
	var c Config
	for _, opt := range opts {
		opt(&c)
	}
	if c.MaxSize <= 0 {
		c.MaxSize = DefaultMaxSize
	}
	if c.InitialSize <= 0 {
		c.InitialSize = DefaultInitialSize
	}
	c.InitialSize = min(c.InitialSize, c.MaxSize)
	if c.MaxAttempts <= 0 {
		c.MaxAttempts = DefaultMaxAttempts
	}
	if c.GrowthFactor < 2 {
		c.GrowthFactor = DefaultGrowthFactor
	}
	if c.TooSmall == nil {
		c.TooSmall = RangeError
	}
	return c
}

// next returns the capacity after size, never exceeding MaxSize.
func (c Config) next(size int) int {
	if size > c.MaxSize/c.GrowthFactor {
		return c.MaxSize
	}
	return max(size*c.GrowthFactor, 1)
}
