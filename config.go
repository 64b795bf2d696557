package rngcompat

import "sync/atomic"

// Config describes which generations are active and how errors are translated between them.
//
// Selection has no influence on adapters behavior; it only tells which pairs
// are expected to be used and which error tier applies.
type Config struct {
	// Active generations.
	// At least one is mandatory.
	Generations Generations
	// Error translation mode. See ErrorMode.
	// If this param omit ErrorModeRich will use instead.
	ErrorMode ErrorMode

	// Metrics writer handler.
	MetricsWriter MetricsWriter

	// Logger handler.
	Logger Logger
}

var active atomic.Pointer[Config]

// DefaultConfig returns config with all generations active and rich errors.
func DefaultConfig() *Config {
	return &Config{
		Generations: AllGenerations(),
		ErrorMode:   ErrorModeRich,
	}
}

// Copy copies config instance to protect it from changing params after Setup.
func (c *Config) Copy() *Config {
	cpy := *c
	return &cpy
}

// Validate checks config params.
func (c *Config) Validate() error {
	if c.Generations.Len() == 0 {
		return ErrNoGeneration
	}
	if c.ErrorMode != ErrorModeRich && c.ErrorMode != ErrorModeMinimal {
		return ErrBadMode
	}
	return nil
}

// Setup installs config for all adapters and translators.
// Supposed to be called once at startup; later modifications of conf have no effect.
func Setup(conf *Config) error {
	if err := conf.Validate(); err != nil {
		return err
	}
	cpy := conf.Copy()
	if cpy.MetricsWriter == nil {
		cpy.MetricsWriter = DummyMetrics{}
	}
	active.Store(cpy)
	if cpy.Logger != nil {
		cpy.Logger.Printf("rngcompat: generations %s, %s errors\n", cpy.Generations.String(), cpy.ErrorMode)
	}
	return nil
}

// Active returns installed config or default one if Setup wasn't called.
func Active() *Config {
	if c := active.Load(); c != nil {
		return c
	}
	c := DefaultConfig()
	c.MetricsWriter = DummyMetrics{}
	active.CompareAndSwap(nil, c)
	return active.Load()
}

// Enabled checks if generation g is active.
func Enabled(g Generation) bool {
	return Active().Generations.Has(g)
}

// Supports checks if both generations of the pair are active.
func Supports(from, to Generation) bool {
	c := Active()
	return c.Generations.Has(from) && c.Generations.Has(to)
}

// Expect reports to the logger adapter between inactive generations.
func Expect(from, to Generation) {
	c := Active()
	if c.Generations.Has(from) && c.Generations.Has(to) {
		return
	}
	if c.l() != nil {
		c.l().Printf("rngcompat: adapter %s -> %s used, but active generations are %s\n", from, to, c.Generations.String())
	}
}

func (c *Config) m() MetricsWriter {
	return c.MetricsWriter
}

func (c *Config) l() Logger {
	return c.Logger
}
