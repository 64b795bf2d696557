package rngcompat

// DummyMetrics is a stub metrics writer handler that uses by default and does nothing.
// Need just to reduce checks in code.
type DummyMetrics struct{}

func (DummyMetrics) ErrorTranslate(_, _ Generation, _ Tier) {}
func (DummyMetrics) FatalEscalation(_ Generation)           {}
