package victoria

import (
	"github.com/koykov/rngcompat"
	"github.com/koykov/vmchain"
)

type Writer interface {
	ErrorTranslate(from, to rngcompat.Generation, tier rngcompat.Tier)
	FatalEscalation(gen rngcompat.Generation)
}

// writer is a VictoriaMetrics implementation of rngcompat.MetricsWriter.
type writer struct {
	name string
}

// NewWriter makes a new instance of metrics writer.
func NewWriter(name string) Writer {
	return &writer{name: name}
}

func (w writer) ErrorTranslate(from, to rngcompat.Generation, tier rngcompat.Tier) {
	vmchain.Counter("rngcompat_error_translate").
		WithLabel("name", w.name).
		WithLabel("from", from.String()).
		WithLabel("to", to.String()).
		WithLabel("tier", tier.String()).
		Inc()
}

func (w writer) FatalEscalation(gen rngcompat.Generation) {
	vmchain.Counter("rngcompat_fatal_escalation").WithLabel("name", w.name).WithLabel("generation", gen.String()).Inc()
}

var _ rngcompat.MetricsWriter = writer{}
