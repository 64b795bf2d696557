package log

import (
	"log"

	"github.com/koykov/rngcompat"
)

// LogMetrics is Log implementation of rngcompat.MetricsWriter.
//
// Don't use in production. Only for debug purposes.
type LogMetrics struct {
	name string
}

var _ = NewLogMetrics

func NewLogMetrics(name string) *LogMetrics {
	m := &LogMetrics{name}
	return m
}

func (m LogMetrics) ErrorTranslate(from, to rngcompat.Generation, tier rngcompat.Tier) {
	log.Printf("rngcompat %s: %s error translated to %s using %s tier\n", m.name, from, to, tier)
}

func (m LogMetrics) FatalEscalation(gen rngcompat.Generation) {
	log.Printf("rngcompat %s: source failure escalated behind %s interface\n", m.name, gen)
}

var _ rngcompat.MetricsWriter = LogMetrics{}
