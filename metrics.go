package rngcompat

// MetricsWriter describes adapters metrics handler.
type MetricsWriter interface {
	// ErrorTranslate registers error conversion between generations using given tier.
	ErrorTranslate(from, to Generation, tier Tier)
	// FatalEscalation registers source failure escalated to panic behind interface of generation gen.
	FatalEscalation(gen Generation)
}
