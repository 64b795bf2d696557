package rngcompat

// ErrorMode indicates how much of the source error a 0.5/0.6 error may keep.
type ErrorMode uint

const (
	// ErrorModeRich keeps the whole source error inside the destination error.
	// Conversion is lossless.
	ErrorModeRich ErrorMode = iota
	// ErrorModeMinimal keeps only a numeric code. See Tier for the fallback order.
	ErrorModeMinimal
)

func (m ErrorMode) String() string {
	switch m {
	case ErrorModeRich:
		return "rich"
	case ErrorModeMinimal:
		return "minimal"
	default:
		return "unknown"
	}
}

// Tier indicates which fallback produced the destination error.
type Tier uint

const (
	// TierRich means the whole source error was wrapped.
	TierRich Tier = iota
	// TierCode means custom code of the source error was reused.
	TierCode
	// TierOSCode means raw platform code of the source error was reused (OSError0 for zero code).
	TierOSCode
	// TierUnknown means nothing was extracted and Unknown code was used.
	TierUnknown
	// TierPass means error was passed as is to 0.9 interface.
	TierPass
)

func (t Tier) String() string {
	switch t {
	case TierRich:
		return "rich"
	case TierCode:
		return "code"
	case TierOSCode:
		return "os_code"
	case TierUnknown:
		return "unknown"
	case TierPass:
		return "pass"
	default:
		return "invalid"
	}
}
