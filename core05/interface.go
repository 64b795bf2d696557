// Package core05 describes the 0.5 generation of the randomness source contract.
//
// The generation unifies infallible and fallible access in one interface: a
// source exposes three infallible methods and a single fallible fill.
package core05

// RngCore describes the 0.5 generation randomness source.
type RngCore interface {
	// NextUint32 returns the next random uint32.
	NextUint32() uint32
	// NextUint64 returns the next random uint64.
	NextUint64() uint64
	// FillBytes fills dst completely. The source decides what to do on failure.
	FillBytes(dst []byte)
	// TryFillBytes fills dst completely or reports why it could not.
	TryFillBytes(dst []byte) *Error
}

// CryptoRng marks a source suitable for security-sensitive use.
type CryptoRng interface {
	RngCore
	CryptoRngV5()
}
