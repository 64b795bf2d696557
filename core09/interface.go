// Package core09 describes the 0.9 generation of the randomness source contract.
//
// Unlike the older generations, infallible and fallible access are split into
// separate interfaces, each with its own crypto marker. A fallible source
// reports failures with any error value.
package core09

// RngCore describes an infallible source. It never fails.
type RngCore interface {
	NextUint32() uint32
	NextUint64() uint64
	FillBytes(dst []byte)
}

// CryptoRng marks an infallible source suitable for security-sensitive use.
type CryptoRng interface {
	RngCore
	CryptoRngV9()
}

// TryRngCore describes a fallible source.
type TryRngCore interface {
	TryNextUint32() (uint32, error)
	TryNextUint64() (uint64, error)
	TryFillBytes(dst []byte) error
}

// TryCryptoRng marks a fallible source suitable for security-sensitive use.
type TryCryptoRng interface {
	TryRngCore
	TryCryptoRngV9()
}
