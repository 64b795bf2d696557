package rngcompat

import (
	"errors"

	"github.com/koykov/rngcompat/core05"
	"github.com/koykov/rngcompat/core06"
)

// Coder describes an error carrying custom numeric code.
//
// Both core05.Error and core06.Error implement it. A 0.9 error implementing Coder
// (directly or via its chain) is not opaque and keeps its code in minimal mode.
type Coder interface {
	Code() (uint32, bool)
}

// OSCoder describes an error carrying raw platform code.
type OSCoder interface {
	RawOSError() (int32, bool)
}

// Error09 wraps a 0.9 error stored inside a 0.5/0.6 error in rich mode.
type Error09 struct {
	Err error
}

func (e Error09) Error() string {
	return e.Err.Error()
}

func (e Error09) Unwrap() error {
	return e.Err
}

// Translator converts errors of generation From to generation To.
// Implementations are zero-size policies used as type params of adapters.
type Translator[SE, DE any] interface {
	Translate(err SE) DE
	From() Generation
	To() Generation
}

// Error05To06 converts 0.5 error to 0.6 error.
func Error05To06(err *core05.Error) *core06.Error {
	if err == nil {
		return nil
	}
	c := Active()
	if c.ErrorMode == ErrorModeRich {
		c.m().ErrorTranslate(G5, G6, TierRich)
		return core06.New(inner(err))
	}
	code, tier := degrade(err)
	c.observe(G5, G6, tier, err)
	return core06.MustCode(code)
}

// Error06To05 converts 0.6 error to 0.5 error.
func Error06To05(err *core06.Error) *core05.Error {
	if err == nil {
		return nil
	}
	c := Active()
	if c.ErrorMode == ErrorModeRich {
		c.m().ErrorTranslate(G6, G5, TierRich)
		return core05.New(inner(err))
	}
	code, tier := degrade(err)
	c.observe(G6, G5, tier, err)
	return core05.MustCode(code)
}

// Error09To05 converts 0.9 error to 0.5 error.
//
// In minimal mode an opaque error always becomes Unknown.
func Error09To05(err error) *core05.Error {
	if err == nil {
		return nil
	}
	c := Active()
	if c.ErrorMode == ErrorModeRich {
		c.m().ErrorTranslate(G9, G5, TierRich)
		return core05.New(Error09{Err: err})
	}
	code, tier := degradeOpaque(err)
	c.observe(G9, G5, tier, err)
	return core05.MustCode(code)
}

// Error09To06 converts 0.9 error to 0.6 error.
//
// In minimal mode an opaque error always becomes Unknown.
func Error09To06(err error) *core06.Error {
	if err == nil {
		return nil
	}
	c := Active()
	if c.ErrorMode == ErrorModeRich {
		c.m().ErrorTranslate(G9, G6, TierRich)
		return core06.New(Error09{Err: err})
	}
	code, tier := degradeOpaque(err)
	c.observe(G9, G6, tier, err)
	return core06.MustCode(code)
}

// Error05To09 presents 0.5 error as 0.9 error. The value passes unchanged.
func Error05To09(err *core05.Error) error {
	if err == nil {
		return nil
	}
	Active().m().ErrorTranslate(G5, G9, TierPass)
	return err
}

// Error06To09 presents 0.6 error as 0.9 error. The value passes unchanged.
func Error06To09(err *core06.Error) error {
	if err == nil {
		return nil
	}
	Active().m().ErrorTranslate(G6, G9, TierPass)
	return err
}

// Translation policies.
type (
	Translate5to6 struct{}
	Translate6to5 struct{}
	Translate9to5 struct{}
	Translate9to6 struct{}
	Translate5to9 struct{}
	Translate6to9 struct{}
)

func (Translate5to6) Translate(err *core05.Error) *core06.Error { return Error05To06(err) }
func (Translate5to6) From() Generation                          { return G5 }
func (Translate5to6) To() Generation                            { return G6 }

func (Translate6to5) Translate(err *core06.Error) *core05.Error { return Error06To05(err) }
func (Translate6to5) From() Generation                          { return G6 }
func (Translate6to5) To() Generation                            { return G5 }

func (Translate9to5) Translate(err error) *core05.Error { return Error09To05(err) }
func (Translate9to5) From() Generation                  { return G9 }
func (Translate9to5) To() Generation                    { return G5 }

func (Translate9to6) Translate(err error) *core06.Error { return Error09To06(err) }
func (Translate9to6) From() Generation                  { return G9 }
func (Translate9to6) To() Generation                    { return G6 }

func (Translate5to9) Translate(err *core05.Error) error { return Error05To09(err) }
func (Translate5to9) From() Generation                  { return G5 }
func (Translate5to9) To() Generation                    { return G9 }

func (Translate6to9) Translate(err *core06.Error) error { return Error06To09(err) }
func (Translate6to9) From() Generation                  { return G6 }
func (Translate6to9) To() Generation                    { return G9 }

// Take inner error of rich representation or the error itself.
func inner(err interface {
	error
	Inner() error
}) error {
	if in := err.Inner(); in != nil {
		return in
	}
	return err
}

// Minimal mode fallback: custom code, then platform code, then Unknown.
func degrade(err error) (uint32, Tier) {
	if c, ok := err.(Coder); ok {
		if code, ok := c.Code(); ok && code != 0 {
			return code, TierCode
		}
	}
	if c, ok := err.(OSCoder); ok {
		if raw, ok := c.RawOSError(); ok {
			if raw == 0 {
				// Zero is a valid platform code, but not a valid error code.
				return OSError0, TierOSCode
			}
			return uint32(raw), TierOSCode
		}
	}
	return Unknown, TierUnknown
}

func degradeOpaque(err error) (uint32, Tier) {
	var c Coder
	if errors.As(err, &c) {
		if e, ok := c.(error); ok {
			return degrade(e)
		}
	}
	return Unknown, TierUnknown
}

func (c *Config) observe(from, to Generation, tier Tier, err error) {
	c.m().ErrorTranslate(from, to, tier)
	if tier == TierUnknown && c.l() != nil {
		c.l().Printf("rngcompat: %s error \"%s\" has no code, %s error gets code %d\n", from, err.Error(), to, Unknown)
	}
}
