package rngcompat

// Forward presents a source of one legacy generation as another legacy generation.
//
// Both generations have the same shape, so each call goes straight to the
// source. Only TryFillBytes error passes through translator X.
type Forward[S Legacy[SE], SE, DE any, X Translator[SE, DE]] struct {
	Src S
}

func (f *Forward[S, SE, DE, X]) NextUint32() uint32 {
	return f.Src.NextUint32()
}

func (f *Forward[S, SE, DE, X]) NextUint64() uint64 {
	return f.Src.NextUint64()
}

func (f *Forward[S, SE, DE, X]) FillBytes(dst []byte) {
	f.Src.FillBytes(dst)
}

func (f *Forward[S, SE, DE, X]) TryFillBytes(dst []byte) DE {
	var x X
	return x.Translate(f.Src.TryFillBytes(dst))
}
