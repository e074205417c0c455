package acoustic

// UVKind classifies an unvoiced/voiced segment. The zero value is a
// sentinel for "not yet classified"; validation treats it as a structural
// fault because an unclassified segment cannot be meaningfully checked.
type UVKind int

const (
	UVKindUnset UVKind = iota
	UVKindUnvoiced
	UVKindVoiced
)

func (k UVKind) String() string {
	switch k {
	case UVKindUnvoiced:
		return "unvoiced"
	case UVKindVoiced:
		return "voiced"
	}
	return "unset"
}

// Contour is an acoustic sample contour carried in raw and quantized
// forms. Samples are transported through the codec in this package.
type Contour struct {
	Raw       []float32
	Quantized []float32
}

// UVSegment is one unvoiced or voiced stretch within a Block. Its
// interval is relative to the block start.
type UVSegment struct {
	Kind     UVKind
	Interval TimeInterval
	F0       *Contour
	Power    *Contour
}

// Block is the optional acoustic annotation attached to a word, syllable
// or phone: a total duration, absolute-ms segment intervals, and relative
// unvoiced/voiced segments.
type Block struct {
	Duration          float64 // total duration in ms; 0 means unset
	QuantizedDuration float64
	Segments          []TimeInterval // absolute ms
	UV                []UVSegment
}

// HasDuration reports whether a total duration was set.
func (b *Block) HasDuration() bool { return b != nil && b.Duration > 0 }
