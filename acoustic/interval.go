// Package acoustic holds the acoustic annotations carried by the script
// tree: durations, segment intervals, unvoiced/voiced segments with their
// sample contours, and the tagged wire codec for sample arrays.
//
// The package does no signal processing; it only stores and transports
// values produced elsewhere.
package acoustic

import "github.com/ieee0824/ttscript-go/scripterr"

// TimeInterval is a half-open [begin, end) span in milliseconds.
// begin >= 0 and end > begin hold for every constructed value; violating
// bounds are rejected at the boundary, never detected later. The zero
// value is not a valid interval and is reported by the validator.
type TimeInterval struct {
	begin float64
	end   float64
}

// NewTimeInterval builds an interval, rejecting begin < 0 or end <= begin.
func NewTimeInterval(begin, end float64) (TimeInterval, error) {
	if begin < 0 {
		return TimeInterval{}, scripterr.Structuralf("interval begin %g is negative", begin)
	}
	if end <= begin {
		return TimeInterval{}, scripterr.Structuralf("interval end %g does not follow begin %g", end, begin)
	}
	return TimeInterval{begin: begin, end: end}, nil
}

// Begin returns the interval start in milliseconds.
func (iv TimeInterval) Begin() float64 { return iv.begin }

// End returns the interval end in milliseconds.
func (iv TimeInterval) End() float64 { return iv.end }

// Duration returns end - begin.
func (iv TimeInterval) Duration() float64 { return iv.end - iv.begin }

// Valid reports whether iv was built through NewTimeInterval rather than
// left as a zero value.
func (iv TimeInterval) Valid() bool { return iv.begin >= 0 && iv.end > iv.begin }

// Shift returns the interval moved by the given offset, subject to the
// same bounds as construction.
func (iv TimeInterval) Shift(by float64) (TimeInterval, error) {
	return NewTimeInterval(iv.begin+by, iv.end+by)
}
