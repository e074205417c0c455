package validate

import (
	"fmt"
	"strings"
)

// Kind labels one class of validation finding.
type Kind string

const (
	KindUvSegOrder         Kind = "UvSegOrderError"
	KindUvSegOverlap       Kind = "UvSegOverlapError"
	KindUvSegInterval      Kind = "UvSegIntervalError"
	KindSegmentInterval    Kind = "SegmentIntervalError"
	KindSegmentSequence    Kind = "SegmentSequenceError"
	KindF0Range            Kind = "F0RangeError"
	KindF0AndUvType        Kind = "F0AndUvTypeError"
	KindDurationAndUv      Kind = "DurationAndUvError"
	KindDurationAndSegment Kind = "DurationAndSegmentError"
	KindSegmentAndUv       Kind = "SegmentAndUvError"
	KindPowerRange         Kind = "PowerRangeError"
	KindUnrecognizedPos    Kind = "UnrecognizedPos"
	KindPronunciation      Kind = "PronunciationError"
)

// Violation is one collected validation finding. Params carry
// kind-specific positional values, for example (duration, firstBegin,
// lastEnd) for a duration/segment mismatch.
type Violation struct {
	Kind   Kind
	ItemID string
	Path   string // dotted path through the tree, e.g. Sentence[0].Word[2].Syllable[1]
	Params []float64
	Detail string
}

func (v Violation) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s: item %s: %s", v.Kind, v.ItemID, v.Path)
	if len(v.Params) > 0 {
		sb.WriteString(" (")
		for i, p := range v.Params {
			if i > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%g", p)
		}
		sb.WriteString(")")
	}
	if v.Detail != "" {
		sb.WriteString(": ")
		sb.WriteString(v.Detail)
	}
	return sb.String()
}
