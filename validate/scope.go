// Package validate walks finished script trees and collects consistency
// violations. Checks are individually toggleable through a Scope flag
// set; violations never abort the walk, structural faults do.
package validate

import "strings"

// Scope selects which checks run. Each check owns one bit; composites
// OR the bits together.
type Scope uint32

const (
	ScopePOSLookup Scope = 1 << iota
	ScopePronunciation
	ScopeUVInterval
	ScopeUVSequence
	ScopeF0Range
	ScopeF0UVType
	ScopeDurationUV
	ScopeSegmentInterval
	ScopeSegmentSequence
	ScopeSegmentDurationUV
	ScopeDurationSegment
	ScopePowerRange
)

// ScopeAcoustics selects every acoustic consistency check.
const ScopeAcoustics = ScopeUVInterval | ScopeUVSequence | ScopeF0Range |
	ScopeF0UVType | ScopeDurationUV | ScopeSegmentInterval |
	ScopeSegmentSequence | ScopeSegmentDurationUV | ScopeDurationSegment |
	ScopePowerRange

// ScopeAll selects every check.
const ScopeAll = ScopeAcoustics | ScopePOSLookup | ScopePronunciation

// Has reports whether every bit of f is set in s.
func (s Scope) Has(f Scope) bool { return s&f == f }

var scopeNames = []struct {
	bit  Scope
	name string
}{
	{ScopePOSLookup, "pos-lookup"},
	{ScopePronunciation, "pronunciation"},
	{ScopeUVInterval, "uv-interval"},
	{ScopeUVSequence, "uv-sequence"},
	{ScopeF0Range, "f0-range"},
	{ScopeF0UVType, "f0-uv-type"},
	{ScopeDurationUV, "duration-uv"},
	{ScopeSegmentInterval, "segment-interval"},
	{ScopeSegmentSequence, "segment-sequence"},
	{ScopeSegmentDurationUV, "segment-duration-uv"},
	{ScopeDurationSegment, "duration-segment"},
	{ScopePowerRange, "power-range"},
}

func (s Scope) String() string {
	if s == 0 {
		return "none"
	}
	var parts []string
	for _, e := range scopeNames {
		if s.Has(e.bit) {
			parts = append(parts, e.name)
		}
	}
	return strings.Join(parts, "|")
}
