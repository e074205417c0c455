package validate

import (
	"fmt"
	"math"
	"strings"

	"github.com/ieee0824/ttscript-go/acoustic"
	"github.com/ieee0824/ttscript-go/language"
	"github.com/ieee0824/ttscript-go/script"
	"github.com/ieee0824/ttscript-go/scripterr"
)

// durEps absorbs float rounding when comparing accumulated durations.
const durEps = 1e-6

// Levels of the three independent segment-sequence streams.
const (
	levelWord = iota
	levelSyllable
	levelPhone
	numLevels
)

// Engine runs the scope-selected checks over script trees. Violations go
// into a caller-owned collection; only structural faults abort an item.
type Engine struct {
	cfg   *language.Config
	scope Scope
}

// NewEngine creates an engine running the checks selected by scope.
func NewEngine(cfg *language.Config, scope Scope) *Engine {
	return &Engine{cfg: cfg, scope: scope}
}

// Scope returns the configured check selection.
func (e *Engine) Scope() Scope { return e.scope }

// CheckItems validates items in order. A structural fault (duplicate id,
// sentinel kind, broken cache rebuild) fails only the offending item;
// the remaining items are still checked. The returned map holds the
// per-item failures by id.
func (e *Engine) CheckItems(items []*script.Item, errs *[]Violation) map[string]error {
	failed := make(map[string]error)
	seen := make(map[string]bool, len(items))
	for _, it := range items {
		if seen[it.ID] {
			failed[it.ID] = scripterr.Structuralf("duplicate item id %q", it.ID)
			continue
		}
		seen[it.ID] = true
		if err := e.CheckItem(it, errs); err != nil {
			failed[it.ID] = err
		}
	}
	return failed
}

// CheckItem walks one item, appending violations to errs. The returned
// error is a structural fault; partial findings already appended stay in
// errs.
func (e *Engine) CheckItem(it *script.Item, errs *[]Violation) error {
	w := &walker{e: e, itemID: it.ID, errs: errs}
	for si, s := range it.Sentences {
		if err := w.sentence(si, s); err != nil {
			return err
		}
	}
	return nil
}

// walker carries one item's walk state: the error sink and the three
// running segment-stream counters.
type walker struct {
	e      *Engine
	itemID string
	errs   *[]Violation

	prevSegEnd [numLevels]float64
}

func (w *walker) report(kind Kind, path string, params []float64, detail string) {
	*w.errs = append(*w.errs, Violation{
		Kind:   kind,
		ItemID: w.itemID,
		Path:   path,
		Params: params,
		Detail: detail,
	})
}

func (w *walker) sentence(si int, s *script.Sentence) error {
	path := fmt.Sprintf("Sentence[%d]", si)
	words, err := s.Words()
	if err != nil {
		if se, ok := err.(*scripterr.StructuralError); ok {
			return se.At(w.itemID, path)
		}
		return fmt.Errorf("%s: %w", path, err)
	}
	for wi, word := range words {
		wpath := fmt.Sprintf("%s.Word[%d]", path, wi)
		if err := w.word(wpath, word); err != nil {
			return err
		}
	}
	return nil
}

func (w *walker) word(path string, word *script.Word) error {
	scope := w.e.scope

	if scope.Has(ScopePOSLookup) {
		if !word.Kind.Known() || (word.Kind == script.KindNormal && word.Text == "") {
			w.report(KindUnrecognizedPos, path, []float64{float64(word.Kind)},
				fmt.Sprintf("word %q", word.Text))
		}
	}
	if scope.Has(ScopePronunciation) && word.Kind == script.KindNormal && word.Pronunciation() != "" {
		if detail, bad := w.e.badPronunciation(word.Pronunciation()); bad {
			w.report(KindPronunciation, path, nil, detail)
		}
	}

	if err := w.block(word.Acoustics, path, levelWord); err != nil {
		return err
	}
	for yi, syl := range word.Syllables {
		spath := fmt.Sprintf("%s.Syllable[%d]", path, yi)
		if err := w.block(syl.Acoustics, spath, levelSyllable); err != nil {
			return err
		}
		for pi, ph := range syl.Phones {
			ppath := fmt.Sprintf("%s.Phone[%d]", spath, pi)
			if err := w.block(ph.Acoustics, ppath, levelPhone); err != nil {
				return err
			}
		}
	}
	return nil
}

// badPronunciation re-splits a pronunciation through the grammar and
// reports the first malformation found.
func (e *Engine) badPronunciation(pron string) (string, bool) {
	g := e.cfg.Grammar()
	syls := g.SplitSyllables(pron)
	if len(syls) == 0 {
		return "no syllables", true
	}
	for _, syl := range syls {
		nuclei := 0
		for _, sliceText := range g.SplitSlices(syl) {
			var names []string
			for _, pt := range g.SplitPhones(sliceText) {
				base, _, _ := language.StripStress(pt)
				names = append(names, base)
			}
			if e.cfg.VowelCount(strings.Join(names, g.PhoneSep())) > 0 {
				nuclei++
			}
		}
		if nuclei == 0 {
			return fmt.Sprintf("syllable %q has no nucleus", syl), true
		}
		if nuclei > e.cfg.MaxVowelsPerSyllable() {
			return fmt.Sprintf("syllable %q has %d vowel slices, limit %d",
				syl, nuclei, e.cfg.MaxVowelsPerSyllable()), true
		}
	}
	return "", false
}

// block runs the acoustic checks over one acoustics block. The sentinel
// UV kind is a structural fault: an unclassified segment cannot be
// meaningfully checked, so the item's walk stops here.
func (w *walker) block(b *acoustic.Block, path string, level int) error {
	if b == nil {
		return nil
	}
	scope := w.e.scope

	for _, seg := range b.UV {
		if seg.Kind != acoustic.UVKindUnvoiced && seg.Kind != acoustic.UVKindVoiced {
			return scripterr.Structuralf("UV segment kind %d is not classified", int(seg.Kind)).At(w.itemID, path)
		}
	}

	if scope.Has(ScopeSegmentInterval) {
		for _, seg := range b.Segments {
			if !seg.Valid() {
				w.report(KindSegmentInterval, path, []float64{seg.Begin(), seg.End()}, "")
			}
		}
	}

	if scope.Has(ScopeSegmentSequence) {
		for _, seg := range b.Segments {
			if seg.Begin() < w.prevSegEnd[level] {
				w.report(KindSegmentSequence, path, []float64{seg.Begin(), w.prevSegEnd[level]}, "")
			}
			w.prevSegEnd[level] = seg.End()
		}
	}

	if scope.Has(ScopeDurationSegment) && b.HasDuration() && len(b.Segments) > 0 {
		sum := 0.0
		for _, seg := range b.Segments {
			sum += seg.Duration()
		}
		if math.Abs(sum-b.Duration) > durEps {
			first := b.Segments[0].Begin()
			last := b.Segments[len(b.Segments)-1].End()
			w.report(KindDurationAndSegment, path, []float64{b.Duration, first, last}, "")
		}
	}

	if scope.Has(ScopeUVInterval) {
		for _, seg := range b.UV {
			switch {
			case !seg.Interval.Valid():
				w.report(KindUvSegInterval, path, []float64{seg.Interval.Begin(), seg.Interval.End()}, "")
			case b.HasDuration() && seg.Interval.End() > b.Duration+durEps:
				w.report(KindUvSegInterval, path, []float64{seg.Interval.End(), b.Duration}, "")
			}
		}
	}

	// Order before overlap, and the block's remaining segments are not
	// checked after the first violation: one bad boundary would cascade
	// into every later segment of the same block.
	if scope.Has(ScopeUVSequence) && len(b.UV) > 1 {
		prevBegin := b.UV[0].Interval.Begin()
		prevEnd := b.UV[0].Interval.End()
		for _, seg := range b.UV[1:] {
			cur := seg.Interval
			if cur.End() <= prevBegin {
				w.report(KindUvSegOrder, path, []float64{cur.Begin(), cur.End(), prevBegin}, "")
				break
			}
			if cur.Begin() < prevEnd {
				w.report(KindUvSegOverlap, path, []float64{cur.Begin(), prevEnd}, "")
				break
			}
			prevBegin, prevEnd = cur.Begin(), cur.End()
		}
	}

	if scope.Has(ScopeDurationUV) && b.HasDuration() && len(b.UV) > 0 {
		lastEnd := b.UV[len(b.UV)-1].Interval.End()
		if math.Abs(lastEnd-b.Duration) > durEps {
			w.report(KindDurationAndUv, path, []float64{b.Duration, lastEnd}, "")
		}
	}

	if scope.Has(ScopeSegmentDurationUV) && len(b.Segments) > 0 && len(b.UV) > 0 {
		sum := 0.0
		for _, seg := range b.Segments {
			sum += seg.Duration()
		}
		lastEnd := b.UV[len(b.UV)-1].Interval.End()
		if math.Abs(sum-lastEnd) > durEps {
			w.report(KindSegmentAndUv, path, []float64{sum, lastEnd}, "")
		}
	}

	for _, seg := range b.UV {
		w.contours(&seg, path)
	}
	return nil
}

// contours checks one UV segment's F0 and power contours.
func (w *walker) contours(seg *acoustic.UVSegment, path string) {
	scope := w.e.scope

	if scope.Has(ScopeF0Range) && seg.F0 != nil {
		if i, v, ok := firstNegative(seg.F0); ok {
			w.report(KindF0Range, path, []float64{float64(i), v}, "")
		}
	}

	if scope.Has(ScopeF0UVType) && seg.F0 != nil {
		switch seg.Kind {
		case acoustic.UVKindUnvoiced:
			for i, v := range seg.F0.Raw {
				if v > 0 {
					w.report(KindF0AndUvType, path, []float64{float64(i), float64(v)}, "unvoiced segment carries F0")
					break
				}
			}
		case acoustic.UVKindVoiced:
			for i, v := range seg.F0.Raw {
				if v <= 0 {
					w.report(KindF0AndUvType, path, []float64{float64(i), float64(v)}, "voiced segment lacks F0")
					break
				}
			}
		}
	}

	if scope.Has(ScopePowerRange) && seg.Power != nil {
		if i, v, ok := firstNegative(seg.Power); ok {
			w.report(KindPowerRange, path, []float64{float64(i), v}, "")
		}
	}
}

// firstNegative scans the raw then the quantized samples.
func firstNegative(c *acoustic.Contour) (int, float64, bool) {
	for i, v := range c.Raw {
		if v < 0 {
			return i, float64(v), true
		}
	}
	for i, v := range c.Quantized {
		if v < 0 {
			return i, float64(v), true
		}
	}
	return 0, 0, false
}
