package validate

import (
	"errors"
	"strings"
	"testing"

	"github.com/ieee0824/ttscript-go/acoustic"
	"github.com/ieee0824/ttscript-go/language"
	"github.com/ieee0824/ttscript-go/script"
	"github.com/ieee0824/ttscript-go/scripterr"
)

func ti(t *testing.T, begin, end float64) acoustic.TimeInterval {
	t.Helper()
	iv, err := acoustic.NewTimeInterval(begin, end)
	if err != nil {
		t.Fatalf("NewTimeInterval(%v, %v) error: %v", begin, end, err)
	}
	return iv
}

// oneWordItem wraps a single word with acoustics into a checkable item.
func oneWordItem(t *testing.T, id string, w *script.Word) *script.Item {
	t.Helper()
	it := script.NewItem(id)
	s := script.NewSentence(w.Text, "")
	s.StoreWords([]*script.Word{w})
	if err := it.AddSentence(s); err != nil {
		t.Fatalf("AddSentence error: %v", err)
	}
	return it
}

func voiced(t *testing.T, begin, end float64) acoustic.UVSegment {
	t.Helper()
	return acoustic.UVSegment{Kind: acoustic.UVKindVoiced, Interval: ti(t, begin, end)}
}

func kinds(errs []Violation) []Kind {
	out := make([]Kind, len(errs))
	for i, v := range errs {
		out[i] = v.Kind
	}
	return out
}

func TestCleanBlockNoViolations(t *testing.T) {
	w := script.NewWord("hi", script.KindNormal)
	w.Acoustics = &acoustic.Block{
		Duration: 200,
		Segments: []acoustic.TimeInterval{ti(t, 0, 120), ti(t, 120, 200)},
		UV: []acoustic.UVSegment{
			{Kind: acoustic.UVKindUnvoiced, Interval: ti(t, 0, 50)},
			voiced(t, 50, 200),
		},
	}

	var errs []Violation
	e := NewEngine(language.GeneralAmerican(), ScopeAll)
	if err := e.CheckItem(oneWordItem(t, "clean", w), &errs); err != nil {
		t.Fatalf("CheckItem error: %v", err)
	}
	if len(errs) != 0 {
		t.Errorf("violations = %v, want none", kinds(errs))
	}
}

func TestUVOverlapStopsAtFirst(t *testing.T) {
	w := script.NewWord("hi", script.KindNormal)
	w.Acoustics = &acoustic.Block{
		UV: []acoustic.UVSegment{
			voiced(t, 0, 100),
			voiced(t, 50, 150), // overlaps the first
			voiced(t, 120, 200),
		},
	}

	var errs []Violation
	e := NewEngine(language.GeneralAmerican(), ScopeUVSequence)
	if err := e.CheckItem(oneWordItem(t, "ov", w), &errs); err != nil {
		t.Fatalf("CheckItem error: %v", err)
	}
	if len(errs) != 1 || errs[0].Kind != KindUvSegOverlap {
		t.Fatalf("violations = %v, want exactly one %v", kinds(errs), KindUvSegOverlap)
	}
	if got := errs[0].Params; len(got) != 2 || got[0] != 50 || got[1] != 100 {
		t.Errorf("params = %v, want [50 100]", got)
	}
}

func TestUVOrderBeforeOverlap(t *testing.T) {
	// The second segment ends before the first begins: ordering wins
	// even though the intervals also fail the overlap test.
	w := script.NewWord("hi", script.KindNormal)
	w.Acoustics = &acoustic.Block{
		UV: []acoustic.UVSegment{
			voiced(t, 100, 200),
			voiced(t, 10, 50),
		},
	}

	var errs []Violation
	e := NewEngine(language.GeneralAmerican(), ScopeUVSequence)
	if err := e.CheckItem(oneWordItem(t, "ord", w), &errs); err != nil {
		t.Fatalf("CheckItem error: %v", err)
	}
	if len(errs) != 1 || errs[0].Kind != KindUvSegOrder {
		t.Fatalf("violations = %v, want exactly one %v", kinds(errs), KindUvSegOrder)
	}
}

func TestDurationSegmentMismatch(t *testing.T) {
	w := script.NewWord("hi", script.KindNormal)
	w.Acoustics = &acoustic.Block{
		Duration: 200,
		Segments: []acoustic.TimeInterval{ti(t, 0, 80), ti(t, 80, 180)},
	}

	var errs []Violation
	e := NewEngine(language.GeneralAmerican(), ScopeDurationSegment)
	if err := e.CheckItem(oneWordItem(t, "dur", w), &errs); err != nil {
		t.Fatalf("CheckItem error: %v", err)
	}
	if len(errs) != 1 || errs[0].Kind != KindDurationAndSegment {
		t.Fatalf("violations = %v, want exactly one %v", kinds(errs), KindDurationAndSegment)
	}
	want := []float64{200, 0, 180}
	for i, p := range want {
		if errs[0].Params[i] != p {
			t.Errorf("params = %v, want %v", errs[0].Params, want)
			break
		}
	}
}

func TestSegmentSequenceIndependentLevels(t *testing.T) {
	// Two words: word-level segments run 0..100 then 90..200, a backward
	// step. The syllable-level stream is monotone and must not pick up
	// the word-level counter.
	w1 := script.NewWord("a", script.KindNormal)
	w1.Acoustics = &acoustic.Block{Segments: []acoustic.TimeInterval{ti(t, 0, 100)}}
	w1.Syllables = []*script.Syllable{{
		Text:      "a",
		Acoustics: &acoustic.Block{Segments: []acoustic.TimeInterval{ti(t, 0, 100)}},
	}}
	w2 := script.NewWord("b", script.KindNormal)
	w2.Acoustics = &acoustic.Block{Segments: []acoustic.TimeInterval{ti(t, 90, 200)}}
	w2.Syllables = []*script.Syllable{{
		Text:      "b",
		Acoustics: &acoustic.Block{Segments: []acoustic.TimeInterval{ti(t, 100, 200)}},
	}}

	it := script.NewItem("seq")
	s := script.NewSentence("a b", "")
	s.StoreWords([]*script.Word{w1, w2})
	if err := it.AddSentence(s); err != nil {
		t.Fatalf("AddSentence error: %v", err)
	}

	var errs []Violation
	e := NewEngine(language.GeneralAmerican(), ScopeSegmentSequence)
	if err := e.CheckItem(it, &errs); err != nil {
		t.Fatalf("CheckItem error: %v", err)
	}
	if len(errs) != 1 || errs[0].Kind != KindSegmentSequence {
		t.Fatalf("violations = %v, want exactly one %v", kinds(errs), KindSegmentSequence)
	}
	if errs[0].Path != "Sentence[0].Word[1]" {
		t.Errorf("path = %q, want Sentence[0].Word[1]", errs[0].Path)
	}
}

func TestUnsetUVKindIsStructural(t *testing.T) {
	bad := script.NewWord("bad", script.KindNormal)
	bad.Acoustics = &acoustic.Block{
		UV: []acoustic.UVSegment{{Interval: ti(t, 0, 100)}}, // kind left unset
	}
	good := script.NewWord("good", script.KindNormal)
	good.Acoustics = &acoustic.Block{UV: []acoustic.UVSegment{voiced(t, 0, 100)}}

	items := []*script.Item{
		oneWordItem(t, "bad-item", bad),
		oneWordItem(t, "good-item", good),
	}

	var errs []Violation
	e := NewEngine(language.GeneralAmerican(), ScopeAll)
	failed := e.CheckItems(items, &errs)

	err, ok := failed["bad-item"]
	if !ok {
		t.Fatal("bad-item should have failed")
	}
	var se *scripterr.StructuralError
	if !errors.As(err, &se) {
		t.Fatalf("failure = %T, want *scripterr.StructuralError", err)
	}
	if se.ItemID != "bad-item" || !strings.Contains(se.Node, "Word[0]") {
		t.Errorf("fault context = %q/%q, want item id and word path", se.ItemID, se.Node)
	}
	if _, ok := failed["good-item"]; ok {
		t.Error("good-item should still be checked after a sibling fault")
	}
}

func TestDuplicateItemID(t *testing.T) {
	a := oneWordItem(t, "same", script.NewWord("a", script.KindNormal))
	b := oneWordItem(t, "same", script.NewWord("b", script.KindNormal))

	var errs []Violation
	e := NewEngine(language.GeneralAmerican(), ScopeAll)
	failed := e.CheckItems([]*script.Item{a, b}, &errs)
	if err, ok := failed["same"]; !ok {
		t.Fatal("duplicate id should fail")
	} else if !strings.Contains(err.Error(), "duplicate") {
		t.Errorf("error = %v, want duplicate id fault", err)
	}
}

func TestScopeGating(t *testing.T) {
	w := script.NewWord("hi", script.KindNormal)
	w.Acoustics = &acoustic.Block{
		UV: []acoustic.UVSegment{voiced(t, 0, 100), voiced(t, 50, 150)},
	}

	var errs []Violation
	e := NewEngine(language.GeneralAmerican(), ScopeAll&^ScopeUVSequence)
	if err := e.CheckItem(oneWordItem(t, "gate", w), &errs); err != nil {
		t.Fatalf("CheckItem error: %v", err)
	}
	if len(errs) != 0 {
		t.Errorf("violations = %v, want none with the sequence check disabled", kinds(errs))
	}
}

func TestUnrecognizedPos(t *testing.T) {
	w := script.NewWord("", script.KindNormal) // normal word without text

	var errs []Violation
	e := NewEngine(language.GeneralAmerican(), ScopePOSLookup)
	if err := e.CheckItem(oneWordItem(t, "pos", w), &errs); err != nil {
		t.Fatalf("CheckItem error: %v", err)
	}
	if len(errs) != 1 || errs[0].Kind != KindUnrecognizedPos {
		t.Fatalf("violations = %v, want exactly one %v", kinds(errs), KindUnrecognizedPos)
	}
}

func TestPronunciationCheck(t *testing.T) {
	cases := []struct {
		pron string
		bad  bool
	}{
		{"k.ae1.t", false},
		{"k.t", true},            // no nucleus
		{"k.ae1.ay0", true},      // two vowel slices, limit one
		{"hh.ax0-l.ow1", false},  // two well-formed syllables
		{"s.t r.ay1.k.s", false}, // multi-phone slice
	}
	e := NewEngine(language.GeneralAmerican(), ScopePronunciation)
	for _, c := range cases {
		w := script.NewWord("x", script.KindNormal)
		w.SetPronunciation(c.pron)

		var errs []Violation
		if err := e.CheckItem(oneWordItem(t, "pron-"+c.pron, w), &errs); err != nil {
			t.Fatalf("CheckItem(%q) error: %v", c.pron, err)
		}
		if got := len(errs) > 0; got != c.bad {
			t.Errorf("pron %q flagged = %v, want %v (%v)", c.pron, got, c.bad, kinds(errs))
		}
	}
}

func TestF0AgainstUVType(t *testing.T) {
	w := script.NewWord("hi", script.KindNormal)
	w.Acoustics = &acoustic.Block{
		UV: []acoustic.UVSegment{{
			Kind:     acoustic.UVKindUnvoiced,
			Interval: ti(t, 0, 100),
			F0:       &acoustic.Contour{Raw: []float32{0, 0, 180.5, 181}},
		}},
	}

	var errs []Violation
	e := NewEngine(language.GeneralAmerican(), ScopeF0UVType)
	if err := e.CheckItem(oneWordItem(t, "f0uv", w), &errs); err != nil {
		t.Fatalf("CheckItem error: %v", err)
	}
	if len(errs) != 1 || errs[0].Kind != KindF0AndUvType {
		t.Fatalf("violations = %v, want exactly one %v", kinds(errs), KindF0AndUvType)
	}
}

func TestF0AndPowerRange(t *testing.T) {
	w := script.NewWord("hi", script.KindNormal)
	w.Acoustics = &acoustic.Block{
		UV: []acoustic.UVSegment{{
			Kind:     acoustic.UVKindVoiced,
			Interval: ti(t, 0, 100),
			F0:       &acoustic.Contour{Raw: []float32{120, -3, 130}},
			Power:    &acoustic.Contour{Quantized: []float32{0.5, -0.1}},
		}},
	}

	var errs []Violation
	e := NewEngine(language.GeneralAmerican(), ScopeF0Range|ScopePowerRange)
	if err := e.CheckItem(oneWordItem(t, "range", w), &errs); err != nil {
		t.Fatalf("CheckItem error: %v", err)
	}
	got := kinds(errs)
	if len(got) != 2 || got[0] != KindF0Range || got[1] != KindPowerRange {
		t.Fatalf("violations = %v, want [%v %v]", got, KindF0Range, KindPowerRange)
	}
}

func TestUVIntervalBeyondDuration(t *testing.T) {
	w := script.NewWord("hi", script.KindNormal)
	w.Acoustics = &acoustic.Block{
		Duration: 100,
		UV:       []acoustic.UVSegment{voiced(t, 0, 150)},
	}

	var errs []Violation
	e := NewEngine(language.GeneralAmerican(), ScopeUVInterval)
	if err := e.CheckItem(oneWordItem(t, "uviv", w), &errs); err != nil {
		t.Fatalf("CheckItem error: %v", err)
	}
	if len(errs) != 1 || errs[0].Kind != KindUvSegInterval {
		t.Fatalf("violations = %v, want exactly one %v", kinds(errs), KindUvSegInterval)
	}
}

func TestDurationAgainstUV(t *testing.T) {
	w := script.NewWord("hi", script.KindNormal)
	w.Acoustics = &acoustic.Block{
		Duration: 200,
		UV:       []acoustic.UVSegment{voiced(t, 0, 150)},
	}

	var errs []Violation
	e := NewEngine(language.GeneralAmerican(), ScopeDurationUV)
	if err := e.CheckItem(oneWordItem(t, "duruv", w), &errs); err != nil {
		t.Fatalf("CheckItem error: %v", err)
	}
	if len(errs) != 1 || errs[0].Kind != KindDurationAndUv {
		t.Fatalf("violations = %v, want exactly one %v", kinds(errs), KindDurationAndUv)
	}
}

func TestSegmentAgainstUV(t *testing.T) {
	w := script.NewWord("hi", script.KindNormal)
	w.Acoustics = &acoustic.Block{
		Segments: []acoustic.TimeInterval{ti(t, 0, 100)},
		UV:       []acoustic.UVSegment{voiced(t, 0, 150)},
	}

	var errs []Violation
	e := NewEngine(language.GeneralAmerican(), ScopeSegmentDurationUV)
	if err := e.CheckItem(oneWordItem(t, "seguv", w), &errs); err != nil {
		t.Fatalf("CheckItem error: %v", err)
	}
	if len(errs) != 1 || errs[0].Kind != KindSegmentAndUv {
		t.Fatalf("violations = %v, want exactly one %v", kinds(errs), KindSegmentAndUv)
	}
}

func TestPhonePathFormat(t *testing.T) {
	w := script.NewWord("hi", script.KindNormal)
	w.Syllables = []*script.Syllable{{
		Text: "hh.ay1",
		Phones: []*script.Phone{
			{Name: "hh"},
			{Name: "ay", Tone: "1", Acoustics: &acoustic.Block{
				// zero-value interval is empty and fails the interval check
				Segments: make([]acoustic.TimeInterval, 1),
			}},
		},
	}}

	var errs []Violation
	e := NewEngine(language.GeneralAmerican(), ScopeSegmentInterval)
	if err := e.CheckItem(oneWordItem(t, "path", w), &errs); err != nil {
		t.Fatalf("CheckItem error: %v", err)
	}
	if len(errs) != 1 {
		t.Fatalf("violations = %v, want exactly one", kinds(errs))
	}
	if want := "Sentence[0].Word[0].Syllable[0].Phone[1]"; errs[0].Path != want {
		t.Errorf("path = %q, want %q", errs[0].Path, want)
	}
}
