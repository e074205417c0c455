package script

import "github.com/ieee0824/ttscript-go/acoustic"

// Word is one orthographic/phonetic token. Normal words carry a
// pronunciation; the derived unit sequence is rebuilt lazily after the
// pronunciation changes.
type Word struct {
	Text       string
	Kind       WordKind
	Break      BreakLevel
	Emphasis   bool
	Tone       WordTone
	PronSource PronSource
	Syllables  []*Syllable
	Acoustics  *acoustic.Block

	pron  string
	units derived[[]*Unit]
}

// NewWord builds a word of the given kind with a default word break.
func NewWord(text string, kind WordKind) *Word {
	return &Word{Text: text, Kind: kind, Break: BreakWord}
}

// Pronunciation returns the word's pronunciation string.
func (w *Word) Pronunciation() string { return w.pron }

// SetPronunciation replaces the pronunciation and marks the derived unit
// sequence dirty.
func (w *Word) SetPronunciation(pron string) {
	if pron == w.pron {
		return
	}
	w.pron = pron
	w.units.invalidate()
}

// Units returns the derived synthesis-unit sequence, rebuilding it first
// when dirty.
func (w *Word) Units() ([]*Unit, error) { return w.units.get() }

// SetUnitBuilder installs the rebuild function for the unit sequence and
// marks it dirty.
func (w *Word) SetUnitBuilder(build func() ([]*Unit, error)) {
	w.units.setBuilder(build)
}

// StoreUnits fills the unit cache directly and marks it clean. The unit
// builder calls this after a full build.
func (w *Word) StoreUnits(units []*Unit) { w.units.store(units) }

// InvalidateUnits marks the unit cache dirty.
func (w *Word) InvalidateUnits() { w.units.invalidate() }

// UnitsClean reports whether the unit cache is clean.
func (w *Word) UnitsClean() bool { return w.units.isClean() }

// LastSyllable returns the word's final syllable, or nil.
func (w *Word) LastSyllable() *Syllable {
	if len(w.Syllables) == 0 {
		return nil
	}
	return w.Syllables[len(w.Syllables)-1]
}
