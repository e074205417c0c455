// Package feature fills the contextual feature bundle of every synthesis
// unit: left/right phonetic context, position in syllable, word and
// sentence, and word-tone propagation. One left-to-right pass with
// lookback to the previous unit, syllable and word.
package feature

import (
	"github.com/ieee0824/ttscript-go/language"
	"github.com/ieee0824/ttscript-go/script"
)

// Calculator annotates built unit sequences for one language.
type Calculator struct {
	cfg *language.Config
}

// NewCalculator creates a calculator for the given language.
func NewCalculator(cfg *language.Config) *Calculator {
	return &Calculator{cfg: cfg}
}

// Annotate fills the features of every unit of s in one pass. The unit
// and word caches are rebuilt first if dirty.
func (c *Calculator) Annotate(s *script.Sentence) error {
	words, err := s.Words()
	if err != nil {
		return err
	}
	units, err := s.Units()
	if err != nil {
		return err
	}

	for i, u := range units {
		w := words[u.WordIndex]
		var prev, next *script.Unit
		if i > 0 {
			prev = units[i-1]
		}
		if i+1 < len(units) {
			next = units[i+1]
		}

		c.fillContext(u, prev, next, words)
		c.fillSyllablePosition(u, prev, next)

		first := u.SyllableIndex == 0
		last := u.SyllableIndex == len(w.Syllables)-1
		u.Features.PosInWord = wordPosTable[boolIdx(first)][boolIdx(last)]

		if u.Kind == script.KindQuestion {
			u.Features.PosInSentence = script.SentencePosQuest
		} else {
			row := 3 // utterance start defaults to the Sentence row
			if u.WordIndex > 0 {
				row = breakBucket(words[u.WordIndex-1].Break)
			}
			u.Features.PosInSentence = sentencePosTable[row][breakBucket(w.Break)]
		}

		if last {
			u.Features.WordTone = w.Tone
		} else {
			u.Features.WordTone = script.ToneContinue
		}
	}
	return nil
}

// fillContext sets the left/right context phone and tone. A neighbor is
// replaced by the silence sentinel when it is absent, when it is a
// special (non-phonetic) unit, or when the word boundary separating the
// two units is at or above the inter-phrase break level.
func (c *Calculator) fillContext(u, prev, next *script.Unit, words []*script.Word) {
	sil := c.cfg.SilencePhone()

	if prev == nil || c.isSpecial(prev) || boundary(words, prev, u) >= script.BreakInterPhrase {
		u.Features.LeftPhone, u.Features.LeftTone = sil, ""
	} else if lp := prev.LastPhone(); lp != nil {
		u.Features.LeftPhone, u.Features.LeftTone = lp.Name, lp.Tone
	}

	if next == nil || c.isSpecial(next) || boundary(words, u, next) >= script.BreakInterPhrase {
		u.Features.RightPhone, u.Features.RightTone = sil, ""
	} else if fp := next.FirstPhone(); fp != nil {
		u.Features.RightPhone, u.Features.RightTone = fp.Name, fp.Tone
	}
}

// fillSyllablePosition applies the boundary upgrades: an Onset whose
// previous unit sits inside the same syllable across a sub-syllable
// break becomes an Onset continuation, a Coda symmetrically on the
// following side. Nucleus variants pass through unchanged except for the
// special-unit override, which forces Onset.
func (c *Calculator) fillSyllablePosition(u, prev, next *script.Unit) {
	if c.isSpecial(u) {
		u.Features.PosInSyllable = script.PosOnset
		return
	}
	switch u.Features.PosInSyllable {
	case script.PosOnset:
		if prev != nil && sameSyllable(prev, u) && prev.Break < script.BreakSyllable {
			u.Features.PosInSyllable = script.PosOnsetContinue
		}
	case script.PosCoda:
		if next != nil && sameSyllable(u, next) && u.Break < script.BreakSyllable {
			u.Features.PosInSyllable = script.PosCodaContinue
		}
	}
}

// boundary returns the break level separating two units. Inside one word
// it is the break attached to the earlier unit; across words it is the
// strongest break carried by the earlier word and any intervening
// (absorbed punctuation or silence) words.
func boundary(words []*script.Word, left, right *script.Unit) script.BreakLevel {
	if left.WordIndex == right.WordIndex {
		return left.Break
	}
	max := script.BreakPhone
	for k := left.WordIndex; k < right.WordIndex && k < len(words); k++ {
		if words[k].Break > max {
			max = words[k].Break
		}
	}
	return max
}

func (c *Calculator) isSpecial(u *script.Unit) bool {
	fp := u.FirstPhone()
	return fp != nil && c.cfg.IsSpecial(fp.Name)
}

func sameSyllable(a, b *script.Unit) bool {
	return a.WordIndex == b.WordIndex && a.SyllableIndex == b.SyllableIndex
}

func boolIdx(b bool) int {
	if b {
		return 1
	}
	return 0
}
