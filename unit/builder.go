// Package unit builds the synthesis-unit sequence: it tokenizes sentence
// text into words, splits pronunciations through the language grammar,
// classifies slices around the nucleus and aligns every unit back to its
// offset in the written pronunciation.
package unit

import (
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/ieee0824/ttscript-go/language"
	"github.com/ieee0824/ttscript-go/lexicon"
	"github.com/ieee0824/ttscript-go/script"
	"github.com/ieee0824/ttscript-go/scripterr"
)

// Builder assembles words, syllables and synthesis units for one
// language. It is stateless across sentences and safe to reuse.
type Builder struct {
	cfg *language.Config
	g   *language.Grammar
	lex *lexicon.Dictionary
}

// NewBuilder creates a builder for the given language.
func NewBuilder(cfg *language.Config) *Builder {
	return &Builder{cfg: cfg, g: cfg.Grammar()}
}

// SetLexicon installs a fallback dictionary consulted for normal words
// that arrive without a pronunciation.
func (b *Builder) SetLexicon(d *lexicon.Dictionary) { b.lex = d }

// Attach installs the derived-word rebuild function on s and performs
// the first build: words, syllables and units. Later edits to the
// sentence text or pronunciation are picked up lazily on the next read.
func (b *Builder) Attach(s *script.Sentence) error {
	s.SetWordBuilder(func() ([]*script.Word, error) {
		words, err := b.buildWords(s.Text(), s.Pronunciation())
		if err != nil {
			return nil, err
		}
		if err := b.attachUnits(words); err != nil {
			return nil, err
		}
		return words, nil
	})
	_, err := s.Words()
	return err
}

// buildWords tokenizes normalized sentence text into classified words
// and distributes the pronunciation string over the pronounceable ones.
func (b *Builder) buildWords(text, pron string) ([]*script.Word, error) {
	text = norm.NFKC.String(text)

	var words []*script.Word
	for _, tok := range strings.Fields(text) {
		words = append(words, b.splitToken(tok)...)
	}

	prons := b.g.SplitWords(pron)
	pi := 0
	for _, w := range words {
		if !w.Kind.Pronounceable() {
			continue
		}
		if pi < len(prons) {
			w.SetPronunciation(prons[pi])
			w.PronSource = script.SourceInput
			pi++
			continue
		}
		if b.lex != nil {
			if p, ok := b.lex.Pronunciation(w.Text); ok {
				w.SetPronunciation(p)
				w.PronSource = script.SourceLexicon
			}
		}
	}
	if pi < len(prons) {
		return nil, scripterr.Structuralf("pronunciation carries %d words, text has %d pronounceable words", len(prons), pi)
	}
	return words, nil
}

// splitToken peels leading and trailing punctuation off one whitespace
// token, yielding up to three words.
func (b *Builder) splitToken(tok string) []*script.Word {
	runes := []rune(tok)
	start, end := 0, len(runes)
	for start < end && b.cfg.IsPunctuation(string(runes[start])) {
		start++
	}
	for end > start && b.cfg.IsPunctuation(string(runes[end-1])) {
		end--
	}

	var out []*script.Word
	if start > 0 {
		out = append(out, b.punctWord(string(runes[:start])))
	}
	if end > start {
		out = append(out, script.NewWord(string(runes[start:end]), script.KindNormal))
	}
	if end < len(runes) {
		out = append(out, b.punctWord(string(runes[end:])))
	}
	return out
}

// punctWord classifies a punctuation cluster. Sentence-final marks carry
// a sentence break, everything else an inter-phrase break.
func (b *Builder) punctWord(text string) *script.Word {
	kind := script.KindOtherPunctuation
	brk := script.BreakInterPhrase
	switch {
	case strings.ContainsAny(text, "?？"):
		kind, brk = script.KindQuestion, script.BreakSentence
	case strings.ContainsAny(text, "!！"):
		kind, brk = script.KindExclamation, script.BreakSentence
	case strings.ContainsAny(text, ".。"):
		kind, brk = script.KindPeriod, script.BreakSentence
	}
	w := script.NewWord(text, kind)
	w.Break = brk
	return w
}

// attachUnits walks the word list, absorbing trailing non-normal tokens
// into their preceding pronounceable word, and builds that word's
// syllables and units.
func (b *Builder) attachUnits(words []*script.Word) error {
	for i := 0; i < len(words); i++ {
		w := words[i]
		if !w.Kind.Pronounceable() {
			continue
		}
		wIdx := i
		kind := w.Kind
		// Absorb immediately following non-normal tokens; they emit no
		// units, but an absorbed question mark retags this word's units.
		for j := i + 1; j < len(words) && !words[j].Kind.Pronounceable(); j++ {
			if words[j].Kind == script.KindQuestion {
				kind = script.KindQuestion
			}
			i = j
		}

		word, effKind := w, kind
		word.SetUnitBuilder(func() ([]*script.Unit, error) {
			units, syls, err := b.assemble(word, wIdx, effKind)
			if err != nil {
				return nil, err
			}
			word.Syllables = syls
			return units, nil
		})
		if _, err := word.Units(); err != nil {
			return err
		}
	}
	return nil
}

// assemble builds the syllables and units of one word from its
// pronunciation string.
func (b *Builder) assemble(w *script.Word, wordIdx int, kind script.WordKind) ([]*script.Unit, []*script.Syllable, error) {
	pron := w.Pronunciation()
	if pron == "" {
		return nil, nil, nil
	}

	sylTexts := b.g.SplitSyllables(pron)
	if len(sylTexts) == 0 {
		return nil, nil, scripterr.Structuralf("word %q: pronunciation %q holds no syllables", w.Text, pron)
	}

	var syls []*script.Syllable
	var units []*script.Unit
	for si, sylText := range sylTexts {
		syl := &script.Syllable{Text: sylText, WordIndex: wordIdx}
		if si == len(sylTexts)-1 {
			syl.Break = w.Break
		} else {
			syl.Break = script.BreakPhone
		}

		sylUnits, err := b.buildSyllable(w, syl, si, wordIdx, kind)
		if err != nil {
			return nil, nil, err
		}
		syls = append(syls, syl)
		units = append(units, sylUnits...)
	}

	if err := alignOffsets(units, pron); err != nil {
		return nil, nil, scripterr.Structuralf("word %q: %v", w.Text, err)
	}
	return units, syls, nil
}

// parsedSlice is one slice with its phones and nucleus classification.
type parsedSlice struct {
	name   string // phone names joined, digits stripped
	phones []*script.Phone
	vowels int
}

func (b *Builder) buildSyllable(w *script.Word, syl *script.Syllable, sylIdx, wordIdx int, kind script.WordKind) ([]*script.Unit, error) {
	slices := b.parseSlices(syl.Text)
	if len(slices) == 0 {
		return nil, scripterr.Structuralf("syllable %q: no slices", syl.Text)
	}

	nucleusIdx := -1
	nucleusSlices := 0
	for k, sl := range slices {
		if sl.vowels > 0 {
			nucleusSlices++
			if nucleusIdx < 0 {
				nucleusIdx = k
			}
		}
	}
	if nucleusSlices > b.cfg.MaxVowelsPerSyllable() {
		return nil, scripterr.Structuralf("syllable %q: %d vowel slices exceeds limit %d",
			syl.Text, nucleusSlices, b.cfg.MaxVowelsPerSyllable())
	}
	if nucleusIdx < 0 {
		// No slice recognized as nucleus: a text/structure mismatch, not
		// a defaulted position.
		return nil, scripterr.Structuralf("syllable %q: no nucleus slice", syl.Text)
	}

	// Stress rides as a digit suffix on the nucleus phone.
	stress := 0
	for _, ph := range slices[nucleusIdx].phones {
		if ph.Tone != "" {
			if d, err := strconv.Atoi(ph.Tone); err == nil {
				stress = d
			}
			break
		}
	}
	syl.Stress = stress
	syl.Emphasis = w.Emphasis && stress > 0

	hasLead := nucleusIdx > 0
	hasTrail := nucleusIdx < len(slices)-1

	var units []*script.Unit
	for k, sl := range slices {
		syl.Phones = append(syl.Phones, sl.phones...)

		var pos script.SyllablePosition
		switch {
		case k < nucleusIdx:
			if k == 0 {
				pos = script.PosOnset
			} else {
				pos = script.PosOnsetContinue
			}
		case k == nucleusIdx:
			switch {
			case hasLead && hasTrail:
				pos = script.PosNucleusInCVC
			case hasLead:
				pos = script.PosNucleusInCV
			case hasTrail:
				pos = script.PosNucleusInVC
			default:
				pos = script.PosNucleusInV
			}
		case k == len(slices)-1:
			pos = script.PosCoda
		default:
			pos = script.PosCodaContinue
		}

		brk := script.BreakPhone
		if k == len(slices)-1 {
			brk = syl.Break
		}
		units = append(units, &script.Unit{
			Phones:        sl.phones,
			Break:         brk,
			Kind:          kind,
			WordIndex:     wordIdx,
			SyllableIndex: sylIdx,
			Offset:        -1,
			Features: script.Features{
				PosInSyllable: pos,
				Stress:        stress,
				Emphasis:      syl.Emphasis,
			},
		})
	}
	return units, nil
}

// parseSlices splits a syllable chunk into slices, stripping stress and
// tone digits off the phone names and recording vowel counts.
func (b *Builder) parseSlices(sylText string) []parsedSlice {
	var out []parsedSlice
	for _, sliceText := range b.g.SplitSlices(sylText) {
		var sl parsedSlice
		var baseNames []string
		for _, pt := range b.g.SplitPhones(sliceText) {
			base, digit, ok := language.StripStress(pt)
			ph := &script.Phone{Name: base}
			if ok {
				ph.Tone = strconv.Itoa(digit)
			}
			sl.phones = append(sl.phones, ph)
			baseNames = append(baseNames, base)
		}
		if len(sl.phones) == 0 {
			continue
		}
		sl.name = strings.Join(baseNames, b.g.PhoneSep())
		sl.vowels = b.cfg.VowelCount(sl.name)
		out = append(out, sl)
	}
	return out
}

// alignOffsets locates each unit's first phone in the pronunciation
// string by forward substring search. A miss means the written
// pronunciation and the built structure no longer agree.
func alignOffsets(units []*script.Unit, pron string) error {
	cursor := 0
	for _, u := range units {
		first := u.FirstPhone()
		if first == nil {
			return scripterr.Structuralf("unit without phones")
		}
		idx := strings.Index(pron[cursor:], first.Name)
		if idx < 0 {
			return scripterr.Structuralf("phone %q not found after offset %d in pronunciation %q", first.Name, cursor, pron)
		}
		u.Offset = cursor + idx
		cursor = u.Offset + len(first.Name)
	}
	return nil
}

// RebuildText regenerates sentence text from an edited word list.
// Punctuation words attach to the preceding word without a space.
func (b *Builder) RebuildText(s *script.Sentence) (string, error) {
	words, err := s.Words()
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	for _, w := range words {
		if w.Kind == script.KindBookmark || w.Kind == script.KindSilence {
			continue
		}
		if w.Kind.IsPunctuation() {
			sb.WriteString(w.Text)
			continue
		}
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(w.Text)
	}
	return sb.String(), nil
}

// RebuildPronunciation regenerates the sentence pronunciation string
// from the word list.
func (b *Builder) RebuildPronunciation(s *script.Sentence) (string, error) {
	words, err := s.Words()
	if err != nil {
		return "", err
	}
	var prons []string
	for _, w := range words {
		if w.Kind.Pronounceable() && w.Pronunciation() != "" {
			prons = append(prons, w.Pronunciation())
		}
	}
	return b.g.JoinWords(prons), nil
}
