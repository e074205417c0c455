package language

import (
	"strings"

	"github.com/ieee0824/ttscript-go/scripterr"
)

// Grammar is the four-level pronunciation grammar. Pronunciation strings
// nest word > syllable > slice > phone; each split level honors its own
// delimiter plus every coarser one, never finer ones, so a chunk taken
// from a coarser split can always be re-split at a finer level.
type Grammar struct {
	wordSep     string
	syllableSep string
	sliceSep    string
	phoneSep    string
}

// NewGrammar builds a Grammar. Every delimiter must be non-empty.
func NewGrammar(wordSep, syllableSep, sliceSep, phoneSep string) (*Grammar, error) {
	for _, d := range []struct{ field, sep string }{
		{"wordSeparator", wordSep},
		{"syllableSeparator", syllableSep},
		{"sliceSeparator", sliceSep},
		{"phoneSeparator", phoneSep},
	} {
		if d.sep == "" {
			return nil, scripterr.Configf(d.field, "must not be empty")
		}
	}
	return &Grammar{
		wordSep:     wordSep,
		syllableSep: syllableSep,
		sliceSep:    sliceSep,
		phoneSep:    phoneSep,
	}, nil
}

// DefaultGrammar returns the grammar with the default separators
// "/", "-", ".", " ".
func DefaultGrammar() *Grammar {
	g, err := NewGrammar("/", "-", ".", " ")
	if err != nil {
		panic(err) // the defaults are non-empty
	}
	return g
}

// WordSep returns the word delimiter.
func (g *Grammar) WordSep() string { return g.wordSep }

// SyllableSep returns the syllable delimiter.
func (g *Grammar) SyllableSep() string { return g.syllableSep }

// SliceSep returns the slice delimiter.
func (g *Grammar) SliceSep() string { return g.sliceSep }

// PhoneSep returns the phone delimiter.
func (g *Grammar) PhoneSep() string { return g.phoneSep }

// SplitWords splits a pronunciation string at word boundaries.
func (g *Grammar) SplitWords(pron string) []string {
	return splitDropEmpty(pron, g.wordSep)
}

// SplitSyllables splits a pronunciation chunk into syllables. Word
// delimiters also act as boundaries.
func (g *Grammar) SplitSyllables(pron string) []string {
	return splitDropEmpty(pron, g.wordSep, g.syllableSep)
}

// SplitSlices splits a syllable chunk into slices. Word and syllable
// delimiters also act as boundaries.
func (g *Grammar) SplitSlices(chunk string) []string {
	return splitDropEmpty(chunk, g.wordSep, g.syllableSep, g.sliceSep)
}

// SplitPhones splits a slice chunk into phones. All coarser delimiters
// also act as boundaries.
func (g *Grammar) SplitPhones(chunk string) []string {
	return splitDropEmpty(chunk, g.wordSep, g.syllableSep, g.sliceSep, g.phoneSep)
}

// JoinSyllables is the reverse of SplitSyllables for one word.
func (g *Grammar) JoinSyllables(syllables []string) string {
	return strings.Join(syllables, g.syllableSep)
}

// JoinWords is the reverse of SplitWords.
func (g *Grammar) JoinWords(words []string) string {
	return strings.Join(words, g.wordSep)
}

// splitDropEmpty splits s at every occurrence of any separator and drops
// empty tokens (adjacent delimiters, bare stress markers).
func splitDropEmpty(s string, seps ...string) []string {
	tokens := []string{s}
	for _, sep := range seps {
		next := tokens[:0:0]
		for _, tok := range tokens {
			next = append(next, strings.Split(tok, sep)...)
		}
		tokens = next
	}
	out := tokens[:0]
	for _, tok := range tokens {
		if tok != "" {
			out = append(out, tok)
		}
	}
	return out
}
