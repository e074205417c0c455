// Package language holds the per-language configuration and the
// multi-level pronunciation grammar. A Config is immutable after
// construction and safe to share across builders and validators, which
// keeps multi-language processing deterministic within one process.
package language

import (
	"regexp"
	"strings"

	"github.com/ieee0824/ttscript-go/scripterr"
)

// Params collects everything needed to construct a Config.
type Params struct {
	Name string

	// Pronunciation delimiters, coarse to fine. All four are required.
	WordSep     string
	SyllableSep string
	SliceSep    string
	PhoneSep    string

	// Nucleus maps a vowel-bearing slice name (stress digits stripped)
	// to the number of vowels it bears.
	Nucleus map[string]int

	// Vowel-bearing slice count allowed per syllable.
	MinVowelsPerSyllable int
	MaxVowelsPerSyllable int

	// SilencePhone is the sentinel used for absent phonetic context.
	SilencePhone string

	// PunctuationPattern matches word texts that are punctuation.
	PunctuationPattern string

	// SpecialUnits are non-phonetic unit names (silence, breath).
	SpecialUnits []string
}

// Config is the immutable language configuration.
type Config struct {
	name      string
	grammar   *Grammar
	nucleus   map[string]int
	minVowels int
	maxVowels int
	silence   string
	punct     *regexp.Regexp
	special   map[string]bool
}

// New validates p and builds a Config. Any empty delimiter, an empty
// nucleus table or a malformed punctuation pattern is a ConfigError.
func New(p Params) (*Config, error) {
	g, err := NewGrammar(p.WordSep, p.SyllableSep, p.SliceSep, p.PhoneSep)
	if err != nil {
		return nil, err
	}
	if len(p.Nucleus) == 0 {
		return nil, scripterr.Configf("nucleus", "empty recognition table")
	}
	if p.MaxVowelsPerSyllable < 1 {
		return nil, scripterr.Configf("maxVowelsPerSyllable", "must be at least 1, got %d", p.MaxVowelsPerSyllable)
	}
	if p.MinVowelsPerSyllable < 0 || p.MinVowelsPerSyllable > p.MaxVowelsPerSyllable {
		return nil, scripterr.Configf("minVowelsPerSyllable", "%d out of range [0, %d]", p.MinVowelsPerSyllable, p.MaxVowelsPerSyllable)
	}
	if p.SilencePhone == "" {
		return nil, scripterr.Configf("silencePhone", "must not be empty")
	}
	punct, err := regexp.Compile(p.PunctuationPattern)
	if err != nil {
		return nil, scripterr.Configf("punctuationPattern", "%v", err)
	}
	nucleus := make(map[string]int, len(p.Nucleus))
	for slice, n := range p.Nucleus {
		if slice == "" || n < 1 {
			return nil, scripterr.Configf("nucleus", "entry %q: vowel count %d", slice, n)
		}
		nucleus[slice] = n
	}
	special := make(map[string]bool, len(p.SpecialUnits))
	for _, s := range p.SpecialUnits {
		special[s] = true
	}
	return &Config{
		name:      p.Name,
		grammar:   g,
		nucleus:   nucleus,
		minVowels: p.MinVowelsPerSyllable,
		maxVowels: p.MaxVowelsPerSyllable,
		silence:   p.SilencePhone,
		punct:     punct,
		special:   special,
	}, nil
}

// Name returns the language name.
func (c *Config) Name() string { return c.name }

// Grammar returns the pronunciation grammar for this language.
func (c *Config) Grammar() *Grammar { return c.grammar }

// VowelCount returns the number of vowels borne by a slice, or 0 when
// the slice is not in the nucleus table.
func (c *Config) VowelCount(slice string) int { return c.nucleus[slice] }

// IsNucleus reports whether the slice bears at least one vowel.
func (c *Config) IsNucleus(slice string) bool { return c.nucleus[slice] > 0 }

// MaxVowelsPerSyllable returns the upper bound on vowel-bearing slices
// in one syllable.
func (c *Config) MaxVowelsPerSyllable() int { return c.maxVowels }

// MinVowelsPerSyllable returns the lower vowel bound.
func (c *Config) MinVowelsPerSyllable() int { return c.minVowels }

// SilencePhone returns the silence sentinel phone name.
func (c *Config) SilencePhone() string { return c.silence }

// IsPunctuation reports whether a word text is punctuation.
func (c *Config) IsPunctuation(text string) bool {
	return text != "" && c.punct.MatchString(text)
}

// IsSpecial reports whether a unit name is a non-phonetic special.
func (c *Config) IsSpecial(name string) bool { return c.special[name] }

// StripStress splits a trailing stress or tone digit off a phone name.
// "ae1" yields ("ae", 1, true); names without a digit suffix are returned
// unchanged with ok = false.
func StripStress(name string) (base string, digit int, ok bool) {
	if name == "" {
		return name, 0, false
	}
	last := name[len(name)-1]
	if last < '0' || last > '9' {
		return name, 0, false
	}
	base = strings.TrimRight(name, "0123456789")
	if base == "" {
		// A bare digit is not a stressed phone name.
		return name, 0, false
	}
	digit = 0
	for _, r := range name[len(base):] {
		digit = digit*10 + int(r-'0')
	}
	return base, digit, true
}
