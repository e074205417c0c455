package script

import "github.com/ieee0824/ttscript-go/scripterr"

// Sentence is one orthographic sentence. The word list is derived from
// the raw text/pronunciation pair and rebuilt lazily after either
// changes; alternate "accept" word sequences are carried alongside.
type Sentence struct {
	Type    SentenceType
	Emotion string

	text  string
	pron  string
	words derived[[]*Word]

	accepts [][]*Word
}

// NewSentence builds a sentence from its raw text and pronunciation.
// The pronunciation may be empty.
func NewSentence(text, pron string) *Sentence {
	return &Sentence{text: text, pron: pron}
}

// Text returns the raw sentence text.
func (s *Sentence) Text() string { return s.text }

// SetText replaces the raw text and marks the word list dirty.
func (s *Sentence) SetText(text string) {
	if text == s.text {
		return
	}
	s.text = text
	s.words.invalidate()
}

// Pronunciation returns the raw sentence pronunciation.
func (s *Sentence) Pronunciation() string { return s.pron }

// SetPronunciation replaces the raw pronunciation and marks the word
// list dirty.
func (s *Sentence) SetPronunciation(pron string) {
	if pron == s.pron {
		return
	}
	s.pron = pron
	s.words.invalidate()
}

// Words returns the derived word list, rebuilding it first when dirty.
func (s *Sentence) Words() ([]*Word, error) { return s.words.get() }

// SetWordBuilder installs the rebuild function for the word list and
// marks it dirty.
func (s *Sentence) SetWordBuilder(build func() ([]*Word, error)) {
	s.words.setBuilder(build)
}

// StoreWords fills the word list directly and marks it clean. Changing
// word-list membership this way is a structural mutation, so every
// word's derived unit cache survives untouched only if the caller reuses
// the same word values.
func (s *Sentence) StoreWords(words []*Word) { s.words.store(words) }

// InvalidateWords marks the word list dirty.
func (s *Sentence) InvalidateWords() { s.words.invalidate() }

// WordsClean reports whether the word list is clean.
func (s *Sentence) WordsClean() bool { return s.words.isClean() }

// AddAccept appends an alternate word sequence.
func (s *Sentence) AddAccept(words []*Word) { s.accepts = append(s.accepts, words) }

// Accepts returns the alternate word sequences.
func (s *Sentence) Accepts() [][]*Word { return s.accepts }

// Units returns the sentence's unit sequence in word order, rebuilding
// any dirty word-level caches on the way.
func (s *Sentence) Units() ([]*Unit, error) {
	words, err := s.Words()
	if err != nil {
		return nil, err
	}
	var units []*Unit
	for _, w := range words {
		if !w.Kind.Pronounceable() {
			continue
		}
		wu, err := w.Units()
		if err != nil {
			return nil, err
		}
		units = append(units, wu...)
	}
	return units, nil
}

// WordOf resolves a unit's word back-reference.
func (s *Sentence) WordOf(u *Unit) (*Word, error) {
	words, err := s.Words()
	if err != nil {
		return nil, err
	}
	if u.WordIndex < 0 || u.WordIndex >= len(words) {
		return nil, scripterr.Structuralf("unit word index %d out of range [0, %d)", u.WordIndex, len(words))
	}
	return words[u.WordIndex], nil
}

// SyllableOf resolves a unit's syllable back-reference through its word,
// guaranteeing a single ancestor path.
func (s *Sentence) SyllableOf(u *Unit) (*Syllable, error) {
	w, err := s.WordOf(u)
	if err != nil {
		return nil, err
	}
	if u.SyllableIndex < 0 || u.SyllableIndex >= len(w.Syllables) {
		return nil, scripterr.Structuralf("unit syllable index %d out of range [0, %d)", u.SyllableIndex, len(w.Syllables))
	}
	return w.Syllables[u.SyllableIndex], nil
}
