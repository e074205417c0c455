// Package script holds the owning annotation tree: Item → Sentence →
// Word → Syllable → Phone, plus the derived synthesis-unit sequence.
// The tree is strictly single-parent; Unit→Syllable and Syllable→Word
// links are index back-references, never owning pointers.
package script

import "fmt"

// BreakLevel orders prosodic boundary strength.
type BreakLevel int

const (
	BreakPhone BreakLevel = iota
	BreakSyllable
	BreakWord
	BreakInterPhrase
	BreakIntonationPhrase
	BreakSentence
)

func (b BreakLevel) String() string {
	switch b {
	case BreakPhone:
		return "phone"
	case BreakSyllable:
		return "syllable"
	case BreakWord:
		return "word"
	case BreakInterPhrase:
		return "inter-phrase"
	case BreakIntonationPhrase:
		return "intonation-phrase"
	case BreakSentence:
		return "sentence"
	}
	return fmt.Sprintf("BreakLevel(%d)", int(b))
}

// WordKind classifies a word token.
type WordKind int

const (
	KindNormal WordKind = iota
	KindPeriod
	KindExclamation
	KindQuestion
	KindOtherPunctuation
	KindPunctuation
	KindSilence
	KindSpell
	KindBookmark
)

func (k WordKind) String() string {
	switch k {
	case KindNormal:
		return "normal"
	case KindPeriod:
		return "period"
	case KindExclamation:
		return "exclamation"
	case KindQuestion:
		return "question"
	case KindOtherPunctuation:
		return "other-punctuation"
	case KindPunctuation:
		return "punctuation"
	case KindSilence:
		return "silence"
	case KindSpell:
		return "spell"
	case KindBookmark:
		return "bookmark"
	}
	return fmt.Sprintf("WordKind(%d)", int(k))
}

// Known reports whether k is one of the defined kinds.
func (k WordKind) Known() bool { return k >= KindNormal && k <= KindBookmark }

// Pronounceable reports whether words of this kind carry pronunciation
// and emit synthesis units.
func (k WordKind) Pronounceable() bool { return k == KindNormal || k == KindSpell }

// IsPunctuation reports whether k is one of the punctuation kinds.
func (k WordKind) IsPunctuation() bool {
	switch k {
	case KindPeriod, KindExclamation, KindQuestion, KindOtherPunctuation, KindPunctuation:
		return true
	}
	return false
}

// WordTone is the tone tag carried by a word and propagated to the units
// of its last syllable; every other unit receives ToneContinue.
type WordTone int

const (
	ToneUnspecified WordTone = iota
	ToneContinue
	ToneRise
	ToneFall
	ToneLevel
)

func (t WordTone) String() string {
	switch t {
	case ToneContinue:
		return "continue"
	case ToneRise:
		return "rise"
	case ToneFall:
		return "fall"
	case ToneLevel:
		return "level"
	}
	return "unspecified"
}

// PronSource records where a word's pronunciation came from.
type PronSource int

const (
	SourceUnknown PronSource = iota
	SourceInput
	SourceLexicon
	SourceRule
)

func (s PronSource) String() string {
	switch s {
	case SourceInput:
		return "input"
	case SourceLexicon:
		return "lexicon"
	case SourceRule:
		return "rule"
	}
	return "unknown"
}

// SyllablePosition is a unit's structural position within its syllable.
// The nucleus variants encode whether the syllable has leading and/or
// trailing consonant slices around the nucleus.
type SyllablePosition int

const (
	PosUnknown SyllablePosition = iota
	PosOnset
	PosOnsetContinue
	PosNucleusInV
	PosNucleusInVC
	PosNucleusInCV
	PosNucleusInCVC
	PosCodaContinue
	PosCoda
)

func (p SyllablePosition) String() string {
	switch p {
	case PosOnset:
		return "Onset"
	case PosOnsetContinue:
		return "OnsetContinue"
	case PosNucleusInV:
		return "NucleusInV"
	case PosNucleusInVC:
		return "NucleusInVC"
	case PosNucleusInCV:
		return "NucleusInCV"
	case PosNucleusInCVC:
		return "NucleusInCVC"
	case PosCodaContinue:
		return "CodaContinue"
	case PosCoda:
		return "Coda"
	}
	return "Unknown"
}

// IsNucleus reports whether p is one of the nucleus variants.
func (p SyllablePosition) IsNucleus() bool {
	return p >= PosNucleusInV && p <= PosNucleusInCVC
}

// WordPosition is a unit's syllable position within its word.
type WordPosition int

const (
	WordPosMono WordPosition = iota
	WordPosHead
	WordPosMiddle
	WordPosTail
)

func (p WordPosition) String() string {
	switch p {
	case WordPosMono:
		return "Mono"
	case WordPosHead:
		return "Head"
	case WordPosMiddle:
		return "Middle"
	case WordPosTail:
		return "Tail"
	}
	return fmt.Sprintf("WordPosition(%d)", int(p))
}

// SentencePosition is a unit's word position within its sentence.
type SentencePosition int

const (
	SentencePosHead SentencePosition = iota
	SentencePosMiddle
	SentencePosTail
	SentencePosSingle
	SentencePosQuest
)

func (p SentencePosition) String() string {
	switch p {
	case SentencePosHead:
		return "Head"
	case SentencePosMiddle:
		return "Middle"
	case SentencePosTail:
		return "Tail"
	case SentencePosSingle:
		return "Single"
	case SentencePosQuest:
		return "Quest"
	}
	return fmt.Sprintf("SentencePosition(%d)", int(p))
}

// SentenceType tags a sentence's overall form.
type SentenceType int

const (
	Declarative SentenceType = iota
	Interrogative
	Exclamatory
	Imperative
)

func (t SentenceType) String() string {
	switch t {
	case Declarative:
		return "declarative"
	case Interrogative:
		return "interrogative"
	case Exclamatory:
		return "exclamatory"
	case Imperative:
		return "imperative"
	}
	return fmt.Sprintf("SentenceType(%d)", int(t))
}

// ItemKind is the domain kind of a script item.
type ItemKind int

const (
	ItemGeneral ItemKind = iota
	ItemNews
	ItemDialogue
	ItemSpell
)

func (k ItemKind) String() string {
	switch k {
	case ItemGeneral:
		return "general"
	case ItemNews:
		return "news"
	case ItemDialogue:
		return "dialogue"
	case ItemSpell:
		return "spell"
	}
	return fmt.Sprintf("ItemKind(%d)", int(k))
}
