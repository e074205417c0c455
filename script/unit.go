package script

import "strings"

// Features is the contextual feature bundle attached to every unit by
// the feature calculator.
type Features struct {
	LeftPhone  string
	LeftTone   string
	RightPhone string
	RightTone  string

	PosInSyllable SyllablePosition
	PosInWord     WordPosition
	PosInSentence SentencePosition

	WordTone WordTone
	Stress   int
	Emphasis bool
}

// Unit is one synthesis unit: the phones of a single slice plus the
// features consumed by acoustic unit selection. WordIndex and
// SyllableIndex are non-owning back-references into the sentence's word
// list and the word's syllable list; they must resolve to exactly one
// ancestor path.
type Unit struct {
	Phones []*Phone
	Break  BreakLevel

	// Kind is the effective word kind: the owning word's kind, upgraded
	// to Question when the word absorbed a question mark.
	Kind WordKind

	WordIndex     int
	SyllableIndex int

	// Offset is the byte offset of the first phone name within the
	// owning word's pronunciation string.
	Offset int

	Features Features
}

// Name returns the unit's slice name: phone names joined by spaces.
func (u *Unit) Name() string {
	names := make([]string, len(u.Phones))
	for i, p := range u.Phones {
		names[i] = p.Name
	}
	return strings.Join(names, " ")
}

// FirstPhone returns the unit's first phone, or nil.
func (u *Unit) FirstPhone() *Phone {
	if len(u.Phones) == 0 {
		return nil
	}
	return u.Phones[0]
}

// LastPhone returns the unit's last phone, or nil.
func (u *Unit) LastPhone() *Phone {
	if len(u.Phones) == 0 {
		return nil
	}
	return u.Phones[len(u.Phones)-1]
}
