package script

import "github.com/ieee0824/ttscript-go/acoustic"

// Syllable is one phonological grouping within a word's pronunciation.
// WordIndex is a non-owning back-reference: the index of the owning word
// in its sentence's word list.
type Syllable struct {
	Text      string
	Stress    int
	Break     BreakLevel
	Emphasis  bool
	Phones    []*Phone
	WordIndex int
	Acoustics *acoustic.Block
}

// FirstPhone returns the first phone, or nil for an empty syllable.
func (s *Syllable) FirstPhone() *Phone {
	if len(s.Phones) == 0 {
		return nil
	}
	return s.Phones[0]
}

// LastPhone returns the last phone, or nil for an empty syllable.
func (s *Syllable) LastPhone() *Phone {
	if len(s.Phones) == 0 {
		return nil
	}
	return s.Phones[len(s.Phones)-1]
}
