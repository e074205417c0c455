package script

import (
	"github.com/google/uuid"

	"github.com/ieee0824/ttscript-go/scripterr"
)

// Item is one script transcript record: the root of the annotation tree.
type Item struct {
	ID         string
	Kind       ItemKind
	Frequency  int
	Difficulty float64
	Sentences  []*Sentence
}

// NewItem builds an item. An empty id gets a generated UUID: every item
// must carry a unique, non-empty id.
func NewItem(id string) *Item {
	if id == "" {
		id = uuid.NewString()
	}
	return &Item{ID: id}
}

// AddSentence appends a sentence. Appending the same sentence value
// twice would break single-parent ownership, so it is rejected.
func (it *Item) AddSentence(s *Sentence) error {
	for _, have := range it.Sentences {
		if have == s {
			return scripterr.Structuralf("sentence already owned by item").At(it.ID, "")
		}
	}
	it.Sentences = append(it.Sentences, s)
	return nil
}
