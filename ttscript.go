// Package ttscript builds fully annotated script trees for text-to-speech
// unit selection: words, syllables, slices and synthesis units with
// contextual features, plus a scope-gated consistency validator.
package ttscript

import (
	"fmt"

	"github.com/ieee0824/ttscript-go/feature"
	"github.com/ieee0824/ttscript-go/language"
	"github.com/ieee0824/ttscript-go/lexicon"
	"github.com/ieee0824/ttscript-go/script"
	"github.com/ieee0824/ttscript-go/unit"
	"github.com/ieee0824/ttscript-go/validate"
)

// RawEntry is one (sentence text, pronunciation) pair from the ingestion
// layer. Pronunciation may be empty; the lexicon fallback fills it per
// word when configured.
type RawEntry struct {
	Text          string
	Pronunciation string
}

// RawItem is one script record as delivered by the ingestion layer.
type RawItem struct {
	ID       string // empty means generate
	Kind     script.ItemKind
	Language string
	Engine   string
	Entries  []RawEntry
}

// Annotator is the top-level build/annotate/validate pipeline for one
// language.
type Annotator struct {
	Config *language.Config
	Scope  validate.Scope

	builder *unit.Builder
	calc    *feature.Calculator
	engine  *validate.Engine
}

// Option configures an Annotator.
type Option func(*Annotator)

// WithLexicon installs a fallback pronunciation dictionary.
func WithLexicon(d *lexicon.Dictionary) Option {
	return func(a *Annotator) {
		a.builder.SetLexicon(d)
	}
}

// WithScope selects which validation checks run. Default is ScopeAll.
func WithScope(s validate.Scope) Option {
	return func(a *Annotator) {
		a.Scope = s
	}
}

// New creates an Annotator for the given language.
func New(cfg *language.Config, opts ...Option) *Annotator {
	a := &Annotator{
		Config:  cfg,
		Scope:   validate.ScopeAll,
		builder: unit.NewBuilder(cfg),
		calc:    feature.NewCalculator(cfg),
	}
	for _, opt := range opts {
		opt(a)
	}
	a.engine = validate.NewEngine(cfg, a.Scope)
	return a
}

// BuildItem builds one fully annotated item from raw entries. A
// structural fault aborts this item only; the caller continues with the
// next item.
func (a *Annotator) BuildItem(raw RawItem) (*script.Item, error) {
	it := script.NewItem(raw.ID)
	it.Kind = raw.Kind

	for i, e := range raw.Entries {
		s := script.NewSentence(e.Text, e.Pronunciation)
		if err := a.builder.Attach(s); err != nil {
			return nil, fmt.Errorf("item %s: sentence %d: %w", it.ID, i, err)
		}
		if err := a.calc.Annotate(s); err != nil {
			return nil, fmt.Errorf("item %s: sentence %d: %w", it.ID, i, err)
		}
		s.Type = sentenceType(s)
		if err := it.AddSentence(s); err != nil {
			return nil, err
		}
	}
	return it, nil
}

// sentenceType derives the sentence tag from the final punctuation.
func sentenceType(s *script.Sentence) script.SentenceType {
	words, err := s.Words()
	if err != nil {
		return script.Declarative
	}
	for i := len(words) - 1; i >= 0; i-- {
		switch words[i].Kind {
		case script.KindQuestion:
			return script.Interrogative
		case script.KindExclamation:
			return script.Exclamatory
		case script.KindPeriod:
			return script.Declarative
		}
	}
	return script.Declarative
}

// Validate runs the scope-selected checks over items, appending
// violations to the caller-owned errs. The returned map carries per-item
// structural failures; those items keep their partial findings.
func (a *Annotator) Validate(items []*script.Item, errs *[]validate.Violation) map[string]error {
	return a.engine.CheckItems(items, errs)
}

// RebuildText regenerates the sentence text and pronunciation from an
// edited tree: the reverse of BuildItem for one sentence.
func (a *Annotator) RebuildText(s *script.Sentence) (text, pron string, err error) {
	text, err = a.builder.RebuildText(s)
	if err != nil {
		return "", "", err
	}
	pron, err = a.builder.RebuildPronunciation(s)
	if err != nil {
		return "", "", err
	}
	return text, pron, nil
}
