// Package lexicon provides the fallback pronunciation dictionary used
// for normal words that arrive without a pronunciation string.
package lexicon

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Entry is a single pronunciation for a word. Pron is a multi-level
// pronunciation string in the language's separator grammar.
type Entry struct {
	Word string
	Pron string
}

// Dictionary holds word-to-pronunciation mappings.
type Dictionary struct {
	entries map[string][]Entry
}

// NewDictionary creates an empty dictionary.
func NewDictionary() *Dictionary {
	return &Dictionary{entries: make(map[string][]Entry)}
}

// Add adds a pronunciation entry. Lookup keys are case-folded.
func (d *Dictionary) Add(word, pron string) {
	key := strings.ToLower(word)
	d.entries[key] = append(d.entries[key], Entry{Word: word, Pron: pron})
}

// Load reads a dictionary from a tab-separated stream.
// Format: word<TAB>pronunciation. Blank lines and '#' comments are
// skipped.
func Load(r io.Reader) (*Dictionary, error) {
	d := NewDictionary()
	scanner := bufio.NewScanner(r)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.SplitN(line, "\t", 2)
		if len(parts) < 2 {
			return nil, fmt.Errorf("line %d: expected 2 tab-separated fields, got %d", lineNum, len(parts))
		}
		d.Add(parts[0], strings.TrimSpace(parts[1]))
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return d, nil
}

// LoadFile is a convenience wrapper that opens a file path.
func LoadFile(path string) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(f)
}

// Lookup returns all pronunciation variants for a word.
func (d *Dictionary) Lookup(word string) []Entry {
	return d.entries[strings.ToLower(word)]
}

// Pronunciation returns the first pronunciation for a word.
func (d *Dictionary) Pronunciation(word string) (string, bool) {
	entries := d.entries[strings.ToLower(word)]
	if len(entries) == 0 {
		return "", false
	}
	return entries[0].Pron, true
}

// Words returns all words in the dictionary.
func (d *Dictionary) Words() []string {
	words := make([]string, 0, len(d.entries))
	for w := range d.entries {
		words = append(words, w)
	}
	return words
}
