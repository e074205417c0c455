package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	ttscript "github.com/ieee0824/ttscript-go"
	"github.com/ieee0824/ttscript-go/language"
	"github.com/ieee0824/ttscript-go/lexicon"
	"github.com/ieee0824/ttscript-go/script"
	"github.com/ieee0824/ttscript-go/validate"
)

func main() {
	lang := flag.String("lang", "en", "language config: en or zh")
	dictPath := flag.String("dict", "", "path to fallback pronunciation dictionary (TSV)")
	scopeName := flag.String("scope", "all", "validation scope: all or acoustics")
	id := flag.String("id", "", "item id (default: generated)")
	flag.Parse()

	cfg, err := configFor(*lang)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	scope, err := scopeFor(*scopeName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	opts := []ttscript.Option{ttscript.WithScope(scope)}
	if *dictPath != "" {
		dict, err := lexicon.LoadFile(*dictPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: load dictionary: %v\n", err)
			os.Exit(2)
		}
		opts = append(opts, ttscript.WithLexicon(dict))
	}
	a := ttscript.New(cfg, opts...)

	in := os.Stdin
	if flag.NArg() > 0 {
		f, err := os.Open(flag.Arg(0))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(2)
		}
		defer f.Close()
		in = f
	}

	raw, err := readEntries(in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	if len(raw) == 0 {
		fmt.Fprintln(os.Stderr, "Usage: scriptcheck [-lang en|zh] [-dict FILE] [-scope all|acoustics] [FILE]")
		fmt.Fprintln(os.Stderr, "  Input: one sentence per line, text<TAB>pronunciation (pronunciation optional).")
		flag.PrintDefaults()
		os.Exit(2)
	}

	it, err := a.BuildItem(ttscript.RawItem{ID: *id, Entries: raw})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	var errs []validate.Violation
	failed := a.Validate([]*script.Item{it}, &errs)
	for idv, ferr := range failed {
		fmt.Fprintf(os.Stderr, "Error: item %s: %v\n", idv, ferr)
	}

	enc := json.NewEncoder(os.Stdout)
	for _, v := range errs {
		if err := enc.Encode(v); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(2)
		}
	}

	switch {
	case len(failed) > 0:
		os.Exit(2)
	case len(errs) > 0:
		os.Exit(1)
	}
}

// readEntries parses one sentence per line: text<TAB>pronunciation.
// Blank lines and '#' comments are skipped.
func readEntries(r io.Reader) ([]ttscript.RawEntry, error) {
	var entries []ttscript.RawEntry
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		text, pron, _ := strings.Cut(line, "\t")
		entries = append(entries, ttscript.RawEntry{
			Text:          strings.TrimSpace(text),
			Pronunciation: strings.TrimSpace(pron),
		})
	}
	return entries, scanner.Err()
}

func configFor(lang string) (*language.Config, error) {
	switch lang {
	case "en", "en-US":
		return language.GeneralAmerican(), nil
	case "zh", "zh-CN":
		return language.Mandarin(), nil
	}
	return nil, fmt.Errorf("unknown language %q", lang)
}

func scopeFor(name string) (validate.Scope, error) {
	switch name {
	case "all":
		return validate.ScopeAll, nil
	case "acoustics":
		return validate.ScopeAcoustics, nil
	}
	return 0, fmt.Errorf("unknown scope %q", name)
}
