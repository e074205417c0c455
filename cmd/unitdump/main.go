package main

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	ttscript "github.com/ieee0824/ttscript-go"
	"github.com/ieee0824/ttscript-go/language"
	"github.com/ieee0824/ttscript-go/lexicon"
)

func main() {
	lang := flag.String("lang", "en", "language config: en or zh")
	dictPath := flag.String("dict", "", "path to fallback pronunciation dictionary (TSV)")
	pron := flag.String("pron", "", "sentence pronunciation (optional with -dict)")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Usage: unitdump [-lang en|zh] [-dict FILE] [-pron PRON] TEXT")
		flag.PrintDefaults()
		os.Exit(1)
	}
	text := flag.Arg(0)

	var cfg *language.Config
	switch *lang {
	case "en", "en-US":
		cfg = language.GeneralAmerican()
	case "zh", "zh-CN":
		cfg = language.Mandarin()
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown language %q\n", *lang)
		os.Exit(1)
	}

	var opts []ttscript.Option
	if *dictPath != "" {
		dict, err := lexicon.LoadFile(*dictPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: load dictionary: %v\n", err)
			os.Exit(1)
		}
		opts = append(opts, ttscript.WithLexicon(dict))
	}
	a := ttscript.New(cfg, opts...)

	it, err := a.BuildItem(ttscript.RawItem{Entries: []ttscript.RawEntry{
		{Text: text, Pronunciation: *pron},
	}})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	s := it.Sentences[0]
	units, err := s.Units()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("sentence: %q  type=%s  units=%d\n", s.Text(), s.Type, len(units))
	w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "UNIT\tOFF\tBREAK\tSYLPOS\tWORDPOS\tSENTPOS\tTONE\tLEFT\tRIGHT")
	for _, u := range units {
		f := u.Features
		fmt.Fprintf(w, "%s\t%d\t%s\t%s\t%s\t%s\t%s\t%s%s\t%s%s\n",
			u.Name(), u.Offset, u.Break,
			f.PosInSyllable, f.PosInWord, f.PosInSentence, f.WordTone,
			f.LeftPhone, f.LeftTone, f.RightPhone, f.RightTone)
	}
	w.Flush()
}
