package language

// americanNuclei maps ARPAbet vowel slices to the number of vowels they
// bear. General American syllables carry exactly one vowel slice;
// diphthongs are a single slice.
var americanNuclei = []struct {
	slice  string
	vowels int
}{
	// monophthongs
	{"aa", 1}, {"ae", 1}, {"ah", 1}, {"ao", 1}, {"ax", 1},
	{"eh", 1}, {"er", 1}, {"ih", 1}, {"ix", 1}, {"iy", 1},
	{"uh", 1}, {"uw", 1},
	// r-colored
	{"axr", 1},
	// diphthongs
	{"aw", 1}, {"ay", 1}, {"ey", 1}, {"ow", 1}, {"oy", 1},
}

var americanConfig *Config

func init() {
	nucleus := make(map[string]int, len(americanNuclei))
	for _, e := range americanNuclei {
		nucleus[e.slice] = e.vowels
	}
	cfg, err := New(Params{
		Name:                 "en-US",
		WordSep:              "/",
		SyllableSep:          "-",
		SliceSep:             ".",
		PhoneSep:             " ",
		Nucleus:              nucleus,
		MinVowelsPerSyllable: 1,
		MaxVowelsPerSyllable: 1,
		SilencePhone:         "sil",
		PunctuationPattern:   `^[.,!?;:'"()\[\]{}<>_…—-]+$`,
		SpecialUnits:         []string{"sil", "sp", "br"},
	})
	if err != nil {
		panic(err) // built-in table must be valid
	}
	americanConfig = cfg
}

// GeneralAmerican returns the built-in en-US configuration: ARPAbet
// vowel table, one vowel slice per syllable, default separators.
func GeneralAmerican() *Config { return americanConfig }
