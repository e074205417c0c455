package language

// mandarinFinals maps pinyin final slices to the number of vowels they
// bear. Tone digits ride on the nucleus phone and are stripped before
// lookup, so the table holds bare finals only. Compound finals bear more
// than one vowel.
var mandarinFinals = []struct {
	slice  string
	vowels int
}{
	// simple finals
	{"a", 1}, {"o", 1}, {"e", 1}, {"i", 1}, {"u", 1}, {"v", 1}, {"er", 1},
	// compound finals
	{"ai", 2}, {"ei", 2}, {"ao", 2}, {"ou", 2},
	{"ia", 2}, {"ie", 2}, {"ua", 2}, {"uo", 2}, {"ve", 2},
	{"iao", 3}, {"iou", 3}, {"uai", 3}, {"uei", 3},
	// nasal finals
	{"an", 1}, {"en", 1}, {"ang", 1}, {"eng", 1}, {"ong", 1},
	{"ian", 2}, {"in", 1}, {"iang", 2}, {"ing", 1}, {"iong", 2},
	{"uan", 2}, {"uen", 2}, {"uang", 2}, {"ueng", 2},
	{"van", 2}, {"vn", 1},
}

var mandarinConfig *Config

func init() {
	nucleus := make(map[string]int, len(mandarinFinals))
	for _, e := range mandarinFinals {
		nucleus[e.slice] = e.vowels
	}
	cfg, err := New(Params{
		Name:                 "zh-CN",
		WordSep:              "/",
		SyllableSep:          "-",
		SliceSep:             ".",
		PhoneSep:             " ",
		Nucleus:              nucleus,
		MinVowelsPerSyllable: 1,
		MaxVowelsPerSyllable: 3,
		SilencePhone:         "sil",
		PunctuationPattern:   `^[.,!?;:'"()\[\]{}<>_…—、。，！？；：「」『』（）《》-]+$`,
		SpecialUnits:         []string{"sil", "sp", "br"},
	})
	if err != nil {
		panic(err) // built-in table must be valid
	}
	mandarinConfig = cfg
}

// Mandarin returns the built-in zh-CN configuration: pinyin final table
// with tone digits on the nucleus, up to three vowels per syllable.
func Mandarin() *Config { return mandarinConfig }
