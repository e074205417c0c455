package feature

import "github.com/ieee0824/ttscript-go/script"

// wordPosTable maps a unit's syllable position within its word. The row
// picks whether the syllable is word-initial (the previous syllable, if
// any, crosses a word boundary into this word), the column whether it is
// word-final (this syllable crosses a word boundary going forward).
// Index 0 = false, 1 = true.
var wordPosTable = [2][2]script.WordPosition{
	{script.WordPosMiddle, script.WordPosTail},
	{script.WordPosHead, script.WordPosMono},
}

// breakBucket folds the six break levels into the four rows/columns of
// the sentence-position table.
func breakBucket(b script.BreakLevel) int {
	switch {
	case b <= script.BreakWord:
		return 0
	case b == script.BreakInterPhrase:
		return 1
	case b == script.BreakIntonationPhrase:
		return 2
	}
	return 3
}

// sentencePosTable maps (previous word's break bucket, current word's
// break bucket) to a sentence position. A word opens a major phrase when
// the break before it is at least an intonation phrase, and closes one
// when its own break is. The previous break defaults to the Sentence row
// at utterance start. A Question word kind overrides the cell with Quest.
var sentencePosTable = [4][4]script.SentencePosition{
	{script.SentencePosMiddle, script.SentencePosMiddle, script.SentencePosTail, script.SentencePosTail},
	{script.SentencePosMiddle, script.SentencePosMiddle, script.SentencePosTail, script.SentencePosTail},
	{script.SentencePosHead, script.SentencePosMiddle, script.SentencePosMiddle, script.SentencePosTail},
	{script.SentencePosHead, script.SentencePosHead, script.SentencePosMiddle, script.SentencePosSingle},
}
