package script

import "github.com/ieee0824/ttscript-go/acoustic"

// Phone is a single phonetic segment. Tone is the optional stress or
// tone digit read off the written pronunciation, kept as written.
type Phone struct {
	Name      string
	Tone      string
	Acoustics *acoustic.Block
}
