package assets

import (
	"embed"
	"io"
)

//go:embed words.txt
var FS embed.FS

// DefaultWordsName is the name reported for the embedded list.
const DefaultWordsName = "words.txt"

// DefaultWords opens the embedded default word list.
// Lines starting with '#' are comments.
func DefaultWords() (io.ReadCloser, error) {
	return FS.Open(DefaultWordsName)
}
