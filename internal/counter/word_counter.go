package counter

import (
	"io"

	"github.com/chriscorrea/ptwordfinder/internal/tokenize"
)

// WordCounter counts tokens equal to a single word.
type WordCounter struct {
	word         string
	maxLineBytes int
}

// NewWordCounter creates a WordCounter for word.
func NewWordCounter(word string, opts ...Option) *WordCounter {
	o := buildOptions(opts)
	return &WordCounter{
		word:         word,
		maxLineBytes: o.maxLineBytes,
	}
}

// CountReader returns the number of tokens in r equal to the word.
// Comparison is exact and case-sensitive: "File" does not match "file".
func (wc *WordCounter) CountReader(r io.Reader) (int, error) {
	scanner := tokenize.NewScannerSize(r, wc.maxLineBytes)

	count := 0
	for scanner.Scan() {
		for _, token := range scanner.Tokens() {
			if token == wc.word {
				count++
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return 0, err
	}
	return count, nil
}

// Name returns the name of this counting method for logging and debugging.
func (wc *WordCounter) Name() string {
	return "word"
}
