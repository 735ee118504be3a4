package counter

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/kljensen/snowball"

	"github.com/chriscorrea/ptwordfinder/internal/tokenize"
	"github.com/chriscorrea/ptwordfinder/internal/wordset"
)

// Tally is the outcome of one WordSetCounter pass.
type Tally struct {
	Lines   int // non-blank lines read
	Matches int // tokens found in the word set
}

// WordSetCounter counts tokens that belong to a word set.
type WordSetCounter struct {
	set          wordset.Set
	stemLanguage string
	maxLineBytes int
}

// NewWordSetCounter creates a WordSetCounter for set. With WithStemming the set
// entries are stemmed once here; an unsupported language is reported as an error.
func NewWordSetCounter(set wordset.Set, opts ...Option) (*WordSetCounter, error) {
	o := buildOptions(opts)

	if o.stemLanguage != "" {
		if _, err := snowball.Stem("word", o.stemLanguage, true); err != nil {
			return nil, fmt.Errorf("unsupported stem language %q: %w", o.stemLanguage, err)
		}

		stemmed := make([]string, 0, set.Len())
		for word := range set {
			stem, err := stemWord(word, o.stemLanguage)
			if err != nil {
				return nil, err
			}
			stemmed = append(stemmed, stem)
		}
		set = wordset.New(stemmed...)
		slog.Debug("Word set stemmed", "language", o.stemLanguage, "stems", set.Len())
	}

	return &WordSetCounter{
		set:          set,
		stemLanguage: o.stemLanguage,
		maxLineBytes: o.maxLineBytes,
	}, nil
}

// CountReader returns the number of tokens in r that belong to the set.
func (wc *WordSetCounter) CountReader(r io.Reader) (int, error) {
	tally, err := wc.Tally(r)
	if err != nil {
		return 0, err
	}
	return tally.Matches, nil
}

// Tally counts non-blank lines and matching tokens of r in a single pass.
// An empty set never matches, whatever the content.
func (wc *WordSetCounter) Tally(r io.Reader) (Tally, error) {
	var tally Tally
	scanner := tokenize.NewScannerSize(r, wc.maxLineBytes)

	for scanner.Scan() {
		tally.Lines++

		if wc.set.Len() == 0 {
			continue
		}

		for _, token := range scanner.Tokens() {
			if wc.contains(token) {
				tally.Matches++
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return Tally{}, err
	}
	return tally, nil
}

// contains checks token membership, by stem when stemming is enabled.
func (wc *WordSetCounter) contains(token string) bool {
	if wc.stemLanguage == "" || token == "" {
		return wc.set.Contains(token)
	}

	// language was validated in the constructor
	stem, err := stemWord(token, wc.stemLanguage)
	if err != nil {
		return wc.set.Contains(token)
	}
	return wc.set.Contains(stem)
}

// Name returns the name of this counting method for logging and debugging.
func (wc *WordSetCounter) Name() string {
	if wc.stemLanguage != "" {
		return fmt.Sprintf("words (%s stems)", wc.stemLanguage)
	}
	return "words"
}

// stemWord stems word with snowball; blank words are left alone.
func stemWord(word, language string) (string, error) {
	if word == "" {
		return "", nil
	}

	stem, err := snowball.Stem(word, language, true)
	if err != nil {
		return "", fmt.Errorf("failed to stem %q (%s): %w", word, language, err)
	}
	return stem, nil
}
