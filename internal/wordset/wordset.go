// Package wordset loads the lists of target words counted by ptwordfinder.
package wordset

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"strings"
)

// Set is an unordered collection of unique words. It is not modified after
// construction.
type Set map[string]struct{}

// New creates a Set holding words.
func New(words ...string) Set {
	set := make(Set, len(words))
	for _, word := range words {
		set[word] = struct{}{}
	}
	return set
}

// Load reads a word list file with one word per line.
func Load(path string) (Set, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening word list: %w", err)
	}
	defer file.Close()

	set, err := Read(file)
	if err != nil {
		return nil, fmt.Errorf("reading word list %q: %w", path, err)
	}

	slog.Debug("Word list loaded", "path", path, "words", set.Len())
	return set, nil
}

// Read builds a Set from r, one word per line with surrounding whitespace
// stripped. Blank lines become the empty-string entry; use WithoutBlank to drop it.
func Read(r io.Reader) (Set, error) {
	set := make(Set)
	scanner := bufio.NewScanner(r)

	for scanner.Scan() {
		set[strings.TrimSpace(scanner.Text())] = struct{}{}
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return set, nil
}

// Contains reports whether word is in the set. Matching is exact and case-sensitive.
func (s Set) Contains(word string) bool {
	_, ok := s[word]
	return ok
}

// Len returns the number of distinct words.
func (s Set) Len() int {
	return len(s)
}

// WithoutBlank returns a copy of s without the empty-string entry.
func (s Set) WithoutBlank() Set {
	filtered := make(Set, len(s))
	for word := range s {
		if word != "" {
			filtered[word] = struct{}{}
		}
	}
	return filtered
}

// Words returns the words of the set in sorted order.
func (s Set) Words() []string {
	words := make([]string, 0, len(s))
	for word := range s {
		words = append(words, word)
	}
	sort.Strings(words)
	return words
}
