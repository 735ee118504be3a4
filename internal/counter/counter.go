// Package counter implements the counting strategies of the ptwordfinder CLI.
//
// Three strategies are provided, each reading its input line by line in a
// single pass:
//   - WordCounter counts tokens equal to one word (exact, case-sensitive)
//   - WordSetCounter counts tokens belonging to a set of words
//   - PatternCounter counts regular-expression matches on raw lines
//
// Usage Example:
//
//	count, err := counter.CountWordInFile("Litwo", "pan-tadeusz.txt")
//	// Returns how many tokens of the file equal "Litwo"
//
// The word counters share the tokenize package's view of a line, so
// "file." and "file" are the same word. The pattern counter sees raw text.
// Counters hold no mutable state and can be used from several goroutines.
package counter

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/chriscorrea/ptwordfinder/internal/wordset"
)

// Counter defines the interface shared by the counting strategies.
type Counter interface {
	// CountReader consumes r and returns the number of matches found in it.
	CountReader(r io.Reader) (int, error)

	// Name returns a human-readable name for this counting method (for logging)
	Name() string
}

// CountFile opens the file at path, runs c over its content and closes it.
// A missing file yields an error satisfying errors.Is(err, fs.ErrNotExist).
func CountFile(c Counter, path string) (int, error) {
	file, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	count, err := c.CountReader(file)
	if err != nil {
		return 0, fmt.Errorf("failed to count %s in %q: %w", c.Name(), path, err)
	}

	slog.Debug("File counted", "path", path, "method", c.Name(), "count", count)
	return count, nil
}

// CountWordInFile returns how many tokens of the file equal word.
func CountWordInFile(word, path string) (int, error) {
	return CountFile(NewWordCounter(word), path)
}

// CountMultipleWordsInFile returns how many tokens of the file belong to set.
// Every occurrence counts, not every distinct word.
func CountMultipleWordsInFile(set wordset.Set, path string) (int, error) {
	c, err := NewWordSetCounter(set)
	if err != nil {
		return 0, err
	}
	return CountFile(c, path)
}

// CountPatternInFile returns the number of non-overlapping matches of the
// regular expression expr across the lines of the file.
func CountPatternInFile(expr, path string) (int, error) {
	c, err := NewPatternCounter(expr)
	if err != nil {
		return 0, err
	}
	return CountFile(c, path)
}
