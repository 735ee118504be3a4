// Package tokenize turns raw text lines into word tokens for the ptwordfinder CLI.
//
// A line is stripped of leading and trailing whitespace and dropped entirely when
// nothing is left. Surviving lines are split on runs of whitespace, and every
// segment is reduced to its letters and digits (Unicode-aware). A segment made
// only of punctuation becomes an empty token; it is kept so token positions
// within a line stay aligned with the source segments.
//
// Usage Example:
//
//	scanner := tokenize.NewScanner(file)
//	for scanner.Scan() {
//		for _, token := range scanner.Tokens() {
//			// ...
//		}
//	}
//	if err := scanner.Err(); err != nil {
//		// handle read error
//	}
//
// The Scanner is forward-only: it reads its source once and cannot be rewound.
package tokenize

import (
	"bufio"
	"io"
	"iter"
	"strings"
	"unicode"
)

// DefaultMaxLineBytes is the longest line the Scanner accepts by default.
const DefaultMaxLineBytes = 1024 * 1024

// initialBufferBytes matches bufio's own starting buffer size.
const initialBufferBytes = 64 * 1024

// Scanner produces one token list per non-blank line of its source.
type Scanner struct {
	lines  *bufio.Scanner
	tokens []string
	line   int // 1-based number of the source line behind tokens
}

// NewScanner returns a Scanner reading from r with DefaultMaxLineBytes.
func NewScanner(r io.Reader) *Scanner {
	return NewScannerSize(r, DefaultMaxLineBytes)
}

// NewScannerSize returns a Scanner that fails with bufio.ErrTooLong on lines
// longer than maxLineBytes. A non-positive size selects DefaultMaxLineBytes.
func NewScannerSize(r io.Reader, maxLineBytes int) *Scanner {
	return &Scanner{lines: NewLineScanner(r, maxLineBytes)}
}

// NewLineScanner returns a bufio.Scanner splitting r into raw lines, with its
// buffer sized for lines up to maxLineBytes.
func NewLineScanner(r io.Reader, maxLineBytes int) *bufio.Scanner {
	if maxLineBytes <= 0 {
		maxLineBytes = DefaultMaxLineBytes
	}

	initial := initialBufferBytes
	if maxLineBytes < initial {
		initial = maxLineBytes
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, initial), maxLineBytes)
	return scanner
}

// Scan advances to the next non-blank line. It returns false at the end of the
// source or on a read error; call Err to tell the two apart.
func (s *Scanner) Scan() bool {
	for s.lines.Scan() {
		s.line++

		tokens := Line(s.lines.Text())
		if tokens == nil {
			continue // blank lines are never emitted
		}

		s.tokens = tokens
		return true
	}

	s.tokens = nil
	return false
}

// Tokens returns the token list of the current line. The slice is owned by the
// caller; the Scanner allocates a fresh one per line.
func (s *Scanner) Tokens() []string {
	return s.tokens
}

// LineNumber returns the 1-based source line number of the current token list.
func (s *Scanner) LineNumber() int {
	return s.line
}

// Err returns the first non-EOF error encountered by the Scanner.
func (s *Scanner) Err() error {
	return s.lines.Err()
}

// Lines returns an iterator over the token lists of r. A read error is
// yielded once, with nil tokens, and ends the sequence.
func Lines(r io.Reader) iter.Seq2[[]string, error] {
	return func(yield func([]string, error) bool) {
		s := NewScanner(r)
		for s.Scan() {
			if !yield(s.Tokens(), nil) {
				return
			}
		}
		if err := s.Err(); err != nil {
			yield(nil, err)
		}
	}
}

// Line tokenizes a single raw line. It returns nil when the line is blank
// after trimming whitespace.
func Line(raw string) []string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil
	}

	// strings.Fields splits on runs of unicode whitespace, never yielding empty segments
	segments := strings.Fields(trimmed)
	tokens := make([]string, len(segments))
	for i, segment := range segments {
		tokens[i] = Normalize(segment)
	}
	return tokens
}

// Normalize keeps only the letters and digits of segment, in order.
// A segment without any returns the empty string.
func Normalize(segment string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsNumber(r) {
			return r
		}
		return -1
	}, segment)
}
