package counter

import (
	"io"
	"regexp"

	"github.com/chriscorrea/ptwordfinder/internal/pattern"
	"github.com/chriscorrea/ptwordfinder/internal/tokenize"
)

// PatternCounter counts regular-expression matches on raw lines.
type PatternCounter struct {
	re           *regexp.Regexp
	maxLineBytes int
}

// NewPatternCounter compiles expr as a case-sensitive regular expression.
// With Literal the expression is sanitized first. A malformed expression is
// returned as an error.
func NewPatternCounter(expr string, opts ...Option) (*PatternCounter, error) {
	o := buildOptions(opts)

	re, err := pattern.Compile(expr, o.literal)
	if err != nil {
		return nil, err
	}

	return &PatternCounter{
		re:           re,
		maxLineBytes: o.maxLineBytes,
	}, nil
}

// CountReader sums the non-overlapping matches of the pattern on every line of r.
// Lines are matched without their line terminator and are not trimmed, so a
// pattern such as `\n` never matches and blank lines only match patterns that
// accept empty input.
func (pc *PatternCounter) CountReader(r io.Reader) (int, error) {
	scanner := tokenize.NewLineScanner(r, pc.maxLineBytes)

	count := 0
	for scanner.Scan() {
		count += len(pc.re.FindAllStringIndex(scanner.Text(), -1))
	}

	if err := scanner.Err(); err != nil {
		return 0, err
	}
	return count, nil
}

// Pattern returns the compiled expression source.
func (pc *PatternCounter) Pattern() string {
	return pc.re.String()
}

// Name returns the name of this counting method for logging and debugging.
func (pc *PatternCounter) Name() string {
	return "pattern"
}
