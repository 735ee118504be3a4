// Package boilerplate strips front matter and license paragraphs, such as the
// Project Gutenberg header and footer, from a text before it is counted.
//
// A paragraph is a run of non-blank lines. Each paragraph is scored by the share
// of its tokens whose English snowball stem is a known marker stem ("gutenberg",
// "licens", "copyright", ...). A paragraph whose share exceeds a position-based
// threshold is dropped. The threshold is lowest at the start and end of the
// text, where such material sits, and highest in the middle.
package boilerplate

import (
	"log/slog"
	"math"
	"strings"

	"github.com/kljensen/snowball"

	"github.com/chriscorrea/ptwordfinder/internal/tokenize"
)

// markerStems are English snowball stems typical of publishing and license text.
var markerStems = map[string]struct{}{
	// publishing
	"author":    {},
	"chapter":   {},
	"content":   {}, // "table of contents"
	"edit":      {}, // "edition"
	"ebook":     {},
	"etext":     {},
	"gutenberg": {},
	"illustr":   {},
	"produc":    {}, // "produced by"
	"project":   {},
	"publish":   {},
	"releas":    {},
	"transcrib": {},
	"updat":     {},

	// license
	"copyright": {},
	"distribut": {},
	"donat":     {},
	"fee":       {},
	"licens":    {},
	"permiss":   {},
	"royalti":   {},
	"term":      {},
	"trademark": {},
	"warranti":  {},

	// references
	"http":  {},
	"https": {},
	"isbn":  {},
	"org":   {},
	"www":   {},
}

const (
	edgeThreshold   = 0.1
	middleThreshold = 0.33
	shortThreshold  = 0.5 // texts of three paragraphs or fewer
)

// Strip removes boilerplate paragraphs from text and reports how many were
// removed. Kept paragraphs are joined by a blank line.
func Strip(text string) (string, int) {
	paragraphs := Paragraphs(text)

	kept := make([]string, 0, len(paragraphs))
	for i, p := range paragraphs {
		if IsBoilerplate(p, i, len(paragraphs)) {
			slog.Debug("Dropping boilerplate paragraph", "index", i, "total", len(paragraphs))
			continue
		}
		kept = append(kept, p)
	}

	removed := len(paragraphs) - len(kept)
	if len(kept) == 0 {
		return "", removed
	}
	return strings.Join(kept, "\n\n") + "\n", removed
}

// Paragraphs splits text into runs of non-blank lines.
func Paragraphs(text string) []string {
	var (
		paragraphs []string
		current    []string
	)
	flush := func() {
		if len(current) > 0 {
			paragraphs = append(paragraphs, strings.Join(current, "\n"))
			current = current[:0]
		}
	}

	for _, line := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n") {
		if strings.TrimSpace(line) == "" {
			flush()
			continue
		}
		current = append(current, line)
	}
	flush()

	return paragraphs
}

// IsBoilerplate reports whether the paragraph at index of total paragraphs
// should be dropped. Out-of-range positions are never boilerplate; a paragraph
// without tokens always is.
func IsBoilerplate(paragraph string, index, total int) bool {
	if total <= 0 || index < 0 || index >= total {
		return false
	}

	tokens, markers := 0, 0
	for _, line := range strings.Split(paragraph, "\n") {
		for _, token := range tokenize.Line(line) {
			if token == "" {
				continue
			}
			tokens++
			if isMarker(token) {
				markers++
			}
		}
	}
	if tokens == 0 {
		return true
	}

	return float64(markers)/float64(tokens) > threshold(index, total)
}

func isMarker(token string) bool {
	stem, err := snowball.Stem(strings.ToLower(token), "english", true)
	if err != nil {
		stem = strings.ToLower(token)
	}
	_, ok := markerStems[stem]
	return ok
}

// threshold rises linearly from the edges of the text to its middle.
func threshold(index, total int) float64 {
	if total <= 3 {
		return shortThreshold
	}

	position := float64(index) / float64(total-1)
	factor := 1.0 - math.Abs(2.0*position-1.0)
	return edgeThreshold + (middleThreshold-edgeThreshold)*factor
}
