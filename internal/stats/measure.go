// Package stats summarizes a text for the ptwordfinder `stats` command.
//
// A summary reports non-blank lines, words, characters and the most frequent
// words, plus two optional measures: LLM tokens (tiktoken, cl100k_base) and
// sentences (prose segmentation). Each measure implements Measure so new ones
// can be plugged in without touching Summarize.
package stats

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/jdkato/prose/v2"
	"github.com/pkoukk/tiktoken-go"
)

// Measure counts one kind of unit in a text.
type Measure interface {
	// Count returns the number of units in text.
	Count(text string) int

	// Name returns a human-readable name (for logging and output)
	Name() string
}

// CharMeasure counts characters as UTF-8 runes, not bytes.
type CharMeasure struct{}

// Count returns the number of runes in text.
func (CharMeasure) Count(text string) int {
	return utf8.RuneCountInString(text)
}

// Name returns the measure name.
func (CharMeasure) Name() string {
	return "characters"
}

// TokenMeasure counts LLM tokens using tiktoken w/ cl100k_base encoding.
type TokenMeasure struct {
	encoding *tiktoken.Tiktoken
	mu       sync.Mutex
}

// NewTokenMeasure loads the cl100k_base encoding.
func NewTokenMeasure() (*TokenMeasure, error) {
	encoding, err := tiktoken.GetEncoding("cl100k_base")
	if err != nil {
		return nil, fmt.Errorf("failed to initialize cl100k_base encoding: %w", err)
	}
	return &TokenMeasure{encoding: encoding}, nil
}

// Count returns the number of cl100k_base tokens in text.
func (tm *TokenMeasure) Count(text string) int {
	if text == "" {
		return 0
	}

	tm.mu.Lock()
	defer tm.mu.Unlock()

	// nil params: no special tokens allowed or disallowed
	return len(tm.encoding.Encode(text, nil, nil))
}

// Name returns the measure name.
func (tm *TokenMeasure) Name() string {
	return "llm tokens (cl100k_base)"
}

// SentenceMeasure counts sentences with prose's segmenter.
type SentenceMeasure struct{}

// Count returns the number of sentences in text, or 0 if segmentation fails.
func (SentenceMeasure) Count(text string) int {
	if strings.TrimSpace(text) == "" {
		return 0
	}

	doc, err := prose.NewDocument(text,
		prose.WithTokenization(false),
		prose.WithTagging(false),
		prose.WithExtraction(false),
	)
	if err != nil {
		slog.Debug("Sentence segmentation failed", "error", err)
		return 0
	}
	return len(doc.Sentences())
}

// Name returns the measure name.
func (SentenceMeasure) Name() string {
	return "sentences"
}
