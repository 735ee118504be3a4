package stats

import (
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"

	"github.com/chriscorrea/ptwordfinder/internal/tokenize"
)

// Options selects the optional parts of a Summary.
type Options struct {
	Top          int  // number of most frequent words to report (0 = none)
	LLMTokens    bool // count cl100k_base tokens
	Sentences    bool // count sentences
	MaxLineBytes int
}

// WordCount is a word and its number of occurrences.
type WordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// Summary describes one text.
type Summary struct {
	Lines      int         `json:"lines"`
	Words      int         `json:"words"`
	Characters int         `json:"characters"`
	LLMTokens  int         `json:"llm_tokens,omitempty"`
	Sentences  int         `json:"sentences,omitempty"`
	Top        []WordCount `json:"top,omitempty"`
}

// Summarizer computes summaries. The tiktoken encoding is loaded once and reused.
type Summarizer struct {
	opts     Options
	measures []Measure
}

// NewSummarizer prepares the measures requested by opts.
func NewSummarizer(opts Options) (*Summarizer, error) {
	s := &Summarizer{opts: opts}

	if opts.LLMTokens {
		tm, err := NewTokenMeasure()
		if err != nil {
			return nil, err
		}
		s.measures = append(s.measures, tm)
	}
	if opts.Sentences {
		s.measures = append(s.measures, SentenceMeasure{})
	}

	return s, nil
}

// Summarize reads r fully and summarizes it.
func (s *Summarizer) Summarize(r io.Reader) (*Summary, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read content: %w", err)
	}
	text := string(data)

	summary := &Summary{
		Characters: CharMeasure{}.Count(text),
	}

	freq := make(map[string]int)
	scanner := tokenize.NewScannerSize(strings.NewReader(text), s.opts.MaxLineBytes)
	for scanner.Scan() {
		summary.Lines++
		for _, token := range scanner.Tokens() {
			if token == "" {
				continue
			}
			summary.Words++
			freq[token]++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	for _, m := range s.measures {
		switch m.(type) {
		case *TokenMeasure:
			summary.LLMTokens = m.Count(text)
		case SentenceMeasure:
			summary.Sentences = m.Count(text)
		}
		slog.Debug("Measure calculated", "measure", m.Name())
	}

	summary.Top = topWords(freq, s.opts.Top)
	return summary, nil
}

// topWords returns the n most frequent words, ties broken alphabetically.
func topWords(freq map[string]int, n int) []WordCount {
	if n <= 0 || len(freq) == 0 {
		return nil
	}

	words := make([]WordCount, 0, len(freq))
	for word, count := range freq {
		words = append(words, WordCount{Word: word, Count: count})
	}

	sort.Slice(words, func(i, j int) bool {
		if words[i].Count == words[j].Count {
			return words[i].Word < words[j].Word
		}
		return words[i].Count > words[j].Count
	})

	if n > len(words) {
		n = len(words)
	}
	return words[:n]
}
