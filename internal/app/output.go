package app

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/chriscorrea/ptwordfinder/internal/stats"
)

// OutputFormat defines the output format for results
type OutputFormat int

const (
	// human-readable sentences (default)
	Text OutputFormat = iota
	// JSON document
	JSON
)

// String returns the string representation of the output format
func (f OutputFormat) String() string {
	switch f {
	case Text:
		return "Text"
	case JSON:
		return "JSON"
	default:
		return "Unknown"
	}
}

// ParseOutputFormat maps "text" or "json" to an OutputFormat.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch strings.ToLower(s) {
	case "", "text":
		return Text, nil
	case "json":
		return JSON, nil
	default:
		return Text, fmt.Errorf("unknown output format %q", s)
	}
}

// Format renders the report.
func (r *Report) Format(f OutputFormat) (string, error) {
	switch f {
	case JSON:
		return r.formatJSON()
	case Text:
		return r.formatText(), nil
	default:
		return "", fmt.Errorf("unknown output format %d", f)
	}
}

func (r *Report) formatText() string {
	var b strings.Builder

	switch r.Mode {
	case WordList:
		if len(r.Results) > 1 {
			for _, result := range r.Results {
				fmt.Fprintf(&b, "%s: %d lines, %d words\n", result.Target, result.Lines, result.Count)
			}
		}
		fmt.Fprintf(&b, "Number of lines : %d\n", r.Lines)
		fmt.Fprintf(&b, "Found: %d words\n", r.Count)
		fmt.Fprintf(&b, "Time elapsed: %.1f second\n", r.Elapsed.Seconds())

	case SingleWord:
		for _, result := range r.Results {
			fmt.Fprintf(&b, "The word '%s' appears %d times in the file '%s'.\n", r.Query, result.Count, result.Target)
		}

	case Pattern:
		for _, result := range r.Results {
			fmt.Fprintf(&b, "The pattern '%s' appears %d times in the file '%s'.\n", r.Query, result.Count, result.Target)
		}

	case Stats:
		for i, result := range r.Results {
			if i > 0 {
				b.WriteString("\n")
			}
			writeSummary(&b, result.Target, result.Summary)
		}
	}

	return b.String()
}

func writeSummary(b *strings.Builder, target string, s *stats.Summary) {
	fmt.Fprintf(b, "File: %s\n", target)
	if s == nil {
		return
	}

	fmt.Fprintf(b, "Number of lines : %d\n", s.Lines)
	fmt.Fprintf(b, "Words: %d\n", s.Words)
	fmt.Fprintf(b, "Characters: %d\n", s.Characters)
	if s.LLMTokens > 0 {
		fmt.Fprintf(b, "LLM tokens: %d\n", s.LLMTokens)
	}
	if s.Sentences > 0 {
		fmt.Fprintf(b, "Sentences: %d\n", s.Sentences)
	}
	if len(s.Top) > 0 {
		b.WriteString("Top words:\n")
		for _, wc := range s.Top {
			fmt.Fprintf(b, "  %-20s %d\n", wc.Word, wc.Count)
		}
	}
}

// jsonResult and jsonReport are the JSON shapes of Result and Report.
type jsonResult struct {
	Target string         `json:"target"`
	Lines  int            `json:"lines,omitempty"`
	Count  int            `json:"count"`
	Stats  *stats.Summary `json:"stats,omitempty"`
}

type jsonReport struct {
	Mode           string       `json:"mode"`
	Query          string       `json:"query,omitempty"`
	Results        []jsonResult `json:"results"`
	Lines          int          `json:"lines,omitempty"`
	Count          int          `json:"count"`
	ElapsedSeconds float64      `json:"elapsed_seconds"`
}

func (r *Report) formatJSON() (string, error) {
	out := jsonReport{
		Mode:           r.Mode.String(),
		Query:          r.Query,
		Results:        make([]jsonResult, 0, len(r.Results)),
		Lines:          r.Lines,
		Count:          r.Count,
		ElapsedSeconds: r.Elapsed.Seconds(),
	}
	for _, result := range r.Results {
		out.Results = append(out.Results, jsonResult{
			Target: result.Target,
			Lines:  result.Lines,
			Count:  result.Count,
			Stats:  result.Summary,
		})
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshaling report to JSON: %w", err)
	}
	return string(data) + "\n", nil
}
