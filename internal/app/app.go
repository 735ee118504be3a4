// Package app contains the core application logic for the ptwordfinder CLI.
// It resolves targets, runs the selected counter over each of them and builds
// a report, keeping the business logic separate from CLI concerns.
package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/chriscorrea/ptwordfinder/internal/boilerplate"
	"github.com/chriscorrea/ptwordfinder/internal/counter"
	"github.com/chriscorrea/ptwordfinder/internal/extract"
	"github.com/chriscorrea/ptwordfinder/internal/source"
	"github.com/chriscorrea/ptwordfinder/internal/stats"
	"github.com/chriscorrea/ptwordfinder/internal/wordset"
)

// Mode selects what Run counts.
type Mode int

const (
	// WordList counts tokens found in a word list file (default)
	WordList Mode = iota
	// SingleWord counts tokens equal to one word
	SingleWord
	// Pattern counts regular-expression matches
	Pattern
	// Stats summarizes each target
	Stats
)

// String returns the string representation of the mode
func (m Mode) String() string {
	switch m {
	case WordList:
		return "words"
	case SingleWord:
		return "word"
	case Pattern:
		return "pattern"
	case Stats:
		return "stats"
	default:
		return "unknown"
	}
}

// Config holds all configuration options for the ptwordfinder application.
type Config struct {
	Mode             Mode
	WordList         string   // word list file (WordList mode)
	Word             string   // SingleWord mode
	Pattern          string   // Pattern mode
	Literal          bool     // sanitize Pattern before compiling
	Targets          []string // file paths, glob patterns, URLs or "-" for stdin
	OutputFormat     OutputFormat
	SkipBlankWords   bool   // drop the empty entry produced by blank word list lines
	StemLanguage     string // snowball language for WordList mode; empty = exact match
	MaxLineBytes     int
	HTML             bool   // treat every target as HTML
	Selector         string // CSS selector for HTML targets
	IncludeAll       bool   // skip readability filtering for HTML targets
	StripBoilerplate bool   // drop front matter and license paragraphs before counting
	Stats            stats.Options
	Progress         io.Writer // spinner / progress bar destination; nil disables progress output
}

// Result is the outcome for one target.
type Result struct {
	Target  string
	Lines   int // non-blank lines (WordList mode)
	Count   int
	Summary *stats.Summary // Stats mode
}

// Report is the outcome of a Run.
type Report struct {
	Mode    Mode
	Query   string // word, pattern or word list path
	Results []Result
	Lines   int // total non-blank lines (WordList mode)
	Count   int // total matches
	Elapsed time.Duration
}

// countFunc counts one opened target.
type countFunc func(r io.Reader) (Result, error)

// Run executes the ptwordfinder application logic with the given configuration.
//
// Targets are expanded first, then the counter for cfg.Mode is built once and
// run over each target in order. The first error aborts the run; a missing
// file is reported with an error satisfying errors.Is(err, fs.ErrNotExist).
//
// ctx allows for cancellation between targets and of URL fetches.
func Run(ctx context.Context, cfg Config) (*Report, error) {
	if len(cfg.Targets) == 0 {
		return nil, fmt.Errorf("no targets provided")
	}

	targets, err := ExpandTargets(cfg.Targets)
	if err != nil {
		return nil, err
	}

	count, query, err := newCountFunc(cfg)
	if err != nil {
		return nil, err
	}

	report := &Report{Mode: cfg.Mode, Query: query}

	progress := newProgress(ctx, cfg.Progress, cfg.Mode, targets)
	defer progress.finish()

	start := time.Now()
	for _, target := range targets {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		progress.begin(target)
		result, err := countTarget(ctx, cfg, target, count)
		if err != nil {
			return nil, err
		}
		progress.advance()

		report.Results = append(report.Results, result)
		report.Lines += result.Lines
		report.Count += result.Count
	}
	report.Elapsed = time.Since(start)

	slog.Debug("Run completed", "mode", cfg.Mode, "targets", len(targets), "count", report.Count, "elapsed", report.Elapsed)
	return report, nil
}

// newCountFunc builds the counter selected by cfg.Mode.
func newCountFunc(cfg Config) (countFunc, string, error) {
	opts := []counter.Option{counter.WithMaxLineBytes(cfg.MaxLineBytes)}

	switch cfg.Mode {
	case WordList:
		set, err := wordset.Load(cfg.WordList)
		if err != nil {
			return nil, "", err
		}
		if cfg.SkipBlankWords {
			set = set.WithoutBlank()
		}
		if cfg.StemLanguage != "" {
			opts = append(opts, counter.WithStemming(cfg.StemLanguage))
		}

		c, err := counter.NewWordSetCounter(set, opts...)
		if err != nil {
			return nil, "", err
		}
		return func(r io.Reader) (Result, error) {
			tally, err := c.Tally(r)
			return Result{Lines: tally.Lines, Count: tally.Matches}, err
		}, cfg.WordList, nil

	case SingleWord:
		return fromCounter(counter.NewWordCounter(cfg.Word, opts...)), cfg.Word, nil

	case Pattern:
		if cfg.Literal {
			opts = append(opts, counter.Literal())
		}
		c, err := counter.NewPatternCounter(cfg.Pattern, opts...)
		if err != nil {
			return nil, "", err
		}
		return fromCounter(c), cfg.Pattern, nil

	case Stats:
		statsOpts := cfg.Stats
		statsOpts.MaxLineBytes = cfg.MaxLineBytes
		s, err := stats.NewSummarizer(statsOpts)
		if err != nil {
			return nil, "", err
		}
		return func(r io.Reader) (Result, error) {
			summary, err := s.Summarize(r)
			if err != nil {
				return Result{}, err
			}
			return Result{Lines: summary.Lines, Count: summary.Words, Summary: summary}, nil
		}, "", nil

	default:
		return nil, "", fmt.Errorf("unknown mode %d", cfg.Mode)
	}
}

func fromCounter(c counter.Counter) countFunc {
	return func(r io.Reader) (Result, error) {
		n, err := c.CountReader(r)
		return Result{Count: n}, err
	}
}

// countTarget opens target, converts HTML when needed, and counts it.
// The target is closed before returning on every path.
func countTarget(ctx context.Context, cfg Config, target string, count countFunc) (Result, error) {
	content, err := source.Open(ctx, target)
	if err != nil {
		return Result{}, err
	}
	defer content.Close()

	var r io.Reader = content
	if cfg.HTML || content.HTML {
		text, err := extract.ToText(content, extractOptions(cfg, target))
		if err != nil {
			return Result{}, fmt.Errorf("failed to extract text from %q: %w", target, err)
		}
		r = strings.NewReader(text)
	}

	if cfg.StripBoilerplate {
		data, err := io.ReadAll(r)
		if err != nil {
			return Result{}, fmt.Errorf("failed to read %q: %w", target, err)
		}
		text, removed := boilerplate.Strip(string(data))
		slog.Debug("Boilerplate stripped", "target", target, "paragraphs", removed)
		r = strings.NewReader(text)
	}

	result, err := count(r)
	if err != nil {
		return Result{}, fmt.Errorf("failed to count %s in %q: %w", cfg.Mode, target, err)
	}

	result.Target = target
	slog.Debug("Target counted", "target", target, "lines", result.Lines, "count", result.Count)
	return result, nil
}

func extractOptions(cfg Config, target string) extract.Options {
	opts := extract.Options{
		Selector:   cfg.Selector,
		IncludeAll: cfg.IncludeAll,
	}
	if source.IsURL(target) {
		opts.BaseURL, _ = url.Parse(target) // nil on parse errors is fine
	}
	return opts
}
