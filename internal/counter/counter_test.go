package counter

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"regexp/syntax"
	"strings"
	"testing"

	"github.com/chriscorrea/ptwordfinder/internal/pattern"
	"github.com/chriscorrea/ptwordfinder/internal/wordset"
)

const sampleContent = "This is a sample file.\nIt contains words that we will search for.\nSample file has words to count.\n"

// writeFile creates a file with content in a per-test temp directory.
func writeFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test_file.txt")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}
	return path
}

func TestCountWordInFile(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		word     string
		expected int
	}{
		{"punctuation stripped", sampleContent, "file", 2},
		{"case sensitive lower", sampleContent, "sample", 1},
		{"case sensitive title", sampleContent, "Sample", 1},
		{"absent word", sampleContent, "missing", 0},
		{"no substring matches", "files profile file\n", "file", 1},
		{"empty file", "", "word", 0},
		{"only blank lines", "\n\n   \n", "word", 0},
		{"repeated", "the the. The\nthe,\n", "the", 3},
		{"unicode", "Litwo! Ojczyzno moja!\nLitwo\n", "Litwo", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, tt.content)

			result, err := CountWordInFile(tt.word, path)
			if err != nil {
				t.Fatalf("CountWordInFile error: %v", err)
			}
			if result != tt.expected {
				t.Errorf("CountWordInFile(%q) = %d, want %d", tt.word, result, tt.expected)
			}
		})
	}
}

func TestCountWordInFile_CaseSensitivity(t *testing.T) {
	path := writeFile(t, "Word word word\n")

	upper, err := CountWordInFile("Word", path)
	if err != nil {
		t.Fatal(err)
	}
	lower, err := CountWordInFile("word", path)
	if err != nil {
		t.Fatal(err)
	}

	if upper != 1 || lower != 2 {
		t.Errorf("got Word=%d word=%d, want 1 and 2", upper, lower)
	}
}

func TestCountMultipleWordsInFile(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		words    []string
		expected int
	}{
		{"sample scenario", sampleContent, []string{"sample", "file", "count"}, 4},
		{"empty set", sampleContent, nil, 0},
		{"occurrences not distinct words", "a a a b\n", []string{"a"}, 3},
		{"no matches", sampleContent, []string{"absent"}, 0},
		{"empty file", "", []string{"word"}, 0},
		{"blank entry matches punctuation tokens", "word -- word\n", []string{""}, 1},
		{"polish corpus", "Litwo! Ojczyzno moja! ty jesteś jak zdrowie.\nIle cię trzeba cenić, ten tylko się dowie,\nKto cię stracił. Litwo\n", []string{"Litwo", "ojczyzno"}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, tt.content)

			result, err := CountMultipleWordsInFile(wordset.New(tt.words...), path)
			if err != nil {
				t.Fatalf("CountMultipleWordsInFile error: %v", err)
			}
			if result != tt.expected {
				t.Errorf("CountMultipleWordsInFile(%q) = %d, want %d", tt.words, result, tt.expected)
			}
		})
	}
}

func TestWordSetCounterTally(t *testing.T) {
	c, err := NewWordSetCounter(wordset.New("sample", "file", "count"))
	if err != nil {
		t.Fatal(err)
	}

	tally, err := c.Tally(strings.NewReader("\n" + sampleContent + "\n\n"))
	if err != nil {
		t.Fatalf("Tally error: %v", err)
	}

	if tally.Lines != 3 {
		t.Errorf("Lines = %d, want 3", tally.Lines)
	}
	if tally.Matches != 4 {
		t.Errorf("Matches = %d, want 4", tally.Matches)
	}
}

func TestWordSetCounterEmptySetStillCountsLines(t *testing.T) {
	c, err := NewWordSetCounter(wordset.New())
	if err != nil {
		t.Fatal(err)
	}

	tally, err := c.Tally(strings.NewReader(sampleContent))
	if err != nil {
		t.Fatal(err)
	}
	if tally.Lines != 3 || tally.Matches != 0 {
		t.Errorf("Tally = %+v, want 3 lines and 0 matches", tally)
	}
}

func TestWordSetCounterStemming(t *testing.T) {
	c, err := NewWordSetCounter(wordset.New("run"), WithStemming("english"))
	if err != nil {
		t.Fatalf("NewWordSetCounter error: %v", err)
	}

	count, err := c.CountReader(strings.NewReader("running runs\nwalked\n"))
	if err != nil {
		t.Fatal(err)
	}
	if count != 2 {
		t.Errorf("stemmed count = %d, want 2", count)
	}

	if c.Name() != "words (english stems)" {
		t.Errorf("Name() = %q", c.Name())
	}
}

func TestWordSetCounterUnknownLanguage(t *testing.T) {
	_, err := NewWordSetCounter(wordset.New("run"), WithStemming("klingon"))
	if err == nil {
		t.Fatal("expected error for unsupported stem language")
	}
}

func TestCountPatternInFile(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		pattern  string
		expected int
	}{
		{"no matches", "This is a test file without any test matches.\n", "899", 0},
		{"matches", "This is a test file without any test matches.\n", "test", 2},
		{"empty file", "", `\w+`, 0},
		{"newline never matches", "\n\n\n", `\n`, 0},
		{"single match", "This is a test line with word.\n", "word", 1},
		{"multiple matches", "This is the first line. The second line also has the.\nA third line, but without the pattern.\n", "the", 3},
		{"case sensitive", "This is a test line with word.\n", "Word", 0},
		{"blank lines ignored", "This is a line with word.\n\nAnother line\n", "line", 2},
		{"multiple spaces", "This   is  a line with  word. \n", "word", 1},
		{"non-overlapping", "aaaa\n", "aa", 2},
		{"raw regex", "a1 b22\nc333\n", `\d+`, 3},
		{"punctuation preserved", "end. end.\n", `end\.`, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, tt.content)

			result, err := CountPatternInFile(tt.pattern, path)
			if err != nil {
				t.Fatalf("CountPatternInFile error: %v", err)
			}
			if result != tt.expected {
				t.Errorf("CountPatternInFile(%q) = %d, want %d", tt.pattern, result, tt.expected)
			}
		})
	}
}

func TestCountPatternInFile_Sanitized(t *testing.T) {
	literal := `^$()[]{}.*+?|\`
	path := writeFile(t, literal+"\n")

	result, err := CountPatternInFile(pattern.Sanitize(literal), path)
	if err != nil {
		t.Fatalf("sanitized pattern error: %v", err)
	}
	if result < 1 {
		t.Errorf("sanitized pattern matched %d times, want >= 1", result)
	}

	if _, err := CountPatternInFile(literal, path); err == nil {
		t.Error("expected raw metacharacter pattern to fail compilation")
	}
}

func TestPatternCounterLiteral(t *testing.T) {
	c, err := NewPatternCounter("a.c", Literal())
	if err != nil {
		t.Fatal(err)
	}

	count, err := c.CountReader(strings.NewReader("abc a.c\n"))
	if err != nil {
		t.Fatal(err)
	}
	if count != 1 {
		t.Errorf("literal count = %d, want 1", count)
	}
	if c.Pattern() != `a\.c` {
		t.Errorf("Pattern() = %q", c.Pattern())
	}
}

func TestCountPatternInFile_Malformed(t *testing.T) {
	path := writeFile(t, sampleContent)

	_, err := CountPatternInFile("(unclosed", path)
	var syntaxErr *syntax.Error
	if !errors.As(err, &syntaxErr) {
		t.Errorf("expected wrapped *syntax.Error, got %v", err)
	}
}

func TestCountersMissingFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nonexistent_file.txt")

	counters := map[string]func() (int, error){
		"word":    func() (int, error) { return CountWordInFile("word", missing) },
		"words":   func() (int, error) { return CountMultipleWordsInFile(wordset.New("word"), missing) },
		"pattern": func() (int, error) { return CountPatternInFile("word", missing) },
	}

	for name, run := range counters {
		t.Run(name, func(t *testing.T) {
			count, err := run()
			if !errors.Is(err, fs.ErrNotExist) {
				t.Errorf("expected fs.ErrNotExist, got %v", err)
			}
			if count != 0 {
				t.Errorf("count = %d, want 0 on error", count)
			}
		})
	}
}

func TestCountersIdempotent(t *testing.T) {
	path := writeFile(t, sampleContent)

	for i := 0; i < 2; i++ {
		word, err := CountWordInFile("file", path)
		if err != nil || word != 2 {
			t.Errorf("pass %d: CountWordInFile = %d, %v", i, word, err)
		}
		words, err := CountMultipleWordsInFile(wordset.New("sample", "file", "count"), path)
		if err != nil || words != 4 {
			t.Errorf("pass %d: CountMultipleWordsInFile = %d, %v", i, words, err)
		}
		matches, err := CountPatternInFile("words", path)
		if err != nil || matches != 2 {
			t.Errorf("pass %d: CountPatternInFile = %d, %v", i, matches, err)
		}
	}
}

func TestMaxLineBytes(t *testing.T) {
	long := strings.Repeat("word ", 20) + "\n"

	if _, err := NewWordCounter("word", WithMaxLineBytes(16)).CountReader(strings.NewReader(long)); err == nil {
		t.Error("expected word counter to reject oversized line")
	}

	c, err := NewPatternCounter("word", WithMaxLineBytes(16))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := c.CountReader(strings.NewReader(long)); err == nil {
		t.Error("expected pattern counter to reject oversized line")
	}
}

func TestNames(t *testing.T) {
	ws, _ := NewWordSetCounter(wordset.New())
	pc, _ := NewPatternCounter("x")

	var counters = []struct {
		counter  Counter
		expected string
	}{
		{NewWordCounter("x"), "word"},
		{ws, "words"},
		{pc, "pattern"},
	}

	for _, tt := range counters {
		if tt.counter.Name() != tt.expected {
			t.Errorf("Name() = %q, want %q", tt.counter.Name(), tt.expected)
		}
	}
}
