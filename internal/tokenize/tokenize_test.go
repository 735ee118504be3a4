package tokenize

import (
	"bufio"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func collect(t *testing.T, s *Scanner) [][]string {
	t.Helper()

	var lines [][]string
	for s.Scan() {
		lines = append(lines, s.Tokens())
	}
	if err := s.Err(); err != nil {
		t.Fatalf("Scanner.Err() = %v, want nil", err)
	}
	return lines
}

func TestScanner(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected [][]string
	}{
		{"empty source", "", nil},
		{"single line", "This is a line.\n", [][]string{{"This", "is", "a", "line"}}},
		{"blank line dropped", "Line 1.\n\nLine 2\n", [][]string{{"Line", "1"}, {"Line", "2"}}},
		{"whitespace-only line dropped", "one\n \t  \ntwo", [][]string{{"one"}, {"two"}}},
		{
			"leading and trailing whitespace",
			"  Some text  \n\n More text, with special characters!@#$%^&*()\n",
			[][]string{{"Some", "text"}, {"More", "text", "with", "special", "characters"}},
		},
		{"inner punctuation removed", "123abc!@#$\n", [][]string{{"123abc"}}},
		{"unicode letters kept", "漢字日本語\nZażółć gęślą jaźń\n", [][]string{{"漢字日本語"}, {"Zażółć", "gęślą", "jaźń"}}},
		{"pure punctuation segment kept as empty token", "word -- word\n", [][]string{{"word", "", "word"}}},
		{"runs of whitespace", "a    b\t\t c\n", [][]string{{"a", "b", "c"}}},
		{"windows line endings", "first line\r\nsecond\r\n", [][]string{{"first", "line"}, {"second"}}},
		{"no trailing newline", "last line", [][]string{{"last", "line"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := collect(t, NewScanner(strings.NewReader(tt.input)))
			if !reflect.DeepEqual(result, tt.expected) {
				t.Errorf("tokens of %q = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestScannerLineNumbers(t *testing.T) {
	scanner := NewScanner(strings.NewReader("\nfirst\n\n\nsecond\n"))

	var numbers []int
	for scanner.Scan() {
		numbers = append(numbers, scanner.LineNumber())
	}

	if !reflect.DeepEqual(numbers, []int{2, 5}) {
		t.Errorf("line numbers = %v, want [2 5]", numbers)
	}
}

func TestScannerOneListPerNonBlankLine(t *testing.T) {
	input := "alpha beta\n\n   \ngamma\n\t\ndelta epsilon zeta\n"

	var nonBlank []string
	for _, line := range strings.Split(input, "\n") {
		if strings.TrimSpace(line) != "" {
			nonBlank = append(nonBlank, line)
		}
	}

	result := collect(t, NewScanner(strings.NewReader(input)))
	if len(result) != len(nonBlank) {
		t.Fatalf("got %d token lists, want %d", len(result), len(nonBlank))
	}

	for i, tokens := range result {
		if want := strings.Fields(nonBlank[i]); !reflect.DeepEqual(tokens, want) {
			t.Errorf("list %d = %q, want %q", i, tokens, want)
		}
	}
}

func TestScannerNotRestartable(t *testing.T) {
	scanner := NewScanner(strings.NewReader("one\ntwo\n"))
	if got := len(collect(t, scanner)); got != 2 {
		t.Fatalf("first pass produced %d lists, want 2", got)
	}

	if scanner.Scan() {
		t.Error("Scan() after exhaustion = true, want false")
	}
	if scanner.Tokens() != nil {
		t.Errorf("Tokens() after exhaustion = %q, want nil", scanner.Tokens())
	}
}

func TestScannerFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "poem.txt")
	content := "Litwo! Ojczyzno moja! ty jesteś jak zdrowie:\n\nIle cię trzeba cenić, ten tylko się dowie,\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	file, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer file.Close()

	result := collect(t, NewScanner(file))
	expected := [][]string{
		{"Litwo", "Ojczyzno", "moja", "ty", "jesteś", "jak", "zdrowie"},
		{"Ile", "cię", "trzeba", "cenić", "ten", "tylko", "się", "dowie"},
	}
	if !reflect.DeepEqual(result, expected) {
		t.Errorf("tokens = %q, want %q", result, expected)
	}
}

func TestScannerLineTooLong(t *testing.T) {
	input := "short\n" + strings.Repeat("x", 100) + "\n"
	scanner := NewScannerSize(strings.NewReader(input), 32)

	if !scanner.Scan() {
		t.Fatal("expected first short line to scan")
	}
	if scanner.Scan() {
		t.Fatal("expected oversized line to stop the scanner")
	}
	if !errors.Is(scanner.Err(), bufio.ErrTooLong) {
		t.Errorf("Err() = %v, want bufio.ErrTooLong", scanner.Err())
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		segment  string
		expected string
	}{
		{"", ""},
		{"file.", "file"},
		{"don't", "dont"},
		{"(quoted)", "quoted"},
		{"---", ""},
		{"a-b_c", "abc"},
		{"Ojczyzno!", "Ojczyzno"},
		{"x²", "x²"},
		{"١٢٣", "١٢٣"},
	}

	for _, tt := range tests {
		t.Run(tt.segment, func(t *testing.T) {
			if result := Normalize(tt.segment); result != tt.expected {
				t.Errorf("Normalize(%q) = %q, want %q", tt.segment, result, tt.expected)
			}
		})
	}
}

func TestLine(t *testing.T) {
	if tokens := Line("   \t "); tokens != nil {
		t.Errorf("Line(blank) = %q, want nil", tokens)
	}

	tokens := Line("  It contains words.  ")
	if !reflect.DeepEqual(tokens, []string{"It", "contains", "words"}) {
		t.Errorf("Line() = %q", tokens)
	}
}

func TestLines(t *testing.T) {
	var got [][]string
	for tokens, err := range Lines(strings.NewReader("one two\n\nthree\n")) {
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		got = append(got, tokens)
	}

	expected := [][]string{{"one", "two"}, {"three"}}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("Lines() = %q, want %q", got, expected)
	}

	// stopping early must not panic
	for range Lines(strings.NewReader("a\nb\nc\n")) {
		break
	}

	var lastErr error
	for _, err := range Lines(strings.NewReader(strings.Repeat("x", DefaultMaxLineBytes+1))) {
		lastErr = err
	}
	if !errors.Is(lastErr, bufio.ErrTooLong) {
		t.Errorf("expected bufio.ErrTooLong, got %v", lastErr)
	}
}
