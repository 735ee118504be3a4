// Package extract turns HTML targets into plain text lines that the counters
// can read. Block elements end up on their own lines; inline markup is
// flattened to its text.
package extract

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"strings"

	md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"github.com/go-shiori/go-readability"
)

// Options controls which part of an HTML document is kept.
type Options struct {
	Selector   string   // CSS selector; overrides IncludeAll when set
	IncludeAll bool     // keep the whole document instead of the readability main content
	BaseURL    *url.URL // document URL for readability (may be nil)
}

// ToText extracts text from the HTML in content.
//
// The default keeps the main content found by go-readability. A selector keeps
// only the matching elements, and IncludeAll keeps everything.
func ToText(content io.Reader, opts Options) (string, error) {
	raw, err := io.ReadAll(content)
	if err != nil {
		return "", fmt.Errorf("failed to read HTML content: %w", err)
	}

	if len(bytes.TrimSpace(raw)) == 0 {
		return "", nil
	}

	var html string
	switch {
	case opts.Selector != "":
		html, err = selectHTML(raw, opts.Selector)
	case opts.IncludeAll:
		html = string(raw)
	default:
		html, err = mainContent(raw, opts.BaseURL)
	}
	if err != nil {
		return "", err
	}

	text, err := convertToText(html)
	if err != nil {
		return "", err
	}

	slog.Debug("HTML converted to text", "htmlBytes", len(raw), "textBytes", len(text), "selector", opts.Selector, "includeAll", opts.IncludeAll)
	return text, nil
}

// mainContent uses go-readability to extract the main article content.
func mainContent(raw []byte, baseURL *url.URL) (string, error) {
	if baseURL == nil {
		baseURL = &url.URL{}
	}

	article, err := readability.FromReader(bytes.NewReader(raw), baseURL)
	if err != nil {
		return "", fmt.Errorf("failed to extract main content: %w", err)
	}
	return article.Content, nil
}

// selectHTML returns the outer HTML of every element matching selector.
func selectHTML(raw []byte, selector string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(raw))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	matcher, err := cascadia.Compile(selector)
	if err != nil {
		return "", fmt.Errorf("invalid selector %q: %w", selector, err)
	}

	selection := doc.FindMatcher(matcher)
	if selection.Length() == 0 {
		return "", fmt.Errorf("no elements found matching selector: %s", selector)
	}

	var parts []string
	selection.Each(func(i int, s *goquery.Selection) {
		if html, err := goquery.OuterHtml(s); err == nil {
			parts = append(parts, html)
		}
	})

	if len(parts) == 0 {
		return "", fmt.Errorf("failed to extract HTML from selection")
	}
	return strings.Join(parts, "\n"), nil
}

// textRules flatten inline markup so counted text carries no markdown syntax.
var textRules = []md.Rule{
	{
		Filter: []string{"strong", "b", "em", "i", "code", "del", "s", "a", "span"},
		Replacement: func(content string, selec *goquery.Selection, opt *md.Options) *string {
			return &content
		},
	},
	{
		Filter: []string{"h1", "h2", "h3", "h4", "h5", "h6"},
		Replacement: func(content string, selec *goquery.Selection, opt *md.Options) *string {
			text := "\n\n" + strings.TrimSpace(content) + "\n\n"
			return &text
		},
	},
	{
		Filter: []string{"img"},
		Replacement: func(content string, selec *goquery.Selection, opt *md.Options) *string {
			alt := selec.AttrOr("alt", "")
			return &alt
		},
	},
}

// convertToText converts an HTML string into line-structured text.
func convertToText(html string) (string, error) {
	// escaping would add backslashes the pattern counter could see
	converter := md.NewConverter("", true, &md.Options{EscapeMode: "disabled"})
	converter.AddRules(textRules...)

	text, err := converter.ConvertString(html)
	if err != nil {
		return "", fmt.Errorf("failed to convert HTML to text: %w", err)
	}

	text = strings.TrimSpace(text)
	for strings.Contains(text, "\n\n\n") {
		text = strings.ReplaceAll(text, "\n\n\n", "\n\n")
	}
	if text == "" {
		return "", nil
	}
	return text + "\n", nil
}
