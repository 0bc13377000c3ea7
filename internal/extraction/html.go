package extraction

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var (
	htmlTagPattern  = regexp.MustCompile(`(?i)<\s*(html|body|div|p|span|ul|li|h[1-6]|br|table|section)[\s>/]`)
	inlineSpace     = regexp.MustCompile(`[ \t\f\v]+`)
	excessiveBlanks = regexp.MustCompile(`\n{3,}`)
)

// blockSelectors get a line break after their text so list items and
// paragraphs do not run together.
const blockSelectors = "p, div, li, h1, h2, h3, h4, h5, h6, tr, section, article, header, footer, br"

// LooksLikeHTML reports whether text contains common HTML structure tags.
func LooksLikeHTML(text string) bool {
	return htmlTagPattern.MatchString(text)
}

// PlainText converts an HTML resume to plain text. Script and style contents
// are dropped. Input that does not look like HTML is only cleaned.
func PlainText(content string) (string, error) {
	if !LooksLikeHTML(content) {
		return CleanText(content), nil
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return "", err
	}

	doc.Find("script, style, noscript, head").Remove()
	doc.Find(blockSelectors).Each(func(_ int, s *goquery.Selection) {
		s.AppendHtml("\n")
	})

	return CleanText(doc.Text()), nil
}

// CleanText normalizes line endings, collapses runs of inline whitespace,
// trims each line and keeps at most one blank line in a row.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(inlineSpace.ReplaceAllString(line, " "))
	}

	result := strings.Join(lines, "\n")
	result = excessiveBlanks.ReplaceAllString(result, "\n\n")
	return strings.TrimSpace(result)
}
