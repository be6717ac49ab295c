package api

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// StripDescriptionHTML converts a job description that may arrive as HTML
// into plain text suitable for terminal display. Script, style and other
// non-content elements are removed and whitespace is collapsed. Input that
// fails to parse is returned unchanged.
func StripDescriptionHTML(description string) string {
	if !strings.Contains(description, "<") {
		return description
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(description))
	if err != nil {
		return description
	}

	doc.Find("script, style, noscript, img, iframe").Remove()

	return cleanWhitespace(doc.Text())
}

// cleanWhitespace trims each line and drops empty ones.
func cleanWhitespace(text string) string {
	lines := strings.Split(text, "\n")
	var cleaned []string
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			cleaned = append(cleaned, line)
		}
	}
	return strings.Join(cleaned, "\n")
}
