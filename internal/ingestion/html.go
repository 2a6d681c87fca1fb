package ingestion

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// jobContentSelectors are tried in order when extracting a posting from a
// saved job-board page; the first match wins.
var jobContentSelectors = []string{
	".job-description",
	".job-content",
	"#job-description",
	"#job-content",
	".posting-content",
	".job-details",
	"[data-testid='job-description']",
	"main",
	"article",
	".content",
	"#content",
}

// noiseSelector matches chrome that never carries posting content.
const noiseSelector = "nav, footer, header, script, style, noscript, .ad, .advertisement, .ads, .sidebar, .cookie-banner, .popup"

// ExtractJobText parses a saved HTML job posting and returns its body text.
// Block-level elements become separate lines so later date and section
// scanning sees the same structure a plain-text posting would have.
func ExtractJobText(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	doc.Find(noiseSelector).Remove()

	var main *goquery.Selection
	for _, selector := range jobContentSelectors {
		if selection := doc.Find(selector); selection.Length() > 0 {
			main = selection.First()
			break
		}
	}
	if main == nil {
		main = doc.Find("body")
	}

	// Insert line breaks after block elements so Text() does not glue
	// adjacent headings and paragraphs together.
	main.Find("p, li, br, h1, h2, h3, h4, h5, h6, div, tr").AfterHtml("\n")

	return main.Text(), nil
}
