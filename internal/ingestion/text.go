// Package ingestion loads job descriptions and resumes from local files and
// normalizes them into plain text ready for analysis.
package ingestion

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// Error represents a failure reading or normalizing an input document.
type Error struct {
	Path    string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("ingestion error for %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("ingestion error for %s: %s", e.Path, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

var spaceRe = regexp.MustCompile(`\s+`)

// CleanText normalizes a document while preserving line structure. Dates,
// bullets and section headings survive cleaning because downstream scanners
// depend on them.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	lines := strings.Split(content, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		cleaned = append(cleaned, cleanLine(line))
	}

	result := strings.Join(cleaned, "\n")
	result = collapseBlankLines(result)
	return strings.TrimSpace(result)
}

func cleanLine(line string) string {
	line = strings.TrimRight(line, " \t")
	if strings.TrimSpace(line) == "" {
		return ""
	}

	trimmed := strings.TrimLeft(line, " \t")

	// Bullet markers vary by resume template; normalize them all to "- ".
	for _, marker := range []string{"• ", "· ", "* ", "- "} {
		if strings.HasPrefix(trimmed, marker) {
			body := spaceRe.ReplaceAllString(strings.TrimSpace(trimmed[len(marker):]), " ")
			indent := len(line) - len(trimmed)
			return strings.Repeat(" ", indent) + "- " + body
		}
	}

	indent := len(line) - len(trimmed)
	body := spaceRe.ReplaceAllString(strings.TrimSpace(line), " ")
	if indent > 0 {
		return strings.Repeat(" ", indent) + body
	}
	return body
}

// collapseBlankLines reduces runs of blank lines to a single blank line.
func collapseBlankLines(content string) string {
	re := regexp.MustCompile(`\n\n\n+`)
	return re.ReplaceAllString(content, "\n\n")
}

// ReadDocument loads one input file and returns cleaned plain text. HTML
// files go through job-posting extraction first; everything else is treated
// as plain text.
func ReadDocument(path string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", &Error{Path: path, Message: "file not found", Cause: err}
		}
		return "", &Error{Path: path, Message: "failed to read file", Cause: err}
	}

	content := string(raw)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		text, err := ExtractJobText(content)
		if err != nil {
			return "", &Error{Path: path, Message: "failed to parse HTML", Cause: err}
		}
		content = text
	}

	return CleanText(content), nil
}

// SourceID derives a stable candidate identifier from an input path.
func SourceID(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
