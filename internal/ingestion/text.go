// Package ingestion prepares job-posting text for extraction: line endings,
// whitespace, bullet glyphs and blank runs are normalised so section and
// bullet detection see a consistent shape.
package ingestion

import (
	"fmt"
	"os"
	"regexp"
	"strings"
)

var (
	innerSpace  = regexp.MustCompile(`[ \t\x{00a0}]+`)
	blankRun    = regexp.MustCompile(`\n{3,}`)
	bulletGlyph = regexp.MustCompile(`^[•·▪◦●‣∙]\s*`)
)

// CleanText normalises posting text. Headings, bullets and indentation
// survive; runs of spaces collapse and at most one blank line separates blocks.
func CleanText(content string) string {
	if strings.TrimSpace(content) == "" {
		return ""
	}

	content = strings.NewReplacer("\r\n", "\n", "\r", "\n").Replace(content)
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = cleanLine(line)
	}
	return strings.TrimSpace(blankRun.ReplaceAllString(strings.Join(lines, "\n"), "\n\n"))
}

// cleanLine keeps leading indentation, rewrites bullet glyphs as "- " and
// collapses inner whitespace.
func cleanLine(line string) string {
	body := strings.TrimLeft(line, " \t")
	if strings.TrimSpace(body) == "" {
		return ""
	}
	indent := len(line) - len(body)

	body = bulletGlyph.ReplaceAllString(body, "- ")
	body = innerSpace.ReplaceAllString(strings.TrimSpace(body), " ")
	return strings.Repeat(" ", indent) + body
}

// IngestFromFile reads a plain-text posting, cleans it, and returns the text
// with its metadata.
func IngestFromFile(path string) (string, *Metadata, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil, fmt.Errorf("file not found: %w", err)
		}
		return "", nil, fmt.Errorf("failed to read file: %w", err)
	}

	cleaned := CleanText(string(content))
	if cleaned == "" {
		return "", nil, fmt.Errorf("job posting %s is empty", path)
	}
	return cleaned, NewMetadata(cleaned, path), nil
}
