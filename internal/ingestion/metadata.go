package ingestion

import (
	"strings"
	"time"

	"github.com/jonathan/resume-tailor/internal/embedding"
)

// Metadata describes an ingested job posting.
type Metadata struct {
	Source    string `json:"source,omitempty"`
	Timestamp string `json:"timestamp"` // RFC3339
	Hash      string `json:"hash"`
	Lines     int    `json:"lines"`
	Bullets   int    `json:"bullets"`
}

// NewMetadata describes cleaned content read from source.
func NewMetadata(content, source string) *Metadata {
	m := &Metadata{
		Source:    source,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Hash:      embedding.ContentHash(content),
	}
	for _, line := range strings.Split(content, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		m.Lines++
		if isBulletLine(line) {
			m.Bullets++
		}
	}
	return m
}

// isBulletLine checks if a line is a bullet list item
func isBulletLine(line string) bool {
	trimmed := strings.TrimLeft(line, " \t")
	return strings.HasPrefix(trimmed, "- ") || strings.HasPrefix(trimmed, "* ") ||
		strings.HasPrefix(trimmed, "+ ")
}
