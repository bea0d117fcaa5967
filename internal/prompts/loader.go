// Package prompts holds the model prompt templates, embedded from JSON files.
// Each file maps a key to a template; placeholders use the {{.Name}} form.
package prompts

import (
	"embed"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"sync"
)

//go:embed *.json
var promptFiles embed.FS

// store caches parsed prompt files by name.
type store struct {
	mu    sync.RWMutex
	files map[string]map[string]string
}

var defaultStore = &store{files: map[string]map[string]string{}}

func (s *store) file(name string) (map[string]string, error) {
	s.mu.RLock()
	entries, ok := s.files[name]
	s.mu.RUnlock()
	if ok {
		return entries, nil
	}

	raw, err := promptFiles.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("failed to read prompt file %s: %w", name, err)
	}
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse prompt file %s: %w", name, err)
	}

	s.mu.Lock()
	s.files[name] = entries
	s.mu.Unlock()
	return entries, nil
}

func (s *store) reset() {
	s.mu.Lock()
	s.files = map[string]map[string]string{}
	s.mu.Unlock()
}

// Get returns the template stored under key in filename (e.g. "extraction.json").
func Get(filename, key string) (string, error) {
	entries, err := defaultStore.file(filename)
	if err != nil {
		return "", err
	}
	tmpl, ok := entries[key]
	if !ok {
		return "", fmt.Errorf("prompt key %q not found in %s", key, filename)
	}
	return tmpl, nil
}

// MustGet is Get for prompts that ship with the binary. It panics on a missing key.
func MustGet(filename, key string) string {
	tmpl, err := Get(filename, key)
	if err != nil {
		panic(fmt.Sprintf("failed to load prompt: %v", err))
	}
	return tmpl
}

// Render loads a template and fills its placeholders from data.
func Render(filename, key string, data map[string]string) (string, error) {
	tmpl, err := Get(filename, key)
	if err != nil {
		return "", err
	}
	return Format(tmpl, data), nil
}

// Format replaces {{.Key}} placeholders with values from data. Unknown
// placeholders are left as they are.
func Format(tmpl string, data map[string]string) string {
	if len(data) == 0 {
		return tmpl
	}
	pairs := make([]string, 0, len(data)*2)
	for key, value := range data {
		pairs = append(pairs, "{{."+key+"}}", value)
	}
	return strings.NewReplacer(pairs...).Replace(tmpl)
}

// List returns the keys of a prompt file in sorted order.
func List(filename string) ([]string, error) {
	entries, err := defaultStore.file(filename)
	if err != nil {
		return nil, err
	}
	keys := make([]string, 0, len(entries))
	for key := range entries {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys, nil
}

// ClearCache drops every parsed file.
func ClearCache() {
	defaultStore.reset()
}
