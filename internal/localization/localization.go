// Package localization serves the helpline resource strings shown to
// students when flagged content is detected. Resources are loaded from
// JSON files named by language code (e.g. "en.json"); missing keys and
// unknown languages fall back to English.
package localization

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Localizer holds the helpline strings per language.
type Localizer struct {
	resources map[string]map[string]string
	mu        sync.RWMutex
}

// NewLocalizer loads every <lang>.json file from the given directory.
func NewLocalizer(path string) (*Localizer, error) {
	l := &Localizer{
		resources: make(map[string]map[string]string),
	}

	files, err := os.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read localization directory: %w", err)
	}

	for _, file := range files {
		if file.IsDir() || !strings.HasSuffix(file.Name(), ".json") {
			continue
		}

		lang := strings.TrimSuffix(file.Name(), ".json")
		data, err := os.ReadFile(filepath.Join(path, file.Name()))
		if err != nil {
			return nil, fmt.Errorf("failed to read localization file %s: %w", file.Name(), err)
		}

		var strs map[string]string
		if err := json.Unmarshal(data, &strs); err != nil {
			return nil, fmt.Errorf("failed to parse localization file %s: %w", file.Name(), err)
		}

		l.resources[lang] = strs
	}

	return l, nil
}

// GetString returns the localized string for a key, falling back to
// English and then to the key itself.
func (l *Localizer) GetString(lang, key string) string {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if strs, ok := l.resources[lang]; ok {
		if value, ok := strs[key]; ok {
			return value
		}
	}

	if lang != "en" {
		if strs, ok := l.resources["en"]; ok {
			if value, ok := strs[key]; ok {
				return value
			}
		}
	}

	return key
}

// Bundle returns the full helpline string set for a language, with
// English values filling any gaps.
func (l *Localizer) Bundle(lang string) map[string]string {
	l.mu.RLock()
	defer l.mu.RUnlock()

	bundle := make(map[string]string)
	for key, value := range l.resources["en"] {
		bundle[key] = value
	}
	if lang != "en" {
		for key, value := range l.resources[lang] {
			bundle[key] = value
		}
	}
	return bundle
}
