// Package lineup models the curated channel selection: an ordered tree of
// languages, categories within each language and channel selectors within
// each category. Declaration order is significant because the first
// category that names a selector wins it.
package lineup

import (
	"fmt"
	"strings"
)

// Category is a named group of channel selectors, e.g. "News".
type Category struct {
	Name      string
	Selectors []string
}

// Language groups the categories curated for one audience language.
type Language struct {
	Name       string
	Categories []Category
}

// Lineup is the full curated selection. It is read-only once built.
type Lineup struct {
	Languages []Language
}

// SelectorCount returns the number of selectors across all categories,
// duplicates included.
func (l Lineup) SelectorCount() int {
	n := 0
	for _, lang := range l.Languages {
		for _, cat := range lang.Categories {
			n += len(cat.Selectors)
		}
	}
	return n
}

// Validate checks that every language and category has a name and that no
// name is repeated at the same level.
func (l Lineup) Validate() error {
	if len(l.Languages) == 0 {
		return ErrEmptyLineup
	}

	var problems []string
	languages := make(map[string]bool)
	for i, lang := range l.Languages {
		if strings.TrimSpace(lang.Name) == "" {
			problems = append(problems, fmt.Sprintf("language %d: %v", i, ErrEmptyLanguageName))
			continue
		}
		if languages[lang.Name] {
			problems = append(problems, fmt.Sprintf("language %q: %v", lang.Name, ErrDuplicateLanguage))
		}
		languages[lang.Name] = true

		categories := make(map[string]bool)
		for j, cat := range lang.Categories {
			if strings.TrimSpace(cat.Name) == "" {
				problems = append(problems, fmt.Sprintf("language %q category %d: %v", lang.Name, j, ErrEmptyCategoryName))
				continue
			}
			if categories[cat.Name] {
				problems = append(problems, fmt.Sprintf("language %q category %q: %v", lang.Name, cat.Name, ErrDuplicateCategory))
			}
			categories[cat.Name] = true
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid lineup:\n  - %s", strings.Join(problems, "\n  - "))
	}
	return nil
}
