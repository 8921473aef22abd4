package lineup

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadFile reads a lineup from a YAML file. See Parse for the format.
func LoadFile(path string) (Lineup, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Lineup{}, fmt.Errorf("failed to read lineup file: %w", err)
	}

	l, err := Parse(data)
	if err != nil {
		return Lineup{}, fmt.Errorf("failed to parse lineup file %s: %w", path, err)
	}

	return l, nil
}

// Parse decodes a YAML lineup of the form
//
//	Tamil:
//	  News:
//	    - SunNews.in
//	  Shopping: []
//
// Mapping order is preserved, so it goes through yaml.Node instead of a Go map.
// The result is validated before it is returned.
func Parse(data []byte) (Lineup, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Lineup{}, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}

	if doc.Kind == 0 || len(doc.Content) == 0 {
		return Lineup{}, ErrEmptyLineup
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return Lineup{}, fmt.Errorf("%w: line %d: expected a mapping of languages", ErrInvalidFormat, root.Line)
	}

	var l Lineup
	for i := 0; i+1 < len(root.Content); i += 2 {
		key, value := root.Content[i], root.Content[i+1]

		lang := Language{Name: key.Value}
		categories, err := decodeCategories(value)
		if err != nil {
			return Lineup{}, fmt.Errorf("language %q: %w", key.Value, err)
		}
		lang.Categories = categories

		l.Languages = append(l.Languages, lang)
	}

	if err := l.Validate(); err != nil {
		return Lineup{}, err
	}

	return l, nil
}

func decodeCategories(node *yaml.Node) ([]Category, error) {
	if isNull(node) {
		return nil, nil
	}
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: line %d: expected a mapping of categories", ErrInvalidFormat, node.Line)
	}

	var categories []Category
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]

		cat := Category{Name: key.Value}
		if !isNull(value) {
			if value.Kind != yaml.SequenceNode {
				return nil, fmt.Errorf("%w: line %d: category %q must be a list of selectors", ErrInvalidFormat, value.Line, key.Value)
			}
			if err := value.Decode(&cat.Selectors); err != nil {
				return nil, fmt.Errorf("%w: category %q: %v", ErrInvalidFormat, key.Value, err)
			}
		}

		categories = append(categories, cat)
	}

	return categories, nil
}

func isNull(node *yaml.Node) bool {
	return node.Kind == yaml.ScalarNode && node.Tag == "!!null"
}
