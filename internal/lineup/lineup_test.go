package lineup

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDefault(t *testing.T) {
	l := Default()

	if err := l.Validate(); err != nil {
		t.Fatalf("default lineup should be valid, got %v", err)
	}

	var names []string
	for _, lang := range l.Languages {
		names = append(names, lang.Name)
	}
	if diff := cmp.Diff([]string{"Tamil", "Hindi", "Telugu"}, names); diff != "" {
		t.Errorf("language order mismatch (-want +got):\n%s", diff)
	}

	if got := l.SelectorCount(); got != 55 {
		t.Errorf("expected 55 selectors, got %d", got)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		lineup  Lineup
		wantErr string
	}{
		{
			name:    "empty lineup",
			lineup:  Lineup{},
			wantErr: ErrEmptyLineup.Error(),
		},
		{
			name:    "empty language name",
			lineup:  Lineup{Languages: []Language{{Name: " "}}},
			wantErr: ErrEmptyLanguageName.Error(),
		},
		{
			name: "duplicate language",
			lineup: Lineup{Languages: []Language{
				{Name: "Tamil"},
				{Name: "Tamil"},
			}},
			wantErr: ErrDuplicateLanguage.Error(),
		},
		{
			name: "empty category name",
			lineup: Lineup{Languages: []Language{
				{Name: "Tamil", Categories: []Category{{Name: ""}}},
			}},
			wantErr: ErrEmptyCategoryName.Error(),
		},
		{
			name: "duplicate category",
			lineup: Lineup{Languages: []Language{
				{Name: "Tamil", Categories: []Category{{Name: "News"}, {Name: "News"}}},
			}},
			wantErr: ErrDuplicateCategory.Error(),
		},
		{
			name: "same category in two languages is fine",
			lineup: Lineup{Languages: []Language{
				{Name: "Tamil", Categories: []Category{{Name: "News"}}},
				{Name: "Hindi", Categories: []Category{{Name: "News"}}},
			}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.lineup.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("expected no error, got %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected error containing %q, got nil", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestParse(t *testing.T) {
	t.Run("preserves declaration order", func(t *testing.T) {
		data := []byte(`
Tamil:
  Movies:
    - KTV.in
    - JMovie.in
  Kids:
    - ChuttiTV.in
  Shopping: []
Hindi:
  News:
Telugu:
`)
		got, err := Parse(data)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		want := Lineup{Languages: []Language{
			{Name: "Tamil", Categories: []Category{
				{Name: "Movies", Selectors: []string{"KTV.in", "JMovie.in"}},
				{Name: "Kids", Selectors: []string{"ChuttiTV.in"}},
				{Name: "Shopping", Selectors: []string{}},
			}},
			{Name: "Hindi", Categories: []Category{{Name: "News"}}},
			{Name: "Telugu"},
		}}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("Parse() mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("empty document", func(t *testing.T) {
		_, err := Parse([]byte(""))
		if !errors.Is(err, ErrEmptyLineup) {
			t.Errorf("expected ErrEmptyLineup, got %v", err)
		}
	})

	t.Run("root must be a mapping", func(t *testing.T) {
		_, err := Parse([]byte("- Tamil\n- Hindi\n"))
		if !errors.Is(err, ErrInvalidFormat) {
			t.Errorf("expected ErrInvalidFormat, got %v", err)
		}
	})

	t.Run("category must be a list", func(t *testing.T) {
		_, err := Parse([]byte("Tamil:\n  News: SunNews.in\n"))
		if !errors.Is(err, ErrInvalidFormat) {
			t.Errorf("expected ErrInvalidFormat, got %v", err)
		}
	})

	t.Run("malformed yaml", func(t *testing.T) {
		_, err := Parse([]byte("Tamil: [\n"))
		if !errors.Is(err, ErrInvalidFormat) {
			t.Errorf("expected ErrInvalidFormat, got %v", err)
		}
	})

	t.Run("duplicate categories are rejected", func(t *testing.T) {
		_, err := Parse([]byte("Tamil:\n  News: []\n  News: []\n"))
		if err == nil {
			t.Fatal("expected error for duplicate category")
		}
	})
}

func TestLoadFile(t *testing.T) {
	t.Run("reads file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "lineup.yaml")
		if err := os.WriteFile(path, []byte("Tamil:\n  News:\n    - SunNews.in\n"), 0644); err != nil {
			t.Fatalf("failed to write lineup: %v", err)
		}

		l, err := LoadFile(path)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if l.SelectorCount() != 1 {
			t.Errorf("expected 1 selector, got %d", l.SelectorCount())
		}
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
		if err == nil {
			t.Fatal("expected error for missing file")
		}
	})
}
