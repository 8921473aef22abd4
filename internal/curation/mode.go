package curation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alorle/iptv-curator/internal/m3u"
)

// Mode decides how a selector is compared with upstream entries and how the
// curated channel is named. A deployment runs with exactly one mode.
type Mode string

const (
	// ModeExact matches a selector against the entry's tvg-id verbatim and
	// names the channel after the cleaned upstream name.
	ModeExact Mode = "exact"
	// ModeFuzzy matches when the selector is a case-insensitive substring of
	// the entry's name and tvg-id. The channel is named after the cleaned
	// selector and its tvg-id is generated from that name.
	ModeFuzzy Mode = "fuzzy"
)

var ErrUnknownMode = errors.New("unknown matching mode")

// ParseMode accepts "exact" or "fuzzy" in any case.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case ModeExact:
		return ModeExact, nil
	case ModeFuzzy:
		return ModeFuzzy, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}

func (m Mode) String() string {
	return string(m)
}

// key is the normalized form a selector is de-duplicated on.
func (m Mode) key(selector string) string {
	selector = strings.TrimSpace(selector)
	if m == ModeFuzzy {
		return strings.ToLower(selector)
	}
	return selector
}

func (m Mode) matches(selector string, e m3u.Entry) bool {
	if m == ModeFuzzy {
		haystack := strings.ToLower(e.Name + " " + e.TvgID)
		return strings.Contains(haystack, strings.ToLower(selector))
	}
	return selector == e.TvgID
}

func (m Mode) curate(selector string, e m3u.Entry, language, category string) Channel {
	c := Channel{
		Language:     language,
		Category:     category,
		URL:          e.URL,
		OriginalName: e.Name,
	}

	if m == ModeFuzzy {
		c.Name = CleanName(selector)
		c.TvgID = GenerateTvgID(c.Name)
		return c
	}

	c.TvgID = selector
	c.Name = CleanName(e.Name)
	return c
}
