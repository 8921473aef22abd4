package curation

import (
	"strings"

	"github.com/alorle/iptv-curator/internal/lineup"
	"github.com/alorle/iptv-curator/internal/m3u"
)

// Result is the outcome of matching a lineup against upstream entries.
type Result struct {
	Channels  []Channel
	Unmatched []Unmatched
}

// Match walks the lineup in declaration order and picks, for every selector,
// the first entry the mode accepts. A selector is matched at most once per
// call: when it appears again later in the lineup it is skipped, so the first
// category that names it keeps it. Selectors with no match are reported in
// Result.Unmatched and otherwise ignored. Entries no selector picks are dropped.
func Match(entries []m3u.Entry, l lineup.Lineup, mode Mode) Result {
	var result Result
	matched := make(map[string]bool)

	for _, lang := range l.Languages {
		for _, cat := range lang.Categories {
			for _, raw := range cat.Selectors {
				selector := strings.TrimSpace(raw)
				if selector == "" {
					continue
				}

				key := mode.key(selector)
				if matched[key] {
					continue
				}

				entry, ok := find(entries, selector, mode)
				if !ok {
					result.Unmatched = append(result.Unmatched, Unmatched{
						Language: lang.Name,
						Category: cat.Name,
						Selector: selector,
					})
					continue
				}

				result.Channels = append(result.Channels, mode.curate(selector, entry, lang.Name, cat.Name))
				matched[key] = true
			}
		}
	}

	return result
}

func find(entries []m3u.Entry, selector string, mode Mode) (m3u.Entry, bool) {
	for _, e := range entries {
		if mode.matches(selector, e) {
			return e, true
		}
	}
	return m3u.Entry{}, false
}
