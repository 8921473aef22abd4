// Package curation selects, relabels and orders upstream playlist entries
// according to a lineup.
package curation

import "github.com/alorle/iptv-curator/internal/m3u"

// Channel is an upstream entry that a lineup selector picked, annotated with
// the language and category it was picked for.
type Channel struct {
	TvgID        string
	Name         string
	Language     string
	Category     string
	URL          string
	OriginalName string
}

// M3U converts the channel into its encoder form. The category is written
// both as tvg-type and as group-title.
func (c Channel) M3U() *m3u.Channel {
	return &m3u.Channel{
		Title:    c.Name,
		URI:      c.URL,
		Duration: -1,
		TVGTags: m3u.TVGTags{
			ID:         c.TvgID,
			Name:       c.Name,
			Language:   c.Language,
			Type:       c.Category,
			GroupTitle: c.Category,
		},
	}
}

// Unmatched records a selector that no upstream entry satisfied.
type Unmatched struct {
	Language string
	Category string
	Selector string
}
