package m3u

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strings"
)

const (
	headerTag = "#EXTM3U"
	extinfTag = "#EXTINF:"
)

var tvgIDRegex = regexp.MustCompile(`tvg-id="([^"]+)"`)

// Entry is one channel read from an upstream playlist.
type Entry struct {
	TvgID string
	Name  string
	URL   string
}

// Parse reads an M3U playlist and returns its entries in file order.
//
// Only the first entry for each tvg-id is kept; entries without a tvg-id
// share the empty id and therefore collapse to one. Lines that do not fit the
// #EXTINF + URL convention are skipped, and a trailing #EXTINF with no URL is
// dropped. Lines have no length limit. The only error returned comes from
// reading r.
func Parse(r io.Reader) ([]Entry, error) {
	reader := bufio.NewReader(r)

	var entries []Entry
	seen := make(map[string]bool)
	var pending *Entry

	for {
		raw, err := reader.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, fmt.Errorf("reading playlist: %w", err)
		}

		line := strings.TrimSpace(raw)

		switch {
		case strings.HasPrefix(line, extinfTag):
			pending = &Entry{
				TvgID: extractTvgID(line),
				Name:  extractName(line),
			}
		case line != "" && !strings.HasPrefix(line, "#") && pending != nil:
			pending.URL = line
			if !seen[pending.TvgID] {
				seen[pending.TvgID] = true
				entries = append(entries, *pending)
			}
			pending = nil
		}

		if err == io.EOF {
			return entries, nil
		}
	}
}

// extractTvgID returns the first non-empty tvg-id attribute value.
func extractTvgID(extinf string) string {
	matches := tvgIDRegex.FindStringSubmatch(extinf)
	if len(matches) > 1 {
		return matches[1]
	}
	return ""
}

// extractName returns the display name: everything after the last comma.
func extractName(extinf string) string {
	commaIdx := strings.LastIndex(extinf, ",")
	if commaIdx == -1 {
		return ""
	}
	return strings.TrimSpace(extinf[commaIdx+1:])
}
