package application

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alorle/iptv-curator/internal/curation"
	"github.com/alorle/iptv-curator/internal/lineup"
	"github.com/alorle/iptv-curator/internal/m3u"
	"github.com/alorle/iptv-curator/internal/port/driven"
	"github.com/alorle/iptv-curator/logging"
	"github.com/alorle/iptv-curator/metrics"
)

// CurationService builds the curated playlist.
// It depends only on port interfaces and the read-only lineup.
type CurationService struct {
	source driven.PlaylistSource
	lineup lineup.Lineup
	mode   curation.Mode
}

// NewCurationService creates a new CurationService. The lineup must not be
// modified after this call; it is shared by concurrent requests.
func NewCurationService(source driven.PlaylistSource, l lineup.Lineup, mode curation.Mode) *CurationService {
	return &CurationService{
		source: source,
		lineup: l,
		mode:   mode,
	}
}

// GenerateM3U fetches the upstream playlist once, keeps the channels the
// lineup selects, sorts them and renders the result as M3U.
// Selectors with no upstream match are logged and skipped. The only errors
// are fetch and read failures; there is no partial output.
func (s *CurationService) GenerateM3U(ctx context.Context) (string, error) {
	logger := logging.FromContext(ctx)

	start := time.Now()
	body, err := s.source.FetchPlaylist(ctx)
	fetchDuration := time.Since(start)
	metrics.ObserveSourceFetch(fetchDuration, err)
	if err != nil {
		return "", fmt.Errorf("fetching source playlist: %w", err)
	}

	entries, err := m3u.Parse(bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("parsing source playlist: %w", err)
	}

	result := curation.Match(entries, s.lineup, s.mode)
	for _, u := range result.Unmatched {
		metrics.RecordUnmatchedSelector(u.Language, u.Category)
		logger.Debug("selector has no upstream channel",
			"language", u.Language,
			"category", u.Category,
			"selector", u.Selector,
		)
	}

	curation.Sort(result.Channels)

	enc := m3u.NewEncoder()
	for _, c := range result.Channels {
		enc.AddChannel(c.M3U())
	}

	var builder strings.Builder
	if err := enc.Encode(&builder); err != nil {
		return "", fmt.Errorf("encoding playlist: %w", err)
	}

	metrics.SetChannelsParsed(len(entries))
	metrics.SetChannelsCurated(len(result.Channels))

	logger.Info("playlist curated",
		"mode", s.mode.String(),
		"fetch_duration", fetchDuration,
		"duration", time.Since(start),
		"parsed", len(entries),
		"curated", len(result.Channels),
		"unmatched", len(result.Unmatched),
	)

	return builder.String(), nil
}
