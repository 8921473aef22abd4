package driven

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/alorle/iptv-curator/internal/port/driven"
)

const (
	defaultTimeout  = 30 * time.Second
	defaultURL      = "https://raw.githubusercontent.com/iptv-org/iptv/refs/heads/master/streams/in.m3u"
	defaultMaxBytes = 16 * 1024 * 1024
)

var (
	utf8BOM     = []byte{0xEF, 0xBB, 0xBF}
	replacement = []byte("\uFFFD")
)

// PlaylistHTTPSource fetches the upstream M3U playlist via HTTP.
// It implements the driven.PlaylistSource port.
type PlaylistHTTPSource struct {
	url      string
	client   *http.Client
	maxBytes int64
}

// NewPlaylistHTTPSource creates a new playlist source for the given URL.
// If url is empty, it uses the iptv-org India playlist.
// If client is nil, it creates a default HTTP client with a 30-second timeout.
// If maxBytes is not positive, responses are limited to 16 MiB.
func NewPlaylistHTTPSource(url string, client *http.Client, maxBytes int64) *PlaylistHTTPSource {
	if url == "" {
		url = defaultURL
	}
	if client == nil {
		client = &http.Client{
			Timeout: defaultTimeout,
		}
	}
	if maxBytes <= 0 {
		maxBytes = defaultMaxBytes
	}
	return &PlaylistHTTPSource{
		url:      url,
		client:   client,
		maxBytes: maxBytes,
	}
}

// URL returns the upstream playlist location.
func (s *PlaylistHTTPSource) URL() string {
	return s.url
}

// FetchPlaylist performs a single GET against the upstream playlist.
// It fails on transport errors, non-200 statuses, bodies above the size
// limit and binary bodies (any NUL byte). A leading BOM is stripped and
// invalid UTF-8 sequences are replaced with U+FFFD.
func (s *PlaylistHTTPSource) FetchPlaylist(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating HTTP request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching playlist: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %d %s", driven.ErrUnexpectedStatus, resp.StatusCode, http.StatusText(resp.StatusCode))
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, s.maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}
	if int64(len(body)) > s.maxBytes {
		return nil, fmt.Errorf("%w: more than %d bytes", driven.ErrBodyTooLarge, s.maxBytes)
	}

	if bytes.IndexByte(body, 0) >= 0 {
		return nil, driven.ErrNotText
	}

	body = bytes.TrimPrefix(body, utf8BOM)
	return bytes.ToValidUTF8(body, replacement), nil
}
