package driver

import (
	"fmt"
	"mime"
	"net/http"

	"github.com/alorle/iptv-curator/internal/application"
	"github.com/alorle/iptv-curator/logging"
	"github.com/alorle/iptv-curator/metrics"
)

const (
	playlistContentType = "application/vnd.apple.mpegurl"
	defaultFilename     = "playlist.m3u"
)

// PlaylistHTTPHandler serves the curated playlist.
type PlaylistHTTPHandler struct {
	service  *application.CurationService
	filename string
}

// NewPlaylistHTTPHandler creates a new HTTP handler for the curated playlist.
// filename is offered to clients in Content-Disposition; empty means playlist.m3u.
func NewPlaylistHTTPHandler(service *application.CurationService, filename string) *PlaylistHTTPHandler {
	if filename == "" {
		filename = defaultFilename
	}
	return &PlaylistHTTPHandler{service: service, filename: filename}
}

// ServeHTTP answers OPTIONS preflight with 204 and runs the curation for
// every other method. Failures become a 500 with a plain-text "Error: ..." body.
func (h *PlaylistHTTPHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	setCORSHeaders(w)

	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	m3u, err := h.service.GenerateM3U(r.Context())
	if err != nil {
		metrics.RecordPlaylistRequest(metrics.OutcomeError)
		logging.FromContext(r.Context()).Error("failed to generate playlist", "error", err)

		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = fmt.Fprintf(w, "Error: %s", err.Error())
		return
	}

	metrics.RecordPlaylistRequest(metrics.OutcomeSuccess)

	w.Header().Set("Content-Type", playlistContentType)
	w.Header().Set("Content-Disposition", contentDisposition(h.filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(m3u))
}

// contentDisposition quotes plain ASCII names and leaves anything else to
// mime.FormatMediaType, which switches to the RFC 2231 filename* form.
func contentDisposition(filename string) string {
	for i := 0; i < len(filename); i++ {
		c := filename[i]
		if c < 0x20 || c > 0x7e || c == '"' || c == '\\' {
			return mime.FormatMediaType("attachment", map[string]string{"filename": filename})
		}
	}
	return `attachment; filename="` + filename + `"`
}
