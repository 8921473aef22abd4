package driven

import (
	"context"
	"errors"
)

// Errors a PlaylistSource may wrap so callers can tell failures apart.
var (
	ErrUnexpectedStatus = errors.New("unexpected upstream status")
	ErrBodyTooLarge     = errors.New("upstream playlist exceeds size limit")
	ErrNotText          = errors.New("upstream response is not text")
)

// PlaylistSource defines the interface for retrieving the raw upstream M3U
// playlist. This is a driven port implemented by concrete adapters (e.g., HTTP client).
type PlaylistSource interface {
	// FetchPlaylist returns the raw playlist bytes or an error if they could
	// not be retrieved in full. It is called once per curation run.
	FetchPlaylist(ctx context.Context) ([]byte, error)
}
