package driven

import port "github.com/alorle/iptv-curator/internal/port/driven"

// Compile-time checks that adapters implement their ports.
var _ port.PlaylistSource = (*PlaylistHTTPSource)(nil)
