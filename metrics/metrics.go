package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels for PlaylistRequests.
const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
)

var (
	// PlaylistRequests counts curation runs by outcome (success or error)
	PlaylistRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "iptv_playlist_requests_total",
		Help: "Total number of curated playlist requests",
	}, []string{"outcome"})

	// SourceFetchDuration tracks how long the upstream playlist fetch takes
	SourceFetchDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "iptv_source_fetch_duration_seconds",
		Help:    "Duration of upstream playlist fetches",
		Buckets: prometheus.DefBuckets,
	})

	// SourceFetchErrors counts failed upstream fetches
	SourceFetchErrors = promauto.NewCounter(prometheus.CounterOpts{
		Name: "iptv_source_fetch_errors_total",
		Help: "Total number of failed upstream playlist fetches",
	})

	// ChannelsParsed reports how many unique entries the last upstream playlist held
	ChannelsParsed = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "iptv_channels_parsed",
		Help: "Number of unique channels parsed from the last upstream playlist",
	})

	// ChannelsCurated reports how many channels the last curated playlist held
	ChannelsCurated = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "iptv_channels_curated",
		Help: "Number of channels in the last curated playlist",
	})

	// SelectorsUnmatched counts lineup selectors that found no upstream channel, by language and category
	SelectorsUnmatched = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "iptv_selectors_unmatched_total",
		Help: "Total number of lineup selectors without an upstream match",
	}, []string{"language", "category"})
)

// RecordPlaylistRequest increments the request counter for an outcome
func RecordPlaylistRequest(outcome string) {
	PlaylistRequests.WithLabelValues(outcome).Inc()
}

// ObserveSourceFetch records a fetch duration and, when err is non-nil, a fetch error
func ObserveSourceFetch(d time.Duration, err error) {
	SourceFetchDuration.Observe(d.Seconds())
	if err != nil {
		SourceFetchErrors.Inc()
	}
}

// SetChannelsParsed sets the number of parsed upstream channels
func SetChannelsParsed(count int) {
	ChannelsParsed.Set(float64(count))
}

// SetChannelsCurated sets the number of curated channels
func SetChannelsCurated(count int) {
	ChannelsCurated.Set(float64(count))
}

// RecordUnmatchedSelector increments the unmatched selector counter
func RecordUnmatchedSelector(language, category string) {
	SelectorsUnmatched.WithLabelValues(language, category).Inc()
}
