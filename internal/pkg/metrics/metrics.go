package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Scan outcome label values.
const (
	OutcomeRecorded  = "recorded"
	OutcomeDuplicate = "duplicate"
	OutcomeUnknown   = "unknown_tag"
	OutcomeInvalid   = "invalid"
	OutcomeError     = "error"
)

var (
	// ScansTotal counts scan attempts by outcome.
	ScansTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "classtap",
		Name:      "scans_total",
		Help:      "Number of NFC scan attempts by outcome.",
	}, []string{"outcome"})

	// ScanDuration observes end-to-end scan handling time.
	ScanDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "classtap",
		Name:      "scan_duration_seconds",
		Help:      "Time spent resolving and recording one scan.",
		Buckets:   prometheus.DefBuckets,
	})

	// LiveSessionClients tracks connected live-feed websocket clients.
	LiveSessionClients = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "classtap",
		Name:      "live_session_clients",
		Help:      "Currently connected live attendance feed clients.",
	})
)
