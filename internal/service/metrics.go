package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	metricPollTicks = promauto.NewCounter(prometheus.CounterOpts{
		Name: "telemetry_poll_ticks_total",
		Help: "The total number of executed poll ticks",
	})

	metricPollFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "telemetry_poll_failures_total",
		Help: "The total number of poll ticks that failed to fetch or decode",
	})

	metricSnapshotsPublished = promauto.NewCounter(prometheus.CounterOpts{
		Name: "telemetry_snapshots_published_total",
		Help: "The total number of published tag mappings",
	})

	metricHandshakes = promauto.NewCounter(prometheus.CounterOpts{
		Name: "telemetry_handshakes_total",
		Help: "The total number of completed key exchanges",
	})

	metricTagWrites = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "telemetry_tag_writes_total",
		Help: "The total number of tag writes issued to the master",
	}, []string{"result"})
)
