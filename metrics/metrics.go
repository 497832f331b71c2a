package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/deepch/mkv/format/mkv/mkvio"
)

var (
	ClustersParsed = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "mkv_clusters_parsed_total",
		Help: "Total number of clusters decoded successfully",
	})

	DecodeErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mkv_decode_errors_total",
			Help: "Total number of cluster decode failures by kind",
		},
		[]string{"kind"},
	)

	BlocksExtracted = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "mkv_simple_blocks_total",
		Help: "Total number of simple blocks extracted from clusters",
	})

	PayloadBytes = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "mkv_payload_bytes_total",
		Help: "Total payload bytes referenced by extracted simple blocks",
	})

	RelayFramesSent = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "mkv_relay_frames_sent_total",
		Help: "Total number of packet frames written to websocket clients",
	})

	RelaySessions = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "mkv_relay_sessions",
		Help: "Current number of open websocket relay sessions",
	})
)

func init() {
	prometheus.MustRegister(ClustersParsed, DecodeErrors, BlocksExtracted, PayloadBytes)
	prometheus.MustRegister(RelayFramesSent, RelaySessions)
}

// ObserveCluster records one successfully parsed cluster.
func ObserveCluster(blocks int, payloadBytes int) {
	ClustersParsed.Inc()
	BlocksExtracted.Add(float64(blocks))
	PayloadBytes.Add(float64(payloadBytes))
}

// ObserveDecodeError records a failed parse under the failure kind.
func ObserveDecodeError(err error) {
	kind := "other"
	var de *mkvio.DecodeError
	if errors.As(err, &de) {
		kind = de.Kind.String()
	}
	DecodeErrors.WithLabelValues(kind).Inc()
}
