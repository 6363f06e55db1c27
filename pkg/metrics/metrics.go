package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// ConnectionsOpen tracks currently connected websocket clients.
	ConnectionsOpen = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "chat_connections_open",
		Help: "Number of open websocket connections.",
	})

	// MessagesTotal counts stored messages by kind (text or sticker).
	MessagesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "chat_messages_total",
		Help: "Messages appended to room histories.",
	}, []string{"kind"})

	// RoomsCreated counts rooms created since process start.
	RoomsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "chat_rooms_created_total",
		Help: "Rooms created (explicitly or on first join).",
	})
)

// Handler exposes Prometheus metrics at /metrics
func Handler() http.Handler {
	return promhttp.Handler()
}
