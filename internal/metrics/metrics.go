package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var metricsNamespace = "sketchpad"

var (
	SessionsActive = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: metricsNamespace,
		Subsystem: "live",
		Name:      "sessions_active",
		Help:      "Number of open websocket sessions.",
	})

	MessagesReceived = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Subsystem: "live",
		Name:      "messages_received",
		Help:      "Number of client messages handled, by type.",
	}, []string{"type"})

	FramesSent = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Subsystem: "live",
		Name:      "frames_sent",
		Help:      "Number of draw command frames queued to clients.",
	})

	RenderDuration = prometheus.NewSummaryVec(prometheus.SummaryOpts{
		Namespace:  metricsNamespace,
		Subsystem:  "preview",
		Name:       "render_duration_seconds",
		Objectives: map[float64]float64{0.5: 0.05, 0.9: 0.01, 0.99: 0.001},
		Help:       "Duration of single frame renders, by output format.",
	}, []string{"format"})
)

func init() {
	prometheus.MustRegister(SessionsActive)
	prometheus.MustRegister(MessagesReceived)
	prometheus.MustRegister(FramesSent)
	prometheus.MustRegister(RenderDuration)
}
