package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	FramesRead = promauto.NewCounter(prometheus.CounterOpts{
		Name: "facelog_frames_read_total",
		Help: "Total frames read from the capture device",
	})
	FrameReadErrors = promauto.NewCounter(prometheus.CounterOpts{
		Name: "facelog_frame_read_errors_total",
		Help: "Total transient frame read failures (iteration skipped)",
	})
	FacesDetected = promauto.NewCounter(prometheus.CounterOpts{
		Name: "facelog_faces_detected_total",
		Help: "Total frames on which a face was detected",
	})
	IdentityAccepted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "facelog_identity_accepted_total",
		Help: "Total identifications above the confidence threshold",
	})
	IdentityLowConfidence = promauto.NewCounter(prometheus.CounterOpts{
		Name: "facelog_identity_low_confidence_total",
		Help: "Total identifications rejected for low confidence",
	})
	IdentityErrors = promauto.NewCounter(prometheus.CounterOpts{
		Name: "facelog_identity_errors_total",
		Help: "Total identifications downgraded to UNKNOWN by an internal failure",
	})
	EmotionInferences = promauto.NewCounter(prometheus.CounterOpts{
		Name: "facelog_emotion_inferences_total",
		Help: "Total emotion network forward passes",
	})
	LogAppends = promauto.NewCounter(prometheus.CounterOpts{
		Name: "facelog_log_appends_total",
		Help: "Total log records persisted",
	})
	LogFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "facelog_log_failures_total",
		Help: "Total log records lost to persistence failures",
	})
	CaptureFPS = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "facelog_capture_fps",
		Help: "Frames per second of the capture loop over the last second",
	})
	StreamClients = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "facelog_stream_clients",
		Help: "Currently connected MJPEG stream clients",
	})
	SocketClients = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "facelog_socket_clients",
		Help: "Currently connected emotion websocket clients",
	})
)

func Handler() http.Handler {
	return promhttp.Handler()
}
