// Package metrics registers the Prometheus collectors of the file share on
// the default registry. Label values are fixed sets; file ids never become
// labels.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Uploads counts upload pipeline runs by status (success, failure).
	Uploads = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "otpshare_uploads_total",
			Help: "Upload pipeline runs by status.",
		},
		[]string{"status"},
	)

	// AccessAttempts counts access pipeline outcomes; outcome is "success"
	// or the failure kind (invalid_otp, otp_expired, ...).
	AccessAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "otpshare_access_attempts_total",
			Help: "Access pipeline runs by outcome.",
		},
		[]string{"outcome"},
	)

	// VersionConflicts counts conditional updates lost to a concurrent writer.
	VersionConflicts = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "otpshare_version_conflicts_total",
			Help: "Conditional record updates that lost a race and were retried.",
		},
	)

	Notifications = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "otpshare_notifications_total",
			Help: "OTP notifications by status (sent, failed, dropped).",
		},
		[]string{"status"},
	)

	PipelineDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "otpshare_pipeline_duration_seconds",
			Help:    "Duration of upload and access pipeline runs.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"pipeline"},
	)

	GRPCRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "otpshare_grpc_requests_total",
			Help: "gRPC requests by method and status code.",
		},
		[]string{"method", "code"},
	)

	// HTTPRequests and HTTPDuration cover the ops endpoints; paths are
	// normalized before they become labels.
	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "otpshare_http_requests_total",
			Help: "Ops HTTP requests by method, path and status.",
		},
		[]string{"method", "path", "status"},
	)

	HTTPDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "otpshare_http_request_duration_seconds",
			Help:    "Ops HTTP request duration.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)
)
