// Package metrics defines and registers all custom Prometheus metrics for
// the healthcare API. It is the single source of truth for metric names,
// labels, and help strings. Registration happens at import time via
// promauto; HTTP-level metrics come from the echoprometheus middleware.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "healthcare"

// LoginsTotal counts login attempts by outcome.
// Label:
//   - result: "success", "failure", or "throttled"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// RecordsCreatedTotal counts medical records written, by record type
// (e.g. "note", "diagnosis", "test_result").
var RecordsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "records_created_total",
		Help:      "Total number of medical records created, by record type.",
	},
	[]string{"record_type"},
)

// AppointmentsScheduledTotal counts newly scheduled appointments.
var AppointmentsScheduledTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "appointments_scheduled_total",
		Help:      "Total number of appointments scheduled.",
	},
)

// MediaUploadBytes observes the size of uploaded attachments.
var MediaUploadBytes = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "media_upload_bytes",
		Help:      "Size distribution of uploaded media files.",
		Buckets:   prometheus.ExponentialBuckets(1024, 4, 8), // 1KiB … 16MiB
	},
)

// AuditWriteErrorsTotal counts audit trail entries that failed to persist.
var AuditWriteErrorsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "audit_write_errors_total",
		Help:      "Total number of audit events that could not be written.",
	},
)
