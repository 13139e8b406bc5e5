package metrics

import (
	"fmt"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"
)

const jobName = "interaction_admin"

// Recorder tracks admin operations in a private registry so a short-lived
// CLI run can push them to a Pushgateway on exit.
type Recorder struct {
	registry *prometheus.Registry

	operationsTotal   *prometheus.CounterVec
	operationDuration *prometheus.HistogramVec
	auditFailures     prometheus.Counter
}

// NewRecorder registers the admin client metrics.
func NewRecorder() *Recorder {
	reg := prometheus.NewRegistry()
	r := &Recorder{
		registry: reg,
		operationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "interaction_admin_operations_total",
				Help: "Total number of admin operations issued, by operation and HTTP status",
			},
			[]string{"operation", "status"},
		),
		operationDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "interaction_admin_operation_duration_seconds",
				Help:    "Duration of admin operations in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
		auditFailures: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "interaction_admin_audit_publish_failures_total",
				Help: "Number of audit events that at least one publisher rejected",
			},
		),
	}
	reg.MustRegister(r.operationsTotal, r.operationDuration, r.auditFailures)
	return r
}

// ObserveOperation records one operation. status 0 means no response arrived.
func (r *Recorder) ObserveOperation(op string, status int, elapsed time.Duration) {
	if r == nil {
		return
	}
	label := "transport_error"
	if status > 0 {
		label = strconv.Itoa(status)
	}
	r.operationsTotal.WithLabelValues(op, label).Inc()
	r.operationDuration.WithLabelValues(op).Observe(elapsed.Seconds())
}

// AuditFailed counts a failed audit fan-out.
func (r *Recorder) AuditFailed() {
	if r == nil {
		return
	}
	r.auditFailures.Inc()
}

// Gatherer exposes the private registry.
func (r *Recorder) Gatherer() prometheus.Gatherer {
	return r.registry
}

// Push sends the collected metrics to url. An empty url is a no-op.
func (r *Recorder) Push(url, instance string) error {
	if r == nil || url == "" {
		return nil
	}
	pusher := push.New(url, jobName).Gatherer(r.registry)
	if instance != "" {
		pusher = pusher.Grouping("instance", instance)
	}
	if err := pusher.Push(); err != nil {
		return fmt.Errorf("push metrics: %w", err)
	}
	return nil
}
