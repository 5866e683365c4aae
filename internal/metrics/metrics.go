package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/vfg2006/app-rank-notifier/internal/domain"
)

const namespace = "rank_notifier"

var (
	// Registry contém os coletores da aplicação
	Registry = prometheus.NewRegistry()

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total de requisições HTTP atendidas.",
		},
		[]string{"method", "status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duração das requisições HTTP.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 12),
		},
		[]string{"method"},
	)

	runs = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "digest",
			Name:      "runs_total",
			Help:      "Execuções do pipeline por estado final.",
		},
		[]string{"state", "abort_reason"},
	)

	runDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "digest",
			Name:      "run_duration_seconds",
			Help:      "Duração de cada execução do pipeline.",
			Buckets:   prometheus.ExponentialBuckets(0.5, 2, 10),
		},
	)

	snapshotApps = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "chart",
			Name:      "snapshot_apps",
			Help:      "Quantidade de apps no último ranking obtido.",
		},
	)

	emails = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "mail",
			Name:      "emails_total",
			Help:      "E-mails processados por resultado.",
		},
		[]string{"result"},
	)

	emailDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "mail",
			Name:      "send_duration_seconds",
			Help:      "Duração de cada envio de e-mail.",
			Buckets:   prometheus.ExponentialBuckets(0.01, 2, 12),
		},
	)
)

func init() {
	Registry.MustRegister(
		httpRequests,
		httpDuration,
		runs,
		runDuration,
		snapshotApps,
		emails,
		emailDuration,
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
		prometheus.NewGoCollector(),
	)
}

// Handler expõe os coletores registrados no formato do Prometheus
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

func RecordRun(summary domain.RunSummary) {
	runs.WithLabelValues(string(summary.State), summary.AbortReason).Inc()
	if !summary.FinishedAt.IsZero() && !summary.StartedAt.IsZero() {
		runDuration.Observe(summary.FinishedAt.Sub(summary.StartedAt).Seconds())
	}
}

func RecordSnapshotSize(apps int) {
	snapshotApps.Set(float64(apps))
}

func RecordEmail(err error, duration time.Duration) {
	result := "sent"
	if err != nil {
		result = "failed"
	}
	emails.WithLabelValues(result).Inc()
	emailDuration.Observe(duration.Seconds())
}

func RecordHTTPRequest(method string, status int, duration time.Duration) {
	httpRequests.WithLabelValues(method, strconv.Itoa(status)).Inc()
	httpDuration.WithLabelValues(method).Observe(duration.Seconds())
}
