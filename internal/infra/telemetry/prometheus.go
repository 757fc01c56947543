package telemetry

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"toolbox/internal/domain"
)

type PrometheusMetrics struct {
	searches      *prometheus.CounterVec
	searchResults prometheus.Histogram
	toolOpens     *prometheus.CounterVec
	toolRuns      *prometheus.HistogramVec
	recentWrites  *prometheus.CounterVec
}

func NewPrometheusMetrics(registerer prometheus.Registerer) *PrometheusMetrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}
	factory := promauto.With(registerer)

	return &PrometheusMetrics{
		searches: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "toolbox_searches_total",
				Help: "Total number of workspace search evaluations",
			},
			[]string{"outcome"},
		),
		searchResults: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "toolbox_search_results",
				Help:    "Number of tools returned per search",
				Buckets: []float64{0, 1, 2, 3, 5, 8, 13, 21},
			},
		),
		toolOpens: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "toolbox_tool_opens_total",
				Help: "Total number of tool opens",
			},
			[]string{"slug"},
		),
		toolRuns: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "toolbox_tool_run_duration_seconds",
				Help:    "Duration of tool runs in seconds",
				Buckets: []float64{.001, .005, .01, .05, .1, .25, .5, 1, 2.5, 5, 10},
			},
			[]string{"slug", "status"},
		),
		recentWrites: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "toolbox_recent_writes_total",
				Help: "Total number of recent-tools persistence writes",
			},
			[]string{"status"},
		),
	}
}

func (p *PrometheusMetrics) ObserveSearch(outcome domain.SearchOutcome, results int) {
	p.searches.WithLabelValues(string(outcome)).Inc()
	p.searchResults.Observe(float64(results))
}

func (p *PrometheusMetrics) ObserveToolOpen(slug string) {
	p.toolOpens.WithLabelValues(slug).Inc()
}

func (p *PrometheusMetrics) ObserveToolRun(slug string, status domain.RunStatus, duration time.Duration) {
	p.toolRuns.WithLabelValues(slug, string(status)).Observe(duration.Seconds())
}

func (p *PrometheusMetrics) ObserveRecentWrite(err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	p.recentWrites.WithLabelValues(status).Inc()
}

var _ domain.Metrics = (*PrometheusMetrics)(nil)
