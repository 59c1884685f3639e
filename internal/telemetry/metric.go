package telemetry

import (
	"shiftwave/config"
	"shiftwave/internal/core"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metric struct
type Metric struct {
	HttpRequestsTotal      *prometheus.CounterVec
	HttpRequestDuration    *prometheus.HistogramVec
	ScheduleRunsTotal      *prometheus.CounterVec
	ScheduleRunDuration    *prometheus.HistogramVec
	ShiftsWrittenTotal     *prometheus.CounterVec
	UnderstaffedWavesTotal *prometheus.CounterVec
	config                 *config.Configuration
}

// NewMetric 建立所有指標
func NewMetric(config *config.Configuration) *Metric {
	if config == nil || !config.Telemetry.Metric.Enabled {
		return &Metric{}
	}
	buckets := prometheus.DefBuckets
	if len(config.Telemetry.Metric.Buckets) > 0 {
		buckets = config.Telemetry.Metric.Buckets
	}
	return &Metric{
		config: config,
		HttpRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: config.App.Name + "_" + string(core.MetricHttpRequestsTotal),
				Help: "Total received API requests",
			},
			labelNames(core.MetricLabelEndpoint, core.MetricLabelStatus),
		),
		HttpRequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    config.App.Name + "_" + string(core.MetricHttpRequestDuration),
				Help:    "Request duration (seconds)",
				Buckets: buckets,
			},
			labelNames(core.MetricLabelEndpoint),
		),
		ScheduleRunsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: config.App.Name + "_" + string(core.MetricScheduleRunsTotal),
				Help: "Weekly schedule generation runs by outcome",
			},
			labelNames(core.MetricLabelVenue, core.MetricLabelOutcome),
		),
		ScheduleRunDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    config.App.Name + "_" + string(core.MetricScheduleRunDuration),
				Help:    "Weekly schedule generation duration (seconds)",
				Buckets: buckets,
			},
			labelNames(core.MetricLabelVenue),
		),
		ShiftsWrittenTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: config.App.Name + "_" + string(core.MetricShiftsWrittenTotal),
				Help: "Shift assignments written per position",
			},
			labelNames(core.MetricLabelVenue, core.MetricLabelPosition),
		),
		UnderstaffedWavesTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: config.App.Name + "_" + string(core.MetricUnderstaffedWavesTotal),
				Help: "Waves left short of computed need per position",
			},
			labelNames(core.MetricLabelVenue, core.MetricLabelPosition),
		),
	}
}

// labelNames helper: LabelName slice 轉成 []string
func labelNames(labels ...core.MetricLabelName) []string {
	strs := make([]string, len(labels))
	for i, l := range labels {
		strs[i] = string(l)
	}
	return strs
}
