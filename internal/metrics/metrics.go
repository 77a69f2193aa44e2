package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"BacktestDesk/internal/model"
)

// Metrics holds the Prometheus collectors for snapshot refreshes.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	Registry *prometheus.Registry

	RefreshTotal      *prometheus.CounterVec
	IndicatorDuration *prometheus.HistogramVec
	IndicatorErrors   *prometheus.CounterVec
	LastClose         prometheus.Gauge
	LastRSI           prometheus.Gauge
	SnapshotBars      prometheus.Gauge
}

// New creates the collectors on a private registry.
func New() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		RefreshTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "desk_refresh_total",
				Help: "Total number of snapshot refreshes by outcome",
			},
			[]string{"status"},
		),
		IndicatorDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "desk_indicator_duration_seconds",
				Help:    "Time spent computing one indicator series",
				Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10),
			},
			[]string{"type"},
		),
		IndicatorErrors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "desk_indicator_errors_total",
				Help: "Total number of failed indicator computations",
			},
			[]string{"type"},
		),
		LastClose: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "desk_last_close",
			Help: "Close of the latest bar in the most recent snapshot",
		}),
		LastRSI: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "desk_last_rsi",
			Help: "Latest RSI value in the most recent snapshot",
		}),
		SnapshotBars: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "desk_snapshot_bars",
			Help: "Number of bars in the most recent snapshot",
		}),
	}
	m.Registry.MustRegister(
		m.RefreshTotal,
		m.IndicatorDuration,
		m.IndicatorErrors,
		m.LastClose,
		m.LastRSI,
		m.SnapshotBars,
	)
	return m
}

// ObserveIndicator records one indicator computation.
func (m *Metrics) ObserveIndicator(t model.IndicatorType, elapsed time.Duration, err error) {
	if m == nil {
		return
	}
	m.IndicatorDuration.WithLabelValues(string(t)).Observe(elapsed.Seconds())
	if err != nil {
		m.IndicatorErrors.WithLabelValues(string(t)).Inc()
	}
}

// ObserveRefresh records the outcome of a refresh and the latest values.
func (m *Metrics) ObserveRefresh(snap *model.Snapshot, err error) {
	if m == nil {
		return
	}
	if err != nil || snap == nil {
		m.RefreshTotal.WithLabelValues("error").Inc()
		return
	}
	m.RefreshTotal.WithLabelValues("ok").Inc()
	m.SnapshotBars.Set(float64(len(snap.Bars)))
	m.LastClose.Set(snap.Stats.CurrentPrice)
	if res := snap.ResultByType(model.IndicatorRSI); res != nil {
		if l := res.Line("rsi"); l != nil && len(l.Values) > 0 {
			m.LastRSI.Set(l.Last())
		}
	}
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})
}
