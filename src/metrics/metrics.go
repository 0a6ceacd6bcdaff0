package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Metrics struct {
	Registry        *prometheus.Registry
	Refreshes       *prometheus.CounterVec
	Mutations       *prometheus.CounterVec
	Records         prometheus.Gauge
	RequestDuration *prometheus.HistogramVec
}

func New() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		Refreshes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "rentroll_refresh_total",
			Help: "Rent roll loads from the data source by result.",
		}, []string{"result"}),
		Mutations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "rentroll_mutations_total",
			Help: "Move-in and move-out operations by whether they changed the rent roll.",
		}, []string{"operation", "applied"}),
		Records: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "rentroll_records",
			Help: "Records currently held in memory.",
		}),
		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "rentroll_http_request_duration_seconds",
			Help:    "HTTP request latency by route and status.",
			Buckets: prometheus.DefBuckets,
		}, []string{"route", "status"}),
	}
	m.Registry.MustRegister(
		m.Refreshes,
		m.Mutations,
		m.Records,
		m.RequestDuration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

func (m *Metrics) ObserveRefresh(err error, records int) {
	if err != nil {
		m.Refreshes.WithLabelValues("error").Inc()
		return
	}
	m.Refreshes.WithLabelValues("ok").Inc()
	m.Records.Set(float64(records))
}

func (m *Metrics) ObserveMutation(operation string, applied bool, records int) {
	m.Mutations.WithLabelValues(operation, strconv.FormatBool(applied)).Inc()
	m.Records.Set(float64(records))
}

func (m *Metrics) ObserveRequest(route string, status int, elapsed time.Duration) {
	m.RequestDuration.WithLabelValues(route, strconv.Itoa(status)).Observe(elapsed.Seconds())
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})
}
