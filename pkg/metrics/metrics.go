package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics коллектор Prometheus метрик сервиса
// Методы безопасно вызывать на nil (метрики выключены в конфиге).
type Metrics struct {
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	httpInFlight        prometheus.Gauge

	backendRequestsTotal   *prometheus.CounterVec
	backendRequestDuration *prometheus.HistogramVec

	zoneResolutions   *prometheus.CounterVec
	tagLookups        *prometheus.CounterVec
	bookedDateFetches *prometheus.CounterVec
	datesRejected     *prometheus.CounterVec
	cartAdditions     *prometheus.CounterVec
}

// New создает метрики и регистрирует их в стандартном реестре
func New(serviceName string) *Metrics {
	return NewWithRegisterer(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegisterer создает метрики в указанном реестре
func NewWithRegisterer(serviceName string, reg prometheus.Registerer) *Metrics {
	labels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		httpRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: labels,
		}, []string{"method", "route", "status"}),
		httpRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: labels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),
		httpInFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "http_requests_in_flight",
			Help:        "Number of HTTP requests being served",
			ConstLabels: labels,
		}),
		backendRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "commerce_backend_requests_total",
			Help:        "Total number of requests to the commerce backend",
			ConstLabels: labels,
		}, []string{"operation", "status"}),
		backendRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "commerce_backend_request_duration_seconds",
			Help:        "Commerce backend request duration in seconds",
			ConstLabels: labels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"operation"}),
		zoneResolutions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "zone_resolutions_total",
			Help:        "Postal code to zone resolutions by outcome",
			ConstLabels: labels,
		}, []string{"outcome"}),
		tagLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "zone_tag_lookups_total",
			Help:        "Zone tag lookups by outcome (found, not_found, failed)",
			ConstLabels: labels,
		}, []string{"outcome"}),
		bookedDateFetches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "booked_dates_fetches_total",
			Help:        "Booked dates reads by outcome; failed reads fail open",
			ConstLabels: labels,
		}, []string{"outcome"}),
		datesRejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "delivery_dates_rejected_total",
			Help:        "Delivery dates rejected because they are booked",
			ConstLabels: labels,
		}, []string{"stage"}),
		cartAdditions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "cart_additions_total",
			Help:        "Add to cart attempts by outcome",
			ConstLabels: labels,
		}, []string{"outcome"}),
	}

	reg.MustRegister(
		m.httpRequestsTotal,
		m.httpRequestDuration,
		m.httpInFlight,
		m.backendRequestsTotal,
		m.backendRequestDuration,
		m.zoneResolutions,
		m.tagLookups,
		m.bookedDateFetches,
		m.datesRejected,
		m.cartAdditions,
	)

	return m
}

// ObserveHTTPRequest учитывает обработанный HTTP запрос
func (m *Metrics) ObserveHTTPRequest(method, route string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.httpRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// InFlightInc увеличивает число обрабатываемых запросов
func (m *Metrics) InFlightInc() {
	if m == nil {
		return
	}
	m.httpInFlight.Inc()
}

// InFlightDec уменьшает число обрабатываемых запросов
func (m *Metrics) InFlightDec() {
	if m == nil {
		return
	}
	m.httpInFlight.Dec()
}

// ObserveBackendRequest учитывает запрос к commerce-бэкенду
func (m *Metrics) ObserveBackendRequest(operation, status string, duration time.Duration) {
	if m == nil {
		return
	}
	m.backendRequestsTotal.WithLabelValues(operation, status).Inc()
	m.backendRequestDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// IncZoneResolution учитывает результат определения зоны
func (m *Metrics) IncZoneResolution(outcome string) {
	if m == nil {
		return
	}
	m.zoneResolutions.WithLabelValues(outcome).Inc()
}

// IncTagLookup учитывает результат поиска тега зоны
func (m *Metrics) IncTagLookup(outcome string) {
	if m == nil {
		return
	}
	m.tagLookups.WithLabelValues(outcome).Inc()
}

// IncBookedDatesFetch учитывает чтение занятых дат
func (m *Metrics) IncBookedDatesFetch(outcome string) {
	if m == nil {
		return
	}
	m.bookedDateFetches.WithLabelValues(outcome).Inc()
}

// IncDateRejected учитывает отклонённую дату доставки
func (m *Metrics) IncDateRejected(stage string) {
	if m == nil {
		return
	}
	m.datesRejected.WithLabelValues(stage).Inc()
}

// IncCartAddition учитывает попытку добавить товар в корзину
func (m *Metrics) IncCartAddition(outcome string) {
	if m == nil {
		return
	}
	m.cartAdditions.WithLabelValues(outcome).Inc()
}
