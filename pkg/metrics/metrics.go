package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics коллектор метрик сервиса
type Metrics struct {
	serviceName string

	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	DBQueryDuration    *prometheus.HistogramVec
	DBQueryErrorsTotal *prometheus.CounterVec
	DBOpenConnections  *prometheus.GaugeVec
	DBInUseConnections *prometheus.GaugeVec
	DBIdleConnections  *prometheus.GaugeVec
	DBWaitCount        *prometheus.GaugeVec

	AvailabilityChecksTotal *prometheus.CounterVec
	CalendarBuildsTotal     *prometheus.CounterVec
}

// New создает метрики в глобальном реестре Prometheus
func New(serviceName string) *Metrics {
	return NewWithRegisterer(prometheus.DefaultRegisterer, serviceName)
}

// NewWithRegisterer создает метрики в указанном реестре
func NewWithRegisterer(reg prometheus.Registerer, serviceName string) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		serviceName: serviceName,

		HTTPRequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"service", "method", "path", "status"}),

		HTTPRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"service", "method", "path"}),

		DBQueryDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "db_query_duration_seconds",
			Help:    "Database query duration in seconds",
			Buckets: []float64{.001, .0025, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"service", "operation"}),

		DBQueryErrorsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "db_query_errors_total",
			Help: "Total number of failed database queries",
		}, []string{"service", "operation"}),

		DBOpenConnections: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_open_connections",
			Help: "Number of established connections",
		}, []string{"service"}),

		DBInUseConnections: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_in_use_connections",
			Help: "Number of connections currently in use",
		}, []string{"service"}),

		DBIdleConnections: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_idle_connections",
			Help: "Number of idle connections",
		}, []string{"service"}),

		DBWaitCount: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_wait_count",
			Help: "Total number of connections waited for",
		}, []string{"service"}),

		AvailabilityChecksTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "availability_checks_total",
			Help: "Total number of availability evaluations by scope and verdict",
		}, []string{"service", "scope", "result"}),

		CalendarBuildsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "calendar_builds_total",
			Help: "Total number of rendered month calendars",
		}, []string{"service"}),
	}
}

// ServiceName возвращает имя сервиса, которым помечаются метрики
func (m *Metrics) ServiceName() string {
	return m.serviceName
}

// ObserveHTTPRequest записывает метрики HTTP запроса
func (m *Metrics) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	m.HTTPRequestsTotal.WithLabelValues(m.serviceName, method, path, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(m.serviceName, method, path).Observe(duration.Seconds())
}

// ObserveDBQuery записывает длительность и результат запроса к БД
func (m *Metrics) ObserveDBQuery(operation string, duration time.Duration, err error) {
	m.DBQueryDuration.WithLabelValues(m.serviceName, operation).Observe(duration.Seconds())
	if err != nil {
		m.DBQueryErrorsTotal.WithLabelValues(m.serviceName, operation).Inc()
	}
}

// RecordAvailabilityCheck учитывает вердикт проверки доступности
func (m *Metrics) RecordAvailabilityCheck(scope string, available bool) {
	result := "unavailable"
	if available {
		result = "available"
	}
	m.AvailabilityChecksTotal.WithLabelValues(m.serviceName, scope, result).Inc()
}

// RecordCalendarBuild учитывает построение календаря
func (m *Metrics) RecordCalendarBuild() {
	m.CalendarBuildsTotal.WithLabelValues(m.serviceName).Inc()
}

// Noop заглушка для запуска без метрик
type Noop struct{}

func (Noop) RecordAvailabilityCheck(string, bool) {}

func (Noop) RecordCalendarBuild() {}
