package dbmetrics

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/m04kA/SMC-InventoryService/pkg/metrics"
)

// DefaultPoolStatsInterval период сбора статистики пула соединений
const DefaultPoolStatsInterval = 15 * time.Second

// DBExecutor интерфейс выполнения запросов
// Реализуется *sql.DB и *DB
type DBExecutor interface {
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

// DB обёртка над *sql.DB, замеряющая длительность запросов
type DB struct {
	db      *sql.DB
	metrics *metrics.Metrics
}

// Wrap оборачивает соединение без сбора статистики пула
func Wrap(db *sql.DB, m *metrics.Metrics) *DB {
	return &DB{db: db, metrics: m}
}

// WrapWithDefault оборачивает соединение и запускает сбор статистики пула
// до закрытия stopCh
func WrapWithDefault(db *sql.DB, m *metrics.Metrics, stopCh <-chan struct{}) *DB {
	wrapped := Wrap(db, m)
	go wrapped.collectPoolStats(DefaultPoolStatsInterval, stopCh)
	return wrapped
}

func (d *DB) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	start := time.Now()
	rows, err := d.db.QueryContext(ctx, query, args...)
	d.metrics.ObserveDBQuery(Operation(query), time.Since(start), err)
	return rows, err
}

// QueryRowContext ошибка строки проявляется только при Scan, поэтому учитывается лишь длительность
func (d *DB) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	start := time.Now()
	row := d.db.QueryRowContext(ctx, query, args...)
	d.metrics.ObserveDBQuery(Operation(query), time.Since(start), nil)
	return row
}

func (d *DB) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	start := time.Now()
	res, err := d.db.ExecContext(ctx, query, args...)
	d.metrics.ObserveDBQuery(Operation(query), time.Since(start), err)
	return res, err
}

func (d *DB) collectPoolStats(interval time.Duration, stopCh <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	d.recordPoolStats()
	for {
		select {
		case <-ticker.C:
			d.recordPoolStats()
		case <-stopCh:
			return
		}
	}
}

func (d *DB) recordPoolStats() {
	stats := d.db.Stats()
	service := d.metrics.ServiceName()

	d.metrics.DBOpenConnections.WithLabelValues(service).Set(float64(stats.OpenConnections))
	d.metrics.DBInUseConnections.WithLabelValues(service).Set(float64(stats.InUse))
	d.metrics.DBIdleConnections.WithLabelValues(service).Set(float64(stats.Idle))
	d.metrics.DBWaitCount.WithLabelValues(service).Set(float64(stats.WaitCount))
}

// Operation определяет тип запроса по первому ключевому слову
func Operation(query string) string {
	fields := strings.Fields(query)
	if len(fields) == 0 {
		return "unknown"
	}
	switch op := strings.ToLower(fields[0]); op {
	case "select", "insert", "update", "delete", "with":
		return op
	default:
		return "other"
	}
}
