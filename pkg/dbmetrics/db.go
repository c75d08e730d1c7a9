package dbmetrics

import (
	"context"
	"database/sql"
	"strings"
	"time"
)

// DBExecutor общий интерфейс *sql.DB, *sql.Tx и *DB
type DBExecutor interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// Metrics гистограмма длительности запросов
type Metrics interface {
	ObserveDBQuery(operation string, seconds float64)
}

// DB обертка над *sql.DB, замеряющая длительность каждого запроса
type DB struct {
	*sql.DB
	metrics Metrics
}

// Wrap оборачивает соединение; metrics == nil - замеры выключены
func Wrap(db *sql.DB, metrics Metrics) *DB {
	return &DB{DB: db, metrics: metrics}
}

func (d *DB) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	defer d.observe(query, time.Now())
	return d.DB.ExecContext(ctx, query, args...)
}

func (d *DB) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	defer d.observe(query, time.Now())
	return d.DB.QueryContext(ctx, query, args...)
}

func (d *DB) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	defer d.observe(query, time.Now())
	return d.DB.QueryRowContext(ctx, query, args...)
}

func (d *DB) observe(query string, start time.Time) {
	if d.metrics == nil {
		return
	}
	d.metrics.ObserveDBQuery(operationOf(query), time.Since(start).Seconds())
}

// operationOf первое ключевое слово запроса в нижнем регистре: select, insert, ...
func operationOf(query string) string {
	fields := strings.Fields(query)
	if len(fields) == 0 {
		return "unknown"
	}
	return strings.ToLower(fields[0])
}
