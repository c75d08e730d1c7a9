package scheduler

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Metrics длительность запросов к внешнему API
type Metrics interface {
	ObserveSchedulerRequest(endpoint, status string, seconds float64)
}

type nopMetrics struct{}

func (nopMetrics) ObserveSchedulerRequest(string, string, float64) {}
