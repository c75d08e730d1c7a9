package middleware

// Metrics HTTP метрики
type Metrics interface {
	ObserveHTTPRequest(method, route, status string, seconds float64)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
