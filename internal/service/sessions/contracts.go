package sessions

// Metrics gauge активных сессий по виду
type Metrics interface {
	SetActiveSessions(kind string, count int)
}

// Logger интерфейс для логирования
type Logger interface {
	Debug(format string, v ...interface{})
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

type nopMetrics struct{}

func (nopMetrics) SetActiveSessions(string, int) {}
