package middleware

import (
	"net/http"
	"strconv"

	"github.com/felixge/httpsnoop"
	"github.com/gorilla/mux"
)

const unmatchedRoute = "unmatched"

// MetricsMiddleware считает запросы и их длительность по шаблону маршрута,
// а не по фактическому пути: ID сессий не должны попадать в label
func MetricsMiddleware(metrics Metrics) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			m := httpsnoop.CaptureMetrics(next, w, r)
			metrics.ObserveHTTPRequest(r.Method, routeTemplate(r), strconv.Itoa(m.Code), m.Duration.Seconds())
		})
	}
}

// AccessLog пишет строку лога на каждый запрос
func AccessLog(logger Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			m := httpsnoop.CaptureMetrics(next, w, r)
			logger.Info("%s %s -> %d (%d bytes, %s)", r.Method, r.URL.Path, m.Code, m.Written, m.Duration)
		})
	}
}

func routeTemplate(r *http.Request) string {
	route := mux.CurrentRoute(r)
	if route == nil {
		return unmatchedRoute
	}
	tpl, err := route.GetPathTemplate()
	if err != nil {
		return unmatchedRoute
	}
	return tpl
}
