package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "shakplay_http_requests_total",
		Help: "Requests served by the application shell API.",
	}, []string{"method", "route", "status"})

	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "shakplay_http_request_duration_seconds",
		Help:    "Latency of the application shell API.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})

	gatewayRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "shakplay_gateway_requests_total",
		Help: "Outbound calls to the Xano workspace by outcome.",
	}, []string{"method", "outcome"})

	gatewayRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "shakplay_gateway_request_duration_seconds",
		Help:    "Latency of outbound calls to the Xano workspace.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method"})
)

// PrometheusMiddleware records count and latency per route template.
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		httpRequestsTotal.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
		httpRequestDuration.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}

// ObserveGatewayRequest records one outbound call. outcome is "ok" or the
// failure kind reported by the gateway.
func ObserveGatewayRequest(method, outcome string, duration time.Duration) {
	gatewayRequestsTotal.WithLabelValues(method, outcome).Inc()
	gatewayRequestDuration.WithLabelValues(method).Observe(duration.Seconds())
}
