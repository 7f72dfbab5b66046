package api

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

var (
	requestCount = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stride_http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	requestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "stride_request_duration_seconds",
			Help: "Request duration in seconds",
		},
		[]string{"method", "path"},
	)
)

func init() {
	prometheus.MustRegister(requestCount, requestDuration)
}

// RequestLogger records one structured log line and the request metrics per
// call. The metric path label uses the route pattern, not the raw URL, to
// keep label cardinality bounded.
func RequestLogger(logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		status := c.Response().StatusCode()
		var fiberError *fiber.Error
		if err != nil {
			status = fiber.StatusInternalServerError
			if errors.As(err, &fiberError) {
				status = fiberError.Code
			}
		}

		routePath := c.Route().Path
		duration := time.Since(start).Seconds()

		requestCount.WithLabelValues(c.Method(), routePath, strconv.Itoa(status)).Inc()
		requestDuration.WithLabelValues(c.Method(), routePath).Observe(duration)

		logger.Info("http_request",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Int("status", status),
			zap.Float64("duration", duration),
			zap.String("client_ip", c.IP()),
		)

		return err
	}
}
