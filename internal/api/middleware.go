package api

import (
	"errors"
	"net/http"
	"runtime/debug"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"alcyxob/trainer-backoffice/internal/metrics"
	"alcyxob/trainer-backoffice/internal/service"
)

// Constants for context keys
const (
	ContextRequestIDKey = "requestID"
	HeaderRequestID     = "X-Request-ID"
)

// RequestID makes sure every request carries an id, reusing the caller's
// X-Request-ID when present.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(ContextRequestIDKey, id)
		c.Header(HeaderRequestID, id)
		c.Next()
	}
}

// RequestLogger logs one line per request once the handler chain is done.
func RequestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("request_id", c.GetString(ContextRequestIDKey)),
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("errors", c.Errors.String()))
		}

		switch status := c.Writer.Status(); {
		case status >= http.StatusInternalServerError:
			logger.Error("request", fields...)
		case status >= http.StatusBadRequest:
			logger.Warn("request", fields...)
		default:
			logger.Info("request", fields...)
		}
	}
}

// RequestMetrics records request counts, in-flight requests and durations.
func RequestMetrics(metricsManager *metrics.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		metricsManager.GaugeRequests.Inc()
		defer func(begin time.Time) {
			metricsManager.GaugeRequests.Dec()
			status := strconv.Itoa(c.Writer.Status())
			route := c.FullPath()
			if route == "" {
				route = "unmatched"
			}
			metricsManager.HistogramRequestDuration.
				WithLabelValues(route, c.Request.Method, status).
				Observe(time.Since(begin).Seconds())
			metricsManager.CounterRequests.WithLabelValues(c.Request.Method, status).Inc()
		}(time.Now())

		// handler call
		c.Next()
	}
}

// PanicRecovery turns a handler panic into a 500 response.
func PanicRecovery(metricsManager *metrics.Manager, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("panic serving request",
					zap.String("path", c.Request.URL.Path),
					zap.Any("panic", r),
					zap.ByteString("stack", debug.Stack()),
				)
				if metricsManager != nil {
					metricsManager.CounterHandlerPanics.Inc()
				}
				abortWithError(c, http.StatusInternalServerError, "Internal server error.")
			}
		}()

		// handler call
		c.Next()
	}
}

// Helper to return JSON error response and abort request
func abortWithError(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, gin.H{"error": message})
}

// abortWithServiceError maps service errors to HTTP status codes. Anything
// unknown becomes a 500 carrying fallback; the cause is kept on the context
// for the request logger.
func abortWithServiceError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, service.ErrValidationFailed),
		errors.Is(err, service.ErrAssignedExerciseIndex):
		abortWithError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrClientNotFound),
		errors.Is(err, service.ErrWorkoutNotFound),
		errors.Is(err, service.ErrExerciseNotFound),
		errors.Is(err, service.ErrWorkoutNotAssigned):
		abortWithError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrWorkoutAlreadyAssigned):
		abortWithError(c, http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrAIUnavailable):
		_ = c.Error(err)
		abortWithError(c, http.StatusBadGateway, service.PlanFailureMessage)
	default:
		_ = c.Error(err)
		abortWithError(c, http.StatusInternalServerError, fallback)
	}
}

// parseIDParam reads a positive integer path parameter.
func parseIDParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		abortWithError(c, http.StatusBadRequest, "Invalid "+name+" format.")
		return 0, false
	}
	return id, true
}
