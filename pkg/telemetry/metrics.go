// Package telemetry exposes Prometheus metrics for calls made to the Unipile API.
package telemetry

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// StatusTransportError labels calls that never produced an HTTP status.
const StatusTransportError = "transport_error"

var (
	// GatewayRequestsTotal counts backend calls by method and status code.
	GatewayRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "unipile_gateway_requests_total",
			Help: "Total number of requests sent to the Unipile API",
		},
		[]string{"method", "status_code"},
	)

	// GatewayRequestDuration tracks backend call latency.
	GatewayRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "unipile_gateway_request_duration_seconds",
			Help:    "Duration of requests sent to the Unipile API in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method"},
	)

	// ToolCallsTotal counts tool invocations by tool name and outcome kind.
	ToolCallsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "unipile_tool_calls_total",
			Help: "Total number of MCP tool invocations",
		},
		[]string{"tool", "outcome"},
	)

	// ToolCallDuration tracks end to end tool latency, gateway time included.
	ToolCallDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "unipile_tool_call_duration_seconds",
			Help:    "Duration of MCP tool invocations in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"tool"},
	)
)

// ObserveGateway records one backend call. A zero status means the call failed in transport.
func ObserveGateway(method string, status int, duration time.Duration) {
	label := StatusTransportError
	if status > 0 {
		label = strconv.Itoa(status)
	}

	GatewayRequestsTotal.WithLabelValues(method, label).Inc()
	GatewayRequestDuration.WithLabelValues(method).Observe(duration.Seconds())
}

// ObserveTool records one tool invocation.
func ObserveTool(tool, outcome string) {
	ToolCallsTotal.WithLabelValues(tool, outcome).Inc()
}

// ObserveToolDuration records how long one tool invocation took.
func ObserveToolDuration(tool string, duration time.Duration) {
	ToolCallDuration.WithLabelValues(tool).Observe(duration.Seconds())
}

/*
Serve exposes /metrics on addr until ctx is cancelled. It is meant to run in
its own goroutine next to the stdio server.
*/
func Serve(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("metrics server shutdown", "error", err)
		}
	}()

	log.Info("serving metrics", "addr", addr)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
