package cmd

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
)

func TestConfigureTelemetry_Disabled(t *testing.T) {
	shutdown, err := configureTelemetry("", "  ")
	require.NoError(t, err)
	require.NotNil(t, shutdown)

	assert.NoError(t, shutdown(context.Background()))
}

func TestConfigureTelemetry_WritesFiles(t *testing.T) {
	originalTP := otel.GetTracerProvider()
	originalMP := otel.GetMeterProvider()
	t.Cleanup(func() {
		otel.SetTracerProvider(originalTP)
		otel.SetMeterProvider(originalMP)
	})

	dir := t.TempDir()
	traceFile := filepath.Join(dir, "trace.json")
	metricsFile := filepath.Join(dir, "metrics.json")

	shutdown, err := configureTelemetry(traceFile, metricsFile)
	require.NoError(t, err)

	_, span := otel.Tracer("test").Start(context.Background(), "span")
	span.End()

	counter, err := otel.Meter("test").Int64Counter("test_total")
	require.NoError(t, err)
	counter.Add(context.Background(), 1)

	require.NoError(t, shutdown(context.Background()))

	traces, err := os.ReadFile(traceFile)
	require.NoError(t, err)
	assert.Contains(t, string(traces), "span")

	metrics, err := os.ReadFile(metricsFile)
	require.NoError(t, err)
	assert.Contains(t, string(metrics), "test_total")
}

func TestConfigureTelemetry_BadPath(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing", "trace.json")

	_, err := configureTelemetry(missing, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "open trace file")
}
