package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

const serviceName = "tia"

// shutdownFunc flushes and releases telemetry resources.
type shutdownFunc func(context.Context) error

// configureTelemetry installs stdout exporters writing to traceFile and
// metricsFile. Empty paths leave the global no-op providers in place.
func configureTelemetry(traceFile, metricsFile string) (shutdownFunc, error) {
	var shutdownFuncs []shutdownFunc

	shutdown := func(ctx context.Context) error {
		var errs []error
		for i := len(shutdownFuncs) - 1; i >= 0; i-- {
			errs = append(errs, shutdownFuncs[i](ctx))
		}

		shutdownFuncs = nil

		return errors.Join(errs...)
	}

	res := resource.NewSchemaless(attribute.String("service.name", serviceName))

	if strings.TrimSpace(traceFile) != "" {
		file, err := openTelemetryFile(traceFile)
		if err != nil {
			return nil, fmt.Errorf("open trace file: %w", err)
		}

		exporter, err := stdouttrace.New(stdouttrace.WithWriter(file), stdouttrace.WithPrettyPrint())
		if err != nil {
			_ = file.Close()
			return nil, fmt.Errorf("create trace exporter: %w", err)
		}

		tp := sdktrace.NewTracerProvider(
			sdktrace.WithBatcher(exporter),
			sdktrace.WithResource(res),
			sdktrace.WithSampler(sdktrace.AlwaysSample()),
		)
		otel.SetTracerProvider(tp)

		shutdownFuncs = append(shutdownFuncs, closeFunc(file), tp.Shutdown)
	}

	if strings.TrimSpace(metricsFile) != "" {
		file, err := openTelemetryFile(metricsFile)
		if err != nil {
			return nil, errors.Join(fmt.Errorf("open metrics file: %w", err), shutdown(context.Background()))
		}

		exporter, err := stdoutmetric.New(stdoutmetric.WithWriter(file), stdoutmetric.WithPrettyPrint())
		if err != nil {
			_ = file.Close()
			return nil, errors.Join(fmt.Errorf("create metric exporter: %w", err), shutdown(context.Background()))
		}

		mp := sdkmetric.NewMeterProvider(
			sdkmetric.WithResource(res),
			sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter)),
		)
		otel.SetMeterProvider(mp)

		shutdownFuncs = append(shutdownFuncs, closeFunc(file), mp.Shutdown)
	}

	return shutdown, nil
}

func openTelemetryFile(path string) (*os.File, error) {
	// #nosec G304 - telemetry path is chosen by the user
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o600)
}

func closeFunc(file *os.File) shutdownFunc {
	return func(context.Context) error {
		return file.Close()
	}
}
