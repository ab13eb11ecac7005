package domain

import (
	"context"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// Package-level tracer and meter for impact analysis.
var (
	tracer = otel.Tracer("tia.impact")
	meter  = otel.Meter("tia.impact")
)

var (
	analysisLatency   metric.Float64Histogram
	analysisTotal     metric.Int64Counter
	impactedTestCount metric.Int64Histogram

	metricsOnce sync.Once
	metricsErr  error
)

// initMetrics creates the instruments once. Safe to call multiple times.
func initMetrics() error {
	metricsOnce.Do(func() {
		var err error

		analysisLatency, err = meter.Float64Histogram(
			"impact_analysis_duration_seconds",
			metric.WithDescription("Duration of impact analyses"),
			metric.WithUnit("s"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		analysisTotal, err = meter.Int64Counter(
			"impact_analysis_total",
			metric.WithDescription("Total number of impact analyses"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		impactedTestCount, err = meter.Int64Histogram(
			"impact_impacted_tests",
			metric.WithDescription("Number of tests impacted per analysis"),
		)
		if err != nil {
			metricsErr = err
			return
		}
	})

	return metricsErr
}

func startAnalysisSpan(ctx context.Context, changed int) (context.Context, trace.Span) {
	return tracer.Start(ctx, "Engine.Analyze",
		trace.WithAttributes(
			attribute.Int("impact.changed_types", changed),
		),
	)
}

func setAnalysisSpanResult(span trace.Span, impacted int, err error) {
	span.SetAttributes(
		attribute.Int("impact.impacted_tests", impacted),
		attribute.Bool("impact.success", err == nil),
	)

	if err != nil {
		span.RecordError(err)
	}
}

func startSweepSpan(ctx context.Context, kind SweepKind) (context.Context, trace.Span) {
	return tracer.Start(ctx, "Engine.sweep",
		trace.WithAttributes(
			attribute.String("impact.sweep", kind.String()),
		),
	)
}

func recordAnalysisMetrics(ctx context.Context, duration time.Duration, impacted int, success bool) {
	if err := initMetrics(); err != nil {
		return
	}

	attrs := metric.WithAttributes(
		attribute.Bool("success", success),
	)

	analysisLatency.Record(ctx, duration.Seconds(), attrs)
	analysisTotal.Add(ctx, 1, attrs)
	impactedTestCount.Record(ctx, int64(impacted))
}
