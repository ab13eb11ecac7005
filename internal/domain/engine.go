package domain

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"
	m "tia.dev/pkg/tia/internal/model"
)

// Engine computes which tests a change set impacts.
type Engine interface {
	Analyze(ctx context.Context, g Graph, changed m.ChangeSet) (m.ImpactResult, error)
}

// EngineOption configures an Engine.
type EngineOption func(*engine)

// WithParallelSweeps toggles running the sweeps as concurrent tasks.
func WithParallelSweeps(parallel bool) EngineOption {
	return func(e *engine) {
		e.parallel = parallel
	}
}

type engine struct {
	parallel bool
}

// NewEngine returns an Engine running its sweeps in parallel by default.
func NewEngine(options ...EngineOption) Engine {
	e := &engine{parallel: true}
	for _, option := range options {
		option(e)
	}

	return e
}

type sweepFunc func(ctx context.Context) (m.ImpactResult, error)

// Analyze runs the direct, usage, subtype and supertype sweeps over g and
// merges their findings by relationship precedence. Any error aborts the
// whole run and no partial result is returned.
func (e *engine) Analyze(ctx context.Context, g Graph, changed m.ChangeSet) (result m.ImpactResult, err error) {
	started := time.Now()

	ctx, span := startAnalysisSpan(ctx, changed.Len())
	defer func() {
		setAnalysisSpanResult(span, len(result), err)
		span.End()
		recordAnalysisMetrics(ctx, time.Since(started), len(result), err == nil)
	}()

	if changed.Empty() {
		slog.Debug("empty change set, nothing to analyze")
		return m.ImpactResult{}, nil
	}

	if err := validateChangeSet(g, changed); err != nil {
		slog.Error("Change set does not match graph", "error", err)
		return nil, err
	}

	sweeps := []struct {
		kind SweepKind
		run  sweepFunc
	}{
		{SweepDirect, func(context.Context) (m.ImpactResult, error) { return directSweep(g, changed), nil }},
		{SweepUsage, func(ctx context.Context) (m.ImpactResult, error) { return usageSweep(ctx, g, changed) }},
		{SweepSubtype, func(ctx context.Context) (m.ImpactResult, error) { return hierarchySweep(ctx, g, changed, SweepSubtype) }},
		{SweepSupertype, func(ctx context.Context) (m.ImpactResult, error) { return hierarchySweep(ctx, g, changed, SweepSupertype) }},
	}

	partials := make([]m.ImpactResult, len(sweeps))

	runSweep := func(ctx context.Context, i int) error {
		kind := sweeps[i].kind

		ctx, span := startSweepSpan(ctx, kind)
		defer span.End()

		if err := ctx.Err(); err != nil {
			return fmt.Errorf("%s sweep: %w", kind, err)
		}

		partial, err := sweeps[i].run(ctx)
		if err != nil {
			span.RecordError(err)
			slog.Error("Impact sweep failed", "sweep", kind, "error", err)

			return fmt.Errorf("%s sweep: %w", kind, err)
		}

		slog.Debug("impact sweep finished", "sweep", kind, "tests", len(partial))
		partials[i] = partial

		return nil
	}

	if e.parallel {
		group, groupCtx := errgroup.WithContext(ctx)
		for i := range sweeps {
			group.Go(func() error {
				return runSweep(groupCtx, i)
			})
		}

		if err := group.Wait(); err != nil {
			return nil, err
		}
	} else {
		for i := range sweeps {
			if err := runSweep(ctx, i); err != nil {
				return nil, err
			}
		}
	}

	return mergeResults(partials...), nil
}

// validateChangeSet rejects change sets naming types absent from g.
func validateChangeSet(g Graph, changed m.ChangeSet) error {
	var unknown []m.TypeID

	for _, id := range changed.IDs() {
		if _, ok := g.Node(id); !ok {
			unknown = append(unknown, id)
		}
	}

	if len(unknown) > 0 {
		return &m.InvalidInputError{IDs: unknown}
	}

	return nil
}

// mergeResults reduces partial results, keeping the strongest relationship
// per test. The outcome does not depend on the order of partials.
func mergeResults(partials ...m.ImpactResult) m.ImpactResult {
	merged := make(m.ImpactResult)

	for _, partial := range partials {
		for id, rel := range partial {
			merged.Record(id, rel)
		}
	}

	return merged
}

// EmptyResultWarning signals a fully computed analysis that impacts no test.
// It is not an error.
type EmptyResultWarning struct {
	Reason string
}

func (w EmptyResultWarning) String() string {
	return "no impacted tests: " + w.Reason
}

// CheckEmpty returns a warning when result holds no test, nil otherwise.
func CheckEmpty(changed m.ChangeSet, result m.ImpactResult) *EmptyResultWarning {
	if len(result) > 0 {
		return nil
	}

	if changed.Empty() {
		return &EmptyResultWarning{Reason: "change set is empty"}
	}

	return &EmptyResultWarning{Reason: fmt.Sprintf("no test type is reachable from %d changed type(s)", changed.Len())}
}
