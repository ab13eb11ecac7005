package domain

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"tia.dev/pkg/tia/internal/adapter"
	"tia.dev/pkg/tia/internal/controller"
	m "tia.dev/pkg/tia/internal/model"
)

// AnalyzeArgs contains the arguments for an impact analysis run.
type AnalyzeArgs struct {
	Graph   m.Path
	Changes ResolveArgs
	Report  EmitArgs
	// Include limits reported tests to these relationships. Empty keeps all.
	Include []m.Relationship
	// DryRun computes and displays the impact without writing report files.
	DryRun  bool
	Timeout time.Duration
}

// ValidateArgs contains the arguments for validating a graph snapshot.
type ValidateArgs struct {
	Graph m.Path
}

// Workflow defines the commands of the tia CLI.
type Workflow interface {
	Analyze(ctx context.Context, args AnalyzeArgs) error
	Validate(ctx context.Context, args ValidateArgs) error
}

type workflow struct {
	adapter.GraphStore
	controller.UI
	ChangeSetResolver
	Engine
	Emitter
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(
	graphStore adapter.GraphStore,
	ui controller.UI,
	resolver ChangeSetResolver,
	engine Engine,
	emitter Emitter,
) Workflow {
	return &workflow{
		GraphStore:        graphStore,
		UI:                ui,
		ChangeSetResolver: resolver,
		Engine:            engine,
		Emitter:           emitter,
	}
}

// Analyze loads the graph, resolves the change set, computes impacted tests
// and writes them to the report directory.
func (w *workflow) Analyze(ctx context.Context, args AnalyzeArgs) error {
	if args.Timeout > 0 {
		var cancel context.CancelFunc

		ctx, cancel = context.WithTimeout(ctx, args.Timeout)
		defer cancel()
	}

	if err := w.Start(ctx, controller.WithAnalyzeMode()); err != nil {
		slog.Error("Failed to start workflow UI", "error", err)
		return err
	}

	defer w.Close(ctx)

	snapshot, err := w.Load(ctx, args.Graph)
	if err != nil {
		slog.Error("Failed to load graph", "path", args.Graph, "error", err)
		return fmt.Errorf("load graph %s: %w", args.Graph, err)
	}

	changed, err := w.Resolve(ctx, snapshot, args.Changes)
	if err != nil {
		return fmt.Errorf("resolve changes: %w", err)
	}

	w.DisplayChangeSet(ctx, changed)

	result, err := w.Engine.Analyze(ctx, snapshot, changed)
	if err != nil {
		return fmt.Errorf("analyze impact: %w", err)
	}

	result = result.Filter(args.Include...)

	if warning := CheckEmpty(changed, result); warning != nil {
		slog.Warn("Impact analysis found no tests", "reason", warning.Reason)
		w.DisplayWarning(ctx, warning.String())
	}

	tests := impactedTests(snapshot, result)

	var files []m.Path

	if args.DryRun {
		slog.Info("Dry run, skipping report files", "tests", len(tests))
	} else {
		files, err = w.Emit(ctx, tests, args.Report)
		if err != nil {
			return fmt.Errorf("emit tests: %w", err)
		}
	}

	if err := w.DisplayImpact(ctx, tests); err != nil {
		slog.Error("Failed to display impact", "error", err)
		return fmt.Errorf("display: %w", err)
	}

	w.DisplayReportFiles(ctx, files)

	w.Wait(ctx)

	return nil
}

// Validate loads the graph and reports its size. Loading fails on dangling
// or duplicate entries.
func (w *workflow) Validate(ctx context.Context, args ValidateArgs) error {
	if err := w.Start(ctx, controller.WithValidateMode()); err != nil {
		slog.Error("Failed to start workflow UI", "error", err)
		return err
	}

	defer w.Close(ctx)

	snapshot, err := w.Load(ctx, args.Graph)
	if err != nil {
		slog.Error("Failed to load graph", "path", args.Graph, "error", err)
		return fmt.Errorf("load graph %s: %w", args.Graph, err)
	}

	if err := w.DisplayGraphSummary(ctx, args.Graph, snapshot.Summary()); err != nil {
		return fmt.Errorf("display: %w", err)
	}

	return nil
}

// impactedTests joins result with node metadata, strongest relationship first.
func impactedTests(g Graph, result m.ImpactResult) []m.ImpactedTest {
	tests := make([]m.ImpactedTest, 0, len(result))
	grouped := result.ByRelationship()

	for _, rel := range m.Relationships() {
		for _, id := range grouped[rel] {
			node, ok := g.Node(id)
			if !ok {
				continue
			}

			tests = append(tests, m.ImpactedTest{Node: node, Relationship: rel})
		}
	}

	return tests
}
