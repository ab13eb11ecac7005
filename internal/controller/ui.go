// Package controller provides output adapters for displaying impact analysis results.
package controller

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"
	m "tia.dev/pkg/tia/internal/model"
)

// StartMode defines the mode of operation for the UI.
type StartMode int

// Available StartMode values.
const (
	ModeAnalyze StartMode = iota
	ModeValidate
)

func (mode StartMode) String() string {
	if mode == ModeValidate {
		return "validate"
	}

	return "analyze"
}

// title is the heading printed when a run starts in mode.
func (mode StartMode) title() string {
	if mode == ModeValidate {
		return "Graph validation"
	}

	return "Impact analysis"
}

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	mode StartMode
}

// WithAnalyzeMode sets the UI to impact analysis mode.
func WithAnalyzeMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeAnalyze
	}
}

// WithValidateMode sets the UI to graph validation mode.
func WithValidateMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeValidate
	}
}

// UI defines how analysis progress and results are shown.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	Start(ctx context.Context, options ...StartOption) error
	Close(ctx context.Context)
	Wait(ctx context.Context)
	DisplayGraphSummary(ctx context.Context, path m.Path, summary m.GraphSummary) error
	DisplayChangeSet(ctx context.Context, changed m.ChangeSet)
	DisplayImpact(ctx context.Context, tests []m.ImpactedTest) error
	DisplayWarning(ctx context.Context, message string)
	DisplayReportFiles(ctx context.Context, files []m.Path)
}

// NewUI returns the interactive TUI on terminals and the SimpleUI otherwise.
func NewUI(cmd *cobra.Command, isTTY bool) UI {
	if isTTY {
		return NewTUI(cmd)
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether w is a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return term.IsTerminal(int(f.Fd()))
}
