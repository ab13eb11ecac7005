package controller

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	m "tia.dev/pkg/tia/internal/model"
)

var (
	headingStyle = lipgloss.NewStyle().Bold(true)
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
)

// SimpleUI implements UI using cobra Command's output.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start prints the heading of the selected mode.
func (s *SimpleUI) Start(ctx context.Context, options ...StartOption) error {
	var config StartConfig
	for _, option := range options {
		option(&config)
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	slog.Debug("Starting UI", "mode", config.mode)
	s.printf("%s\n", headingStyle.Render(config.mode.title()))

	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close(_ context.Context) {}

// Wait blocks until the UI is closed (no-op for SimpleUI).
func (s *SimpleUI) Wait(_ context.Context) {}

// DisplayGraphSummary prints node and edge counts of a snapshot.
func (s *SimpleUI) DisplayGraphSummary(ctx context.Context, path m.Path, summary m.GraphSummary) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("%s\n", headingStyle.Render(fmt.Sprintf("Graph %s", path)))
	s.printf("%s", renderSummaryTable(summary))

	return nil
}

// DisplayChangeSet lists the changed types.
func (s *SimpleUI) DisplayChangeSet(ctx context.Context, changed m.ChangeSet) {
	if ctx.Err() != nil {
		return
	}

	s.printf("Changed types: %d\n", changed.Len())

	for _, id := range changed.IDs() {
		s.printf("  - %s\n", id)
	}
}

// DisplayImpact prints the impacted tests, direct relationships first.
func (s *SimpleUI) DisplayImpact(ctx context.Context, tests []m.ImpactedTest) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("\n%s", renderImpact(tests))

	return nil
}

// DisplayWarning prints a non fatal condition.
func (s *SimpleUI) DisplayWarning(ctx context.Context, message string) {
	if ctx.Err() != nil {
		return
	}

	s.printf("%s\n", warningStyle.Render("warning: "+message))
}

// DisplayReportFiles lists the report files written.
func (s *SimpleUI) DisplayReportFiles(ctx context.Context, files []m.Path) {
	if ctx.Err() != nil {
		return
	}

	for _, file := range files {
		s.printf("Wrote %s\n", file)
	}
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

// renderImpact renders a "Direct impact" and a "Transitive impact" section.
func renderImpact(tests []m.ImpactedTest) string {
	if len(tests) == 0 {
		return "No impacted tests\n"
	}

	var direct, transitive []m.ImpactedTest

	for _, test := range tests {
		if test.Relationship.Transitive() {
			transitive = append(transitive, test)
		} else {
			direct = append(direct, test)
		}
	}

	var b strings.Builder

	for _, section := range []struct {
		title string
		tests []m.ImpactedTest
	}{
		{"Direct impact", direct},
		{"Transitive impact", transitive},
	} {
		if len(section.tests) == 0 {
			continue
		}

		fmt.Fprintf(&b, "%s\n", headingStyle.Render(fmt.Sprintf("%s (%d)", section.title, len(section.tests))))
		b.WriteString(renderImpactTable(section.tests))
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "Impacted tests: %d\n", len(tests))

	return b.String()
}

func renderImpactTable(tests []m.ImpactedTest) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Test", "Relationship", "Source"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})

	for _, test := range tests {
		table.Append([]string{test.Node.FQN, test.Relationship.String(), test.Node.SourcePath()})
	}

	table.Render()

	return tableBuffer.String()
}

func renderSummaryTable(summary m.GraphSummary) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Types", "Tests", "Uses", "Extends"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_CENTER, tablewriter.ALIGN_CENTER, tablewriter.ALIGN_CENTER, tablewriter.ALIGN_CENTER})
	table.Append([]string{
		fmt.Sprintf("%d", summary.Types),
		fmt.Sprintf("%d", summary.Tests),
		fmt.Sprintf("%d", summary.Uses),
		fmt.Sprintf("%d", summary.Extends),
	})
	table.Render()

	return tableBuffer.String()
}
