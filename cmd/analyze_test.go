package cmd

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"tia.dev/pkg/tia/internal/domain"
	domainmocks "tia.dev/pkg/tia/internal/domain/mocks"
	m "tia.dev/pkg/tia/internal/model"
)

func newTestRootCmd(t *testing.T, sub *cobra.Command) *cobra.Command {
	t.Helper()

	cmd := newRootCmd()
	cmd.AddCommand(sub)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	return cmd
}

func useMockWorkflow(t *testing.T) *domainmocks.MockWorkflow {
	t.Helper()

	mockWorkflow := domainmocks.NewMockWorkflow(t)
	originalWorkflow := workflow
	workflow = mockWorkflow

	t.Cleanup(func() {
		workflow = originalWorkflow
		changedFlag = nil
		diffFlag = ""
		dryRunFlag = false
	})

	return mockWorkflow
}

func TestAnalyzeCmd_ExplicitIDs(t *testing.T) {
	mockWorkflow := useMockWorkflow(t)
	logFile := t.TempDir() + "/tia.log"

	mockWorkflow.On("Analyze", mock.Anything, mock.MatchedBy(func(args domain.AnalyzeArgs) bool {
		return args.Graph == m.Path("graph.yaml") &&
			assert.ObjectsAreEqual([]m.TypeID{"com.acme.Type", "com.acme.Other"}, args.Changes.IDs) &&
			args.Changes.DiffFile == "" &&
			args.Report.Directory == m.Path("reports") &&
			args.Report.DefaultFile == defaultReportFile &&
			len(args.Include) == 0 &&
			!args.DryRun
	})).Return(nil)

	cmd := newTestRootCmd(t, newAnalyzeCmd())
	cmd.SetArgs([]string{"analyze", "--log-file", logFile, "-g", "graph.yaml", "-o", "reports", "-c", "com.acme.Type", "com.acme.Other"})

	require.NoError(t, cmd.Execute())
}

func TestAnalyzeCmd_DiffAndFilters(t *testing.T) {
	mockWorkflow := useMockWorkflow(t)
	logFile := t.TempDir() + "/tia.log"

	mockWorkflow.On("Analyze", mock.Anything, mock.MatchedBy(func(args domain.AnalyzeArgs) bool {
		return args.Changes.DiffFile == m.Path("-") &&
			args.Report.File == "impacted" &&
			assert.ObjectsAreEqual([]m.Relationship{m.Direct, m.Subtype}, args.Include) &&
			args.DryRun &&
			args.Timeout == 30*time.Second
	})).Return(nil)

	cmd := newTestRootCmd(t, newAnalyzeCmd())
	cmd.SetArgs([]string{
		"analyze", "--log-file", logFile,
		"--diff", "-",
		"--report-file", "impacted",
		"--include", "DIRECT,subtype",
		"--dry-run",
		"--timeout", "30s",
	})

	require.NoError(t, cmd.Execute())
}

func TestAnalyzeCmd_GitRange(t *testing.T) {
	mockWorkflow := useMockWorkflow(t)
	logFile := t.TempDir() + "/tia.log"

	mockWorkflow.On("Analyze", mock.Anything, mock.MatchedBy(func(args domain.AnalyzeArgs) bool {
		return args.Changes.Base == "main" &&
			args.Changes.Head == "feature" &&
			args.Changes.Repo == m.Path("/src/app")
	})).Return(nil)

	cmd := newTestRootCmd(t, newAnalyzeCmd())
	cmd.SetArgs([]string{"analyze", "--log-file", logFile, "--base", "main", "--head", "feature", "--repo", "/src/app"})

	require.NoError(t, cmd.Execute())
}

func TestAnalyzeCmd_InvalidInclude(t *testing.T) {
	useMockWorkflow(t)
	logFile := t.TempDir() + "/tia.log"

	cmd := newTestRootCmd(t, newAnalyzeCmd())
	cmd.SetArgs([]string{"analyze", "--log-file", logFile, "--include", "SIDEWAYS"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), includeFlagName)
}

func TestAnalyzeCmd_WorkflowError(t *testing.T) {
	mockWorkflow := useMockWorkflow(t)
	logFile := t.TempDir() + "/tia.log"
	invalid := &m.InvalidInputError{IDs: []m.TypeID{"com.acme.Missing"}}

	mockWorkflow.On("Analyze", mock.Anything, mock.Anything).Return(invalid)

	cmd := newTestRootCmd(t, newAnalyzeCmd())
	cmd.SetArgs([]string{"analyze", "--log-file", logFile, "-c", "com.acme.Missing"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.True(t, errors.Is(err, m.ErrInvalidInput))
}

func TestValidateCmd(t *testing.T) {
	mockWorkflow := useMockWorkflow(t)
	logFile := t.TempDir() + "/tia.log"

	mockWorkflow.On("Validate", mock.Anything, domain.ValidateArgs{Graph: m.Path("snapshot.yaml")}).Return(nil)

	cmd := newTestRootCmd(t, newValidateCmd())
	cmd.SetArgs([]string{"validate", "--log-file", logFile, "--graph", "snapshot.yaml"})

	require.NoError(t, cmd.Execute())
}

func TestValidateCmd_DefaultGraph(t *testing.T) {
	mockWorkflow := useMockWorkflow(t)
	logFile := t.TempDir() + "/tia.log"

	mockWorkflow.On("Validate", mock.Anything, domain.ValidateArgs{Graph: m.Path(defaultGraphPath)}).Return(nil)

	cmd := newTestRootCmd(t, newValidateCmd())
	cmd.SetArgs([]string{"validate", "--log-file", logFile})

	require.NoError(t, cmd.Execute())
}
