// Package cmd provides the root command and CLI setup for tia.
package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"tia.dev/pkg/tia/internal/adapter"
	"tia.dev/pkg/tia/internal/controller"
	"tia.dev/pkg/tia/internal/domain"
	m "tia.dev/pkg/tia/internal/model"
)

var graphStore adapter.GraphStore
var changeSource adapter.ChangeSource
var reportStore adapter.ReportStore
var resolver domain.ChangeSetResolver
var emitter domain.Emitter
var workflow domain.Workflow
var ui controller.UI

// reportsOutputDirFlag is a root-level flag shared by commands that write reports.
var reportsOutputDirFlag string

var logFileFlag string
var verboseFlag bool

var telemetryShutdown shutdownFunc

func init() {
	// Initialize shared dependencies.
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	graphStore = adapter.NewLocalGraphStore()
	changeSource = adapter.NewLocalChangeSource()
	reportStore = adapter.NewReportStore()
	resolver = domain.NewChangeSetResolver(changeSource)
	emitter = domain.NewEmitter(reportStore)
	workflow = newWorkflow(viper.GetBool(impactParallelKey))
}

// newWorkflow wires the shared adapters into a workflow with its own engine.
func newWorkflow(parallel bool) domain.Workflow {
	return domain.NewWorkflow(
		graphStore,
		ui,
		resolver,
		domain.NewEngine(domain.WithParallelSweeps(parallel)),
		emitter,
	)
}

const rootLongDescription = `tia selects the tests affected by a code change.

It reads a dependency graph snapshot of the code base (types, "uses" and
"extends" edges, test markers), resolves the changed types from explicit
identifiers or a diff, and writes the impacted test source files to
surefire-style suite files, one per build artifact.`

const analyzeLongDescription = `Compute the tests impacted by the changed types.

Changed types come from --changed identifiers, a unified diff (--diff, "-"
for stdin) or a git revision range (--base/--head). Tests are classified as
DIRECT, SUBTYPE, SUPERTYPE or their TRANSITIVE_ variants and written to the
report directory unless --dry-run is set.`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func baseRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:           "tia",
		Short:         "Test impact analysis",
		Long:          rootLongDescription,
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

func newRootCmd() *cobra.Command {
	cmd := baseRootCmd()
	cmd.PersistentPreRunE = func(_ *cobra.Command, _ []string) error {
		configureLogger(logFileFlag, verboseFlag)

		if configErr != nil {
			slog.Error("Failed to read configuration", "error", configErr)
			return configErr
		}

		shutdown, err := configureTelemetry(viper.GetString(traceFileKey), viper.GetString(metricsFileKey))
		if err != nil {
			return fmt.Errorf("configure telemetry: %w", err)
		}

		telemetryShutdown = shutdown

		return nil
	}
	cmd.PersistentPostRunE = func(_ *cobra.Command, _ []string) error {
		return shutdownTelemetry(context.Background())
	}

	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().
		StringVarP(
			&reportsOutputDirFlag, outputFlagName, "o",
			defaultReportsDir,
			"output directory for impacted test reports",
		)
	bindFlagToConfig(cmd.PersistentFlags().Lookup(outputFlagName), reportDirectoryKey)

	cmd.PersistentFlags().StringVar(&logFileFlag, logFileFlagName, "", "log file path (default "+defaultLogFilename+")")
	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", defaultLogVerbose, "log at debug level")
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

func shutdownTelemetry(ctx context.Context) error {
	if telemetryShutdown == nil {
		return nil
	}

	err := telemetryShutdown(ctx)
	telemetryShutdown = nil

	if err != nil {
		slog.Error("Failed to flush telemetry", "error", err)
		return fmt.Errorf("shutdown telemetry: %w", err)
	}

	return nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		_ = shutdownTelemetry(context.Background())
		os.Exit(1)
	}
}

func parseTypeIDs(args []string) []m.TypeID {
	ids := make([]m.TypeID, 0, len(args))
	for _, arg := range args {
		ids = append(ids, m.TypeID(arg))
	}

	return ids
}

func parseRelationships(values []string) ([]m.Relationship, error) {
	rels := make([]m.Relationship, 0, len(values))
	for _, value := range values {
		rel, err := m.ParseRelationship(value)
		if err != nil {
			return nil, err
		}

		rels = append(rels, rel)
	}

	return rels, nil
}
