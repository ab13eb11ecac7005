package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"tia.dev/pkg/tia/internal/domain"
	m "tia.dev/pkg/tia/internal/model"
)

var changedFlag []string
var diffFlag string
var dryRunFlag bool

// analyzeCmd represents the analyze command.
var analyzeCmd = newAnalyzeCmd()

func newAnalyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze [type-ids...]",
		Short: "Select the tests impacted by changed types",
		Long:  analyzeLongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			include, err := parseRelationships(viper.GetStringSlice(reportIncludeKey))
			if err != nil {
				return fmt.Errorf("--%s: %w", includeFlagName, err)
			}

			ids := parseTypeIDs(append(append([]string{}, changedFlag...), args...))

			return workflow.Analyze(cmd.Context(), domain.AnalyzeArgs{
				Graph: graphPath(cmd),
				Changes: domain.ResolveArgs{
					IDs:      ids,
					DiffFile: m.Path(diffFlag),
					Repo:     m.Path(viper.GetString(changesRepoKey)),
					Base:     viper.GetString(changesBaseKey),
					Head:     viper.GetString(changesHeadKey),
				},
				Report: domain.EmitArgs{
					Directory:   m.Path(viper.GetString(reportDirectoryKey)),
					File:        viper.GetString(reportFileKey),
					DefaultFile: viper.GetString(reportDefaultFileKey),
				},
				Include: include,
				DryRun:  dryRunFlag,
				Timeout: viper.GetDuration(impactTimeoutKey),
			})
		},
	}

	configureAnalyzeFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
}

func configureAnalyzeFlags(cmd *cobra.Command) {
	configureGraphFlag(cmd)

	cmd.Flags().StringArrayVarP(&changedFlag, changedFlagName, "c", nil, "changed type identifier (can be repeated)")
	cmd.Flags().StringVar(&diffFlag, diffFlagName, "", "unified diff listing changed files (\"-\" for stdin)")
	cmd.Flags().BoolVar(&dryRunFlag, dryRunFlagName, false, "display impacted tests without writing reports")

	cmd.Flags().String(baseFlagName, "", "git base revision (default: parent of --head)")
	bindFlagToConfig(cmd.Flags().Lookup(baseFlagName), changesBaseKey)
	cmd.Flags().String(headFlagName, "", "git head revision (default: HEAD when --base is set)")
	bindFlagToConfig(cmd.Flags().Lookup(headFlagName), changesHeadKey)
	cmd.Flags().String(repoFlagName, defaultRepoDir, "git repository directory")
	bindFlagToConfig(cmd.Flags().Lookup(repoFlagName), changesRepoKey)

	cmd.Flags().String(reportFileFlagName, "", "write all tests to this single report file")
	bindFlagToConfig(cmd.Flags().Lookup(reportFileFlagName), reportFileKey)
	cmd.Flags().String(defaultFileFlagName, defaultReportFile, "report file for tests without artifact")
	bindFlagToConfig(cmd.Flags().Lookup(defaultFileFlagName), reportDefaultFileKey)
	cmd.Flags().StringSlice(includeFlagName, nil, "only report these relationships (e.g. DIRECT,SUBTYPE)")
	bindFlagToConfig(cmd.Flags().Lookup(includeFlagName), reportIncludeKey)

	cmd.Flags().Duration(timeoutFlagName, defaultImpactTimeout, "abort the analysis after this duration (0 disables)")
	bindFlagToConfig(cmd.Flags().Lookup(timeoutFlagName), impactTimeoutKey)
}

// configureGraphFlag adds --graph. The flag is read with graphPath.
func configureGraphFlag(cmd *cobra.Command) {
	cmd.Flags().StringP(graphFlagName, "g", defaultGraphPath, "dependency graph snapshot (YAML or JSON)")
}

func graphPath(cmd *cobra.Command) m.Path {
	if flag := cmd.Flags().Lookup(graphFlagName); flag != nil && flag.Changed {
		return m.Path(flag.Value.String())
	}

	return m.Path(viper.GetString(graphPathKey))
}
