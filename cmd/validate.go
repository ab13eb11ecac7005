package cmd

import (
	"github.com/spf13/cobra"

	"tia.dev/pkg/tia/internal/domain"
)

// validateCmd represents the validate command.
var validateCmd = newValidateCmd()

func newValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check a dependency graph snapshot",
		Long: `Load the dependency graph snapshot and report its size. Fails when an
edge references an unknown type or a type is declared twice.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return workflow.Validate(cmd.Context(), domain.ValidateArgs{
				Graph: graphPath(cmd),
			})
		},
	}

	configureGraphFlag(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
