package cmd

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// initCmd represents the init command.
var initCmd = newInitCmd()

func newInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a tia.yaml holding the current settings",
		Long: `Create tia.yaml in the current working directory with the graph path,
change source, report and impact settings currently in effect, so the
analysis can be tuned without repeating flags. Existing files are kept
unless --force is given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			targetPath := filepath.Join(configFolderPath, configFileName)

			write := viper.SafeWriteConfigAs
			if force {
				write = viper.WriteConfigAs
			}

			if err := write(targetPath); err != nil {
				slog.Error("Failed to write config file", "path", targetPath, "error", err)
				return fmt.Errorf("write %s: %w", targetPath, err)
			}

			slog.Info("Wrote config file", "path", targetPath, "graph", viper.GetString(graphPathKey))
			cmd.Printf("Wrote %s\n", targetPath)

			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, forceFlagName, "f", false, "overwrite an existing "+configFileName)

	return cmd
}

func init() {
	rootCmd.AddCommand(initCmd)
}
