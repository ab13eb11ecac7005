package cmd

import (
	"fmt"
	"io"
	"runtime"
	"runtime/debug"

	"github.com/spf13/cobra"
	"tia.dev/pkg/tia/internal/adapter"
)

const unknownVersion = "unknown"

// buildVersion describes the running binary.
type buildVersion struct {
	Tia string
	Go  string
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the tia version and the graph format it reads",
		Long: `Print the tia build version, the Go toolchain it was built with and the
graph snapshot format version accepted by analyze and validate.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return printVersion(cmd.OutOrStdout(), readBuildVersion())
		},
	}
}

// readBuildVersion falls back to "unknown" when the binary carries no module version.
func readBuildVersion() buildVersion {
	version := buildVersion{Tia: unknownVersion, Go: runtime.Version()}

	info, ok := debug.ReadBuildInfo()
	if !ok {
		return version
	}

	if info.Main.Version != "" {
		version.Tia = info.Main.Version
	}

	if info.GoVersion != "" {
		version.Go = info.GoVersion
	}

	return version
}

func printVersion(w io.Writer, version buildVersion) error {
	_, err := fmt.Fprintf(w, "tia %s\ngo %s\ngraph snapshot format %d\n",
		version.Tia, version.Go, adapter.SnapshotVersion)

	return err
}

// versionCmd represents the version command.
var versionCmd = newVersionCmd()

func init() {
	rootCmd.AddCommand(versionCmd)
}
