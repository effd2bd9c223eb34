package cmd

import (
	"fmt"
	"runtime"
	"runtime/debug"

	"github.com/spf13/cobra"
)

// version is stamped by the release build with -ldflags "-X".
var version = "(devel)"

// currentVersion falls back to the module version recorded by
// `go install module@version` when the binary was not stamped.
func currentVersion() string {
	if version != "(devel)" {
		return version
	}
	if bi, ok := debug.ReadBuildInfo(); ok && bi.Main.Version != "" {
		return bi.Main.Version
	}
	return version
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "skillmatch %s (%s/%s)\n", currentVersion(), runtime.GOOS, runtime.GOARCH)
	},
}
