package cli

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

var versionJSON bool

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the astrolabe version",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if versionJSON {
			return outputJSON(cmd, map[string]string{
				"version":  version,
				"go":       runtime.Version(),
				"platform": runtime.GOOS + "/" + runtime.GOARCH,
			})
		}
		fmt.Fprintf(cmd.OutOrStdout(), "astrolabe version %s\n", version)
		return nil
	},
}

func init() {
	versionCmd.Flags().BoolVar(&versionJSON, "json", false, "include build details as JSON")
	rootCmd.AddCommand(versionCmd)
}
