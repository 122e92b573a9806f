package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Set with -ldflags "-X github.com/spigell/resume-screener/cmd.version=...".
var version = "unknown"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version and the config file in use",
	Run: func(_ *cobra.Command, _ []string) {
		printVersion(os.Stdout, viper.ConfigFileUsed())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

func printVersion(w io.Writer, configFile string) {
	fmt.Fprintf(w, "%s version: %s\n", app, version)
	if configFile != "" {
		fmt.Fprintf(w, "config: %s\n", configFile)
	}
}
