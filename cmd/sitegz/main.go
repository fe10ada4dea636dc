package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/wal-g/tracelog"

	"github.com/sitegz/sitegz/internal"
)

const rootShortDescription = "sitegz produces precompressed siblings of static-site build output"

var version = "devel"
var gitRevision = "devel"
var buildDate = "devel"

var configFile string

var rootCmd = &cobra.Command{
	Use:     "sitegz",
	Short:   rootShortDescription,
	Version: fmt.Sprintf("%s\t%s\t%s", version, gitRevision, buildDate),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		err := internal.ReadConfigFromFile(configFile)
		tracelog.ErrorLogger.FatalOnError(err)
		err = internal.ConfigureLogging()
		tracelog.ErrorLogger.FatalOnError(err)
	},
}

func init() {
	internal.InitDefaults()
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "path to the site configuration file")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
