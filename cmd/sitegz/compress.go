package main

import (
	"github.com/spf13/cobra"
	"github.com/wal-g/tracelog"

	"github.com/sitegz/sitegz/internal"
)

const compressShortDescription = "Compress eligible files under a built site directory"

// compressCmd represents the compress command
var compressCmd = &cobra.Command{
	Use:   "compress directory_path",
	Short: compressShortDescription,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		err := internal.HandleCompressDirectory(args[0])
		tracelog.ErrorLogger.FatalOnError(err)
	},
}

func init() {
	rootCmd.AddCommand(compressCmd)
}
