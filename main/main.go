package main

import (
	"os"

	"github.com/spf13/cobra"
)

const mainLogTag = "main"

var archsan = &cobra.Command{
	Use:          "archsan",
	Args:         cobra.ExactArgs(0),
	Short:        "archsan provisions block devices for an Arch Linux install.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return cmd.Help()
	},
}

func init() {
	addGlobalFlags(archsan.PersistentFlags())
	archsan.AddCommand(provisionCmd, planCmd, backupCmd, restoreCmd)
}

func main() {
	if err := archsan.Execute(); err != nil {
		os.Exit(1)
	}
}
