package main

import (
	"github.com/spf13/cobra"

	boshapp "github.com/archsan/archsan/app"
)

var provisionOpts boshapp.Options

var provisionCmd = &cobra.Command{
	Use:     "provision CONFIG",
	Args:    cobra.ExactArgs(1),
	Short:   "Partition, format and mount every block device in CONFIG.",
	Example: "archsan provision /etc/archsan/disks.yml --resume",
	RunE:    provisionRunE,
}

func init() {
	provisionCmd.Flags().BoolVar(&provisionOpts.Resume, "resume", false, "Skip stages completed by a previous run")
	provisionCmd.Flags().StringVar(&provisionOpts.StateFile, "state-file", boshapp.DefaultStateFile, "Install state file")
}

func provisionRunE(_ *cobra.Command, args []string) error {
	opts := provisionOpts
	opts.ConfigPath = args[0]

	app, logger, err := newApp(opts)
	if err != nil {
		return err
	}
	defer logger.HandlePanic("Main")

	logger.Debug(mainLogTag, "Starting provisioning from %s", opts.ConfigPath)

	err = app.Run()
	if err != nil {
		logger.Error(mainLogTag, "App run %s", err.Error())
		return err
	}

	return nil
}
