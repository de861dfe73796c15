package main

import (
	"github.com/spf13/cobra"

	boshapp "github.com/archsan/archsan/app"
)

var backupCmd = &cobra.Command{
	Use:     "backup DEVICE",
	Args:    cobra.ExactArgs(1),
	Short:   "Back up the partition table of DEVICE.",
	Example: "archsan backup /dev/sda",
	RunE: func(_ *cobra.Command, args []string) error {
		return withDeviceApp(args[0], "Backing up", boshapp.App.Backup)
	},
}

var restoreCmd = &cobra.Command{
	Use:     "restore DEVICE",
	Args:    cobra.ExactArgs(1),
	Short:   "Restore the partition table of DEVICE from its last backup.",
	Example: "archsan restore /dev/sda",
	RunE: func(_ *cobra.Command, args []string) error {
		return withDeviceApp(args[0], "Restoring", boshapp.App.Restore)
	},
}

func withDeviceApp(devicePath, verb string, run func(boshapp.App, string) error) error {
	app, logger, err := newApp(boshapp.Options{})
	if err != nil {
		return err
	}
	defer logger.HandlePanic("Main")

	err = run(app, devicePath)
	if err != nil {
		logger.Error(mainLogTag, "%s %s: %s", verb, devicePath, err.Error())
		return err
	}

	logger.Info(mainLogTag, "%s %s done", verb, devicePath)
	return nil
}
