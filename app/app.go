package app

import (
	"code.cloudfoundry.org/clock"
	bosherr "github.com/cloudfoundry/bosh-utils/errors"
	boshlog "github.com/cloudfoundry/bosh-utils/logger"
	boshsys "github.com/cloudfoundry/bosh-utils/system"
	boshuuid "github.com/cloudfoundry/bosh-utils/uuid"

	"github.com/archsan/archsan/platform/disk"
	"github.com/archsan/archsan/settings"
)

type App interface {
	Setup(opts Options) error
	Run() error
	Plan() ([]disk.Plan, error)
	Backup(devicePath string) error
	Restore(devicePath string) error
}

type app struct {
	logger    boshlog.Logger
	fs        boshsys.FileSystem
	runner    boshsys.CmdRunner
	opts      Options
	installer Installer
	logTag    string
}

func New(logger boshlog.Logger, fs boshsys.FileSystem, runner boshsys.CmdRunner) App {
	return &app{
		logger: logger,
		fs:     fs,
		runner: runner,
		logTag: "App",
	}
}

func (app *app) Setup(opts Options) error {
	err := opts.Validate()
	if err != nil {
		return bosherr.WrapError(err, "Validating options")
	}

	if opts.StateFile == "" {
		opts.StateFile = DefaultStateFile
	}
	app.opts = opts

	diskManager := disk.NewLinuxDiskManager(app.logger, app.runner, app.fs, disk.LinuxDiskManagerOpts{
		BackupDir: opts.BackupDir,
		Prompter:  opts.Prompter(),
	})

	settingsService := settings.NewService(app.fs, opts.ConfigPath, app.logger)
	if opts.ConfigPath != "" {
		err = settingsService.LoadSettings()
		if err != nil {
			return bosherr.WrapError(err, "Loading settings")
		}
	}

	app.installer = NewInstaller(
		settingsService,
		diskManager,
		app.fs,
		opts.StateFile,
		boshuuid.NewGenerator(),
		clock.NewClock(),
		app.logger,
	)

	return nil
}

func (app *app) Run() error {
	state, err := app.installer.Install(app.opts.Resume)
	if err != nil {
		return bosherr.WrapError(err, "Running install")
	}

	app.logger.Info(app.logTag, "Install run %s completed (%s boot)", state.RunID, state.BootMode)
	return nil
}

func (app *app) Plan() ([]disk.Plan, error) {
	return app.installer.Plan()
}

func (app *app) Backup(devicePath string) error {
	return app.installer.Backup(devicePath)
}

func (app *app) Restore(devicePath string) error {
	return app.installer.Restore(devicePath)
}
