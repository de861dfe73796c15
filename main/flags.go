package main

import (
	"io"
	"os"
	"path/filepath"

	bosherr "github.com/cloudfoundry/bosh-utils/errors"
	boshlog "github.com/cloudfoundry/bosh-utils/logger"
	boshsys "github.com/cloudfoundry/bosh-utils/system"
	"github.com/spf13/pflag"

	boshapp "github.com/archsan/archsan/app"
	"github.com/archsan/archsan/platform/disk"
)

const defaultLogFile = "/tmp/archsan/arch-install.log"

type globalOptions struct {
	LogLevel  string
	LogFile   string
	BackupDir string
	AssumeYes bool
	AssumeNo  bool
}

var global globalOptions

func addGlobalFlags(flags *pflag.FlagSet) {
	flags.StringVar(&global.LogLevel, "log-level", "INFO", "Log level (DEBUG, INFO, WARN, ERROR, NONE)")
	flags.StringVar(&global.LogFile, "log-file", defaultLogFile, "Also write logs to this file; empty disables it")
	flags.StringVar(&global.BackupDir, "backup-dir", disk.DefaultBackupDir, "Directory holding partition table backups")
	flags.BoolVarP(&global.AssumeYes, "assume-yes", "y", false, "Answer yes to every question")
	flags.BoolVar(&global.AssumeNo, "assume-no", false, "Answer no to every question")
}

// newLogger logs to stderr and, when configured, to the log file.
func newLogger() (boshlog.Logger, error) {
	level, err := boshlog.Levelify(global.LogLevel)
	if err != nil {
		return nil, bosherr.WrapErrorf(err, "Parsing log level '%s'", global.LogLevel)
	}

	if global.LogFile == "" {
		return boshlog.NewWriterLogger(level, os.Stderr), nil
	}

	err = os.MkdirAll(filepath.Dir(global.LogFile), 0755)
	if err != nil {
		return nil, bosherr.WrapErrorf(err, "Creating log directory for '%s'", global.LogFile)
	}

	logFile, err := os.OpenFile(global.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, bosherr.WrapErrorf(err, "Opening log file '%s'", global.LogFile)
	}

	return boshlog.NewWriterLogger(level, io.MultiWriter(os.Stderr, logFile)), nil
}

// newApp builds and sets up the app; configPath may be empty for commands
// that work on a single device.
func newApp(opts boshapp.Options) (boshapp.App, boshlog.Logger, error) {
	logger, err := newLogger()
	if err != nil {
		return nil, nil, err
	}

	opts.BackupDir = global.BackupDir
	opts.AssumeYes = opts.AssumeYes || global.AssumeYes
	opts.AssumeNo = opts.AssumeNo || global.AssumeNo

	fs := boshsys.NewOsFileSystem(logger)
	runner := boshsys.NewExecCmdRunner(logger)

	app := boshapp.New(logger, fs, runner)
	err = app.Setup(opts)
	if err != nil {
		logger.Error(mainLogTag, "App setup %s", err.Error())
		return nil, nil, err
	}

	return app, logger, nil
}
