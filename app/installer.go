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

// Installer runs the disk stages of an install against the loaded settings.
type Installer struct {
	settingsService settings.Service
	diskManager     disk.Manager
	fs              boshsys.FileSystem
	statePath       string
	uuidGenerator   boshuuid.Generator
	timeService     clock.Clock
	logger          boshlog.Logger
	logTag          string
}

func NewInstaller(
	settingsService settings.Service,
	diskManager disk.Manager,
	fs boshsys.FileSystem,
	statePath string,
	uuidGenerator boshuuid.Generator,
	timeService clock.Clock,
	logger boshlog.Logger,
) Installer {
	return Installer{
		settingsService: settingsService,
		diskManager:     diskManager,
		fs:              fs,
		statePath:       statePath,
		uuidGenerator:   uuidGenerator,
		timeService:     timeService,
		logger:          logger,
		logTag:          "Installer",
	}
}

func (i Installer) Install(resume bool) (State, error) {
	stages := []Stage{
		{Name: StageDetectBootMode, Run: i.detectBootMode},
		{Name: StageProvisionBlockDevices, Run: i.provisionBlockDevices},
	}

	runner := NewStageRunner(stages, i.fs, i.statePath, i.uuidGenerator, i.timeService, i.logger)
	return runner.Run(resume)
}

// Plan computes the partition table plan of every configured device without
// changing any of them.
func (i Installer) Plan() ([]disk.Plan, error) {
	devices, err := i.settingsService.GetSettings().ToBlockDevices()
	if err != nil {
		return nil, bosherr.WrapError(err, "Reading block devices from settings")
	}

	plans := make([]disk.Plan, 0, len(devices))
	for _, device := range devices {
		if device.SkipPartition {
			plans = append(plans, disk.Plan{Device: device.Path})
			continue
		}

		plan, err := i.diskManager.GetProvisioner().Plan(device)
		if err != nil {
			return nil, bosherr.WrapErrorf(err, "Planning '%s'", device.Path)
		}
		plans = append(plans, plan)
	}

	return plans, nil
}

func (i Installer) Backup(devicePath string) error {
	return i.diskManager.GetTableMutator().Backup(devicePath)
}

func (i Installer) Restore(devicePath string) error {
	return i.diskManager.GetTableMutator().Restore(devicePath)
}

func (i Installer) detectBootMode(state *State) error {
	state.BootMode = DetectBootMode(i.fs)
	i.logger.Info(i.logTag, "Detected %s boot mode", state.BootMode)
	return nil
}

// Devices are provisioned one after another; the first failure stops the run.
func (i Installer) provisionBlockDevices(_ *State) error {
	devices, err := i.settingsService.GetSettings().ToBlockDevices()
	if err != nil {
		return bosherr.WrapError(err, "Reading block devices from settings")
	}

	provisioner := i.diskManager.GetProvisioner()
	for _, device := range devices {
		result, err := provisioner.Provision(device)
		if err != nil {
			return bosherr.WrapErrorf(err, "Provisioning '%s'", device.Path)
		}

		if result.Verification.Outcome == disk.ContinuedWithWarning {
			i.logger.Warn(i.logTag, "%s was provisioned with an unresolved table problem: %s", device.Path, result.Verification.Diagnostic)
		}
	}

	return nil
}
