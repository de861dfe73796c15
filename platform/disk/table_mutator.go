package disk

import (
	"path/filepath"
	"strings"
	"time"

	bosherr "github.com/cloudfoundry/bosh-utils/errors"
	boshlog "github.com/cloudfoundry/bosh-utils/logger"
	boshretry "github.com/cloudfoundry/bosh-utils/retrystrategy"
	boshsys "github.com/cloudfoundry/bosh-utils/system"
	"golang.org/x/sys/unix"
)

const (
	DefaultBackupDir = "/tmp/archsan"

	backupFileSuffix     = "_partition_table.backup"
	informKernelAttempts = 3
)

type TableMutatorOpts struct {
	BackupDir  string
	RetryDelay time.Duration
}

// TableMutator is the only component that writes partition tables.
type TableMutator struct {
	tool      PartitionTool
	fs        boshsys.FileSystem
	cmdRunner boshsys.CmdRunner
	opts      TableMutatorOpts
	sync      func()
	logger    boshlog.Logger
	logTag    string
}

func NewTableMutator(
	tool PartitionTool,
	fs boshsys.FileSystem,
	cmdRunner boshsys.CmdRunner,
	opts TableMutatorOpts,
	logger boshlog.Logger,
) TableMutator {
	if opts.BackupDir == "" {
		opts.BackupDir = DefaultBackupDir
	}

	return TableMutator{
		tool:      tool,
		fs:        fs,
		cmdRunner: cmdRunner,
		opts:      opts,
		sync:      unix.Sync,
		logger:    logger,
		logTag:    "TableMutator",
	}
}

// BackupPath is one file per device name; a new backup replaces the old one.
func (m TableMutator) BackupPath(devicePath string) string {
	return filepath.Join(m.opts.BackupDir, filepath.Base(devicePath)+backupFileSuffix)
}

func (m TableMutator) Backup(devicePath string) error {
	m.logger.Debug(m.logTag, "Creating backup for %s", devicePath)

	err := m.fs.MkdirAll(m.opts.BackupDir, 0755)
	if err != nil {
		return bosherr.WrapErrorf(err, "Creating backup directory '%s'", m.opts.BackupDir)
	}

	err = m.tool.Backup(devicePath, m.BackupPath(devicePath))
	if err != nil {
		return bosherr.WrapErrorf(err, "Backing up partition table of '%s'", devicePath)
	}

	return nil
}

func (m TableMutator) Restore(devicePath string) error {
	m.logger.Debug(m.logTag, "Recovering %s from backup", devicePath)

	backupPath := m.BackupPath(devicePath)
	if !m.fs.FileExists(backupPath) {
		return BackupMissingError{Device: devicePath, Path: backupPath}
	}

	err := m.tool.Restore(devicePath, backupPath)
	if err != nil {
		return bosherr.WrapErrorf(err, "Restoring partition table of '%s'", devicePath)
	}

	return nil
}

func (m TableMutator) ApplyPlan(plan Plan) error {
	for _, action := range plan.Actions {
		err := m.Apply(plan.Device, action)
		if err != nil {
			return bosherr.WrapErrorf(err, "Applying '%s' to '%s'", action, plan.Device)
		}
	}
	return nil
}

func (m TableMutator) Apply(devicePath string, action Action) error {
	switch action.Kind {
	case ActionKeep:
		return nil

	case ActionFail:
		return action.Err

	case ActionWipe:
		return m.tool.Wipe(devicePath)

	case ActionDelete:
		return m.tool.Delete(devicePath, action.Existing.Number)

	case ActionCreate:
		desired := action.Desired
		return m.tool.Create(devicePath, desired.Number, desired.Size, desired.TypeCode, desired.Name)

	case ActionRecreate:
		m.logger.Debug(m.logTag, "Overwriting partition %d of %s", action.Existing.Number, devicePath)

		err := m.tool.Delete(devicePath, action.Existing.Number)
		if err != nil {
			return err
		}

		desired := recreateTarget(action)
		size := desired.Size
		if action.UseDefaultSize {
			size = AutoSize
		}

		return m.tool.Create(devicePath, desired.Number, size, desired.TypeCode, desired.Name)

	default:
		return bosherr.Errorf("Unknown action kind '%s'", action.Kind)
	}
}

// RemovePartitions deletes the given partition numbers, ignoring ones that
// are not in the table.
func (m TableMutator) RemovePartitions(devicePath string, numbers []int) error {
	for _, number := range numbers {
		err := m.tool.Delete(devicePath, number)
		if err == nil {
			continue
		}

		if isOutOfRange(err) {
			m.logger.Warn(m.logTag, "Partition %d doesn't exist in %s. Ignoring.", number, devicePath)
			continue
		}

		return bosherr.WrapErrorf(err, "Removing partition %d of '%s'", number, devicePath)
	}

	return nil
}

// InformKernel asks the kernel to re-read the table. Failures are logged only;
// the table on disk is already written.
func (m TableMutator) InformKernel(devicePath string) {
	m.sync()

	partprobeRetryable := boshretry.NewRetryable(func() (bool, error) {
		_, _, _, err := m.cmdRunner.RunCommand("partprobe", devicePath)
		if err != nil {
			return true, bosherr.WrapErrorf(err, "Re-reading partition table for `%s'", devicePath)
		}
		return false, nil
	})

	err := boshretry.NewAttemptRetryStrategy(informKernelAttempts, m.opts.RetryDelay, partprobeRetryable, m.logger).Try()
	if err != nil {
		m.logger.Warn(m.logTag, "Failed to probe partitions of %s: %s", devicePath, err)
	}

	_, _, _, err = m.cmdRunner.RunCommand("udevadm", "settle")
	if err != nil {
		m.logger.Warn(m.logTag, "Failed to run udevadm settle: %s", err)
	}
}

func recreateTarget(action Action) DesiredPartition {
	if action.Desired != nil {
		return *action.Desired
	}

	existing := action.Existing
	return DesiredPartition{
		Device:   existing.Device,
		Number:   existing.Number,
		Size:     existing.Size,
		TypeCode: existing.TypeCode,
		Name:     existing.Name,
	}
}

func isOutOfRange(err error) bool {
	if toolErr, found := FindError[PartitionToolError](err); found {
		if strings.Contains(toolErr.Stderr, "out of range") {
			return true
		}
	}
	return strings.Contains(err.Error(), "out of range")
}
