package disk

import (
	"path/filepath"
	"strings"

	bosherr "github.com/cloudfoundry/bosh-utils/errors"
	boshlog "github.com/cloudfoundry/bosh-utils/logger"
	boshsys "github.com/cloudfoundry/bosh-utils/system"
)

type linuxFormatter struct {
	runner  boshsys.CmdRunner
	fs      boshsys.FileSystem
	mounter Mounter
	logger  boshlog.Logger
	logTag  string
}

func NewLinuxFormatter(runner boshsys.CmdRunner, fs boshsys.FileSystem, m Mounter, logger boshlog.Logger) Formatter {
	return linuxFormatter{
		runner:  runner,
		fs:      fs,
		mounter: m,
		logger:  logger,
		logTag:  "LinuxFormatter",
	}
}

func (f linuxFormatter) Format(partition DesiredPartition) error {
	partitionPath := partition.Path()

	if partition.SkipFormat {
		f.logger.Debug(f.logTag, "Skipping format of %s", partitionPath)
		return nil
	}

	fileSystem, err := FileSystemFor(partition.FileSystem)
	if err != nil {
		return bosherr.WrapErrorf(err, "Formatting partition %d", partition.Number)
	}

	cmdName, args := fileSystem.MkfsCommand(partitionPath, partition.Label, partition.ForceFormat)

	_, _, _, err = f.runner.RunCommand(cmdName, args...)
	if err != nil && strings.Contains(err.Error(), "apparently in use by the system") {
		_, _, _, err = f.runner.RunCommand(cmdName, args...)
	}
	if err != nil {
		return bosherr.WrapErrorf(err, "Shelling out to %s", cmdName)
	}

	if fileSystem.Type() == FileSystemBTRFS && len(partition.Subvolumes) > 0 {
		err = f.createSubvolumes(partition)
		if err != nil {
			return bosherr.WrapErrorf(err, "Creating btrfs subvolumes on %s", partitionPath)
		}
	}

	f.logger.Info(f.logTag, "Formatted %s as %s", partitionPath, fileSystem.Type())
	return nil
}

func (f linuxFormatter) Mount(partition DesiredPartition) error {
	partitionPath := partition.Path()

	fileSystem, err := FileSystemFor(partition.FileSystem)
	if err != nil {
		return bosherr.WrapErrorf(err, "Mounting partition %d", partition.Number)
	}

	if fileSystem.Type() == FileSystemSwap {
		return f.mounter.SwapOn(partitionPath)
	}

	if fileSystem.Type() == FileSystemBTRFS && len(partition.Subvolumes) > 0 {
		for _, subvolume := range partition.Subvolumes {
			options := "subvol=" + subvolume.Name
			if partition.MountOptions != "" {
				options = partition.MountOptions + "," + options
			}

			err = f.mountAt(partitionPath, subvolume.MountPoint, "-o", options)
			if err != nil {
				return err
			}
		}
		return nil
	}

	if partition.MountPoint == "" {
		return bosherr.Errorf("Invalid mountpoint for partition %d", partition.Number)
	}

	var options []string
	if partition.MountOptions != "" {
		options = []string{"-o", partition.MountOptions}
	}

	return f.mountAt(partitionPath, partition.MountPoint, options...)
}

func (f linuxFormatter) mountAt(partitionPath, mountPoint string, options ...string) error {
	err := f.fs.MkdirAll(mountPoint, 0755)
	if err != nil {
		return bosherr.WrapErrorf(err, "Creating mountpoint '%s'", mountPoint)
	}

	err = f.mounter.Mount(partitionPath, mountPoint, options...)
	if err != nil {
		return bosherr.WrapErrorf(err, "Mounting %s", partitionPath)
	}

	f.logger.Debug(f.logTag, "Mounted %s at %s", partitionPath, mountPoint)
	return nil
}

// Subvolumes are created through a temporary mount of the top-level volume.
func (f linuxFormatter) createSubvolumes(partition DesiredPartition) (err error) {
	if partition.MountPoint == "" {
		return bosherr.Errorf("Btrfs partition %d needs a mountpoint to create subvolumes", partition.Number)
	}

	err = f.mountAt(partition.Path(), partition.MountPoint)
	if err != nil {
		return err
	}

	defer func() {
		_, unmountErr := f.mounter.Unmount(partition.MountPoint)
		if err == nil && unmountErr != nil {
			err = bosherr.WrapError(unmountErr, "Unmounting top-level btrfs volume")
		}
	}()

	for _, subvolume := range partition.Subvolumes {
		_, _, _, err = f.runner.RunCommand("btrfs", "subvolume", "create", filepath.Join(partition.MountPoint, subvolume.Name))
		if err != nil {
			return bosherr.WrapErrorf(err, "Creating subvolume '%s'", subvolume.Name)
		}
	}

	return nil
}
