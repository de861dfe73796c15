package disk

import (
	bosherr "github.com/cloudfoundry/bosh-utils/errors"
	boshsys "github.com/cloudfoundry/bosh-utils/system"
)

type linuxMounter struct {
	runner         boshsys.CmdRunner
	mountsSearcher MountsSearcher
}

func NewLinuxMounter(runner boshsys.CmdRunner, mountsSearcher MountsSearcher) Mounter {
	return linuxMounter{
		runner:         runner,
		mountsSearcher: mountsSearcher,
	}
}

func (m linuxMounter) Mount(partitionPath, mountPoint string, mountOptions ...string) error {
	mounted, err := m.isMountedAt(partitionPath, mountPoint)
	if err != nil {
		return bosherr.WrapError(err, "Checking whether partition is mounted")
	}

	if mounted {
		return nil
	}

	mountArgs := append(append([]string{}, mountOptions...), partitionPath, mountPoint)
	_, _, _, err = m.runner.RunCommand("mount", mountArgs...)
	if err != nil {
		return bosherr.WrapErrorf(err, "Mounting '%s' at '%s'", partitionPath, mountPoint)
	}

	return nil
}

func (m linuxMounter) Unmount(partitionOrMountPoint string) (bool, error) {
	isMounted, err := m.IsMounted(partitionOrMountPoint)
	if err != nil || !isMounted {
		return false, err
	}

	_, _, _, err = m.runner.RunCommand("umount", partitionOrMountPoint)
	if err != nil {
		return false, bosherr.WrapErrorf(err, "Unmounting '%s'", partitionOrMountPoint)
	}

	return true, nil
}

func (m linuxMounter) SwapOn(partitionPath string) error {
	out, _, _, _ := m.runner.RunCommand("swapon", "-s")

	for _, line := range splitLines(out) {
		if fields := splitFields(line); len(fields) > 0 && fields[0] == partitionPath {
			return nil
		}
	}

	_, _, _, err := m.runner.RunCommand("swapon", partitionPath)
	if err != nil {
		return bosherr.WrapError(err, "Shelling out to swapon")
	}

	return nil
}

func (m linuxMounter) IsMounted(devicePathOrMountPoint string) (bool, error) {
	mounts, err := m.mountsSearcher.SearchMounts()
	if err != nil {
		return false, bosherr.WrapError(err, "Searching mounts")
	}

	for _, mount := range mounts {
		if mount.PartitionPath == devicePathOrMountPoint || mount.MountPoint == devicePathOrMountPoint {
			return true, nil
		}
	}

	return false, nil
}

func (m linuxMounter) isMountedAt(partitionPath, mountPoint string) (bool, error) {
	mounts, err := m.mountsSearcher.SearchMounts()
	if err != nil {
		return false, err
	}

	for _, mount := range mounts {
		if mount.PartitionPath == partitionPath && mount.MountPoint == mountPoint {
			return true, nil
		}
	}

	return false, nil
}
