package disk

import (
	bosherr "github.com/cloudfoundry/bosh-utils/errors"
	boshsys "github.com/cloudfoundry/bosh-utils/system"
)

const procMountsPath = "/proc/mounts"

type procMountsSearcher struct {
	fs boshsys.FileSystem
}

func NewProcMountsSearcher(fs boshsys.FileSystem) MountsSearcher {
	return procMountsSearcher{fs}
}

// e.g. '/dev/sda2 /mnt btrfs rw,relatime,subvol=/@ 0 0'
func (s procMountsSearcher) SearchMounts() ([]Mount, error) {
	mountInfo, err := s.fs.ReadFileString(procMountsPath)
	if err != nil {
		return []Mount{}, bosherr.WrapErrorf(err, "Reading %s", procMountsPath)
	}

	mountEntries := splitLines(mountInfo)
	mounts := make([]Mount, 0, len(mountEntries))
	for _, mountEntry := range mountEntries {
		mountFields := splitFields(mountEntry)
		if len(mountFields) < 2 {
			continue
		}

		mounts = append(mounts, Mount{
			PartitionPath: mountFields[0],
			MountPoint:    mountFields[1],
		})
	}

	return mounts, nil
}
