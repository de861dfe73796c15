package disk

import (
	bosherr "github.com/cloudfoundry/bosh-utils/errors"
)

// FileSystem describes how one filesystem kind is created.
type FileSystem interface {
	Type() FileSystemType
	MkfsCommand(partitionPath, label string, force bool) (string, []string)
}

func FileSystemFor(kind string) (FileSystem, error) {
	switch FileSystemType(kind) {
	case FileSystemExt4:
		return ext4FileSystem{}, nil
	case FileSystemXFS:
		return xfsFileSystem{}, nil
	case FileSystemVFAT:
		return vfatFileSystem{}, nil
	case FileSystemBTRFS:
		return btrfsFileSystem{}, nil
	case FileSystemSwap:
		return swapFileSystem{}, nil
	default:
		return nil, bosherr.Errorf("Invalid filesystem '%s'", kind)
	}
}

type ext4FileSystem struct{}

func (ext4FileSystem) Type() FileSystemType { return FileSystemExt4 }

func (ext4FileSystem) MkfsCommand(partitionPath, label string, force bool) (string, []string) {
	return "mkfs.ext4", labelledArgs("-F", "-L", partitionPath, label, force)
}

type xfsFileSystem struct{}

func (xfsFileSystem) Type() FileSystemType { return FileSystemXFS }

func (xfsFileSystem) MkfsCommand(partitionPath, label string, force bool) (string, []string) {
	return "mkfs.xfs", labelledArgs("-f", "-L", partitionPath, label, force)
}

type btrfsFileSystem struct{}

func (btrfsFileSystem) Type() FileSystemType { return FileSystemBTRFS }

func (btrfsFileSystem) MkfsCommand(partitionPath, label string, force bool) (string, []string) {
	return "mkfs.btrfs", labelledArgs("-f", "-L", partitionPath, label, force)
}

// mkfs.vfat has no force flag.
type vfatFileSystem struct{}

func (vfatFileSystem) Type() FileSystemType { return FileSystemVFAT }

func (vfatFileSystem) MkfsCommand(partitionPath, label string, _ bool) (string, []string) {
	return "mkfs.vfat", append([]string{"-F", "32"}, labelledArgs("", "-n", partitionPath, label, false)...)
}

type swapFileSystem struct{}

func (swapFileSystem) Type() FileSystemType { return FileSystemSwap }

func (swapFileSystem) MkfsCommand(partitionPath, label string, _ bool) (string, []string) {
	return "mkswap", labelledArgs("", "-L", partitionPath, label, false)
}

func labelledArgs(forceFlag, labelFlag, partitionPath, label string, force bool) []string {
	var args []string
	if force && forceFlag != "" {
		args = append(args, forceFlag)
	}
	if label != "" {
		args = append(args, labelFlag, label)
	}
	return append(args, partitionPath)
}
