package disk

type FileSystemType string

const (
	FileSystemSwap  FileSystemType = "swap"
	FileSystemExt4  FileSystemType = "ext4"
	FileSystemXFS   FileSystemType = "xfs"
	FileSystemVFAT  FileSystemType = "vfat"
	FileSystemBTRFS FileSystemType = "btrfs"
)

type Formatter interface {
	Format(partition DesiredPartition) (err error)
	Mount(partition DesiredPartition) (err error)
}
