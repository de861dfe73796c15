package disk

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 . Mounter

type Mounter interface {
	Mount(partitionPath, mountPoint string, mountOptions ...string) (err error)
	Unmount(partitionOrMountPoint string) (didUnmount bool, err error)

	SwapOn(partitionPath string) (err error)

	IsMounted(devicePathOrMountPoint string) (result bool, err error)
}
