package disk

type PartitionScanner interface {
	// Scan lists the partitions currently on devicePath in table order.
	Scan(devicePath string) ([]ExistingPartition, error)
}
