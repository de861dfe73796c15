package disk

// PartitionTool drives an external GPT partitioning program. Every method
// blocks until the program exits.
type PartitionTool interface {
	Create(devicePath string, number int, size Size, typeCode, name string) error
	Delete(devicePath string, number int) error
	Wipe(devicePath string) error

	// TypeCodes maps partition numbers to lower-case GPT type codes.
	TypeCodes(devicePath string) (map[int]string, error)
	FreeSpace(devicePath string) (Size, error)

	// Verify returns the tool's diagnostic output for the table.
	Verify(devicePath string) (string, error)

	Backup(devicePath, backupPath string) error
	Restore(devicePath, backupPath string) error
}
