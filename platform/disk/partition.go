package disk

import (
	"fmt"
	"path/filepath"
	"strings"
	"unicode"
)

const DefaultTypeCode = "8300"

type Subvolume struct {
	Name       string
	MountPoint string
}

// DesiredPartition is one entry of a device's declared layout.
type DesiredPartition struct {
	Device      string
	Number      int
	Size        Size
	TypeCode    string
	Name        string
	Overwrite   bool
	CheckExists bool

	// Carried through to formatting and mounting only.
	Label        string
	FileSystem   string
	MountPoint   string
	MountOptions string
	ForceFormat  bool
	SkipFormat   bool
	Subvolumes   []Subvolume
}

type ExistingPartition struct {
	Device   string
	Number   int
	Path     string
	Size     Size
	TypeCode string
	Name     string
	Label    string
}

// PartitionPath returns the kernel name of partition number on device.
// Devices whose name ends in a digit use a "p" separator (nvme0n1p1).
func PartitionPath(device string, number int) string {
	base := filepath.Base(device)
	if base != "" && unicode.IsDigit(rune(base[len(base)-1])) {
		return fmt.Sprintf("%sp%d", device, number)
	}
	return fmt.Sprintf("%s%d", device, number)
}

func NormalizeTypeCode(code string) string {
	code = strings.ToLower(strings.TrimSpace(code))
	if code == "" {
		return DefaultTypeCode
	}
	return code
}

func (p DesiredPartition) Path() string {
	return PartitionPath(p.Device, p.Number)
}

func (p DesiredPartition) String() string {
	return fmt.Sprintf("[Number: %d, Size: %s, Type: %s, Name: %s]", p.Number, p.Size, NormalizeTypeCode(p.TypeCode), p.Name)
}

// Matches compares device, size in bytes, number, path, type code and name.
// An empty desired name accepts whatever name sgdisk assigned.
func (p DesiredPartition) Matches(existing ExistingPartition) bool {
	return p.Size.SameBytes(existing.Size) && p.matchesIgnoringSize(existing)
}

func (p DesiredPartition) matchesIgnoringSize(existing ExistingPartition) bool {
	existingPath := existing.Path
	if existingPath == "" {
		existingPath = PartitionPath(existing.Device, existing.Number)
	}

	return p.Device == existing.Device &&
		p.Number == existing.Number &&
		p.Path() == existingPath &&
		NormalizeTypeCode(p.TypeCode) == NormalizeTypeCode(existing.TypeCode) &&
		(p.Name == "" || p.Name == existing.Name)
}

func (p ExistingPartition) String() string {
	return fmt.Sprintf("[Number: %d, Path: %s, Size: %s, Type: %s, Name: %s]", p.Number, p.Path, p.Size, p.TypeCode, p.Name)
}
