package settings

import (
	"regexp"

	bosherr "github.com/cloudfoundry/bosh-utils/errors"

	"github.com/archsan/archsan/platform/disk"
)

const swapFileSystem = "swap"

var typeCodePattern = regexp.MustCompile(`^[0-9a-fA-F]{4}$`)

type Settings struct {
	BlockDevices []BlockDevice `mapstructure:"block-devices"`
}

type BlockDevice struct {
	Device           string      `mapstructure:"device"`
	Wipe             bool        `mapstructure:"wipe"`
	SkipPartition    bool        `mapstructure:"skip-partition"`
	RemovePartitions []int       `mapstructure:"remove-partitions"`
	Partitions       []Partition `mapstructure:"partitions"`
}

type Partition struct {
	Number int `mapstructure:"number"`

	// e.g. "+512MiB", "20G" or "0" for the rest of the disk
	Size string `mapstructure:"size"`

	Type  string `mapstructure:"type"`
	Name  string `mapstructure:"name"`
	Label string `mapstructure:"label"`

	FileSystem   string      `mapstructure:"fs"`
	MountPoint   string      `mapstructure:"mountpoint"`
	MountOptions string      `mapstructure:"mountoptions"`
	Subvolumes   []Subvolume `mapstructure:"subvolumes"`

	Overwrite   bool `mapstructure:"overwrite"`
	Exists      bool `mapstructure:"exists"`
	ForceFormat bool `mapstructure:"force-format"`
	SkipFormat  bool `mapstructure:"skip-format"`
}

type Subvolume struct {
	Name       string `mapstructure:"name"`
	MountPoint string `mapstructure:"mountpoint"`
}

// ToBlockDevices converts the settings into provisioner input, in the
// declared order.
func (s Settings) ToBlockDevices() ([]disk.BlockDevice, error) {
	devices := make([]disk.BlockDevice, 0, len(s.BlockDevices))

	for _, blockDevice := range s.BlockDevices {
		device, err := blockDevice.toBlockDevice()
		if err != nil {
			return nil, bosherr.WrapErrorf(err, "Block device '%s'", blockDevice.Device)
		}
		devices = append(devices, device)
	}

	return devices, nil
}

func (d BlockDevice) toBlockDevice() (disk.BlockDevice, error) {
	device := disk.BlockDevice{
		Path:             d.Device,
		Wipe:             d.Wipe,
		SkipPartition:    d.SkipPartition,
		RemovePartitions: d.RemovePartitions,
	}

	seen := map[int]bool{}
	for _, partition := range d.Partitions {
		if seen[partition.Number] {
			return disk.BlockDevice{}, bosherr.Errorf("Duplicate partition number %d", partition.Number)
		}
		seen[partition.Number] = true

		desired, err := partition.toDesiredPartition(d.Device)
		if err != nil {
			return disk.BlockDevice{}, err
		}
		device.Partitions = append(device.Partitions, desired)
	}

	return device, nil
}

func (p Partition) toDesiredPartition(devicePath string) (disk.DesiredPartition, error) {
	err := p.validate()
	if err != nil {
		return disk.DesiredPartition{}, err
	}

	size, err := disk.ParseSize(p.Size, p.Number)
	if err != nil {
		return disk.DesiredPartition{}, err
	}

	if p.Type != "" && !typeCodePattern.MatchString(p.Type) {
		return disk.DesiredPartition{}, bosherr.Errorf("Partition %d has type code '%s', expected four hex digits", p.Number, p.Type)
	}

	subvolumes := make([]disk.Subvolume, 0, len(p.Subvolumes))
	for _, subvolume := range p.Subvolumes {
		subvolumes = append(subvolumes, disk.Subvolume{Name: subvolume.Name, MountPoint: subvolume.MountPoint})
	}

	return disk.DesiredPartition{
		Device:       devicePath,
		Number:       p.Number,
		Size:         size,
		TypeCode:     disk.NormalizeTypeCode(p.Type),
		Name:         p.Name,
		Label:        p.Label,
		Overwrite:    p.Overwrite,
		CheckExists:  p.Exists,
		FileSystem:   p.FileSystem,
		MountPoint:   p.MountPoint,
		MountOptions: p.MountOptions,
		ForceFormat:  p.ForceFormat,
		SkipFormat:   p.SkipFormat,
		Subvolumes:   subvolumes,
	}, nil
}

func (p Partition) validate() error {
	if p.FileSystem == "" {
		if p.SkipFormat {
			return nil
		}
		return bosherr.Errorf("Partition %d needs a filesystem unless skip-format is set", p.Number)
	}

	if _, err := disk.FileSystemFor(p.FileSystem); err != nil {
		return bosherr.WrapErrorf(err, "Partition %d", p.Number)
	}

	if p.FileSystem != swapFileSystem && p.MountPoint == "" {
		return bosherr.Errorf("Partition %d needs a mountpoint", p.Number)
	}

	return nil
}
