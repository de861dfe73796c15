package disk

import (
	"strconv"
	"strings"

	bosherr "github.com/cloudfoundry/bosh-utils/errors"
	boshlog "github.com/cloudfoundry/bosh-utils/logger"
	boshsys "github.com/cloudfoundry/bosh-utils/system"
	"github.com/tidwall/gjson"
)

const (
	majorLoop = 7
	majorROM  = 11

	lsblkColumns = "NAME,PATH,SIZE,TYPE,PARTN,PARTLABEL,LABEL"
)

type lsblkPartitionScanner struct {
	logger    boshlog.Logger
	cmdRunner boshsys.CmdRunner
	tool      PartitionTool
	logTag    string
}

func NewLsblkPartitionScanner(logger boshlog.Logger, cmdRunner boshsys.CmdRunner, tool PartitionTool) PartitionScanner {
	return lsblkPartitionScanner{
		logger:    logger,
		cmdRunner: cmdRunner,
		tool:      tool,
		logTag:    "LsblkPartitionScanner",
	}
}

func (s lsblkPartitionScanner) Scan(devicePath string) ([]ExistingPartition, error) {
	s.logger.Debug(s.logTag, "Scanning current partitions in %s", devicePath)

	stdout, _, _, err := s.cmdRunner.RunCommand(
		"lsblk",
		"-e", strconv.Itoa(majorLoop)+","+strconv.Itoa(majorROM),
		"--json",
		"--bytes",
		"--output", lsblkColumns,
		devicePath,
	)
	if err != nil {
		return nil, bosherr.WrapErrorf(err, "Listing block device '%s'", devicePath)
	}

	if !gjson.Valid(stdout) {
		return nil, bosherr.Errorf("Invalid lsblk output for '%s'", devicePath)
	}

	devices := gjson.Get(stdout, "blockdevices")
	if !devices.Exists() || len(devices.Array()) == 0 {
		return nil, DeviceNotFoundError{Device: devicePath}
	}

	children := devices.Array()[0].Get("children").Array()
	if len(children) == 0 {
		return []ExistingPartition{}, nil
	}

	typeCodes, err := s.tool.TypeCodes(devicePath)
	if err != nil {
		return nil, bosherr.WrapErrorf(err, "Reading partition type codes of '%s'", devicePath)
	}

	partitions := make([]ExistingPartition, 0, len(children))
	for _, child := range children {
		if childType := child.Get("type").String(); childType != "" && childType != "part" {
			continue
		}

		path := child.Get("path").String()

		number, err := partitionNumber(child, path)
		if err != nil {
			return nil, bosherr.WrapErrorf(err, "Reading partition number of '%s'", path)
		}

		size, err := parseLsblkSize(child.Get("size"), number)
		if err != nil {
			return nil, err
		}

		typeCode, found := typeCodes[number]
		if !found {
			return nil, ScanInconsistencyError{Device: devicePath, Partition: number}
		}

		partitions = append(partitions, ExistingPartition{
			Device:   devicePath,
			Number:   number,
			Path:     path,
			Size:     size,
			TypeCode: typeCode,
			Name:     child.Get("partlabel").String(),
			Label:    child.Get("label").String(),
		})
	}

	return partitions, nil
}

func partitionNumber(child gjson.Result, path string) (int, error) {
	if partn := child.Get("partn"); partn.Int() > 0 {
		return int(partn.Int()), nil
	}

	digits := strings.TrimRightFunc(path, func(r rune) bool { return r >= '0' && r <= '9' })
	return strconv.Atoi(path[len(digits):])
}

// Older lsblk versions print byte counts as JSON strings.
func parseLsblkSize(size gjson.Result, number int) (Size, error) {
	if size.Type == gjson.Number {
		return SizeFromBytes(size.Uint()), nil
	}

	bytes, err := strconv.ParseUint(size.String(), 10, 64)
	if err != nil || bytes == 0 {
		return Size{}, SizeParseError{Text: size.String(), Partition: number}
	}
	return SizeFromBytes(bytes), nil
}
