package disk

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	bosherr "github.com/cloudfoundry/bosh-utils/errors"
	boshlog "github.com/cloudfoundry/bosh-utils/logger"
	boshsys "github.com/cloudfoundry/bosh-utils/system"
)

// e.g. 'Total free space is 2014 sectors (1007.0 KiB)'
var freeSpaceRegexp = regexp.MustCompile(`Total free space is \d+ sectors \(([\d.]+) ?([A-Za-z]+)\)`)

type sgdiskPartitionTool struct {
	logger    boshlog.Logger
	cmdRunner boshsys.CmdRunner
	logTag    string
}

func NewSgdiskPartitionTool(logger boshlog.Logger, cmdRunner boshsys.CmdRunner) PartitionTool {
	return sgdiskPartitionTool{
		logger:    logger,
		cmdRunner: cmdRunner,
		logTag:    "SgdiskPartitionTool",
	}
}

func (t sgdiskPartitionTool) Create(devicePath string, number int, size Size, typeCode, name string) error {
	args := []string{
		"-I",
		"-n", fmt.Sprintf("%d:0:%s", number, size.ToolArg()),
		"-t", fmt.Sprintf("%d:%s", number, NormalizeTypeCode(typeCode)),
	}
	if name != "" {
		args = append(args, "-c", fmt.Sprintf("%d:%s", number, name))
	}

	_, err := t.run(devicePath, args...)
	if err != nil {
		return err
	}

	t.logger.Info(t.logTag, "Created partition %d (%s) on %s", number, size, devicePath)
	return nil
}

func (t sgdiskPartitionTool) Delete(devicePath string, number int) error {
	_, err := t.run(devicePath, "-d", strconv.Itoa(number))
	if err != nil {
		return err
	}

	t.logger.Info(t.logTag, "Deleted partition %d on %s", number, devicePath)
	return nil
}

func (t sgdiskPartitionTool) Wipe(devicePath string) error {
	t.logger.Warn(t.logTag, "Wiping all data in %s", devicePath)
	_, err := t.run(devicePath, "-Z", "-o")
	return err
}

// For reference on the output format see sgdisk(8) --print:
//
//	Number  Start (sector)    End (sector)  Size       Code  Name
//	   1            2048         1050623   512.0 MiB   EF00  EFI system partition
func (t sgdiskPartitionTool) TypeCodes(devicePath string) (map[int]string, error) {
	stdout, err := t.run(devicePath, "-p")
	if err != nil {
		return nil, err
	}

	typeCodes := map[int]string{}
	inTable := false

	for _, line := range strings.Split(stdout, "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		if fields[0] == "Number" {
			inTable = true
			continue
		}

		if !inTable || len(fields) < 6 {
			continue
		}

		number, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, bosherr.WrapErrorf(err, "Parsing partition number from '%s'", line)
		}

		typeCodes[number] = strings.ToLower(fields[5])
	}

	return typeCodes, nil
}

func (t sgdiskPartitionTool) FreeSpace(devicePath string) (Size, error) {
	stdout, err := t.run(devicePath, "-p")
	if err != nil {
		return Size{}, err
	}

	match := freeSpaceRegexp.FindStringSubmatch(stdout)
	if match == nil {
		return Size{}, bosherr.Errorf("Finding free space of '%s' in sgdisk output", devicePath)
	}

	if strings.EqualFold(match[2], "bytes") {
		bytes, err := strconv.ParseFloat(match[1], 64)
		if err != nil {
			return Size{}, bosherr.WrapErrorf(err, "Parsing free space of '%s'", devicePath)
		}
		return SizeFromBytes(uint64(bytes)), nil
	}

	size, err := ParseSize(match[1]+match[2], 0)
	if err != nil {
		return Size{}, bosherr.WrapErrorf(err, "Parsing free space of '%s'", devicePath)
	}

	// Normalized to the largest unit so unit-rank comparisons hold.
	return SizeFromBytes(size.Bytes()), nil
}

func (t sgdiskPartitionTool) Verify(devicePath string) (string, error) {
	stdout, stderr, exitStatus, err := t.cmdRunner.RunCommand("sgdisk", "-v", devicePath)
	diagnostic := strings.TrimSpace(stdout + "\n" + stderr)
	if err != nil {
		return diagnostic, PartitionToolError{
			Device:     devicePath,
			Command:    []string{"sgdisk", "-v", devicePath},
			ExitStatus: exitStatus,
			Stderr:     stderr,
			Err:        err,
		}
	}

	return diagnostic, nil
}

func (t sgdiskPartitionTool) Backup(devicePath, backupPath string) error {
	_, err := t.run(devicePath, "--backup="+backupPath)
	return err
}

func (t sgdiskPartitionTool) Restore(devicePath, backupPath string) error {
	_, err := t.run(devicePath, "--load-backup="+backupPath)
	return err
}

func (t sgdiskPartitionTool) run(devicePath string, args ...string) (string, error) {
	args = append(args, devicePath)

	stdout, stderr, exitStatus, err := t.cmdRunner.RunCommand("sgdisk", args...)
	if err != nil {
		t.logger.Error(t.logTag, "sgdisk %v failed: %s", args, err)
		return stdout, PartitionToolError{
			Device:     devicePath,
			Command:    append([]string{"sgdisk"}, args...),
			ExitStatus: exitStatus,
			Stderr:     stderr,
			Err:        err,
		}
	}

	return stdout, nil
}
