package disk

import (
	"errors"
	"fmt"

	bosherr "github.com/cloudfoundry/bosh-utils/errors"
)

type SizeParseError struct {
	Text      string
	Partition int
}

func (e SizeParseError) Error() string {
	return fmt.Sprintf("Invalid value '%s' for size (partition %d)", e.Text, e.Partition)
}

type DeviceNotFoundError struct {
	Device string
}

func (e DeviceNotFoundError) Error() string {
	return fmt.Sprintf("Block device '%s' doesn't exist", e.Device)
}

type ScanInconsistencyError struct {
	Device    string
	Partition int
}

func (e ScanInconsistencyError) Error() string {
	return fmt.Sprintf("Partition %d of '%s' is listed by lsblk but has no type code in the partition table", e.Partition, e.Device)
}

type ConflictReason string

const (
	ConflictTooBig              ConflictReason = "too-big"
	ConflictNoOverwrite         ConflictReason = "no-overwrite"
	ConflictAmbiguousParameters ConflictReason = "ambiguous-parameters"
)

var conflictMessages = map[ConflictReason]string{
	ConflictTooBig:              "too big, other partitions exist after it",
	ConflictNoOverwrite:         "already exists and no overwrite option is specified",
	ConflictAmbiguousParameters: "parameters differ from the existing partition and require overwrite",
}

type PartitionConflictError struct {
	Device    string
	Partition int
	Reason    ConflictReason
}

func (e PartitionConflictError) Error() string {
	return fmt.Sprintf("Partition %d on '%s' %s", e.Partition, e.Device, conflictMessages[e.Reason])
}

type NoSpaceError struct {
	Device    string
	Partition int
	Requested Size
	Available Size
}

func (e NoSpaceError) Error() string {
	return fmt.Sprintf("No space available for partition %d on '%s': requested %s, available %s",
		e.Partition, e.Device, e.Requested, e.Available)
}

type MissingPartitionError struct {
	Device    string
	Partition int
}

func (e MissingPartitionError) Error() string {
	return fmt.Sprintf("Partition %d doesn't exist on '%s'", e.Partition, e.Device)
}

type PartitionToolError struct {
	Device     string
	Command    []string
	ExitStatus int
	Stderr     string
	Err        error
}

func (e PartitionToolError) Error() string {
	return fmt.Sprintf("Running %v on '%s' failed with exit status %d: %s", e.Command, e.Device, e.ExitStatus, e.Stderr)
}

func (e PartitionToolError) Unwrap() error { return e.Err }

type VerificationExhaustedError struct {
	Device     string
	Partition  int
	Diagnostic string
}

func (e VerificationExhaustedError) Error() string {
	return fmt.Sprintf("Unable to correct partition %d on '%s': %s", e.Partition, e.Device, e.Diagnostic)
}

type BackupMissingError struct {
	Device string
	Path   string
}

func (e BackupMissingError) Error() string {
	return fmt.Sprintf("No partition table backup of '%s' found at '%s'", e.Device, e.Path)
}

// FindError follows bosh-utils ComplexError causes and standard wrapping and
// returns the first error of type T in the chain.
func FindError[T error](err error) (T, bool) {
	for err != nil {
		var typed T
		if errors.As(err, &typed) {
			return typed, true
		}

		switch complexErr := err.(type) {
		case bosherr.ComplexError:
			err = complexErr.Cause
		case *bosherr.ComplexError:
			err = complexErr.Cause
		default:
			err = errors.Unwrap(err)
		}
	}

	var zero T
	return zero, false
}
