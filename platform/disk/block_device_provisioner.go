package disk

import (
	"path/filepath"
	"sort"
	"strings"
	"time"

	"code.cloudfoundry.org/clock"
	bosherr "github.com/cloudfoundry/bosh-utils/errors"
	boshlog "github.com/cloudfoundry/bosh-utils/logger"
	"github.com/hashicorp/go-multierror"
)

// BlockDevice is the declared layout of one disk.
type BlockDevice struct {
	Path             string
	Wipe             bool
	SkipPartition    bool
	RemovePartitions []int
	Partitions       []DesiredPartition
}

func (d BlockDevice) Name() string { return filepath.Base(d.Path) }

type ProvisionResult struct {
	Device       string
	Plan         Plan
	Verification VerificationResult
	Duration     time.Duration
}

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 . BlockDeviceProvisioner

type BlockDeviceProvisioner interface {
	// Provision partitions, formats and mounts one device. Any failure once
	// the table has been written to restores the backup taken beforehand.
	Provision(device BlockDevice) (ProvisionResult, error)

	// Plan computes what Provision would do to the table without changing it.
	Plan(device BlockDevice) (Plan, error)
}

type blockDeviceProvisioner struct {
	scanner     PartitionScanner
	reconciler  Reconciler
	mutator     TableMutator
	verifier    Verifier
	formatter   Formatter
	timeService clock.Clock
	logger      boshlog.Logger
	logTag      string
}

func NewBlockDeviceProvisioner(
	scanner PartitionScanner,
	reconciler Reconciler,
	mutator TableMutator,
	verifier Verifier,
	formatter Formatter,
	timeService clock.Clock,
	logger boshlog.Logger,
) BlockDeviceProvisioner {
	return blockDeviceProvisioner{
		scanner:     scanner,
		reconciler:  reconciler,
		mutator:     mutator,
		verifier:    verifier,
		formatter:   formatter,
		timeService: timeService,
		logger:      logger,
		logTag:      "BlockDeviceProvisioner",
	}
}

func (p blockDeviceProvisioner) Provision(device BlockDevice) (ProvisionResult, error) {
	started := p.timeService.Now()
	result := ProvisionResult{Device: device.Path}

	p.logger.Info(p.logTag, "Partitioning %s", device.Path)

	if device.SkipPartition {
		p.logger.Debug(p.logTag, "Ignoring partitioning %s", device.Path)
	} else {
		plan, verification, err := p.partition(device)
		if err != nil {
			return result, err
		}
		result.Plan = plan
		result.Verification = verification
	}

	err := p.formatPartitions(device)
	if err != nil {
		return result, err
	}

	err = p.mountPartitions(device)
	if err != nil {
		return result, err
	}

	result.Duration = p.timeService.Since(started)
	p.logger.Info(p.logTag, "Provisioned %s in %s", device.Path, result.Duration)

	return result, nil
}

func (p blockDeviceProvisioner) Plan(device BlockDevice) (Plan, error) {
	if device.Wipe {
		return p.reconciler.WipePlan(device.Path, device.Partitions), nil
	}

	existing, err := p.scanner.Scan(device.Path)
	if err != nil {
		return Plan{}, bosherr.WrapErrorf(err, "Scanning '%s'", device.Path)
	}

	var removals []Action
	var removed []ExistingPartition
	remaining := make([]ExistingPartition, 0, len(existing))
	for _, partition := range existing {
		if containsNumber(device.RemovePartitions, partition.Number) {
			removals = append(removals, DeleteAction(partition))
			removed = append(removed, partition)
			continue
		}
		remaining = append(remaining, partition)
	}

	plan, err := p.reconciler.ReconcileAfterRemovals(device.Path, remaining, removed, device.Partitions)
	if err != nil {
		return Plan{}, err
	}

	plan.Actions = append(removals, plan.Actions...)
	return plan, nil
}

func (p blockDeviceProvisioner) partition(device BlockDevice) (Plan, VerificationResult, error) {
	err := p.mutator.Backup(device.Path)
	if err != nil {
		return Plan{}, VerificationResult{}, bosherr.WrapErrorf(err, "Backing up '%s'", device.Path)
	}

	plan, verification, mutated, err := p.partitionWithBackup(device)
	if err != nil {
		if !mutated {
			p.logger.Error(p.logTag, "Partitioning %s failed before the table was changed: %s", device.Path, err)
			return Plan{}, VerificationResult{}, err
		}

		p.logger.Error(p.logTag, "Partitioning %s failed, restoring backup: %s", device.Path, err)

		restoreErr := p.mutator.Restore(device.Path)
		if restoreErr != nil {
			err = multierror.Append(err, bosherr.WrapErrorf(restoreErr, "Restoring '%s' after failure", device.Path))
		}

		return Plan{}, VerificationResult{}, err
	}

	return plan, verification, nil
}

// partitionWithBackup reports whether it got as far as writing to the table.
func (p blockDeviceProvisioner) partitionWithBackup(device BlockDevice) (Plan, VerificationResult, bool, error) {
	mutated := false

	if len(device.RemovePartitions) > 0 && !device.Wipe {
		mutated = true
		err := p.mutator.RemovePartitions(device.Path, device.RemovePartitions)
		if err != nil {
			return Plan{}, VerificationResult{}, mutated, err
		}
	}

	plan, err := p.tablePlan(device)
	if err != nil {
		return Plan{}, VerificationResult{}, mutated, err
	}

	if failure := plan.Failure(); failure != nil {
		return Plan{}, VerificationResult{}, mutated, failure
	}

	mutated = true
	err = p.mutator.ApplyPlan(plan)
	if err != nil {
		return Plan{}, VerificationResult{}, mutated, err
	}

	p.mutator.InformKernel(device.Path)

	verification, err := p.verifier.Verify(device.Path)
	if err != nil {
		return Plan{}, VerificationResult{}, mutated, err
	}

	return plan, verification, mutated, nil
}

// tablePlan is Plan after removals have already been applied.
func (p blockDeviceProvisioner) tablePlan(device BlockDevice) (Plan, error) {
	if device.Wipe {
		return p.reconciler.WipePlan(device.Path, device.Partitions), nil
	}

	existing, err := p.scanner.Scan(device.Path)
	if err != nil {
		return Plan{}, bosherr.WrapErrorf(err, "Scanning '%s'", device.Path)
	}

	return p.reconciler.Reconcile(device.Path, existing, device.Partitions)
}

func (p blockDeviceProvisioner) formatPartitions(device BlockDevice) error {
	p.logger.Debug(p.logTag, "Formatting partitions in %s", device.Path)

	for _, partition := range device.Partitions {
		if partition.FileSystem == "" {
			continue
		}

		err := p.formatter.Format(partition)
		if err != nil {
			return bosherr.WrapErrorf(err, "Formatting partition %d of '%s'", partition.Number, device.Path)
		}
	}

	p.logger.Info(p.logTag, "Successfully formatted partitions in %s", device.Path)
	return nil
}

func (p blockDeviceProvisioner) mountPartitions(device BlockDevice) error {
	p.logger.Debug(p.logTag, "Mounting partitions in %s", device.Path)

	for _, partition := range MountOrder(device.Partitions) {
		err := p.formatter.Mount(partition)
		if err != nil {
			return bosherr.WrapErrorf(err, "Mounting partition %d of '%s'", partition.Number, device.Path)
		}
	}

	p.logger.Info(p.logTag, "Successfully mounted partitions in %s", device.Path)
	return nil
}

// MountOrder returns the mountable partitions, shallowest mount point first,
// so that /mnt is mounted before /mnt/boot.
func MountOrder(partitions []DesiredPartition) []DesiredPartition {
	var ordered []DesiredPartition
	for _, partition := range partitions {
		if partition.FileSystem != "" {
			ordered = append(ordered, partition)
		}
	}

	sort.SliceStable(ordered, func(i, j int) bool {
		return strings.Count(ordered[i].MountPoint, "/") < strings.Count(ordered[j].MountPoint, "/")
	})

	return ordered
}

func containsNumber(numbers []int, number int) bool {
	for _, n := range numbers {
		if n == number {
			return true
		}
	}
	return false
}
