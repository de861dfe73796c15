package disk

import (
	"fmt"

	bosherr "github.com/cloudfoundry/bosh-utils/errors"
	boshlog "github.com/cloudfoundry/bosh-utils/logger"
)

// Reconciler turns a desired layout and a scanned table into a Plan. It never
// mutates the device; operator questions are asked here and not during apply.
type Reconciler struct {
	tool     PartitionTool
	prompter Prompter
	logger   boshlog.Logger
	logTag   string
}

func NewReconciler(tool PartitionTool, prompter Prompter, logger boshlog.Logger) Reconciler {
	return Reconciler{
		tool:     tool,
		prompter: prompter,
		logger:   logger,
		logTag:   "Reconciler",
	}
}

// WipePlan zaps the table and creates every desired partition in order.
func (r Reconciler) WipePlan(devicePath string, desired []DesiredPartition) Plan {
	plan := Plan{Device: devicePath, Actions: []Action{WipeAction()}}
	for _, partition := range desired {
		plan.Actions = append(plan.Actions, CreateAction(partition))
	}
	return plan
}

func (r Reconciler) Reconcile(devicePath string, existing []ExistingPartition, desired []DesiredPartition) (Plan, error) {
	return r.ReconcileAfterRemovals(devicePath, existing, nil, desired)
}

// ReconcileAfterRemovals plans against a table from which removed has not been
// deleted yet. The removed partitions count as free space.
func (r Reconciler) ReconcileAfterRemovals(devicePath string, existing, removed []ExistingPartition, desired []DesiredPartition) (Plan, error) {
	plan := Plan{Device: devicePath}
	space := freeSpace{device: devicePath, tool: r.tool}
	for _, partition := range removed {
		space.reclaimed += partition.Size.Bytes()
	}

	for _, partition := range desired {
		action, err := r.reconcilePartition(partition, existing, &space)
		if err != nil {
			return Plan{}, bosherr.WrapErrorf(err, "Reconciling partition %d of '%s'", partition.Number, devicePath)
		}

		r.logger.Debug(r.logTag, "Planned %s on %s", action, devicePath)
		plan.Actions = append(plan.Actions, action)
	}

	return plan, nil
}

func (r Reconciler) reconcilePartition(desired DesiredPartition, existing []ExistingPartition, space *freeSpace) (Action, error) {
	for i, current := range existing {
		if desired.Matches(current) {
			if desired.Overwrite {
				return RecreateAction(current, desired, false), nil
			}
			r.logger.Debug(r.logTag, "Using existing partition %d of '%s'", current.Number, current.Device)
			return KeepAction(current, desired), nil
		}

		if desired.Number == current.Number {
			return r.resolveConflict(desired, current, i == len(existing)-1)
		}
	}

	if desired.CheckExists {
		return FailAction(desired, MissingPartitionError{Device: desired.Device, Partition: desired.Number}), nil
	}

	return r.planCreate(desired, space)
}

func (r Reconciler) resolveConflict(desired DesiredPartition, current ExistingPartition, isLast bool) (Action, error) {
	r.logger.Debug(r.logTag, "Partition %d already exists in '%s' with different attributes", desired.Number, desired.Device)

	conflict := func(reason ConflictReason) Action {
		return FailAction(desired, PartitionConflictError{Device: desired.Device, Partition: desired.Number, Reason: reason})
	}

	if desired.Size.IsAuto() {
		if desired.Overwrite {
			return RecreateAction(current, desired, true), nil
		}

		if desired.matchesIgnoringSize(current) {
			r.logger.Info(r.logTag, "Using existing partition %d of '%s'", current.Number, current.Device)
			return KeepAction(current, desired), nil
		}

		confirmed, err := r.prompter.Confirm(fmt.Sprintf(
			"Partition %d of %s has different parameters than the existing one. Overwrite the partition?",
			desired.Number, desired.Device))
		if err != nil {
			return Action{}, bosherr.WrapError(err, "Asking for overwrite confirmation")
		}
		if confirmed {
			return RecreateAction(current, desired, false), nil
		}
		return conflict(ConflictAmbiguousParameters), nil
	}

	switch CompareSizes(desired.Size, current.Size) {
	case 1:
		if !isLast {
			return conflict(ConflictTooBig), nil
		}
		if desired.Overwrite {
			return RecreateAction(current, desired, false), nil
		}
		return conflict(ConflictNoOverwrite), nil

	case -1:
		if desired.Overwrite {
			return RecreateAction(current, desired, false), nil
		}
		return conflict(ConflictNoOverwrite), nil

	default:
		if desired.Overwrite {
			return RecreateAction(current, desired, false), nil
		}
		r.logger.Warn(r.logTag, "Partition %d of '%s' differs from the desired one (%s) but overwrite is not set, keeping %s",
			desired.Number, desired.Device, desired, current)
		return KeepAction(current, desired), nil
	}
}

func (r Reconciler) planCreate(desired DesiredPartition, space *freeSpace) (Action, error) {
	available, err := space.available()
	if err != nil {
		return Action{}, err
	}

	noSpace := FailAction(desired, NoSpaceError{
		Device:    desired.Device,
		Partition: desired.Number,
		Requested: desired.Size,
		Available: available,
	})

	if CompareSizes(available, MinSize) < 0 {
		return noSpace, nil
	}

	if !desired.Size.IsAuto() && CompareSizes(available, desired.Size) < 0 {
		return noSpace, nil
	}

	space.consume(desired.Size)
	return CreateAction(desired), nil
}

// freeSpace queries the tool once per plan and then tracks what planned
// creates will take, since nothing is written until the plan is applied.
type freeSpace struct {
	device    string
	tool      PartitionTool
	queried   bool
	reclaimed uint64
	remaining uint64
}

func (s *freeSpace) available() (Size, error) {
	if !s.queried {
		size, err := s.tool.FreeSpace(s.device)
		if err != nil {
			return Size{}, bosherr.WrapErrorf(err, "Querying free space of '%s'", s.device)
		}
		s.remaining = size.Bytes() + s.reclaimed
		s.queried = true
	}

	return SizeFromBytes(s.remaining), nil
}

func (s *freeSpace) consume(size Size) {
	if size.IsAuto() || size.Bytes() >= s.remaining {
		s.remaining = 0
		return
	}
	s.remaining -= size.Bytes()
}
