package disk

import (
	"fmt"
	"regexp"
	"strconv"

	bosherr "github.com/cloudfoundry/bosh-utils/errors"
	boshlog "github.com/cloudfoundry/bosh-utils/logger"
)

const MaxVerifyAttempts = 3

// e.g. 'Caution: Partition 2 doesn't end on a 2048-sector boundary.'
var badPartitionRegexp = regexp.MustCompile(`(?i)(?:caution|problem|warning):\s+partition\s+(\d+)`)

type VerificationOutcome string

const (
	Verified             VerificationOutcome = "verified"
	ContinuedWithWarning VerificationOutcome = "continued-with-warning"
)

type VerificationResult struct {
	Outcome    VerificationOutcome
	Attempts   int
	Diagnostic string
}

type Verifier struct {
	tool     PartitionTool
	scanner  PartitionScanner
	mutator  TableMutator
	prompter Prompter
	logger   boshlog.Logger
	logTag   string
}

func NewVerifier(
	tool PartitionTool,
	scanner PartitionScanner,
	mutator TableMutator,
	prompter Prompter,
	logger boshlog.Logger,
) Verifier {
	return Verifier{
		tool:     tool,
		scanner:  scanner,
		mutator:  mutator,
		prompter: prompter,
		logger:   logger,
		logTag:   "Verifier",
	}
}

// Verify checks the table and recreates a reported bad partition at its
// default size, at most MaxVerifyAttempts checks in total. The attempt count
// is local to the call.
func (v Verifier) Verify(devicePath string) (VerificationResult, error) {
	for attempt := 1; ; attempt++ {
		v.logger.Debug(v.logTag, "Verifying partition table in %s (attempt %d)", devicePath, attempt)

		diagnostic, err := v.tool.Verify(devicePath)
		number, bad := badPartition(diagnostic)

		if err != nil && !bad {
			return VerificationResult{}, bosherr.WrapErrorf(err, "Verifying partition table of '%s'", devicePath)
		}

		if !bad {
			v.logger.Info(v.logTag, "Successfully partitioned %s", devicePath)
			return VerificationResult{Outcome: Verified, Attempts: attempt, Diagnostic: diagnostic}, nil
		}

		v.logger.Warn(v.logTag, "Bad partition ( %d ) in %s", number, devicePath)

		if attempt < MaxVerifyAttempts {
			repaired, err := v.repair(devicePath, number)
			if err != nil {
				return VerificationResult{}, err
			}
			if repaired {
				continue
			}
		}

		return v.giveUp(devicePath, number, attempt, diagnostic)
	}
}

func (v Verifier) repair(devicePath string, number int) (bool, error) {
	partitions, err := v.scanner.Scan(devicePath)
	if err != nil {
		return false, bosherr.WrapErrorf(err, "Rescanning '%s' for repair", devicePath)
	}

	for _, partition := range partitions {
		if partition.Number != number {
			continue
		}

		existing := partition
		err = v.mutator.Apply(devicePath, Action{Kind: ActionRecreate, Existing: &existing, UseDefaultSize: true})
		if err != nil {
			return false, bosherr.WrapErrorf(err, "Recreating bad partition %d of '%s'", number, devicePath)
		}
		return true, nil
	}

	v.logger.Warn(v.logTag, "Bad partition %d is not present in %s", number, devicePath)
	return false, nil
}

func (v Verifier) giveUp(devicePath string, number, attempts int, diagnostic string) (VerificationResult, error) {
	v.logger.Error(v.logTag, "Unable to correct the partition error in %s", devicePath)

	proceed, err := v.prompter.Confirm(fmt.Sprintf(
		"Unable to correct partition %d on %s. Do you want to continue?", number, devicePath))
	if err != nil {
		return VerificationResult{}, bosherr.WrapError(err, "Asking whether to continue with a bad partition")
	}

	if proceed {
		v.logger.Warn(v.logTag, "Continuing with bad partitioning of %s: %s", devicePath, diagnostic)
		return VerificationResult{Outcome: ContinuedWithWarning, Attempts: attempts, Diagnostic: diagnostic}, nil
	}

	return VerificationResult{}, VerificationExhaustedError{Device: devicePath, Partition: number, Diagnostic: diagnostic}
}

func badPartition(diagnostic string) (int, bool) {
	match := badPartitionRegexp.FindStringSubmatch(diagnostic)
	if match == nil {
		return 0, false
	}

	number, err := strconv.Atoi(match[1])
	if err != nil {
		return 0, false
	}
	return number, true
}
