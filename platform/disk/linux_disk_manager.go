package disk

import (
	"time"

	"code.cloudfoundry.org/clock"
	boshlog "github.com/cloudfoundry/bosh-utils/logger"
	boshsys "github.com/cloudfoundry/bosh-utils/system"
)

type linuxDiskManager struct {
	provisioner BlockDeviceProvisioner
	mutator     TableMutator
}

type LinuxDiskManagerOpts struct {
	BackupDir string

	// Prompter answers operator questions; nil means the terminal.
	Prompter Prompter
}

func NewLinuxDiskManager(
	logger boshlog.Logger,
	runner boshsys.CmdRunner,
	fs boshsys.FileSystem,
	opts LinuxDiskManagerOpts,
) Manager {
	prompter := opts.Prompter
	if prompter == nil {
		prompter = NewTerminalPrompter()
	}

	mounter := NewLinuxMounter(runner, NewProcMountsSearcher(fs))
	formatter := NewLinuxFormatter(runner, fs, mounter, logger)

	tool := NewSgdiskPartitionTool(logger, runner)
	scanner := NewLsblkPartitionScanner(logger, runner, tool)
	mutator := NewTableMutator(tool, fs, runner, TableMutatorOpts{BackupDir: opts.BackupDir, RetryDelay: 1 * time.Second}, logger)
	reconciler := NewReconciler(tool, prompter, logger)
	verifier := NewVerifier(tool, scanner, mutator, prompter, logger)

	return linuxDiskManager{
		provisioner: NewBlockDeviceProvisioner(scanner, reconciler, mutator, verifier, formatter, clock.NewClock(), logger),
		mutator:     mutator,
	}
}

func (m linuxDiskManager) GetProvisioner() BlockDeviceProvisioner { return m.provisioner }
func (m linuxDiskManager) GetTableMutator() TableMutator           { return m.mutator }
