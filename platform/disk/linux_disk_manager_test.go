package disk_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/archsan/archsan/platform/disk"
	"github.com/archsan/archsan/platform/disk/diskfakes"
	boshlog "github.com/cloudfoundry/bosh-utils/logger"
	fakesys "github.com/cloudfoundry/bosh-utils/system/fakes"
)

var _ = Describe("NewLinuxDiskManager", func() {
	var (
		runner *fakesys.FakeCmdRunner
		fs     *fakesys.FakeFileSystem
		logger boshlog.Logger
	)

	BeforeEach(func() {
		runner = fakesys.NewFakeCmdRunner()
		fs = fakesys.NewFakeFileSystem()
		logger = boshlog.NewLogger(boshlog.LevelNone)
	})

	It("returns a provisioner that plans a wipe without running commands", func() {
		diskManager := disk.NewLinuxDiskManager(logger, runner, fs, disk.LinuxDiskManagerOpts{Prompter: &diskfakes.FakePrompter{}})

		plan, err := diskManager.GetProvisioner().Plan(disk.BlockDevice{
			Path:       "/dev/sda",
			Wipe:       true,
			Partitions: []disk.DesiredPartition{{Device: "/dev/sda", Number: 1, Size: disk.AutoSize}},
		})
		Expect(err).ToNot(HaveOccurred())
		Expect(plan.Actions).To(HaveLen(2))
		Expect(runner.RunCommands).To(BeEmpty())
	})

	It("keeps backups in the default directory", func() {
		diskManager := disk.NewLinuxDiskManager(logger, runner, fs, disk.LinuxDiskManagerOpts{Prompter: &diskfakes.FakePrompter{}})
		Expect(diskManager.GetTableMutator().BackupPath("/dev/sda")).To(Equal("/tmp/archsan/sda_partition_table.backup"))
	})

	It("keeps backups in the configured directory", func() {
		opts := disk.LinuxDiskManagerOpts{BackupDir: "/var/lib/archsan", Prompter: &diskfakes.FakePrompter{}}

		diskManager := disk.NewLinuxDiskManager(logger, runner, fs, opts)
		Expect(diskManager.GetTableMutator().BackupPath("/dev/nvme0n1")).To(Equal("/var/lib/archsan/nvme0n1_partition_table.backup"))
	})
})
