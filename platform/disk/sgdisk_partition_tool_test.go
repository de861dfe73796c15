package disk_test

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	. "github.com/archsan/archsan/platform/disk"
	boshlog "github.com/cloudfoundry/bosh-utils/logger"
	fakesys "github.com/cloudfoundry/bosh-utils/system/fakes"
)

const sgdiskPrintOutput = `Disk /dev/sda: 41943040 sectors, 20.0 GiB
Model: VBOX HARDDISK
Sector size (logical/physical): 512/512 bytes
Disk identifier (GUID): 8D4C9E2A-1F44-4B6C-9D0E-4A3B1C2D3E4F
Partition table holds up to 128 entries
Main partition table begins at sector 2 and ends at sector 33
First usable sector is 34, last usable sector is 41943006
Partitions will be aligned on 2048-sector boundaries
Total free space is 8390589 sectors (4.0 GiB)

Number  Start (sector)    End (sector)  Size       Code  Name
   1            2048         1050623   512.0 MiB   EF00  EFI system partition
   2         1050624        33554431   15.5 GiB    8300  Linux filesystem
`

var _ = Describe("SgdiskPartitionTool", func() {
	var (
		fakeCmdRunner *fakesys.FakeCmdRunner
		tool          PartitionTool
	)

	BeforeEach(func() {
		fakeCmdRunner = fakesys.NewFakeCmdRunner()
		logger := boshlog.NewLogger(boshlog.LevelNone)
		tool = NewSgdiskPartitionTool(logger, fakeCmdRunner)
	})

	Describe("Create", func() {
		It("creates an end-aligned partition with type and name", func() {
			err := tool.Create("/dev/sda", 1, MustParseSize("512MiB"), "EF00", "EFI")
			Expect(err).ToNot(HaveOccurred())

			Expect(fakeCmdRunner.RunCommands).To(Equal([][]string{
				{"sgdisk", "-I", "-n", "1:0:+512M", "-t", "1:ef00", "-c", "1:EFI", "/dev/sda"},
			}))
		})

		It("leaves out the name and uses the default type when not given", func() {
			err := tool.Create("/dev/nvme0n1", 3, AutoSize, "", "")
			Expect(err).ToNot(HaveOccurred())

			Expect(fakeCmdRunner.RunCommands).To(Equal([][]string{
				{"sgdisk", "-I", "-n", "3:0:0", "-t", "3:8300", "/dev/nvme0n1"},
			}))
		})

		It("returns a partition tool error with exit status and stderr", func() {
			fakeCmdRunner.AddCmdResult("sgdisk -I -n 1:0:+1G -t 1:8300 /dev/sda", fakesys.FakeCmdResult{
				Stderr:     "Could not create partition 1",
				ExitStatus: 4,
				Error:      errors.New("exit status 4"),
			})

			err := tool.Create("/dev/sda", 1, MustParseSize("1G"), "8300", "")
			Expect(err).To(HaveOccurred())

			toolErr, ok := FindError[PartitionToolError](err)
			Expect(ok).To(BeTrue())
			Expect(toolErr.ExitStatus).To(Equal(4))
			Expect(toolErr.Stderr).To(Equal("Could not create partition 1"))
			Expect(toolErr.Device).To(Equal("/dev/sda"))
		})
	})

	Describe("Delete", func() {
		It("deletes the partition by number", func() {
			Expect(tool.Delete("/dev/sda", 2)).To(Succeed())
			Expect(fakeCmdRunner.RunCommands).To(Equal([][]string{{"sgdisk", "-d", "2", "/dev/sda"}}))
		})
	})

	Describe("Wipe", func() {
		It("zaps the table and writes a new GPT", func() {
			Expect(tool.Wipe("/dev/sda")).To(Succeed())
			Expect(fakeCmdRunner.RunCommands).To(Equal([][]string{{"sgdisk", "-Z", "-o", "/dev/sda"}}))
		})
	})

	Describe("TypeCodes", func() {
		It("reads type codes of every partition in the table", func() {
			fakeCmdRunner.AddCmdResult("sgdisk -p /dev/sda", fakesys.FakeCmdResult{Stdout: sgdiskPrintOutput})

			typeCodes, err := tool.TypeCodes("/dev/sda")
			Expect(err).ToNot(HaveOccurred())
			Expect(typeCodes).To(Equal(map[int]string{1: "ef00", 2: "8300"}))
		})

		It("returns an empty map for an empty table", func() {
			fakeCmdRunner.AddCmdResult("sgdisk -p /dev/sda", fakesys.FakeCmdResult{
				Stdout: "Total free space is 41942973 sectors (20.0 GiB)\n\nNumber  Start (sector)    End (sector)  Size       Code  Name\n",
			})

			typeCodes, err := tool.TypeCodes("/dev/sda")
			Expect(err).ToNot(HaveOccurred())
			Expect(typeCodes).To(BeEmpty())
		})
	})

	Describe("FreeSpace", func() {
		It("parses the free space summary", func() {
			fakeCmdRunner.AddCmdResult("sgdisk -p /dev/sda", fakesys.FakeCmdResult{Stdout: sgdiskPrintOutput})

			free, err := tool.FreeSpace("/dev/sda")
			Expect(err).ToNot(HaveOccurred())
			Expect(free).To(Equal(MustParseSize("4G")))
		})

		It("normalizes small amounts to the largest whole unit", func() {
			fakeCmdRunner.AddCmdResult("sgdisk -p /dev/sda", fakesys.FakeCmdResult{
				Stdout: "Total free space is 6144 sectors (3072.0 KiB)\n",
			})

			free, err := tool.FreeSpace("/dev/sda")
			Expect(err).ToNot(HaveOccurred())
			Expect(free).To(Equal(MustParseSize("3M")))
		})

		It("handles free space reported in bytes", func() {
			fakeCmdRunner.AddCmdResult("sgdisk -p /dev/sda", fakesys.FakeCmdResult{
				Stdout: "Total free space is 1 sectors (512 bytes)\n",
			})

			free, err := tool.FreeSpace("/dev/sda")
			Expect(err).ToNot(HaveOccurred())
			Expect(free).To(Equal(Size{Magnitude: 0.5, Unit: UnitK}))
		})

		It("fails when the summary is missing", func() {
			fakeCmdRunner.AddCmdResult("sgdisk -p /dev/sda", fakesys.FakeCmdResult{Stdout: "garbage"})

			_, err := tool.FreeSpace("/dev/sda")
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("free space"))
		})
	})

	Describe("Verify", func() {
		It("returns the diagnostic text", func() {
			fakeCmdRunner.AddCmdResult("sgdisk -v /dev/sda", fakesys.FakeCmdResult{
				Stdout: "Caution: Partition 2 doesn't end on a 2048-sector boundary.",
			})

			diagnostic, err := tool.Verify("/dev/sda")
			Expect(err).ToNot(HaveOccurred())
			Expect(diagnostic).To(ContainSubstring("Caution: Partition 2"))
		})
	})

	Describe("Backup and Restore", func() {
		It("passes the backup file to sgdisk", func() {
			Expect(tool.Backup("/dev/sda", "/tmp/archsan/sda_partition_table.backup")).To(Succeed())
			Expect(tool.Restore("/dev/sda", "/tmp/archsan/sda_partition_table.backup")).To(Succeed())

			Expect(fakeCmdRunner.RunCommands).To(Equal([][]string{
				{"sgdisk", "--backup=/tmp/archsan/sda_partition_table.backup", "/dev/sda"},
				{"sgdisk", "--load-backup=/tmp/archsan/sda_partition_table.backup", "/dev/sda"},
			}))
		})
	})
})
