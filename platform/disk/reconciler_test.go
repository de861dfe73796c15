package disk_test

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	. "github.com/archsan/archsan/platform/disk"
	"github.com/archsan/archsan/platform/disk/diskfakes"
	"github.com/archsan/archsan/platform/disk/fakes"
	boshlog "github.com/cloudfoundry/bosh-utils/logger"
)

func existingPartition(number int, size string, typeCode string) ExistingPartition {
	return ExistingPartition{
		Device:   "/dev/sda",
		Number:   number,
		Path:     PartitionPath("/dev/sda", number),
		Size:     MustParseSize(size),
		TypeCode: typeCode,
	}
}

func desiredPartition(number int, size string, typeCode string) DesiredPartition {
	return DesiredPartition{
		Device:   "/dev/sda",
		Number:   number,
		Size:     MustParseSize(size),
		TypeCode: typeCode,
	}
}

func actionKinds(plan Plan) []ActionKind {
	kinds := make([]ActionKind, 0, len(plan.Actions))
	for _, action := range plan.Actions {
		kinds = append(kinds, action.Kind)
	}
	return kinds
}

var _ = Describe("Reconciler", func() {
	var (
		fakeTool     *fakes.FakePartitionTool
		fakePrompter *diskfakes.FakePrompter
		reconciler   Reconciler
		existing     []ExistingPartition
	)

	BeforeEach(func() {
		fakeTool = fakes.NewFakePartitionTool()
		fakeTool.FreeSpaceResult = MustParseSize("10G")
		fakePrompter = &diskfakes.FakePrompter{}
		reconciler = NewReconciler(fakeTool, fakePrompter, boshlog.NewLogger(boshlog.LevelNone))

		existing = []ExistingPartition{
			existingPartition(1, "512M", "ef00"),
			existingPartition(2, "8G", "8300"),
		}
	})

	Describe("WipePlan", func() {
		It("wipes and then creates every desired partition in order", func() {
			desired := []DesiredPartition{desiredPartition(1, "512M", "ef00"), desiredPartition(2, "0", "8300")}

			plan := reconciler.WipePlan("/dev/sda", desired)
			Expect(plan.Device).To(Equal("/dev/sda"))
			Expect(actionKinds(plan)).To(Equal([]ActionKind{ActionWipe, ActionCreate, ActionCreate}))
			Expect(plan.Actions[1].Desired.Number).To(Equal(1))
			Expect(plan.Actions[2].Desired.Number).To(Equal(2))
		})
	})

	Context("when the desired partition matches an existing one", func() {
		It("keeps it", func() {
			plan, err := reconciler.Reconcile("/dev/sda", existing, []DesiredPartition{desiredPartition(1, "512MiB", "EF00")})
			Expect(err).ToNot(HaveOccurred())
			Expect(actionKinds(plan)).To(Equal([]ActionKind{ActionKeep}))
		})

		It("recreates it when overwrite is set", func() {
			desired := desiredPartition(1, "512M", "ef00")
			desired.Overwrite = true

			plan, err := reconciler.Reconcile("/dev/sda", existing, []DesiredPartition{desired})
			Expect(err).ToNot(HaveOccurred())
			Expect(plan.Actions).To(HaveLen(1))
			Expect(plan.Actions[0].Kind).To(Equal(ActionRecreate))
			Expect(plan.Actions[0].UseDefaultSize).To(BeFalse())
		})

		It("keeps every partition when reconciling a just-scanned table again", func() {
			desired := []DesiredPartition{desiredPartition(1, "512M", "ef00"), desiredPartition(2, "8G", "8300")}

			plan, err := reconciler.Reconcile("/dev/sda", existing, desired)
			Expect(err).ToNot(HaveOccurred())
			Expect(actionKinds(plan)).To(Equal([]ActionKind{ActionKeep, ActionKeep}))
			Expect(plan.Mutates()).To(BeFalse())
			Expect(fakeTool.FreeSpaceCalls).To(Equal(0))
		})

		It("keeps partitions declared in a smaller unit than lsblk reports", func() {
			existing = []ExistingPartition{
				existingPartition(1, "512M", "ef00"),
				{Device: "/dev/sda", Number: 2, Path: "/dev/sda2", Size: SizeFromBytes(2 * 1024 * 1024 * 1024), TypeCode: "8200"},
			}
			desired := []DesiredPartition{desiredPartition(1, "512MiB", "ef00"), desiredPartition(2, "2048MiB", "8200")}

			plan, err := reconciler.Reconcile("/dev/sda", existing, desired)
			Expect(err).ToNot(HaveOccurred())
			Expect(actionKinds(plan)).To(Equal([]ActionKind{ActionKeep, ActionKeep}))
		})
	})

	Context("when the desired size is auto and the number exists", func() {
		It("recreates at default size with overwrite", func() {
			desired := desiredPartition(2, "0", "8300")
			desired.Overwrite = true

			plan, err := reconciler.Reconcile("/dev/sda", existing, []DesiredPartition{desired})
			Expect(err).ToNot(HaveOccurred())
			Expect(plan.Actions[0].Kind).To(Equal(ActionRecreate))
			Expect(plan.Actions[0].UseDefaultSize).To(BeTrue())
		})

		It("keeps the partition when only the size differs", func() {
			plan, err := reconciler.Reconcile("/dev/sda", existing, []DesiredPartition{desiredPartition(2, "0", "8300")})
			Expect(err).ToNot(HaveOccurred())
			Expect(actionKinds(plan)).To(Equal([]ActionKind{ActionKeep}))
			Expect(fakePrompter.ConfirmCallCount()).To(Equal(0))
		})

		It("recreates when other attributes differ and the operator confirms", func() {
			fakePrompter.ConfirmReturns(true, nil)

			plan, err := reconciler.Reconcile("/dev/sda", existing, []DesiredPartition{desiredPartition(2, "0", "8200")})
			Expect(err).ToNot(HaveOccurred())
			Expect(fakePrompter.ConfirmCallCount()).To(Equal(1))
			Expect(fakePrompter.ConfirmArgsForCall(0)).To(ContainSubstring("Partition 2 of /dev/sda"))
			Expect(plan.Actions[0].Kind).To(Equal(ActionRecreate))
			Expect(plan.Actions[0].UseDefaultSize).To(BeFalse())
		})

		It("fails when other attributes differ and the operator declines", func() {
			fakePrompter.ConfirmReturns(false, nil)

			plan, err := reconciler.Reconcile("/dev/sda", existing, []DesiredPartition{desiredPartition(2, "0", "8200")})
			Expect(err).ToNot(HaveOccurred())
			Expect(plan.Failure()).To(Equal(PartitionConflictError{
				Device: "/dev/sda", Partition: 2, Reason: ConflictAmbiguousParameters,
			}))
		})

		It("returns prompt errors", func() {
			fakePrompter.ConfirmReturns(false, errors.New("fake-prompt-err"))

			_, err := reconciler.Reconcile("/dev/sda", existing, []DesiredPartition{desiredPartition(2, "0", "8200")})
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("fake-prompt-err"))
		})
	})

	Context("when the desired size is bigger than the existing one", func() {
		It("fails as too big when partitions exist after it", func() {
			desired := desiredPartition(1, "1G", "ef00")
			desired.Overwrite = true

			plan, err := reconciler.Reconcile("/dev/sda", existing, []DesiredPartition{desired})
			Expect(err).ToNot(HaveOccurred())
			Expect(plan.Failure()).To(Equal(PartitionConflictError{Device: "/dev/sda", Partition: 1, Reason: ConflictTooBig}))
		})

		It("recreates the last partition with overwrite", func() {
			desired := desiredPartition(2, "9G", "8300")
			desired.Overwrite = true

			plan, err := reconciler.Reconcile("/dev/sda", existing, []DesiredPartition{desired})
			Expect(err).ToNot(HaveOccurred())
			Expect(plan.Actions[0].Kind).To(Equal(ActionRecreate))
		})

		It("fails on the last partition without overwrite", func() {
			plan, err := reconciler.Reconcile("/dev/sda", existing, []DesiredPartition{desiredPartition(2, "9G", "8300")})
			Expect(err).ToNot(HaveOccurred())
			Expect(plan.Failure()).To(Equal(PartitionConflictError{Device: "/dev/sda", Partition: 2, Reason: ConflictNoOverwrite}))
		})

		It("ranks units over magnitudes", func() {
			// 600K is ranked below 512M, so this is a shrink and not too big.
			desired := desiredPartition(1, "600K", "ef00")
			desired.Overwrite = true

			plan, err := reconciler.Reconcile("/dev/sda", existing, []DesiredPartition{desired})
			Expect(err).ToNot(HaveOccurred())
			Expect(actionKinds(plan)).To(Equal([]ActionKind{ActionRecreate}))
		})
	})

	Context("when the desired size is smaller than the existing one", func() {
		It("recreates with overwrite", func() {
			desired := desiredPartition(2, "4G", "8300")
			desired.Overwrite = true

			plan, err := reconciler.Reconcile("/dev/sda", existing, []DesiredPartition{desired})
			Expect(err).ToNot(HaveOccurred())
			Expect(plan.Actions[0].Kind).To(Equal(ActionRecreate))
		})

		It("fails without overwrite", func() {
			plan, err := reconciler.Reconcile("/dev/sda", existing, []DesiredPartition{desiredPartition(1, "256M", "ef00")})
			Expect(err).ToNot(HaveOccurred())
			Expect(plan.Failure()).To(Equal(PartitionConflictError{Device: "/dev/sda", Partition: 1, Reason: ConflictNoOverwrite}))
		})
	})

	Context("when the sizes compare equal but the type differs", func() {
		It("keeps the partition without overwrite", func() {
			plan, err := reconciler.Reconcile("/dev/sda", existing, []DesiredPartition{desiredPartition(2, "8G", "8200")})
			Expect(err).ToNot(HaveOccurred())
			Expect(actionKinds(plan)).To(Equal([]ActionKind{ActionKeep}))
		})

		It("recreates the partition with overwrite", func() {
			desired := desiredPartition(2, "8G", "8200")
			desired.Overwrite = true

			plan, err := reconciler.Reconcile("/dev/sda", existing, []DesiredPartition{desired})
			Expect(err).ToNot(HaveOccurred())
			Expect(actionKinds(plan)).To(Equal([]ActionKind{ActionRecreate}))
		})
	})

	Context("when the partition number does not exist", func() {
		It("fails when the partition is required to exist", func() {
			desired := desiredPartition(3, "1G", "8300")
			desired.CheckExists = true

			plan, err := reconciler.Reconcile("/dev/sda", existing, []DesiredPartition{desired})
			Expect(err).ToNot(HaveOccurred())
			Expect(plan.Failure()).To(Equal(MissingPartitionError{Device: "/dev/sda", Partition: 3}))
			Expect(fakeTool.FreeSpaceCalls).To(Equal(0))
		})

		It("creates it when there is space", func() {
			plan, err := reconciler.Reconcile("/dev/sda", existing, []DesiredPartition{desiredPartition(3, "1G", "8300")})
			Expect(err).ToNot(HaveOccurred())
			Expect(actionKinds(plan)).To(Equal([]ActionKind{ActionCreate}))
		})

		It("creates an auto sized partition when at least the minimum size is free", func() {
			fakeTool.FreeSpaceResult = MustParseSize("2M")

			plan, err := reconciler.Reconcile("/dev/sda", existing, []DesiredPartition{desiredPartition(3, "0", "8300")})
			Expect(err).ToNot(HaveOccurred())
			Expect(actionKinds(plan)).To(Equal([]ActionKind{ActionCreate}))
		})

		It("fails with no space for an auto sized partition below the minimum size", func() {
			fakeTool.FreeSpaceResult = MustParseSize("1.5M")

			plan, err := reconciler.Reconcile("/dev/sda", existing, []DesiredPartition{desiredPartition(3, "0", "8300")})
			Expect(err).ToNot(HaveOccurred())

			noSpaceErr, ok := plan.Failure().(NoSpaceError)
			Expect(ok).To(BeTrue())
			Expect(noSpaceErr.Partition).To(Equal(3))
			Expect(noSpaceErr.Device).To(Equal("/dev/sda"))
		})

		It("fails with no space when the requested size is larger than what is free", func() {
			fakeTool.FreeSpaceResult = MustParseSize("1G")

			plan, err := reconciler.Reconcile("/dev/sda", existing, []DesiredPartition{desiredPartition(3, "2G", "8300")})
			Expect(err).ToNot(HaveOccurred())
			Expect(plan.Failure()).To(BeAssignableToTypeOf(NoSpaceError{}))
		})

		It("queries free space once and accounts for earlier creates", func() {
			fakeTool.FreeSpaceResult = MustParseSize("3G")

			desired := []DesiredPartition{
				desiredPartition(3, "2G", "8300"),
				desiredPartition(4, "2G", "8300"),
			}

			plan, err := reconciler.Reconcile("/dev/sda", existing, desired)
			Expect(err).ToNot(HaveOccurred())
			Expect(actionKinds(plan)).To(Equal([]ActionKind{ActionCreate, ActionFail}))
			Expect(fakeTool.FreeSpaceCalls).To(Equal(1))
		})

		It("leaves no space after an auto sized create", func() {
			desired := []DesiredPartition{
				desiredPartition(3, "0", "8300"),
				desiredPartition(4, "0", "8300"),
			}

			plan, err := reconciler.Reconcile("/dev/sda", existing, desired)
			Expect(err).ToNot(HaveOccurred())
			Expect(actionKinds(plan)).To(Equal([]ActionKind{ActionCreate, ActionFail}))
		})

		It("returns free space query errors", func() {
			fakeTool.FreeSpaceErr = errors.New("fake-free-space-err")

			_, err := reconciler.Reconcile("/dev/sda", existing, []DesiredPartition{desiredPartition(3, "1G", "8300")})
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("fake-free-space-err"))
		})
	})

	It("never touches the device", func() {
		desired := desiredPartition(2, "4G", "8300")
		desired.Overwrite = true

		_, err := reconciler.Reconcile("/dev/sda", existing, []DesiredPartition{desired, desiredPartition(3, "1G", "8300")})
		Expect(err).ToNot(HaveOccurred())
		Expect(fakeTool.MutatingCalls()).To(BeEmpty())
	})
})
