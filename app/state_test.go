package app

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	fakesys "github.com/cloudfoundry/bosh-utils/system/fakes"
)

var _ = Describe("SaveState", func() {
	var (
		fs            *fakesys.FakeFileSystem
		stateJSONPath string
	)

	BeforeEach(func() {
		fs = fakesys.NewFakeFileSystem()
		stateJSONPath = "/tmp/archsan/install_state.json"
	})

	It("saves the state file with the appropriate properties", func() {
		err := SaveState(fs, stateJSONPath, State{RunID: "fake-run-id", LastCompletedStage: StageDetectBootMode, BootMode: BootModeUEFI})
		Expect(err).ToNot(HaveOccurred())

		contents, err := fs.ReadFileString(stateJSONPath)
		Expect(err).ToNot(HaveOccurred())
		Expect(contents).To(MatchJSON(`{"run_id":"fake-run-id","last_completed_stage":"detect-boot-mode","boot_mode":"uefi"}`))

		state, err := LoadState(fs, stateJSONPath)
		Expect(err).ToNot(HaveOccurred())
		Expect(state.LastCompletedStage).To(Equal(StageDetectBootMode))
		Expect(state.BootMode).To(Equal(BootModeUEFI))
	})

	It("returns an error when it can't write the file", func() {
		fs.WriteFileError = errors.New("ENXIO: disk failed")

		err := SaveState(fs, stateJSONPath, State{RunID: "fake-run-id"})
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("disk failed"))
	})
})

var _ = Describe("LoadState", func() {
	var fs *fakesys.FakeFileSystem

	BeforeEach(func() {
		fs = fakesys.NewFakeFileSystem()
	})

	It("returns an error when the state file cannot be found", func() {
		state, err := LoadState(fs, "/non-existent/install_state.json")
		Expect(err).To(HaveOccurred())
		Expect(state).To(Equal(State{}))
	})

	It("returns an error when the state file is not json", func() {
		fs.WriteFileString("/install_state.json", "{")

		_, err := LoadState(fs, "/install_state.json")
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("Loading file"))
	})
})

var _ = Describe("DetectBootMode", func() {
	It("detects UEFI from the efivars directory", func() {
		fs := fakesys.NewFakeFileSystem()
		Expect(DetectBootMode(fs)).To(Equal(BootModeBIOS))

		Expect(fs.MkdirAll("/sys/firmware/efi/efivars", 0755)).To(Succeed())
		Expect(DetectBootMode(fs)).To(Equal(BootModeUEFI))
	})
})
