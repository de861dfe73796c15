package settings_test

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	. "github.com/archsan/archsan/settings"
	boshlog "github.com/cloudfoundry/bosh-utils/logger"
	fakesys "github.com/cloudfoundry/bosh-utils/system/fakes"
)

var _ = Describe("settingsService", func() {
	var (
		fs      *fakesys.FakeFileSystem
		service Service
	)

	BeforeEach(func() {
		fs = fakesys.NewFakeFileSystem()
		service = NewService(fs, "/etc/archsan/disks.yml", boshlog.NewLogger(boshlog.LevelNone))
	})

	Describe("LoadSettings", func() {
		It("loads the settings file", func() {
			fs.WriteFileString("/etc/archsan/disks.yml", validSettings)

			err := service.LoadSettings()
			Expect(err).ToNot(HaveOccurred())
			Expect(service.GetSettings().BlockDevices).To(HaveLen(2))
		})

		It("returns an error when the file cannot be read", func() {
			fs.WriteFileString("/etc/archsan/disks.yml", validSettings)
			fs.RegisterReadFileError("/etc/archsan/disks.yml", errors.New("fake-read-err"))

			err := service.LoadSettings()
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("fake-read-err"))
			Expect(err.Error()).To(ContainSubstring("/etc/archsan/disks.yml"))
		})

		It("keeps the previous settings when the new ones are invalid", func() {
			fs.WriteFileString("/etc/archsan/disks.yml", validSettings)
			Expect(service.LoadSettings()).To(Succeed())

			fs.WriteFileString("/etc/archsan/disks.yml", "block-devices: []")
			err := service.LoadSettings()
			Expect(err).To(HaveOccurred())
			Expect(service.GetSettings().BlockDevices).To(HaveLen(2))
		})
	})
})
