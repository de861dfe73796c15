package app

import (
	boshsys "github.com/cloudfoundry/bosh-utils/system"
)

type BootMode string

const (
	BootModeUEFI BootMode = "uefi"
	BootModeBIOS BootMode = "bios"

	efiVarsPath = "/sys/firmware/efi/efivars"
)

func DetectBootMode(fs boshsys.FileSystem) BootMode {
	if fs.FileExists(efiVarsPath) {
		return BootModeUEFI
	}
	return BootModeBIOS
}
