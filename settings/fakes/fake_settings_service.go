package fakes

import (
	boshsettings "github.com/archsan/archsan/settings"
)

type FakeSettingsService struct {
	LoadSettingsError  error
	SettingsWereLoaded bool

	Settings boshsettings.Settings
}

func (service *FakeSettingsService) LoadSettings() error {
	service.SettingsWereLoaded = true
	return service.LoadSettingsError
}

func (service *FakeSettingsService) GetSettings() boshsettings.Settings {
	return service.Settings
}
