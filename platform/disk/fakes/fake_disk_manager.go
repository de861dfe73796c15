package fakes

import (
	boshdisk "github.com/archsan/archsan/platform/disk"
	"github.com/archsan/archsan/platform/disk/diskfakes"
)

type FakeDiskManager struct {
	FakeProvisioner  *diskfakes.FakeBlockDeviceProvisioner
	FakeTableMutator boshdisk.TableMutator
}

func NewFakeDiskManager() *FakeDiskManager {
	return &FakeDiskManager{
		FakeProvisioner: &diskfakes.FakeBlockDeviceProvisioner{},
	}
}

func (m *FakeDiskManager) GetProvisioner() boshdisk.BlockDeviceProvisioner {
	return m.FakeProvisioner
}

func (m *FakeDiskManager) GetTableMutator() boshdisk.TableMutator {
	return m.FakeTableMutator
}
