package fakes

import (
	boshdisk "github.com/archsan/archsan/platform/disk"
)

type FakeFormatter struct {
	FormatCalled     bool
	FormatPartitions []boshdisk.DesiredPartition
	FormatError      error

	MountCalled     bool
	MountPartitions []boshdisk.DesiredPartition
	MountError      error
}

func NewFakeFormatter() *FakeFormatter {
	return &FakeFormatter{}
}

func (f *FakeFormatter) Format(partition boshdisk.DesiredPartition) error {
	f.FormatCalled = true
	f.FormatPartitions = append(f.FormatPartitions, partition)
	return f.FormatError
}

func (f *FakeFormatter) Mount(partition boshdisk.DesiredPartition) error {
	f.MountCalled = true
	f.MountPartitions = append(f.MountPartitions, partition)
	return f.MountError
}
