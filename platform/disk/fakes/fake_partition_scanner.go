package fakes

import (
	boshdisk "github.com/archsan/archsan/platform/disk"
)

// FakePartitionScanner returns ScanResults in order, repeating the last one.
type FakePartitionScanner struct {
	ScanDevicePaths []string
	ScanResults     [][]boshdisk.ExistingPartition
	ScanErr         error
}

func NewFakePartitionScanner(results ...[]boshdisk.ExistingPartition) *FakePartitionScanner {
	return &FakePartitionScanner{ScanResults: results}
}

func (s *FakePartitionScanner) Scan(devicePath string) ([]boshdisk.ExistingPartition, error) {
	s.ScanDevicePaths = append(s.ScanDevicePaths, devicePath)
	if s.ScanErr != nil {
		return nil, s.ScanErr
	}

	if len(s.ScanResults) == 0 {
		return []boshdisk.ExistingPartition{}, nil
	}

	call := len(s.ScanDevicePaths) - 1
	if call >= len(s.ScanResults) {
		call = len(s.ScanResults) - 1
	}
	return s.ScanResults[call], nil
}
