package fakes

import (
	"fmt"

	boshdisk "github.com/archsan/archsan/platform/disk"
)

// FakePartitionTool records every call in Calls using sgdisk-like spellings,
// e.g. "create 1 +512m ef00 EFI" or "delete 2".
type FakePartitionTool struct {
	Calls []string

	CreateErr  error
	DeleteErrs map[int]error
	WipeErr    error

	TypeCodesResult map[int]string
	TypeCodesErr    error

	FreeSpaceCalls  int
	FreeSpaceResult boshdisk.Size
	FreeSpaceErr    error

	// VerifyResults are returned in order; the last one repeats.
	VerifyCalls   int
	VerifyResults []string
	VerifyErr     error

	BackupPaths  []string
	BackupErr    error
	RestorePaths []string
	RestoreErr   error
}

func NewFakePartitionTool() *FakePartitionTool {
	return &FakePartitionTool{
		DeleteErrs:      map[int]error{},
		TypeCodesResult: map[int]string{},
	}
}

func (t *FakePartitionTool) Create(devicePath string, number int, size boshdisk.Size, typeCode, name string) error {
	t.Calls = append(t.Calls, fmt.Sprintf("create %d %s %s %s", number, size, boshdisk.NormalizeTypeCode(typeCode), name))
	return t.CreateErr
}

func (t *FakePartitionTool) Delete(devicePath string, number int) error {
	t.Calls = append(t.Calls, fmt.Sprintf("delete %d", number))
	return t.DeleteErrs[number]
}

func (t *FakePartitionTool) Wipe(devicePath string) error {
	t.Calls = append(t.Calls, "wipe")
	return t.WipeErr
}

func (t *FakePartitionTool) TypeCodes(devicePath string) (map[int]string, error) {
	return t.TypeCodesResult, t.TypeCodesErr
}

func (t *FakePartitionTool) FreeSpace(devicePath string) (boshdisk.Size, error) {
	t.FreeSpaceCalls++
	return t.FreeSpaceResult, t.FreeSpaceErr
}

func (t *FakePartitionTool) Verify(devicePath string) (string, error) {
	t.VerifyCalls++
	t.Calls = append(t.Calls, "verify")

	if len(t.VerifyResults) == 0 {
		return "No problems found.", t.VerifyErr
	}

	call := t.VerifyCalls - 1
	if call >= len(t.VerifyResults) {
		call = len(t.VerifyResults) - 1
	}
	return t.VerifyResults[call], t.VerifyErr
}

func (t *FakePartitionTool) Backup(devicePath, backupPath string) error {
	t.Calls = append(t.Calls, "backup")
	t.BackupPaths = append(t.BackupPaths, backupPath)
	return t.BackupErr
}

func (t *FakePartitionTool) Restore(devicePath, backupPath string) error {
	t.Calls = append(t.Calls, "restore")
	t.RestorePaths = append(t.RestorePaths, backupPath)
	return t.RestoreErr
}

// MutatingCalls drops verify, backup and restore from Calls.
func (t *FakePartitionTool) MutatingCalls() []string {
	var calls []string
	for _, call := range t.Calls {
		switch call {
		case "verify", "backup", "restore":
		default:
			calls = append(calls, call)
		}
	}
	return calls
}
