package app

import (
	bosherr "github.com/cloudfoundry/bosh-utils/errors"

	"github.com/archsan/archsan/platform/disk"
)

type Options struct {
	// ConfigPath is the block device settings file; empty for commands that
	// only touch a single device.
	ConfigPath string

	StateFile string
	BackupDir string
	Resume    bool

	AssumeYes bool
	AssumeNo  bool
}

func (o Options) Validate() error {
	if o.AssumeYes && o.AssumeNo {
		return bosherr.Error("Only one of assume-yes and assume-no can be set")
	}
	return nil
}

// Prompter answers operator questions from the assume flags, or interactively
// when neither is set.
func (o Options) Prompter() disk.Prompter {
	switch {
	case o.AssumeYes:
		return disk.NewStaticPrompter(true)
	case o.AssumeNo:
		return disk.NewStaticPrompter(false)
	default:
		return disk.NewTerminalPrompter()
	}
}
