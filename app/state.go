package app

import (
	"encoding/json"

	bosherr "github.com/cloudfoundry/bosh-utils/errors"
	boshsys "github.com/cloudfoundry/bosh-utils/system"
)

const DefaultStateFile = "/tmp/archsan/install_state.json"

// State records install progress so that an interrupted run can resume.
type State struct {
	RunID              string   `json:"run_id"`
	LastCompletedStage string   `json:"last_completed_stage"`
	BootMode           BootMode `json:"boot_mode"`
}

func SaveState(fs boshsys.FileSystem, path string, newState State) error {
	jsonState, err := json.Marshal(newState)
	if err != nil {
		return bosherr.WrapError(err, "Marshalling state")
	}

	err = fs.WriteFile(path, jsonState)
	if err != nil {
		return bosherr.WrapError(err, "Writing file")
	}

	return nil
}

func LoadState(fs boshsys.FileSystem, path string) (State, error) {
	var state State

	bytes, err := fs.ReadFile(path)
	if err != nil {
		return state, bosherr.WrapError(err, "Reading file")
	}

	err = json.Unmarshal(bytes, &state)
	if err != nil {
		return state, bosherr.WrapError(err, "Loading file")
	}

	return state, nil
}
