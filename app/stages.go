package app

import (
	"code.cloudfoundry.org/clock"
	boshlog "github.com/cloudfoundry/bosh-utils/logger"
	boshsys "github.com/cloudfoundry/bosh-utils/system"
	boshuuid "github.com/cloudfoundry/bosh-utils/uuid"
	"github.com/pkg/errors"
)

const (
	StageDetectBootMode        = "detect-boot-mode"
	StageProvisionBlockDevices = "provision-block-devices"
)

type Stage struct {
	Name string
	Run  func(state *State) error
}

// StageRunner runs stages in order and saves the state after each one.
type StageRunner struct {
	stages        []Stage
	fs            boshsys.FileSystem
	statePath     string
	uuidGenerator boshuuid.Generator
	timeService   clock.Clock
	logger        boshlog.Logger
	logTag        string
}

func NewStageRunner(
	stages []Stage,
	fs boshsys.FileSystem,
	statePath string,
	uuidGenerator boshuuid.Generator,
	timeService clock.Clock,
	logger boshlog.Logger,
) StageRunner {
	return StageRunner{
		stages:        stages,
		fs:            fs,
		statePath:     statePath,
		uuidGenerator: uuidGenerator,
		timeService:   timeService,
		logger:        logger,
		logTag:        "StageRunner",
	}
}

// Run executes every stage. With resume, stages up to and including the last
// completed one of the saved state are skipped.
func (r StageRunner) Run(resume bool) (State, error) {
	state, err := r.initialState(resume)
	if err != nil {
		return state, err
	}

	firstStage := 0
	if resume {
		firstStage = r.stageIndex(state.LastCompletedStage) + 1
	}

	for i, stage := range r.stages {
		if i < firstStage {
			r.logger.Info(r.logTag, "Skipping completed stage '%s'", stage.Name)
			continue
		}

		started := r.timeService.Now()
		r.logger.Info(r.logTag, "Running stage '%s' (run %s)", stage.Name, state.RunID)

		err = stage.Run(&state)
		if err != nil {
			return state, errors.Wrapf(err, "stage %s", stage.Name)
		}

		state.LastCompletedStage = stage.Name
		err = SaveState(r.fs, r.statePath, state)
		if err != nil {
			return state, errors.Wrapf(err, "saving state after stage %s", stage.Name)
		}

		r.logger.Info(r.logTag, "Finished stage '%s' in %s", stage.Name, r.timeService.Since(started))
	}

	return state, nil
}

func (r StageRunner) initialState(resume bool) (State, error) {
	if resume && r.fs.FileExists(r.statePath) {
		state, err := LoadState(r.fs, r.statePath)
		if err != nil {
			return state, errors.Wrap(err, "loading install state")
		}

		r.logger.Info(r.logTag, "Resuming run %s after stage '%s'", state.RunID, state.LastCompletedStage)
		return state, nil
	}

	runID, err := r.uuidGenerator.Generate()
	if err != nil {
		return State{}, errors.Wrap(err, "generating run id")
	}

	return State{RunID: runID}, nil
}

// stageIndex is -1 for names no stage has.
func (r StageRunner) stageIndex(name string) int {
	for i, stage := range r.stages {
		if stage.Name == name {
			return i
		}
	}

	if name != "" {
		r.logger.Warn(r.logTag, "Unknown completed stage '%s', running every stage", name)
	}
	return -1
}
