package disk

import "fmt"

type ActionKind string

const (
	ActionKeep     ActionKind = "keep"
	ActionRecreate ActionKind = "recreate"
	ActionCreate   ActionKind = "create"
	ActionDelete   ActionKind = "delete"
	ActionWipe     ActionKind = "wipe"
	ActionFail     ActionKind = "fail"
)

// Action is one step of a Plan. Existing is set for keep, recreate and
// delete; Desired for keep, recreate and create; Err only for fail.
type Action struct {
	Kind           ActionKind
	Existing       *ExistingPartition
	Desired        *DesiredPartition
	UseDefaultSize bool
	Err            error
}

func KeepAction(existing ExistingPartition, desired DesiredPartition) Action {
	return Action{Kind: ActionKeep, Existing: &existing, Desired: &desired}
}

func RecreateAction(existing ExistingPartition, desired DesiredPartition, useDefaultSize bool) Action {
	return Action{Kind: ActionRecreate, Existing: &existing, Desired: &desired, UseDefaultSize: useDefaultSize}
}

func CreateAction(desired DesiredPartition) Action {
	return Action{Kind: ActionCreate, Desired: &desired}
}

func DeleteAction(existing ExistingPartition) Action {
	return Action{Kind: ActionDelete, Existing: &existing}
}

func WipeAction() Action {
	return Action{Kind: ActionWipe}
}

func FailAction(desired DesiredPartition, err error) Action {
	return Action{Kind: ActionFail, Desired: &desired, Err: err}
}

// Number is the partition number the action touches, 0 for wipe.
func (a Action) Number() int {
	switch {
	case a.Desired != nil:
		return a.Desired.Number
	case a.Existing != nil:
		return a.Existing.Number
	default:
		return 0
	}
}

func (a Action) String() string {
	switch a.Kind {
	case ActionWipe:
		return "wipe"
	case ActionFail:
		return fmt.Sprintf("fail partition %d: %s", a.Number(), a.Err)
	case ActionRecreate:
		return fmt.Sprintf("recreate partition %d (default size: %t)", a.Number(), a.UseDefaultSize)
	default:
		return fmt.Sprintf("%s partition %d", a.Kind, a.Number())
	}
}

type Plan struct {
	Device  string
	Actions []Action
}

// Failure returns the error of the first fail action, if any.
func (p Plan) Failure() error {
	for _, action := range p.Actions {
		if action.Kind == ActionFail {
			return action.Err
		}
	}
	return nil
}

func (p Plan) Mutates() bool {
	for _, action := range p.Actions {
		if action.Kind != ActionKeep && action.Kind != ActionFail {
			return true
		}
	}
	return false
}
