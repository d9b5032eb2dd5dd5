package duck

import (
	"github.com/dmitrymomot/ducks/pkg/machine"
	"github.com/dmitrymomot/ducks/pkg/validator"
)

// StateMachines implements machine.Container. A nil duck has no machines.
func (d *Duck[S]) StateMachines() machine.Set {
	if d == nil {
		return nil
	}
	return d.Machines
}

// Inputs returns every input recognized by the duck's machines.
func (d *Duck[S]) Inputs() []string {
	return machine.AllInputsOf(d)
}

// CurrentState reads the state of each machine from application state.
// Without a StateMachinesPropName the result is always empty.
func (d *Duck[S]) CurrentState(appState map[string]any) map[string]string {
	var cfg *machine.ReaderConfig
	if d.StateMachinesPropName != "" {
		cfg = &machine.ReaderConfig{
			Machines:              d.Machines,
			StateMachinesPropName: d.StateMachinesPropName,
		}
	}
	return machine.CurrentStateReader(cfg)(appState)
}

// NextStates returns the machine states application state moves to when
// action is reduced. Machine inputs are logical type names, so the action's
// dispatch value is mapped back before stepping.
func (d *Duck[S]) NextStates(appState map[string]any, action Action) map[string]string {
	current := d.CurrentState(appState)
	input, ok := d.TypeName(action.Type())
	if !ok {
		return current
	}
	return machine.Step(d.Machines, current, input)
}

// Validate checks action against the duck's validators. nil means valid.
func (d *Duck[S]) Validate(action Action) validator.Errors {
	return validator.Validate(d.Validators, action)
}

// Prune returns a copy of action without the fields failing validation.
func (d *Duck[S]) Prune(action Action) Action {
	return validator.Prune(d.Validators, action)
}
