package machine

import "github.com/dmitrymomot/ducks/pkg/sanitizer"

// TransitionsOf returns the distinct transition targets of m in first-seen order.
// States without transitions contribute nothing, so the result is never just the state names.
func TransitionsOf(m Machine) []string {
	var targets []string
	for _, s := range m {
		for _, t := range s.Transitions {
			targets = append(targets, t.Target)
		}
	}
	return sanitizer.Deduplicate(targets)
}

// InputsOf returns the distinct inputs recognized by any state of m in first-seen order.
func InputsOf(m Machine) []string {
	var inputs []string
	for _, s := range m {
		for _, t := range s.Transitions {
			inputs = append(inputs, t.Input)
		}
	}
	return sanitizer.Deduplicate(inputs)
}

// AllInputsOf returns the ordered, duplicate-free union of InputsOf over every
// machine of the container.
func AllInputsOf(c Container) []string {
	if c == nil {
		return nil
	}

	var inputs []string
	for _, n := range c.StateMachines() {
		inputs = append(inputs, InputsOf(n.Machine)...)
	}
	return sanitizer.Deduplicate(inputs)
}
