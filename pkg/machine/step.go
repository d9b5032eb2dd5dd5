package machine

import "maps"

// Next returns the state m moves to from current on input.
func Next(m Machine, current, input string) (string, error) {
	s, ok := m.State(current)
	if !ok {
		return "", NewErrUnknownState(current)
	}
	target, ok := s.Target(input)
	if !ok {
		return "", NewErrNoTransitionAvailable(current, input)
	}
	return target, nil
}

// Step advances every machine of set that accepts input from its current state.
// Machines that do not accept input, or have no current state, keep their entry as is.
// The current map is never modified.
func Step(set Set, current map[string]string, input string) map[string]string {
	next := make(map[string]string, len(current))
	maps.Copy(next, current)

	for _, n := range set {
		state, ok := current[n.Name]
		if !ok {
			continue
		}
		if target, err := Next(n.Machine, state, input); err == nil {
			next[n.Name] = target
		}
	}
	return next
}
