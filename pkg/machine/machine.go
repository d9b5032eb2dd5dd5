package machine

// Transition maps an input to the state it leads to.
type Transition struct {
	Input  string
	Target string
}

// State is a named state with its outgoing transitions in declaration order.
type State struct {
	Name        string
	Transitions []Transition
}

// Target returns the next state for input, if the state declares one.
func (s State) Target(input string) (string, bool) {
	for _, t := range s.Transitions {
		if t.Input == input {
			return t.Target, true
		}
	}
	return "", false
}

// Machine is an ordered mapping of state name to its transitions.
// Targets are expected to name states of the same machine but this is not enforced.
type Machine []State

// State looks up a state by name.
func (m Machine) State(name string) (State, bool) {
	for _, s := range m {
		if s.Name == name {
			return s, true
		}
	}
	return State{}, false
}

// StateNames returns state names in declaration order.
func (m Machine) StateNames() []string {
	names := make([]string, 0, len(m))
	for _, s := range m {
		names = append(names, s.Name)
	}
	return names
}

// Named binds a machine to its name inside a Set.
type Named struct {
	Name    string
	Machine Machine
}

// Set is an ordered container of named machines.
type Set []Named

// Machine looks up a machine by name.
func (s Set) Machine(name string) (Machine, bool) {
	for _, n := range s {
		if n.Name == name {
			return n.Machine, true
		}
	}
	return nil, false
}

// Names returns machine names in container order.
func (s Set) Names() []string {
	names := make([]string, 0, len(s))
	for _, n := range s {
		names = append(names, n.Name)
	}
	return names
}

// StateMachines lets a bare Set be used wherever a Container is expected.
func (s Set) StateMachines() Set {
	return s
}

// Container is anything exposing a set of state machines, such as a duck.
type Container interface {
	StateMachines() Set
}
