package machine

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Parse decodes a single machine from YAML, keeping states and transitions in
// document order.
//
//	init:
//	  LOGIN: loggedIn
//	loggedIn:
//	  LOGOUT: init
func Parse(data []byte) (Machine, error) {
	var m Machine
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return m, nil
}

// ParseSet decodes a mapping of machine name to machine definition from YAML.
func ParseSet(data []byte) (Set, error) {
	var s Set
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	return s, nil
}

// MustParseSet is like ParseSet but panics on error. Intended for package-level definitions.
func MustParseSet(data []byte) Set {
	s, err := ParseSet(data)
	if err != nil {
		panic(fmt.Sprintf("failed to parse machines: %v", err))
	}
	return s
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (m *Machine) UnmarshalYAML(value *yaml.Node) error {
	value = resolve(value)
	if isNull(value) {
		*m = Machine{}
		return nil
	}
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("%w: line %d: machine must be a mapping of states", ErrInvalidDefinition, value.Line)
	}

	out := make(Machine, 0, len(value.Content)/2)
	states := make(map[string]struct{}, len(value.Content)/2)
	for i := 0; i+1 < len(value.Content); i += 2 {
		key := value.Content[i]
		name := key.Value
		if _, dup := states[name]; dup {
			return fmt.Errorf("%w: line %d: state '%s' is already defined", ErrInvalidDefinition, key.Line, name)
		}
		states[name] = struct{}{}
		body := resolve(value.Content[i+1])

		state := State{Name: name, Transitions: []Transition{}}
		switch {
		case isNull(body):
		case body.Kind == yaml.MappingNode:
			inputs := make(map[string]struct{}, len(body.Content)/2)
			for j := 0; j+1 < len(body.Content); j += 2 {
				input := body.Content[j]
				if _, dup := inputs[input.Value]; dup {
					return fmt.Errorf("%w: line %d: input '%s' is already defined in state '%s'",
						ErrInvalidDefinition, input.Line, input.Value, name)
				}
				inputs[input.Value] = struct{}{}

				target := resolve(body.Content[j+1])
				if target == nil || target.Kind != yaml.ScalarNode || isNull(target) {
					return fmt.Errorf("%w: line %d: target of '%s' in state '%s' must be a state name",
						ErrInvalidDefinition, input.Line, input.Value, name)
				}
				state.Transitions = append(state.Transitions, Transition{
					Input:  input.Value,
					Target: target.Value,
				})
			}
		default:
			return fmt.Errorf("%w: line %d: state '%s' must be a mapping of inputs", ErrInvalidDefinition, body.Line, name)
		}
		out = append(out, state)
	}

	*m = out
	return nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (s *Set) UnmarshalYAML(value *yaml.Node) error {
	value = resolve(value)
	if isNull(value) {
		*s = Set{}
		return nil
	}
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("%w: line %d: machines must be a mapping of names", ErrInvalidDefinition, value.Line)
	}

	out := make(Set, 0, len(value.Content)/2)
	names := make(map[string]struct{}, len(value.Content)/2)
	for i := 0; i+1 < len(value.Content); i += 2 {
		key := value.Content[i]
		if _, dup := names[key.Value]; dup {
			return fmt.Errorf("%w: line %d: machine '%s' is already defined", ErrInvalidDefinition, key.Line, key.Value)
		}
		names[key.Value] = struct{}{}

		var m Machine
		if err := m.UnmarshalYAML(value.Content[i+1]); err != nil {
			return fmt.Errorf("machine '%s': %w", value.Content[i].Value, err)
		}
		out = append(out, Named{Name: value.Content[i].Value, Machine: m})
	}

	*s = out
	return nil
}

func resolve(n *yaml.Node) *yaml.Node {
	for n != nil && n.Kind == yaml.AliasNode {
		n = n.Alias
	}
	return n
}

func isNull(n *yaml.Node) bool {
	return n == nil || (n.Kind == yaml.ScalarNode && n.Tag == "!!null")
}
