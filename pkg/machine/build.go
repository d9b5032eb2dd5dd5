package machine

// Build returns a copy of set where every state keeps only the transitions whose
// input is registered in types. State names are preserved even when a state ends
// up with no transitions; with nil or empty types every state is emptied.
func Build(set Set, types map[string]string) Set {
	if set == nil {
		return nil
	}

	built := make(Set, 0, len(set))
	for _, n := range set {
		m := make(Machine, 0, len(n.Machine))
		for _, s := range n.Machine {
			var kept []Transition
			if s.Transitions != nil {
				kept = make([]Transition, 0, len(s.Transitions))
			}
			for _, t := range s.Transitions {
				if _, ok := types[t.Input]; ok {
					kept = append(kept, t)
				}
			}
			m = append(m, State{Name: s.Name, Transitions: kept})
		}
		built = append(built, Named{Name: n.Name, Machine: m})
	}
	return built
}
