package machine

// ReaderConfig tells CurrentStateReader where machine states live in application state.
type ReaderConfig struct {
	Machines              Set
	StateMachinesPropName string
}

// CurrentStateReader returns a function that resolves the current state name of
// every configured machine from application state.
//
// A nil config yields a reader that always returns an empty map. Machines missing
// from application state are omitted rather than defaulted.
func CurrentStateReader(cfg *ReaderConfig) func(appState map[string]any) map[string]string {
	if cfg == nil {
		return func(map[string]any) map[string]string {
			return map[string]string{}
		}
	}

	names := cfg.Machines.Names()
	prop := cfg.StateMachinesPropName

	return func(appState map[string]any) map[string]string {
		current := make(map[string]string, len(names))
		states := appState[prop]
		for _, name := range names {
			if state, ok := lookupState(states, name); ok {
				current[name] = state
			}
		}
		return current
	}
}

func lookupState(states any, name string) (string, bool) {
	switch s := states.(type) {
	case map[string]string:
		v, ok := s[name]
		return v, ok
	case map[string]any:
		v, ok := s[name].(string)
		return v, ok
	default:
		return "", false
	}
}
