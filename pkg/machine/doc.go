// Package machine describes declarative state machines as plain ordered data and
// provides the read-only helpers reducers need around them.
//
// A Machine maps state names to the inputs each state accepts and the state each
// input leads to. A Set groups named machines, typically one per domain concern of a
// duck (auth, terms of service, ...). Inputs are usually action types, so a machine
// advances when a matching action is dispatched.
//
// # Usage
//
//	machines := machine.MustParseSet([]byte(`
//	auth:
//	  initial:
//	    LOGIN_SUCCESSFUL: loggedIn
//	  loggedIn:
//	    LOGOUT_SUCCESSFUL: loggedOut
//	  loggedOut:
//	    LOGIN_SUCCESSFUL: loggedIn
//	`))
//
//	machine.AllInputsOf(machines)            // [LOGIN_SUCCESSFUL LOGOUT_SUCCESSFUL]
//	machines = machine.Build(machines, types) // drop inputs that are not registered types
//
//	read := machine.CurrentStateReader(&machine.ReaderConfig{
//	    Machines:              machines,
//	    StateMachinesPropName: "states",
//	})
//	read(appState) // map[auth:initial]
//
// Order matters: all listing helpers report values in first-seen declaration
// order, which is why machines are slices rather than Go maps. YAML decoding keeps
// document order.
//
// # Error Handling
//
// Introspection never fails. Next reports ErrUnknownState or an
// ErrNoTransitionAvailable value (see IsNoTransitionAvailableError); Step simply
// leaves machines that cannot move where they are. Targets that do not name a
// state of the same machine are not rejected.
//
// All functions treat their inputs as read-only and return fresh values, so they are
// safe for concurrent use as long as callers do not mutate inputs concurrently.
package machine
