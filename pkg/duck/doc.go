// Package duck bundles a reducer with the action types, state machines and
// payload validators that belong to it.
//
// Create builds a Duck from a Spec. The reducer receives the duck itself as its
// third argument, so it can switch on self.Types without referring to a package
// variable that is still being initialised:
//
//	users := duck.Create(duck.Spec[State]{
//	    Namespace: "app",
//	    Store:     "users",
//	    Types:     []string{"FETCH"},
//	    Reducer: func(s State, a duck.Action, self *duck.Duck[State]) State {
//	        if a.Type() == self.Types["FETCH"] { // "app/users/FETCH"
//	            ...
//	        }
//	        return s
//	    },
//	})
//
// Extend layers another reducer on top of an existing duck. The new duck runs
// the parent's reducer first and then its own; the parent is not modified and
// keeps reducing exactly as before. Types, validators and machines are merged
// with the child's values taking precedence.
//
// Machines passed in a Spec are filtered with machine.Build so that only inputs
// naming registered types remain. CurrentState and NextStates read and advance
// them from application state; Validate and Prune apply the duck's validators
// to an action.
package duck
