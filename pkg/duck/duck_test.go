package duck_test

import (
	"maps"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/ducks/pkg/duck"
	"github.com/dmitrymomot/ducks/pkg/machine"
	"github.com/dmitrymomot/ducks/pkg/validator"
)

type state = map[string]any

func with(s state, key string) state {
	out := maps.Clone(s)
	if out == nil {
		out = state{}
	}
	out[key] = true
	return out
}

func fetchReducer(key string) duck.Reducer[state] {
	return func(s state, action duck.Action, _ *duck.Duck[state]) state {
		switch action.Type() {
		case "FETCH":
			return with(s, key)
		default:
			return s
		}
	}
}

func TestCreate(t *testing.T) {
	t.Parallel()

	t.Run("lets the reducer reference the duck instance", func(t *testing.T) {
		t.Parallel()
		d := duck.Create(duck.Spec[state]{
			Types: []string{"FETCH"},
			Reducer: func(s state, action duck.Action, self *duck.Duck[state]) state {
				switch action.Type() {
				case self.Types["FETCH"]:
					return state{"worked": true}
				default:
					return s
				}
			},
		})

		assert.Equal(t, state{"worked": true}, d.Reduce(state{}, duck.NewAction(d.Types["FETCH"], nil)))
		assert.Equal(t, state{"x": 1}, d.Reduce(state{"x": 1}, duck.NewAction("OTHER", nil)))
	})

	t.Run("types default to identity", func(t *testing.T) {
		t.Parallel()
		d := duck.Create(duck.Spec[state]{Types: []string{"FETCH", "SAVE", "FETCH"}})
		assert.Equal(t, map[string]string{"FETCH": "FETCH", "SAVE": "SAVE"}, d.Types)
	})

	t.Run("namespace and store prefix type values", func(t *testing.T) {
		t.Parallel()
		d := duck.Create(duck.Spec[state]{
			Namespace:  "app",
			Store:      "users",
			Types:      []string{"FETCH", "SAVE"},
			TypeValues: map[string]string{"SAVE": "custom/SAVE"},
		})
		assert.Equal(t, map[string]string{"FETCH": "app/users/FETCH", "SAVE": "custom/SAVE"}, d.Types)

		name, ok := d.TypeName("app/users/FETCH")
		require.True(t, ok)
		assert.Equal(t, "FETCH", name)
		_, ok = d.TypeName("FETCH")
		assert.False(t, ok)
	})

	t.Run("nil reducer returns state unchanged", func(t *testing.T) {
		t.Parallel()
		d := duck.Create(duck.Spec[state]{})
		s := state{"a": 1}
		assert.Equal(t, s, d.Reduce(s, duck.NewAction("FETCH", nil)))
	})

	t.Run("reducer value", func(t *testing.T) {
		t.Parallel()
		d := duck.Create(duck.Spec[state]{Reducer: fetchReducer("done")})
		reduce := d.Reducer()
		assert.Equal(t, state{"done": true}, reduce(state{}, duck.NewAction("FETCH", nil)))
	})
}

func TestExtend(t *testing.T) {
	t.Parallel()

	t.Run("adds the new reducer keeping the old ones", func(t *testing.T) {
		t.Parallel()
		parent := duck.Create(duck.Spec[state]{Reducer: fetchReducer("parentDuck")})
		d := duck.Extend(parent, duck.Spec[state]{Reducer: fetchReducer("duck")})

		assert.Equal(t, state{"parentDuck": true, "duck": true}, d.Reduce(state{}, duck.NewAction("FETCH", nil)))
	})

	t.Run("the original duck reducer behaves as it did before", func(t *testing.T) {
		t.Parallel()
		parent := duck.Create(duck.Spec[state]{Reducer: fetchReducer("parentDuck")})
		before := parent.Reduce(state{}, duck.NewAction("FETCH", nil))

		duck.Extend(parent, duck.Spec[state]{Reducer: fetchReducer("duck")})

		after := parent.Reduce(state{}, duck.NewAction("FETCH", nil))
		assert.Equal(t, state{"parentDuck": true}, after)
		assert.Equal(t, before, after)
	})

	t.Run("equals applying parent then child", func(t *testing.T) {
		t.Parallel()
		parentReducer := func(s state, a duck.Action, _ *duck.Duck[state]) state {
			out := maps.Clone(s)
			out["n"] = out["n"].(int) + 1
			return out
		}
		childReducer := func(s state, a duck.Action, _ *duck.Duck[state]) state {
			out := maps.Clone(s)
			out["n"] = out["n"].(int) * 10
			return out
		}
		parent := duck.Create(duck.Spec[state]{Reducer: parentReducer})
		child := duck.Extend(parent, duck.Spec[state]{Reducer: childReducer})
		a := duck.NewAction("ANY", nil)

		expected := childReducer(parent.Reduce(state{"n": 1}, a), a, child)
		assert.Equal(t, expected, child.Reduce(state{"n": 1}, a))
		assert.Equal(t, state{"n": 20}, child.Reduce(state{"n": 1}, a))
	})

	t.Run("sibling extensions stay independent", func(t *testing.T) {
		t.Parallel()
		parent := duck.Create(duck.Spec[state]{Reducer: fetchReducer("parent")})
		a := duck.Extend(parent, duck.Spec[state]{Reducer: fetchReducer("a")})
		b := duck.Extend(parent, duck.Spec[state]{Reducer: fetchReducer("b")})
		fetch := duck.NewAction("FETCH", nil)

		assert.Equal(t, state{"parent": true, "a": true}, a.Reduce(state{}, fetch))
		assert.Equal(t, state{"parent": true, "b": true}, b.Reduce(state{}, fetch))
	})

	t.Run("child reducer sees the extended duck, parent sees itself", func(t *testing.T) {
		t.Parallel()
		var parentSelf, childSelf *duck.Duck[state]
		parent := duck.Create(duck.Spec[state]{
			Types: []string{"FETCH"},
			Reducer: func(s state, _ duck.Action, self *duck.Duck[state]) state {
				parentSelf = self
				return s
			},
		})
		child := duck.Extend(parent, duck.Spec[state]{
			Types: []string{"SAVE"},
			Reducer: func(s state, _ duck.Action, self *duck.Duck[state]) state {
				childSelf = self
				return s
			},
		})

		child.Reduce(state{}, duck.NewAction("FETCH", nil))
		assert.Same(t, parent, parentSelf)
		assert.Same(t, child, childSelf)
	})

	t.Run("merges metadata without touching the parent", func(t *testing.T) {
		t.Parallel()
		parent := duck.Create(duck.Spec[state]{
			Namespace:             "app",
			Store:                 "users",
			Types:                 []string{"FETCH"},
			InitialState:          state{"list": []any{}},
			StateMachinesPropName: "states",
			Validators: validator.Schemas{
				"app/users/FETCH": validator.Fields(nil),
			},
		})
		child := duck.Extend(parent, duck.Spec[state]{
			Store:      "admins",
			Types:      []string{"PROMOTE"},
			TypeValues: map[string]string{"FETCH": "FETCH_ADMINS"},
			Validators: validator.Schemas{
				"app/admins/PROMOTE": validator.Fields(nil),
			},
		})

		assert.Equal(t, map[string]string{"FETCH": "app/users/FETCH"}, parent.Types)
		assert.Len(t, parent.Validators, 1)

		assert.Equal(t, "admins", child.Store)
		assert.Equal(t, "app", child.Namespace)
		assert.Equal(t, "states", child.StateMachinesPropName)
		assert.Equal(t, map[string]string{"FETCH": "FETCH_ADMINS", "PROMOTE": "app/admins/PROMOTE"}, child.Types)
		assert.Len(t, child.Validators, 2)
		assert.Equal(t, parent.InitialState, child.InitialState)

		override := duck.Extend(parent, duck.Spec[state]{InitialState: state{"list": nil, "admin": true}})
		assert.Equal(t, state{"list": nil, "admin": true}, override.InitialState)
		assert.Equal(t, state{"list": []any{}}, parent.InitialState)
	})

	t.Run("a new store re-prefixes inherited types", func(t *testing.T) {
		t.Parallel()
		parent := duck.Create(duck.Spec[state]{
			Namespace: "app",
			Store:     "users",
			Types:     []string{"FETCH"},
			Validators: validator.Schemas{
				"app/users/FETCH": validator.Fields(map[string]validator.Node{
					"name": validator.Leaf(validator.NewRule(validator.Required, "Name is required")),
				}),
			},
			Reducer: func(s state, action duck.Action, self *duck.Duck[state]) state {
				if action.Type() == self.Types["FETCH"] {
					return with(s, "fetched")
				}
				return s
			},
		})
		child := duck.Extend(parent, duck.Spec[state]{Store: "admins"})

		assert.Equal(t, map[string]string{"FETCH": "app/admins/FETCH"}, child.Types)
		assert.Equal(t, state{}, child.Reduce(state{}, duck.NewAction(child.Types["FETCH"], nil)))
		assert.Equal(t, state{"fetched": true}, child.Reduce(state{}, duck.NewAction("app/users/FETCH", nil)))
		assert.Nil(t, child.Validate(duck.NewAction(child.Types["FETCH"], map[string]any{"name": ""})))
		assert.True(t, child.Validate(duck.NewAction("app/users/FETCH", map[string]any{"name": ""})).Has("name"))

		pinned := duck.Extend(parent, duck.Spec[state]{
			Store:      "admins",
			TypeValues: map[string]string{"FETCH": parent.Types["FETCH"]},
		})
		assert.Equal(t, "app/users/FETCH", pinned.Types["FETCH"])
		assert.Equal(t, state{"fetched": true}, pinned.Reduce(state{}, duck.NewAction(pinned.Types["FETCH"], nil)))
	})

	t.Run("nil parent behaves like create", func(t *testing.T) {
		t.Parallel()
		d := duck.Extend(nil, duck.Spec[state]{Reducer: fetchReducer("x")})
		assert.Equal(t, state{"x": true}, d.Reduce(nil, duck.NewAction("FETCH", nil)))
	})
}

const sessionMachines = `
auth:
  initial:
    LOGIN_SUCCESSFUL: loggedIn
  loggedIn:
    LOGOUT_SUCCESSFUL: loggedOut
  loggedOut:
    LOGIN_SUCCESSFUL: loggedIn
termsOfService:
  initial:
    AGREE_TO_TERMS: agreed
    REJECTED_TERMS: rejected
  agreed: {}
  rejected: {}
`

func TestDuckMachines(t *testing.T) {
	t.Parallel()

	machines := machine.MustParseSet([]byte(sessionMachines))

	t.Run("only registered types become inputs", func(t *testing.T) {
		t.Parallel()
		d := duck.Create(duck.Spec[state]{
			Types:    []string{"LOGIN_SUCCESSFUL", "LOGOUT_SUCCESSFUL"},
			Machines: machines,
		})
		assert.Equal(t, []string{"LOGIN_SUCCESSFUL", "LOGOUT_SUCCESSFUL"}, d.Inputs())
		assert.Equal(t, []string{"LOGIN_SUCCESSFUL", "LOGOUT_SUCCESSFUL", "AGREE_TO_TERMS", "REJECTED_TERMS"},
			machine.AllInputsOf(machines), "declared machines must not change")

		extended := duck.Extend(d, duck.Spec[state]{Types: []string{"AGREE_TO_TERMS"}})
		assert.Equal(t, []string{"LOGIN_SUCCESSFUL", "LOGOUT_SUCCESSFUL", "AGREE_TO_TERMS"}, extended.Inputs())
		assert.Len(t, d.Inputs(), 2)
	})

	t.Run("reducers branch on machine state", func(t *testing.T) {
		t.Parallel()
		d := duck.Create(duck.Spec[state]{
			Namespace:             "app",
			Store:                 "session",
			Types:                 []string{"LOGIN_SUCCESSFUL", "LOGOUT_SUCCESSFUL", "AGREE_TO_TERMS", "REJECTED_TERMS"},
			Machines:              machines,
			StateMachinesPropName: "states",
			InitialState: state{
				"states": map[string]any{"auth": "initial", "termsOfService": "initial"},
			},
			Reducer: func(s state, action duck.Action, self *duck.Duck[state]) state {
				next := maps.Clone(s)
				states := make(map[string]any)
				for name, st := range self.NextStates(s, action) {
					states[name] = st
				}
				next["states"] = states
				return next
			},
		})

		s := d.InitialState
		assert.Equal(t, map[string]string{"auth": "initial", "termsOfService": "initial"}, d.CurrentState(s))

		s = d.Reduce(s, duck.NewAction(d.Types["LOGIN_SUCCESSFUL"], nil))
		assert.Equal(t, map[string]string{"auth": "loggedIn", "termsOfService": "initial"}, d.CurrentState(s))

		s = d.Reduce(s, duck.NewAction(d.Types["REJECTED_TERMS"], nil))
		s = d.Reduce(s, duck.NewAction("UNKNOWN", nil))
		assert.Equal(t, map[string]string{"auth": "loggedIn", "termsOfService": "rejected"}, d.CurrentState(s))
	})

	t.Run("no prop name means no current state", func(t *testing.T) {
		t.Parallel()
		d := duck.Create(duck.Spec[state]{Types: []string{"LOGIN_SUCCESSFUL"}, Machines: machines})
		assert.Equal(t, map[string]string{}, d.CurrentState(state{"states": map[string]any{"auth": "initial"}}))
	})

	t.Run("child machines replace parent machines by name", func(t *testing.T) {
		t.Parallel()
		parent := duck.Create(duck.Spec[state]{
			Types:    []string{"LOGIN_SUCCESSFUL", "LOGOUT_SUCCESSFUL", "FREEZE"},
			Machines: machines,
		})
		child := duck.Extend(parent, duck.Spec[state]{
			Machines: machine.MustParseSet([]byte("auth:\n  initial:\n    FREEZE: frozen\n  frozen: {}\nextra:\n  a: {}\n")),
		})
		assert.Equal(t, []string{"auth", "termsOfService", "extra"}, child.Machines.Names())
		assert.Equal(t, []string{"FREEZE"}, child.Inputs())
		assert.Equal(t, []string{"LOGIN_SUCCESSFUL", "LOGOUT_SUCCESSFUL"}, parent.Inputs())
	})
}

func TestDuckValidation(t *testing.T) {
	t.Parallel()

	d := duck.Create(duck.Spec[state]{
		Types: []string{"SIGN_UP"},
		Validators: validator.Schemas{
			"SIGN_UP": validator.Fields(map[string]validator.Node{
				"user": validator.Fields(map[string]validator.Node{
					"age": validator.Leaf(validator.NewRule(validator.Min(18), "You are too young; please go get your parents")),
				}),
			}),
		},
	})

	t.Run("nested actions are validated and pruned", func(t *testing.T) {
		t.Parallel()
		nested := duck.NewAction("SIGN_UP", map[string]any{"user": duck.Action{"age": 11, "name": "lorem"}})
		assert.True(t, d.Validate(nested).Has("user", "age"))
		assert.Equal(t, duck.Action{"type": "SIGN_UP", "user": duck.Action{"name": "lorem"}}, d.Prune(nested))
		assert.Equal(t, 11, nested["user"].(duck.Action)["age"])
	})

	t.Run("nil duck has no machines", func(t *testing.T) {
		t.Parallel()
		var nilDuck *duck.Duck[state]
		assert.Nil(t, nilDuck.StateMachines())
		assert.Empty(t, machine.AllInputsOf(nilDuck))
	})

	action := duck.NewAction("SIGN_UP", map[string]any{"user": map[string]any{"age": 11}})
	assert.Equal(t, validator.Errors{
		"user": validator.Errors{"age": []string{"You are too young; please go get your parents"}},
	}, d.Validate(action))
	assert.Equal(t, duck.Action{"type": "SIGN_UP", "user": map[string]any{}}, d.Prune(action))
	assert.Equal(t, 11, action["user"].(map[string]any)["age"])

	assert.Nil(t, d.Validate(duck.NewAction("OTHER", map[string]any{"user": map[string]any{"age": 1}})))
}
