package duck

import (
	"reflect"
	"slices"

	"github.com/dmitrymomot/ducks/pkg/machine"
	"github.com/dmitrymomot/ducks/pkg/sanitizer"
	"github.com/dmitrymomot/ducks/pkg/validator"
)

// Reducer computes the next state for an action. self is the duck the reducer
// belongs to, resolved when the reducer runs.
type Reducer[S any] func(state S, action Action, self *Duck[S]) S

// Spec describes a duck to create or the layer added by Extend.
type Spec[S any] struct {
	// Namespace and Store prefix generated type values as "namespace/store/TYPE"
	// when both are set.
	Namespace string
	Store     string

	// Types lists logical type names; each maps to its (prefixed) dispatch value.
	Types []string
	// TypeValues sets explicit dispatch values and wins over generated ones.
	TypeValues map[string]string

	InitialState S

	// Machines are filtered so that only inputs naming registered types remain.
	Machines              machine.Set
	StateMachinesPropName string

	// Validators are keyed by dispatch value.
	Validators validator.Schemas

	Reducer Reducer[S]
}

// Duck bundles a reducer with the metadata describing it.
// Ducks are immutable once created; Extend returns a new one.
type Duck[S any] struct {
	Namespace             string
	Store                 string
	Types                 map[string]string
	InitialState          S
	Machines              machine.Set
	StateMachinesPropName string
	Validators            validator.Schemas

	typeNames  []string
	typeValues map[string]string
	declared   machine.Set
	steps      []func(S, Action) S
}

// Create builds a duck from spec.
func Create[S any](spec Spec[S]) *Duck[S] {
	d := &Duck[S]{
		Namespace:             spec.Namespace,
		Store:                 spec.Store,
		InitialState:          spec.InitialState,
		StateMachinesPropName: spec.StateMachinesPropName,
		Validators:            spec.Validators.Merge(nil),
		typeNames:             sanitizer.Deduplicate(spec.Types),
		typeValues:            sanitizer.MergeMaps(spec.TypeValues),
		declared:              spec.Machines,
	}
	d.init()
	d.steps = appendStep(nil, spec.Reducer, d)
	return d
}

// Extend returns a new duck whose reducer runs parent's reducer and then
// child.Reducer on the result. Metadata is merged with child values winning.
// parent is left untouched and keeps reducing exactly as before.
//
// Dispatch values are regenerated for the new duck: when child sets a different
// Namespace or Store, inherited type names get the new prefix. Parent validators
// keyed by the old values no longer match, and parent reducer layers, bound to
// the parent, keep matching only the old values. Pin inherited values with
// TypeValues to keep them.
func Extend[S any](parent *Duck[S], child Spec[S]) *Duck[S] {
	if parent == nil {
		return Create(child)
	}

	d := &Duck[S]{
		Namespace:             firstNonEmpty(child.Namespace, parent.Namespace),
		Store:                 firstNonEmpty(child.Store, parent.Store),
		InitialState:          parent.InitialState,
		StateMachinesPropName: firstNonEmpty(child.StateMachinesPropName, parent.StateMachinesPropName),
		Validators:            parent.Validators.Merge(child.Validators),
		typeNames:             sanitizer.Deduplicate(append(slices.Clone(parent.typeNames), child.Types...)),
		typeValues:            sanitizer.MergeMaps(parent.typeValues, child.TypeValues),
		declared:              mergeMachines(parent.declared, child.Machines),
	}
	if !isZero(child.InitialState) {
		d.InitialState = child.InitialState
	}
	d.init()
	d.steps = appendStep(slices.Clone(parent.steps), child.Reducer, d)
	return d
}

func (d *Duck[S]) init() {
	types := make(map[string]string, len(d.typeNames)+len(d.typeValues))
	for _, name := range d.typeNames {
		types[name] = d.prefix() + name
	}
	for name, value := range d.typeValues {
		types[name] = value
	}
	d.Types = types
	d.Machines = machine.Build(d.declared, d.Types)
}

func (d *Duck[S]) prefix() string {
	if d.Namespace == "" || d.Store == "" {
		return ""
	}
	return d.Namespace + "/" + d.Store + "/"
}

// Reduce applies every reducer layer in order, parent layers first.
func (d *Duck[S]) Reduce(state S, action Action) S {
	for _, step := range d.steps {
		state = step(state, action)
	}
	return state
}

// Reducer returns Reduce as a plain function for host stores.
func (d *Duck[S]) Reducer() func(S, Action) S {
	return d.Reduce
}

// TypeName returns the logical type name registered for a dispatch value.
func (d *Duck[S]) TypeName(value string) (string, bool) {
	for name, v := range d.Types {
		if v == value {
			return name, true
		}
	}
	return "", false
}

func appendStep[S any](steps []func(S, Action) S, r Reducer[S], self *Duck[S]) []func(S, Action) S {
	if r == nil {
		return steps
	}
	return append(steps, func(state S, action Action) S {
		return r(state, action, self)
	})
}

func mergeMachines(parent, child machine.Set) machine.Set {
	if len(child) == 0 {
		return parent
	}
	out := slices.Clone(parent)
	for _, n := range child {
		i := slices.IndexFunc(out, func(p machine.Named) bool { return p.Name == n.Name })
		if i >= 0 {
			out[i] = n
			continue
		}
		out = append(out, n)
	}
	return out
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func isZero[S any](v S) bool {
	rv := reflect.ValueOf(&v).Elem()
	return rv.IsZero()
}
