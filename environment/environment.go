/*
File    : lumen/environment/environment.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package environment implements Lumen's lexical scope chain: a
// parent-linked sequence of variable bindings, adapted from the teacher's
// scope.Scope but trimmed to Lumen's single var-declaration form (no
// const/let tracking) and extended with the distance-indexed GetAt/
// AssignAt/Ancestor accessors the resolver's scope-distance analysis
// exists to drive.
package environment

import (
	"github.com/akashmaji946/lumen/object"
)

// Environment is one block's variable bindings, chained to its enclosing
// scope via Parent. The global environment has a nil Parent.
type Environment struct {
	Variables map[string]object.Object
	Parent    *Environment
}

// New creates an environment nested inside parent. Pass nil for the
// global environment.
func New(parent *Environment) *Environment {
	return &Environment{
		Variables: make(map[string]object.Object),
		Parent:    parent,
	}
}

// Define binds name to value in this environment, overwriting any
// existing binding of the same name in this environment only. Lumen
// allows redeclaring a variable at the same scope (spec.md places no
// restriction on this at the global/runtime level — only the resolver's
// static pass forbids duplicate *local* declarations).
func (e *Environment) Define(name string, value object.Object) {
	e.Variables[name] = value
}

// Get looks up name in this environment and, failing that, each enclosing
// environment in turn.
func (e *Environment) Get(name string) (object.Object, bool) {
	if value, ok := e.Variables[name]; ok {
		return value, true
	}
	if e.Parent != nil {
		return e.Parent.Get(name)
	}
	return nil, false
}

// Assign updates name's binding in the nearest environment (starting from
// this one) that already declares it, without creating a new binding.
// Assigning to an undeclared name fails (ok == false); the caller is
// expected to turn that into a runtime error.
func (e *Environment) Assign(name string, value object.Object) bool {
	if _, ok := e.Variables[name]; ok {
		e.Variables[name] = value
		return true
	}
	if e.Parent != nil {
		return e.Parent.Assign(name, value)
	}
	return false
}

// Ancestor walks distance environments up the parent chain. distance 0 is
// this environment itself.
func (e *Environment) Ancestor(distance int) *Environment {
	env := e
	for i := 0; i < distance; i++ {
		env = env.Parent
	}
	return env
}

// GetAt looks up name directly in the environment distance scopes up the
// chain, as computed by the resolver, instead of walking the chain from
// scratch.
func (e *Environment) GetAt(distance int, name string) (object.Object, bool) {
	value, ok := e.Ancestor(distance).Variables[name]
	return value, ok
}

// AssignAt updates name's binding in the environment distance scopes up
// the chain.
func (e *Environment) AssignAt(distance int, name string, value object.Object) {
	e.Ancestor(distance).Variables[name] = value
}
