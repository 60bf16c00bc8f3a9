/*
File    : achronyme/environment/environment.go

Environment implements the persistent, lexically-scoped frame chain the
evaluator binds names against. It is a direct generalization of
go-mix's scope.Scope to value.Value bindings: LookUp walks the frame
chain inner-to-outer, Bind always writes the current frame, and Copy
snapshots the current frame's bindings into a fresh map so a lambda
captured at one point in time is immune to later let-rebindings of the
same name in the defining frame.
*/
package environment

import "github.com/achronyme/core/value"

// Environment is one frame of the lexical scope chain.
type Environment struct {
	Bindings map[string]value.Value
	Parent   *Environment
}

// New creates an environment with the given parent (nil for the root).
func New(parent *Environment) *Environment {
	return &Environment{
		Bindings: make(map[string]value.Value),
		Parent:   parent,
	}
}

// LookUp searches this frame and, failing that, every enclosing frame
// in order, returning the first binding found.
func (e *Environment) LookUp(name string) (value.Value, bool) {
	if v, ok := e.Bindings[name]; ok {
		return v, true
	}
	if e.Parent != nil {
		return e.Parent.LookUp(name)
	}
	return nil, false
}

// Bind creates or overwrites a binding in this frame only.
func (e *Environment) Bind(name string, v value.Value) {
	e.Bindings[name] = v
}

// Copy snapshots this frame into a new Environment sharing the same
// Parent pointer. Subsequent Bind calls on the original frame write a
// new map entry there and leave the copy's bindings untouched, which is
// exactly the property a closure needs: a lambda captures its defining
// frame's bindings as of the moment it is created, not a live view of
// whatever that frame holds later.
//
//	let x = 5
//	let f = y => x + y   // f closes over a Copy() taken here: x == 5
//	let x = 100           // rebinds x in the frame, not in f's copy
//	f(3)                  // => 8, not 108
func (e *Environment) Copy() *Environment {
	newEnv := &Environment{
		Bindings: make(map[string]value.Value, len(e.Bindings)),
		Parent:   e.Parent,
	}
	for k, v := range e.Bindings {
		newEnv.Bindings[k] = v
	}
	return newEnv
}

// Reset clears every binding in the root frame except names present in
// preserve (used to keep builtins alive across a REPL "reset").
func (e *Environment) Reset(preserve map[string]value.Value) {
	e.Bindings = make(map[string]value.Value, len(preserve))
	for k, v := range preserve {
		e.Bindings[k] = v
	}
	e.Parent = nil
}
