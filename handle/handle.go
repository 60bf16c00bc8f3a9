/*
File    : achronyme/handle/handle.go

Package handle implements Component 11: the Handle Table, the one
piece of explicit cross-boundary bookkeeping a host FFI needs to pass
large Vector/Matrix buffers into the engine without a round trip
through the parser for every access. It is a plain map keyed by a
small integer, in the same single-threaded, no-mutex idiom as
environment.Environment and go-mix's own scope.Scope: the evaluator,
parser and every kernel already assume exclusive access to process
state, and the table is just one more piece of that state.
*/
package handle

import (
	"github.com/achronyme/core/environment"
	"github.com/achronyme/core/errs"
	"github.com/achronyme/core/value"
)

// ID is an opaque handle into the table, stable for the lifetime of
// the Value it references.
type ID int64

// Table owns a set of live Vector/Matrix Values and hands out
// small-integer IDs for a host to reference them by. IDs are never
// reused within the Table's lifetime, even after release: next only
// ever increments.
type Table struct {
	entries map[ID]value.Value
	next    ID
}

// New returns an empty Table.
func New() *Table {
	return &Table{entries: make(map[ID]value.Value)}
}

// CreateFromBuffer copies buf into a new Vector and returns a handle
// that owns it. The Table holds its own copy; mutating buf afterward
// has no effect on the live handle.
func (t *Table) CreateFromBuffer(buf []float64) ID {
	data := make([]float64, len(buf))
	copy(data, buf)
	id := t.next
	t.next++
	t.entries[id] = value.NewVector(data)
	return id
}

// CreateMatrix registers a pre-built Matrix under a new handle, for
// hosts constructing a 2-D buffer directly rather than through
// CreateFromBuffer.
func (t *Table) CreateMatrix(m value.Matrix) ID {
	id := t.next
	t.next++
	t.entries[id] = m
	return id
}

// lookup resolves id to its live Value, or UnknownHandle if id was
// never issued or has since been released.
func (t *Table) lookup(id ID) (value.Value, error) {
	v, ok := t.entries[id]
	if !ok {
		return nil, errs.New(errs.UnknownHandle, "handle %d is not live", id)
	}
	return v, nil
}

// BindToName defines name in env's root frame as id's current value,
// so parsed expressions can refer to the handle's data without a copy.
// The binding is a snapshot of the Go-level Value at bind time; since
// Values are immutable, any later mutation of the handle (there is
// none in this engine) would not be visible through the old binding.
func (t *Table) BindToName(env *environment.Environment, name string, id ID) error {
	v, err := t.lookup(id)
	if err != nil {
		return err
	}
	env.Bind(name, v)
	return nil
}

// DataPtr exposes a stable pointer to id's underlying float64 buffer
// for zero-copy host reads. Only Vector and Matrix expose one; any
// other live Value (there is none today, since the table only ever
// stores Vector/Matrix) would report TypeError.
func (t *Table) DataPtr(id ID) (*float64, error) {
	v, err := t.lookup(id)
	if err != nil {
		return nil, err
	}
	switch x := v.(type) {
	case value.Vector:
		if len(x.Data) == 0 {
			return nil, nil
		}
		return &x.Data[0], nil
	case value.Matrix:
		if len(x.Data) == 0 {
			return nil, nil
		}
		return &x.Data[0], nil
	default:
		return nil, errs.New(errs.TypeError, "handle %d does not expose a data pointer", id)
	}
}

// Length returns the number of float64 elements reachable through
// DataPtr for id: len(Data) for a Vector, Rows*Cols for a Matrix.
func (t *Table) Length(id ID) (int, error) {
	v, err := t.lookup(id)
	if err != nil {
		return 0, err
	}
	switch x := v.(type) {
	case value.Vector:
		return len(x.Data), nil
	case value.Matrix:
		return x.Rows * x.Cols, nil
	default:
		return 0, errs.New(errs.TypeError, "handle %d does not expose a length", id)
	}
}

// Release drops id's reference. Every subsequent operation on id,
// including a second Release, fails with UnknownHandle.
func (t *Table) Release(id ID) error {
	if _, err := t.lookup(id); err != nil {
		return err
	}
	delete(t.entries, id)
	return nil
}
