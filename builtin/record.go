package builtin

import (
	"github.com/achronyme/core/errs"
	"github.com/achronyme/core/value"
)

// recordField extracts a named field from a Record value. The
// expression grammar has no string literal and no dot operator, so
// Record fields produced by lu/qr/svd/eig/powerIteration are read back with
// dedicated single-field accessors (luL, qrQ, svdS, ...) built on this
// helper, rather than a general-purpose `record.name` syntax.
func recordField(v value.Value, name, fn string) (value.Value, error) {
	rec, ok := v.(value.Record)
	if !ok {
		return nil, errs.New(errs.TypeError, "%s expects the Record returned by a decomposition, got %s", fn, v.Type())
	}
	field, ok := rec.Fields[name]
	if !ok {
		return nil, errs.New(errs.InvalidArgument, "%s: record has no field %q", fn, name)
	}
	return field, nil
}
