package lambda

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/achronyme/core/value"
)

func TestLambda_ArityAndString(t *testing.T) {
	l := &Lambda{Params: []string{"x", "y"}}
	assert.Equal(t, 2, l.Arity())
	assert.Equal(t, "<function(x, y)>", l.String())
	assert.Equal(t, value.FunctionType, l.Type())
}

func TestBuiltin_AcceptsArity(t *testing.T) {
	b := &Builtin{Name: "foo", MinArgs: 1, MaxArgs: 2}
	assert.False(t, b.AcceptsArity(0))
	assert.True(t, b.AcceptsArity(1))
	assert.True(t, b.AcceptsArity(2))
	assert.False(t, b.AcceptsArity(3))
}

func TestBuiltin_VariadicAcceptsArity(t *testing.T) {
	b := &Builtin{Name: "pipe", MinArgs: 1, MaxArgs: -1}
	assert.True(t, b.AcceptsArity(1))
	assert.True(t, b.AcceptsArity(50))
	assert.False(t, b.AcceptsArity(0))
}

func TestBuiltin_StringAndType(t *testing.T) {
	b := &Builtin{Name: "sin"}
	assert.Equal(t, "<builtin:sin>", b.String())
	assert.Equal(t, value.FunctionType, b.Type())
}

func TestCallable_IsImplementedByBothVariants(t *testing.T) {
	var _ Callable = &Lambda{}
	var _ Callable = &Builtin{}
}
