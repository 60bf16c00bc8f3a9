package environment

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/achronyme/core/value"
)

func TestLookUp_WalksFrameChainInnerToOuter(t *testing.T) {
	root := New(nil)
	root.Bind("x", value.Number(1))
	child := New(root)
	child.Bind("y", value.Number(2))

	v, ok := child.LookUp("x")
	assert.True(t, ok)
	assert.Equal(t, value.Number(1), v)

	v, ok = child.LookUp("y")
	assert.True(t, ok)
	assert.Equal(t, value.Number(2), v)

	_, ok = root.LookUp("y")
	assert.False(t, ok)
}

func TestBind_OverwritesCurrentFrameOnly(t *testing.T) {
	env := New(nil)
	env.Bind("x", value.Number(1))
	env.Bind("x", value.Number(2))
	v, ok := env.LookUp("x")
	assert.True(t, ok)
	assert.Equal(t, value.Number(2), v)
}

func TestCopy_IsolatesLaterRebinds(t *testing.T) {
	env := New(nil)
	env.Bind("x", value.Number(5))
	snapshot := env.Copy()

	env.Bind("x", value.Number(100))

	v, ok := snapshot.LookUp("x")
	assert.True(t, ok)
	assert.Equal(t, value.Number(5), v, "snapshot must not see later rebinds of the original frame")
}

func TestReset_ClearsNonPreservedBindings(t *testing.T) {
	env := New(nil)
	env.Bind("pi", value.Number(3))
	env.Bind("x", value.Number(42))

	env.Reset(map[string]value.Value{"pi": value.Number(3)})

	_, ok := env.LookUp("x")
	assert.False(t, ok)
	v, ok := env.LookUp("pi")
	assert.True(t, ok)
	assert.Equal(t, value.Number(3), v)
}
