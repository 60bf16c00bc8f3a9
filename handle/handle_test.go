package handle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/achronyme/core/environment"
	"github.com/achronyme/core/errs"
	"github.com/achronyme/core/value"
)

func TestTable_CreateFromBuffer_CopiesInput(t *testing.T) {
	tab := New()
	buf := []float64{1, 2, 3}
	id := tab.CreateFromBuffer(buf)
	buf[0] = 999

	ptr, err := tab.DataPtr(id)
	require.NoError(t, err)
	assert.Equal(t, float64(1), *ptr)
}

func TestTable_BindToName_VisibleToEvaluatorEnv(t *testing.T) {
	tab := New()
	env := environment.New(nil)
	id := tab.CreateFromBuffer([]float64{0, 1, 2, 3, 4, 5, 6, 7})

	require.NoError(t, tab.BindToName(env, "v", id))

	bound, ok := env.LookUp("v")
	require.True(t, ok)
	vec, ok := bound.(value.Vector)
	require.True(t, ok)
	assert.Equal(t, []float64{0, 1, 2, 3, 4, 5, 6, 7}, vec.Data)
}

func TestTable_Release_MakesHandleUnknown(t *testing.T) {
	tab := New()
	id := tab.CreateFromBuffer([]float64{1, 2, 3})

	require.NoError(t, tab.Release(id))

	_, err := tab.DataPtr(id)
	require.Error(t, err)
	assert.Equal(t, errs.UnknownHandle, err.(*errs.Error).Kind)

	err = tab.Release(id)
	require.Error(t, err)
	assert.Equal(t, errs.UnknownHandle, err.(*errs.Error).Kind)
}

func TestTable_Length_VectorAndMatrix(t *testing.T) {
	tab := New()
	vecID := tab.CreateFromBuffer([]float64{1, 2, 3, 4, 5})
	n, err := tab.Length(vecID)
	require.NoError(t, err)
	assert.Equal(t, 5, n)

	matID := tab.CreateMatrix(value.NewMatrix(2, 3, []float64{1, 2, 3, 4, 5, 6}))
	n, err = tab.Length(matID)
	require.NoError(t, err)
	assert.Equal(t, 6, n)
}

func TestTable_HandleIDsNeverReused(t *testing.T) {
	tab := New()
	first := tab.CreateFromBuffer([]float64{1})
	require.NoError(t, tab.Release(first))
	second := tab.CreateFromBuffer([]float64{2})
	assert.NotEqual(t, first, second)
}

func TestTable_UnknownHandle_NeverIssued(t *testing.T) {
	tab := New()
	_, err := tab.DataPtr(ID(42))
	require.Error(t, err)
	assert.Equal(t, errs.UnknownHandle, err.(*errs.Error).Kind)
}
