package value

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNumber_String_TrimsTrailingZeros(t *testing.T) {
	assert.Equal(t, "1.5", Number(1.5).String())
	assert.Equal(t, "2", Number(2.0).String())
}

func TestNumber_String_SpecialValues(t *testing.T) {
	assert.Equal(t, "NaN", Number(math.NaN()).String())
	assert.Equal(t, "Infinity", Number(math.Inf(1)).String())
	assert.Equal(t, "-Infinity", Number(math.Inf(-1)).String())
}

func TestComplex_String_Forms(t *testing.T) {
	assert.Equal(t, "3", Complex{Re: 3, Im: 0}.String())
	assert.Equal(t, "2i", Complex{Re: 0, Im: 2}.String())
	assert.Equal(t, "1 + 2i", Complex{Re: 1, Im: 2}.String())
	assert.Equal(t, "1 - 2i", Complex{Re: 1, Im: -2}.String())
}

func TestVector_String(t *testing.T) {
	v := NewVector([]float64{1, 2, 3})
	assert.Equal(t, "[1, 2, 3]", v.String())
}

func TestMatrix_AtSetAndString(t *testing.T) {
	m := NewMatrix(2, 2, []float64{1, 2, 3, 4})
	assert.Equal(t, float64(3), m.At(1, 0))
	m.Set(0, 0, 9)
	assert.Equal(t, float64(9), m.At(0, 0))
	assert.Equal(t, "[[9, 2], [3, 4]]", m.String())
}

func TestMatrix_InvalidDimensionsPanics(t *testing.T) {
	assert.Panics(t, func() { NewMatrix(0, 2, nil) })
	assert.Panics(t, func() { NewMatrix(2, 2, []float64{1, 2}) })
}

func TestComplexVector_String(t *testing.T) {
	cv := NewComplexVector([]float64{1, 0}, []float64{2, -1})
	assert.Equal(t, "[1 + 2i, -1i]", cv.String())
}

func TestRecord_String_PreservesOrder(t *testing.T) {
	r := NewRecord([]string{"L", "U"}, map[string]Value{
		"L": Number(1),
		"U": Number(2),
	})
	assert.Equal(t, "{L: 1, U: 2}", r.String())
}

func TestIsTruthy(t *testing.T) {
	assert.True(t, IsTruthy(Number(1)))
	assert.False(t, IsTruthy(Number(0)))
	assert.True(t, IsTruthy(NewVector([]float64{0})))
}

func TestTypeNames(t *testing.T) {
	assert.Equal(t, NumberType, Number(1).Type())
	assert.Equal(t, ComplexType, Complex{}.Type())
	assert.Equal(t, VectorType, NewVector(nil).Type())
	assert.Equal(t, MatrixType, NewMatrix(1, 1, []float64{1}).Type())
	assert.Equal(t, ComplexVectorType, NewComplexVector(nil, nil).Type())
	assert.Equal(t, RecordType, NewRecord(nil, nil).Type())
}
