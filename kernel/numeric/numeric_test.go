package numeric

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/achronyme/core/value"
)

func TestBinary_NumberPromotesToComplex(t *testing.T) {
	v, err := Binary(Add, value.Number(2), value.Complex{Re: 1, Im: 3})
	require.NoError(t, err)
	assert.Equal(t, value.Complex{Re: 3, Im: 3}, v)
}

func TestBinary_NumberBroadcastsOverVector(t *testing.T) {
	v, err := Binary(Mul, value.Number(2), value.NewVector([]float64{1, 2, 3}))
	require.NoError(t, err)
	assert.Equal(t, value.NewVector([]float64{2, 4, 6}), v)
}

func TestBinary_NumberBroadcastsOverMatrix(t *testing.T) {
	v, err := Binary(Add, value.Number(1), value.NewMatrix(2, 2, []float64{1, 2, 3, 4}))
	require.NoError(t, err)
	assert.Equal(t, value.NewMatrix(2, 2, []float64{2, 3, 4, 5}), v)
}

func TestBinary_VectorElementwiseRequiresEqualLength(t *testing.T) {
	_, err := Binary(Add, value.NewVector([]float64{1, 2}), value.NewVector([]float64{1, 2, 3}))
	require.Error(t, err)
}

func TestBinary_MatrixMulIsConformingMatMul(t *testing.T) {
	a := value.NewMatrix(2, 2, []float64{1, 2, 3, 4})
	b := value.NewMatrix(2, 2, []float64{5, 6, 7, 8})
	v, err := Binary(Mul, a, b)
	require.NoError(t, err)
	assert.Equal(t, value.NewMatrix(2, 2, []float64{19, 22, 43, 50}), v)
}

func TestBinary_MatrixAddRequiresIdenticalShape(t *testing.T) {
	a := value.NewMatrix(2, 2, []float64{1, 2, 3, 4})
	b := value.NewMatrix(2, 3, make([]float64, 6))
	_, err := Binary(Add, a, b)
	require.Error(t, err)
}

func TestBinary_ComplexVectorElementwise(t *testing.T) {
	a := value.NewComplexVector([]float64{1, 2}, []float64{1, 0})
	b := value.NewComplexVector([]float64{3, 4}, []float64{0, 1})
	v, err := Binary(Add, a, b)
	require.NoError(t, err)
	assert.Equal(t, value.NewComplexVector([]float64{4, 6}, []float64{1, 1}), v)
}

func TestCompare_RequiresTwoNumbers(t *testing.T) {
	_, err := Compare(Lt, value.NewVector([]float64{1}), value.Number(1))
	require.Error(t, err)
}

func TestCompare_YieldsNumericBoolean(t *testing.T) {
	v, err := Compare(Gt, value.Number(3), value.Number(2))
	require.NoError(t, err)
	assert.Equal(t, value.Number(1), v)

	v, err = Compare(Gt, value.Number(2), value.Number(3))
	require.NoError(t, err)
	assert.Equal(t, value.Number(0), v)
}

func TestMatMul_ShapeMismatchErrors(t *testing.T) {
	a := value.NewMatrix(2, 3, make([]float64, 6))
	b := value.NewMatrix(2, 2, make([]float64, 4))
	_, err := MatMul(a, b)
	require.Error(t, err)
}

func TestNegate_PerVariant(t *testing.T) {
	v, err := Negate(value.Number(5))
	require.NoError(t, err)
	assert.Equal(t, value.Number(-5), v)

	v, err = Negate(value.NewVector([]float64{1, -2}))
	require.NoError(t, err)
	assert.Equal(t, value.NewVector([]float64{-1, 2}), v)
}

func TestUnaryScalar_VectorizesOverVectorAndMatrix(t *testing.T) {
	v, err := UnaryScalar(func(x float64) float64 { return x * x }, value.NewVector([]float64{1, 2, 3}))
	require.NoError(t, err)
	assert.Equal(t, value.NewVector([]float64{1, 4, 9}), v)

	_, err = UnaryScalar(func(x float64) float64 { return x }, value.NewComplexVector(nil, nil))
	require.Error(t, err)
}

func TestReductions_SumMeanStdMinMax(t *testing.T) {
	data := []float64{1, 2, 3, 4}
	assert.Equal(t, 10.0, Sum(data))

	mean, err := Mean(data)
	require.NoError(t, err)
	assert.Equal(t, 2.5, mean)

	std, err := Std(data)
	require.NoError(t, err)
	assert.InDelta(t, 1.1180339887, std, 1e-9)

	min, err := Min(data)
	require.NoError(t, err)
	assert.Equal(t, 1.0, min)

	max, err := Max(data)
	require.NoError(t, err)
	assert.Equal(t, 4.0, max)
}

func TestReductions_EmptyVectorErrors(t *testing.T) {
	_, err := Mean(nil)
	require.Error(t, err)
	_, err = Min(nil)
	require.Error(t, err)
	_, err = Max(nil)
	require.Error(t, err)
}

func TestVectorOps_DotCrossNormNormalize(t *testing.T) {
	a := []float64{1, 2, 3}
	b := []float64{4, 5, 6}

	dot, err := Dot(a, b)
	require.NoError(t, err)
	assert.Equal(t, 32.0, dot)

	cross, err := Cross(a, b)
	require.NoError(t, err)
	assert.Equal(t, []float64{-3, 6, -3}, cross)

	assert.Equal(t, 5.0, Norm([]float64{3, 4}))

	n, err := Normalize([]float64{3, 4})
	require.NoError(t, err)
	assert.InDelta(t, 0.6, n[0], 1e-12)
	assert.InDelta(t, 0.8, n[1], 1e-12)

	_, err = Normalize([]float64{0, 0})
	require.Error(t, err)
}

func TestVectorOps_CrossRequires3D(t *testing.T) {
	_, err := Cross([]float64{1, 2}, []float64{1, 2})
	require.Error(t, err)
}

func TestLinspace(t *testing.T) {
	out, err := Linspace(0, 1, 5)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0.25, 0.5, 0.75, 1}, out)

	single, err := Linspace(5, 10, 1)
	require.NoError(t, err)
	assert.Equal(t, []float64{5}, single)

	_, err = Linspace(0, 1, 0)
	require.Error(t, err)
}
