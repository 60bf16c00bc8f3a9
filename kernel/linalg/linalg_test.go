package linalg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/achronyme/core/value"
)

func almostEqualMatrix(t *testing.T, want, got value.Matrix, tol float64) {
	t.Helper()
	require.Equal(t, want.Rows, got.Rows)
	require.Equal(t, want.Cols, got.Cols)
	for i := range want.Data {
		assert.InDelta(t, want.Data[i], got.Data[i], tol, "index %d", i)
	}
}

func TestLU_SatisfiesPAEqualsLU(t *testing.T) {
	m := value.NewMatrix(3, 3, []float64{1, 2, 3, 4, 5, 6, 7, 8, 10})
	res, err := LU(m)
	require.NoError(t, err)

	pa, err := MatMul(res.P, m)
	require.NoError(t, err)
	lu, err := MatMul(res.L, res.U)
	require.NoError(t, err)
	almostEqualMatrix(t, pa, lu, 1e-9)
}

func TestLU_SingularMatrixFails(t *testing.T) {
	m := value.NewMatrix(2, 2, []float64{1, 2, 2, 4})
	_, err := LU(m)
	require.Error(t, err)
}

func TestQR_SatisfiesQREqualsAAndOrthogonalQ(t *testing.T) {
	m := value.NewMatrix(3, 3, []float64{12, -51, 4, 6, 167, -68, -4, 24, -41})
	res := QR(m)

	qr, err := MatMul(res.Q, res.R)
	require.NoError(t, err)
	almostEqualMatrix(t, m, qr, 1e-8)

	qtq, err := MatMul(Transpose(res.Q), res.Q)
	require.NoError(t, err)
	almostEqualMatrix(t, Identity(3), qtq, 1e-8)
}

func TestCholesky_SatisfiesLLTEqualsA(t *testing.T) {
	m := value.NewMatrix(3, 3, []float64{4, 12, -16, 12, 37, -43, -16, -43, 98})
	l, err := Cholesky(m)
	require.NoError(t, err)

	llt, err := MatMul(l, Transpose(l))
	require.NoError(t, err)
	almostEqualMatrix(t, m, llt, 1e-8)
}

func TestCholesky_RejectsNonSPD(t *testing.T) {
	m := value.NewMatrix(2, 2, []float64{1, 2, 2, 1})
	_, err := Cholesky(m)
	require.Error(t, err)
}

func TestDet_MatchesKnownValue(t *testing.T) {
	m := value.NewMatrix(2, 2, []float64{1, 2, 3, 4})
	d, err := Det(m)
	require.NoError(t, err)
	assert.InDelta(t, -2, d, 1e-12)
}

func TestDet_SingularIsZero(t *testing.T) {
	m := value.NewMatrix(2, 2, []float64{1, 2, 2, 4})
	d, err := Det(m)
	require.NoError(t, err)
	assert.InDelta(t, 0, d, 1e-12)
}

func TestInverse_SatisfiesAInverseAEqualsIdentity(t *testing.T) {
	m := value.NewMatrix(3, 3, []float64{1, 2, 3, 0, 1, 4, 5, 6, 0})
	inv, err := Inverse(m)
	require.NoError(t, err)
	prod, err := MatMul(m, inv)
	require.NoError(t, err)
	almostEqualMatrix(t, Identity(3), prod, 1e-8)
}

func TestTrace(t *testing.T) {
	m := value.NewMatrix(2, 2, []float64{1, 2, 3, 4})
	tr, err := Trace(m)
	require.NoError(t, err)
	assert.Equal(t, 5.0, tr)
}

func TestSVD_ReconstructsOriginalMatrix(t *testing.T) {
	m := value.NewMatrix(3, 2, []float64{1, 0, 0, 1, 1, 1})
	res, err := SVD(m, 200, 1e-10)
	require.NoError(t, err)

	diag := make([]float64, len(res.S)*len(res.S))
	for i, s := range res.S {
		diag[i*len(res.S)+i] = s
	}
	sigma := value.NewMatrix(len(res.S), len(res.S), diag)

	us, err := MatMul(res.U, sigma)
	require.NoError(t, err)
	recon, err := MatMul(us, Transpose(res.V))
	require.NoError(t, err)
	almostEqualMatrix(t, m, recon, 1e-6)
}

func TestPowerIteration_ConvergesToDominantEigenvalue(t *testing.T) {
	m := value.NewMatrix(2, 2, []float64{2, 0, 0, 1})
	lambda, vec, err := PowerIteration(m, 100, 1e-10)
	require.NoError(t, err)
	assert.InDelta(t, 2, lambda, 1e-6)
	require.Len(t, vec, 2)
}

func TestPowerIteration_NonSquareFails(t *testing.T) {
	m := value.NewMatrix(2, 3, make([]float64, 6))
	_, _, err := PowerIteration(m, 10, 1e-6)
	require.Error(t, err)
}

func TestQREigenvalues_MatchesKnownSpectrum(t *testing.T) {
	m := value.NewMatrix(2, 2, []float64{2, 1, 1, 2})
	vals, err := QREigenvalues(m, 200, 1e-10)
	require.NoError(t, err)
	require.Len(t, vals, 2)
	assert.InDelta(t, 3, vals[0]+vals[1]-1, 1e-6)
}

func TestEig_RejectsNonSymmetric(t *testing.T) {
	m := value.NewMatrix(2, 2, []float64{1, 2, 3, 4})
	_, err := Eig(m, 200, 1e-10)
	require.Error(t, err)
}

func TestEig_ReconstructsSymmetricMatrix(t *testing.T) {
	m := value.NewMatrix(2, 2, []float64{2, 1, 1, 2})
	res, err := Eig(m, 200, 1e-10)
	require.NoError(t, err)
	require.Len(t, res.Values, 2)
	assert.GreaterOrEqual(t, res.Values[0], res.Values[1])

	diag := []float64{res.Values[0], 0, 0, res.Values[1]}
	d := value.NewMatrix(2, 2, diag)
	vd, err := MatMul(res.Vectors, d)
	require.NoError(t, err)
	recon, err := MatMul(vd, Transpose(res.Vectors))
	require.NoError(t, err)
	almostEqualMatrix(t, m, recon, 1e-6)
}

func TestMatMul_ShapeMismatchErrors(t *testing.T) {
	a := value.NewMatrix(2, 3, make([]float64, 6))
	b := value.NewMatrix(2, 2, make([]float64, 4))
	_, err := MatMul(a, b)
	require.Error(t, err)
}

func TestIdentityAndIsSymmetric(t *testing.T) {
	id := Identity(3)
	assert.True(t, IsSymmetric(id, 1e-12))
	assert.True(t, IsPositiveDefinite(id))

	asym := value.NewMatrix(2, 2, []float64{1, 2, 3, 4})
	assert.False(t, IsSymmetric(asym, 1e-12))
}
