package dsp

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFFT_IFFT_RoundTrip(t *testing.T) {
	signal := []float64{1, 2, 3, 4, 5, 6, 7, 8}
	spectrum := FFT(signal)
	back := IFFT(spectrum)
	for i, x := range signal {
		assert.InDelta(t, x, real(back[i]), 1e-10)
		assert.InDelta(t, 0, imag(back[i]), 1e-10)
	}
}

func TestFFT_ZeroPadsToPowerOfTwo(t *testing.T) {
	spectrum := FFT([]float64{1, 2, 3})
	assert.Len(t, spectrum, 4)
}

func TestFFT_AgreesWithDFT(t *testing.T) {
	signal := []float64{1, 2, 3, 4}
	fft := FFT(signal)
	dft := DFT(signal)
	for i := range signal {
		assert.InDelta(t, real(dft[i]), real(fft[i]), 1e-9)
		assert.InDelta(t, imag(dft[i]), imag(fft[i]), 1e-9)
	}
}

func TestFFT_ParsevalTheorem(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	signal := make([]float64, 8)
	var energy float64
	for i := range signal {
		signal[i] = rng.Float64()*2 - 1
		energy += signal[i] * signal[i]
	}
	spectrum := FFT(signal)
	var spectralEnergy float64
	for _, c := range spectrum {
		spectralEnergy += real(c)*real(c) + imag(c)*imag(c)
	}
	assert.InDelta(t, energy, spectralEnergy/float64(len(spectrum)), 1e-8)
}

func TestMagnitudeAndPhase_DCSignal(t *testing.T) {
	spectrum := FFT([]float64{1, 1, 1, 1, 1, 1, 1, 1})
	mag := Magnitude(spectrum)
	assert.InDelta(t, 8, mag[0], 1e-12)
	for _, m := range mag[1:] {
		assert.InDelta(t, 0, m, 1e-10)
	}
}

func TestConv_DirectLength(t *testing.T) {
	out := Conv([]float64{1, 2, 3}, []float64{0, 1})
	assert.Len(t, out, 4)
}

func TestConv_AgreesWithConvFFT(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	x := make([]float64, 37)
	h := make([]float64, 11)
	for i := range x {
		x[i] = rng.Float64()*2 - 1
	}
	for i := range h {
		h[i] = rng.Float64()*2 - 1
	}
	direct := Conv(x, h)
	viaFFT := ConvFFT(x, h)
	require.Len(t, viaFFT, len(direct))
	for i := range direct {
		assert.InDelta(t, direct[i], viaFFT[i], 1e-8)
	}
}

func TestWindows_Values(t *testing.T) {
	h, err := Hanning(4)
	require.NoError(t, err)
	assert.InDelta(t, 0, h[0], 1e-12)

	_, err = Hanning(1)
	require.Error(t, err)

	ham, err := Hamming(4)
	require.NoError(t, err)
	assert.InDelta(t, 0.08, ham[0], 1e-12)

	bl, err := Blackman(4)
	require.NoError(t, err)
	assert.InDelta(t, 0, bl[0], 1e-12)
}

func TestFFTShift_IFFTShift_Inverses(t *testing.T) {
	spectrum := FFT([]float64{1, 2, 3, 4, 5, 6, 7, 8})
	shifted := FFTShift(spectrum)
	back := IFFTShift(shifted)
	for i := range spectrum {
		assert.Equal(t, spectrum[i], back[i])
	}
}

func TestFFTSpectrum_ShiftKeepsColumnsInLockstep(t *testing.T) {
	signal := make([]float64, 16)
	for i := range signal {
		signal[i] = math.Sin(2 * math.Pi * float64(i) / 16)
	}
	omega, mag, phase := FFTSpectrum(signal, 16, true, false, nil)
	require.Len(t, mag, len(omega))
	require.Len(t, phase, len(omega))

	unshiftedOmega, unshiftedMag, _ := FFTSpectrum(signal, 16, false, false, nil)
	shiftPerm := shiftPermutation(len(unshiftedOmega))
	for i, idx := range shiftPerm {
		assert.InDelta(t, unshiftedOmega[idx], omega[i], 1e-9)
		assert.InDelta(t, unshiftedMag[idx], mag[i], 1e-9)
	}
}

func TestFFTSpectrum_OmegaRangeFiltersRows(t *testing.T) {
	signal := []float64{1, 2, 3, 4, 5, 6, 7, 8}
	r := 2.0
	omega, _, _ := FFTSpectrum(signal, 8, false, false, &r)
	for _, w := range omega {
		assert.LessOrEqual(t, math.Abs(w), r)
	}
}
