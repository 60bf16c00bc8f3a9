/*
File    : achronyme/kernel/dsp/fft.go

Package dsp implements Component 9 of the core design: FFT/IFFT,
convolution (direct and FFT-accelerated) and window functions. These are
pure numerical kernels over []complex128 / []float64 — they know nothing
about value.Value or the evaluator, exactly as go-mix's std/math.go
built-ins are thin wrappers around plain float64 math. The
value.ComplexVector <-> []complex128 conversion lives in the builtin
package that wraps these kernels for the expression language.

FFT uses recursive radix-2 Cooley-Tukey, zero-padding the input up to
the next power of two. IFFT is implemented as conjugate-FFT-conjugate
divided by N, so it is guaranteed to share the Cooley-Tukey kernel's
numerical behavior exactly (ifft(fft(x)) == x to the specified
tolerance by construction, not by a second independent implementation).
*/
package dsp

import (
	"math"

	"github.com/achronyme/core/errs"
)

// NextPowerOfTwo returns the smallest power of two >= n (n >= 1).
func NextPowerOfTwo(n int) int {
	if n <= 1 {
		return 1
	}
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}

// FFT computes the discrete Fourier transform of signal via recursive
// radix-2 Cooley-Tukey, zero-padding to the next power of two. It returns
// the padded-length complex spectrum.
func FFT(signal []float64) []complex128 {
	n := NextPowerOfTwo(len(signal))
	padded := make([]complex128, n)
	for i, x := range signal {
		padded[i] = complex(x, 0)
	}
	return fftRecursive(padded)
}

// FFTComplex computes the FFT of an already-complex sequence, zero-padding
// to the next power of two. ConvFFT and IFFT call the recursive kernel
// directly on their already-padded buffers rather than going through it.
func FFTComplex(signal []complex128) []complex128 {
	n := NextPowerOfTwo(len(signal))
	padded := make([]complex128, n)
	copy(padded, signal)
	return fftRecursive(padded)
}

func fftRecursive(a []complex128) []complex128 {
	n := len(a)
	if n <= 1 {
		out := make([]complex128, n)
		copy(out, a)
		return out
	}

	even := make([]complex128, n/2)
	odd := make([]complex128, n/2)
	for i := 0; i < n/2; i++ {
		even[i] = a[2*i]
		odd[i] = a[2*i+1]
	}

	fe := fftRecursive(even)
	fo := fftRecursive(odd)

	out := make([]complex128, n)
	for k := 0; k < n/2; k++ {
		angle := -2 * math.Pi * float64(k) / float64(n)
		twiddle := complex(math.Cos(angle), math.Sin(angle)) * fo[k]
		out[k] = fe[k] + twiddle
		out[k+n/2] = fe[k] - twiddle
	}
	return out
}

// IFFT computes the inverse FFT: conjugate the input, run the forward
// FFT kernel, conjugate the result, and divide by N. spectrum must
// already be a power-of-two length (as produced by FFT/FFTComplex).
func IFFT(spectrum []complex128) []complex128 {
	n := len(spectrum)
	conjIn := make([]complex128, n)
	for i, c := range spectrum {
		conjIn[i] = complex(real(c), -imag(c))
	}
	transformed := fftRecursive(conjIn)
	out := make([]complex128, n)
	for i, c := range transformed {
		out[i] = complex(real(c)/float64(n), -imag(c)/float64(n))
	}
	return out
}

// DFT is the O(N^2) naive reference transform, used to cross-validate FFT
// in tests rather than in the hot evaluation path.
func DFT(signal []float64) []complex128 {
	n := len(signal)
	out := make([]complex128, n)
	for k := 0; k < n; k++ {
		var sum complex128
		for t := 0; t < n; t++ {
			angle := -2 * math.Pi * float64(k) * float64(t) / float64(n)
			sum += complex(signal[t], 0) * complex(math.Cos(angle), math.Sin(angle))
		}
		out[k] = sum
	}
	return out
}

// Magnitude returns sqrt(re^2+im^2) per bin.
func Magnitude(spectrum []complex128) []float64 {
	out := make([]float64, len(spectrum))
	for i, c := range spectrum {
		out[i] = math.Hypot(real(c), imag(c))
	}
	return out
}

// Phase returns atan2(im, re) per bin.
func Phase(spectrum []complex128) []float64 {
	out := make([]float64, len(spectrum))
	for i, c := range spectrum {
		out[i] = math.Atan2(imag(c), real(c))
	}
	return out
}

// FFTShift reorders a spectrum so the zero-frequency bin is centered,
// swapping the first and second halves (second half first for even N).
func FFTShift(spectrum []complex128) []complex128 {
	n := len(spectrum)
	mid := n - n/2
	out := make([]complex128, n)
	copy(out, spectrum[mid:])
	copy(out[n-mid:], spectrum[:mid])
	return out
}

// IFFTShift undoes FFTShift.
func IFFTShift(spectrum []complex128) []complex128 {
	n := len(spectrum)
	mid := n / 2
	out := make([]complex128, n)
	copy(out, spectrum[mid:])
	copy(out[n-mid:], spectrum[:mid])
	return out
}

// ValidateLength rejects degenerate (length < 2) inputs shared by the
// window functions.
func ValidateLength(function string, n int) error {
	if n < 2 {
		return errs.New(errs.InvalidArgument, "%s requires a length of at least 2, got %d", function, n)
	}
	return nil
}
