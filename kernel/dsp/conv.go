/*
File    : achronyme/kernel/dsp/conv.go

Direct and FFT-accelerated linear convolution.
*/
package dsp

// Conv computes the direct linear convolution of x and h, length
// len(x)+len(h)-1.
func Conv(x, h []float64) []float64 {
	n, m := len(x), len(h)
	if n == 0 || m == 0 {
		return []float64{}
	}
	out := make([]float64, n+m-1)
	for i, xi := range x {
		if xi == 0 {
			continue
		}
		for j, hj := range h {
			out[i+j] += xi * hj
		}
	}
	return out
}

// ConvFFT computes linear convolution via FFT: zero-pad both signals to
// the next power of two at or above len(x)+len(h)-1, multiply spectra
// pointwise, and invert. The direct and FFT paths must agree to within
// the tolerance pinned in this package's tests.
func ConvFFT(x, h []float64) []float64 {
	n, m := len(x), len(h)
	if n == 0 || m == 0 {
		return []float64{}
	}
	outLen := n + m - 1
	padded := NextPowerOfTwo(outLen)

	xc := make([]complex128, padded)
	hc := make([]complex128, padded)
	for i, v := range x {
		xc[i] = complex(v, 0)
	}
	for i, v := range h {
		hc[i] = complex(v, 0)
	}

	X := fftRecursive(xc)
	H := fftRecursive(hc)
	Y := make([]complex128, padded)
	for i := range Y {
		Y[i] = X[i] * H[i]
	}
	y := IFFT(Y)

	out := make([]float64, outLen)
	for i := 0; i < outLen; i++ {
		out[i] = real(y[i])
	}
	return out
}
