/*
File    : achronyme/kernel/dsp/spectrum.go

FFTSpectrum computes the one-pass frequency/magnitude/phase sweep the
specification singles out as the single most common source of latent
bugs in the original implementation: the frequency axis and the FFT
result must be reordered by the *same* permutation when shift is
requested, or the three output columns silently drift out of alignment
relative to each other. This file builds one permutation of bin indices
and applies it identically to the frequency axis, the magnitude and the
phase — there is no second, independent sort anywhere in this file.
*/
package dsp

import "math"

// shiftPermutation returns the bin-index order that FFTShift applies,
// so the frequency axis and the spectrum can be reordered identically.
func shiftPermutation(n int) []int {
	mid := n - n/2
	perm := make([]int, n)
	for i := 0; i < n-mid; i++ {
		perm[i] = mid + i
	}
	for i := 0; i < mid; i++ {
		perm[n-mid+i] = i
	}
	return perm
}

// FFTSpectrum computes columns [omega, magnitude, phase] for signal's
// spectrum in a single coupled pass. fs is the sampling frequency; when
// angular is true the frequency axis is reported in rad/s (omega = 2*pi*f)
// rather than Hz. When shift is true, the DC bin is centered: the same
// permutation is applied to the frequency axis and to the spectrum before
// magnitude/phase are read off it. When omegaRange is non-nil, only rows
// with |omega| <= *omegaRange survive.
func FFTSpectrum(signal []float64, fs float64, shift, angular bool, omegaRange *float64) (omega, magnitude, phase []float64) {
	spectrum := FFT(signal)
	n := len(spectrum)

	freq := make([]float64, n)
	for k := 0; k < n; k++ {
		bin := k
		if bin > n/2 {
			bin -= n
		}
		f := float64(bin) * fs / float64(n)
		if angular {
			f *= 2 * math.Pi
		}
		freq[k] = f
	}

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	if shift {
		order = shiftPermutation(n)
	}

	omega = make([]float64, 0, n)
	magnitude = make([]float64, 0, n)
	phase = make([]float64, 0, n)
	for _, idx := range order {
		w := freq[idx]
		if omegaRange != nil && math.Abs(w) > *omegaRange {
			continue
		}
		c := spectrum[idx]
		omega = append(omega, w)
		magnitude = append(magnitude, math.Hypot(real(c), imag(c)))
		phase = append(phase, math.Atan2(imag(c), real(c)))
	}
	return omega, magnitude, phase
}
