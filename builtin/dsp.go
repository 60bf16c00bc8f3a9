package builtin

import (
	"github.com/achronyme/core/environment"
	"github.com/achronyme/core/errs"
	"github.com/achronyme/core/kernel/dsp"
	"github.com/achronyme/core/value"
)

func toComplex128(v value.Value, fn string) ([]complex128, error) {
	switch x := v.(type) {
	case value.Vector:
		out := make([]complex128, len(x.Data))
		for i, re := range x.Data {
			out[i] = complex(re, 0)
		}
		return out, nil
	case value.ComplexVector:
		out := make([]complex128, len(x.Re))
		for i := range x.Re {
			out[i] = complex(x.Re[i], x.Im[i])
		}
		return out, nil
	default:
		return nil, errs.New(errs.TypeError, "%s expects a Vector or ComplexVector, got %s", fn, v.Type())
	}
}

func fromComplex128(spectrum []complex128) value.ComplexVector {
	re := make([]float64, len(spectrum))
	im := make([]float64, len(spectrum))
	for i, c := range spectrum {
		re[i] = real(c)
		im[i] = imag(c)
	}
	return value.NewComplexVector(re, im)
}

func intArg(v value.Value, fn string) (int, error) {
	n, ok := v.(value.Number)
	if !ok {
		return 0, errs.New(errs.TypeError, "%s expects a Number, got %s", fn, v.Type())
	}
	return int(n), nil
}

// registerDSP binds the Fourier, convolution and windowing builtins.
// fft/ifft exchange value.ComplexVector, resolving the specification's
// complex-storage open question the same way fftSpectrum's columns are
// built: in lockstep, never by independently sorting one representation
// against another.
func registerDSP(env *environment.Environment) {
	bind(env, "fft", 1, 1, func(args []value.Value) (value.Value, error) {
		v, ok := args[0].(value.Vector)
		if !ok {
			return nil, errs.New(errs.TypeError, "fft expects a Vector, got %s", args[0].Type())
		}
		return fromComplex128(dsp.FFT(v.Data)), nil
	})
	bind(env, "ifft", 1, 1, func(args []value.Value) (value.Value, error) {
		spectrum, err := toComplex128(args[0], "ifft")
		if err != nil {
			return nil, err
		}
		return fromComplex128(dsp.IFFT(spectrum)), nil
	})
	bind(env, "fftMag", 1, 1, func(args []value.Value) (value.Value, error) {
		spectrum, err := toComplex128(args[0], "fftMag")
		if err != nil {
			return nil, err
		}
		return value.NewVector(dsp.Magnitude(spectrum)), nil
	})
	bind(env, "fftPhase", 1, 1, func(args []value.Value) (value.Value, error) {
		spectrum, err := toComplex128(args[0], "fftPhase")
		if err != nil {
			return nil, err
		}
		return value.NewVector(dsp.Phase(spectrum)), nil
	})
	bind(env, "dft", 1, 1, func(args []value.Value) (value.Value, error) {
		v, ok := args[0].(value.Vector)
		if !ok {
			return nil, errs.New(errs.TypeError, "dft expects a Vector, got %s", args[0].Type())
		}
		return fromComplex128(dsp.DFT(v.Data)), nil
	})
	bind(env, "dftMag", 1, 1, func(args []value.Value) (value.Value, error) {
		v, ok := args[0].(value.Vector)
		if !ok {
			return nil, errs.New(errs.TypeError, "dftMag expects a Vector, got %s", args[0].Type())
		}
		return value.NewVector(dsp.Magnitude(dsp.DFT(v.Data))), nil
	})
	bind(env, "dftPhase", 1, 1, func(args []value.Value) (value.Value, error) {
		v, ok := args[0].(value.Vector)
		if !ok {
			return nil, errs.New(errs.TypeError, "dftPhase expects a Vector, got %s", args[0].Type())
		}
		return value.NewVector(dsp.Phase(dsp.DFT(v.Data))), nil
	})
	bind(env, "conv", 2, 2, func(args []value.Value) (value.Value, error) {
		x, h, err := twoVectorArgs(args, "conv")
		if err != nil {
			return nil, err
		}
		return value.NewVector(dsp.Conv(x, h)), nil
	})
	bind(env, "convFft", 2, 2, func(args []value.Value) (value.Value, error) {
		x, h, err := twoVectorArgs(args, "convFft")
		if err != nil {
			return nil, err
		}
		return value.NewVector(dsp.ConvFFT(x, h)), nil
	})
	bind(env, "hanning", 1, 1, func(args []value.Value) (value.Value, error) { return window(args, "hanning", dsp.Hanning) })
	bind(env, "hamming", 1, 1, func(args []value.Value) (value.Value, error) { return window(args, "hamming", dsp.Hamming) })
	bind(env, "blackman", 1, 1, func(args []value.Value) (value.Value, error) { return window(args, "blackman", dsp.Blackman) })
	bind(env, "fftshift", 1, 1, func(args []value.Value) (value.Value, error) {
		spectrum, err := toComplex128(args[0], "fftshift")
		if err != nil {
			return nil, err
		}
		return fromComplex128(dsp.FFTShift(spectrum)), nil
	})
	bind(env, "ifftshift", 1, 1, func(args []value.Value) (value.Value, error) {
		spectrum, err := toComplex128(args[0], "ifftshift")
		if err != nil {
			return nil, err
		}
		return fromComplex128(dsp.IFFTShift(spectrum)), nil
	})
	bind(env, "fftSpectrum", 4, 5, func(args []value.Value) (value.Value, error) {
		signal, ok := args[0].(value.Vector)
		if !ok {
			return nil, errs.New(errs.TypeError, "fftSpectrum expects a Vector signal, got %s", args[0].Type())
		}
		fs, ok := args[1].(value.Number)
		if !ok {
			return nil, errs.New(errs.TypeError, "fftSpectrum expects fs to be a Number")
		}
		shift := value.IsTruthy(args[2])
		angular := value.IsTruthy(args[3])
		var omegaRange *float64
		if len(args) == 5 {
			r, ok := args[4].(value.Number)
			if !ok {
				return nil, errs.New(errs.TypeError, "fftSpectrum expects omegaRange to be a Number")
			}
			f := float64(r)
			omegaRange = &f
		}
		omega, mag, phase := dsp.FFTSpectrum(signal.Data, float64(fs), shift, angular, omegaRange)
		n := len(omega)
		if n == 0 {
			return nil, errs.New(errs.InvalidArgument, "fftSpectrum: omegaRange excluded every bin")
		}
		data := make([]float64, n*3)
		for i := 0; i < n; i++ {
			data[i*3] = omega[i]
			data[i*3+1] = mag[i]
			data[i*3+2] = phase[i]
		}
		return value.NewMatrix(n, 3, data), nil
	})
}

func window(args []value.Value, fn string, f func(int) ([]float64, error)) (value.Value, error) {
	n, err := intArg(args[0], fn)
	if err != nil {
		return nil, err
	}
	data, err := f(n)
	if err != nil {
		return nil, err
	}
	return value.NewVector(data), nil
}
