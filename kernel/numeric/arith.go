/*
File    : achronyme/kernel/numeric/arith.go

Package numeric implements Component 8 of the core design, the
scalar/vector math kernels: the broadcasting and coercion rules that let
BinaryOp in the evaluator stay a single, uniform dispatch instead of a
combinatorial pile of type-pair special cases (the same shape go-mix's
parseBinaryExpression/evalBinary split gives arithmetic, generalized here
to five value variants instead of two).

Coercion follows the data model: Number promotes to Complex when paired
with one; Number broadcasts over Vector/Matrix; same-length Vectors and
same-shape Matrices go element-wise for +/-; Matrix*Matrix is conforming
matrix multiplication. Complex +, -, * and / use Go's built-in complex128
operators and exponentiation is delegated to math/cmplx, rather than
hand-rolled formulas.
*/
package numeric

import (
	"math"
	"math/cmplx"

	"github.com/achronyme/core/errs"
	"github.com/achronyme/core/value"
)

// Op identifies a binary operator for dispatch purposes.
type Op string

const (
	Add Op = "+"
	Sub Op = "-"
	Mul Op = "*"
	Div Op = "/"
	Mod Op = "%"
	Pow Op = "^"

	Lt Op = "<"
	Le Op = "<="
	Gt Op = ">"
	Ge Op = ">="
	Eq Op = "=="
	Ne Op = "!="
)

func scalarReal(op Op, a, b float64) (float64, error) {
	switch op {
	case Add:
		return a + b, nil
	case Sub:
		return a - b, nil
	case Mul:
		return a * b, nil
	case Div:
		return a / b, nil
	case Mod:
		return math.Mod(a, b), nil
	case Pow:
		return math.Pow(a, b), nil
	}
	return 0, errs.New(errs.TypeError, "operator %s is not an arithmetic operator", op)
}

func scalarComplex(op Op, a, b complex128) (complex128, error) {
	switch op {
	case Add:
		return a + b, nil
	case Sub:
		return a - b, nil
	case Mul:
		return a * b, nil
	case Div:
		return a / b, nil
	case Pow:
		return cmplx.Pow(a, b), nil
	case Mod:
		return 0, errs.New(errs.TypeError, "modulo is not defined for Complex operands")
	}
	return 0, errs.New(errs.TypeError, "operator %s is not an arithmetic operator", op)
}

func toComplex(c value.Complex) complex128 { return complex(c.Re, c.Im) }
func fromComplex(c complex128) value.Complex {
	return value.Complex{Re: real(c), Im: imag(c)}
}

// Compare evaluates a relational/equality operator over two Numbers,
// yielding Number(1) for true and Number(0) for false per the language's
// no-dedicated-Boolean-type rule.
func Compare(op Op, l, r value.Value) (value.Value, error) {
	ln, lok := l.(value.Number)
	rn, rok := r.(value.Number)
	if !lok || !rok {
		return nil, errs.New(errs.TypeError, "comparison %s requires two Numbers, got %s and %s", op, l.Type(), r.Type())
	}
	a, b := float64(ln), float64(rn)
	var result bool
	switch op {
	case Lt:
		result = a < b
	case Le:
		result = a <= b
	case Gt:
		result = a > b
	case Ge:
		result = a >= b
	case Eq:
		result = a == b
	case Ne:
		result = a != b
	default:
		return nil, errs.New(errs.TypeError, "operator %s is not a comparison operator", op)
	}
	if result {
		return value.Number(1), nil
	}
	return value.Number(0), nil
}

// Binary dispatches an arithmetic operator over the value pair per the
// coercion and broadcasting rules in the specification's data model.
func Binary(op Op, l, r value.Value) (value.Value, error) {
	switch lv := l.(type) {
	case value.Number:
		return binaryFromNumber(op, lv, r)
	case value.Complex:
		return binaryFromComplex(op, lv, r)
	case value.Vector:
		return binaryFromVector(op, lv, r)
	case value.Matrix:
		return binaryFromMatrix(op, lv, r)
	case value.ComplexVector:
		return binaryFromComplexVector(op, lv, r)
	}
	return nil, errs.New(errs.TypeError, "operator %s is not defined for %s", op, l.Type())
}

func binaryFromNumber(op Op, l value.Number, r value.Value) (value.Value, error) {
	switch rv := r.(type) {
	case value.Number:
		res, err := scalarReal(op, float64(l), float64(rv))
		if err != nil {
			return nil, err
		}
		return value.Number(res), nil
	case value.Complex:
		res, err := scalarComplex(op, complex(float64(l), 0), toComplex(rv))
		if err != nil {
			return nil, err
		}
		return fromComplex(res), nil
	case value.Vector:
		return mapVector(rv, func(x float64) (float64, error) { return scalarReal(op, float64(l), x) })
	case value.Matrix:
		return mapMatrix(rv, func(x float64) (float64, error) { return scalarReal(op, float64(l), x) })
	}
	return nil, errs.New(errs.TypeError, "operator %s is not defined between Number and %s", op, r.Type())
}

func binaryFromComplex(op Op, l value.Complex, r value.Value) (value.Value, error) {
	var rc complex128
	switch rv := r.(type) {
	case value.Number:
		rc = complex(float64(rv), 0)
	case value.Complex:
		rc = toComplex(rv)
	default:
		return nil, errs.New(errs.TypeError, "operator %s is not defined between Complex and %s", op, r.Type())
	}
	res, err := scalarComplex(op, toComplex(l), rc)
	if err != nil {
		return nil, err
	}
	return fromComplex(res), nil
}

func binaryFromVector(op Op, l value.Vector, r value.Value) (value.Value, error) {
	switch rv := r.(type) {
	case value.Number:
		return mapVector(l, func(x float64) (float64, error) { return scalarReal(op, x, float64(rv)) })
	case value.Vector:
		if len(l.Data) != len(rv.Data) {
			return nil, errs.New(errs.ShapeError, "vector operator %s requires equal length, got %d and %d", op, len(l.Data), len(rv.Data))
		}
		out := make([]float64, len(l.Data))
		for i := range out {
			res, err := scalarReal(op, l.Data[i], rv.Data[i])
			if err != nil {
				return nil, err
			}
			out[i] = res
		}
		return value.NewVector(out), nil
	}
	return nil, errs.New(errs.TypeError, "operator %s is not defined between Vector and %s", op, r.Type())
}

func binaryFromMatrix(op Op, l value.Matrix, r value.Value) (value.Value, error) {
	switch rv := r.(type) {
	case value.Number:
		return mapMatrix(l, func(x float64) (float64, error) { return scalarReal(op, x, float64(rv)) })
	case value.Matrix:
		if op == Mul {
			return MatMul(l, rv)
		}
		if op != Add && op != Sub {
			return nil, errs.New(errs.TypeError, "operator %s is not defined between two Matrices", op)
		}
		if l.Rows != rv.Rows || l.Cols != rv.Cols {
			return nil, errs.New(errs.ShapeError, "matrix operator %s requires identical shape, got %dx%d and %dx%d", op, l.Rows, l.Cols, rv.Rows, rv.Cols)
		}
		out := make([]float64, len(l.Data))
		for i := range out {
			res, err := scalarReal(op, l.Data[i], rv.Data[i])
			if err != nil {
				return nil, err
			}
			out[i] = res
		}
		return value.NewMatrix(l.Rows, l.Cols, out), nil
	}
	return nil, errs.New(errs.TypeError, "operator %s is not defined between Matrix and %s", op, r.Type())
}

func binaryFromComplexVector(op Op, l value.ComplexVector, r value.Value) (value.Value, error) {
	switch rv := r.(type) {
	case value.Number:
		re := make([]float64, len(l.Re))
		im := make([]float64, len(l.Im))
		for i := range l.Re {
			c, err := scalarComplex(op, complex(l.Re[i], l.Im[i]), complex(float64(rv), 0))
			if err != nil {
				return nil, err
			}
			re[i], im[i] = real(c), imag(c)
		}
		return value.NewComplexVector(re, im), nil
	case value.ComplexVector:
		if len(l.Re) != len(rv.Re) {
			return nil, errs.New(errs.ShapeError, "complex vector operator %s requires equal length, got %d and %d", op, len(l.Re), len(rv.Re))
		}
		re := make([]float64, len(l.Re))
		im := make([]float64, len(l.Im))
		for i := range l.Re {
			c, err := scalarComplex(op, complex(l.Re[i], l.Im[i]), complex(rv.Re[i], rv.Im[i]))
			if err != nil {
				return nil, err
			}
			re[i], im[i] = real(c), imag(c)
		}
		return value.NewComplexVector(re, im), nil
	}
	return nil, errs.New(errs.TypeError, "operator %s is not defined between ComplexVector and %s", op, r.Type())
}

func mapVector(v value.Vector, f func(float64) (float64, error)) (value.Value, error) {
	out := make([]float64, len(v.Data))
	for i, x := range v.Data {
		res, err := f(x)
		if err != nil {
			return nil, err
		}
		out[i] = res
	}
	return value.NewVector(out), nil
}

func mapMatrix(m value.Matrix, f func(float64) (float64, error)) (value.Value, error) {
	out := make([]float64, len(m.Data))
	for i, x := range m.Data {
		res, err := f(x)
		if err != nil {
			return nil, err
		}
		out[i] = res
	}
	return value.NewMatrix(m.Rows, m.Cols, out), nil
}

// MatMul computes the conforming matrix product (m×n)·(n×p) = (m×p).
func MatMul(a, b value.Matrix) (value.Matrix, error) {
	if a.Cols != b.Rows {
		return value.Matrix{}, errs.New(errs.ShapeError, "matrix multiplication requires inner dimensions to match, got %dx%d and %dx%d", a.Rows, a.Cols, b.Rows, b.Cols)
	}
	out := make([]float64, a.Rows*b.Cols)
	for i := 0; i < a.Rows; i++ {
		for k := 0; k < a.Cols; k++ {
			aik := a.At(i, k)
			if aik == 0 {
				continue
			}
			for j := 0; j < b.Cols; j++ {
				out[i*b.Cols+j] += aik * b.At(k, j)
			}
		}
	}
	return value.NewMatrix(a.Rows, b.Cols, out), nil
}

// Negate implements UnaryOp(negate) per-variant.
func Negate(v value.Value) (value.Value, error) {
	switch x := v.(type) {
	case value.Number:
		return -x, nil
	case value.Complex:
		return value.Complex{Re: -x.Re, Im: -x.Im}, nil
	case value.Vector:
		out := make([]float64, len(x.Data))
		for i, e := range x.Data {
			out[i] = -e
		}
		return value.NewVector(out), nil
	case value.Matrix:
		out := make([]float64, len(x.Data))
		for i, e := range x.Data {
			out[i] = -e
		}
		return value.NewMatrix(x.Rows, x.Cols, out), nil
	case value.ComplexVector:
		re := make([]float64, len(x.Re))
		im := make([]float64, len(x.Im))
		for i := range x.Re {
			re[i], im[i] = -x.Re[i], -x.Im[i]
		}
		return value.NewComplexVector(re, im), nil
	}
	return nil, errs.New(errs.TypeError, "negation is not defined for %s", v.Type())
}

// UnaryScalar applies a scalar math function element-wise over a Number,
// Vector or Matrix, per the "vectorized unary" contract every trig/exp/
// rounding built-in honors.
func UnaryScalar(f func(float64) float64, v value.Value) (value.Value, error) {
	switch x := v.(type) {
	case value.Number:
		return value.Number(f(float64(x))), nil
	case value.Vector:
		out := make([]float64, len(x.Data))
		for i, e := range x.Data {
			out[i] = f(e)
		}
		return value.NewVector(out), nil
	case value.Matrix:
		out := make([]float64, len(x.Data))
		for i, e := range x.Data {
			out[i] = f(e)
		}
		return value.NewMatrix(x.Rows, x.Cols, out), nil
	}
	return nil, errs.New(errs.TypeError, "this function requires a Number, Vector or Matrix, got %s", v.Type())
}
