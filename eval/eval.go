/*
File    : achronyme/eval/eval.go

Package eval implements Component 6, the tree-walking evaluator: a
post-order traversal of the AST against a persistent Environment, the
same role go-mix's eval(par, exprNode) switch plays over its own node
set, generalized to this language's smaller grammar and its numeric
data model.
*/
package eval

import (
	"github.com/achronyme/core/ast"
	"github.com/achronyme/core/builtin"
	"github.com/achronyme/core/environment"
	"github.com/achronyme/core/errs"
	"github.com/achronyme/core/kernel/numeric"
	"github.com/achronyme/core/lambda"
	"github.com/achronyme/core/parser"
	"github.com/achronyme/core/value"
)

// Evaluator holds the root Environment frame, which survives across
// calls to EvalSource so a REPL-style host retains user bindings
// between evaluations, plus a snapshot of the builtin bindings so
// Reset can restore exactly that baseline.
type Evaluator struct {
	Root     *environment.Environment
	builtins map[string]value.Value
}

// New builds an Evaluator with the built-in registry bound in its root
// frame. ev.Apply is passed into builtin.Register as a callback rather
// than package builtin importing package eval, so builtin functions
// that must call user lambdas (map, filter, reduce, pipe, compose) take
// the Apply function as a parameter instead.
func New() *Evaluator {
	root := environment.New(nil)
	ev := &Evaluator{Root: root}
	builtin.Register(root, ev.Apply)
	ev.builtins = make(map[string]value.Value, len(root.Bindings))
	for k, v := range root.Bindings {
		ev.builtins[k] = v
	}
	return ev
}

// Reset pops every frame above the root and restores root bindings to
// exactly the builtin registry, discarding user lets.
func (e *Evaluator) Reset() {
	e.Root.Reset(e.builtins)
}

// EvalSource parses and evaluates src against the persistent root frame.
func (e *Evaluator) EvalSource(src string) (value.Value, error) {
	node, err := parser.Parse(src)
	if err != nil {
		return nil, err
	}
	return e.Eval(node, e.Root)
}

// Eval evaluates a single AST node against env.
func (e *Evaluator) Eval(node ast.Node, env *environment.Environment) (value.Value, error) {
	switch n := node.(type) {
	case *ast.NumberLit:
		return value.Number(n.Value), nil
	case *ast.ImagLit:
		return value.Complex{Re: 0, Im: n.Value}, nil
	case *ast.Ident:
		v, ok := env.LookUp(n.Name)
		if !ok {
			return nil, errs.NewAt(errs.UndefinedVariable, n.Position, "undefined variable %q", n.Name)
		}
		return v, nil
	case *ast.VarDecl:
		v, err := e.Eval(n.Expr, env)
		if err != nil {
			return nil, err
		}
		env.Bind(n.Name, v)
		return v, nil
	case *ast.Lambda:
		return &lambda.Lambda{Params: n.Params, Body: n.Body, Env: env.Copy()}, nil
	case *ast.UnaryOp:
		operand, err := e.Eval(n.Operand, env)
		if err != nil {
			return nil, err
		}
		result, err := numeric.Negate(operand)
		if err != nil {
			return nil, withPosition(err, n.Position)
		}
		return result, nil
	case *ast.BinaryOp:
		return e.evalBinary(n, env)
	case *ast.VectorLit:
		return e.evalVectorLit(n, env)
	case *ast.MatrixLit:
		return e.evalMatrixLit(n, env)
	case *ast.Call:
		return e.evalCall(n, env)
	case *ast.Sequence:
		var result value.Value
		for _, expr := range n.Exprs {
			v, err := e.Eval(expr, env)
			if err != nil {
				return nil, err
			}
			result = v
		}
		return result, nil
	default:
		return nil, errs.NewAt(errs.ParseError, node.Pos(), "unhandled node type %T", node)
	}
}

func (e *Evaluator) evalBinary(n *ast.BinaryOp, env *environment.Environment) (value.Value, error) {
	left, err := e.Eval(n.Left, env)
	if err != nil {
		return nil, err
	}
	right, err := e.Eval(n.Right, env)
	if err != nil {
		return nil, err
	}
	op := numeric.Op(n.Op)
	var result value.Value
	switch op {
	case numeric.Lt, numeric.Le, numeric.Gt, numeric.Ge, numeric.Eq, numeric.Ne:
		result, err = numeric.Compare(op, left, right)
	default:
		result, err = numeric.Binary(op, left, right)
	}
	if err != nil {
		return nil, withPosition(err, n.Position)
	}
	return result, nil
}

// evalVectorLit evaluates each element left-to-right; an all-Number
// result becomes a Vector, any Complex element promotes the whole
// literal to a ComplexVector (Number elements contribute a zero
// imaginary part), matching the coercion rule BinaryOp already applies.
func (e *Evaluator) evalVectorLit(n *ast.VectorLit, env *environment.Environment) (value.Value, error) {
	values := make([]value.Value, len(n.Elements))
	hasComplex := false
	for i, elem := range n.Elements {
		v, err := e.Eval(elem, env)
		if err != nil {
			return nil, err
		}
		switch v.(type) {
		case value.Number:
		case value.Complex:
			hasComplex = true
		default:
			return nil, errs.NewAt(errs.TypeError, elem.Pos(), "vector elements must be numbers, got %s", v.Type())
		}
		values[i] = v
	}
	if hasComplex {
		re := make([]float64, len(values))
		im := make([]float64, len(values))
		for i, v := range values {
			switch n := v.(type) {
			case value.Number:
				re[i] = float64(n)
			case value.Complex:
				re[i], im[i] = n.Re, n.Im
			}
		}
		return value.NewComplexVector(re, im), nil
	}
	data := make([]float64, len(values))
	for i, v := range values {
		data[i] = float64(v.(value.Number))
	}
	return value.NewVector(data), nil
}

func (e *Evaluator) evalMatrixLit(n *ast.MatrixLit, env *environment.Environment) (value.Value, error) {
	rows := len(n.Rows)
	cols := 0
	if rows > 0 {
		cols = len(n.Rows[0])
	}
	data := make([]float64, 0, rows*cols)
	for _, row := range n.Rows {
		for _, elem := range row {
			v, err := e.Eval(elem, env)
			if err != nil {
				return nil, err
			}
			num, ok := v.(value.Number)
			if !ok {
				return nil, errs.NewAt(errs.TypeError, elem.Pos(), "matrix elements must be numbers, got %s", v.Type())
			}
			data = append(data, float64(num))
		}
	}
	return value.NewMatrix(rows, cols, data), nil
}

func (e *Evaluator) evalCall(n *ast.Call, env *environment.Environment) (value.Value, error) {
	callee, err := e.Eval(n.Callee, env)
	if err != nil {
		return nil, err
	}
	args := make([]value.Value, len(n.Args))
	for i, a := range n.Args {
		v, err := e.Eval(a, env)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}
	result, err := e.Apply(callee, args)
	if err != nil {
		return nil, withPosition(err, n.Position)
	}
	return result, nil
}

// Apply invokes callee (a Lambda or Builtin) with args. It is exported
// so the builtin registry's higher-order functions (map, filter,
// reduce, pipe, compose) can call back into user-supplied functions
// without package builtin importing package eval.
func (e *Evaluator) Apply(callee value.Value, args []value.Value) (value.Value, error) {
	switch fn := callee.(type) {
	case *lambda.Lambda:
		if len(args) != len(fn.Params) {
			return nil, errs.New(errs.ArityMismatch, "function expects %d argument(s), got %d", len(fn.Params), len(args))
		}
		frame := environment.New(fn.Env)
		for i, p := range fn.Params {
			frame.Bind(p, args[i])
		}
		return e.Eval(fn.Body, frame)
	case *lambda.Builtin:
		if !fn.AcceptsArity(len(args)) {
			return nil, errs.New(errs.ArityMismatch, "%s expects between %d and %d argument(s), got %d", fn.Name, fn.MinArgs, maxArgDisplay(fn), len(args))
		}
		return fn.Fn(args)
	default:
		return nil, errs.New(errs.NotCallable, "value of type %s is not callable", callee.Type())
	}
}

func maxArgDisplay(b *lambda.Builtin) int {
	if b.MaxArgs < 0 {
		return b.MinArgs
	}
	return b.MaxArgs
}

// withPosition annotates a position-less error (errs.Position < 0, i.e.
// raised deep inside a kernel that has no notion of source position)
// with the AST node that triggered it, without overwriting a position
// a lower layer already set.
func withPosition(err error, pos int) error {
	e, ok := err.(*errs.Error)
	if !ok || e.Position >= 0 {
		return err
	}
	e.Position = pos
	return e
}
