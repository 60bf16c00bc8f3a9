/*
File    : achronyme/lambda/lambda.go

Package lambda holds the two function-shaped value.Value variants: user
lambdas and builtins. Both need to sit in an environment.Environment
frame, and the user lambda additionally needs to reference an ast.Node
body and its own captured frame, so neither can live in package value
without creating a value <-> environment import cycle — the same reason
go-mix keeps function.Function outside its objects package.
*/
package lambda

import (
	"fmt"
	"strings"

	"github.com/achronyme/core/ast"
	"github.com/achronyme/core/environment"
	"github.com/achronyme/core/value"
)

// Lambda is a user-defined function: its parameter names, its body
// expression, and the environment frame it closed over at the moment
// it was created (see environment.Environment.Copy).
type Lambda struct {
	Params []string
	Body   ast.Node
	Env    *environment.Environment
}

func (l *Lambda) Type() value.Type { return value.FunctionType }

func (l *Lambda) String() string {
	return fmt.Sprintf("<function(%s)>", strings.Join(l.Params, ", "))
}

// Arity returns the number of parameters l expects.
func (l *Lambda) Arity() int { return len(l.Params) }

// Builtin wraps a native Go function so it can be bound in an
// Environment and called through the same Call path as a Lambda.
// MinArgs/MaxArgs bound the accepted argument count; MaxArgs < 0 means
// variadic (no upper bound).
type Builtin struct {
	Name    string
	MinArgs int
	MaxArgs int // -1 for variadic
	Fn      func(args []value.Value) (value.Value, error)
}

func (b *Builtin) Type() value.Type { return value.FunctionType }

func (b *Builtin) String() string { return fmt.Sprintf("<builtin:%s>", b.Name) }

func (b *Builtin) Arity() int { return b.MinArgs }

// AcceptsArity reports whether n arguments are within b's declared range.
func (b *Builtin) AcceptsArity(n int) bool {
	if n < b.MinArgs {
		return false
	}
	if b.MaxArgs >= 0 && n > b.MaxArgs {
		return false
	}
	return true
}

// Callable is implemented by both Lambda and Builtin, letting eval
// dispatch a Call node without a type switch on every call site.
type Callable interface {
	value.Value
	Arity() int
}
