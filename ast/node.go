/*
File    : achronyme/ast/node.go

The abstract syntax tree for the expression language. Every node kind
is a distinct struct implementing Node, in the same tagged-node style
as go-mix's parser package, but trimmed to the grammar this language
actually has: there is no statement/expression split here, since every
construct (including "let" declarations) evaluates to a value.
*/
package ast

// Node is the common interface implemented by every AST node. Pos is
// the byte offset of the node's leading token in the source, used to
// annotate runtime errors with a source position.
type Node interface {
	Pos() int
	String() string
}

// NumberLit is a real-number literal: 42, 3.14, 6.02e23.
type NumberLit struct {
	Position int
	Value    float64
}

func (n *NumberLit) Pos() int      { return n.Position }
func (n *NumberLit) String() string { return formatNumber(n.Value) }

// ImagLit is an imaginary-number literal written with a trailing i: 3i.
type ImagLit struct {
	Position int
	Value    float64
}

func (n *ImagLit) Pos() int      { return n.Position }
func (n *ImagLit) String() string { return formatNumber(n.Value) + "i" }

// Ident references a bound name: a variable or a parameter.
type Ident struct {
	Position int
	Name     string
}

func (n *Ident) Pos() int      { return n.Position }
func (n *Ident) String() string { return n.Name }

// VectorLit is a bracketed list of element expressions: [1, 2, 3].
type VectorLit struct {
	Position int
	Elements []Node
}

func (n *VectorLit) Pos() int { return n.Position }
func (n *VectorLit) String() string {
	s := "["
	for i, e := range n.Elements {
		if i > 0 {
			s += ", "
		}
		s += e.String()
	}
	return s + "]"
}

// MatrixLit is a bracketed list of row vectors: [[1, 2], [3, 4]].
type MatrixLit struct {
	Position int
	Rows     [][]Node
}

func (n *MatrixLit) Pos() int { return n.Position }
func (n *MatrixLit) String() string {
	s := "["
	for i, row := range n.Rows {
		if i > 0 {
			s += ", "
		}
		s += "["
		for j, e := range row {
			if j > 0 {
				s += ", "
			}
			s += e.String()
		}
		s += "]"
	}
	return s + "]"
}

// BinaryOp is a two-operand operator expression: left OP right.
type BinaryOp struct {
	Position int
	Op       string
	Left     Node
	Right    Node
}

func (n *BinaryOp) Pos() int      { return n.Position }
func (n *BinaryOp) String() string { return "(" + n.Left.String() + " " + n.Op + " " + n.Right.String() + ")" }

// UnaryOp is a single-operand prefix operator expression: -x.
type UnaryOp struct {
	Position int
	Op       string
	Operand  Node
}

func (n *UnaryOp) Pos() int      { return n.Position }
func (n *UnaryOp) String() string { return "(" + n.Op + n.Operand.String() + ")" }

// Call is a function application: callee(args...). Callee is usually
// an Ident (naming a builtin or a user-bound function) but can be any
// expression that evaluates to a function, e.g. (x => x+1)(2) or
// pipe(f, g)(3).
type Call struct {
	Position int
	Callee   Node
	Args     []Node
}

func (n *Call) Pos() int { return n.Position }
func (n *Call) String() string {
	s := n.Callee.String() + "("
	for i, a := range n.Args {
		if i > 0 {
			s += ", "
		}
		s += a.String()
	}
	return s + ")"
}

// Lambda is an anonymous function literal: x => x + 1, or (x, y) => x * y.
type Lambda struct {
	Position int
	Params   []string
	Body     Node
}

func (n *Lambda) Pos() int { return n.Position }
func (n *Lambda) String() string {
	s := "("
	for i, p := range n.Params {
		if i > 0 {
			s += ", "
		}
		s += p
	}
	return s + ") => " + n.Body.String()
}

// VarDecl is a let-binding: let name = expr. It evaluates to the bound
// value, so "let x = 5" can itself appear as a subexpression.
type VarDecl struct {
	Position int
	Name     string
	Expr     Node
}

func (n *VarDecl) Pos() int      { return n.Position }
func (n *VarDecl) String() string { return "let " + n.Name + " = " + n.Expr.String() }

// Sequence is a semicolon-separated list of top-level expressions; the
// program's value is the value of the last one.
type Sequence struct {
	Position int
	Exprs    []Node
}

func (n *Sequence) Pos() int { return n.Position }
func (n *Sequence) String() string {
	s := ""
	for i, e := range n.Exprs {
		if i > 0 {
			s += "; "
		}
		s += e.String()
	}
	return s
}
