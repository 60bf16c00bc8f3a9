package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/achronyme/core/ast"
)

func TestParse_Precedence(t *testing.T) {
	node, err := Parse("2 + 3 * 4")
	require.NoError(t, err)
	assert.Equal(t, "(2 + (3 * 4))", node.String())
}

func TestParse_ExponentIsRightAssociative(t *testing.T) {
	node, err := Parse("2 ^ 3 ^ 2")
	require.NoError(t, err)
	assert.Equal(t, "(2 ^ (3 ^ 2))", node.String())
}

func TestParse_AdditiveIsLeftAssociative(t *testing.T) {
	node, err := Parse("1 - 2 - 3")
	require.NoError(t, err)
	assert.Equal(t, "((1 - 2) - 3)", node.String())
}

func TestParse_ParenOverridesPrecedence(t *testing.T) {
	node, err := Parse("(2 + 3) * 4")
	require.NoError(t, err)
	assert.Equal(t, "((2 + 3) * 4)", node.String())
}

func TestParse_ComparisonDoesNotChain(t *testing.T) {
	_, err := Parse("1 < 2 < 3")
	require.Error(t, err)
}

func TestParse_LambdaBareIdentParam(t *testing.T) {
	node, err := Parse("x => x + 1")
	require.NoError(t, err)
	lam, ok := node.(*ast.Lambda)
	require.True(t, ok)
	assert.Equal(t, []string{"x"}, lam.Params)
}

func TestParse_LambdaParenParamsAndEmpty(t *testing.T) {
	node, err := Parse("(x, y) => x * y")
	require.NoError(t, err)
	lam, ok := node.(*ast.Lambda)
	require.True(t, ok)
	assert.Equal(t, []string{"x", "y"}, lam.Params)

	node, err = Parse("() => 1")
	require.NoError(t, err)
	lam, ok = node.(*ast.Lambda)
	require.True(t, ok)
	assert.Empty(t, lam.Params)
}

func TestParse_LambdaDuplicateParamsRejected(t *testing.T) {
	_, err := Parse("(x, x) => x")
	require.Error(t, err)
}

func TestParse_LetDeclaration(t *testing.T) {
	node, err := Parse("let x = 5")
	require.NoError(t, err)
	decl, ok := node.(*ast.VarDecl)
	require.True(t, ok)
	assert.Equal(t, "x", decl.Name)
}

func TestParse_Sequence(t *testing.T) {
	node, err := Parse("let x = 5; x + 1")
	require.NoError(t, err)
	seq, ok := node.(*ast.Sequence)
	require.True(t, ok)
	assert.Len(t, seq.Exprs, 2)
}

func TestParse_VectorLiteral(t *testing.T) {
	node, err := Parse("[1, 2, 3]")
	require.NoError(t, err)
	vec, ok := node.(*ast.VectorLit)
	require.True(t, ok)
	assert.Len(t, vec.Elements, 3)
}

func TestParse_MatrixLiteral(t *testing.T) {
	node, err := Parse("[[1, 2], [3, 4]]")
	require.NoError(t, err)
	m, ok := node.(*ast.MatrixLit)
	require.True(t, ok)
	assert.Len(t, m.Rows, 2)
}

func TestParse_RaggedMatrixRejected(t *testing.T) {
	_, err := Parse("[[1, 2], [3]]")
	require.Error(t, err)
}

func TestParse_ImaginaryLiteral(t *testing.T) {
	node, err := Parse("3i")
	require.NoError(t, err)
	_, ok := node.(*ast.ImagLit)
	assert.True(t, ok)
}

func TestParse_CallChaining(t *testing.T) {
	node, err := Parse("pipe(f, g)(3)")
	require.NoError(t, err)
	call, ok := node.(*ast.Call)
	require.True(t, ok)
	_, innerIsCall := call.Callee.(*ast.Call)
	assert.True(t, innerIsCall)
}

func TestParse_UnaryNegation(t *testing.T) {
	node, err := Parse("-5")
	require.NoError(t, err)
	_, ok := node.(*ast.UnaryOp)
	assert.True(t, ok)
}

func TestParse_UnexpectedTokenFails(t *testing.T) {
	_, err := Parse("1 +")
	require.Error(t, err)
}
