package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func tokenTypes(toks []Token) []TokenType {
	types := make([]TokenType, len(toks))
	for i, t := range toks {
		types[i] = t.Type
	}
	return types
}

func TestConsumeTokens_Arithmetic(t *testing.T) {
	lex := NewLexer("2 + 3 * 4 ^ 2")
	toks, err := lex.ConsumeTokens()
	assert.NoError(t, err)
	assert.Equal(t, []TokenType{NUMBER_LIT, PLUS_OP, NUMBER_LIT, MUL_OP, NUMBER_LIT, CARET_OP, NUMBER_LIT}, tokenTypes(toks))
}

func TestConsumeTokens_MultiCharOperators(t *testing.T) {
	lex := NewLexer("x => y >= 2 != 3 <= 4 == 5")
	toks, err := lex.ConsumeTokens()
	assert.NoError(t, err)
	assert.Equal(t, []TokenType{IDENT, ARROW, IDENT, GE, NUMBER_LIT, NE, NUMBER_LIT, LE, NUMBER_LIT, EQ, NUMBER_LIT}, tokenTypes(toks))
}

func TestConsumeTokens_NumbersWithExponent(t *testing.T) {
	lex := NewLexer("1.5e3 2E-2 3.")
	toks, err := lex.ConsumeTokens()
	// "3." has no digit after the dot, so the dot is not consumed as part of
	// the number; on its own '.' starts no token and is rejected.
	assert.Error(t, err)
	assert.Equal(t, "1.5e3", toks[0].Literal)
	assert.Equal(t, "2E-2", toks[1].Literal)
	assert.Equal(t, "3", toks[2].Literal)
}

func TestConsumeTokens_LetKeyword(t *testing.T) {
	lex := NewLexer("let x = 5")
	toks, err := lex.ConsumeTokens()
	assert.NoError(t, err)
	assert.Equal(t, []TokenType{LET_KEY, IDENT, ASSIGN, NUMBER_LIT}, tokenTypes(toks))
}

func TestConsumeTokens_ImaginaryIdentifierIsPlainIdent(t *testing.T) {
	lex := NewLexer("3 i")
	toks, err := lex.ConsumeTokens()
	assert.NoError(t, err)
	assert.Equal(t, []TokenType{NUMBER_LIT, IDENT}, tokenTypes(toks))
	assert.Equal(t, "i", toks[1].Literal)
}

func TestConsumeTokens_LineAndColumnTracking(t *testing.T) {
	lex := NewLexer("1\n  2")
	toks, err := lex.ConsumeTokens()
	assert.NoError(t, err)
	assert.Equal(t, 1, toks[0].Line)
	assert.Equal(t, 2, toks[1].Line)
	assert.Equal(t, 3, toks[1].Column)
}

func TestNextToken_UnexpectedCharacter(t *testing.T) {
	lex := NewLexer("2 @ 3")
	_, err := lex.ConsumeTokens()
	assert.Error(t, err)
}
