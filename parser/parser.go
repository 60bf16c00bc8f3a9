/*
File    : achronyme/parser/parser.go

Package parser implements a recursive-descent, precedence-climbing
parser for the expression language, in the same token-lookahead style
as go-mix's Pratt parser (CurrToken/NextToken, an advance() that slides
the window, expectAdvance() to consume an expected token) but trimmed
to a single grammar with no statement/expression split and, per the
specification, no error recovery: the first mismatch ends the parse.
*/
package parser

import (
	"github.com/achronyme/core/ast"
	"github.com/achronyme/core/errs"
	"github.com/achronyme/core/lexer"
)

// Parser holds the full token stream (lexed eagerly, since the
// lambda-vs-parenthesized-expression and matrix-literal decisions both
// need lookahead past the current token) and a cursor into it.
type Parser struct {
	tokens []lexer.Token
	pos    int
	cur    lexer.Token
}

// Parse lexes src and parses it into a program AST. Unlike
// lexer.ConsumeTokens (built for tests, which drops the EOF marker),
// this keeps EOF as the final token so the parser always has a
// well-defined token to stop on.
func Parse(src string) (ast.Node, error) {
	lex := lexer.NewLexer(src)
	tokens := make([]lexer.Token, 0)
	for {
		tok, err := lex.NextToken()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
		if tok.Type == lexer.EOF_TYPE {
			break
		}
	}
	p := &Parser{tokens: tokens}
	p.cur = p.tokens[0]
	return p.parseProgram()
}

func (p *Parser) advance() {
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}
	p.cur = p.tokens[p.pos]
}

// peekAt returns the token offset tokens ahead of the cursor, clamped
// to the final (EOF) token.
func (p *Parser) peekAt(offset int) lexer.Token {
	idx := p.pos + offset
	if idx >= len(p.tokens) {
		idx = len(p.tokens) - 1
	}
	return p.tokens[idx]
}

func (p *Parser) expect(t lexer.TokenType, desc string) error {
	if p.cur.Type != t {
		return p.unexpected(desc)
	}
	return nil
}

func (p *Parser) expectAdvance(t lexer.TokenType, desc string) error {
	if err := p.expect(t, desc); err != nil {
		return err
	}
	p.advance()
	return nil
}

func (p *Parser) unexpected(expected string) error {
	return errs.NewAt(errs.ParseError, p.cur.Position, "expected %s, found %q", expected, p.cur.Literal)
}

// parseProgram parses `expr (';' expr)* ';'?` through EOF.
func (p *Parser) parseProgram() (ast.Node, error) {
	start := p.cur.Position
	exprs, err := p.parseExprList()
	if err != nil {
		return nil, err
	}
	if p.cur.Type != lexer.EOF_TYPE {
		return nil, p.unexpected("end of input")
	}
	if len(exprs) == 1 {
		return exprs[0], nil
	}
	return &ast.Sequence{Position: start, Exprs: exprs}, nil
}

func (p *Parser) parseExprList() ([]ast.Node, error) {
	exprs := []ast.Node{}
	e, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	exprs = append(exprs, e)
	for p.cur.Type == lexer.SEMICOLON {
		p.advance()
		if p.cur.Type == lexer.EOF_TYPE {
			break
		}
		e, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, e)
	}
	return exprs, nil
}
