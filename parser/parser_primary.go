package parser

import (
	"strconv"

	"github.com/achronyme/core/ast"
	"github.com/achronyme/core/errs"
	"github.com/achronyme/core/lexer"
)

// parsePrimary parses `NUMBER ('i')? | IDENT | '(' expr ')' | '[' ... ']'`.
func (p *Parser) parsePrimary() (ast.Node, error) {
	switch p.cur.Type {
	case lexer.NUMBER_LIT:
		return p.parseNumber()
	case lexer.IDENT:
		node := &ast.Ident{Position: p.cur.Position, Name: p.cur.Literal}
		p.advance()
		return node, nil
	case lexer.LPAREN:
		p.advance()
		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if err := p.expectAdvance(lexer.RPAREN, "')'"); err != nil {
			return nil, err
		}
		return inner, nil
	case lexer.LBRACKET:
		return p.parseBracketed()
	default:
		return nil, p.unexpected("an expression")
	}
}

func (p *Parser) parseNumber() (ast.Node, error) {
	pos := p.cur.Position
	f, err := strconv.ParseFloat(p.cur.Literal, 64)
	if err != nil {
		return nil, errs.NewAt(errs.ParseError, pos, "invalid numeric literal %q", p.cur.Literal)
	}
	p.advance()
	if p.cur.Type == lexer.IDENT && p.cur.Literal == "i" {
		p.advance()
		return &ast.ImagLit{Position: pos, Value: f}, nil
	}
	return &ast.NumberLit{Position: pos, Value: f}, nil
}

// parseBracketed parses either a vector literal `[e, e, ...]` or a
// matrix literal `[[e, ...], [e, ...], ...]`: the two share an opening
// '[', so the choice is made by checking whether the first element
// itself starts with '['.
func (p *Parser) parseBracketed() (ast.Node, error) {
	start := p.cur.Position
	p.advance() // consume outer '['

	if p.cur.Type == lexer.RBRACKET {
		p.advance()
		return &ast.VectorLit{Position: start, Elements: []ast.Node{}}, nil
	}

	if p.cur.Type == lexer.LBRACKET {
		return p.parseMatrixRows(start)
	}

	elements, err := p.parseExprCommaList(lexer.RBRACKET)
	if err != nil {
		return nil, err
	}
	if err := p.expectAdvance(lexer.RBRACKET, "']'"); err != nil {
		return nil, err
	}
	return &ast.VectorLit{Position: start, Elements: elements}, nil
}

func (p *Parser) parseMatrixRows(start int) (ast.Node, error) {
	rows := [][]ast.Node{}
	rowLen := -1
	for {
		if err := p.expectAdvance(lexer.LBRACKET, "'['"); err != nil {
			return nil, err
		}
		row, err := p.parseExprCommaList(lexer.RBRACKET)
		if err != nil {
			return nil, err
		}
		if err := p.expectAdvance(lexer.RBRACKET, "']'"); err != nil {
			return nil, err
		}
		if rowLen == -1 {
			rowLen = len(row)
		} else if len(row) != rowLen {
			return nil, errs.NewAt(errs.ParseError, start, "ragged matrix literal: row has %d elements, expected %d", len(row), rowLen)
		}
		rows = append(rows, row)
		if p.cur.Type == lexer.COMMA {
			p.advance()
			continue
		}
		break
	}
	if err := p.expectAdvance(lexer.RBRACKET, "']'"); err != nil {
		return nil, err
	}
	return &ast.MatrixLit{Position: start, Rows: rows}, nil
}

func (p *Parser) parseExprCommaList(end lexer.TokenType) ([]ast.Node, error) {
	elements := []ast.Node{}
	if p.cur.Type == end {
		return elements, nil
	}
	for {
		e, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		elements = append(elements, e)
		if p.cur.Type == lexer.COMMA {
			p.advance()
			continue
		}
		break
	}
	return elements, nil
}
