package parser

import (
	"github.com/achronyme/core/ast"
	"github.com/achronyme/core/errs"
	"github.com/achronyme/core/lexer"
)

// parseExpr implements the top three precedence levels: let-declaration,
// lambda, and everything below (comparison).
func (p *Parser) parseExpr() (ast.Node, error) {
	if p.cur.Type == lexer.LET_KEY {
		return p.parseLetDecl()
	}
	if params, ok := p.tryLambdaParams(); ok {
		return p.parseLambda(params)
	}
	return p.parseComparison()
}

func (p *Parser) parseLetDecl() (ast.Node, error) {
	start := p.cur.Position
	p.advance() // consume 'let'
	if p.cur.Type != lexer.IDENT {
		return nil, p.unexpected("identifier")
	}
	name := p.cur.Literal
	p.advance()
	if err := p.expectAdvance(lexer.ASSIGN, "'='"); err != nil {
		return nil, err
	}
	value, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	return &ast.VarDecl{Position: start, Name: name, Expr: value}, nil
}

// tryLambdaParams looks ahead from the current token, without consuming
// anything, to decide whether it begins a lambda parameter list: a bare
// identifier followed by '=>', or a parenthesized, comma-separated
// identifier list followed by '=>'. This lookahead is what lets the
// parser tell a lambda `(x, y) => x + y` apart from a parenthesized
// expression `(x + y)` before committing to either parse.
func (p *Parser) tryLambdaParams() ([]string, bool) {
	if p.cur.Type == lexer.IDENT && p.peekAt(1).Type == lexer.ARROW {
		return []string{p.cur.Literal}, true
	}
	if p.cur.Type != lexer.LPAREN {
		return nil, false
	}
	idx := 1
	params := []string{}
	if p.peekAt(idx).Type == lexer.RPAREN {
		idx++
	} else {
		for {
			tok := p.peekAt(idx)
			if tok.Type != lexer.IDENT {
				return nil, false
			}
			params = append(params, tok.Literal)
			idx++
			if p.peekAt(idx).Type == lexer.COMMA {
				idx++
				continue
			}
			break
		}
		if p.peekAt(idx).Type != lexer.RPAREN {
			return nil, false
		}
		idx++
	}
	if p.peekAt(idx).Type != lexer.ARROW {
		return nil, false
	}
	return params, true
}

func (p *Parser) parseLambda(params []string) (ast.Node, error) {
	start := p.cur.Position
	if p.cur.Type == lexer.IDENT {
		p.advance()
	} else {
		// Consume '(' params ')'.
		p.advance()
		if p.cur.Type != lexer.RPAREN {
			for {
				p.advance() // past IDENT
				if p.cur.Type == lexer.COMMA {
					p.advance()
					continue
				}
				break
			}
		}
		p.advance() // past ')'
	}
	if err := p.expectAdvance(lexer.ARROW, "'=>'"); err != nil {
		return nil, err
	}
	if err := distinctParams(params); err != nil {
		return nil, err
	}
	body, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	return &ast.Lambda{Position: start, Params: params, Body: body}, nil
}

func distinctParams(params []string) error {
	seen := make(map[string]bool, len(params))
	for _, name := range params {
		if seen[name] {
			return errs.New(errs.ParseError, "duplicate lambda parameter %q", name)
		}
		seen[name] = true
	}
	return nil
}

var comparisonOps = map[lexer.TokenType]string{
	lexer.LT: "<", lexer.LE: "<=", lexer.GT: ">", lexer.GE: ">=",
	lexer.EQ: "==", lexer.NE: "!=",
}

// parseComparison is non-associative: at most one comparison operator
// may appear at this level, so "a < b < c" is rejected rather than
// silently parsed left-to-right.
func (p *Parser) parseComparison() (ast.Node, error) {
	left, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}
	op, ok := comparisonOps[p.cur.Type]
	if !ok {
		return left, nil
	}
	pos := p.cur.Position
	p.advance()
	right, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}
	node := &ast.BinaryOp{Position: pos, Op: op, Left: left, Right: right}
	if _, ok := comparisonOps[p.cur.Type]; ok {
		return nil, errs.NewAt(errs.ParseError, p.cur.Position, "comparison operators do not chain")
	}
	return node, nil
}

func (p *Parser) parseAdditive() (ast.Node, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for p.cur.Type == lexer.PLUS_OP || p.cur.Type == lexer.MINUS_OP {
		op := "+"
		if p.cur.Type == lexer.MINUS_OP {
			op = "-"
		}
		pos := p.cur.Position
		p.advance()
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryOp{Position: pos, Op: op, Left: left, Right: right}
	}
	return left, nil
}

var termOps = map[lexer.TokenType]string{
	lexer.MUL_OP: "*", lexer.DIV_OP: "/", lexer.MOD_OP: "%",
}

func (p *Parser) parseTerm() (ast.Node, error) {
	left, err := p.parsePower()
	if err != nil {
		return nil, err
	}
	for {
		op, ok := termOps[p.cur.Type]
		if !ok {
			return left, nil
		}
		pos := p.cur.Position
		p.advance()
		right, err := p.parsePower()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryOp{Position: pos, Op: op, Left: left, Right: right}
	}
}

// parsePower is right-associative: "2^3^2" parses as "2^(3^2)".
func (p *Parser) parsePower() (ast.Node, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	if p.cur.Type != lexer.CARET_OP {
		return left, nil
	}
	pos := p.cur.Position
	p.advance()
	right, err := p.parsePower()
	if err != nil {
		return nil, err
	}
	return &ast.BinaryOp{Position: pos, Op: "^", Left: left, Right: right}, nil
}

func (p *Parser) parseUnary() (ast.Node, error) {
	if p.cur.Type == lexer.MINUS_OP {
		pos := p.cur.Position
		p.advance()
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &ast.UnaryOp{Position: pos, Op: "negate", Operand: operand}, nil
	}
	return p.parseCall()
}

// parseCall parses a primary followed by zero or more call suffixes,
// so that expressions like pipe(f, g)(3) chain correctly.
func (p *Parser) parseCall() (ast.Node, error) {
	node, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	for p.cur.Type == lexer.LPAREN {
		pos := p.cur.Position
		args, err := p.parseArgs()
		if err != nil {
			return nil, err
		}
		node = &ast.Call{Position: pos, Callee: node, Args: args}
	}
	return node, nil
}

func (p *Parser) parseArgs() ([]ast.Node, error) {
	if err := p.expectAdvance(lexer.LPAREN, "'('"); err != nil {
		return nil, err
	}
	args := []ast.Node{}
	if p.cur.Type == lexer.RPAREN {
		p.advance()
		return args, nil
	}
	for {
		arg, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		if p.cur.Type == lexer.COMMA {
			p.advance()
			continue
		}
		break
	}
	if err := p.expectAdvance(lexer.RPAREN, "')'"); err != nil {
		return nil, err
	}
	return args, nil
}
