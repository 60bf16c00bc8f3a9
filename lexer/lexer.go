/*
File    : achronyme/lexer/lexer.go

Lexer performs a single pass over UTF-8 source, skipping whitespace and
producing Tokens on demand. The scanning strategy (current byte + one
byte of lookahead, greedy resolution of multi-character operators)
follows the go-mix lexer; the character classes themselves are reduced
to the arithmetic/comparison/structural set the expression grammar uses.
*/
package lexer

import "github.com/achronyme/core/errs"

// Lexer holds the scanning position over a source string.
type Lexer struct {
	Src       string
	Current   byte
	Position  int
	SrcLength int
	Line      int
	Column    int
}

// NewLexer creates a Lexer positioned at the start of src.
func NewLexer(src string) *Lexer {
	current := byte(0)
	if len(src) > 0 {
		current = src[0]
	}
	return &Lexer{Src: src, Current: current, SrcLength: len(src), Line: 1, Column: 1}
}

// Peek looks one byte ahead without consuming it.
func (lex *Lexer) Peek() byte {
	if lex.Position+1 >= lex.SrcLength {
		return 0
	}
	return lex.Src[lex.Position+1]
}

// Advance consumes the current byte and moves to the next.
func (lex *Lexer) Advance() {
	if lex.Current == '\n' {
		lex.Line++
		lex.Column = 1
	} else {
		lex.Column++
	}
	lex.Position++
	if lex.Position >= lex.SrcLength {
		lex.Current = 0
		lex.Position = lex.SrcLength
	} else {
		lex.Current = lex.Src[lex.Position]
	}
}

// skipWhitespace consumes runs of space, tab, newline and carriage return.
func (lex *Lexer) skipWhitespace() {
	for lex.Current == ' ' || lex.Current == '\t' || lex.Current == '\n' || lex.Current == '\r' {
		lex.Advance()
	}
}

// NextToken scans and returns the next token, or an EOF_TYPE token at the
// end of the source. A malformed character or literal returns a LexError.
func (lex *Lexer) NextToken() (Token, error) {
	lex.skipWhitespace()

	pos, line, col := lex.Position, lex.Line, lex.Column

	switch lex.Current {
	case 0:
		return NewToken(EOF_TYPE, "EOF", pos, line, col), nil
	case '+':
		lex.Advance()
		return NewToken(PLUS_OP, "+", pos, line, col), nil
	case '-':
		lex.Advance()
		return NewToken(MINUS_OP, "-", pos, line, col), nil
	case '*':
		lex.Advance()
		return NewToken(MUL_OP, "*", pos, line, col), nil
	case '/':
		lex.Advance()
		return NewToken(DIV_OP, "/", pos, line, col), nil
	case '%':
		lex.Advance()
		return NewToken(MOD_OP, "%", pos, line, col), nil
	case '^':
		lex.Advance()
		return NewToken(CARET_OP, "^", pos, line, col), nil
	case '(':
		lex.Advance()
		return NewToken(LPAREN, "(", pos, line, col), nil
	case ')':
		lex.Advance()
		return NewToken(RPAREN, ")", pos, line, col), nil
	case '[':
		lex.Advance()
		return NewToken(LBRACKET, "[", pos, line, col), nil
	case ']':
		lex.Advance()
		return NewToken(RBRACKET, "]", pos, line, col), nil
	case ',':
		lex.Advance()
		return NewToken(COMMA, ",", pos, line, col), nil
	case ';':
		lex.Advance()
		return NewToken(SEMICOLON, ";", pos, line, col), nil
	case '=':
		lex.Advance()
		if lex.Current == '=' {
			lex.Advance()
			return NewToken(EQ, "==", pos, line, col), nil
		}
		if lex.Current == '>' {
			lex.Advance()
			return NewToken(ARROW, "=>", pos, line, col), nil
		}
		return NewToken(ASSIGN, "=", pos, line, col), nil
	case '!':
		if lex.Peek() == '=' {
			lex.Advance()
			lex.Advance()
			return NewToken(NE, "!=", pos, line, col), nil
		}
		return Token{}, errs.NewAt(errs.LexError, pos, "unexpected character %q", lex.Current)
	case '<':
		lex.Advance()
		if lex.Current == '=' {
			lex.Advance()
			return NewToken(LE, "<=", pos, line, col), nil
		}
		return NewToken(LT, "<", pos, line, col), nil
	case '>':
		lex.Advance()
		if lex.Current == '=' {
			lex.Advance()
			return NewToken(GE, ">=", pos, line, col), nil
		}
		return NewToken(GT, ">", pos, line, col), nil
	}

	if isDigit(lex.Current) {
		return lex.readNumber()
	}
	if isAlpha(lex.Current) || lex.Current == '_' {
		return lex.readIdentifier()
	}

	return Token{}, errs.NewAt(errs.LexError, pos, "unexpected character %q", lex.Current)
}

// readNumber scans a Number token: digits, an optional fractional part,
// and an optional exponent (e/E with optional sign).
func (lex *Lexer) readNumber() (Token, error) {
	pos, line, col := lex.Position, lex.Line, lex.Column
	start := lex.Position

	for isDigit(lex.Current) {
		lex.Advance()
	}
	if lex.Current == '.' && isDigit(lex.Peek()) {
		lex.Advance()
		for isDigit(lex.Current) {
			lex.Advance()
		}
	}
	if lex.Current == 'e' || lex.Current == 'E' {
		save := lex.Position
		saveLine, saveCol, saveCur := lex.Line, lex.Column, lex.Current
		lex.Advance()
		if lex.Current == '+' || lex.Current == '-' {
			lex.Advance()
		}
		if isDigit(lex.Current) {
			for isDigit(lex.Current) {
				lex.Advance()
			}
		} else {
			// Not actually an exponent; back out.
			lex.Position, lex.Line, lex.Column, lex.Current = save, saveLine, saveCol, saveCur
		}
	}

	literal := lex.Src[start:lex.Position]
	return NewToken(NUMBER_LIT, literal, pos, line, col), nil
}

// readIdentifier scans an identifier and classifies it against the
// keyword table. The bare identifier "i" is returned as a plain IDENT;
// the parser's primary-expression rule decides whether it binds to the
// imaginary unit.
func (lex *Lexer) readIdentifier() (Token, error) {
	pos, line, col := lex.Position, lex.Line, lex.Column
	start := lex.Position
	for isAlphaNumeric(lex.Current) || lex.Current == '_' {
		lex.Advance()
	}
	literal := lex.Src[start:lex.Position]
	return NewToken(lookupIdent(literal), literal, pos, line, col), nil
}

// ConsumeTokens scans every token in the source and returns them, without
// the trailing EOF marker. Useful for tests and debugging.
func (lex *Lexer) ConsumeTokens() ([]Token, error) {
	tokens := make([]Token, 0)
	for {
		tok, err := lex.NextToken()
		if err != nil {
			return tokens, err
		}
		if tok.Type == EOF_TYPE {
			break
		}
		tokens = append(tokens, tok)
	}
	return tokens, nil
}
