/*
File: achronyme/lexer/lexer_utils.go
*/
package lexer

import "unicode"

// isDigit reports whether c is an ASCII decimal digit.
func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// isAlpha reports whether c is a letter, per Unicode's letter class.
func isAlpha(c byte) bool {
	return unicode.IsLetter(rune(c))
}

// isAlphaNumeric reports whether c is a letter or digit.
func isAlphaNumeric(c byte) bool {
	return isAlpha(c) || isDigit(c)
}
