// Package token is PBG's lexical classifier (spec section 4.1): given a
// token's raw bytes, decide which ast.Kind it denotes. It does not scan
// source text itself — internal/lexer does that — and it never allocates
// node payloads; it only classifies.
package token

import "github.com/prefixbool/pbg/internal/ast"

// Classify determines the Kind of a single token, already isolated by the
// scanner (whitespace-trimmed, spanning a full bare run, quoted string, or
// bracketed variable). It returns ast.NULL if s matches nothing.
//
// Order matters, exactly as spec section 4.1 lists it: keyword and
// type-literal exact matches are tried before the number/date/string/
// variable shape tests, which are tried before operator matches, so that
// e.g. "TRUE" is never misread as an operator run.
func Classify(s []byte) ast.Kind {
	switch {
	case isTrue(s):
		return ast.TRUE
	case isFalse(s):
		return ast.FALSE
	case isKeyword(s, "BOOL"):
		return ast.TPBool
	case isKeyword(s, "DATE"):
		return ast.TPDate
	case isKeyword(s, "NUMBER"):
		return ast.TPNumber
	case isKeyword(s, "STRING"):
		return ast.TPString
	case isNumber(s):
		return ast.NUMBER
	case isDateShape(s):
		return ast.DATE
	case isString(s):
		return ast.STRING
	case isVar(s):
		return ast.VAR
	}
	if op := classifyOperator(s); op != ast.NULL {
		return op
	}
	return ast.NULL
}

func isKeyword(s []byte, kw string) bool {
	return string(s) == kw
}

func isTrue(s []byte) bool {
	return len(s) == 4 && s[0] == 'T' && s[1] == 'R' && s[2] == 'U' && s[3] == 'E'
}

func isFalse(s []byte) bool {
	return len(s) == 5 && s[0] == 'F' && s[1] == 'A' && s[2] == 'L' && s[3] == 'S' && s[4] == 'E'
}

func isString(s []byte) bool {
	return len(s) >= 2 && s[0] == '\'' && s[len(s)-1] == '\''
}

func isVar(s []byte) bool {
	return len(s) >= 2 && s[0] == '[' && s[len(s)-1] == ']'
}

// isDateShape checks only the YYYY-MM-DD digit shape (spec section 4.1
// item 3); range validation of month/day happens later, when the literal
// node is actually constructed (see internal/ast.NewLiteral), so it can
// report a source offset.
func isDateShape(s []byte) bool {
	return len(s) == 10 &&
		isDigit(s[0]) && isDigit(s[1]) && isDigit(s[2]) && isDigit(s[3]) &&
		s[4] == '-' &&
		isDigit(s[5]) && isDigit(s[6]) &&
		s[7] == '-' &&
		isDigit(s[8]) && isDigit(s[9])
}

func classifyOperator(s []byte) ast.Kind {
	if len(s) == 1 {
		switch s[0] {
		case '!':
			return ast.NOT
		case '&':
			return ast.AND
		case '|':
			return ast.OR
		case '=':
			return ast.EQ
		case '<':
			return ast.LT
		case '>':
			return ast.GT
		case '?':
			return ast.EXST
		case '@':
			return ast.TYPE
		}
	}
	if len(s) == 2 {
		switch {
		case s[0] == '!' && s[1] == '=':
			return ast.NEQ
		case s[0] == '<' && s[1] == '=':
			return ast.LTE
		case s[0] == '>' && s[1] == '=':
			return ast.GTE
		}
	}
	return ast.NULL
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// isNumber checks the full number grammar (spec section 4.1 item 2):
//
//	sign? (0 | [1-9][0-9]*) ('.' [0-9]+)? ([eE] sign? [0-9]+)?
//
// consuming every byte of s. A leading '0' followed directly by another
// digit is rejected; '0.7' and '0e1' are accepted.
func isNumber(s []byte) bool {
	n := len(s)
	if n == 0 {
		return false
	}
	i := 0
	if s[i] == '+' || s[i] == '-' {
		i++
	}
	if i >= n || !isDigit(s[i]) {
		return false
	}
	if s[i] == '0' {
		i++
	} else {
		for i < n && isDigit(s[i]) {
			i++
		}
	}
	if i < n && s[i] == '.' {
		i++
		if i >= n || !isDigit(s[i]) {
			return false
		}
		for i < n && isDigit(s[i]) {
			i++
		}
	}
	if i < n && (s[i] == 'e' || s[i] == 'E') {
		i++
		if i < n && (s[i] == '+' || s[i] == '-') {
			i++
		}
		if i >= n || !isDigit(s[i]) {
			return false
		}
		for i < n && isDigit(s[i]) {
			i++
		}
	}
	return i == n
}
