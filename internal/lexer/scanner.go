// Package lexer is PBG's scanner (spec section 4.2): a single left-to-right
// pass over source bytes that validates structural soundness — balanced
// parentheses, terminated strings/variables, exactly one top-level
// expression, and "an opening '(' must be followed by an operator token" —
// while recording each token's (offset, length) and each ')' offset for the
// parser to consume.
package lexer

import (
	"github.com/prefixbool/pbg/internal/pbgerr"
	"github.com/prefixbool/pbg/internal/token"
)

// Scan validates src and returns the parallel field tables the parser
// drives its recursive descent from: fields[i]/lengths[i] describe the i'th
// token's byte span in src, and closings holds the byte offset of every
// ')'. The original C implementation ran this in two passes (a counting
// pass to size its malloc'd arrays, then a recording pass) because it had
// to preallocate; Go's growable slices make that unnecessary, so this is
// one pass — an implementation simplification, not a semantic change (see
// DESIGN.md).
func Scan(src []byte) (fields []int, lengths []int, closings []int, err error) {
	n := len(src)
	depth := 0
	reachedEnd := -1
	expectOperator := false

	for i := 0; i < n; i++ {
		c := src[i]
		if isWhitespace(c) {
			continue
		}

		if c == '(' {
			if expectOperator {
				return nil, nil, nil, pbgerr.Syntax(string(src), i, "an opening parenthesis must be followed by an operator")
			}
			depth++
			expectOperator = true
			continue
		}

		if c == ')' {
			if expectOperator {
				return nil, nil, nil, pbgerr.Syntax(string(src), i, "an opening parenthesis must be followed by an operator")
			}
			closings = append(closings, i)
			depth--
			if depth < 0 {
				return nil, nil, nil, pbgerr.Syntax(string(src), i, "too many closing parentheses")
			}
			if depth == 0 {
				if reachedEnd >= 0 {
					return nil, nil, nil, pbgerr.Syntax(string(src), reachedEnd, "more than one complete expression")
				}
				reachedEnd = i
			}
			continue
		}

		start := i
		switch {
		case c == '\'':
			i++
			for i < n && !(src[i] == '\'' && src[i-1] != '\\') {
				i++
			}
			if i >= n {
				return nil, nil, nil, pbgerr.Syntax(string(src), start, "unclosed string")
			}
		case c == '[':
			i++
			for i < n && !(src[i] == ']' && src[i-1] != '\\') {
				i++
			}
			if i >= n {
				return nil, nil, nil, pbgerr.Syntax(string(src), start, "unclosed variable")
			}
		default:
			for i+1 < n && !isWhitespace(src[i+1]) && src[i+1] != '[' && src[i+1] != '(' && src[i+1] != ')' {
				i++
			}
		}
		length := i - start + 1

		if expectOperator {
			if !token.Classify(src[start:start+length]).IsOp() {
				return nil, nil, nil, pbgerr.Syntax(string(src), start, "an opening parenthesis must be followed by an operator")
			}
			expectOperator = false
		}

		fields = append(fields, start)
		lengths = append(lengths, length)
	}

	if len(closings) == 0 {
		return nil, nil, nil, pbgerr.Syntax(string(src), 0, "every PBG expression must be wrapped in parentheses")
	}
	if depth != 0 {
		return nil, nil, nil, pbgerr.Syntax(string(src), 0, "unmatched opening parentheses")
	}

	return fields, lengths, closings, nil
}

func isWhitespace(c byte) bool { return c == ' ' || c == '\t' || c == '\n' }
