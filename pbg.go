// Package pbg compiles and evaluates Prefix Boolean Grammar expressions: a
// fully-parenthesized, prefix-operator boolean expression language over
// booleans, numbers, strings, dates, and named variables (spec section 1).
//
// Parse turns source text into a CompiledExpr; Evaluate walks it against a
// caller-supplied Dictionary to produce a single boolean result. Neither
// function prints anything or inspects the filesystem — both boundary
// concerns live in internal/render and cmd/pbg respectively.
package pbg

import (
	"github.com/prefixbool/pbg/internal/ast"
	"github.com/prefixbool/pbg/internal/evaluator"
	"github.com/prefixbool/pbg/internal/lexer"
	"github.com/prefixbool/pbg/internal/parser"
)

// CompiledExpr is a parsed PBG expression, ready for (repeated) evaluation.
type CompiledExpr = ast.CompiledExpr

// Dictionary resolves a variable name to its value. See
// internal/evaluator.Dictionary for the exact NULL-means-missing contract.
type Dictionary = evaluator.Dictionary

// Parse scans and parses src into a CompiledExpr. It returns a *pbgerr.Error
// wrapped as error for any malformed input — unbalanced parentheses, an
// unrecognized token, a wrong operator arity, and so on (spec section 4).
func Parse(src []byte) (*CompiledExpr, error) {
	fields, lengths, closings, err := lexer.Scan(src)
	if err != nil {
		return nil, err
	}
	return parser.Build(src, fields, lengths, closings)
}

// Evaluate resolves expr's variables against dict and returns the boolean
// result of the tree walk. expr may be evaluated repeatedly, including
// against different dictionaries, since Evaluate restores expr's internal
// state before returning (spec section 5).
func Evaluate(expr *CompiledExpr, dict Dictionary) (bool, error) {
	return evaluator.Evaluate(expr, dict)
}

// Free releases expr's arenas ahead of garbage collection. Calling it is
// optional — it exists for callers compiling many short-lived expressions
// in a tight loop — and it is safe to call more than once.
func Free(expr *CompiledExpr) {
	expr.Free()
}
