// Package evaluator walks a compiled expression tree against a
// caller-supplied variable dictionary and produces a single boolean result
// (spec section 5).
package evaluator

import (
	"bytes"
	"math"

	"github.com/prefixbool/pbg/internal/ast"
	"github.com/prefixbool/pbg/internal/pbgerr"
)

// Dictionary resolves a variable name (the bytes between its '[' ']', with
// surrounding brackets stripped) to its value. It must return an
// ast.Node{Kind: ast.NULL} for an unknown name. EXST reads NULL as "does
// not exist"; every other operator rejects a NULL operand with
// OP_ARG_TYPE. A missing entry is therefore not an error on its own.
type Dictionary func(name []byte) ast.Node

// Evaluate resolves every variable in e against dict, walks the tree
// rooted at e.Root(), and returns the boolean result.
//
// Variable resolution happens once, in arena order, before the walk: the
// Variables arena is swapped to hold the resolved value nodes for the
// duration of the walk, then restored — so e is left exactly as it was
// found and can be evaluated again (e.g. against a different dictionary)
// without reparsing.
func Evaluate(e *ast.CompiledExpr, dict Dictionary) (bool, error) {
	if len(e.Variables) > 0 {
		original := e.Variables
		resolved := make([]ast.Node, len(original))
		for i, v := range original {
			resolved[i] = dict(v.Bytes)
		}
		e.Variables = resolved
		defer func() { e.Variables = original }()
	}

	root := e.Root()
	if root == nil {
		return false, pbgerr.State("cannot evaluate an empty expression")
	}
	return evalBool(e, root)
}

// evalBool evaluates node in a boolean context: TRUE/FALSE literals and
// operator nodes are valid; anything else (a bare NUMBER, STRING, DATE, or
// an unresolved NULL variable) is a type error, since none of those carry
// a boolean meaning on their own.
func evalBool(e *ast.CompiledExpr, node *ast.Node) (bool, error) {
	switch {
	case node.Kind == ast.TRUE:
		return true, nil
	case node.Kind == ast.FALSE:
		return false, nil
	case node.Kind.IsOp():
		return evalNode(e, node)
	default:
		return false, pbgerr.OpArgType()
	}
}

// evalNode dispatches an operator node to its evaluation rule.
func evalNode(e *ast.CompiledExpr, node *ast.Node) (bool, error) {
	switch node.Kind {
	case ast.NOT:
		v, err := evalBool(e, e.Get(node.Children[0]))
		if err != nil {
			return false, err
		}
		return !v, nil
	case ast.AND:
		for _, c := range node.Children {
			v, err := evalBool(e, e.Get(c))
			if err != nil {
				return false, err
			}
			if !v {
				return false, nil
			}
		}
		return true, nil
	case ast.OR:
		for _, c := range node.Children {
			v, err := evalBool(e, e.Get(c))
			if err != nil {
				return false, err
			}
			if v {
				return true, nil
			}
		}
		return false, nil
	case ast.EXST:
		return e.Get(node.Children[0]).Kind != ast.NULL, nil
	case ast.EQ:
		return evalEq(e, node)
	case ast.NEQ:
		return evalNeq(e, node)
	case ast.LT, ast.GT, ast.LTE, ast.GTE:
		return evalCompare(e, node)
	case ast.TYPE:
		return evalType(e, node)
	default:
		return false, pbgerr.State("evalNode called with a non-operator kind")
	}
}

// evalEq implements '='. A NULL child (an unresolved variable) is always a
// type error, regardless of the other children. Otherwise, if any child is
// boolean-valued (TRUE, FALSE, or a nested operator expression), every
// child is evaluated as a boolean and all must agree; else every child
// must share the same literal kind and payload.
func evalEq(e *ast.CompiledExpr, node *ast.Node) (bool, error) {
	anyBool := false
	for _, c := range node.Children {
		if e.Get(c).Kind == ast.NULL {
			return false, pbgerr.OpArgType()
		}
		if e.Get(c).Kind.IsBoolValued() {
			anyBool = true
		}
	}

	if anyBool {
		first, err := evalBool(e, e.Get(node.Children[0]))
		if err != nil {
			return false, err
		}
		for _, c := range node.Children[1:] {
			v, err := evalBool(e, e.Get(c))
			if err != nil {
				return false, err
			}
			if v != first {
				return false, nil
			}
		}
		return true, nil
	}

	first := e.Get(node.Children[0])
	for _, c := range node.Children[1:] {
		eq, err := payloadEqual(first, e.Get(c))
		if err != nil {
			return false, err
		}
		if !eq {
			return false, nil
		}
	}
	return true, nil
}

// evalNeq implements '!=', always exactly 2 children. Either side being
// NULL (an unresolved variable) is always a type error.
func evalNeq(e *ast.CompiledExpr, node *ast.Node) (bool, error) {
	a, b := e.Get(node.Children[0]), e.Get(node.Children[1])

	if a.Kind == ast.NULL || b.Kind == ast.NULL {
		return false, pbgerr.OpArgType()
	}

	if a.Kind.IsBoolValued() && b.Kind.IsBoolValued() {
		av, err := evalBool(e, a)
		if err != nil {
			return false, err
		}
		bv, err := evalBool(e, b)
		if err != nil {
			return false, err
		}
		return av != bv, nil
	}

	eq, err := payloadEqual(a, b)
	if err != nil {
		return false, err
	}
	return !eq, nil
}

// payloadEqual compares two non-boolean-context nodes by kind and payload.
// Callers (evalEq, evalNeq) have already rejected a NULL operand, so
// reaching NULL here would mean a caller forgot that check; it falls
// through to the OP_ARG_TYPE default below rather than being treated as a
// match. NUMBER uses bit-pattern equality (so NaN equals NaN, mirroring a
// memcmp of the underlying representation rather than IEEE-754 comparison
// semantics).
func payloadEqual(a, b *ast.Node) (bool, error) {
	if a.Kind != b.Kind {
		return false, nil
	}
	switch a.Kind {
	case ast.NUMBER:
		return math.Float64bits(a.Number) == math.Float64bits(b.Number), nil
	case ast.STRING:
		return bytes.Equal(a.Bytes, b.Bytes), nil
	case ast.DATE:
		return a.DateVal == b.DateVal, nil
	default:
		return false, pbgerr.OpArgType()
	}
}

// evalCompare implements '<' '>' '<=' '>=', always exactly 2 children of
// matching type.
func evalCompare(e *ast.CompiledExpr, node *ast.Node) (bool, error) {
	a, b := e.Get(node.Children[0]), e.Get(node.Children[1])

	var cmp int
	switch {
	case a.Kind == ast.NUMBER && b.Kind == ast.NUMBER:
		cmp = compareFloat(a.Number, b.Number)
	case a.Kind == ast.STRING && b.Kind == ast.STRING:
		cmp = compareString(a.Bytes, b.Bytes)
	case a.Kind == ast.DATE && b.Kind == ast.DATE:
		cmp = compareDate(a.DateVal, b.DateVal)
	case a.Kind.IsBoolValued() && b.Kind.IsBoolValued():
		av, err := evalBool(e, a)
		if err != nil {
			return false, err
		}
		bv, err := evalBool(e, b)
		if err != nil {
			return false, err
		}
		cmp = compareBool(av, bv)
	default:
		return false, pbgerr.OpArgType()
	}

	switch node.Kind {
	case ast.LT:
		return cmp < 0, nil
	case ast.GT:
		return cmp > 0, nil
	case ast.LTE:
		return cmp <= 0, nil
	default: // ast.GTE
		return cmp >= 0, nil
	}
}

func compareFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func compareDate(a, b ast.Date) int {
	if a.Year != b.Year {
		return compareFloat(float64(a.Year), float64(b.Year))
	}
	if a.Month != b.Month {
		return compareFloat(float64(a.Month), float64(b.Month))
	}
	return compareFloat(float64(a.Day), float64(b.Day))
}

// compareString orders byte-for-byte over the shared prefix and breaks
// ties by length, so "ab" < "abc" even though neither byte differs.
func compareString(a, b []byte) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	if c := bytes.Compare(a[:n], b[:n]); c != 0 {
		return c
	}
	return compareFloat(float64(len(a)), float64(len(b)))
}

func compareBool(a, b bool) int {
	if a == b {
		return 0
	}
	if !a {
		return -1
	}
	return 1
}

// evalType implements '@': node.Children[0] names a type (BOOL, DATE,
// NUMBER, STRING) and every remaining child must match it.
func evalType(e *ast.CompiledExpr, node *ast.Node) (bool, error) {
	var matches func(*ast.Node) bool
	switch e.Get(node.Children[0]).Kind {
	case ast.TPBool:
		matches = func(n *ast.Node) bool { return n.Kind.IsBoolValued() }
	case ast.TPDate:
		matches = func(n *ast.Node) bool { return n.Kind == ast.DATE }
	case ast.TPNumber:
		matches = func(n *ast.Node) bool { return n.Kind == ast.NUMBER }
	case ast.TPString:
		matches = func(n *ast.Node) bool { return n.Kind == ast.STRING }
	default:
		return false, pbgerr.OpArgType()
	}

	for _, c := range node.Children[1:] {
		if !matches(e.Get(c)) {
			return false, nil
		}
	}
	return true, nil
}
