// Package parser is PBG's recursive-descent builder (spec section 4.3): it
// consumes the scanner's field/length/closing tables and produces a
// compiled expression tree in an ast.CompiledExpr, enforcing operator
// arity as it goes.
package parser

import (
	"github.com/prefixbool/pbg/internal/ast"
	"github.com/prefixbool/pbg/internal/pbgerr"
	"github.com/prefixbool/pbg/internal/token"
)

// cursor tracks the advancing positions the recursion shares: the next
// token to read (fi, indexing both fields and lengths) and the next ')' offset an
// in-progress operator is reading up to (ci, into closings).
type cursor struct {
	fields   []int
	lengths  []int
	closings []int
	fi       int
	ci       int
}

// Build parses src's already-scanned token tables into a CompiledExpr. It
// frees any partially constructed expression before returning an error
// (spec section 4.3, "Failure policy").
func Build(src []byte, fields, lengths, closings []int) (*ast.CompiledExpr, error) {
	e := ast.New()
	cur := &cursor{fields: fields, lengths: lengths, closings: closings}

	if _, err := parseNode(e, cur, src); err != nil {
		e.Free()
		return nil, err
	}

	// Every field and every closing must have been consumed by the single
	// top-level recursion; anything left over (or consumed twice) means
	// the scanner and parser disagree about the token stream's shape.
	if cur.fi != len(fields) || cur.ci != len(closings) {
		e.Free()
		return nil, pbgerr.State("not all fields were parsed")
	}

	return e, nil
}

// parseNode consumes the token at the cursor (for an operator, together
// with all of its children) and returns its arena index: positive for a
// constant (literal or operator), negative for a variable.
func parseNode(e *ast.CompiledExpr, cur *cursor, src []byte) (int, error) {
	if cur.fi >= len(cur.fields) {
		return 0, pbgerr.State("expected another token but the field stream was exhausted")
	}

	start := cur.fields[cur.fi]
	length := cur.lengths[cur.fi]
	cur.fi++

	tok := src[start : start+length]
	kind := token.Classify(tok)
	if kind == ast.NULL {
		return 0, pbgerr.UnknownType(tok)
	}

	switch {
	case kind.IsOp():
		return parseOperator(e, cur, src, kind)
	case kind == ast.VAR:
		name := append([]byte(nil), tok[1:len(tok)-1]...)
		return e.AppendVariable(ast.Node{Kind: ast.VAR, Bytes: name}), nil
	default:
		node, err := ast.NewLiteral(kind, tok, start, src)
		if err != nil {
			return 0, err
		}
		return e.AppendConstant(node), nil
	}
}

// parseOperator reserves the operator's arena slot before recursing into
// its children, exactly as the original C library's pbg_create_op/
// pbg_parse_r pair does — so a parent's index can be (and typically is)
// lower than its children's, even though every child is fully built before
// being linked into the parent (invariant I3 is about construction order,
// not index order).
func parseOperator(e *ast.CompiledExpr, cur *cursor, src []byte, kind ast.Kind) (int, error) {
	idx := e.AppendConstant(ast.Node{Kind: kind})

	var children []int
	for cur.fi < len(cur.fields) && cur.fields[cur.fi] < cur.closings[cur.ci] {
		childIdx, err := parseNode(e, cur, src)
		if err != nil {
			return 0, err
		}
		children = append(children, childIdx)
	}

	if !kind.CheckArity(len(children)) {
		return 0, pbgerr.OpArity(kind.String(), len(children))
	}

	cur.ci++
	e.SetChildren(idx, children)
	return idx, nil
}
