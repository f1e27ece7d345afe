// Package render holds the two human-facing boundary concerns spec section
// 1 keeps out of the compile/evaluate core: rendering a *pbgerr.Error as a
// one-line message, and pretty-printing a compiled expression back to
// prefix-notation text. Nothing in internal/ast, internal/lexer,
// internal/parser, internal/evaluator, or internal/pbgerr calls into this
// package — only cmd/pbg does.
package render

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/prefixbool/pbg/internal/ast"
	"github.com/prefixbool/pbg/internal/pbgerr"
)

// Error renders err as a single line: "error KIND at file:line: detail",
// with the syntax variant additionally showing the source text from the
// offending offset onward, mirroring the original library's error printer.
func Error(err error) string {
	var pe *pbgerr.Error
	if !errors.As(err, &pe) {
		return err.Error()
	}

	head := fmt.Sprintf("error %s at %s:%d", pe.Kind, pe.File, pe.Line)
	switch pe.Kind {
	case pbgerr.KindState:
		return fmt.Sprintf("%s: %s", head, pe.StateMsg)
	case pbgerr.KindOpArity:
		return fmt.Sprintf("%s: operator %s cannot take %d argument(s)", head, pe.Op, pe.Count)
	case pbgerr.KindSyntax:
		return fmt.Sprintf("%s: %s -> %s", head, pe.Msg, pe.Source[pe.Offset:])
	case pbgerr.KindUnknownType:
		return fmt.Sprintf("%s: unrecognized token %q", head, string(pe.Token))
	case pbgerr.KindOpArgType:
		return fmt.Sprintf("%s: operand type incompatible with operator", head)
	case pbgerr.KindAlloc:
		return fmt.Sprintf("%s: allocation failed", head)
	default:
		return head
	}
}

// Expr pretty-prints e's tree back to fully-parenthesized prefix text,
// starting at the root. It is a debugging aid only — Parse(Expr(e)) is not
// guaranteed to reproduce e byte-for-byte (quoting and number formatting
// are not round-tripped exactly).
func Expr(e *ast.CompiledExpr) string {
	root := e.Root()
	if root == nil {
		return ""
	}
	var b strings.Builder
	writeNode(&b, e, root)
	return b.String()
}

func writeNode(b *strings.Builder, e *ast.CompiledExpr, n *ast.Node) {
	if n.Kind.IsOp() {
		b.WriteByte('(')
		b.WriteString(operatorText(n.Kind))
		for _, c := range n.Children {
			b.WriteByte(' ')
			writeNode(b, e, e.Get(c))
		}
		b.WriteByte(')')
		return
	}
	b.WriteString(literalText(n))
}

func operatorText(k ast.Kind) string {
	switch k {
	case ast.NOT:
		return "!"
	case ast.AND:
		return "&"
	case ast.OR:
		return "|"
	case ast.EQ:
		return "="
	case ast.NEQ:
		return "!="
	case ast.LT:
		return "<"
	case ast.GT:
		return ">"
	case ast.LTE:
		return "<="
	case ast.GTE:
		return ">="
	case ast.EXST:
		return "?"
	case ast.TYPE:
		return "@"
	default:
		return k.String()
	}
}

func literalText(n *ast.Node) string {
	switch n.Kind {
	case ast.TRUE:
		return "TRUE"
	case ast.FALSE:
		return "FALSE"
	case ast.NUMBER:
		return strconv.FormatFloat(n.Number, 'g', -1, 64)
	case ast.STRING:
		return "'" + string(n.Bytes) + "'"
	case ast.DATE:
		return fmt.Sprintf("%04d-%02d-%02d", n.DateVal.Year, n.DateVal.Month, n.DateVal.Day)
	case ast.VAR:
		return "[" + string(n.Bytes) + "]"
	case ast.TPBool:
		return "BOOL"
	case ast.TPDate:
		return "DATE"
	case ast.TPNumber:
		return "NUMBER"
	case ast.TPString:
		return "STRING"
	case ast.NULL:
		return "NULL"
	default:
		return n.Kind.String()
	}
}
