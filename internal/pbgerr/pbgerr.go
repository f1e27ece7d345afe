// Package pbgerr implements the structured error taxonomy PBG returns from
// scanning, parsing, and evaluation. It never prints anything itself;
// rendering a human-readable message is a boundary concern handled by
// internal/render.
package pbgerr

import (
	"fmt"
	"runtime"
)

// Kind is the closed error taxonomy (spec section 4.5).
type Kind string

const (
	KindAlloc       Kind = "ALLOC"
	KindState       Kind = "STATE"
	KindSyntax      Kind = "SYNTAX"
	KindUnknownType Kind = "UNKNOWN_TYPE"
	KindOpArity     Kind = "OP_ARITY"
	KindOpArgType   Kind = "OP_ARG_TYPE"
)

// Error is the structured error value. Exactly one payload group below is
// meaningful, selected by Kind.
type Error struct {
	Kind Kind
	File string
	Line int

	// SYNTAX payload: message, the full source text, and the byte offset
	// the message refers to.
	Msg    string
	Source string
	Offset int

	// OP_ARITY payload: operator name and the actual child count supplied.
	Op    string
	Count int

	// UNKNOWN_TYPE payload: the offending token bytes.
	Token []byte

	// STATE payload: a static description of the violated invariant.
	StateMsg string
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindSyntax:
		return fmt.Sprintf("%s error at %s:%d: %s (offset %d)", e.Kind, e.File, e.Line, e.Msg, e.Offset)
	case KindOpArity:
		return fmt.Sprintf("%s error at %s:%d: operator %s cannot take %d argument(s)", e.Kind, e.File, e.Line, e.Op, e.Count)
	case KindUnknownType:
		return fmt.Sprintf("%s error at %s:%d: unrecognized token %q", e.Kind, e.File, e.Line, string(e.Token))
	case KindState:
		return fmt.Sprintf("%s error at %s:%d: %s", e.Kind, e.File, e.Line, e.StateMsg)
	case KindOpArgType:
		return fmt.Sprintf("%s error at %s:%d: operand type incompatible with operator", e.Kind, e.File, e.Line)
	case KindAlloc:
		return fmt.Sprintf("%s error at %s:%d: allocation failed", e.Kind, e.File, e.Line)
	default:
		return fmt.Sprintf("%s error at %s:%d", e.Kind, e.File, e.Line)
	}
}

// origin reports the file/line of the caller of the exported constructor
// below, mirroring the original C library's __LINE__/__FILE__ call-site
// capture without needing a preprocessor.
func origin() (string, int) {
	_, file, line, ok := runtime.Caller(2)
	if !ok {
		return "", 0
	}
	return file, line
}

// Alloc reports an allocation failure.
func Alloc() *Error {
	file, line := origin()
	return &Error{Kind: KindAlloc, File: file, Line: line}
}

// State reports a violated internal invariant — a bug, not a user error.
func State(msg string) *Error {
	file, line := origin()
	return &Error{Kind: KindState, File: file, Line: line, StateMsg: msg}
}

// Syntax reports a lexical/structural defect in the source text at offset.
func Syntax(source string, offset int, msg string) *Error {
	file, line := origin()
	return &Error{Kind: KindSyntax, File: file, Line: line, Source: source, Offset: offset, Msg: msg}
}

// OpArity reports an operator invoked with the wrong number of children.
func OpArity(op string, count int) *Error {
	file, line := origin()
	return &Error{Kind: KindOpArity, File: file, Line: line, Op: op, Count: count}
}

// UnknownType reports a token that does not classify as any literal or
// operator.
func UnknownType(tok []byte) *Error {
	file, line := origin()
	return &Error{Kind: KindUnknownType, File: file, Line: line, Token: append([]byte(nil), tok...)}
}

// OpArgType reports an operator applied to operands of an incompatible
// type, including a NULL operand.
func OpArgType() *Error {
	file, line := origin()
	return &Error{Kind: KindOpArgType, File: file, Line: line}
}
