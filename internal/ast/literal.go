package ast

import (
	"strconv"

	"github.com/prefixbool/pbg/internal/pbgerr"
)

// NewLiteral builds the Node for a non-variable, non-operator token whose
// Kind the lexical classifier has already determined. tokStart is tok's
// absolute byte offset in source, used to report date range errors at the
// correct offset (spec section 9, "Date validity").
func NewLiteral(kind Kind, tok []byte, tokStart int, source []byte) (Node, error) {
	switch kind {
	case TRUE, FALSE, TPBool, TPDate, TPNumber, TPString:
		return Node{Kind: kind}, nil
	case NUMBER:
		return newNumber(tok)
	case STRING:
		// Payload is the raw bytes between the surrounding quotes, escape
		// backslashes retained verbatim (spec section 3.2, section 9).
		return Node{Kind: STRING, Bytes: append([]byte(nil), tok[1:len(tok)-1]...)}, nil
	case DATE:
		return newDate(tok, tokStart, source)
	default:
		return Node{}, pbgerr.State("NewLiteral called with a non-literal kind")
	}
}

func newNumber(tok []byte) (Node, error) {
	val, err := strconv.ParseFloat(string(tok), 64)
	if err != nil {
		// The lexical classifier already validated tok against the number
		// grammar (spec section 4.1); reaching here means classifier and
		// parser disagree, which is an internal invariant violation, not
		// a user-facing syntax error.
		return Node{}, pbgerr.State("number literal failed to parse after classification")
	}
	return Node{Kind: NUMBER, Number: val}, nil
}

func newDate(tok []byte, tokStart int, source []byte) (Node, error) {
	year := int(tok[0]-'0')*1000 + int(tok[1]-'0')*100 + int(tok[2]-'0')*10 + int(tok[3]-'0')
	month := int(tok[5]-'0')*10 + int(tok[6]-'0')
	day := int(tok[8]-'0')*10 + int(tok[9]-'0')
	if month < 1 || month > 12 {
		return Node{}, pbgerr.Syntax(string(source), tokStart, "month must be between 01 and 12")
	}
	if day < 1 || day > 31 {
		return Node{}, pbgerr.Syntax(string(source), tokStart, "day must be between 01 and 31")
	}
	return Node{Kind: DATE, DateVal: Date{Year: uint16(year), Month: uint8(month), Day: uint8(day)}}, nil
}
