package lexer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prefixbool/pbg/internal/lexer"
)

func TestScanValid(t *testing.T) {
	cases := []struct {
		name       string
		src        string
		numFields  int
		numClosing int
	}{
		{"simple and", "(& TRUE TRUE TRUE)", 4, 1},
		{"bare tokens merge with following char in operand position", "(& ax bx)", 3, 1},
		{"two char operator", "(!= [a] [b])", 3, 1},
		{"nested groups", "(! (& TRUE FALSE))", 4, 2},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fields, lengths, closings, err := lexer.Scan([]byte(tc.src))
			require.NoError(t, err)
			assert.Len(t, fields, tc.numFields)
			assert.Len(t, lengths, tc.numFields)
			assert.Len(t, closings, tc.numClosing)
		})
	}
}

func TestScanSyntaxErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
	}{
		{"paren not followed by operator", "((& TRUE TRUE))"},
		{"no whitespace before token merges into the operator slot", "(!a)"},
		{"empty group", "(& () TRUE)"},
		{"too many closing parens", "(& TRUE TRUE))"},
		{"unmatched opening paren", "(& TRUE TRUE"},
		{"unclosed string", "(= 'abc TRUE)"},
		{"unclosed variable", "(? [abc)"},
		{"no wrapping parens", "TRUE"},
		{"more than one top level expression", "(& TRUE TRUE) (& TRUE TRUE)"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, _, err := lexer.Scan([]byte(tc.src))
			assert.Error(t, err)
		})
	}
}

func TestScanEscapedTerminator(t *testing.T) {
	fields, lengths, closings, err := lexer.Scan([]byte(`(= 'it\'s' 'it\'s')`))
	require.NoError(t, err)
	assert.Len(t, fields, 3)
	assert.Len(t, lengths, 3)
	assert.Len(t, closings, 1)
}
