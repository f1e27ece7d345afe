package evaluator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prefixbool/pbg/internal/ast"
	"github.com/prefixbool/pbg/internal/evaluator"
	"github.com/prefixbool/pbg/internal/lexer"
	"github.com/prefixbool/pbg/internal/parser"
)

func compile(t *testing.T, src string) *ast.CompiledExpr {
	t.Helper()
	fields, lengths, closings, err := lexer.Scan([]byte(src))
	require.NoError(t, err)
	expr, err := parser.Build([]byte(src), fields, lengths, closings)
	require.NoError(t, err)
	return expr
}

func noVars(name []byte) ast.Node {
	return ast.Node{Kind: ast.NULL}
}

func TestEvaluateBooleanLogic(t *testing.T) {
	cases := []struct {
		src  string
		want bool
	}{
		{"(& TRUE TRUE TRUE)", true},
		{"(& TRUE FALSE)", false},
		{"(| FALSE FALSE TRUE)", true},
		{"(| FALSE FALSE)", false},
		{"(! FALSE)", true},
		{"(! (& TRUE FALSE))", true},
	}
	for _, tc := range cases {
		t.Run(tc.src, func(t *testing.T) {
			expr := compile(t, tc.src)
			got, err := evaluator.Evaluate(expr, noVars)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestEvaluateExst(t *testing.T) {
	dict := func(name []byte) ast.Node {
		if string(name) == "known" {
			return ast.Node{Kind: ast.TRUE}
		}
		return ast.Node{Kind: ast.NULL}
	}

	expr := compile(t, "(? [known])")
	got, err := evaluator.Evaluate(expr, dict)
	require.NoError(t, err)
	assert.True(t, got)

	expr = compile(t, "(? [missing])")
	got, err = evaluator.Evaluate(expr, dict)
	require.NoError(t, err)
	assert.False(t, got)
}

func TestEvaluateComparisons(t *testing.T) {
	cases := []struct {
		src  string
		want bool
	}{
		{"(< 1 2)", true},
		{"(< 2 1)", false},
		{"(>= 3 3)", true},
		{"(<= 'abc' 'abd')", true},
		{"(< 'ab' 'abc')", true},
		{"(> 2020-02-01 2020-01-31)", true},
		{"(= 1 1 1)", true},
		{"(= 1 2)", false},
		{"(!= 1 2)", true},
		{"(= TRUE (& TRUE TRUE))", true},
		{"(= TRUE (& TRUE FALSE))", false},
		{"(!= TRUE FALSE)", true},
	}
	for _, tc := range cases {
		t.Run(tc.src, func(t *testing.T) {
			expr := compile(t, tc.src)
			got, err := evaluator.Evaluate(expr, noVars)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestEvaluateType(t *testing.T) {
	cases := []struct {
		src  string
		want bool
	}{
		{"(@ NUMBER 1 2 3)", true},
		{"(@ NUMBER 1 'x')", false},
		{"(@ STRING 'a' 'b')", true},
		{"(@ BOOL TRUE (& TRUE TRUE))", true},
		{"(@ DATE 2020-01-01)", true},
	}
	for _, tc := range cases {
		t.Run(tc.src, func(t *testing.T) {
			expr := compile(t, tc.src)
			got, err := evaluator.Evaluate(expr, noVars)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestEvaluateIsRepeatable(t *testing.T) {
	expr := compile(t, "(& (? [x]) TRUE)")

	dictPresent := func(name []byte) ast.Node { return ast.Node{Kind: ast.TRUE} }
	dictAbsent := func(name []byte) ast.Node { return ast.Node{Kind: ast.NULL} }

	got, err := evaluator.Evaluate(expr, dictPresent)
	require.NoError(t, err)
	assert.True(t, got)

	got, err = evaluator.Evaluate(expr, dictAbsent)
	require.NoError(t, err)
	assert.False(t, got)
}

func TestEvaluateTypeMismatchIsError(t *testing.T) {
	expr := compile(t, "(< 1 'a')")
	_, err := evaluator.Evaluate(expr, noVars)
	assert.Error(t, err)
}

func TestEvaluateEqWithUnresolvedVariableIsError(t *testing.T) {
	// Neither child is boolean-valued; the NULL operands must be rejected
	// with an error rather than compared by payload.
	expr := compile(t, "(= [x] [y])")
	_, err := evaluator.Evaluate(expr, noVars)
	assert.Error(t, err)
}

func TestEvaluateNeqWithUnresolvedVariableIsError(t *testing.T) {
	expr := compile(t, "(!= [x] 5)")
	_, err := evaluator.Evaluate(expr, noVars)
	assert.Error(t, err)
}
