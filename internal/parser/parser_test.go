package parser_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prefixbool/pbg/internal/ast"
	"github.com/prefixbool/pbg/internal/lexer"
	"github.com/prefixbool/pbg/internal/parser"
)

func build(t *testing.T, src string) *ast.CompiledExpr {
	t.Helper()
	fields, lengths, closings, err := lexer.Scan([]byte(src))
	require.NoError(t, err)
	expr, err := parser.Build([]byte(src), fields, lengths, closings)
	require.NoError(t, err)
	return expr
}

func TestBuildRootIsFirstConstant(t *testing.T) {
	expr := build(t, "(& TRUE FALSE)")
	root := expr.Root()
	require.NotNil(t, root)
	assert.Equal(t, ast.AND, root.Kind)
	assert.Same(t, root, &expr.Constants[0])
}

func TestBuildChildrenIndicesAfterParent(t *testing.T) {
	// The AND node is created before its children are parsed, so its
	// index (1) is lower than both children's indices (2, 3).
	expr := build(t, "(& TRUE FALSE)")
	root := expr.Root()
	require.Len(t, root.Children, 2)
	assert.Equal(t, 2, root.Children[0])
	assert.Equal(t, 3, root.Children[1])
	assert.Equal(t, ast.TRUE, expr.Get(root.Children[0]).Kind)
	assert.Equal(t, ast.FALSE, expr.Get(root.Children[1]).Kind)
}

func TestBuildVariableGoesToVariableArena(t *testing.T) {
	expr := build(t, "(? [status])")
	root := expr.Root()
	require.Len(t, root.Children, 1)
	varIdx := root.Children[0]
	assert.Less(t, varIdx, 0)
	assert.Equal(t, ast.VAR, expr.Get(varIdx).Kind)
	assert.Equal(t, []byte("status"), expr.Get(varIdx).Bytes)
}

func TestBuildNestedExpression(t *testing.T) {
	expr := build(t, "(| (& TRUE FALSE) (! FALSE))")
	root := expr.Root()
	assert.Equal(t, ast.OR, root.Kind)
	require.Len(t, root.Children, 2)
	assert.Equal(t, ast.AND, expr.Get(root.Children[0]).Kind)
	assert.Equal(t, ast.NOT, expr.Get(root.Children[1]).Kind)
}

func TestBuildArityErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
	}{
		{"not takes exactly one", "(! TRUE FALSE)"},
		{"lt takes exactly two", "(< 1 2 3)"},
		{"and needs at least two", "(& TRUE)"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fields, lengths, closings, err := lexer.Scan([]byte(tc.src))
			require.NoError(t, err)
			_, err = parser.Build([]byte(tc.src), fields, lengths, closings)
			assert.Error(t, err)
		})
	}
}

func TestBuildStructuralEquality(t *testing.T) {
	a := build(t, "(& TRUE FALSE)")
	b := build(t, "(& TRUE FALSE)")
	if diff := cmp.Diff(a, b); diff != "" {
		t.Fatalf("expressions with identical source differ (-a +b):\n%s", diff)
	}
}
