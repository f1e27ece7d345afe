package ast_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/prefixbool/pbg/internal/ast"
)

func TestCompiledExprArenaIndexing(t *testing.T) {
	e := ast.New()

	c1 := e.AppendConstant(ast.Node{Kind: ast.TRUE})
	v1 := e.AppendVariable(ast.Node{Kind: ast.VAR, Bytes: []byte("x")})
	c2 := e.AppendConstant(ast.Node{Kind: ast.FALSE})

	assert.Equal(t, 1, c1)
	assert.Equal(t, -1, v1)
	assert.Equal(t, 2, c2)

	assert.Equal(t, ast.TRUE, e.Get(c1).Kind)
	assert.Equal(t, ast.VAR, e.Get(v1).Kind)
	assert.Equal(t, ast.FALSE, e.Get(c2).Kind)
	assert.Nil(t, e.Get(0))

	assert.Same(t, e.Get(c1), e.Root())
}

func TestCompiledExprSetChildrenAndFree(t *testing.T) {
	e := ast.New()
	idx := e.AppendConstant(ast.Node{Kind: ast.AND})
	child := e.AppendConstant(ast.Node{Kind: ast.TRUE})
	e.SetChildren(idx, []int{child})

	assert.Equal(t, []int{child}, e.Get(idx).Children)

	e.Free()
	assert.Nil(t, e.Root())
}
