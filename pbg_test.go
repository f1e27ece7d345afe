package pbg_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prefixbool/pbg"
	"github.com/prefixbool/pbg/internal/ast"
)

func TestParseAndEvaluateEndToEnd(t *testing.T) {
	dict := func(name []byte) ast.Node {
		switch string(name) {
		case "age":
			return ast.Node{Kind: ast.NUMBER, Number: 30}
		case "country":
			return ast.Node{Kind: ast.STRING, Bytes: []byte("US")}
		default:
			return ast.Node{Kind: ast.NULL}
		}
	}

	expr, err := pbg.Parse([]byte("(& (>= [age] 18) (= [country] 'US'))"))
	require.NoError(t, err)
	defer pbg.Free(expr)

	result, err := pbg.Evaluate(expr, dict)
	require.NoError(t, err)
	assert.True(t, result)
}

func TestParseSyntaxError(t *testing.T) {
	_, err := pbg.Parse([]byte("((& TRUE TRUE))"))
	assert.Error(t, err)
}

func TestParseUnknownVariableFailsExistenceCheck(t *testing.T) {
	dict := func(name []byte) ast.Node { return ast.Node{Kind: ast.NULL} }

	expr, err := pbg.Parse([]byte("(? [missing])"))
	require.NoError(t, err)
	defer pbg.Free(expr)

	result, err := pbg.Evaluate(expr, dict)
	require.NoError(t, err)
	assert.False(t, result)
}
