package token_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/prefixbool/pbg/internal/ast"
	"github.com/prefixbool/pbg/internal/token"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want ast.Kind
	}{
		{"true", "TRUE", ast.TRUE},
		{"false", "FALSE", ast.FALSE},
		{"type bool", "BOOL", ast.TPBool},
		{"type date", "DATE", ast.TPDate},
		{"type number", "NUMBER", ast.TPNumber},
		{"type string", "STRING", ast.TPString},
		{"integer", "42", ast.NUMBER},
		{"negative", "-7", ast.NUMBER},
		{"leading zero rejected as number", "07", ast.NULL},
		{"zero point seven", "0.7", ast.NUMBER},
		{"zero e one", "0e1", ast.NUMBER},
		{"exponent with sign", "1.5e-3", ast.NUMBER},
		{"date", "2020-01-01", ast.DATE},
		{"date shape but bad month not rejected here", "2020-13-01", ast.DATE},
		{"string", "'hello'", ast.STRING},
		{"empty string", "''", ast.STRING},
		{"variable", "[x]", ast.VAR},
		{"not", "!", ast.NOT},
		{"and", "&", ast.AND},
		{"or", "|", ast.OR},
		{"eq", "=", ast.EQ},
		{"neq", "!=", ast.NEQ},
		{"lt", "<", ast.LT},
		{"gt", ">", ast.GT},
		{"lte", "<=", ast.LTE},
		{"gte", ">=", ast.GTE},
		{"exst", "?", ast.EXST},
		{"type op", "@", ast.TYPE},
		{"garbage", "???", ast.NULL},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, token.Classify([]byte(tc.in)))
		})
	}
}
