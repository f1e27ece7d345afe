// Package dictsource supplies evaluator.Dictionary implementations backed
// by real external stores — a YAML bindings file and a SQLite table — so a
// caller never has to hand-write a lookup function for the common cases.
package dictsource

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/prefixbool/pbg/internal/ast"
	"github.com/prefixbool/pbg/internal/token"
)

// YAMLDict answers variable lookups from a flat YAML document of
// name/value pairs, parsed once at load time. Values are typed by their
// YAML scalar type: booleans become TRUE/FALSE, integers and floats
// NUMBER, timestamps and YYYY-MM-DD strings DATE, and any other scalar
// STRING. So `30`, `'str'`, and `2020-01-01` in the YAML file resolve to the
// same node kinds as those literals inside an expression, and `true`
// resolves to the same kind as the keyword `TRUE`.
type YAMLDict struct {
	values map[string]ast.Node
}

// LoadYAML reads and parses a bindings file at path into a YAMLDict.
func LoadYAML(path string) (*YAMLDict, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("dictsource: reading %s: %w", path, err)
	}

	var raw map[string]yaml.Node
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("dictsource: parsing %s: %w", path, err)
	}

	values := make(map[string]ast.Node, len(raw))
	for name, node := range raw {
		node := node
		val, err := scalarToNode(&node)
		if err != nil {
			return nil, fmt.Errorf("dictsource: binding %q in %s: %w", name, path, err)
		}
		values[name] = val
	}
	return &YAMLDict{values: values}, nil
}

// Lookup implements evaluator.Dictionary. An unbound name resolves to
// ast.NULL, the evaluator's "does not exist" sentinel.
func (d *YAMLDict) Lookup(name []byte) ast.Node {
	if v, ok := d.values[string(name)]; ok {
		return v
	}
	return ast.Node{Kind: ast.NULL}
}

// scalarToNode converts one YAML scalar to the ast.Node it denotes,
// reusing the lexical classifier's DATE shape test so "2020-01-01" written
// as a plain YAML string still resolves to a DATE node rather than STRING.
func scalarToNode(n *yaml.Node) (ast.Node, error) {
	switch n.Tag {
	case "!!bool":
		switch n.Value {
		case "true", "True", "TRUE":
			return ast.Node{Kind: ast.TRUE}, nil
		}
		return ast.Node{Kind: ast.FALSE}, nil
	case "!!int", "!!float":
		return ast.NewLiteral(ast.NUMBER, []byte(n.Value), 0, nil)
	case "!!timestamp":
		var t time.Time
		if err := n.Decode(&t); err != nil {
			return ast.Node{}, err
		}
		text := t.Format("2006-01-02")
		return ast.NewLiteral(ast.DATE, []byte(text), 0, []byte(text))
	default:
		if token.Classify([]byte(n.Value)) == ast.DATE {
			return ast.NewLiteral(ast.DATE, []byte(n.Value), 0, []byte(n.Value))
		}
		quoted := append([]byte{'\''}, append([]byte(n.Value), '\'')...)
		return ast.NewLiteral(ast.STRING, quoted, 0, nil)
	}
}
