package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/prefixbool/pbg/internal/ast"
	"github.com/prefixbool/pbg/internal/dictsource"
)

// openDict resolves path's extension to a dictionary source kind (see
// internal/config.DictSourceExtensions) and opens it. The returned closer
// is a no-op for sources with nothing to release.
func openDict(path string) (lookup func(name []byte) ast.Node, closer func() error, err error) {
	if path == "" {
		return func([]byte) ast.Node { return ast.Node{Kind: ast.NULL} }, func() error { return nil }, nil
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		d, err := dictsource.LoadYAML(path)
		if err != nil {
			return nil, nil, err
		}
		return d.Lookup, func() error { return nil }, nil
	case ".db", ".sqlite":
		d, err := dictsource.OpenSQLite(path)
		if err != nil {
			return nil, nil, err
		}
		return d.Lookup, d.Close, nil
	default:
		return nil, nil, fmt.Errorf("don't know how to open a dictionary from %q", path)
	}
}
