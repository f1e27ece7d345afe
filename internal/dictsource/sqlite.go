package dictsource

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite" // pure-Go SQLite driver, registered under "sqlite"

	"github.com/prefixbool/pbg/internal/ast"
	"github.com/prefixbool/pbg/internal/token"
)

// SQLiteDict answers variable lookups against a SQLite table shaped
//
//	CREATE TABLE pbg_variables (name TEXT PRIMARY KEY, kind TEXT, value TEXT)
//
// where kind is one of "BOOL", "NUMBER", "STRING", "DATE" and value holds
// the literal's text form (a DATE value as "YYYY-MM-DD", a BOOL value as
// "true"/"false"). Each Lookup issues one query.
type SQLiteDict struct {
	db *sql.DB
}

// OpenSQLite opens the database at path and prepares it for lookups. The
// caller is responsible for calling Close.
func OpenSQLite(path string) (*SQLiteDict, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("dictsource: opening %s: %w", path, err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("dictsource: connecting to %s: %w", path, err)
	}
	return &SQLiteDict{db: db}, nil
}

// Close releases the underlying database handle.
func (d *SQLiteDict) Close() error {
	return d.db.Close()
}

// Lookup implements evaluator.Dictionary. Any failure to find or decode a
// row — unknown name, malformed value, closed connection — resolves to
// ast.NULL rather than surfacing a *sql.DB error through the evaluator,
// which has no channel for one.
func (d *SQLiteDict) Lookup(name []byte) ast.Node {
	var kind, value string
	row := d.db.QueryRow(`SELECT kind, value FROM pbg_variables WHERE name = ?`, string(name))
	if err := row.Scan(&kind, &value); err != nil {
		return ast.Node{Kind: ast.NULL}
	}

	var node ast.Node
	var err error
	switch kind {
	case "BOOL":
		switch value {
		case "true":
			return ast.Node{Kind: ast.TRUE}
		case "false":
			return ast.Node{Kind: ast.FALSE}
		default:
			return ast.Node{Kind: ast.NULL}
		}
	case "NUMBER":
		node, err = ast.NewLiteral(ast.NUMBER, []byte(value), 0, nil)
	case "DATE":
		if token.Classify([]byte(value)) != ast.DATE {
			return ast.Node{Kind: ast.NULL}
		}
		node, err = ast.NewLiteral(ast.DATE, []byte(value), 0, []byte(value))
	case "STRING":
		quoted := append([]byte{'\''}, append([]byte(value), '\'')...)
		node, err = ast.NewLiteral(ast.STRING, quoted, 0, nil)
	default:
		return ast.Node{Kind: ast.NULL}
	}
	if err != nil {
		return ast.Node{Kind: ast.NULL}
	}
	return node
}
