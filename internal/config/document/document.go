// Package document wraps the TOML reader behind the small surface the
// configuration parsers need: open a file, look up typed scalars by
// dot-separated path, iterate list values, and write the live tree back
// out. Keys the parsers do not recognize survive a round trip because
// the tree is the raw parsed map.
package document

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// SyntaxError reports a malformed document with its position.
type SyntaxError struct {
	Path   string
	Line   int
	Column int
	Msg    string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("parse error in %s at line %d, column %d: %s", e.Path, e.Line, e.Column, e.Msg)
}

// Table is one level of the document tree. The document root and every
// sub-table element of a list share this lookup surface.
type Table map[string]any

// Lookup returns the value at a dot-separated path.
func (t Table) Lookup(path string) (any, bool) {
	current := any(map[string]any(t))
	for _, part := range strings.Split(path, ".") {
		m, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		val, exists := m[part]
		if !exists {
			return nil, false
		}
		current = val
	}
	return current, true
}

// List returns the array value at a path.
func (t Table) List(path string) (List, bool) {
	val, ok := t.Lookup(path)
	if !ok {
		return nil, false
	}
	switch v := val.(type) {
	case []any:
		return List(v), true
	case []map[string]any:
		items := make(List, len(v))
		for i := range v {
			items[i] = v[i]
		}
		return items, true
	case []string:
		items := make(List, len(v))
		for i := range v {
			items[i] = v[i]
		}
		return items, true
	default:
		return nil, false
	}
}

// List is an array value: scalars or sub-tables.
type List []any

// Len returns the element count.
func (l List) Len() int { return len(l) }

// String returns element i as a string.
func (l List) String(i int) (string, bool) {
	if i < 0 || i >= len(l) {
		return "", false
	}
	s, ok := l[i].(string)
	return s, ok
}

// Table returns element i as a sub-table.
func (l List) Table(i int) (Table, bool) {
	if i < 0 || i >= len(l) {
		return nil, false
	}
	m, ok := l[i].(map[string]any)
	if !ok {
		return nil, false
	}
	return Table(m), true
}

// Document is a parsed configuration file.
type Document struct {
	path string
	root Table
}

// Open reads and parses a TOML file. Malformed input yields a
// *SyntaxError carrying the line and column; open failures return the
// wrapped os error.
func Open(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening config file: %w", err)
	}
	return Parse(path, data)
}

// Parse parses raw TOML bytes. The path is used in diagnostics only.
func Parse(path string, data []byte) (*Document, error) {
	var root map[string]any
	if err := toml.Unmarshal(data, &root); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			line, col := derr.Position()
			return nil, &SyntaxError{Path: path, Line: line, Column: col, Msg: derr.Error()}
		}
		return nil, &SyntaxError{Path: path, Msg: err.Error()}
	}
	if root == nil {
		root = make(map[string]any)
	}
	return &Document{path: path, root: Table(root)}, nil
}

// Path returns the file the document was opened from.
func (d *Document) Path() string { return d.path }

// Root returns the document's top-level table.
func (d *Document) Root() Table { return d.root }

// Lookup returns the scalar at a dot-separated path.
func (d *Document) Lookup(path string) (any, bool) { return d.root.Lookup(path) }

// List returns the array value at a path.
func (d *Document) List(path string) (List, bool) { return d.root.List(path) }

// Save serializes the in-memory tree to a file. Settings the parsers
// never consumed are written back untouched.
func (d *Document) Save(path string) error {
	data, err := toml.Marshal(map[string]any(d.root))
	if err != nil {
		return fmt.Errorf("serializing config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config backup: %w", err)
	}
	return nil
}
