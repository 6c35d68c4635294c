// Package transform - Identifier renaming
package transform

import (
	"fmt"
	"regexp"

	"github.com/texify-dev/texify/pkg/ast"
)

var identifierPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// reservedWords are names the source language refuses as identifiers.
var reservedWords = map[string]struct{}{
	"False": {}, "None": {}, "True": {}, "and": {}, "as": {}, "assert": {},
	"async": {}, "await": {}, "break": {}, "class": {}, "continue": {},
	"def": {}, "del": {}, "elif": {}, "else": {}, "except": {}, "finally": {},
	"for": {}, "from": {}, "global": {}, "if": {}, "import": {}, "in": {},
	"is": {}, "lambda": {}, "nonlocal": {}, "not": {}, "or": {}, "pass": {},
	"raise": {}, "return": {}, "try": {}, "while": {}, "with": {}, "yield": {},
}

// IdentifierReplacer renames identifiers at both binder sites (function
// name, parameters) and use sites.
type IdentifierReplacer struct {
	mapping map[string]string
}

// NewIdentifierReplacer validates the mapping eagerly: every key and value
// must be a valid, non-reserved identifier.
func NewIdentifierReplacer(mapping map[string]string) (*IdentifierReplacer, error) {
	for k, v := range mapping {
		if !isIdentifier(k) {
			return nil, fmt.Errorf("%q is not an identifier name", k)
		}
		if !isIdentifier(v) {
			return nil, fmt.Errorf("%q is not an identifier name", v)
		}
	}
	return &IdentifierReplacer{mapping: mapping}, nil
}

func isIdentifier(name string) bool {
	if !identifierPattern.MatchString(name) {
		return false
	}
	_, reserved := reservedWords[name]
	return !reserved
}

// Transform returns a new tree with every mapped name replaced.
func (r *IdentifierReplacer) Transform(mod *ast.Module) (*ast.Module, error) {
	body, err := r.transformBody(mod.Body)
	if err != nil {
		return nil, err
	}
	return &ast.Module{Body: body}, nil
}

func (r *IdentifierReplacer) rename(name string) string {
	if replacement, ok := r.mapping[name]; ok {
		return replacement
	}
	return name
}

func (r *IdentifierReplacer) rewriteName(e ast.Expr) (ast.Expr, error) {
	if name, ok := e.(*ast.Name); ok {
		return ast.MakeName(r.rename(name.ID)), nil
	}
	return e, nil
}

func (r *IdentifierReplacer) transformBody(body []ast.Stmt) ([]ast.Stmt, error) {
	if body == nil {
		return nil, nil
	}
	out := make([]ast.Stmt, len(body))
	for i, stmt := range body {
		if fn, ok := stmt.(*ast.FunctionDef); ok {
			params := make([]string, len(fn.Params))
			for j, p := range fn.Params {
				params[j] = r.rename(p)
			}
			fnBody, err := r.transformBody(fn.Body)
			if err != nil {
				return nil, err
			}
			out[i] = &ast.FunctionDef{Name: r.rename(fn.Name), Params: params, Body: fnBody}
			continue
		}
		rewritten, err := rewriteStmt(stmt, r.rewriteName)
		if err != nil {
			return nil, err
		}
		out[i] = rewritten
	}
	return out, nil
}
