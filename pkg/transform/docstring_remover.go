// Package transform - Docstring removal
package transform

import "github.com/texify-dev/texify/pkg/ast"

// RemoveDocstrings drops every expression statement holding a bare string
// constant.
func RemoveDocstrings(mod *ast.Module) *ast.Module {
	return &ast.Module{Body: removeDocstringsBody(mod.Body)}
}

func removeDocstringsBody(body []ast.Stmt) []ast.Stmt {
	if body == nil {
		return nil
	}
	out := make([]ast.Stmt, 0, len(body))
	for _, stmt := range body {
		switch v := stmt.(type) {
		case *ast.ExprStmt:
			if ast.IsStringLiteral(v.Value) {
				continue
			}
		case *ast.FunctionDef:
			stmt = &ast.FunctionDef{Name: v.Name, Params: v.Params, Body: removeDocstringsBody(v.Body)}
		case *ast.If:
			stmt = &ast.If{Test: v.Test, Body: removeDocstringsBody(v.Body), Else: removeDocstringsBody(v.Else)}
		case *ast.While:
			stmt = &ast.While{Test: v.Test, Body: removeDocstringsBody(v.Body), Else: removeDocstringsBody(v.Else)}
		case *ast.For:
			stmt = &ast.For{Target: v.Target, Iter: v.Iter, Body: removeDocstringsBody(v.Body), Else: removeDocstringsBody(v.Else)}
		case *ast.Match:
			cases := make([]ast.MatchCase, len(v.Cases))
			for i, matchCase := range v.Cases {
				cases[i] = ast.MatchCase{Pattern: matchCase.Pattern, Body: removeDocstringsBody(matchCase.Body)}
			}
			stmt = &ast.Match{Subject: v.Subject, Cases: cases}
		}
		out = append(out, stmt)
	}
	return out
}
