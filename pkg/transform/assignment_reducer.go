// Package transform - Assignment inlining
package transform

import (
	"fmt"
	"strings"

	"github.com/texify-dev/texify/pkg/ast"
	"github.com/texify-dev/texify/pkg/texerr"
)

// ReduceAssignments inlines the leading assignments of each function into
// its final statement, so
//
//	y = 2 + x
//	z = 3 * y
//	return 4 + z
//
// becomes `return 4 + 3 * (2 + x)`. Substitution never simplifies: every
// intermediate name is replaced by its already-substituted defining
// expression, verbatim. The substitution environment is scoped to one
// function; nested definitions get a fresh one.
func ReduceAssignments(mod *ast.Module) (*ast.Module, error) {
	body := make([]ast.Stmt, len(mod.Body))
	for i, stmt := range mod.Body {
		fn, ok := stmt.(*ast.FunctionDef)
		if !ok {
			body[i] = stmt
			continue
		}
		reduced, err := reduceFunction(fn)
		if err != nil {
			return nil, err
		}
		body[i] = reduced
	}
	return &ast.Module{Body: body}, nil
}

func reduceFunction(fn *ast.FunctionDef) (*ast.FunctionDef, error) {
	env := make(map[string]ast.Expr)
	subst := func(e ast.Expr) (ast.Expr, error) {
		if name, ok := e.(*ast.Name); ok {
			if value, bound := env[name.ID]; bound {
				return value, nil
			}
		}
		return e, nil
	}

	if len(fn.Body) == 0 {
		return nil, texerr.Syntaxf("function %s has an empty body", fn.Name)
	}

	for _, stmt := range fn.Body[:len(fn.Body)-1] {
		assign, ok := stmt.(*ast.Assign)
		if !ok {
			return nil, texerr.NotSupportedf(
				"assignment reduction supports only assignments before the final statement, got: %s",
				nodeKind(stmt))
		}
		value, err := rewriteExpr(assign.Value, subst)
		if err != nil {
			return nil, err
		}
		for _, target := range assign.Targets {
			name, ok := target.(*ast.Name)
			if !ok {
				return nil, texerr.Syntaxf("cannot reduce a destructuring assignment")
			}
			env[name.ID] = value
		}
	}

	last := fn.Body[len(fn.Body)-1]
	switch last.(type) {
	case *ast.Return, *ast.If:
	default:
		return nil, texerr.Syntaxf("unsupported final statement for assignment reduction: %s", nodeKind(last))
	}

	reduced, err := rewriteStmt(last, subst)
	if err != nil {
		return nil, err
	}
	return &ast.FunctionDef{Name: fn.Name, Params: fn.Params, Body: []ast.Stmt{reduced}}, nil
}

func nodeKind(n ast.Node) string {
	return strings.TrimPrefix(fmt.Sprintf("%T", n), "*ast.")
}
