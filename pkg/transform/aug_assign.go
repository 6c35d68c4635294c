// Package transform - Augmented assignment normalization
package transform

import "github.com/texify-dev/texify/pkg/ast"

// ReplaceAugAssign rewrites `x += y` into `x = x + y`, so every later pass
// sees plain assignments only. Runs unconditionally before the rest of the
// pipeline.
func ReplaceAugAssign(mod *ast.Module) *ast.Module {
	return &ast.Module{Body: replaceAugAssignBody(mod.Body)}
}

func replaceAugAssignBody(body []ast.Stmt) []ast.Stmt {
	if body == nil {
		return nil
	}
	out := make([]ast.Stmt, len(body))
	for i, stmt := range body {
		out[i] = replaceAugAssignStmt(stmt)
	}
	return out
}

func replaceAugAssignStmt(stmt ast.Stmt) ast.Stmt {
	switch v := stmt.(type) {
	case *ast.AugAssign:
		return &ast.Assign{
			Targets: []ast.Expr{v.Target},
			Value:   &ast.BinOp{Left: v.Target, Op: v.Op, Right: v.Value},
		}
	case *ast.FunctionDef:
		return &ast.FunctionDef{Name: v.Name, Params: v.Params, Body: replaceAugAssignBody(v.Body)}
	case *ast.If:
		return &ast.If{Test: v.Test, Body: replaceAugAssignBody(v.Body), Else: replaceAugAssignBody(v.Else)}
	case *ast.While:
		return &ast.While{Test: v.Test, Body: replaceAugAssignBody(v.Body), Else: replaceAugAssignBody(v.Else)}
	case *ast.For:
		return &ast.For{Target: v.Target, Iter: v.Iter, Body: replaceAugAssignBody(v.Body), Else: replaceAugAssignBody(v.Else)}
	case *ast.Match:
		cases := make([]ast.MatchCase, len(v.Cases))
		for i, matchCase := range v.Cases {
			cases[i] = ast.MatchCase{Pattern: matchCase.Pattern, Body: replaceAugAssignBody(matchCase.Body)}
		}
		return &ast.Match{Subject: v.Subject, Cases: cases}
	}
	return stmt
}
