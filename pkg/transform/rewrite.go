// Package transform rewrites syntax trees before rendering. Every pass
// builds a new tree; input trees are never mutated.
package transform

import "github.com/texify-dev/texify/pkg/ast"

// exprRewrite is an expression hook applied bottom-up: children are rebuilt
// first, then the hook sees the rebuilt node and may replace it. Attribute
// nodes are the one exception: the hook runs before the descent, so it sees
// each attribute chain whole instead of its already-rewritten pieces.
type exprRewrite func(ast.Expr) (ast.Expr, error)

func rewriteExpr(e ast.Expr, f exprRewrite) (ast.Expr, error) {
	if e == nil {
		return nil, nil
	}

	switch v := e.(type) {
	case *ast.Literal, *ast.Name:
		return f(e)

	case *ast.Attribute:
		replaced, err := f(v)
		if err != nil {
			return nil, err
		}
		attr, ok := replaced.(*ast.Attribute)
		if !ok {
			return rewriteExpr(replaced, f)
		}
		value, err := rewriteExpr(attr.Value, f)
		if err != nil {
			return nil, err
		}
		return &ast.Attribute{Value: value, Attr: attr.Attr}, nil

	case *ast.UnaryOp:
		operand, err := rewriteExpr(v.Operand, f)
		if err != nil {
			return nil, err
		}
		return f(&ast.UnaryOp{Op: v.Op, Operand: operand})

	case *ast.BinOp:
		left, err := rewriteExpr(v.Left, f)
		if err != nil {
			return nil, err
		}
		right, err := rewriteExpr(v.Right, f)
		if err != nil {
			return nil, err
		}
		return f(&ast.BinOp{Left: left, Op: v.Op, Right: right})

	case *ast.BoolOp:
		values, err := rewriteExprs(v.Values, f)
		if err != nil {
			return nil, err
		}
		return f(&ast.BoolOp{Op: v.Op, Values: values})

	case *ast.Compare:
		left, err := rewriteExpr(v.Left, f)
		if err != nil {
			return nil, err
		}
		comparators, err := rewriteExprs(v.Comparators, f)
		if err != nil {
			return nil, err
		}
		ops := make([]ast.CompareOpKind, len(v.Ops))
		copy(ops, v.Ops)
		return f(&ast.Compare{Left: left, Ops: ops, Comparators: comparators})

	case *ast.Call:
		fn, err := rewriteExpr(v.Func, f)
		if err != nil {
			return nil, err
		}
		args, err := rewriteExprs(v.Args, f)
		if err != nil {
			return nil, err
		}
		return f(&ast.Call{Func: fn, Args: args})

	case *ast.Subscript:
		value, err := rewriteExpr(v.Value, f)
		if err != nil {
			return nil, err
		}
		index, err := rewriteExpr(v.Index, f)
		if err != nil {
			return nil, err
		}
		return f(&ast.Subscript{Value: value, Index: index})

	case *ast.Tuple:
		elts, err := rewriteExprs(v.Elts, f)
		if err != nil {
			return nil, err
		}
		return f(&ast.Tuple{Elts: elts})

	case *ast.List:
		elts, err := rewriteExprs(v.Elts, f)
		if err != nil {
			return nil, err
		}
		return f(&ast.List{Elts: elts})

	case *ast.Set:
		elts, err := rewriteExprs(v.Elts, f)
		if err != nil {
			return nil, err
		}
		return f(&ast.Set{Elts: elts})

	case *ast.ListComp:
		elt, gens, err := rewriteCompParts(v.Elt, v.Generators, f)
		if err != nil {
			return nil, err
		}
		return f(&ast.ListComp{Elt: elt, Generators: gens})

	case *ast.SetComp:
		elt, gens, err := rewriteCompParts(v.Elt, v.Generators, f)
		if err != nil {
			return nil, err
		}
		return f(&ast.SetComp{Elt: elt, Generators: gens})

	case *ast.GeneratorExp:
		elt, gens, err := rewriteCompParts(v.Elt, v.Generators, f)
		if err != nil {
			return nil, err
		}
		return f(&ast.GeneratorExp{Elt: elt, Generators: gens})

	case *ast.IfExp:
		test, err := rewriteExpr(v.Test, f)
		if err != nil {
			return nil, err
		}
		body, err := rewriteExpr(v.Body, f)
		if err != nil {
			return nil, err
		}
		orelse, err := rewriteExpr(v.Orelse, f)
		if err != nil {
			return nil, err
		}
		return f(&ast.IfExp{Test: test, Body: body, Orelse: orelse})
	}
	return f(e)
}

func rewriteExprs(list []ast.Expr, f exprRewrite) ([]ast.Expr, error) {
	if list == nil {
		return nil, nil
	}
	out := make([]ast.Expr, len(list))
	for i, e := range list {
		var err error
		if out[i], err = rewriteExpr(e, f); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func rewriteCompParts(elt ast.Expr, gens []ast.Comprehension, f exprRewrite) (ast.Expr, []ast.Comprehension, error) {
	newElt, err := rewriteExpr(elt, f)
	if err != nil {
		return nil, nil, err
	}
	newGens := make([]ast.Comprehension, len(gens))
	for i, gen := range gens {
		target, err := rewriteExpr(gen.Target, f)
		if err != nil {
			return nil, nil, err
		}
		iter, err := rewriteExpr(gen.Iter, f)
		if err != nil {
			return nil, nil, err
		}
		ifs, err := rewriteExprs(gen.Ifs, f)
		if err != nil {
			return nil, nil, err
		}
		newGens[i] = ast.Comprehension{Target: target, Iter: iter, Ifs: ifs}
	}
	return newElt, newGens, nil
}

// rewriteStmt rebuilds one statement, applying f to every embedded
// expression.
func rewriteStmt(stmt ast.Stmt, f exprRewrite) (ast.Stmt, error) {
	switch v := stmt.(type) {
	case *ast.FunctionDef:
		body, err := rewriteStmts(v.Body, f)
		if err != nil {
			return nil, err
		}
		params := make([]string, len(v.Params))
		copy(params, v.Params)
		return &ast.FunctionDef{Name: v.Name, Params: params, Body: body}, nil

	case *ast.Return:
		value, err := rewriteExpr(v.Value, f)
		if err != nil {
			return nil, err
		}
		return &ast.Return{Value: value}, nil

	case *ast.Assign:
		targets, err := rewriteExprs(v.Targets, f)
		if err != nil {
			return nil, err
		}
		value, err := rewriteExpr(v.Value, f)
		if err != nil {
			return nil, err
		}
		return &ast.Assign{Targets: targets, Value: value}, nil

	case *ast.AugAssign:
		target, err := rewriteExpr(v.Target, f)
		if err != nil {
			return nil, err
		}
		value, err := rewriteExpr(v.Value, f)
		if err != nil {
			return nil, err
		}
		return &ast.AugAssign{Target: target, Op: v.Op, Value: value}, nil

	case *ast.If:
		test, err := rewriteExpr(v.Test, f)
		if err != nil {
			return nil, err
		}
		body, err := rewriteStmts(v.Body, f)
		if err != nil {
			return nil, err
		}
		orelse, err := rewriteStmts(v.Else, f)
		if err != nil {
			return nil, err
		}
		return &ast.If{Test: test, Body: body, Else: orelse}, nil

	case *ast.While:
		test, err := rewriteExpr(v.Test, f)
		if err != nil {
			return nil, err
		}
		body, err := rewriteStmts(v.Body, f)
		if err != nil {
			return nil, err
		}
		orelse, err := rewriteStmts(v.Else, f)
		if err != nil {
			return nil, err
		}
		return &ast.While{Test: test, Body: body, Else: orelse}, nil

	case *ast.For:
		target, err := rewriteExpr(v.Target, f)
		if err != nil {
			return nil, err
		}
		iter, err := rewriteExpr(v.Iter, f)
		if err != nil {
			return nil, err
		}
		body, err := rewriteStmts(v.Body, f)
		if err != nil {
			return nil, err
		}
		orelse, err := rewriteStmts(v.Else, f)
		if err != nil {
			return nil, err
		}
		return &ast.For{Target: target, Iter: iter, Body: body, Else: orelse}, nil

	case *ast.ExprStmt:
		value, err := rewriteExpr(v.Value, f)
		if err != nil {
			return nil, err
		}
		return &ast.ExprStmt{Value: value}, nil

	case *ast.Match:
		subject, err := rewriteExpr(v.Subject, f)
		if err != nil {
			return nil, err
		}
		cases := make([]ast.MatchCase, len(v.Cases))
		for i, matchCase := range v.Cases {
			pattern, err := rewriteExpr(matchCase.Pattern, f)
			if err != nil {
				return nil, err
			}
			body, err := rewriteStmts(matchCase.Body, f)
			if err != nil {
				return nil, err
			}
			cases[i] = ast.MatchCase{Pattern: pattern, Body: body}
		}
		return &ast.Match{Subject: subject, Cases: cases}, nil

	case *ast.Pass:
		return &ast.Pass{}, nil
	case *ast.Break:
		return &ast.Break{}, nil
	case *ast.Continue:
		return &ast.Continue{}, nil
	}
	return stmt, nil
}

func rewriteStmts(body []ast.Stmt, f exprRewrite) ([]ast.Stmt, error) {
	if body == nil {
		return nil, nil
	}
	out := make([]ast.Stmt, len(body))
	for i, stmt := range body {
		var err error
		if out[i], err = rewriteStmt(stmt, f); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func rewriteModule(mod *ast.Module, f exprRewrite) (*ast.Module, error) {
	body, err := rewriteStmts(mod.Body, f)
	if err != nil {
		return nil, err
	}
	return &ast.Module{Body: body}, nil
}
