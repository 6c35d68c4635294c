package ast

// Equal reports whether two trees are structurally identical. It compares
// node kinds and payloads recursively.
func Equal(a, b Node) bool {
	if a == nil || b == nil {
		return a == b
	}

	switch x := a.(type) {
	case *Module:
		y, ok := b.(*Module)
		return ok && equalStmts(x.Body, y.Body)
	case *FunctionDef:
		y, ok := b.(*FunctionDef)
		if !ok || x.Name != y.Name || len(x.Params) != len(y.Params) {
			return false
		}
		for i := range x.Params {
			if x.Params[i] != y.Params[i] {
				return false
			}
		}
		return equalStmts(x.Body, y.Body)
	case *Return:
		y, ok := b.(*Return)
		return ok && equalExpr(x.Value, y.Value)
	case *Assign:
		y, ok := b.(*Assign)
		return ok && equalExprs(x.Targets, y.Targets) && equalExpr(x.Value, y.Value)
	case *AugAssign:
		y, ok := b.(*AugAssign)
		return ok && x.Op == y.Op && equalExpr(x.Target, y.Target) && equalExpr(x.Value, y.Value)
	case *If:
		y, ok := b.(*If)
		return ok && equalExpr(x.Test, y.Test) && equalStmts(x.Body, y.Body) && equalStmts(x.Else, y.Else)
	case *While:
		y, ok := b.(*While)
		return ok && equalExpr(x.Test, y.Test) && equalStmts(x.Body, y.Body) && equalStmts(x.Else, y.Else)
	case *For:
		y, ok := b.(*For)
		return ok && equalExpr(x.Target, y.Target) && equalExpr(x.Iter, y.Iter) &&
			equalStmts(x.Body, y.Body) && equalStmts(x.Else, y.Else)
	case *ExprStmt:
		y, ok := b.(*ExprStmt)
		return ok && equalExpr(x.Value, y.Value)
	case *Match:
		y, ok := b.(*Match)
		if !ok || !equalExpr(x.Subject, y.Subject) || len(x.Cases) != len(y.Cases) {
			return false
		}
		for i := range x.Cases {
			if !equalExpr(x.Cases[i].Pattern, y.Cases[i].Pattern) ||
				!equalStmts(x.Cases[i].Body, y.Cases[i].Body) {
				return false
			}
		}
		return true
	case *Pass:
		_, ok := b.(*Pass)
		return ok
	case *Break:
		_, ok := b.(*Break)
		return ok
	case *Continue:
		_, ok := b.(*Continue)
		return ok
	case *Literal:
		y, ok := b.(*Literal)
		return ok && x.Kind == y.Kind && x.Raw == y.Raw
	case *Name:
		y, ok := b.(*Name)
		return ok && x.ID == y.ID
	case *Attribute:
		y, ok := b.(*Attribute)
		return ok && x.Attr == y.Attr && equalExpr(x.Value, y.Value)
	case *UnaryOp:
		y, ok := b.(*UnaryOp)
		return ok && x.Op == y.Op && equalExpr(x.Operand, y.Operand)
	case *BinOp:
		y, ok := b.(*BinOp)
		return ok && x.Op == y.Op && equalExpr(x.Left, y.Left) && equalExpr(x.Right, y.Right)
	case *BoolOp:
		y, ok := b.(*BoolOp)
		return ok && x.Op == y.Op && equalExprs(x.Values, y.Values)
	case *Compare:
		y, ok := b.(*Compare)
		if !ok || !equalExpr(x.Left, y.Left) || len(x.Ops) != len(y.Ops) {
			return false
		}
		for i := range x.Ops {
			if x.Ops[i] != y.Ops[i] {
				return false
			}
		}
		return equalExprs(x.Comparators, y.Comparators)
	case *Call:
		y, ok := b.(*Call)
		return ok && equalExpr(x.Func, y.Func) && equalExprs(x.Args, y.Args)
	case *Subscript:
		y, ok := b.(*Subscript)
		return ok && equalExpr(x.Value, y.Value) && equalExpr(x.Index, y.Index)
	case *Tuple:
		y, ok := b.(*Tuple)
		return ok && equalExprs(x.Elts, y.Elts)
	case *List:
		y, ok := b.(*List)
		return ok && equalExprs(x.Elts, y.Elts)
	case *Set:
		y, ok := b.(*Set)
		return ok && equalExprs(x.Elts, y.Elts)
	case *ListComp:
		y, ok := b.(*ListComp)
		return ok && equalExpr(x.Elt, y.Elt) && equalComprehensions(x.Generators, y.Generators)
	case *SetComp:
		y, ok := b.(*SetComp)
		return ok && equalExpr(x.Elt, y.Elt) && equalComprehensions(x.Generators, y.Generators)
	case *GeneratorExp:
		y, ok := b.(*GeneratorExp)
		return ok && equalExpr(x.Elt, y.Elt) && equalComprehensions(x.Generators, y.Generators)
	case *IfExp:
		y, ok := b.(*IfExp)
		return ok && equalExpr(x.Test, y.Test) && equalExpr(x.Body, y.Body) && equalExpr(x.Orelse, y.Orelse)
	}
	return false
}

func equalExpr(a, b Expr) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return Equal(a, b)
}

func equalExprs(a, b []Expr) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !equalExpr(a[i], b[i]) {
			return false
		}
	}
	return true
}

func equalStmts(a, b []Stmt) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}

func equalComprehensions(a, b []Comprehension) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !equalExpr(a[i].Target, b[i].Target) || !equalExpr(a[i].Iter, b[i].Iter) ||
			!equalExprs(a[i].Ifs, b[i].Ifs) {
			return false
		}
	}
	return true
}
