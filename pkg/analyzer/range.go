// Package analyzer inspects subtrees ahead of rendering.
//
// Its single concern today is recognizing range(...) calls inside sum and
// prod generators so the renderers can emit closed-form bounds.
package analyzer

import (
	"github.com/texify-dev/texify/pkg/ast"
	"github.com/texify-dev/texify/pkg/texerr"
)

// RangeInfo describes a range(...) call. Start, Stop and Step are always
// set; the Int fields carry the constant value when the source argument is
// an integer literal.
type RangeInfo struct {
	Start Expr
	Stop  Expr
	Step  Expr
}

// Expr pairs an expression with its constant integer value, if known.
type Expr struct {
	Node  ast.Expr
	Int   int
	Known bool
}

func makeExpr(e ast.Expr) Expr {
	v, ok := ast.IntValue(e)
	return Expr{Node: e, Int: v, Known: ok}
}

// AnalyzeRange validates a range(...) call and extracts its bounds.
// Omitted start defaults to 0 and omitted step to 1, both as literal nodes
// so callers can render them uniformly.
func AnalyzeRange(call *ast.Call) (*RangeInfo, error) {
	// Only the builtin counts: mod.range(x) is someone else's function.
	name, ok := call.Func.(*ast.Name)
	if !ok || name.ID != "range" {
		return nil, texerr.Syntaxf("AnalyzeRange: not a range call")
	}

	var start, stop, step ast.Expr
	switch len(call.Args) {
	case 1:
		start = ast.MakeInt(0)
		stop = call.Args[0]
		step = ast.MakeInt(1)
	case 2:
		start = call.Args[0]
		stop = call.Args[1]
		step = ast.MakeInt(1)
	case 3:
		start = call.Args[0]
		stop = call.Args[1]
		step = call.Args[2]
	default:
		return nil, texerr.Syntaxf("range expects 1 to 3 arguments, got %d", len(call.Args))
	}

	return &RangeInfo{
		Start: makeExpr(start),
		Stop:  makeExpr(stop),
		Step:  makeExpr(step),
	}, nil
}

// ReduceStopBound rewrites an exclusive stop bound into the inclusive form
// used above sum and prod signs: range(n) iterates up to n - 1.
func ReduceStopBound(stop ast.Expr) ast.Expr {
	binop, ok := stop.(*ast.BinOp)
	if !ok || (binop.Op != ast.Add && binop.Op != ast.Sub) {
		return minusOne(stop)
	}

	k, ok := ast.IntValue(binop.Right)
	if !ok {
		return minusOne(stop)
	}

	switch binop.Op {
	case ast.Add:
		if k == 1 {
			return binop.Left
		}
		return &ast.BinOp{
			Left:  binop.Left,
			Op:    ast.Add,
			Right: ast.MakeInt(k - 1),
		}
	default:
		return &ast.BinOp{
			Left:  binop.Left,
			Op:    ast.Sub,
			Right: ast.MakeInt(k + 1),
		}
	}
}

func minusOne(e ast.Expr) ast.Expr {
	return &ast.BinOp{Left: e, Op: ast.Sub, Right: ast.MakeInt(1)}
}
