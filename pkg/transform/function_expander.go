// Package transform - Composite function expansion
package transform

import (
	"github.com/texify-dev/texify/pkg/ast"
	"github.com/texify-dev/texify/pkg/texerr"
)

// FunctionExpander rewrites calls to composite math functions into their
// primitive forms, e.g. hypot(x, y) into sqrt(x**2 + y**2). Only functions
// named in both the configured set and the expansion table are touched.
type FunctionExpander struct {
	functions map[string]struct{}
}

// NewFunctionExpander builds an expander for the given function names.
// Unknown names are permitted and simply never match.
func NewFunctionExpander(functions []string) *FunctionExpander {
	set := make(map[string]struct{}, len(functions))
	for _, fn := range functions {
		set[fn] = struct{}{}
	}
	return &FunctionExpander{functions: set}
}

type expandFunc func(*FunctionExpander, *ast.Call) (ast.Expr, error)

// Populated in init: expandExpm1 re-enters expandCall, which reads this
// map back, so a literal initializer would form an initialization cycle.
var functionExpanders map[string]expandFunc

func init() {
	functionExpanders = map[string]expandFunc{
		"atan2": expandAtan2,
		"exp":   expandExp,
		"exp2":  expandExp2,
		"expm1": expandExpm1,
		"hypot": expandHypot,
		"log1p": expandLog1p,
		"pow":   expandPow,
	}
}

// Transform returns a new tree with every matching call expanded. Calls
// are rewritten bottom-up, so composite arguments are already expanded by
// the time the surrounding call is considered.
func (x *FunctionExpander) Transform(mod *ast.Module) (*ast.Module, error) {
	return rewriteModule(mod, func(e ast.Expr) (ast.Expr, error) {
		call, ok := e.(*ast.Call)
		if !ok {
			return e, nil
		}
		return x.expandCall(call)
	})
}

func (x *FunctionExpander) expandCall(call *ast.Call) (ast.Expr, error) {
	name, ok := call.Func.(*ast.Name)
	if !ok {
		return call, nil
	}
	if _, configured := x.functions[name.ID]; !configured {
		return call, nil
	}
	expander, known := functionExpanders[name.ID]
	if !known {
		return call, nil
	}
	return expander(x, call)
}

func expectArgs(call *ast.Call, name string, want int) error {
	if len(call.Args) != want {
		return texerr.NotSupportedf(
			"function '%s' expects %d arguments, got %d", name, want, len(call.Args))
	}
	return nil
}

func expandAtan2(_ *FunctionExpander, call *ast.Call) (ast.Expr, error) {
	if err := expectArgs(call, "atan2", 2); err != nil {
		return nil, err
	}
	return &ast.Call{
		Func: ast.MakeName("atan"),
		Args: []ast.Expr{&ast.BinOp{Left: call.Args[0], Op: ast.Div, Right: call.Args[1]}},
	}, nil
}

func expandExp(_ *FunctionExpander, call *ast.Call) (ast.Expr, error) {
	if err := expectArgs(call, "exp", 1); err != nil {
		return nil, err
	}
	return &ast.BinOp{Left: ast.MakeName("e"), Op: ast.Pow, Right: call.Args[0]}, nil
}

func expandExp2(_ *FunctionExpander, call *ast.Call) (ast.Expr, error) {
	if err := expectArgs(call, "exp2", 1); err != nil {
		return nil, err
	}
	return &ast.BinOp{Left: ast.MakeInt(2), Op: ast.Pow, Right: call.Args[0]}, nil
}

func expandExpm1(x *FunctionExpander, call *ast.Call) (ast.Expr, error) {
	if err := expectArgs(call, "expm1", 1); err != nil {
		return nil, err
	}
	// The generated exp call expands in turn when exp is configured too.
	inner, err := x.expandCall(&ast.Call{Func: ast.MakeName("exp"), Args: call.Args})
	if err != nil {
		return nil, err
	}
	return &ast.BinOp{Left: inner, Op: ast.Sub, Right: ast.MakeInt(1)}, nil
}

func expandHypot(_ *FunctionExpander, call *ast.Call) (ast.Expr, error) {
	if len(call.Args) == 0 {
		return nil, texerr.NotSupportedf("function 'hypot' expects at least one argument")
	}
	var sum ast.Expr
	for _, arg := range call.Args {
		squared := &ast.BinOp{Left: arg, Op: ast.Pow, Right: ast.MakeInt(2)}
		if sum == nil {
			sum = squared
		} else {
			sum = &ast.BinOp{Left: sum, Op: ast.Add, Right: squared}
		}
	}
	return &ast.Call{Func: ast.MakeName("sqrt"), Args: []ast.Expr{sum}}, nil
}

func expandLog1p(_ *FunctionExpander, call *ast.Call) (ast.Expr, error) {
	if err := expectArgs(call, "log1p", 1); err != nil {
		return nil, err
	}
	sum := &ast.BinOp{Left: ast.MakeInt(1), Op: ast.Add, Right: call.Args[0]}
	return &ast.Call{Func: ast.MakeName("log"), Args: []ast.Expr{sum}}, nil
}

func expandPow(_ *FunctionExpander, call *ast.Call) (ast.Expr, error) {
	if err := expectArgs(call, "pow", 2); err != nil {
		return nil, err
	}
	return &ast.BinOp{Left: call.Args[0], Op: ast.Pow, Right: call.Args[1]}, nil
}
