// Package ast - construction and inspection helpers shared by the
// transforms, analyzers and code generators.
package ast

import "strconv"

// MakeInt builds an integer Literal.
func MakeInt(v int) *Literal {
	return &Literal{Kind: LitInt, Raw: strconv.Itoa(v)}
}

// MakeName builds a Name node.
func MakeName(id string) *Name {
	return &Name{ID: id}
}

// MakeAttribute builds an Attribute node.
func MakeAttribute(value Expr, attr string) *Attribute {
	return &Attribute{Value: value, Attr: attr}
}

// IntValue extracts the value of an integer Literal. The second result
// reports whether the node is such a literal.
func IntValue(e Expr) (int, bool) {
	lit, ok := e.(*Literal)
	if !ok || lit.Kind != LitInt {
		return 0, false
	}
	v, err := strconv.Atoi(lit.Raw)
	if err != nil {
		return 0, false
	}
	return v, true
}

// FunctionName returns the called function's name: the identifier itself
// for `f(...)`, the final attribute for `mod.f(...)`, and "" otherwise.
func FunctionName(call *Call) string {
	switch fn := call.Func.(type) {
	case *Name:
		return fn.ID
	case *Attribute:
		return fn.Attr
	}
	return ""
}

// IsStringLiteral reports whether e is a string constant, used to detect
// docstrings.
func IsStringLiteral(e Expr) bool {
	lit, ok := e.(*Literal)
	return ok && lit.Kind == LitString
}

// IsConstant reports whether e is any constant value.
func IsConstant(e Expr) bool {
	_, ok := e.(*Literal)
	return ok
}
