// Package codegen - Expression renderer
package codegen

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/texify-dev/texify/pkg/analyzer"
	"github.com/texify-dev/texify/pkg/ast"
	"github.com/texify-dev/texify/pkg/texerr"
)

// ExpressionCodegen renders a single expression subtree.
type ExpressionCodegen struct {
	idents   *IdentifierConverter
	binRules map[ast.BinOpKind]binOpRule
	cmpOps   map[ast.CompareOpKind]string
}

// NewExpressionCodegen builds an expression renderer. useMathSymbols turns
// Greek-named identifiers into symbol commands; useSetSymbols swaps the
// bitwise and comparison glyphs for their set-theoretic counterparts.
func NewExpressionCodegen(useMathSymbols, useSetSymbols bool) *ExpressionCodegen {
	gen := &ExpressionCodegen{
		idents:   NewIdentifierConverter(useMathSymbols, true),
		binRules: binOpRules,
		cmpOps:   compareOps,
	}
	if useSetSymbols {
		gen.binRules = setBinOpRules
		gen.cmpOps = setCompareOps
	}
	return gen
}

// Visit renders one expression. It never returns partial output: on any
// unsupported shape the result is an empty string and a non-nil error.
func (g *ExpressionCodegen) Visit(e ast.Expr) (string, error) {
	switch v := e.(type) {
	case *ast.Literal:
		return g.visitLiteral(v)
	case *ast.Name:
		latex, _ := g.idents.Convert(v.ID)
		return latex, nil
	case *ast.Attribute:
		return g.visitAttribute(v)
	case *ast.UnaryOp:
		return g.visitUnaryOp(v)
	case *ast.BinOp:
		return g.visitBinOp(v)
	case *ast.BoolOp:
		return g.visitBoolOp(v)
	case *ast.Compare:
		return g.visitCompare(v)
	case *ast.Call:
		return g.visitCall(v)
	case *ast.Subscript:
		return g.visitSubscript(v)
	case *ast.Tuple:
		return g.visitSequence(v.Elts, Latex.Paren)
	case *ast.List:
		return g.visitSequence(v.Elts, Latex.Square)
	case *ast.Set:
		return g.visitSequence(v.Elts, Latex.Curly)
	case *ast.ListComp:
		return g.visitComp(v.Elt, v.Generators, Latex.Square)
	case *ast.SetComp:
		return g.visitComp(v.Elt, v.Generators, Latex.Curly)
	case *ast.IfExp:
		return g.visitIfExp(v)
	}
	return "", texerr.NotSupportedf("unsupported syntax: %s", nodeName(e))
}

func nodeName(e ast.Expr) string {
	switch e.(type) {
	case *ast.GeneratorExp:
		return "generator expression"
	case nil:
		return "empty expression"
	}
	return strings.TrimPrefix(fmt.Sprintf("%T", e), "*ast.")
}

func (g *ExpressionCodegen) visitLiteral(lit *ast.Literal) (string, error) {
	switch lit.Kind {
	case ast.LitInt, ast.LitFloat:
		return lit.Raw, nil
	case ast.LitBool, ast.LitNone:
		return `\mathrm{` + lit.Raw + `}`, nil
	case ast.LitString:
		return `\textrm{"` + lit.Raw + `"}`, nil
	}
	return "", texerr.NotSupportedf("unrecognized constant kind")
}

func (g *ExpressionCodegen) visitAttribute(attr *ast.Attribute) (string, error) {
	value, err := g.Visit(attr.Value)
	if err != nil {
		return "", err
	}
	name, _ := g.idents.Convert(attr.Attr)
	return value + "." + name, nil
}

func (g *ExpressionCodegen) visitSequence(elts []ast.Expr, bracket func(Latex) Latex) (string, error) {
	parts := make([]Latex, len(elts))
	for i, elt := range elts {
		s, err := g.Visit(elt)
		if err != nil {
			return "", err
		}
		parts[i] = Latex(s)
	}
	return string(bracket(Latex(", ").Join(parts))), nil
}

func (g *ExpressionCodegen) visitComp(elt ast.Expr, gens []ast.Comprehension, bracket func(Latex) Latex) (string, error) {
	eltLatex, err := g.Visit(elt)
	if err != nil {
		return "", err
	}
	parts := make([]string, len(gens))
	for i := range gens {
		if parts[i], err = g.visitComprehension(gens[i]); err != nil {
			return "", err
		}
	}
	body := eltLatex + ` \mid ` + strings.Join(parts, ", ")
	return string(bracket(Latex(body))), nil
}

func (g *ExpressionCodegen) visitComprehension(comp ast.Comprehension) (string, error) {
	target, err := g.Visit(comp.Target)
	if err != nil {
		return "", err
	}
	iter, err := g.Visit(comp.Iter)
	if err != nil {
		return "", err
	}
	membership := target + ` \in ` + iter

	if len(comp.Ifs) == 0 {
		return membership, nil
	}

	conds := []Latex{Latex(membership).Paren()}
	for _, cond := range comp.Ifs {
		s, err := g.Visit(cond)
		if err != nil {
			return "", err
		}
		conds = append(conds, Latex(s).Paren())
	}
	return string(Latex(` \land `).Join(conds)), nil
}

// Calls

func (g *ExpressionCodegen) visitCall(call *ast.Call) (string, error) {
	name := ast.FunctionName(call)

	// A few call forms render as dedicated notation instead of function
	// application.
	switch name {
	case "fsum", "sum", "prod":
		if latex, ok, err := g.generateSumProd(call, name); err != nil || ok {
			return latex, err
		}
	case "array", "ndarray":
		if latex, ok, err := g.generateMatrix(call); err != nil || ok {
			return latex, err
		}
	case "zeros":
		if latex, ok := g.generateZeros(call); ok {
			return latex, nil
		}
	case "identity":
		if latex, ok := g.generateIdentity(call); ok {
			return latex, nil
		}
	}

	rule, known := builtinFuncs[name]
	if !known {
		fnLatex, err := g.Visit(call.Func)
		if err != nil {
			return "", err
		}
		rule = functionRule{left: fnLatex}
	}

	var elements []string
	if rule.isUnary && len(call.Args) == 1 {
		// The single argument follows the unary-operator wrapping policy.
		// A factorial adjacent to another call keeps its parentheses so
		// the bang cannot be misread.
		arg := call.Args[0]
		forceWrap := false
		if inner, ok := arg.(*ast.Call); ok {
			forceWrap = name == "factorial" || ast.FunctionName(inner) == "factorial"
		}
		argLatex, err := g.wrapOperand(arg, precCall, forceWrap)
		if err != nil {
			return "", err
		}
		// A power argument keeps its parentheses even though it binds
		// tighter than the call: \log x^{2} would read as (\log x)^{2}.
		if inner, ok := arg.(*ast.BinOp); ok && inner.Op == ast.Pow {
			argLatex = string(Latex(argLatex).Paren())
		}
		elements = []string{rule.left, argLatex, rule.right}
	} else {
		args := make([]string, len(call.Args))
		for i, arg := range call.Args {
			s, err := g.Visit(arg)
			if err != nil {
				return "", err
			}
			args[i] = s
		}
		argLatex := strings.Join(args, ", ")
		if rule.isWrapped {
			elements = []string{rule.left, argLatex, rule.right}
		} else {
			elements = []string{
				rule.left, `\mathopen{}\left(`, argLatex, `\mathclose{}\right)`, rule.right,
			}
		}
	}

	var kept []string
	for _, el := range elements {
		if el != "" {
			kept = append(kept, el)
		}
	}
	return strings.Join(kept, " "), nil
}

func (g *ExpressionCodegen) generateSumProd(call *ast.Call, name string) (string, bool, error) {
	if len(call.Args) != 1 {
		return "", false, nil
	}
	gen, ok := call.Args[0].(*ast.GeneratorExp)
	if !ok {
		return "", false, nil
	}

	command := `\sum`
	if name == "prod" {
		command = `\prod`
	}

	elt, scripts, err := g.sumProdInfo(gen)
	if err != nil {
		return "", false, err
	}

	parts := make([]string, len(scripts))
	for i, s := range scripts {
		parts[i] = command + "_{" + s.lower + "}^{" + s.upper + "}"
	}
	return strings.Join(parts, " ") +
		` \mathopen{}\left({` + elt + `}\mathclose{}\right)`, true, nil
}

type sumProdScript struct {
	lower, upper string
}

func (g *ExpressionCodegen) sumProdInfo(gen *ast.GeneratorExp) (string, []sumProdScript, error) {
	elt, err := g.Visit(gen.Elt)
	if err != nil {
		return "", nil, err
	}

	scripts := make([]sumProdScript, 0, len(gen.Generators))
	for _, comp := range gen.Generators {
		lower, upper, folded, err := g.sumProdRange(comp)
		if err != nil {
			return "", nil, err
		}
		if folded && len(comp.Ifs) == 0 {
			target, err := g.Visit(comp.Target)
			if err != nil {
				return "", nil, err
			}
			scripts = append(scripts, sumProdScript{target + " = " + lower, upper})
			continue
		}
		// Fall back to the comprehension form under the sign.
		full, err := g.visitComprehension(comp)
		if err != nil {
			return "", nil, err
		}
		scripts = append(scripts, sumProdScript{full, ""})
	}
	return elt, scripts, nil
}

// sumProdRange folds an ascending unit-step range into closed bounds. The
// returned flag reports whether folding applied.
func (g *ExpressionCodegen) sumProdRange(comp ast.Comprehension) (string, string, bool, error) {
	call, ok := comp.Iter.(*ast.Call)
	if !ok {
		return "", "", false, nil
	}
	if fn, ok := call.Func.(*ast.Name); !ok || fn.ID != "range" {
		return "", "", false, nil
	}

	info, err := analyzer.AnalyzeRange(call)
	if err != nil {
		return "", "", false, nil
	}

	if !info.Step.Known || info.Step.Int != 1 {
		return "", "", false, nil
	}
	if info.Start.Known && info.Stop.Known && info.Start.Int >= info.Stop.Int {
		return "", "", false, nil
	}

	var lower string
	if info.Start.Known {
		lower = strconv.Itoa(info.Start.Int)
	} else {
		if lower, err = g.Visit(info.Start.Node); err != nil {
			return "", "", false, err
		}
	}

	var upper string
	if info.Stop.Known {
		upper = strconv.Itoa(info.Stop.Int - 1)
	} else {
		if upper, err = g.Visit(analyzer.ReduceStopBound(info.Stop.Node)); err != nil {
			return "", "", false, err
		}
	}
	return lower, upper, true, nil
}

func (g *ExpressionCodegen) generateMatrix(call *ast.Call) (string, bool, error) {
	if len(call.Args) == 0 {
		return "", false, nil
	}
	arg, ok := call.Args[0].(*ast.List)
	if !ok || len(arg.Elts) == 0 {
		return "", false, nil
	}

	row0, ok := arg.Elts[0].(*ast.List)
	if !ok {
		// A flat list renders as a 1 x N matrix.
		row, err := g.visitRow(arg.Elts)
		if err != nil {
			return "", false, err
		}
		return matrixEnv([]string{row}), true, nil
	}
	if len(row0.Elts) == 0 {
		return "", false, nil
	}

	ncols := len(row0.Elts)
	rows := make([]string, 0, len(arg.Elts))
	for _, elt := range arg.Elts {
		row, ok := elt.(*ast.List)
		if !ok || len(row.Elts) != ncols {
			return "", false, nil
		}
		rendered, err := g.visitRow(row.Elts)
		if err != nil {
			return "", false, err
		}
		rows = append(rows, rendered)
	}
	return matrixEnv(rows), true, nil
}

func (g *ExpressionCodegen) visitRow(elts []ast.Expr) (string, error) {
	cells := make([]string, len(elts))
	for i, elt := range elts {
		s, err := g.Visit(elt)
		if err != nil {
			return "", err
		}
		cells[i] = s
	}
	return strings.Join(cells, " & "), nil
}

func matrixEnv(rows []string) string {
	return `\begin{bmatrix} ` + strings.Join(rows, ` \\ `) + ` \end{bmatrix}`
}

func (g *ExpressionCodegen) generateZeros(call *ast.Call) (string, bool) {
	if len(call.Args) != 1 {
		return "", false
	}

	var dimsLatex string
	if tuple, ok := call.Args[0].(*ast.Tuple); ok {
		dims := make([]int, len(tuple.Elts))
		for i, elt := range tuple.Elts {
			v, ok := ast.IntValue(elt)
			if !ok {
				return "", false
			}
			dims[i] = v
		}
		if len(dims) == 0 {
			return "0", true
		}
		if len(dims) == 1 {
			dims = []int{1, dims[0]}
		}
		parts := make([]string, len(dims))
		for i, d := range dims {
			parts[i] = strconv.Itoa(d)
		}
		dimsLatex = strings.Join(parts, ` \times `)
	} else {
		dim, ok := ast.IntValue(call.Args[0])
		if !ok {
			return "", false
		}
		dimsLatex = `1 \times ` + strconv.Itoa(dim)
	}
	return `\mathbf{0}^{` + dimsLatex + `}`, true
}

func (g *ExpressionCodegen) generateIdentity(call *ast.Call) (string, bool) {
	if len(call.Args) != 1 {
		return "", false
	}
	ndims, ok := ast.IntValue(call.Args[0])
	if !ok {
		return "", false
	}
	return `\mathbf{I}_{` + strconv.Itoa(ndims) + `}`, true
}

// Operators

// wrapOperand parenthesizes the child when its operator binds weaker than
// the parent, or on ties when forceWrap is set.
func (g *ExpressionCodegen) wrapOperand(child ast.Expr, parentPrec int, forceWrap bool) (string, error) {
	latex, err := g.Visit(child)
	if err != nil {
		return "", err
	}
	childPrec := precedence(child)
	if childPrec < parentPrec || (forceWrap && childPrec == parentPrec) {
		return string(Latex(latex).Paren()), nil
	}
	return latex, nil
}

func (g *ExpressionCodegen) wrapBinOpOperand(child ast.Expr, parentPrec int, rule binOperandRule) (string, error) {
	if !rule.wrap {
		return g.Visit(child)
	}

	if call, ok := child.(*ast.Call); ok {
		if fr, known := builtinFuncs[ast.FunctionName(call)]; known && fr.isWrapped {
			return g.Visit(call)
		}
	}

	binop, ok := child.(*ast.BinOp)
	if !ok {
		return g.wrapOperand(child, parentPrec, false)
	}

	latex, err := g.Visit(binop)
	if err != nil {
		return "", err
	}
	if binOpRules[binop.Op].isWrapped {
		return latex, nil
	}

	childPrec := precedence(binop)
	if childPrec > parentPrec || (childPrec == parentPrec && !rule.force) {
		return latex, nil
	}
	return string(Latex(latex).Paren()), nil
}

func (g *ExpressionCodegen) visitBinOp(binop *ast.BinOp) (string, error) {
	prec := precedence(binop)
	rule := g.binRules[binop.Op]

	lhs, err := g.wrapBinOpOperand(binop.Left, prec, rule.operandLeft)
	if err != nil {
		return "", err
	}
	rhs, err := g.wrapBinOpOperand(binop.Right, prec, rule.operandRight)
	if err != nil {
		return "", err
	}

	middle := rule.middle
	if binop.Op == ast.Mult || binop.Op == ast.MatMult {
		middle = g.multSeparator(binop, lhs, rhs)
	}
	return rule.left + lhs + middle + rhs + rule.right, nil
}

func (g *ExpressionCodegen) visitUnaryOp(unary *ast.UnaryOp) (string, error) {
	latex, err := g.wrapOperand(unary.Operand, precedence(unary), false)
	if err != nil {
		return "", err
	}
	return unaryOps[unary.Op] + latex, nil
}

func (g *ExpressionCodegen) visitCompare(cmp *ast.Compare) (string, error) {
	prec := precedence(cmp)

	var sb strings.Builder
	lhs, err := g.wrapOperand(cmp.Left, prec, false)
	if err != nil {
		return "", err
	}
	sb.WriteString(lhs)

	for i, op := range cmp.Ops {
		rhs, err := g.wrapOperand(cmp.Comparators[i], prec, false)
		if err != nil {
			return "", err
		}
		sb.WriteString(" " + g.cmpOps[op] + " " + rhs)
	}
	return sb.String(), nil
}

func (g *ExpressionCodegen) visitBoolOp(boolop *ast.BoolOp) (string, error) {
	prec := precedence(boolop)
	values := make([]string, len(boolop.Values))
	for i, value := range boolop.Values {
		s, err := g.wrapOperand(value, prec, false)
		if err != nil {
			return "", err
		}
		values[i] = s
	}
	return strings.Join(values, " "+boolOps[boolop.Op]+" "), nil
}

func (g *ExpressionCodegen) visitIfExp(ifexp *ast.IfExp) (string, error) {
	var sb strings.Builder
	sb.WriteString(`\left\{ \begin{array}{ll} `)

	var current ast.Expr = ifexp
	for {
		branch, ok := current.(*ast.IfExp)
		if !ok {
			break
		}
		body, err := g.Visit(branch.Body)
		if err != nil {
			return "", err
		}
		cond, err := g.Visit(branch.Test)
		if err != nil {
			return "", err
		}
		sb.WriteString(body + `, & \mathrm{if} \ ` + cond + ` \\ `)
		current = branch.Orelse
	}

	tail, err := g.Visit(current)
	if err != nil {
		return "", err
	}
	sb.WriteString(tail + `, & \mathrm{otherwise} \end{array} \right.`)
	return sb.String(), nil
}

// Subscripts

func (g *ExpressionCodegen) visitSubscript(sub *ast.Subscript) (string, error) {
	value, indices, err := g.flattenSubscripts(sub)
	if err != nil {
		return "", err
	}
	return value + "_{" + strings.Join(indices, ", ") + "}", nil
}

// flattenSubscripts turns x[i][j][...] into the root and the index chain.
func (g *ExpressionCodegen) flattenSubscripts(sub *ast.Subscript) (string, []string, error) {
	var value string
	var indices []string
	var err error

	if inner, ok := sub.Value.(*ast.Subscript); ok {
		if value, indices, err = g.flattenSubscripts(inner); err != nil {
			return "", nil, err
		}
	} else {
		if value, err = g.Visit(sub.Value); err != nil {
			return "", nil, err
		}
	}

	index, err := g.Visit(sub.Index)
	if err != nil {
		return "", nil, err
	}
	return value, append(indices, index), nil
}

// Multiplication elision

type mulCategory int

const (
	mulOther mulCategory = iota
	mulNumber
	mulAtom
	mulWord
	mulCall
	mulGroup
)

// multSeparator picks " \cdot " or a bare space between the rendered
// operands of a multiplication. The dot is dropped only where juxtaposition
// stays unambiguous: number-times-symbol, symbol-times-symbol, and anything
// following a parenthesized group.
func (g *ExpressionCodegen) multSeparator(binop *ast.BinOp, lhs, rhs string) string {
	const cdot = ` \cdot `

	// A right side opening with a digit or a sign always keeps the dot.
	if rhs != "" {
		switch {
		case rhs[0] == '-', rhs[0] == '+', rhs[0] >= '0' && rhs[0] <= '9':
			return cdot
		}
	}

	switch g.mulCategory(binop.Left, lhs, true) {
	case mulNumber, mulGroup:
		return " "
	case mulAtom:
		if g.mulCategory(binop.Right, rhs, false) == mulAtom {
			return " "
		}
	}
	return cdot
}

// mulCategory classifies the boundary token of an operand: the rightmost
// token for a left operand, the leftmost for a right one. Operator subtrees
// whose rendering got parenthesized count as groups regardless of content.
func (g *ExpressionCodegen) mulCategory(e ast.Expr, rendered string, leftSide bool) mulCategory {
	switch v := e.(type) {
	case *ast.Literal:
		if v.Kind == ast.LitInt || v.Kind == ast.LitFloat {
			return mulNumber
		}
	case *ast.Name:
		if _, atomic := g.idents.Convert(v.ID); atomic {
			return mulAtom
		}
		return mulWord
	case *ast.Attribute:
		return mulWord
	case *ast.Call:
		return mulCall
	case *ast.Subscript:
		return g.mulCategory(v.Value, "", leftSide)
	case *ast.UnaryOp:
		if isGrouped(rendered) {
			return mulGroup
		}
		if leftSide {
			return g.mulCategory(v.Operand, "", true)
		}
	case *ast.BinOp:
		if isGrouped(rendered) {
			return mulGroup
		}
		if leftSide {
			return g.mulCategory(v.Right, "", true)
		}
		return g.mulCategory(v.Left, "", false)
	case *ast.BoolOp:
		if isGrouped(rendered) {
			return mulGroup
		}
		if leftSide {
			return g.mulCategory(v.Values[len(v.Values)-1], "", true)
		}
		return g.mulCategory(v.Values[0], "", false)
	case *ast.Compare:
		if isGrouped(rendered) {
			return mulGroup
		}
		if leftSide {
			return g.mulCategory(v.Comparators[len(v.Comparators)-1], "", true)
		}
		return g.mulCategory(v.Left, "", false)
	}
	return mulOther
}

func isGrouped(rendered string) bool {
	if rendered == "" {
		return false
	}
	if strings.HasPrefix(rendered, `\mathopen{}\left( `) &&
		strings.HasSuffix(rendered, ` \mathclose{}\right)`) {
		return true
	}
	return strings.HasPrefix(rendered, `\left\lfloor`) &&
		strings.HasSuffix(rendered, `\right\rfloor`)
}
