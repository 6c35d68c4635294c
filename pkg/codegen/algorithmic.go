// Package codegen - Pseudocode renderer in the algorithmicx style
package codegen

import (
	"strings"

	"github.com/texify-dev/texify/pkg/ast"
	"github.com/texify-dev/texify/pkg/texerr"
)

const spacesPerIndent = 4

// AlgorithmicCodegen renders a function as an algorithmicx environment:
// \Function, \State, \If, \While, \For lines with four-space indentation.
type AlgorithmicCodegen struct {
	expr   *ExpressionCodegen
	idents *IdentifierConverter
	level  int
}

func NewAlgorithmicCodegen(useMathSymbols, useSetSymbols bool) *AlgorithmicCodegen {
	return &AlgorithmicCodegen{
		expr: NewExpressionCodegen(useMathSymbols, useSetSymbols),
		// Pseudocode names are typeset bare, without \mathrm.
		idents: NewIdentifierConverter(useMathSymbols, false),
	}
}

// VisitModule renders the single function definition the module must hold.
func (g *AlgorithmicCodegen) VisitModule(mod *ast.Module) (string, error) {
	if len(mod.Body) != 1 {
		return "", texerr.Syntaxf("expected exactly one function definition, got %d statements", len(mod.Body))
	}
	fn, ok := mod.Body[0].(*ast.FunctionDef)
	if !ok {
		return "", texerr.Syntaxf("expected a function definition at top level")
	}
	return g.visitFunctionDef(fn)
}

func (g *AlgorithmicCodegen) visitStmt(stmt ast.Stmt) (string, error) {
	switch v := stmt.(type) {
	case *ast.Assign:
		return g.visitAssign(v)
	case *ast.ExprStmt:
		value, err := g.expr.Visit(v.Value)
		if err != nil {
			return "", err
		}
		return g.indent(`\State $` + value + `$`), nil
	case *ast.Return:
		return g.visitReturn(v)
	case *ast.If:
		return g.visitIf(v)
	case *ast.While:
		return g.visitWhile(v)
	case *ast.For:
		return g.visitFor(v)
	case *ast.Pass:
		return g.indent(`\State $\mathbf{pass}$`), nil
	case *ast.Break:
		return g.indent(`\State $\mathbf{break}$`), nil
	case *ast.Continue:
		return g.indent(`\State $\mathbf{continue}$`), nil
	}
	return "", texerr.NotSupportedf("unsupported statement in algorithm: %s", stmtName(stmt))
}

func (g *AlgorithmicCodegen) visitFunctionDef(fn *ast.FunctionDef) (string, error) {
	name, _ := g.idents.Convert(fn.Name)
	params := make([]string, len(fn.Params))
	for i, p := range fn.Params {
		params[i], _ = g.idents.Convert(p)
	}

	var sb strings.Builder
	sb.WriteString(g.indent("\\begin{algorithmic}\n"))
	g.level++
	sb.WriteString(g.indent(`\Function{` + name + `}{$` + strings.Join(params, ", ") + `$}` + "\n"))

	g.level++
	body, err := g.visitBody(fn.Body)
	g.level--
	if err != nil {
		return "", err
	}

	sb.WriteString(body + "\n")
	sb.WriteString(g.indent("\\EndFunction\n"))
	g.level--
	sb.WriteString(g.indent(`\end{algorithmic}`))
	return sb.String(), nil
}

func (g *AlgorithmicCodegen) visitBody(body []ast.Stmt) (string, error) {
	lines := make([]string, len(body))
	for i, stmt := range body {
		line, err := g.visitStmt(stmt)
		if err != nil {
			return "", err
		}
		lines[i] = line
	}
	return strings.Join(lines, "\n"), nil
}

func (g *AlgorithmicCodegen) visitAssign(assign *ast.Assign) (string, error) {
	parts := make([]string, 0, len(assign.Targets)+1)
	for _, target := range assign.Targets {
		s, err := g.expr.Visit(target)
		if err != nil {
			return "", err
		}
		parts = append(parts, s)
	}
	value, err := g.expr.Visit(assign.Value)
	if err != nil {
		return "", err
	}
	return g.indent(`\State $` + strings.Join(append(parts, value), ` \gets `) + `$`), nil
}

func (g *AlgorithmicCodegen) visitReturn(ret *ast.Return) (string, error) {
	if ret.Value == nil {
		return g.indent(`\State \Return`), nil
	}
	value, err := g.expr.Visit(ret.Value)
	if err != nil {
		return "", err
	}
	return g.indent(`\State \Return $` + value + `$`), nil
}

func (g *AlgorithmicCodegen) visitIf(ifStmt *ast.If) (string, error) {
	cond, err := g.expr.Visit(ifStmt.Test)
	if err != nil {
		return "", err
	}

	g.level++
	body, err := g.visitBody(ifStmt.Body)
	g.level--
	if err != nil {
		return "", err
	}

	latex := g.indent(`\If{$`+cond+`$}`+"\n") + body

	if len(ifStmt.Else) > 0 {
		g.level++
		orelse, err := g.visitBody(ifStmt.Else)
		g.level--
		if err != nil {
			return "", err
		}
		latex += "\n" + g.indent("\\Else\n") + orelse
	}
	return latex + "\n" + g.indent(`\EndIf`), nil
}

func (g *AlgorithmicCodegen) visitWhile(while *ast.While) (string, error) {
	if len(while.Else) != 0 {
		return "", texerr.NotSupportedf("while statement with the else clause is not supported")
	}

	cond, err := g.expr.Visit(while.Test)
	if err != nil {
		return "", err
	}

	g.level++
	body, err := g.visitBody(while.Body)
	g.level--
	if err != nil {
		return "", err
	}

	return g.indent(`\While{$`+cond+`$}`+"\n") + body + "\n" + g.indent(`\EndWhile`), nil
}

func (g *AlgorithmicCodegen) visitFor(forStmt *ast.For) (string, error) {
	if len(forStmt.Else) != 0 {
		return "", texerr.NotSupportedf("for statement with the else clause is not supported")
	}

	target, err := g.expr.Visit(forStmt.Target)
	if err != nil {
		return "", err
	}
	iter, err := g.expr.Visit(forStmt.Iter)
	if err != nil {
		return "", err
	}

	g.level++
	body, err := g.visitBody(forStmt.Body)
	g.level--
	if err != nil {
		return "", err
	}

	return g.indent(`\For{$`+target+` \in `+iter+`$}`+"\n") + body + "\n" + g.indent(`\EndFor`), nil
}

func (g *AlgorithmicCodegen) indent(line string) string {
	return strings.Repeat(" ", g.level*spacesPerIndent) + line
}
