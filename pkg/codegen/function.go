// Package codegen - Whole-function renderer
package codegen

import (
	"strings"

	"github.com/texify-dev/texify/pkg/ast"
	"github.com/texify-dev/texify/pkg/texerr"
)

// FunctionOptions configure the function renderer.
type FunctionOptions struct {
	UseMathSymbols bool
	UseSetSymbols  bool
	// UseSignature prepends "f(x) =" to the rendered body.
	UseSignature bool
	// UseRawFunctionName keeps the function name out of \mathrm, with
	// underscores escaped for LaTeX.
	UseRawFunctionName bool
}

// FunctionCodegen renders a whole function definition as one display
// equation. Expression subtrees are delegated to ExpressionCodegen.
type FunctionCodegen struct {
	expr   *ExpressionCodegen
	idents *IdentifierConverter
	opts   FunctionOptions
}

func NewFunctionCodegen(opts FunctionOptions) *FunctionCodegen {
	return &FunctionCodegen{
		expr:   NewExpressionCodegen(opts.UseMathSymbols, opts.UseSetSymbols),
		idents: NewIdentifierConverter(opts.UseMathSymbols, true),
		opts:   opts,
	}
}

// VisitModule renders the single function definition the module must hold.
func (g *FunctionCodegen) VisitModule(mod *ast.Module) (string, error) {
	if len(mod.Body) != 1 {
		return "", texerr.Syntaxf("expected exactly one function definition, got %d statements", len(mod.Body))
	}
	fn, ok := mod.Body[0].(*ast.FunctionDef)
	if !ok {
		return "", texerr.Syntaxf("expected a function definition at top level")
	}
	return g.visitFunctionDef(fn)
}

func (g *FunctionCodegen) visitFunctionDef(fn *ast.FunctionDef) (string, error) {
	name := strings.ReplaceAll(fn.Name, "_", `\_`)
	if !g.opts.UseRawFunctionName {
		name = `\mathrm{` + name + `}`
	}

	params := make([]string, len(fn.Params))
	for i, p := range fn.Params {
		params[i], _ = g.idents.Convert(p)
	}

	body := withoutConstantStmts(fn.Body)
	if len(body) == 0 {
		return "", texerr.Syntaxf("function %s has no renderable statements", fn.Name)
	}

	// Leading statements become assignment rows above the definition.
	var rows []string
	for _, stmt := range body[:len(body)-1] {
		assign, ok := stmt.(*ast.Assign)
		if !ok {
			return "", texerr.NotSupportedf(
				"only assignments may precede the final statement, got: %s", stmtName(stmt))
		}
		row, err := g.visitAssign(assign)
		if err != nil {
			return "", err
		}
		rows = append(rows, row)
	}

	tail, err := g.visitTail(body[len(body)-1])
	if err != nil {
		return "", err
	}

	if g.opts.UseSignature {
		tail = name + "(" + strings.Join(params, ", ") + ") = " + tail
	}

	if len(rows) == 0 {
		return tail, nil
	}
	rows = append(rows, tail)
	return `\begin{array}{l} ` + strings.Join(rows, ` \\ `) + ` \end{array}`, nil
}

// withoutConstantStmts drops docstrings and other bare constants.
func withoutConstantStmts(body []ast.Stmt) []ast.Stmt {
	kept := make([]ast.Stmt, 0, len(body))
	for _, stmt := range body {
		if es, ok := stmt.(*ast.ExprStmt); ok && ast.IsConstant(es.Value) {
			continue
		}
		kept = append(kept, stmt)
	}
	return kept
}

func (g *FunctionCodegen) visitAssign(assign *ast.Assign) (string, error) {
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
	return strings.Join(append(parts, value), " = "), nil
}

// visitTail renders the final statement of a function body.
func (g *FunctionCodegen) visitTail(stmt ast.Stmt) (string, error) {
	switch v := stmt.(type) {
	case *ast.Return:
		if v.Value == nil {
			return "", texerr.Syntaxf("cannot render a return without a value")
		}
		return g.expr.Visit(v.Value)
	case *ast.If:
		return g.visitIf(v)
	case *ast.Match:
		return g.visitMatch(v)
	}
	return "", texerr.Syntaxf("unsupported final statement: %s", stmtName(stmt))
}

// visitIf renders an if/elif/else chain as a piecewise definition. Every
// branch must hold exactly one statement and the chain must end in an else.
func (g *FunctionCodegen) visitIf(ifStmt *ast.If) (string, error) {
	var sb strings.Builder
	sb.WriteString(`\left\{ \begin{array}{ll} `)

	var current ast.Stmt = ifStmt
	for {
		branch, ok := current.(*ast.If)
		if !ok {
			break
		}
		if len(branch.Body) != 1 || len(branch.Else) != 1 {
			return "", texerr.Syntaxf("multiple statements are not supported in if branches")
		}

		cond, err := g.expr.Visit(branch.Test)
		if err != nil {
			return "", err
		}
		body, err := g.visitTail(branch.Body[0])
		if err != nil {
			return "", err
		}
		sb.WriteString(body + `, & \mathrm{if} \ ` + cond + ` \\ `)
		current = branch.Else[0]
	}

	tail, err := g.visitTail(current)
	if err != nil {
		return "", err
	}
	sb.WriteString(tail + `, & \mathrm{otherwise} \end{array} \right.`)
	return sb.String(), nil
}

// visitMatch renders a match over literal patterns as a piecewise
// definition. The final case must be the wildcard.
func (g *FunctionCodegen) visitMatch(match *ast.Match) (string, error) {
	if len(match.Cases) < 2 || match.Cases[len(match.Cases)-1].Pattern != nil {
		return "", texerr.Syntaxf("match statement must contain the wildcard")
	}

	subject, err := g.expr.Visit(match.Subject)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString(`\left\{ \begin{array}{ll} `)

	for i, matchCase := range match.Cases {
		if len(matchCase.Body) != 1 {
			return "", texerr.NotSupportedf("match cases must contain exactly one return statement")
		}
		ret, ok := matchCase.Body[0].(*ast.Return)
		if !ok || ret.Value == nil {
			return "", texerr.NotSupportedf("match cases must contain exactly one return statement")
		}
		body, err := g.expr.Visit(ret.Value)
		if err != nil {
			return "", err
		}

		if i < len(match.Cases)-1 {
			if matchCase.Pattern == nil {
				return "", texerr.Syntaxf("wildcard case must be the final case")
			}
			pattern, err := g.expr.Visit(matchCase.Pattern)
			if err != nil {
				return "", err
			}
			sb.WriteString(body + `, & \mathrm{if} \ ` + subject + " = " + pattern + ` \\ `)
		} else {
			sb.WriteString(body + `, & \mathrm{otherwise} \end{array} \right.`)
		}
	}
	return sb.String(), nil
}

func stmtName(stmt ast.Stmt) string {
	switch stmt.(type) {
	case *ast.FunctionDef:
		return "function definition"
	case *ast.While:
		return "while statement"
	case *ast.For:
		return "for statement"
	case *ast.AugAssign:
		return "augmented assignment"
	case *ast.ExprStmt:
		return "expression statement"
	case *ast.Pass:
		return "pass statement"
	case *ast.Break:
		return "break statement"
	case *ast.Continue:
		return "continue statement"
	case *ast.Match:
		return "match statement"
	case *ast.Assign:
		return "assignment"
	case *ast.Return:
		return "return statement"
	case *ast.If:
		return "if statement"
	}
	return "statement"
}
