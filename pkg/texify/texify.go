// Package texify - Top-level driver: source in, LaTeX out
package texify

import (
	"fmt"

	"github.com/texify-dev/texify/pkg/ast"
	"github.com/texify-dev/texify/pkg/codegen"
	"github.com/texify-dev/texify/pkg/config"
	"github.com/texify-dev/texify/pkg/frontend"
	"github.com/texify-dev/texify/pkg/logger"
	"github.com/texify-dev/texify/pkg/transform"
)

// Style selects the output form.
type Style int

const (
	// StyleFunction renders a function definition as a display equation.
	StyleFunction Style = iota
	// StyleExpression renders the body alone; with a nil config the
	// signature is omitted.
	StyleExpression
	// StyleAlgorithmic renders algorithmicx-style pseudocode.
	StyleAlgorithmic
)

func (s Style) String() string {
	switch s {
	case StyleFunction:
		return "function"
	case StyleExpression:
		return "expression"
	case StyleAlgorithmic:
		return "algorithmic"
	}
	return fmt.Sprintf("Style(%d)", int(s))
}

// GetLatex converts the source of one function (or one bare expression,
// for StyleExpression) into a LaTeX fragment without math-mode
// delimiters. A nil cfg means config.Defaults(), except that
// StyleExpression then drops the signature.
func GetLatex(source string, style Style, cfg *config.Config) (string, error) {
	merged := config.Defaults()
	if cfg != nil {
		merged = *cfg
	} else if style == StyleExpression {
		merged.UseSignature = false
	}

	mod, err := frontend.Parse(source)
	if err != nil {
		return "", err
	}
	if len(mod.Body) == 1 {
		if fn, ok := mod.Body[0].(*ast.FunctionDef); ok {
			logger.LogParsing(fn.Name, len(fn.Body))
		}
	}

	pipeline, err := transform.NewPipeline(transform.Options{
		Prefixes:          merged.Prefixes,
		Identifiers:       merged.Identifiers,
		ReduceAssignments: merged.ReduceAssignments,
		ExpandFunctions:   merged.ExpandFunctions,
	})
	if err != nil {
		return "", err
	}
	mod, err = pipeline.Apply(mod)
	if err != nil {
		return "", err
	}

	latex, err := render(mod, style, merged)
	if err != nil {
		return "", err
	}
	logger.LogRender(style.String(), len(latex))
	return latex, nil
}

func render(mod *ast.Module, style Style, cfg config.Config) (string, error) {
	switch style {
	case StyleAlgorithmic:
		return codegen.NewAlgorithmicCodegen(cfg.UseMathSymbols, cfg.UseSetSymbols).VisitModule(mod)
	case StyleExpression:
		// A bare expression needs no function wrapper.
		if len(mod.Body) == 1 {
			if stmt, ok := mod.Body[0].(*ast.ExprStmt); ok {
				return codegen.NewExpressionCodegen(cfg.UseMathSymbols, cfg.UseSetSymbols).Visit(stmt.Value)
			}
		}
		fallthrough
	case StyleFunction:
		return codegen.NewFunctionCodegen(codegen.FunctionOptions{
			UseMathSymbols:     cfg.UseMathSymbols,
			UseSetSymbols:      cfg.UseSetSymbols,
			UseSignature:       cfg.UseSignature,
			UseRawFunctionName: cfg.UseRawFunctionName,
		}).VisitModule(mod)
	}
	return "", fmt.Errorf("unrecognized style: %s", style)
}

// Function renders source as a display equation with the default style.
func Function(source string, cfg *config.Config) (string, error) {
	return GetLatex(source, StyleFunction, cfg)
}

// Expression renders source without a signature.
func Expression(source string, cfg *config.Config) (string, error) {
	return GetLatex(source, StyleExpression, cfg)
}

// Algorithmic renders source as pseudocode.
func Algorithmic(source string, cfg *config.Config) (string, error) {
	return GetLatex(source, StyleAlgorithmic, cfg)
}
