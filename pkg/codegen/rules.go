// Package codegen - Operator precedence and typesetting rule tables
package codegen

import "github.com/texify-dev/texify/pkg/ast"

// Operator precedences, used only to decide where parentheses appear in the
// output. Mirrors Python's operator precedence except that `not` is lifted
// to the other unary operators: \lnot reads as binding tightly.
const (
	precPow     = 120
	precUnary   = 110
	precTerm    = 100
	precAdd     = 90
	precShift   = 80
	precBitAnd  = 70
	precBitXor  = 60
	precBitOr   = 50
	precCompare = 40
	precAnd     = 20
	precOr      = 10

	// Function application binds just above unary so that the argument of
	// \exp x keeps its parentheses when it carries a sign: \exp (-x).
	precCall = precUnary + 1

	// Leaves never need parentheses.
	precAtom = 1_000_000
)

var binOpPrecedence = map[ast.BinOpKind]int{
	ast.Pow:      precPow,
	ast.Mult:     precTerm,
	ast.MatMult:  precTerm,
	ast.Div:      precTerm,
	ast.FloorDiv: precTerm,
	ast.Mod:      precTerm,
	ast.Add:      precAdd,
	ast.Sub:      precAdd,
	ast.LShift:   precShift,
	ast.RShift:   precShift,
	ast.BitAnd:   precBitAnd,
	ast.BitXor:   precBitXor,
	ast.BitOr:    precBitOr,
}

// precedence returns the binding strength of a subtree's top operator.
func precedence(e ast.Expr) int {
	switch v := e.(type) {
	case *ast.Call:
		return precCall
	case *ast.UnaryOp:
		return precUnary
	case *ast.BinOp:
		return binOpPrecedence[v.Op]
	case *ast.Compare:
		// All comparison operators share one precedence level.
		return precCompare
	case *ast.BoolOp:
		if v.Op == ast.And {
			return precAnd
		}
		return precOr
	}
	return precAtom
}

// binOperandRule controls parenthesization of one BinOp operand.
type binOperandRule struct {
	// wrap enables precedence-based parenthesization at all. Operands of
	// self-delimiting notations like \frac never need it.
	wrap bool
	// force adds parentheses even on equal precedence, for the
	// non-associative side of an operator.
	force bool
}

// binOpRule is the typesetting rule of one binary operator.
type binOpRule struct {
	left, middle, right string
	operandLeft         binOperandRule
	operandRight        binOperandRule
	// isWrapped marks notations that bring their own brackets, letting the
	// parent skip parentheses around them.
	isWrapped bool
}

var defaultOperand = binOperandRule{wrap: true}

var binOpRules = map[ast.BinOpKind]binOpRule{
	ast.Pow: {
		left: "", middle: "^{", right: "}",
		operandLeft:  binOperandRule{wrap: true, force: true},
		operandRight: binOperandRule{wrap: false},
	},
	ast.Mult:    {middle: ` \cdot `, operandLeft: defaultOperand, operandRight: defaultOperand},
	ast.MatMult: {middle: ` \cdot `, operandLeft: defaultOperand, operandRight: defaultOperand},
	ast.Div: {
		left: `\frac{`, middle: `}{`, right: `}`,
		operandLeft:  binOperandRule{wrap: false},
		operandRight: binOperandRule{wrap: false},
	},
	ast.FloorDiv: {
		left: `\left\lfloor\frac{`, middle: `}{`, right: `}\right\rfloor`,
		operandLeft:  binOperandRule{wrap: false},
		operandRight: binOperandRule{wrap: false},
		isWrapped:    true,
	},
	ast.Mod: {
		middle:      ` \mathbin{\%} `,
		operandLeft: defaultOperand, operandRight: binOperandRule{wrap: true, force: true},
	},
	ast.Add: {middle: " + ", operandLeft: defaultOperand, operandRight: defaultOperand},
	ast.Sub: {
		middle:      " - ",
		operandLeft: defaultOperand, operandRight: binOperandRule{wrap: true, force: true},
	},
	ast.LShift: {
		middle:      ` \ll `,
		operandLeft: defaultOperand, operandRight: binOperandRule{wrap: true, force: true},
	},
	ast.RShift: {
		middle:      ` \gg `,
		operandLeft: defaultOperand, operandRight: binOperandRule{wrap: true, force: true},
	},
	ast.BitAnd: {middle: ` \mathbin{\&} `, operandLeft: defaultOperand, operandRight: defaultOperand},
	ast.BitXor: {middle: ` \oplus `, operandLeft: defaultOperand, operandRight: defaultOperand},
	ast.BitOr:  {middle: ` \mathbin{|} `, operandLeft: defaultOperand, operandRight: defaultOperand},
}

// setBinOpRules overlays set-theoretic glyphs on the default rules.
var setBinOpRules = overlayBinOpRules(map[ast.BinOpKind]binOpRule{
	ast.Sub: {
		middle:      ` \setminus `,
		operandLeft: defaultOperand, operandRight: binOperandRule{wrap: true, force: true},
	},
	ast.BitAnd: {middle: ` \cap `, operandLeft: defaultOperand, operandRight: defaultOperand},
	ast.BitXor: {middle: ` \mathbin{\triangle} `, operandLeft: defaultOperand, operandRight: defaultOperand},
	ast.BitOr:  {middle: ` \cup `, operandLeft: defaultOperand, operandRight: defaultOperand},
})

func overlayBinOpRules(overrides map[ast.BinOpKind]binOpRule) map[ast.BinOpKind]binOpRule {
	merged := make(map[ast.BinOpKind]binOpRule, len(binOpRules))
	for op, rule := range binOpRules {
		merged[op] = rule
	}
	for op, rule := range overrides {
		merged[op] = rule
	}
	return merged
}

var unaryOps = map[ast.UnaryOpKind]string{
	ast.Invert: `\mathord{\sim} `,
	ast.UAdd:   "+",
	ast.USub:   "-",
	ast.Not:    `\lnot `,
}

var compareOps = map[ast.CompareOpKind]string{
	ast.Eq:    "=",
	ast.Gt:    ">",
	ast.GtE:   `\ge`,
	ast.In:    `\in`,
	ast.Is:    `\equiv`,
	ast.IsNot: `\not\equiv`,
	ast.Lt:    "<",
	ast.LtE:   `\le`,
	ast.NotEq: `\ne`,
	ast.NotIn: `\notin`,
}

// setCompareOps overlays subset/superset glyphs on the default comparisons.
var setCompareOps = overlayCompareOps(map[ast.CompareOpKind]string{
	ast.Gt:  `\supset`,
	ast.GtE: `\supseteq`,
	ast.Lt:  `\subset`,
	ast.LtE: `\subseteq`,
})

func overlayCompareOps(overrides map[ast.CompareOpKind]string) map[ast.CompareOpKind]string {
	merged := make(map[ast.CompareOpKind]string, len(compareOps))
	for op, glyph := range compareOps {
		merged[op] = glyph
	}
	for op, glyph := range overrides {
		merged[op] = glyph
	}
	return merged
}

var boolOps = map[ast.BoolOpKind]string{
	ast.And: `\land`,
	ast.Or:  `\lor`,
}

// functionRule is the typesetting rule of a recognized function name.
type functionRule struct {
	left  string
	right string
	// isUnary renders the single argument like a unary operand: \sin x.
	isUnary bool
	// isWrapped marks functions whose notation brings its own brackets.
	isWrapped bool
}

var builtinFuncs = map[string]functionRule{
	"abs":       {left: `\mathopen{}\left|`, right: `\mathclose{}\right|`, isWrapped: true},
	"acos":      {left: `\arccos`, isUnary: true},
	"acosh":     {left: `\mathrm{arcosh}`, isUnary: true},
	"arccos":    {left: `\arccos`, isUnary: true},
	"arccot":    {left: `\mathrm{arccot}`, isUnary: true},
	"arccsc":    {left: `\mathrm{arccsc}`, isUnary: true},
	"arcosh":    {left: `\mathrm{arcosh}`, isUnary: true},
	"arcoth":    {left: `\mathrm{arcoth}`, isUnary: true},
	"arcsec":    {left: `\mathrm{arcsec}`, isUnary: true},
	"arcsch":    {left: `\mathrm{arcsch}`, isUnary: true},
	"arcsin":    {left: `\arcsin`, isUnary: true},
	"arctan":    {left: `\arctan`, isUnary: true},
	"arsech":    {left: `\mathrm{arsech}`, isUnary: true},
	"arsinh":    {left: `\mathrm{arsinh}`, isUnary: true},
	"artanh":    {left: `\mathrm{artanh}`, isUnary: true},
	"asin":      {left: `\arcsin`, isUnary: true},
	"asinh":     {left: `\mathrm{arsinh}`, isUnary: true},
	"atan":      {left: `\arctan`, isUnary: true},
	"atanh":     {left: `\mathrm{artanh}`, isUnary: true},
	"ceil":      {left: `\mathopen{}\left\lceil`, right: `\mathclose{}\right\rceil`, isWrapped: true},
	"cos":       {left: `\cos`, isUnary: true},
	"cosh":      {left: `\cosh`, isUnary: true},
	"cot":       {left: `\cot`, isUnary: true},
	"coth":      {left: `\coth`, isUnary: true},
	"csc":       {left: `\csc`, isUnary: true},
	"csch":      {left: `\mathrm{csch}`, isUnary: true},
	"exp":       {left: `\exp`, isUnary: true},
	"fabs":      {left: `\mathopen{}\left|`, right: `\mathclose{}\right|`, isWrapped: true},
	"factorial": {left: "", right: "!", isUnary: true},
	"floor":     {left: `\mathopen{}\left\lfloor`, right: `\mathclose{}\right\rfloor`, isWrapped: true},
	"fsum":      {left: `\sum`, isUnary: true},
	"gamma":     {left: `\Gamma`},
	"log":       {left: `\log`, isUnary: true},
	"log10":     {left: `\log_{10}`, isUnary: true},
	"log2":      {left: `\log_2`, isUnary: true},
	"prod":      {left: `\prod`, isUnary: true},
	"sec":       {left: `\sec`, isUnary: true},
	"sech":      {left: `\mathrm{sech}`, isUnary: true},
	"sin":       {left: `\sin`, isUnary: true},
	"sinh":      {left: `\sinh`, isUnary: true},
	"sqrt":      {left: `\sqrt{`, right: `}`, isWrapped: true},
	"sum":       {left: `\sum`, isUnary: true},
	"tan":       {left: `\tan`, isUnary: true},
	"tanh":      {left: `\tanh`, isUnary: true},
}

// mathSymbols are identifier names rendered as LaTeX symbol commands when
// symbol conversion is enabled.
var mathSymbols = map[string]struct{}{
	"aleph": {}, "alpha": {}, "beta": {}, "beth": {}, "chi": {}, "daleth": {},
	"delta": {}, "digamma": {}, "epsilon": {}, "eta": {}, "gamma": {},
	"gimel": {}, "hbar": {}, "infty": {}, "iota": {}, "kappa": {},
	"lambda": {}, "mu": {}, "nabla": {}, "nu": {}, "omega": {}, "phi": {},
	"pi": {}, "psi": {}, "rho": {}, "sigma": {}, "tau": {}, "theta": {},
	"upsilon": {}, "varepsilon": {}, "varkappa": {}, "varphi": {},
	"varpi": {}, "varrho": {}, "varsigma": {}, "vartheta": {}, "xi": {},
	"zeta": {}, "Delta": {}, "Gamma": {}, "Lambda": {}, "Omega": {},
	"Phi": {}, "Pi": {}, "Psi": {}, "Sigma": {}, "Theta": {},
	"Upsilon": {}, "Xi": {},
}
