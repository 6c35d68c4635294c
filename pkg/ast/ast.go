// Package ast defines the syntax tree consumed by the LaTeX renderers.
//
// The node set mirrors a strict Python-style syntax tree: a closed tagged
// union realized as marker interfaces, so every consumer can switch
// exhaustively over node kinds. Trees are treated as immutable values; the
// transform passes build new trees instead of mutating their input.
package ast

// Node is the common interface of all tree nodes.
type Node interface {
	node()
}

// Stmt is implemented by statement nodes.
type Stmt interface {
	Node
	stmt()
}

// Expr is implemented by expression nodes.
type Expr interface {
	Node
	expr()
}

// Module is the tree root: a sequence of top-level statements. The
// converters expect exactly one FunctionDef inside.
type Module struct {
	Body []Stmt
}

func (*Module) node() {}

// Statements

// FunctionDef is a single function definition.
type FunctionDef struct {
	Name   string
	Params []string
	Body   []Stmt
}

func (*FunctionDef) node() {}
func (*FunctionDef) stmt() {}

// Return is a return statement. Value may be nil for a bare return.
type Return struct {
	Value Expr
}

func (*Return) node() {}
func (*Return) stmt() {}

// Assign is a plain assignment. Multiple targets model `a = b = expr`.
type Assign struct {
	Targets []Expr
	Value   Expr
}

func (*Assign) node() {}
func (*Assign) stmt() {}

// AugAssign is an augmented assignment such as `x += y`.
type AugAssign struct {
	Target Expr
	Op     BinOpKind
	Value  Expr
}

func (*AugAssign) node() {}
func (*AugAssign) stmt() {}

// If is a conditional statement. Else holds the elif chain or else body.
type If struct {
	Test Expr
	Body []Stmt
	Else []Stmt
}

func (*If) node() {}
func (*If) stmt() {}

// While is a while loop. Else is the rarely used for-else clause.
type While struct {
	Test Expr
	Body []Stmt
	Else []Stmt
}

func (*While) node() {}
func (*While) stmt() {}

// For is a for-in loop.
type For struct {
	Target Expr
	Iter   Expr
	Body   []Stmt
	Else   []Stmt
}

func (*For) node() {}
func (*For) stmt() {}

// ExprStmt is an expression used as a statement, e.g. a docstring.
type ExprStmt struct {
	Value Expr
}

func (*ExprStmt) node() {}
func (*ExprStmt) stmt() {}

// Match is a match statement over literal patterns.
type Match struct {
	Subject Expr
	Cases   []MatchCase
}

func (*Match) node() {}
func (*Match) stmt() {}

// MatchCase is one `case` clause. A nil Pattern is the wildcard `case _`.
type MatchCase struct {
	Pattern Expr
	Body    []Stmt
}

// Pass is a pass statement.
type Pass struct{}

func (*Pass) node() {}
func (*Pass) stmt() {}

// Break is a break statement.
type Break struct{}

func (*Break) node() {}
func (*Break) stmt() {}

// Continue is a continue statement.
type Continue struct{}

func (*Continue) node() {}
func (*Continue) stmt() {}

// Expressions

// LitKind discriminates literal values.
type LitKind int

const (
	LitInt LitKind = iota
	LitFloat
	LitString
	LitBool
	LitNone
)

// Literal is a constant value. Raw keeps the source spelling for numbers
// (so rendering preserves e.g. "1e-9") and the unquoted text for strings.
type Literal struct {
	Kind LitKind
	Raw  string
}

func (*Literal) node() {}
func (*Literal) expr() {}

// Name is an identifier use.
type Name struct {
	ID string
}

func (*Name) node() {}
func (*Name) expr() {}

// Attribute is a dotted access such as `math.sqrt`.
type Attribute struct {
	Value Expr
	Attr  string
}

func (*Attribute) node() {}
func (*Attribute) expr() {}

// UnaryOpKind enumerates unary operators.
type UnaryOpKind int

const (
	UAdd UnaryOpKind = iota
	USub
	Invert
	Not
)

// UnaryOp applies a unary operator to one operand.
type UnaryOp struct {
	Op      UnaryOpKind
	Operand Expr
}

func (*UnaryOp) node() {}
func (*UnaryOp) expr() {}

// BinOpKind enumerates binary operators.
type BinOpKind int

const (
	Add BinOpKind = iota
	Sub
	Mult
	MatMult
	Div
	FloorDiv
	Mod
	Pow
	LShift
	RShift
	BitAnd
	BitXor
	BitOr
)

// BinOp applies a binary operator to two operands.
type BinOp struct {
	Left  Expr
	Op    BinOpKind
	Right Expr
}

func (*BinOp) node() {}
func (*BinOp) expr() {}

// BoolOpKind enumerates boolean connectives.
type BoolOpKind int

const (
	And BoolOpKind = iota
	Or
)

// BoolOp joins two or more values with `and`/`or`.
type BoolOp struct {
	Op     BoolOpKind
	Values []Expr
}

func (*BoolOp) node() {}
func (*BoolOp) expr() {}

// CompareOpKind enumerates comparison operators.
type CompareOpKind int

const (
	Eq CompareOpKind = iota
	NotEq
	Lt
	LtE
	Gt
	GtE
	Is
	IsNot
	In
	NotIn
)

// Compare is a (possibly chained) comparison: Left Ops[0] Comparators[0]
// Ops[1] Comparators[1] ... len(Ops) == len(Comparators) >= 1.
type Compare struct {
	Left        Expr
	Ops         []CompareOpKind
	Comparators []Expr
}

func (*Compare) node() {}
func (*Compare) expr() {}

// Call is a function application.
type Call struct {
	Func Expr
	Args []Expr
}

func (*Call) node() {}
func (*Call) expr() {}

// Subscript is an index access such as `a[i]`.
type Subscript struct {
	Value Expr
	Index Expr
}

func (*Subscript) node() {}
func (*Subscript) expr() {}

// Tuple is a tuple display.
type Tuple struct {
	Elts []Expr
}

func (*Tuple) node() {}
func (*Tuple) expr() {}

// List is a list display.
type List struct {
	Elts []Expr
}

func (*List) node() {}
func (*List) expr() {}

// Set is a set display.
type Set struct {
	Elts []Expr
}

func (*Set) node() {}
func (*Set) expr() {}

// Comprehension is one `for ... in ... [if ...]` clause.
type Comprehension struct {
	Target Expr
	Iter   Expr
	Ifs    []Expr
}

// ListComp is a list comprehension.
type ListComp struct {
	Elt        Expr
	Generators []Comprehension
}

func (*ListComp) node() {}
func (*ListComp) expr() {}

// SetComp is a set comprehension.
type SetComp struct {
	Elt        Expr
	Generators []Comprehension
}

func (*SetComp) node() {}
func (*SetComp) expr() {}

// GeneratorExp is a generator expression.
type GeneratorExp struct {
	Elt        Expr
	Generators []Comprehension
}

func (*GeneratorExp) node() {}
func (*GeneratorExp) expr() {}

// IfExp is a conditional expression `body if test else orelse`.
type IfExp struct {
	Test   Expr
	Body   Expr
	Orelse Expr
}

func (*IfExp) node() {}
func (*IfExp) expr() {}
