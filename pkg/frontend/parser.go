// Package frontend - Recursive descent parser for the Python subset
// Design: Precedence-layered expression grammar, panic/recover error bailout
package frontend

import (
	"github.com/texify-dev/texify/pkg/ast"
	"github.com/texify-dev/texify/pkg/texerr"
)

// Parser turns a token stream into an ast.Module. Parse errors abort via
// panic and are recovered into a *texerr.SyntaxError at the entry point.
type Parser struct {
	lexer *Lexer
	cur   Token
	next  Token
}

// Parse scans and parses a complete source text.
func Parse(source string) (mod *ast.Module, err error) {
	defer func() {
		if r := recover(); r != nil {
			se, ok := r.(*texerr.SyntaxError)
			if !ok {
				panic(r)
			}
			mod = nil
			err = se
		}
	}()

	p := &Parser{lexer: NewLexer(source)}
	p.cur = p.lexer.NextToken()
	p.next = p.lexer.NextToken()
	mod = p.parseModule()
	return mod, nil
}

func (p *Parser) errorf(format string, args ...any) {
	panic(texerr.Syntaxf(format, args...).(*texerr.SyntaxError))
}

func (p *Parser) advance() Token {
	tok := p.cur
	p.cur = p.next
	p.next = p.lexer.NextToken()
	return tok
}

func (p *Parser) expect(typ TokenType) Token {
	if p.cur.Type != typ {
		p.errorf("line %d: expected %s, found %q", p.cur.Line, typ, p.cur.Lexeme)
	}
	return p.advance()
}

func (p *Parser) match(typ TokenType) bool {
	if p.cur.Type == typ {
		p.advance()
		return true
	}
	return false
}

func (p *Parser) skipNewlines() {
	for p.cur.Type == NEWLINE {
		p.advance()
	}
}

func (p *Parser) parseModule() *ast.Module {
	mod := &ast.Module{}
	p.skipNewlines()
	for p.cur.Type != EOF {
		mod.Body = append(mod.Body, p.parseStatement())
		p.skipNewlines()
	}
	// The scanner smuggles lexical errors out as EOF tokens with a message.
	if p.cur.Lexeme != "" {
		p.errorf("line %d: %s", p.cur.Line, p.cur.Lexeme)
	}
	return mod
}

// Statements

func (p *Parser) parseStatement() ast.Stmt {
	switch p.cur.Type {
	case DEF:
		return p.parseFunctionDef()
	case RETURN:
		return p.parseReturn()
	case IF:
		return p.parseIf()
	case WHILE:
		return p.parseWhile()
	case FOR:
		return p.parseFor()
	case MATCH:
		return p.parseMatch()
	case PASS:
		p.advance()
		p.endStatement()
		return &ast.Pass{}
	case BREAK:
		p.advance()
		p.endStatement()
		return &ast.Break{}
	case CONTINUE:
		p.advance()
		p.endStatement()
		return &ast.Continue{}
	}
	return p.parseSimpleStatement()
}

// parseSimpleStatement covers assignments, augmented assignments, and bare
// expression statements.
func (p *Parser) parseSimpleStatement() ast.Stmt {
	first := p.parseExprList()

	if p.cur.Type == AUGASSIGN {
		op, ok := augOps[p.advance().Lexeme]
		if !ok {
			p.errorf("line %d: unknown augmented assignment", p.cur.Line)
		}
		value := p.parseExprList()
		p.endStatement()
		return &ast.AugAssign{Target: first, Op: op, Value: value}
	}

	if p.cur.Type == ASSIGN {
		exprs := []ast.Expr{first}
		for p.match(ASSIGN) {
			exprs = append(exprs, p.parseExprList())
		}
		p.endStatement()
		return &ast.Assign{
			Targets: exprs[:len(exprs)-1],
			Value:   exprs[len(exprs)-1],
		}
	}

	p.endStatement()
	return &ast.ExprStmt{Value: first}
}

var augOps = map[string]ast.BinOpKind{
	"+=":  ast.Add,
	"-=":  ast.Sub,
	"*=":  ast.Mult,
	"@=":  ast.MatMult,
	"/=":  ast.Div,
	"//=": ast.FloorDiv,
	"%=":  ast.Mod,
	"**=": ast.Pow,
	"<<=": ast.LShift,
	">>=": ast.RShift,
	"&=":  ast.BitAnd,
	"^=":  ast.BitXor,
	"|=":  ast.BitOr,
}

func (p *Parser) endStatement() {
	switch p.cur.Type {
	case NEWLINE:
		p.advance()
	case EOF, DEDENT:
	default:
		p.errorf("line %d: unexpected %q after statement", p.cur.Line, p.cur.Lexeme)
	}
}

func (p *Parser) parseFunctionDef() ast.Stmt {
	p.expect(DEF)
	name := p.expect(NAME).Lexeme
	p.expect(LPAREN)

	var params []string
	for p.cur.Type != RPAREN {
		params = append(params, p.expect(NAME).Lexeme)
		if p.match(COLON) {
			p.parseTest() // annotation, discarded
		}
		if p.match(ASSIGN) {
			p.parseTest() // default value, discarded
		}
		if !p.match(COMMA) {
			break
		}
	}
	p.expect(RPAREN)

	if p.match(ARROW) {
		p.parseTest() // return annotation, discarded
	}

	body := p.parseBlock()
	return &ast.FunctionDef{Name: name, Params: params, Body: body}
}

func (p *Parser) parseReturn() ast.Stmt {
	p.expect(RETURN)
	ret := &ast.Return{}
	if p.cur.Type != NEWLINE && p.cur.Type != EOF && p.cur.Type != DEDENT {
		ret.Value = p.parseExprList()
	}
	p.endStatement()
	return ret
}

func (p *Parser) parseIf() ast.Stmt {
	p.expect(IF)
	test := p.parseTest()
	body := p.parseBlock()

	node := &ast.If{Test: test, Body: body}
	switch p.cur.Type {
	case ELIF:
		p.cur.Type = IF // reparse the elif chain as a nested if
		node.Else = []ast.Stmt{p.parseIf()}
	case ELSE:
		p.advance()
		node.Else = p.parseBlock()
	}
	return node
}

func (p *Parser) parseWhile() ast.Stmt {
	p.expect(WHILE)
	test := p.parseTest()
	body := p.parseBlock()

	node := &ast.While{Test: test, Body: body}
	if p.match(ELSE) {
		node.Else = p.parseBlock()
	}
	return node
}

func (p *Parser) parseFor() ast.Stmt {
	p.expect(FOR)
	target := p.parseTargetList()
	p.expect(IN)
	iter := p.parseExprList()
	body := p.parseBlock()

	node := &ast.For{Target: target, Iter: iter, Body: body}
	if p.match(ELSE) {
		node.Else = p.parseBlock()
	}
	return node
}

func (p *Parser) parseMatch() ast.Stmt {
	p.expect(MATCH)
	subject := p.parseExprList()
	p.expect(COLON)
	p.expect(NEWLINE)
	p.expect(INDENT)

	node := &ast.Match{Subject: subject}
	p.skipNewlines()
	for p.cur.Type == CASE {
		p.advance()
		var pattern ast.Expr
		if p.cur.Type == NAME && p.cur.Lexeme == "_" {
			p.advance() // wildcard
		} else {
			pattern = p.parseTest()
		}
		body := p.parseBlock()
		node.Cases = append(node.Cases, ast.MatchCase{Pattern: pattern, Body: body})
		p.skipNewlines()
	}
	p.expect(DEDENT)
	return node
}

// parseBlock parses a colon-introduced suite: either an indented block or
// the statements on the rest of the line.
func (p *Parser) parseBlock() []ast.Stmt {
	p.expect(COLON)

	if p.cur.Type != NEWLINE {
		return []ast.Stmt{p.parseStatement()}
	}
	p.advance()
	p.expect(INDENT)

	var body []ast.Stmt
	p.skipNewlines()
	for p.cur.Type != DEDENT && p.cur.Type != EOF {
		body = append(body, p.parseStatement())
		p.skipNewlines()
	}
	p.expect(DEDENT)
	return body
}

// Expressions, highest level first.

// parseExprList parses `test {, test}` and folds multiples into a Tuple.
func (p *Parser) parseExprList() ast.Expr {
	first := p.parseTest()
	if p.cur.Type != COMMA {
		return first
	}
	elts := []ast.Expr{first}
	for p.match(COMMA) {
		if !p.startsExpr() {
			break // trailing comma
		}
		elts = append(elts, p.parseTest())
	}
	return &ast.Tuple{Elts: elts}
}

// parseTargetList parses assignment/loop targets at below-comparison
// precedence so a following `in` is not consumed.
func (p *Parser) parseTargetList() ast.Expr {
	first := p.parseBitOr()
	if p.cur.Type != COMMA {
		return first
	}
	elts := []ast.Expr{first}
	for p.match(COMMA) {
		if !p.startsExpr() {
			break
		}
		elts = append(elts, p.parseBitOr())
	}
	return &ast.Tuple{Elts: elts}
}

func (p *Parser) startsExpr() bool {
	switch p.cur.Type {
	case INT, FLOAT, STRING, NAME, TRUE, FALSE, NONE,
		LPAREN, LBRACKET, LBRACE, PLUS, MINUS, TILDE, NOT:
		return true
	}
	return false
}

// parseTest parses a conditional expression `body if test else orelse`.
func (p *Parser) parseTest() ast.Expr {
	body := p.parseOr()
	if !p.match(IF) {
		return body
	}
	test := p.parseOr()
	p.expect(ELSE)
	orelse := p.parseTest()
	return &ast.IfExp{Test: test, Body: body, Orelse: orelse}
}

func (p *Parser) parseOr() ast.Expr {
	left := p.parseAnd()
	if p.cur.Type != OR {
		return left
	}
	values := []ast.Expr{left}
	for p.match(OR) {
		values = append(values, p.parseAnd())
	}
	return &ast.BoolOp{Op: ast.Or, Values: values}
}

func (p *Parser) parseAnd() ast.Expr {
	left := p.parseNot()
	if p.cur.Type != AND {
		return left
	}
	values := []ast.Expr{left}
	for p.match(AND) {
		values = append(values, p.parseNot())
	}
	return &ast.BoolOp{Op: ast.And, Values: values}
}

func (p *Parser) parseNot() ast.Expr {
	if p.match(NOT) {
		return &ast.UnaryOp{Op: ast.Not, Operand: p.parseNot()}
	}
	return p.parseComparison()
}

func (p *Parser) parseComparison() ast.Expr {
	left := p.parseBitOr()

	var ops []ast.CompareOpKind
	var comparators []ast.Expr
	for {
		var op ast.CompareOpKind
		switch p.cur.Type {
		case EQ:
			op = ast.Eq
		case NE:
			op = ast.NotEq
		case LT:
			op = ast.Lt
		case LE:
			op = ast.LtE
		case GT:
			op = ast.Gt
		case GE:
			op = ast.GtE
		case IN:
			op = ast.In
		case IS:
			op = ast.Is
			if p.next.Type == NOT {
				p.advance()
				op = ast.IsNot
			}
		case NOT:
			if p.next.Type != IN {
				p.errorf("line %d: expected 'in' after 'not'", p.cur.Line)
			}
			p.advance()
			op = ast.NotIn
		default:
			if len(ops) == 0 {
				return left
			}
			return &ast.Compare{Left: left, Ops: ops, Comparators: comparators}
		}
		p.advance()
		ops = append(ops, op)
		comparators = append(comparators, p.parseBitOr())
	}
}

func (p *Parser) parseBitOr() ast.Expr {
	left := p.parseBitXor()
	for p.match(PIPE) {
		left = &ast.BinOp{Left: left, Op: ast.BitOr, Right: p.parseBitXor()}
	}
	return left
}

func (p *Parser) parseBitXor() ast.Expr {
	left := p.parseBitAnd()
	for p.match(CARET) {
		left = &ast.BinOp{Left: left, Op: ast.BitXor, Right: p.parseBitAnd()}
	}
	return left
}

func (p *Parser) parseBitAnd() ast.Expr {
	left := p.parseShift()
	for p.match(AMP) {
		left = &ast.BinOp{Left: left, Op: ast.BitAnd, Right: p.parseShift()}
	}
	return left
}

func (p *Parser) parseShift() ast.Expr {
	left := p.parseArith()
	for {
		var op ast.BinOpKind
		switch p.cur.Type {
		case LSHIFT:
			op = ast.LShift
		case RSHIFT:
			op = ast.RShift
		default:
			return left
		}
		p.advance()
		left = &ast.BinOp{Left: left, Op: op, Right: p.parseArith()}
	}
}

func (p *Parser) parseArith() ast.Expr {
	left := p.parseTerm()
	for {
		var op ast.BinOpKind
		switch p.cur.Type {
		case PLUS:
			op = ast.Add
		case MINUS:
			op = ast.Sub
		default:
			return left
		}
		p.advance()
		left = &ast.BinOp{Left: left, Op: op, Right: p.parseTerm()}
	}
}

func (p *Parser) parseTerm() ast.Expr {
	left := p.parseFactor()
	for {
		var op ast.BinOpKind
		switch p.cur.Type {
		case STAR:
			op = ast.Mult
		case SLASH:
			op = ast.Div
		case DOUBLESLASH:
			op = ast.FloorDiv
		case PERCENT:
			op = ast.Mod
		case AT:
			op = ast.MatMult
		default:
			return left
		}
		p.advance()
		left = &ast.BinOp{Left: left, Op: op, Right: p.parseFactor()}
	}
}

func (p *Parser) parseFactor() ast.Expr {
	switch p.cur.Type {
	case PLUS:
		p.advance()
		return &ast.UnaryOp{Op: ast.UAdd, Operand: p.parseFactor()}
	case MINUS:
		p.advance()
		return &ast.UnaryOp{Op: ast.USub, Operand: p.parseFactor()}
	case TILDE:
		p.advance()
		return &ast.UnaryOp{Op: ast.Invert, Operand: p.parseFactor()}
	}
	return p.parsePower()
}

// parsePower binds ** tighter than unary on the left and looser on the
// right, so -x**2 is -(x**2) and x**-2 parses.
func (p *Parser) parsePower() ast.Expr {
	left := p.parsePostfix()
	if p.match(DOUBLESTAR) {
		return &ast.BinOp{Left: left, Op: ast.Pow, Right: p.parseFactor()}
	}
	return left
}

func (p *Parser) parsePostfix() ast.Expr {
	expr := p.parseAtom()
	for {
		switch p.cur.Type {
		case LPAREN:
			p.advance()
			expr = &ast.Call{Func: expr, Args: p.parseCallArgs()}
		case LBRACKET:
			p.advance()
			index := p.parseExprList()
			p.expect(RBRACKET)
			expr = &ast.Subscript{Value: expr, Index: index}
		case DOT:
			p.advance()
			attr := p.expect(NAME).Lexeme
			expr = &ast.Attribute{Value: expr, Attr: attr}
		default:
			return expr
		}
	}
}

func (p *Parser) parseCallArgs() []ast.Expr {
	if p.match(RPAREN) {
		return nil
	}

	first := p.parseTest()
	if p.cur.Type == FOR {
		gen := &ast.GeneratorExp{Elt: first, Generators: p.parseComprehensions()}
		p.expect(RPAREN)
		return []ast.Expr{gen}
	}

	args := []ast.Expr{first}
	for p.match(COMMA) {
		if p.cur.Type == RPAREN {
			break
		}
		args = append(args, p.parseTest())
	}
	p.expect(RPAREN)
	return args
}

func (p *Parser) parseComprehensions() []ast.Comprehension {
	var gens []ast.Comprehension
	for p.match(FOR) {
		target := p.parseTargetList()
		p.expect(IN)
		iter := p.parseOr()
		gen := ast.Comprehension{Target: target, Iter: iter}
		for p.match(IF) {
			gen.Ifs = append(gen.Ifs, p.parseOr())
		}
		gens = append(gens, gen)
	}
	return gens
}

func (p *Parser) parseAtom() ast.Expr {
	tok := p.cur
	switch tok.Type {
	case INT:
		p.advance()
		return &ast.Literal{Kind: ast.LitInt, Raw: tok.Lexeme}
	case FLOAT:
		p.advance()
		return &ast.Literal{Kind: ast.LitFloat, Raw: tok.Lexeme}
	case STRING:
		p.advance()
		return &ast.Literal{Kind: ast.LitString, Raw: tok.Lexeme}
	case TRUE:
		p.advance()
		return &ast.Literal{Kind: ast.LitBool, Raw: "True"}
	case FALSE:
		p.advance()
		return &ast.Literal{Kind: ast.LitBool, Raw: "False"}
	case NONE:
		p.advance()
		return &ast.Literal{Kind: ast.LitNone, Raw: "None"}
	case NAME:
		p.advance()
		return &ast.Name{ID: tok.Lexeme}
	case LPAREN:
		p.advance()
		if p.match(RPAREN) {
			return &ast.Tuple{}
		}
		first := p.parseTest()
		if p.cur.Type == FOR {
			gen := &ast.GeneratorExp{Elt: first, Generators: p.parseComprehensions()}
			p.expect(RPAREN)
			return gen
		}
		if p.cur.Type == COMMA {
			elts := []ast.Expr{first}
			for p.match(COMMA) {
				if p.cur.Type == RPAREN {
					break
				}
				elts = append(elts, p.parseTest())
			}
			p.expect(RPAREN)
			return &ast.Tuple{Elts: elts}
		}
		p.expect(RPAREN)
		return first
	case LBRACKET:
		p.advance()
		if p.match(RBRACKET) {
			return &ast.List{}
		}
		first := p.parseTest()
		if p.cur.Type == FOR {
			comp := &ast.ListComp{Elt: first, Generators: p.parseComprehensions()}
			p.expect(RBRACKET)
			return comp
		}
		elts := []ast.Expr{first}
		for p.match(COMMA) {
			if p.cur.Type == RBRACKET {
				break
			}
			elts = append(elts, p.parseTest())
		}
		p.expect(RBRACKET)
		return &ast.List{Elts: elts}
	case LBRACE:
		p.advance()
		first := p.parseTest()
		if p.cur.Type == FOR {
			comp := &ast.SetComp{Elt: first, Generators: p.parseComprehensions()}
			p.expect(RBRACE)
			return comp
		}
		elts := []ast.Expr{first}
		for p.match(COMMA) {
			if p.cur.Type == RBRACE {
				break
			}
			elts = append(elts, p.parseTest())
		}
		p.expect(RBRACE)
		return &ast.Set{Elts: elts}
	}
	p.errorf("line %d: unexpected %q", tok.Line, tok.Lexeme)
	return nil
}
