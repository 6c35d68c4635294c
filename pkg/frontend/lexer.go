// Package frontend - Scanner for the Python subset
// Design: Hand-written, indentation-aware, single token of lookahead
package frontend

import (
	"fmt"
	"strings"
	"unicode"
)

type Lexer struct {
	source      []rune
	pos         int
	line        int
	col         int
	indents     []int
	pending     int // dedents still owed from the previous line start
	depth       int // open bracket nesting, for implicit line joining
	atLineStart bool
}

func NewLexer(source string) *Lexer {
	return &Lexer{
		source:      []rune(source),
		line:        1,
		col:         1,
		indents:     []int{0},
		atLineStart: true,
	}
}

func (l *Lexer) NextToken() Token {
	if l.pending > 0 {
		l.pending--
		return Token{Type: DEDENT, Line: l.line, Col: 1}
	}

	if !l.atLineStart {
		l.skipSpaces()
	}

	// Mid-line comments run to the end of the line.
	if l.pos < len(l.source) && l.source[l.pos] == '#' {
		for l.pos < len(l.source) && l.source[l.pos] != '\n' {
			l.pos++
		}
	}

	if l.pos >= len(l.source) {
		if len(l.indents) > 1 {
			l.indents = l.indents[:len(l.indents)-1]
			return Token{Type: DEDENT, Line: l.line, Col: l.col}
		}
		return Token{Type: EOF, Line: l.line, Col: l.col}
	}

	if l.atLineStart {
		return l.handleLineStart()
	}

	startPos := l.pos
	startCol := l.col
	c := l.advance()

	switch c {
	case '\n':
		l.line++
		l.col = 1
		if l.depth > 0 {
			return l.NextToken()
		}
		l.atLineStart = true
		return Token{Type: NEWLINE, Lexeme: "\n", Line: l.line - 1}
	case '+':
		return l.opOrAug(PLUS, "+", startCol)
	case '-':
		if l.peek() == '>' {
			l.advance()
			return Token{Type: ARROW, Lexeme: "->", Line: l.line, Col: startCol}
		}
		return l.opOrAug(MINUS, "-", startCol)
	case '*':
		if l.peek() == '*' {
			l.advance()
			return l.opOrAug(DOUBLESTAR, "**", startCol)
		}
		return l.opOrAug(STAR, "*", startCol)
	case '/':
		if l.peek() == '/' {
			l.advance()
			return l.opOrAug(DOUBLESLASH, "//", startCol)
		}
		return l.opOrAug(SLASH, "/", startCol)
	case '%':
		return l.opOrAug(PERCENT, "%", startCol)
	case '@':
		return l.opOrAug(AT, "@", startCol)
	case '&':
		return l.opOrAug(AMP, "&", startCol)
	case '|':
		return l.opOrAug(PIPE, "|", startCol)
	case '^':
		return l.opOrAug(CARET, "^", startCol)
	case '~':
		return Token{Type: TILDE, Lexeme: "~", Line: l.line, Col: startCol}
	case '(':
		l.depth++
		return Token{Type: LPAREN, Lexeme: "(", Line: l.line, Col: startCol}
	case ')':
		l.depth--
		return Token{Type: RPAREN, Lexeme: ")", Line: l.line, Col: startCol}
	case '[':
		l.depth++
		return Token{Type: LBRACKET, Lexeme: "[", Line: l.line, Col: startCol}
	case ']':
		l.depth--
		return Token{Type: RBRACKET, Lexeme: "]", Line: l.line, Col: startCol}
	case '{':
		l.depth++
		return Token{Type: LBRACE, Lexeme: "{", Line: l.line, Col: startCol}
	case '}':
		l.depth--
		return Token{Type: RBRACE, Lexeme: "}", Line: l.line, Col: startCol}
	case ':':
		return Token{Type: COLON, Lexeme: ":", Line: l.line, Col: startCol}
	case ',':
		return Token{Type: COMMA, Lexeme: ",", Line: l.line, Col: startCol}
	case '.':
		return Token{Type: DOT, Lexeme: ".", Line: l.line, Col: startCol}
	case '=':
		if l.peek() == '=' {
			l.advance()
			return Token{Type: EQ, Lexeme: "==", Line: l.line, Col: startCol}
		}
		return Token{Type: ASSIGN, Lexeme: "=", Line: l.line, Col: startCol}
	case '!':
		if l.peek() == '=' {
			l.advance()
			return Token{Type: NE, Lexeme: "!=", Line: l.line, Col: startCol}
		}
	case '<':
		if l.peek() == '=' {
			l.advance()
			return Token{Type: LE, Lexeme: "<=", Line: l.line, Col: startCol}
		}
		if l.peek() == '<' {
			l.advance()
			return l.opOrAug(LSHIFT, "<<", startCol)
		}
		return Token{Type: LT, Lexeme: "<", Line: l.line, Col: startCol}
	case '>':
		if l.peek() == '=' {
			l.advance()
			return Token{Type: GE, Lexeme: ">=", Line: l.line, Col: startCol}
		}
		if l.peek() == '>' {
			l.advance()
			return l.opOrAug(RSHIFT, ">>", startCol)
		}
		return Token{Type: GT, Lexeme: ">", Line: l.line, Col: startCol}
	case '\'', '"':
		l.pos = startPos
		l.col = startCol
		return l.scanString()
	}

	if unicode.IsDigit(c) {
		l.pos = startPos
		l.col = startCol
		return l.scanNumber()
	}

	if unicode.IsLetter(c) || c == '_' {
		l.pos = startPos
		l.col = startCol
		return l.scanIdentifier()
	}

	return Token{Type: EOF, Lexeme: fmt.Sprintf("error: unexpected char %c", c), Line: l.line, Col: l.col}
}

// opOrAug folds "OP=" into a single AUGASSIGN token so the parser can map
// the operator from the lexeme.
func (l *Lexer) opOrAug(typ TokenType, lexeme string, col int) Token {
	if l.peek() == '=' {
		l.advance()
		return Token{Type: AUGASSIGN, Lexeme: lexeme + "=", Line: l.line, Col: col}
	}
	return Token{Type: typ, Lexeme: lexeme, Line: l.line, Col: col}
}

func (l *Lexer) handleLineStart() Token {
	spaces := 0
	for l.pos < len(l.source) && (l.source[l.pos] == ' ' || l.source[l.pos] == '\t') {
		if l.source[l.pos] == '\t' {
			spaces += 4
		} else {
			spaces++
		}
		l.pos++
		l.col++
	}

	// Skip blank lines and comment-only lines entirely.
	if l.pos >= len(l.source) || l.source[l.pos] == '\n' || l.source[l.pos] == '#' {
		for l.pos < len(l.source) && l.source[l.pos] != '\n' {
			l.pos++
		}
		if l.pos < len(l.source) {
			l.pos++
			l.line++
			l.col = 1
		}
		return l.NextToken()
	}

	l.atLineStart = false
	current := l.indents[len(l.indents)-1]

	if spaces > current {
		l.indents = append(l.indents, spaces)
		return Token{Type: INDENT, Line: l.line, Col: 1}
	}

	for spaces < l.indents[len(l.indents)-1] {
		l.indents = l.indents[:len(l.indents)-1]
		l.pending++
	}

	if l.pending > 0 {
		l.pending--
		return Token{Type: DEDENT, Line: l.line, Col: 1}
	}

	return l.NextToken()
}

func (l *Lexer) scanNumber() Token {
	start := l.pos
	startCol := l.col
	typ := INT

	for l.pos < len(l.source) && unicode.IsDigit(l.source[l.pos]) {
		l.pos++
		l.col++
	}

	// Fraction part. A trailing "." followed by a letter is attribute
	// access on an int, which the grammar does not produce; treat any
	// "." after digits as a float.
	if l.pos < len(l.source) && l.source[l.pos] == '.' {
		typ = FLOAT
		l.pos++
		l.col++
		for l.pos < len(l.source) && unicode.IsDigit(l.source[l.pos]) {
			l.pos++
			l.col++
		}
	}

	// Exponent part.
	if l.pos < len(l.source) && (l.source[l.pos] == 'e' || l.source[l.pos] == 'E') {
		save := l.pos
		l.pos++
		l.col++
		if l.pos < len(l.source) && (l.source[l.pos] == '+' || l.source[l.pos] == '-') {
			l.pos++
			l.col++
		}
		if l.pos < len(l.source) && unicode.IsDigit(l.source[l.pos]) {
			typ = FLOAT
			for l.pos < len(l.source) && unicode.IsDigit(l.source[l.pos]) {
				l.pos++
				l.col++
			}
		} else {
			l.pos = save
		}
	}

	return Token{
		Type:   typ,
		Lexeme: string(l.source[start:l.pos]),
		Line:   l.line,
		Col:    startCol,
	}
}

func (l *Lexer) scanString() Token {
	startCol := l.col
	quote := l.source[l.pos]
	l.pos++
	l.col++

	// Triple-quoted strings (docstrings).
	if l.pos+1 < len(l.source) && l.source[l.pos] == quote && l.source[l.pos+1] == quote {
		l.pos += 2
		l.col += 2
		start := l.pos
		closer := strings.Repeat(string(quote), 3)
		for l.pos+2 < len(l.source) {
			if string(l.source[l.pos:l.pos+3]) == closer {
				text := string(l.source[start:l.pos])
				l.pos += 3
				l.col += 3
				l.line += strings.Count(text, "\n")
				return Token{Type: STRING, Lexeme: text, Line: l.line, Col: startCol}
			}
			l.pos++
			l.col++
		}
		return Token{Type: EOF, Lexeme: "error: unterminated string", Line: l.line, Col: startCol}
	}

	start := l.pos
	for l.pos < len(l.source) && l.source[l.pos] != quote && l.source[l.pos] != '\n' {
		l.pos++
		l.col++
	}
	if l.pos >= len(l.source) || l.source[l.pos] == '\n' {
		return Token{Type: EOF, Lexeme: "error: unterminated string", Line: l.line, Col: startCol}
	}
	text := string(l.source[start:l.pos])
	l.pos++
	l.col++
	return Token{Type: STRING, Lexeme: text, Line: l.line, Col: startCol}
}

func (l *Lexer) scanIdentifier() Token {
	start := l.pos
	startCol := l.col

	for l.pos < len(l.source) {
		c := l.source[l.pos]
		if unicode.IsLetter(c) || unicode.IsDigit(c) || c == '_' {
			l.pos++
			l.col++
		} else {
			break
		}
	}

	text := string(l.source[start:l.pos])
	typ := NAME

	switch text {
	case "def":
		typ = DEF
	case "return":
		typ = RETURN
	case "if":
		typ = IF
	case "elif":
		typ = ELIF
	case "else":
		typ = ELSE
	case "while":
		typ = WHILE
	case "for":
		typ = FOR
	case "in":
		typ = IN
	case "is":
		typ = IS
	case "break":
		typ = BREAK
	case "continue":
		typ = CONTINUE
	case "pass":
		typ = PASS
	case "match":
		typ = MATCH
	case "case":
		typ = CASE
	case "True":
		typ = TRUE
	case "False":
		typ = FALSE
	case "None":
		typ = NONE
	case "and":
		typ = AND
	case "or":
		typ = OR
	case "not":
		typ = NOT
	}

	return Token{
		Type:   typ,
		Lexeme: text,
		Line:   l.line,
		Col:    startCol,
	}
}

func (l *Lexer) skipSpaces() {
	for l.pos < len(l.source) && (l.source[l.pos] == ' ' || l.source[l.pos] == '\t') {
		l.pos++
		l.col++
	}
}

func (l *Lexer) peek() rune {
	if l.pos >= len(l.source) {
		return '\x00'
	}
	return l.source[l.pos]
}

func (l *Lexer) advance() rune {
	c := l.source[l.pos]
	l.pos++
	l.col++
	return c
}
