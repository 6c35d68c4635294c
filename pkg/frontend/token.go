// Package frontend - Token definitions for the Python-subset scanner
package frontend

type TokenType int

const (
	EOF TokenType = iota
	NEWLINE
	INDENT
	DEDENT

	// Literals
	INT
	FLOAT
	STRING
	NAME

	// Keywords
	DEF
	RETURN
	IF
	ELIF
	ELSE
	WHILE
	FOR
	IN
	IS
	BREAK
	CONTINUE
	PASS
	MATCH
	CASE
	TRUE
	FALSE
	NONE
	AND
	OR
	NOT

	// Operators
	PLUS        // +
	MINUS       // -
	STAR        // *
	DOUBLESTAR  // **
	SLASH       // /
	DOUBLESLASH // //
	PERCENT     // %
	AT          // @
	AMP         // &
	PIPE        // |
	CARET       // ^
	TILDE       // ~
	LSHIFT      // <<
	RSHIFT      // >>
	EQ          // ==
	NE          // !=
	LT          // <
	LE          // <=
	GT          // >
	GE          // >=
	ASSIGN      // =
	AUGASSIGN   // += -= *= /= //= %= **= &= |= ^= <<= >>= @=

	// Delimiters
	LPAREN   // (
	RPAREN   // )
	LBRACKET // [
	RBRACKET // ]
	LBRACE   // {
	RBRACE   // }
	COLON    // :
	COMMA    // ,
	DOT      // .
	ARROW    // ->
)

var tokenNames = map[TokenType]string{
	EOF: "end of input", NEWLINE: "newline", INDENT: "indent", DEDENT: "dedent",
	INT: "integer", FLOAT: "float", STRING: "string", NAME: "name",
	DEF: "'def'", RETURN: "'return'", IF: "'if'", ELIF: "'elif'", ELSE: "'else'",
	WHILE: "'while'", FOR: "'for'", IN: "'in'", IS: "'is'", BREAK: "'break'",
	CONTINUE: "'continue'", PASS: "'pass'", MATCH: "'match'", CASE: "'case'",
	TRUE: "'True'", FALSE: "'False'", NONE: "'None'",
	AND: "'and'", OR: "'or'", NOT: "'not'",
	PLUS: "'+'", MINUS: "'-'", STAR: "'*'", DOUBLESTAR: "'**'", SLASH: "'/'",
	DOUBLESLASH: "'//'", PERCENT: "'%'", AT: "'@'", AMP: "'&'", PIPE: "'|'",
	CARET: "'^'", TILDE: "'~'", LSHIFT: "'<<'", RSHIFT: "'>>'",
	EQ: "'=='", NE: "'!='", LT: "'<'", LE: "'<='", GT: "'>'", GE: "'>='",
	ASSIGN: "'='", AUGASSIGN: "augmented assignment",
	LPAREN: "'('", RPAREN: "')'", LBRACKET: "'['", RBRACKET: "']'",
	LBRACE: "'{'", RBRACE: "'}'", COLON: "':'", COMMA: "','", DOT: "'.'",
	ARROW: "'->'",
}

func (t TokenType) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return "unknown token"
}

type Token struct {
	Type   TokenType
	Lexeme string
	Line   int
	Col    int
}
