// Package codegen - Expression renderer tests
package codegen

import (
	"errors"
	"testing"

	"github.com/texify-dev/texify/pkg/ast"
	"github.com/texify-dev/texify/pkg/frontend"
	"github.com/texify-dev/texify/pkg/texerr"
)

func mustExpr(t *testing.T, source string) ast.Expr {
	t.Helper()
	mod, err := frontend.Parse(source)
	if err != nil {
		t.Fatalf("Parse(%q) failed: %v", source, err)
	}
	if len(mod.Body) != 1 {
		t.Fatalf("got %d statements, want 1", len(mod.Body))
	}
	stmt, ok := mod.Body[0].(*ast.ExprStmt)
	if !ok {
		t.Fatalf("got %T, want *ast.ExprStmt", mod.Body[0])
	}
	return stmt.Value
}

func renderExpr(t *testing.T, source string) string {
	t.Helper()
	gen := NewExpressionCodegen(false, false)
	latex, err := gen.Visit(mustExpr(t, source))
	if err != nil {
		t.Fatalf("Visit(%q) failed: %v", source, err)
	}
	return latex
}

func runExprTests(t *testing.T, tests []struct{ code, want string }) {
	t.Helper()
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			if got := renderExpr(t, tt.code); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExprLiterals(t *testing.T) {
	runExprTests(t, []struct{ code, want string }{
		{"0", "0"},
		{"1", "1"},
		{"0.0", "0.0"},
		{"1.5", "1.5"},
		{`"abc"`, `\textrm{"abc"}`},
		{"None", `\mathrm{None}`},
		{"False", `\mathrm{False}`},
		{"True", `\mathrm{True}`},
	})
}

func TestExprSequences(t *testing.T) {
	runExprTests(t, []struct{ code, want string }{
		{"(x, y)", `\mathopen{}\left( x, y \mathclose{}\right)`},
		{"(x, y, z)", `\mathopen{}\left( x, y, z \mathclose{}\right)`},
		{"[x]", `\mathopen{}\left[ x \mathclose{}\right]`},
		{"[x, y]", `\mathopen{}\left[ x, y \mathclose{}\right]`},
		{"[]", `\mathopen{}\left[  \mathclose{}\right]`},
		{"{x}", `\mathopen{}\left\{ x \mathclose{}\right\}`},
		{"{x, y}", `\mathopen{}\left\{ x, y \mathclose{}\right\}`},
	})
}

func TestExprListComp(t *testing.T) {
	runExprTests(t, []struct{ code, want string }{
		{
			"[i for i in n]",
			`\mathopen{}\left[ i \mid i \in n \mathclose{}\right]`,
		},
		{
			"[i for i in n if i > 0]",
			`\mathopen{}\left[ i \mid` +
				` \mathopen{}\left( i \in n \mathclose{}\right)` +
				` \land \mathopen{}\left( i > 0 \mathclose{}\right)` +
				` \mathclose{}\right]`,
		},
	})
}

func TestExprSetComp(t *testing.T) {
	runExprTests(t, []struct{ code, want string }{
		{
			"{i for i in n}",
			`\mathopen{}\left\{ i \mid i \in n \mathclose{}\right\}`,
		},
		{
			"{i for i in n if i > 0 if f(i)}",
			`\mathopen{}\left\{ i \mid` +
				` \mathopen{}\left( i \in n \mathclose{}\right)` +
				` \land \mathopen{}\left( i > 0 \mathclose{}\right)` +
				` \land \mathopen{}\left( f \mathopen{}\left(` +
				` i \mathclose{}\right) \mathclose{}\right)` +
				` \mathclose{}\right\}`,
		},
		{
			"{i for k in n for i in k}",
			`\mathopen{}\left\{ i \mid k \in n, i \in k \mathclose{}\right\}`,
		},
		{
			"{i for k in n if f(k) for i in k if i > 0}",
			`\mathopen{}\left\{ i \mid` +
				` \mathopen{}\left( k \in n \mathclose{}\right)` +
				` \land \mathopen{}\left( f \mathopen{}\left(` +
				` k \mathclose{}\right) \mathclose{}\right),` +
				` \mathopen{}\left( i \in k \mathclose{}\right)` +
				` \land \mathopen{}\left( i > 0 \mathclose{}\right)` +
				` \mathclose{}\right\}`,
		},
	})
}

func TestExprBinOp(t *testing.T) {
	runExprTests(t, []struct{ code, want string }{
		// x op y
		{"x**y", `x^{y}`},
		{"x * y", `x y`},
		{"x @ y", `x y`},
		{"x / y", `\frac{x}{y}`},
		{"x // y", `\left\lfloor\frac{x}{y}\right\rfloor`},
		{"x % y", `x \mathbin{\%} y`},
		{"x + y", `x + y`},
		{"x - y", `x - y`},
		{"x << y", `x \ll y`},
		{"x >> y", `x \gg y`},
		{"x & y", `x \mathbin{\&} y`},
		{"x ^ y", `x \oplus y`},
		{"x | y", `x \mathbin{|} y`},
		// (x op y) op z
		{"(x**y)**z", `\mathopen{}\left( x^{y} \mathclose{}\right)^{z}`},
		{"(x * y) * z", `x y z`},
		{"(x / y) / z", `\frac{\frac{x}{y}}{z}`},
		{"(x // y) // z", `\left\lfloor\frac{\left\lfloor\frac{x}{y}\right\rfloor}{z}\right\rfloor`},
		{"(x % y) % z", `x \mathbin{\%} y \mathbin{\%} z`},
		{"(x + y) + z", `x + y + z`},
		{"(x - y) - z", `x - y - z`},
		{"(x << y) << z", `x \ll y \ll z`},
		{"(x & y) & z", `x \mathbin{\&} y \mathbin{\&} z`},
		{"(x ^ y) ^ z", `x \oplus y \oplus z`},
		{"(x | y) | z", `x \mathbin{|} y \mathbin{|} z`},
		// x op (y op z)
		{"x**(y**z)", `x^{y^{z}}`},
		{"x * (y * z)", `x y z`},
		{"x / (y / z)", `\frac{x}{\frac{y}{z}}`},
		{"x % (y % z)", `x \mathbin{\%} \mathopen{}\left( y \mathbin{\%} z \mathclose{}\right)`},
		{"x + (y + z)", `x + y + z`},
		{"x - (y - z)", `x - \mathopen{}\left( y - z \mathclose{}\right)`},
		{"x << (y << z)", `x \ll \mathopen{}\left( y \ll z \mathclose{}\right)`},
		{"x >> (y >> z)", `x \gg \mathopen{}\left( y \gg z \mathclose{}\right)`},
		{"x & (y & z)", `x \mathbin{\&} y \mathbin{\&} z`},
		{"x ^ (y ^ z)", `x \oplus y \oplus z`},
		{"x | (y | z)", `x \mathbin{|} y \mathbin{|} z`},
		// Mixed precedence, tighter op first
		{"x**y * z", `x^{y} z`},
		{"x * y + z", `x y + z`},
		{"x / y + z", `\frac{x}{y} + z`},
		{"x // y + z", `\left\lfloor\frac{x}{y}\right\rfloor + z`},
		{"x + y << z", `x + y \ll z`},
		{"x << y & z", `x \ll y \mathbin{\&} z`},
		{"x & y ^ z", `x \mathbin{\&} y \oplus z`},
		{"x ^ y | z", `x \oplus y \mathbin{|} z`},
		// Mixed precedence, looser subtree on the right
		{"x**(y * z)", `x^{y z}`},
		{"x * (y + z)", `x \cdot \mathopen{}\left( y + z \mathclose{}\right)`},
		{"x @ (y + z)", `x \cdot \mathopen{}\left( y + z \mathclose{}\right)`},
		{"x / (y + z)", `\frac{x}{y + z}`},
		{"x // (y + z)", `\left\lfloor\frac{x}{y + z}\right\rfloor`},
		{"x % (y + z)", `x \mathbin{\%} \mathopen{}\left( y + z \mathclose{}\right)`},
		{"x + (y << z)", `x + \mathopen{}\left( y \ll z \mathclose{}\right)`},
		{"x << (y & z)", `x \ll \mathopen{}\left( y \mathbin{\&} z \mathclose{}\right)`},
		{"x & (y ^ z)", `x \mathbin{\&} \mathopen{}\left( y \oplus z \mathclose{}\right)`},
		{"x ^ (y | z)", `x \oplus \mathopen{}\left( y \mathbin{|} z \mathclose{}\right)`},
		// Mixed precedence, tighter subtree on the right
		{"x * y**z", `x y^{z}`},
		{"x + y * z", `x + y z`},
		{"x + y / z", `x + \frac{y}{z}`},
		{"x + y % z", `x + y \mathbin{\%} z`},
		{"x << y + z", `x \ll y + z`},
		{"x & y << z", `x \mathbin{\&} y \ll z`},
		// Mixed precedence, looser subtree on the left
		{"(x * y)**z", `\mathopen{}\left( x y \mathclose{}\right)^{z}`},
		{"(x + y) * z", `\mathopen{}\left( x + y \mathclose{}\right) z`},
		{"(x + y) / z", `\frac{x + y}{z}`},
		{"(x + y) // z", `\left\lfloor\frac{x + y}{z}\right\rfloor`},
		{"(x + y) % z", `\mathopen{}\left( x + y \mathclose{}\right) \mathbin{\%} z`},
		{"(x << y) + z", `\mathopen{}\left( x \ll y \mathclose{}\right) + z`},
		{"(x & y) << z", `\mathopen{}\left( x \mathbin{\&} y \mathclose{}\right) \ll z`},
		{"(x ^ y) & z", `\mathopen{}\left( x \oplus y \mathclose{}\right) \mathbin{\&} z`},
		{"(x | y) ^ z", `\mathopen{}\left( x \mathbin{|} y \mathclose{}\right) \oplus z`},
		// A floor-division child carries its own brackets.
		{"(x // y)**z", `\left\lfloor\frac{x}{y}\right\rfloor^{z}`},
		// With Call
		{"x**f(y)", `x^{f \mathopen{}\left( y \mathclose{}\right)}`},
		{
			"f(x)**y",
			`\mathopen{}\left( f \mathopen{}\left( x \mathclose{}\right) \mathclose{}\right)^{y}`,
		},
		{"x * f(y)", `x \cdot f \mathopen{}\left( y \mathclose{}\right)`},
		{"f(x) * y", `f \mathopen{}\left( x \mathclose{}\right) \cdot y`},
		{"x / f(y)", `\frac{x}{f \mathopen{}\left( y \mathclose{}\right)}`},
		{"f(x) + y", `f \mathopen{}\left( x \mathclose{}\right) + y`},
		{"sqrt(x) ** y", `\sqrt{ x }^{y}`},
		// With UnaryOp
		{"x**-y", `x^{-y}`},
		{"(-x)**y", `\mathopen{}\left( -x \mathclose{}\right)^{y}`},
		{"x * -y", `x \cdot -y`},
		{"-x * y", `-x y`},
		{"x / -y", `\frac{x}{-y}`},
		{"-x / y", `\frac{-x}{y}`},
		{"x + -y", `x + -y`},
		{"-x + y", `-x + y`},
		// With Compare
		{"x**(y == z)", `x^{y = z}`},
		{"(x == y)**z", `\mathopen{}\left( x = y \mathclose{}\right)^{z}`},
		{"x * (y == z)", `x \cdot \mathopen{}\left( y = z \mathclose{}\right)`},
		{"(x == y) * z", `\mathopen{}\left( x = y \mathclose{}\right) z`},
		{"x / (y == z)", `\frac{x}{y = z}`},
		{"(x == y) + z", `\mathopen{}\left( x = y \mathclose{}\right) + z`},
		// With BoolOp
		{"x**(y and z)", `x^{y \land z}`},
		{"(x and y)**z", `\mathopen{}\left( x \land y \mathclose{}\right)^{z}`},
		{"x * (y and z)", `x \cdot \mathopen{}\left( y \land z \mathclose{}\right)`},
		{"(x and y) * z", `\mathopen{}\left( x \land y \mathclose{}\right) z`},
		{"x / (y and z)", `\frac{x}{y \land z}`},
		{"(x and y) + z", `\mathopen{}\left( x \land y \mathclose{}\right) + z`},
	})
}

func TestExprUnaryOp(t *testing.T) {
	runExprTests(t, []struct{ code, want string }{
		{"+x", `+x`},
		{"-x", `-x`},
		{"~x", `\mathord{\sim} x`},
		{"not x", `\lnot x`},
		{"+f(x)", `+f \mathopen{}\left( x \mathclose{}\right)`},
		{"-f(x)", `-f \mathopen{}\left( x \mathclose{}\right)`},
		{"+(x + y)", `+\mathopen{}\left( x + y \mathclose{}\right)`},
		{"-(x + y)", `-\mathopen{}\left( x + y \mathclose{}\right)`},
		{"~(x + y)", `\mathord{\sim} \mathopen{}\left( x + y \mathclose{}\right)`},
		{"not x + y", `\lnot \mathopen{}\left( x + y \mathclose{}\right)`},
		{"not x == y", `\lnot \mathopen{}\left( x = y \mathclose{}\right)`},
		{"not (x and y)", `\lnot \mathopen{}\left( x \land y \mathclose{}\right)`},
	})
}

func TestExprCompare(t *testing.T) {
	runExprTests(t, []struct{ code, want string }{
		{"a == b", "a = b"},
		{"a > b", "a > b"},
		{"a >= b", `a \ge b`},
		{"a < b", "a < b"},
		{"a <= b", `a \le b`},
		{"a != b", `a \ne b`},
		{"a in b", `a \in b`},
		{"a not in b", `a \notin b`},
		{"a is b", `a \equiv b`},
		{"a is not b", `a \not\equiv b`},
		// Chains
		{"a == b == c", "a = b = c"},
		{"a < b <= c", `a < b \le c`},
		{"a >= b > c", `a \ge b > c`},
		// With neighbours
		{"a == f(b)", `a = f \mathopen{}\left( b \mathclose{}\right)`},
		{"a == b + c", `a = b + c`},
		{"a == -b", `a = -b`},
		{"a == (not b)", `a = \lnot b`},
		{"a == (b and c)", `a = \mathopen{}\left( b \land c \mathclose{}\right)`},
	})
}

func TestExprBoolOp(t *testing.T) {
	runExprTests(t, []struct{ code, want string }{
		{"a and b", `a \land b`},
		{"a and b and c", `a \land b \land c`},
		{"a or b", `a \lor b`},
		{"a or b or c", `a \lor b \lor c`},
		{"a or b and c", `a \lor b \land c`},
		{"(a or b) and c", `\mathopen{}\left( a \lor b \mathclose{}\right) \land c`},
		{"a and (b or c)", `a \land \mathopen{}\left( b \lor c \mathclose{}\right)`},
		{"a and f(b)", `a \land f \mathopen{}\left( b \mathclose{}\right)`},
		{"a and b + c", `a \land b + c`},
		{"a and not b", `a \land \lnot b`},
		{"a and b == c", `a \land b = c`},
		{"a == b or c", `a = b \lor c`},
	})
}

func TestExprIfExp(t *testing.T) {
	runExprTests(t, []struct{ code, want string }{
		{
			"x if x < y else y",
			`\left\{ \begin{array}{ll}` +
				` x, & \mathrm{if} \ x < y \\` +
				` y, & \mathrm{otherwise}` +
				` \end{array} \right.`,
		},
		{
			"x if x < y else (y if y < z else z)",
			`\left\{ \begin{array}{ll}` +
				` x, & \mathrm{if} \ x < y \\` +
				` y, & \mathrm{if} \ y < z \\` +
				` z, & \mathrm{otherwise}` +
				` \end{array} \right.`,
		},
	})
}

func TestExprCall(t *testing.T) {
	runExprTests(t, []struct{ code, want string }{
		{"foo(x)", `\mathrm{foo} \mathopen{}\left( x \mathclose{}\right)`},
		{"f(x)", `f \mathopen{}\left( x \mathclose{}\right)`},
		{"f(-x)", `f \mathopen{}\left( -x \mathclose{}\right)`},
		{"f(x + y)", `f \mathopen{}\left( x + y \mathclose{}\right)`},
		{
			"f(f(x))",
			`f \mathopen{}\left( f \mathopen{}\left( x \mathclose{}\right) \mathclose{}\right)`,
		},
		{"f(sqrt(x))", `f \mathopen{}\left( \sqrt{ x } \mathclose{}\right)`},
		{"f(sin(x))", `f \mathopen{}\left( \sin x \mathclose{}\right)`},
		{"f(factorial(x))", `f \mathopen{}\left( x ! \mathclose{}\right)`},
		{"f(x, y)", `f \mathopen{}\left( x, y \mathclose{}\right)`},
		{"sqrt(x)", `\sqrt{ x }`},
		{"sqrt(-x)", `\sqrt{ -x }`},
		{"sqrt(x + y)", `\sqrt{ x + y }`},
		{"sqrt(f(x))", `\sqrt{ f \mathopen{}\left( x \mathclose{}\right) }`},
		{"sqrt(sqrt(x))", `\sqrt{ \sqrt{ x } }`},
		{"sqrt(factorial(x))", `\sqrt{ x ! }`},
		{"sin(x)", `\sin x`},
		{"sin(-x)", `\sin \mathopen{}\left( -x \mathclose{}\right)`},
		{"sin(x + y)", `\sin \mathopen{}\left( x + y \mathclose{}\right)`},
		{"sin(f(x))", `\sin f \mathopen{}\left( x \mathclose{}\right)`},
		{"sin(sqrt(x))", `\sin \sqrt{ x }`},
		{"sin(sin(x))", `\sin \sin x`},
		{"sin(factorial(x))", `\sin \mathopen{}\left( x ! \mathclose{}\right)`},
		{"factorial(x)", `x !`},
		{"factorial(-x)", `\mathopen{}\left( -x \mathclose{}\right) !`},
		{"factorial(x + y)", `\mathopen{}\left( x + y \mathclose{}\right) !`},
		{
			"factorial(f(x))",
			`\mathopen{}\left( f \mathopen{}\left( x \mathclose{}\right) \mathclose{}\right) !`,
		},
		{"factorial(sqrt(x))", `\mathopen{}\left( \sqrt{ x } \mathclose{}\right) !`},
		{"factorial(sin(x))", `\mathopen{}\left( \sin x \mathclose{}\right) !`},
		{"factorial(factorial(x))", `\mathopen{}\left( x ! \mathclose{}\right) !`},
		{"exp(x)", `\exp x`},
		{"exp(-x)", `\exp \mathopen{}\left( -x \mathclose{}\right)`},
		{"log(x)", `\log x`},
		{"log2(x)", `\log_2 x`},
		{"log10(x)", `\log_{10} x`},
		{"gamma(x)", `\Gamma \mathopen{}\left( x \mathclose{}\right)`},
		{"abs(x)", `\mathopen{}\left| x \mathclose{}\right|`},
		{"ceil(x)", `\mathopen{}\left\lceil x \mathclose{}\right\rceil`},
		{"floor(x)", `\mathopen{}\left\lfloor x \mathclose{}\right\rfloor`},
	})
}

func TestExprCallWithPow(t *testing.T) {
	runExprTests(t, []struct{ code, want string }{
		{"log(x)**2", `\mathopen{}\left( \log x \mathclose{}\right)^{2}`},
		{"log(x**2)", `\log \mathopen{}\left( x^{2} \mathclose{}\right)`},
		{"sin(x**2)", `\sin \mathopen{}\left( x^{2} \mathclose{}\right)`},
		{
			"log(x**2)**3",
			`\mathopen{}\left( \log \mathopen{}\left( x^{2} \mathclose{}\right) \mathclose{}\right)^{3}`,
		},
	})
}

func TestExprSumProd(t *testing.T) {
	suffixes := []struct{ code, want string }{
		// Not a comprehension argument.
		{"()", ` \mathopen{}\left( \mathclose{}\right)`},
		{"(x)", ` x`},
		{"([1, 2])", ` \mathopen{}\left[ 1, 2 \mathclose{}\right]`},
		{"(f(x))", ` f \mathopen{}\left( x \mathclose{}\right)`},
		// Unfoldable iterators.
		{"(i for i in x)", `_{i \in x}^{} \mathopen{}\left({i}\mathclose{}\right)`},
		{
			"(i for i in [1, 2])",
			`_{i \in \mathopen{}\left[ 1, 2 \mathclose{}\right]}^{} \mathopen{}\left({i}\mathclose{}\right)`,
		},
		{
			"(i for i in f(x))",
			`_{i \in f \mathopen{}\left( x \mathclose{}\right)}^{} \mathopen{}\left({i}\mathclose{}\right)`,
		},
		// Ranges fold into closed bounds.
		{"(i for i in range(n))", `_{i = 0}^{n - 1} \mathopen{}\left({i}\mathclose{}\right)`},
		{"(i for i in range(n + 1))", `_{i = 0}^{n} \mathopen{}\left({i}\mathclose{}\right)`},
		{"(i for i in range(n + 2))", `_{i = 0}^{n + 1} \mathopen{}\left({i}\mathclose{}\right)`},
		{"(i for i in range(n - 1))", `_{i = 0}^{n - 2} \mathopen{}\left({i}\mathclose{}\right)`},
		{"(i for i in range(n - -1))", `_{i = 0}^{n - -1 - 1} \mathopen{}\left({i}\mathclose{}\right)`},
		{"(i for i in range(n + m))", `_{i = 0}^{n + m - 1} \mathopen{}\left({i}\mathclose{}\right)`},
		{"(i for i in range(3))", `_{i = 0}^{2} \mathopen{}\left({i}\mathclose{}\right)`},
		{"(i for i in range(3 + 1))", `_{i = 0}^{3} \mathopen{}\left({i}\mathclose{}\right)`},
		{"(i for i in range(3 - 1))", `_{i = 0}^{3 - 2} \mathopen{}\left({i}\mathclose{}\right)`},
		{"(i for i in range(3 + m))", `_{i = 0}^{3 + m - 1} \mathopen{}\left({i}\mathclose{}\right)`},
		{"(i for i in range(n, m))", `_{i = n}^{m - 1} \mathopen{}\left({i}\mathclose{}\right)`},
		{"(i for i in range(1, m))", `_{i = 1}^{m - 1} \mathopen{}\left({i}\mathclose{}\right)`},
		{"(i for i in range(n, 3))", `_{i = n}^{2} \mathopen{}\left({i}\mathclose{}\right)`},
		// A non-unit step keeps the range spelled out.
		{
			"(i for i in range(n, m, k))",
			`_{i \in \mathrm{range} \mathopen{}\left( n, m, k \mathclose{}\right)}^{} \mathopen{}\left({i}\mathclose{}\right)`,
		},
	}

	commands := []struct{ fn, latex string }{
		{"sum", `\sum`},
		{"fsum", `\sum`},
		{"prod", `\prod`},
	}
	for _, cmd := range commands {
		for _, tt := range suffixes {
			t.Run(cmd.fn+tt.code, func(t *testing.T) {
				got := renderExpr(t, cmd.fn+tt.code)
				if want := cmd.latex + tt.want; got != want {
					t.Errorf("got %q, want %q", got, want)
				}
			})
		}
	}
}

func TestExprSumProdMultipleGenerators(t *testing.T) {
	runExprTests(t, []struct{ code, want string }{
		{
			"sum(i for y in x for i in y)",
			`\sum_{y \in x}^{} \sum_{i \in y}^{} \mathopen{}\left({i}\mathclose{}\right)`,
		},
		{
			"prod(i for y in x for z in y for i in z)",
			`\prod_{y \in x}^{} \prod_{z \in y}^{} \prod_{i \in z}^{} \mathopen{}\left({i}\mathclose{}\right)`,
		},
		{
			"sum(i for i in range(n + 1))",
			`\sum_{i = 0}^{n} \mathopen{}\left({i}\mathclose{}\right)`,
		},
	})
}

func TestExprSumProdWithConditions(t *testing.T) {
	runExprTests(t, []struct{ code, want string }{
		{
			"sum(i for i in x if i < y)",
			`\sum_{\mathopen{}\left( i \in x \mathclose{}\right) ` +
				`\land \mathopen{}\left( i < y \mathclose{}\right)}^{} ` +
				`\mathopen{}\left({i}\mathclose{}\right)`,
		},
		{
			"prod(i for i in range(n) if f(i))",
			`\prod_{\mathopen{}\left( i \in \mathrm{range} \mathopen{}\left( n \mathclose{}\right) \mathclose{}\right) ` +
				`\land \mathopen{}\left( f \mathopen{}\left( i \mathclose{}\right) \mathclose{}\right)}^{} ` +
				`\mathopen{}\left({i}\mathclose{}\right)`,
		},
	})
}

func TestExprMatrix(t *testing.T) {
	runExprTests(t, []struct{ code, want string }{
		{"array(1)", `\mathrm{array} \mathopen{}\left( 1 \mathclose{}\right)`},
		{
			"array([])",
			`\mathrm{array} \mathopen{}\left( \mathopen{}\left[  \mathclose{}\right] \mathclose{}\right)`,
		},
		{"array([1])", `\begin{bmatrix} 1 \end{bmatrix}`},
		{"array([1, 2, 3])", `\begin{bmatrix} 1 & 2 & 3 \end{bmatrix}`},
		{"array([[1]])", `\begin{bmatrix} 1 \end{bmatrix}`},
		{"array([[1], [2], [3]])", `\begin{bmatrix} 1 \\ 2 \\ 3 \end{bmatrix}`},
		{
			"array([[1], [2], [3, 4]])",
			`\mathrm{array} \mathopen{}\left(` +
				` \mathopen{}\left[` +
				` \mathopen{}\left[ 1 \mathclose{}\right],` +
				` \mathopen{}\left[ 2 \mathclose{}\right],` +
				` \mathopen{}\left[ 3, 4 \mathclose{}\right]` +
				` \mathclose{}\right]` +
				` \mathclose{}\right)`,
		},
		{
			"array([[1, 2], [3, 4], [5, 6]])",
			`\begin{bmatrix} 1 & 2 \\ 3 & 4 \\ 5 & 6 \end{bmatrix}`,
		},
		{"ndarray(1)", `\mathrm{ndarray} \mathopen{}\left( 1 \mathclose{}\right)`},
		{"ndarray([1])", `\begin{bmatrix} 1 \end{bmatrix}`},
	})
}

func TestExprZeros(t *testing.T) {
	runExprTests(t, []struct{ code, want string }{
		{"zeros(0)", `\mathbf{0}^{1 \times 0}`},
		{"zeros(2)", `\mathbf{0}^{1 \times 2}`},
		{"zeros(())", `0`},
		{"zeros((2,))", `\mathbf{0}^{1 \times 2}`},
		{"zeros((2, 3))", `\mathbf{0}^{2 \times 3}`},
		{"zeros((2, 3, 5))", `\mathbf{0}^{2 \times 3 \times 5}`},
		{"zeros()", `\mathrm{zeros} \mathopen{}\left( \mathclose{}\right)`},
		{"zeros(x)", `\mathrm{zeros} \mathopen{}\left( x \mathclose{}\right)`},
		{"zeros(0, x)", `\mathrm{zeros} \mathopen{}\left( 0, x \mathclose{}\right)`},
	})
}

func TestExprIdentity(t *testing.T) {
	runExprTests(t, []struct{ code, want string }{
		{"identity(0)", `\mathbf{I}_{0}`},
		{"identity(2)", `\mathbf{I}_{2}`},
		{"identity()", `\mathrm{identity} \mathopen{}\left( \mathclose{}\right)`},
		{"identity(x)", `\mathrm{identity} \mathopen{}\left( x \mathclose{}\right)`},
		{"identity(0, x)", `\mathrm{identity} \mathopen{}\left( 0, x \mathclose{}\right)`},
	})
}

func TestExprSubscript(t *testing.T) {
	runExprTests(t, []struct{ code, want string }{
		{"x[0]", "x_{0}"},
		{"x[0][1]", "x_{0, 1}"},
		{"x[0][1][2]", "x_{0, 1, 2}"},
		{"x[foo]", `x_{\mathrm{foo}}`},
		{"x[floor(x)]", `x_{\mathopen{}\left\lfloor x \mathclose{}\right\rfloor}`},
	})
}

func TestExprSetSymbols(t *testing.T) {
	tests := []struct{ code, want string }{
		{"a - b", `a \setminus b`},
		{"a & b", `a \cap b`},
		{"a ^ b", `a \mathbin{\triangle} b`},
		{"a | b", `a \cup b`},
		{"a < b", `a \subset b`},
		{"a <= b", `a \subseteq b`},
		{"a > b", `a \supset b`},
		{"a >= b", `a \supseteq b`},
	}
	gen := NewExpressionCodegen(false, true)
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			got, err := gen.Visit(mustExpr(t, tt.code))
			if err != nil {
				t.Fatalf("Visit(%q) failed: %v", tt.code, err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExprMultiplicationElision(t *testing.T) {
	tests := []struct{ left, right, want string }{
		{"2", "3", `2 \cdot 3`},
		{"2", "y", "2 y"},
		{"2", "beta", `2 \beta`},
		{"2", "bar", `2 \mathrm{bar}`},
		{"2", "g(y)", `2 g \mathopen{}\left( y \mathclose{}\right)`},
		{"2", "(u + v)", `2 \mathopen{}\left( u + v \mathclose{}\right)`},
		{"x", "3", `x \cdot 3`},
		{"x", "y", "x y"},
		{"x", "beta", `x \beta`},
		{"x", "bar", `x \cdot \mathrm{bar}`},
		{"x", "g(y)", `x \cdot g \mathopen{}\left( y \mathclose{}\right)`},
		{"x", "(u + v)", `x \cdot \mathopen{}\left( u + v \mathclose{}\right)`},
		{"alpha", "3", `\alpha \cdot 3`},
		{"alpha", "y", `\alpha y`},
		{"alpha", "beta", `\alpha \beta`},
		{"alpha", "bar", `\alpha \cdot \mathrm{bar}`},
		{"foo", "3", `\mathrm{foo} \cdot 3`},
		{"foo", "y", `\mathrm{foo} \cdot y`},
		{"foo", "beta", `\mathrm{foo} \cdot \beta`},
		{"foo", "bar", `\mathrm{foo} \cdot \mathrm{bar}`},
		{"f(x)", "3", `f \mathopen{}\left( x \mathclose{}\right) \cdot 3`},
		{"f(x)", "y", `f \mathopen{}\left( x \mathclose{}\right) \cdot y`},
		{"f(x)", "beta", `f \mathopen{}\left( x \mathclose{}\right) \cdot \beta`},
		{
			"f(x)", "g(y)",
			`f \mathopen{}\left( x \mathclose{}\right) \cdot g \mathopen{}\left( y \mathclose{}\right)`,
		},
		{"(s + t)", "3", `\mathopen{}\left( s + t \mathclose{}\right) \cdot 3`},
		{"(s + t)", "y", `\mathopen{}\left( s + t \mathclose{}\right) y`},
		{"(s + t)", "beta", `\mathopen{}\left( s + t \mathclose{}\right) \beta`},
		{"(s + t)", "bar", `\mathopen{}\left( s + t \mathclose{}\right) \mathrm{bar}`},
		{
			"(s + t)", "g(y)",
			`\mathopen{}\left( s + t \mathclose{}\right) g \mathopen{}\left( y \mathclose{}\right)`,
		},
		{
			"(s + t)", "(u + v)",
			`\mathopen{}\left( s + t \mathclose{}\right) \mathopen{}\left( u + v \mathclose{}\right)`,
		},
	}
	gen := NewExpressionCodegen(true, false)
	for _, op := range []string{"*", "@"} {
		for _, tt := range tests {
			code := tt.left + " " + op + " " + tt.right
			t.Run(code, func(t *testing.T) {
				got, err := gen.Visit(mustExpr(t, code))
				if err != nil {
					t.Fatalf("Visit(%q) failed: %v", code, err)
				}
				if got != tt.want {
					t.Errorf("got %q, want %q", got, tt.want)
				}
			})
		}
	}
}

func TestExprMathSymbols(t *testing.T) {
	tests := []struct{ code, want string }{
		{"alpha", `\alpha`},
		{"Omega", `\Omega`},
		{"alpha + beta", `\alpha + \beta`},
		{"gamma(gamma)", `\Gamma \mathopen{}\left( \gamma \mathclose{}\right)`},
	}
	gen := NewExpressionCodegen(true, false)
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			got, err := gen.Visit(mustExpr(t, tt.code))
			if err != nil {
				t.Fatalf("Visit(%q) failed: %v", tt.code, err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExprUnsupported(t *testing.T) {
	gen := NewExpressionCodegen(false, false)
	_, err := gen.Visit(&ast.GeneratorExp{
		Elt: ast.MakeName("i"),
		Generators: []ast.Comprehension{
			{Target: ast.MakeName("i"), Iter: ast.MakeName("x")},
		},
	})
	if err == nil {
		t.Fatal("expected an error for a bare generator expression")
	}
	var nserr *texerr.NotSupportedError
	if !errors.As(err, &nserr) {
		t.Errorf("got %T, want *texerr.NotSupportedError", err)
	}
}
