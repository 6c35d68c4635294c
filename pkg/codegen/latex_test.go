package codegen

import "testing"

func TestLatexBrackets(t *testing.T) {
	x := Latex("x")
	if got := string(x.Wrap()); got != "{x}" {
		t.Errorf("Wrap: got %q", got)
	}
	if got := string(x.Paren()); got != `\mathopen{}\left( x \mathclose{}\right)` {
		t.Errorf("Paren: got %q", got)
	}
	if got := string(x.Square()); got != `\mathopen{}\left[ x \mathclose{}\right]` {
		t.Errorf("Square: got %q", got)
	}
	if got := string(x.Curly()); got != `\mathopen{}\left\{ x \mathclose{}\right\}` {
		t.Errorf("Curly: got %q", got)
	}
}

func TestLatexJoin(t *testing.T) {
	parts := []Latex{"a", "b", "c"}
	if got := string(Latex(", ").Join(parts)); got != "a, b, c" {
		t.Errorf("Join: got %q", got)
	}
	if got := string(Latex(", ").Join(nil)); got != "" {
		t.Errorf("Join(nil): got %q", got)
	}
}
