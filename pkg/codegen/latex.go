// Package codegen renders syntax trees as LaTeX.
package codegen

import "strings"

// Latex is an immutable rendered fragment. The combinators return new
// values; nothing in this package mutates a fragment in place.
type Latex string

// Wrap surrounds the fragment with braces, for use as a macro argument.
func (l Latex) Wrap() Latex {
	return "{" + l + "}"
}

// Paren surrounds the fragment with resizing parentheses.
func (l Latex) Paren() Latex {
	return `\mathopen{}\left( ` + l + ` \mathclose{}\right)`
}

// Curly surrounds the fragment with resizing curly brackets.
func (l Latex) Curly() Latex {
	return `\mathopen{}\left\{ ` + l + ` \mathclose{}\right\}`
}

// Square surrounds the fragment with resizing square brackets.
func (l Latex) Square() Latex {
	return `\mathopen{}\left[ ` + l + ` \mathclose{}\right]`
}

// Join concatenates the fragments with l as the separator.
func (l Latex) Join(seq []Latex) Latex {
	parts := make([]string, len(seq))
	for i, s := range seq {
		parts[i] = string(s)
	}
	return Latex(strings.Join(parts, string(l)))
}
