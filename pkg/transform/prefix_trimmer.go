// Package transform - Module-alias prefix trimming
package transform

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/texify-dev/texify/pkg/ast"
)

var prefixPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*(\.[A-Za-z_][A-Za-z0-9_]*)*$`)

// PrefixTrimmer removes configured module-alias prefixes from attribute
// chains, so `math.sqrt(x)` renders as `sqrt(x)`. Matching is leftmost
// longest, and the pass is idempotent.
type PrefixTrimmer struct {
	prefixes [][]string
}

// NewPrefixTrimmer validates the prefixes eagerly. Each entry must be an
// identifier or identifiers joined by periods, e.g. "math" or
// "numpy.linalg".
func NewPrefixTrimmer(prefixes []string) (*PrefixTrimmer, error) {
	t := &PrefixTrimmer{prefixes: make([][]string, 0, len(prefixes))}
	for _, p := range prefixes {
		if !prefixPattern.MatchString(p) {
			return nil, fmt.Errorf("invalid prefix: %q", p)
		}
		t.prefixes = append(t.prefixes, strings.Split(p, "."))
	}
	return t, nil
}

// Transform returns a new tree with matching prefixes removed.
func (t *PrefixTrimmer) Transform(mod *ast.Module) (*ast.Module, error) {
	return rewriteModule(mod, func(e ast.Expr) (ast.Expr, error) {
		attr, ok := e.(*ast.Attribute)
		if !ok {
			return e, nil
		}
		return t.trim(attr), nil
	})
}

// trim rewrites one attribute chain. The hook sees the chain whole, so the
// longest configured prefix wins; trimming repeats until no prefix matches,
// which keeps the pass idempotent for overlapping prefix sets. Chains
// rooted in anything other than a plain name, such as `f(x).attr`, pass
// through untouched.
func (t *PrefixTrimmer) trim(attr *ast.Attribute) ast.Expr {
	chain, ok := attributeChain(attr.Value)
	if !ok {
		return attr
	}

	for {
		matched := 0
		for _, p := range t.prefixes {
			if len(p) <= len(chain) && len(p) > matched && equalChain(chain[:len(p)], p) {
				matched = len(p)
			}
		}
		if matched == 0 {
			break
		}
		chain = chain[matched:]
	}
	return makeAttributeChain(chain, attr.Attr)
}

// attributeChain flattens `a.b.c` into its name components.
func attributeChain(e ast.Expr) ([]string, bool) {
	switch v := e.(type) {
	case *ast.Name:
		return []string{v.ID}, true
	case *ast.Attribute:
		parent, ok := attributeChain(v.Value)
		if !ok {
			return nil, false
		}
		return append(parent, v.Attr), true
	}
	return nil, false
}

func equalChain(a, b []string) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func makeAttributeChain(prefix []string, name string) ast.Expr {
	if len(prefix) == 0 {
		return ast.MakeName(name)
	}
	parent := makeAttributeChain(prefix[:len(prefix)-1], prefix[len(prefix)-1])
	return ast.MakeAttribute(parent, name)
}
