// Package codegen - Identifier rendering
package codegen

import "strings"

// IdentifierConverter renders identifier names.
type IdentifierConverter struct {
	useMathSymbols bool
	useMathrm      bool
}

// NewIdentifierConverter builds a converter. useMathSymbols renders Greek
// and similar names as symbol commands; useMathrm typesets multi-character
// names in upright font (the algorithmic renderer turns it off).
func NewIdentifierConverter(useMathSymbols, useMathrm bool) *IdentifierConverter {
	return &IdentifierConverter{
		useMathSymbols: useMathSymbols,
		useMathrm:      useMathrm,
	}
}

// Convert renders a name. The second result reports whether the output
// behaves as a single character, which the multiplication renderer uses to
// decide whether the \cdot can be dropped.
func (c *IdentifierConverter) Convert(name string) (string, bool) {
	if c.useMathSymbols {
		if _, ok := mathSymbols[name]; ok {
			return "\\" + name, true
		}
	}

	if len(name) == 1 && name != "_" {
		return name, true
	}

	escaped := strings.ReplaceAll(name, "_", `\_`)
	if !c.useMathrm {
		return escaped, false
	}
	return `\mathrm{` + escaped + `}`, false
}
