// Package config holds the user-facing conversion settings
package config

// Config collects every setting the converter accepts. The zero value is
// usable; Defaults returns the canonical starting point.
type Config struct {
	// Identifiers maps source identifiers to replacement names, applied
	// at both binder and use sites.
	Identifiers map[string]string
	// ExpandFunctions names composite functions (hypot, pow, exp, ...)
	// to expand into primitive expressions.
	ExpandFunctions []string
	// Prefixes are module-alias prefixes trimmed from attribute chains,
	// e.g. "math" or "numpy.linalg".
	Prefixes []string
	// ReduceAssignments inlines leading assignments into the final
	// statement of each function.
	ReduceAssignments bool
	// UseMathSymbols renders Greek-named identifiers as symbol commands.
	UseMathSymbols bool
	// UseSetSymbols renders the bitwise and comparison operators with
	// their set-theoretic glyphs.
	UseSetSymbols bool
	// UseSignature prepends "f(x) =" to the rendered body.
	UseSignature bool
	// UseRawFunctionName keeps the function name out of \mathrm.
	UseRawFunctionName bool
}

// Defaults returns the default configuration.
func Defaults() Config {
	return Config{UseSignature: true}
}

// Overrides is a partial configuration: nil fields leave the base value
// alone, set fields replace it.
type Overrides struct {
	Identifiers        map[string]string
	ExpandFunctions    []string
	Prefixes           []string
	ReduceAssignments  *bool
	UseMathSymbols     *bool
	UseSetSymbols      *bool
	UseSignature       *bool
	UseRawFunctionName *bool
}

// Merge returns a copy of c with every set field of o applied.
func (c Config) Merge(o Overrides) Config {
	if o.Identifiers != nil {
		c.Identifiers = o.Identifiers
	}
	if o.ExpandFunctions != nil {
		c.ExpandFunctions = o.ExpandFunctions
	}
	if o.Prefixes != nil {
		c.Prefixes = o.Prefixes
	}
	if o.ReduceAssignments != nil {
		c.ReduceAssignments = *o.ReduceAssignments
	}
	if o.UseMathSymbols != nil {
		c.UseMathSymbols = *o.UseMathSymbols
	}
	if o.UseSetSymbols != nil {
		c.UseSetSymbols = *o.UseSetSymbols
	}
	if o.UseSignature != nil {
		c.UseSignature = *o.UseSignature
	}
	if o.UseRawFunctionName != nil {
		c.UseRawFunctionName = *o.UseRawFunctionName
	}
	return c
}

// Bool is a helper for building Overrides literals.
func Bool(v bool) *bool {
	return &v
}
