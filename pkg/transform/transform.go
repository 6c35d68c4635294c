// Package transform - Pipeline assembly
package transform

import (
	"github.com/texify-dev/texify/pkg/ast"
	"github.com/texify-dev/texify/pkg/logger"
)

// Options configure the pipeline. Zero values disable the corresponding
// pass; augmented-assignment normalization always runs.
type Options struct {
	// Prefixes are attribute-chain aliases to trim, e.g. "math" or
	// "numpy.linalg".
	Prefixes []string
	// Identifiers maps original names to replacements.
	Identifiers map[string]string
	// ReduceAssignments inlines leading assignments into the final
	// statement.
	ReduceAssignments bool
	// ExpandFunctions names composite functions to expand into
	// primitives.
	ExpandFunctions []string
}

// Pipeline is the ordered rewrite sequence run before rendering: augmented
// assignments are normalized first, then prefixes are trimmed so renaming
// sees post-trim names, renaming precedes inlining, and expansion sees the
// final substituted forms.
type Pipeline struct {
	trimmer  *PrefixTrimmer
	replacer *IdentifierReplacer
	expander *FunctionExpander
	reduce   bool
}

// NewPipeline validates the options eagerly; no tree is touched when an
// option is malformed.
func NewPipeline(opts Options) (*Pipeline, error) {
	p := &Pipeline{reduce: opts.ReduceAssignments}

	if len(opts.Prefixes) > 0 {
		trimmer, err := NewPrefixTrimmer(opts.Prefixes)
		if err != nil {
			return nil, err
		}
		p.trimmer = trimmer
	}
	if len(opts.Identifiers) > 0 {
		replacer, err := NewIdentifierReplacer(opts.Identifiers)
		if err != nil {
			return nil, err
		}
		p.replacer = replacer
	}
	if len(opts.ExpandFunctions) > 0 {
		p.expander = NewFunctionExpander(opts.ExpandFunctions)
	}
	return p, nil
}

// Apply runs the pipeline over one tree and returns the rewritten tree.
func (p *Pipeline) Apply(mod *ast.Module) (*ast.Module, error) {
	mod = ReplaceAugAssign(mod)
	logger.LogTransform("aug-assign")

	var err error
	if p.trimmer != nil {
		if mod, err = p.trimmer.Transform(mod); err != nil {
			return nil, err
		}
		logger.LogTransform("prefix-trimmer")
	}
	if p.replacer != nil {
		if mod, err = p.replacer.Transform(mod); err != nil {
			return nil, err
		}
		logger.LogTransform("identifier-replacer")
	}
	if p.reduce {
		// Docstrings would otherwise sit between the assignments and the
		// final statement.
		mod = RemoveDocstrings(mod)
		if mod, err = ReduceAssignments(mod); err != nil {
			return nil, err
		}
		logger.LogTransform("assignment-reducer")
	}
	if p.expander != nil {
		if mod, err = p.expander.Transform(mod); err != nil {
			return nil, err
		}
		logger.LogTransform("function-expander")
	}
	return mod, nil
}
