// Package texerr defines the error kinds surfaced by the converter.
//
// Only two kinds exist. NotSupportedError marks AST shapes outside the
// documented subset; a future version may handle them. SyntaxError marks
// trees that are structurally invalid for this conversion and can never be
// handled. Neither is retried internally, and no partial LaTeX is returned
// alongside either of them.
package texerr

import "fmt"

// NotSupportedError reports an AST shape the converter does not handle.
type NotSupportedError struct {
	Msg string
}

func (e *NotSupportedError) Error() string {
	return e.Msg
}

// SyntaxError reports a structurally invalid input tree.
type SyntaxError struct {
	Msg string
}

func (e *SyntaxError) Error() string {
	return e.Msg
}

// NotSupportedf builds a NotSupportedError with a formatted message.
func NotSupportedf(format string, args ...any) error {
	return &NotSupportedError{Msg: fmt.Sprintf(format, args...)}
}

// Syntaxf builds a SyntaxError with a formatted message.
func Syntaxf(format string, args ...any) error {
	return &SyntaxError{Msg: fmt.Sprintf(format, args...)}
}
