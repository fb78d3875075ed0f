// Package diag implements the two fatal error shapes the name-resolution
// core can raise: a malformed AST node encountered where a recognised
// shape was required, and a template-selection failure with no unique
// most-specialized candidate. Both are internal errors, not user-facing
// diagnostics (printing those is the driver's job); this package only
// gives them a typed, located representation.
//
// The propagation shape follows core/text/parse's AbortParse: raising a
// fatal error panics, and the outermost call boundary of each package
// that can raise one (lookup.Engine's Query* methods, template.Solve)
// recovers it with Recover and turns it back into a plain error return.
package diag

import (
	"fmt"

	"github.com/google/gapid/core/fault"
	"github.com/pkg/errors"

	"github.com/strategist922/mcxx/ast"
)

const (
	// ErrNotAClass is returned when a qualifier step that must name a
	// class (directly, or via a typedef) names something else.
	ErrNotAClass = fault.Const("qualifier does not name a class")
	// ErrAmbiguousQualifier is returned when an identifier qualifier step
	// resolves to more than one class/namespace/typedef candidate.
	ErrAmbiguousQualifier = fault.Const("ambiguous qualifier")
	// ErrMonotonicityViolation is returned when a qualifier chain resolves
	// to a namespace after an earlier step already resolved to a class.
	ErrMonotonicityViolation = fault.Const("namespace qualifier follows a class qualifier")
	// ErrNoTemplateCandidates is raised when a template-name lookup, after
	// filtering to template kinds, yields an empty bucket.
	ErrNoTemplateCandidates = fault.Const("no template candidates after filtering")
	// ErrTemplateSelectionFailure is raised when partial ordering over the
	// specializations that unified does not produce a unique most-specialized
	// candidate.
	ErrTemplateSelectionFailure = fault.Const("no unique most-specialized template candidate")
)

// Fatal is a located internal error: a malformed AST node or a
// template-selection failure. It implements error and fmt.Formatter the
// way core/text/parse.Error does, so a driver can print it without this
// package ever writing to stderr itself.
type Fatal struct {
	NodeKind ast.Kind
	At       ast.Location
	Reason   string
	// Err is the taxonomy sentinel this Fatal wraps, or nil for a Fatal
	// with no named sentinel. Unwrap exposes it so callers can use
	// errors.Is against the named constants above even though the panic
	// value is a *Fatal, not the sentinel itself.
	Err error
}

// Error implements error.
func (f *Fatal) Error() string {
	return fmt.Sprintf("%s: internal error: %s (node kind %s)", f.At, f.Reason, f.NodeKind)
}

// Unwrap exposes Err for errors.Is/errors.As.
func (f *Fatal) Unwrap() error { return f.Err }

// Format implements fmt.Formatter, mirroring parse.Error.Format.
func (f *Fatal) Format(s fmt.State, c rune) {
	fmt.Fprintf(s, "%s: %s", f.At, f.Reason)
}

// NewFatal builds a Fatal located at n. n may be nil, for errors not tied
// to a specific AST node.
func NewFatal(n ast.Node, reason string, args ...interface{}) *Fatal {
	if len(args) > 0 {
		reason = fmt.Sprintf(reason, args...)
	}
	f := &Fatal{Reason: reason}
	if n != nil {
		f.NodeKind = n.Kind()
		f.At = n.Location()
	}
	return f
}

// Raise panics with a stack-traced Fatal. Call at the point a malformed
// AST shape is discovered.
func Raise(n ast.Node, reason string, args ...interface{}) {
	panic(errors.WithStack(NewFatal(n, reason, args...)))
}

// RaiseErr panics with a stack-traced Fatal wrapping the given taxonomy
// sentinel, so Recover's caller can later recognise it with errors.Is.
// Call at the point a template-selection failure is discovered.
func RaiseErr(n ast.Node, sentinel error, reason string, args ...interface{}) {
	f := NewFatal(n, reason, args...)
	f.Err = sentinel
	panic(errors.WithStack(f))
}

// Recover must be deferred at a package's outermost call boundary. It
// turns a panic raised by Raise into a normal error written to *errp, and
// re-panics anything else (a Fatal recovered here means the core itself
// hit a condition it cannot continue from, not a user mistake).
func Recover(errp *error) {
	r := recover()
	if r == nil {
		return
	}
	if err, ok := r.(error); ok {
		var f *Fatal
		if errors.As(err, &f) {
			*errp = err
			return
		}
	}
	panic(r)
}
