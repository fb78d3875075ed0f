// Package ast declares the abstract syntax tree contract this core
// consumes. The parser that produces real nodes is an external
// collaborator; this package only names the interface it must satisfy
// (kind, child, text, source location) plus a small in-memory Node
// implementation good enough to build id-expressions and type spines by
// hand, which the lookup and resolve package tests use in place of a
// real parser.
package ast

import "fmt"

// Kind is the closed set of id-expression and marker shapes the
// name-lookup engine recognises.
type Kind int

const (
	// KindInvalid marks the zero Kind; never produced by the builders
	// below, used to catch an unset field.
	KindInvalid Kind = iota
	// KindSymbol is a plain identifier.
	KindSymbol
	// KindTemplateID is name<arg, arg, ...>.
	KindTemplateID
	// KindDestructorID is ~name.
	KindDestructorID
	// KindOperatorFunctionID is operator@ for some operator token.
	KindOperatorFunctionID
	// KindConversionFunctionID is operator T for some target type T.
	KindConversionFunctionID
	// KindQualifiedID is a (possibly ::-prefixed) qualifier chain ending in
	// one of the above.
	KindQualifiedID
	// KindGlobalMarker is the synthetic leading child of a KindQualifiedID
	// that records a leading "::". It carries no data of its own.
	KindGlobalMarker
)

func (k Kind) String() string {
	switch k {
	case KindSymbol:
		return "symbol"
	case KindTemplateID:
		return "template-id"
	case KindDestructorID:
		return "destructor-id"
	case KindOperatorFunctionID:
		return "operator-function-id"
	case KindConversionFunctionID:
		return "conversion-function-id"
	case KindQualifiedID:
		return "qualified-id"
	case KindGlobalMarker:
		return "global-marker"
	default:
		return "invalid"
	}
}

// Location is the source position of a node, for diagnostics.
type Location struct {
	File   string
	Line   int
	Column int
}

func (l Location) String() string {
	if l.File == "" {
		return "-"
	}
	return fmt.Sprintf("%s:%d:%d", l.File, l.Line, l.Column)
}

// Node is the opaque AST handle the engine operates over: a node's kind,
// its children by index, its text, and its source location.
type Node interface {
	Kind() Kind
	ChildCount() int
	Child(i int) Node
	Text() string
	Location() Location
}

// node is the concrete, hand-buildable Node used where no real parser is
// wired in.
type node struct {
	kind     Kind
	text     string
	loc      Location
	children []Node
}

func (n *node) Kind() Kind          { return n.kind }
func (n *node) ChildCount() int     { return len(n.children) }
func (n *node) Text() string        { return n.text }
func (n *node) Location() Location  { return n.loc }
func (n *node) Child(i int) Node {
	if i < 0 || i >= len(n.children) {
		return nil
	}
	return n.children[i]
}

// NewIdentifier builds a plain-identifier id-expression.
func NewIdentifier(name string, loc Location) Node {
	return &node{kind: KindSymbol, text: name, loc: loc}
}

// NewDestructorID builds a ~name id-expression over the class-or-typedef
// name of.
func NewDestructorID(of Node, loc Location) Node {
	return &node{kind: KindDestructorID, loc: loc, children: []Node{of}}
}

// NewOperatorFunctionID builds an operator-function-id for the given
// operator token, e.g. "+" or "[]".
func NewOperatorFunctionID(token string, loc Location) Node {
	return &node{kind: KindOperatorFunctionID, text: token, loc: loc}
}

// NewConversionFunctionID builds a conversion-function-id. targetSpelling
// is the canonical spelling of the already-resolved target type: deciding
// what that type is requires the very type-specifier disambiguation this
// engine performs elsewhere, so by the time a conversion-function-id
// reaches lookup its target has already been resolved by the driver.
func NewConversionFunctionID(targetSpelling string, loc Location) Node {
	return &node{kind: KindConversionFunctionID, text: targetSpelling, loc: loc}
}

// NewTemplateID builds a name<args...> id-expression.
func NewTemplateID(name Node, args []Node, loc Location) Node {
	children := make([]Node, 0, len(args)+1)
	children = append(children, name)
	children = append(children, args...)
	return &node{kind: KindTemplateID, loc: loc, children: children}
}

// TemplateIDName returns the template name child of a KindTemplateID node.
func TemplateIDName(n Node) Node { return n.Child(0) }

// TemplateIDArgs returns the argument children of a KindTemplateID node.
func TemplateIDArgs(n Node) []Node {
	args := make([]Node, 0, n.ChildCount()-1)
	for i := 1; i < n.ChildCount(); i++ {
		args = append(args, n.Child(i))
	}
	return args
}

// NewQualifiedID builds a qualifier chain. qualifiers holds the
// intermediate steps (identifiers or template-ids); final is the
// id-expression looked up in the scope the chain resolves to.
func NewQualifiedID(global bool, qualifiers []Node, final Node, loc Location) Node {
	children := make([]Node, 0, len(qualifiers)+2)
	if global {
		children = append(children, &node{kind: KindGlobalMarker, loc: loc})
	}
	children = append(children, qualifiers...)
	children = append(children, final)
	return &node{kind: KindQualifiedID, loc: loc, children: children}
}

// HasGlobalPrefix reports whether a KindQualifiedID node has a leading "::".
func HasGlobalPrefix(n Node) bool {
	return n.ChildCount() > 0 && n.Child(0).Kind() == KindGlobalMarker
}

// Qualifiers returns the intermediate qualifier steps of a KindQualifiedID
// node, excluding any leading global marker and the final id-expression.
func Qualifiers(n Node) []Node {
	start := 0
	if HasGlobalPrefix(n) {
		start = 1
	}
	end := n.ChildCount() - 1
	if end < start {
		return nil
	}
	out := make([]Node, 0, end-start)
	for i := start; i < end; i++ {
		out = append(out, n.Child(i))
	}
	return out
}

// Final returns the final id-expression of a KindQualifiedID node.
func Final(n Node) Node {
	if n.ChildCount() == 0 {
		return nil
	}
	return n.Child(n.ChildCount() - 1)
}
